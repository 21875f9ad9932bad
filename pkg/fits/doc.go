/*
Package fits reads and writes the header section of FITS files.

A FITS header is a run of 2880-byte blocks, each holding thirty-six 80-byte
keyword cards, closed by an END card. This package decodes those blocks into
ordered keyword records and encodes records back into blocks.

# Quick Start

Read the primary header of a file, compressed or not:

	h, err := fits.Open("image.fits.gz", nil)
	if err != nil {
	    log.Fatal(err)
	}
	naxis, err := fits.Get[int32](h, "NAXIS")

Decode a single block already in memory:

	records, err := fits.ParseHeaderBlock(block)

# Ordering and duplicates

Records keep their order in the file. Duplicate keywords are all kept;
Header.Lookup and Get resolve them by letting the last occurrence win, and
Header.All returns every occurrence.

# Error Handling

Decoding never skips bad input. Errors carry their location:

	var pe *types.ParseError
	if errors.As(err, &pe) {
	    fmt.Printf("card at offset %d, column %d: %s\n", pe.Offset, pe.Column, pe.Detail)
	}

A block of the wrong size yields *types.InvalidHeaderBlockError, and a
stream that ends before END yields ErrMissingEnd unless
ReadOptions.AllowMissingEnd is set.
*/
package fits
