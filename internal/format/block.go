package format

import (
	"github.com/joshuapare/fitskit/pkg/types"
)

// SplitBlock returns the 36 cards of block in byte order:
// [0,80), [80,160), ... [2800,2880). The cards alias block.
func SplitBlock(block []byte) ([][]byte, error) {
	if len(block) != BlockSize {
		return nil, &types.InvalidHeaderBlockError{Length: len(block)}
	}
	cards := make([][]byte, CardsPerBlock)
	for i := range cards {
		off := i * CardSize
		cards[i] = block[off : off+CardSize : off+CardSize]
	}
	return cards, nil
}

// DecodeBlock decodes the cards of block in order until the END card or the
// end of the block. ended reports whether END was seen. Blank cards are
// skipped. The first undecodable card aborts the whole block; no partial
// result is returned. Decoded records own their text, so block may be reused
// once DecodeBlock returns.
func DecodeBlock(block []byte) (records []types.KeywordRecord, ended bool, err error) {
	cards, err := SplitBlock(block)
	if err != nil {
		return nil, false, err
	}
	records = make([]types.KeywordRecord, 0, CardsPerBlock)
	for i, card := range cards {
		entry, err := DecodeCard(card, i*CardSize)
		if err != nil {
			return nil, false, err
		}
		switch entry.Kind {
		case EntryEnd:
			return records, true, nil
		case EntryBlank:
			continue
		}
		records = append(records, entry.Record)
	}
	return records, false, nil
}
