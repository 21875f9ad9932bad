// Package format houses the byte-level codec for FITS header blocks. The goal
// is to keep decoding focused and allocation-light, and independent from the
// public API so higher-level packages can orchestrate blocks into headers.
package format

var (
	// EndKeyword prefixes the terminator card. Any card starting with it
	// ends the header, whatever follows.
	EndKeyword = []byte{'E', 'N', 'D'}
)

const (
	// BlockSize is the size of every header block in bytes.
	BlockSize = 2880

	// CardSize is the size of one keyword card (record) in bytes.
	CardSize = 80

	// CardsPerBlock is the number of cards in one block (2880 / 80).
	CardsPerBlock = BlockSize / CardSize

	// KeyFieldSize is the width of the keyword field at the start of a card.
	KeyFieldSize = 8

	// Card field offsets.
	KeyFieldOffset       = 0x00 // keyword, left-justified, space padded
	ValueIndicatorOffset = 0x08 // '=' on value cards
	ValueFieldOffset     = 0x0A // first byte of the value field
	CommentaryOffset     = 0x08 // free text on commentary cards

	// FixedValueEnd is the column (exclusive) that fixed-format numeric and
	// logical values are right-justified against (column 30, 1-based).
	FixedValueEnd = 30

	// MinStringWidth is the minimum number of characters between the quotes
	// of an encoded string value.
	MinStringWidth = 8

	// MaxStringToken is the largest quoted string token that fits after the
	// value indicator (80 - 10).
	MaxStringToken = CardSize - ValueFieldOffset
)

const (
	Space          = ' '
	EqualSign      = '='
	Quote          = '\''
	Slash          = '/'
	OpenParen      = '('
	CloseParen     = ')'
	Comma          = ','
	LogicalTrue    = 'T'
	LogicalFalse   = 'F'
	CommentPrefix  = " / "
	ValueIndicator = "= "
)
