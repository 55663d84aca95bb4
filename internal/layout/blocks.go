// Package layout turns a resume record into an ordered sequence of layout
// blocks: styled paragraphs, two-column rows, horizontal rules, and spacers.
// Blocks are immutable once produced and carry no knowledge of page boundaries.
package layout

// Kind discriminates the block variants.
type Kind int

// Block kinds.
const (
	KindParagraph Kind = iota
	KindTwoColumn
	KindRule
	KindSpacer
)

// Block is one unit of document content. Paragraph blocks carry a style name
// from the styles registry and inline-markup text; two-column blocks hold a
// left and right paragraph split at LeftRatio of the usable width; rule and
// spacer blocks use Height for their vertical extent or trailing space.
type Block struct {
	Kind      Kind
	Style     string
	Text      string
	Left      *Block
	Right     *Block
	LeftRatio float64
	Height    float64
}

// Paragraph builds a styled paragraph block. Text is inline markup; free text
// must already be escaped via Escape.
func Paragraph(style, text string) Block {
	return Block{Kind: KindParagraph, Style: style, Text: text}
}

// TwoColumn builds a row of two paragraphs. The left cell takes leftRatio of
// the usable width and the right cell the remainder, so the pair always
// partitions the full content width.
func TwoColumn(leftRatio float64, left, right Block) Block {
	return Block{Kind: KindTwoColumn, LeftRatio: leftRatio, Left: &left, Right: &right}
}

// Rule builds a full-width horizontal rule followed by spaceAfter points.
func Rule(spaceAfter float64) Block {
	return Block{Kind: KindRule, Height: spaceAfter}
}

// Spacer builds a vertical gap of height points.
func Spacer(height float64) Block {
	return Block{Kind: KindSpacer, Height: height}
}
