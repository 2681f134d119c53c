package domain

import "strings"

// Rich-text block types, as emitted by the CMS structured-text field.
const (
	BlockParagraph    = "paragraph"
	BlockHeading1     = "heading1"
	BlockHeading2     = "heading2"
	BlockHeading3     = "heading3"
	BlockHeading4     = "heading4"
	BlockHeading5     = "heading5"
	BlockHeading6     = "heading6"
	BlockPreformatted = "preformatted"
	BlockListItem     = "list-item"
	BlockOListItem    = "o-list-item"
	BlockImage        = "image"
	BlockEmbed        = "embed"
)

// Span types.
const (
	SpanStrong    = "strong"
	SpanEm        = "em"
	SpanHyperlink = "hyperlink"
)

// Span marks up [Start, End) of a block's text, counted in UTF-16 code units.
type Span struct {
	Start int
	End   int
	Type  string
	URL   string // hyperlink target
}

// RichTextBlock is a single structured-text block.
type RichTextBlock struct {
	Type  string
	Text  string
	Spans []Span
	URL   string // image source or embed URL
	Alt   string
}

// RichText is an ordered sequence of blocks.
type RichText []RichTextBlock

// PlainText flattens the blocks to text, joined by a single space.
// Images and embeds contribute nothing.
func (rt RichText) PlainText() string {
	parts := make([]string, 0, len(rt))
	for _, block := range rt {
		if block.Text == "" {
			continue
		}
		parts = append(parts, block.Text)
	}
	return strings.Join(parts, " ")
}
