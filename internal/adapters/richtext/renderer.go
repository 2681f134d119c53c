// Package richtext renders CMS structured text to HTML.
package richtext

import (
	"html"
	"html/template"
	"sort"
	"strings"
	"unicode/utf16"

	"github.com/microcosm-cc/bluemonday"
	"github.com/philly/spacetraveling/internal/posts/domain"
)

// Renderer turns rich text into sanitized HTML.
type Renderer struct {
	sanitizer *bluemonday.Policy
}

// NewRenderer creates a renderer with a user-generated-content policy.
func NewRenderer() *Renderer {
	return &Renderer{sanitizer: bluemonday.UGCPolicy()}
}

// AsHTML renders blocks to HTML. Consecutive list items are grouped into
// a single list.
func (r *Renderer) AsHTML(rt domain.RichText) template.HTML {
	var b strings.Builder
	list := ""

	for _, block := range rt {
		if tag := listTag(block.Type); tag != list {
			if list != "" {
				b.WriteString("</" + list + ">")
			}
			if tag != "" {
				b.WriteString("<" + tag + ">")
			}
			list = tag
		}
		writeBlock(&b, block)
	}
	if list != "" {
		b.WriteString("</" + list + ">")
	}

	// #nosec G203 -- sanitized by the UGC policy
	return template.HTML(r.sanitizer.Sanitize(b.String()))
}

func listTag(blockType string) string {
	switch blockType {
	case domain.BlockListItem:
		return "ul"
	case domain.BlockOListItem:
		return "ol"
	default:
		return ""
	}
}

func writeBlock(b *strings.Builder, block domain.RichTextBlock) {
	switch block.Type {
	case domain.BlockHeading1, domain.BlockHeading2, domain.BlockHeading3,
		domain.BlockHeading4, domain.BlockHeading5, domain.BlockHeading6:
		tag := "h" + strings.TrimPrefix(block.Type, "heading")
		b.WriteString("<" + tag + ">" + renderSpans(block.Text, block.Spans) + "</" + tag + ">")
	case domain.BlockPreformatted:
		b.WriteString("<pre>" + renderSpans(block.Text, block.Spans) + "</pre>")
	case domain.BlockListItem, domain.BlockOListItem:
		b.WriteString("<li>" + renderSpans(block.Text, block.Spans) + "</li>")
	case domain.BlockImage:
		if block.URL == "" {
			return
		}
		b.WriteString(`<p><img src="` + html.EscapeString(block.URL) +
			`" alt="` + html.EscapeString(block.Alt) + `"></p>`)
	case domain.BlockEmbed:
		if block.URL == "" {
			return
		}
		u := html.EscapeString(block.URL)
		b.WriteString(`<p><a href="` + u + `">` + u + `</a></p>`)
	default:
		b.WriteString("<p>" + renderSpans(block.Text, block.Spans) + "</p>")
	}
}

// renderSpans escapes text and wraps the ranges of spans in tags. Span
// offsets count UTF-16 code units. Overlapping spans are closed and
// reopened so the output nests properly.
func renderSpans(text string, spans []domain.Span) string {
	runes := []rune(text)
	n := len(runes)
	toRune := unitIndex(runes)

	valid := make([]domain.Span, 0, len(spans))
	bounds := map[int]struct{}{0: {}, n: {}}
	for _, s := range spans {
		start, okStart := toRune[s.Start]
		end, okEnd := toRune[s.End]
		if !okStart || !okEnd || start >= end || openTag(s) == "" {
			continue
		}
		s.Start, s.End = start, end
		valid = append(valid, s)
		bounds[s.Start] = struct{}{}
		bounds[s.End] = struct{}{}
	}
	// outer spans first: earlier start, then longer
	sort.SliceStable(valid, func(i, j int) bool {
		if valid[i].Start != valid[j].Start {
			return valid[i].Start < valid[j].Start
		}
		return valid[i].End > valid[j].End
	})

	points := make([]int, 0, len(bounds))
	for p := range bounds {
		points = append(points, p)
	}
	sort.Ints(points)

	var b strings.Builder
	var open []int // indexes into valid
	for i := 0; i+1 < len(points); i++ {
		from, to := points[i], points[i+1]

		var active []int
		for idx, s := range valid {
			if s.Start <= from && s.End >= to {
				active = append(active, idx)
			}
		}

		common := 0
		for common < len(open) && common < len(active) && open[common] == active[common] {
			common++
		}
		for k := len(open) - 1; k >= common; k-- {
			b.WriteString(closeTag(valid[open[k]]))
		}
		for _, idx := range active[common:] {
			b.WriteString(openTag(valid[idx]))
		}
		open = active

		b.WriteString(escapeText(string(runes[from:to])))
	}
	for k := len(open) - 1; k >= 0; k-- {
		b.WriteString(closeTag(valid[open[k]]))
	}
	return b.String()
}

// unitIndex maps each UTF-16 code unit offset that falls on a rune
// boundary to the rune index there.
func unitIndex(runes []rune) map[int]int {
	idx := make(map[int]int, len(runes)+1)
	units := 0
	for i, r := range runes {
		idx[units] = i
		units += utf16.RuneLen(r)
	}
	idx[units] = len(runes)
	return idx
}

func openTag(s domain.Span) string {
	switch s.Type {
	case domain.SpanStrong:
		return "<strong>"
	case domain.SpanEm:
		return "<em>"
	case domain.SpanHyperlink:
		if s.URL == "" {
			return ""
		}
		return `<a href="` + html.EscapeString(s.URL) + `">`
	default:
		return ""
	}
}

func closeTag(s domain.Span) string {
	switch s.Type {
	case domain.SpanStrong:
		return "</strong>"
	case domain.SpanEm:
		return "</em>"
	case domain.SpanHyperlink:
		return "</a>"
	default:
		return ""
	}
}

func escapeText(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), "\n", "<br />")
}
