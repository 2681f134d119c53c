package web

import (
	"fmt"
	"time"
)

// Unpublished is shown in place of a date for content without one.
const Unpublished = "Não publicado"

var monthAbbreviations = [...]string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

// FormatDate renders t as "dd MMM yyyy" with Brazilian Portuguese month
// abbreviations, in loc. A nil time renders as Unpublished.
func FormatDate(t *time.Time, loc *time.Location) string {
	if t == nil {
		return Unpublished
	}
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	return fmt.Sprintf("%02d %s %d", local.Day(), monthAbbreviations[local.Month()-1], local.Year())
}
