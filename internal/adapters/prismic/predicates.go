package prismic

import (
	"strconv"
	"strings"
)

// Predicate is a single query predicate, e.g. [at(document.type,"post")].
type Predicate string

// At matches documents whose path equals value.
func At(path string, value string) Predicate {
	return Predicate("[at(" + path + "," + strconv.Quote(value) + ")]")
}

// buildQuery combines predicates into the q parameter.
func buildQuery(predicates []Predicate) string {
	var b strings.Builder
	b.WriteByte('[')
	for _, p := range predicates {
		b.WriteString(string(p))
	}
	b.WriteByte(']')
	return b.String()
}

// Ordering sorts results by a document field.
type Ordering struct {
	Field string
	Desc  bool
}

func buildOrderings(orderings []Ordering) string {
	if len(orderings) == 0 {
		return ""
	}
	parts := make([]string, len(orderings))
	for i, o := range orderings {
		parts[i] = o.Field
		if o.Desc {
			parts[i] += " desc"
		}
	}
	return "[" + strings.Join(parts, ",") + "]"
}
