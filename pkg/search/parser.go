package search

import (
	"strings"
)

// Query is a search term with an optional field operator.
type Query struct {
	Field string // canonical operator name, empty when absent
	Term  string
}

var operators = map[string]string{
	"title":   "title",
	"creator": "creator",
	"by":      "creator",
	"channel": "channel",
	"ch":      "channel",
	"url":     "url",
}

// ParseQuery extracts a leading field operator from the raw query string.
// Supported:
// /title:<term>
// /creator:<term> OR /by:<term>
// /channel:<term> OR /ch:<term>
// /url:<term>
// Anything else is returned as the plain term.
func ParseQuery(raw string) Query {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "/") {
		return Query{Term: raw}
	}

	head, rest, ok := strings.Cut(raw[1:], ":")
	if !ok {
		return Query{Term: raw}
	}

	field, known := operators[strings.ToLower(head)]
	if !known {
		return Query{Term: raw}
	}

	return Query{Field: field, Term: strings.TrimSpace(rest)}
}
