// Package marks provides free-text account annotations and their
// human-editable string form.
package marks

import "strings"

// Separator is placed between mark texts by ToString.
const Separator = "; "

// Mark is a single free-text annotation attached to an account.
type Mark struct {
	Text string `json:"text"`
}

// ToString joins the texts of the given marks with Separator.
// A nil or empty list results in an empty string.
func ToString(mm []Mark) string {
	if len(mm) == 0 {
		return ""
	}

	tt := make([]string, len(mm))
	for i, m := range mm {
		tt[i] = m.Text
	}

	return strings.Join(tt, Separator)
}

// FromString splits s on ';' and returns a mark for every non-blank piece,
// trimmed of surrounding whitespace.
//
// An empty input gives nil. Input consisting only of separators and
// whitespace gives an empty, non-nil list.
func FromString(s string) []Mark {
	if len(s) == 0 {
		return nil
	}

	mm := []Mark{}
	for _, piece := range strings.Split(s, ";") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		mm = append(mm, Mark{Text: piece})
	}

	return mm
}
