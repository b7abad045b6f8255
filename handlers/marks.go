package handlers

import (
	"net/http"

	"github.com/flow-hydraulics/account-keeper/marks"
)

// MarksText is the JSON form of the editable mark string.
type MarksText struct {
	Text string `json:"text"`
}

// EncodeMarks turns a JSON list of marks (or null) into its editable string.
func EncodeMarks() http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		var mm []marks.Mark
		if err := decodeBody(r, &mm); err != nil {
			handleError(rw, nil, err)
			return
		}

		handleJsonResponse(rw, http.StatusOK, MarksText{Text: marks.ToString(mm)})
	})
}

// DecodeMarks turns an editable string into a list of marks.
// An empty string gives null.
func DecodeMarks() http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		t := MarksText{}
		if err := decodeBody(r, &t); err != nil {
			handleError(rw, nil, err)
			return
		}

		handleJsonResponse(rw, http.StatusOK, marks.FromString(t.Text))
	})
}
