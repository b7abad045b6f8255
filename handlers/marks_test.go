package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMarkHandlers(t *testing.T) {
	cases := []struct {
		name     string
		handler  http.Handler
		body     string
		expected string
		status   int
	}{
		{"encode list", EncodeMarks(), `[{"text":"a"},{"text":"b"}]`, "{\"text\":\"a; b\"}\n", http.StatusOK},
		{"encode null", EncodeMarks(), `null`, "{\"text\":\"\"}\n", http.StatusOK},
		{"encode invalid", EncodeMarks(), `{"text":"a"}`, "", http.StatusBadRequest},
		{"decode text", DecodeMarks(), `{"text":"a; b ;c"}`, "[{\"text\":\"a\"},{\"text\":\"b\"},{\"text\":\"c\"}]\n", http.StatusOK},
		{"decode empty", DecodeMarks(), `{"text":""}`, "null\n", http.StatusOK},
		{"decode blank", DecodeMarks(), `{"text":"  ;  "}`, "[]\n", http.StatusOK},
		{"decode no body", DecodeMarks(), ``, "empty body\n", http.StatusBadRequest},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/marks", strings.NewReader(c.body))
			rr := httptest.NewRecorder()
			c.handler.ServeHTTP(rr, req)

			if rr.Code != c.status {
				t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, c.status)
			}

			if c.expected != "" && rr.Body.String() != c.expected {
				t.Errorf("handler returned unexpected body: got %q want %q", rr.Body.String(), c.expected)
			}
		})
	}
}
