package handlers

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gorilla/mux"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string
	Sha1Ver   string
	BuildTime string
	StoreType string
}

// Debug echoes the request and the build of the running server as plain text.
func Debug(info BuildInfo) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		v := mux.Vars(r)
		a := []string{fmt.Sprintf("url: %s %s", r.Method, r.RequestURI)}

		names := make([]string, 0, len(r.Header))
		for k := range r.Header {
			names = append(names, k)
		}
		sort.Strings(names)

		a = append(a, "Headers:")
		for _, k := range names {
			a = append(a, fmt.Sprintf("  %s: %s", k, strings.Join(r.Header[k], ", ")))
		}

		a = append(a, "")
		a = append(a, fmt.Sprintf("version: v%s (%s)", info.Version, info.Sha1Ver))
		a = append(a, fmt.Sprintf("built on: %s", info.BuildTime))
		a = append(a, fmt.Sprintf("store: %s", info.StoreType))
		a = append(a, fmt.Sprintf("api version called: %s", v["apiVersion"]))

		servePlainText(rw, strings.Join(a, "\n"))
	})
}
