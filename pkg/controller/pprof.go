package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPrefix is where the profiling handlers are mounted.
const PprofPrefix = "/debug/pprof"

// profiles are the named runtime profiles served besides the index.
var profiles = []string{"goroutine", "heap", "allocs", "block", "mutex"}

// Pprof returns the net/http/pprof handlers for requests under PprofPrefix.
// Responses are never cached.
func Pprof() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", pprof.Index)
	mux.HandleFunc("/cmdline", pprof.Cmdline)
	mux.HandleFunc("/profile", pprof.Profile)
	mux.HandleFunc("/symbol", pprof.Symbol)
	mux.HandleFunc("/trace", pprof.Trace)
	for _, name := range profiles {
		mux.Handle("/"+name, pprof.Handler(name))
	}

	return http.StripPrefix(PprofPrefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		mux.ServeHTTP(w, r)
	}))
}
