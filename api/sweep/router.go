package sweep

import (
	"io"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// NewRouter mounts the sweep API, the health probe and the given metrics
// handler. Requests are logged in combined log format to accessLog.
func NewRouter(svc Sweeper, metrics http.Handler, accessLog io.Writer) http.Handler {
	r := mux.NewRouter()
	r.Handle("/api/sweep", NewHandler(svc)).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	if metrics != nil {
		r.Handle("/metrics", metrics)
	}
	return handlers.CombinedLoggingHandler(accessLog, handlers.RecoveryHandler()(r))
}
