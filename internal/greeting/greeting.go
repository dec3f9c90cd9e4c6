// Package greeting serves the single greeting route exposed by every variant.
package greeting

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/0xReLogic/greeter/internal/config"
	"github.com/0xReLogic/greeter/internal/logging"
)

// NginxGreeting is the fixed body served by the nginx variant.
const NginxGreeting = "Hello World with NGINX!"

// InstanceGreeting returns the body served by the instance variant.
func InstanceGreeting(id string) string {
	if id == "" {
		id = config.DefaultInstanceID
	}
	return fmt.Sprintf("Hello World from %s!", id)
}

// Handler writes body with status 200.
func Handler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := fmt.Fprint(w, body); err != nil {
			logging.WithContext(r.Context()).Debug().Err(err).Msg("greeting write failed")
		}
	}
}

// NewRouter registers GET (and HEAD) / and nothing else; unknown paths and
// methods get the router's default 404 and 405 responses.
func NewRouter(body string) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", Handler(body)).Methods(http.MethodGet, http.MethodHead)
	return r
}
