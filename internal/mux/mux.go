package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"
	"pokerdrills-server/pkg/drill"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	drills  *drill.Generator
}

// NewMux returns a new HTTP mux
func NewMux(version string, drills *drill.Generator) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		drills:  drills,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/category").Handler(this.getCategory())
	r.Methods(http.MethodPost).Path("/classify").Handler(this.postClassify())
	r.Methods(http.MethodGet).Path("/drill").Handler(this.getDrill())
	r.Methods(http.MethodPost).Path("/drill/grade").Handler(this.postDrillGrade())

	return this
}
