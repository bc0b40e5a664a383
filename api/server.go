package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

const maxDocumentBytes = 1 << 20

// Track is the timeline the Api exposes.
type Track interface {
	EncodeYAML() ([]byte, error)
	LoadYAML(data []byte) error
	ValueAt(runtimeMs float64) (colorful.Color, error)
}

// Api serves the colour timeline to editors:
//
//	GET /timeline       the timeline document as YAML
//	PUT /timeline       replace the timeline with a YAML document
//	GET /value?t=<ms>   the colour at t as JSON
type Api struct {
	track  Track
	static string
	mux    *http.ServeMux
}

// ValueResponse is the body returned by GET /value.
type ValueResponse struct {
	Time   float64           `json:"t"`
	Colour colorful.HexColor `json:"colour"`
}

// NewApi creates an Api for track. When static is set, files under it are
// served at /.
func NewApi(track Track, static string) *Api {
	a := new(Api)
	a.track = track
	a.static = static
	a.mux = http.NewServeMux()
	a.mux.HandleFunc("GET /timeline", a.getTimeline)
	a.mux.HandleFunc("PUT /timeline", a.putTimeline)
	a.mux.HandleFunc("GET /value", a.getValue)
	if static != "" {
		a.mux.Handle("/", http.FileServer(http.Dir(static)))
	}
	return a
}

// ServeHTTP implements http.Handler.
func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

// Serve listens on addr until the server fails.
func (a *Api) Serve(addr string) error {
	log.Printf("Listening on %s...", addr)
	return http.ListenAndServe(addr, a)
}

func (a *Api) getTimeline(w http.ResponseWriter, r *http.Request) {
	data, err := a.track.EncodeYAML()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	w.Write(data)
}

func (a *Api) putTimeline(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentBytes))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := a.track.LoadYAML(data); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *Api) getValue(w http.ResponseWriter, r *http.Request) {
	t, err := strconv.ParseFloat(r.URL.Query().Get("t"), 64)
	if err != nil {
		http.Error(w, "t must be a number of milliseconds", http.StatusBadRequest)
		return
	}
	c, err := a.track.ValueAt(t)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ValueResponse{Time: t, Colour: colorful.HexColor(c.Clamped())})
}
