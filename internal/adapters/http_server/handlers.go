// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"travel_reco/internal/adapters/observability"
	"travel_reco/internal/app"
	"travel_reco/internal/domain"
	"travel_reco/internal/pages"
)

type Handlers struct {
	q       *app.QueryService
	store   *app.Store
	content pages.Content
	tmpl    *templates
}

func NewHandlers(q *app.QueryService, s *app.Store, content pages.Content) (*Handlers, error) {
	t, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &Handlers{q: q, store: s, content: content, tmpl: t}, nil
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type reloadResponse struct {
	Version   string    `json:"version"`
	LoadedAt  time.Time `json:"loadedAt"`
	Countries int       `json:"countries"`
	Beaches   int       `json:"beaches"`
	Temples   int       `json:"temples"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Get("/", h.home)
	s.mux.Get("/search", h.search)
	s.mux.Get("/results", h.results)
	s.mux.Get("/about_us", h.about)
	s.mux.Get("/contact_us", h.contact)
	s.mux.Post("/contact_us", h.submitContact)

	s.mux.Get("/api/v1/search", h.apiSearch)
	s.mux.Post("/admin/reload", h.reload)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		// Log but don't fail the whole response; return empty ETag and best-effort body.
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func queryParam(r *http.Request) string { return strings.TrimSpace(r.URL.Query().Get("q")) }

func (h *Handlers) searchView(r *http.Request, q string) domain.ResultsView {
	v := h.q.Search(r.Context(), q)
	observability.ObserveSearch(v)
	return v
}

// ---- pages ----

func (h *Handlers) home(w http.ResponseWriter, r *http.Request) {
	h.tmpl.render(w, http.StatusOK, pageData{
		Page:    domain.PageHome,
		Title:   "Home",
		Hero:    h.content.Home,
		Results: h.searchView(r, ""),
	})
}

func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	q := queryParam(r)
	h.tmpl.render(w, http.StatusOK, pageData{
		Page:    domain.PageSearchResults,
		Title:   "Search",
		Hero:    h.content.Home,
		Query:   q,
		Results: h.searchView(r, q),
	})
}

func (h *Handlers) results(w http.ResponseWriter, r *http.Request) {
	h.tmpl.renderResults(w, h.searchView(r, queryParam(r)))
}

func (h *Handlers) about(w http.ResponseWriter, r *http.Request) {
	h.tmpl.render(w, http.StatusOK, pageData{Page: domain.PageAbout, Title: h.content.About.Title, Hero: h.content.About})
}

func (h *Handlers) contact(w http.ResponseWriter, r *http.Request) {
	h.tmpl.render(w, http.StatusOK, pageData{Page: domain.PageContact, Title: h.content.Contact.Title, Hero: h.content.Contact})
}

func (h *Handlers) submitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid form", "could not parse form body")
		return
	}
	msg := pages.ContactMessage{
		Name:    strings.TrimSpace(r.PostForm.Get("name")),
		Email:   strings.TrimSpace(r.PostForm.Get("email")),
		Message: strings.TrimSpace(r.PostForm.Get("message")),
	}
	d := pageData{Page: domain.PageContact, Title: h.content.Contact.Title, Hero: h.content.Contact}
	if errs := msg.Validate(); errs != nil {
		d.Contact = contactForm{Message: msg, Errors: errs}
		h.tmpl.render(w, http.StatusUnprocessableEntity, d)
		return
	}

	log.Info().
		Str("name", msg.Name).
		Str("email", msg.Email).
		Int("message_len", len(msg.Message)).
		Msg("contact message received")
	d.Contact = contactForm{Sent: true}
	h.tmpl.render(w, http.StatusOK, d)
}

// ---- JSON ----

func (h *Handlers) apiSearch(w http.ResponseWriter, r *http.Request) {
	out := h.searchView(r, queryParam(r))
	if out.Error != "" {
		writeProblem(w, http.StatusServiceUnavailable, "Service Unavailable", out.Error)
		return
	}

	etag, body := calcETagAndBody(out)
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write apiSearch body")
	}
}

func (h *Handlers) reload(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.Load(r.Context())
	if err != nil {
		log.Warn().Err(err).Str("error_type", observability.LabelErr(err)).Msg("reload failed; serving previous catalog")
		writeProblem(w, http.StatusBadGateway, "Bad Gateway", app.LoadFailedMessage)
		return
	}
	_, body := calcETagAndBody(reloadResponse{
		Version:   snap.Version,
		LoadedAt:  snap.LoadedAt,
		Countries: len(snap.Catalog.Countries),
		Beaches:   len(snap.Catalog.Beaches),
		Temples:   len(snap.Catalog.Temples),
	})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write reload body")
	}
}
