// Package sheet is a local stand-in for the spreadsheet-backed endpoint that
// receives RSVPs. It accepts the same JSON document the page posts.
package sheet

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mmynk/rsvp/internal/metrics"
	"github.com/mmynk/rsvp/internal/models"
	"github.com/mmynk/rsvp/internal/roster"
	"github.com/mmynk/rsvp/internal/storage"
	"github.com/mmynk/rsvp/internal/submission"
)

const maxBody = 64 << 10

// Handler serves the sheet endpoint.
type Handler struct {
	store storage.Store
}

// NewHandler creates a Handler backed by store.
func NewHandler(store storage.Store) *Handler {
	return &Handler{store: store}
}

// Routes mounts the endpoint on a chi router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.receive)
	r.Get("/responses", h.list)
	r.Get("/responses/{id}", h.get)
	r.Get("/summary", h.summary)
	return r
}

func (h *Handler) receive(w http.ResponseWriter, r *http.Request) {
	var p submission.Payload
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBody))
	if err := dec.Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"result": "error", "error": "invalid JSON: " + err.Error()})
		return
	}
	if len(p.Guests) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"result": "error", "error": "no guests"})
		return
	}

	resp := &models.Response{Guests: p.Guests}
	if err := h.store.CreateResponse(r.Context(), resp); err != nil {
		slog.Error("failed to store response", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"result": "error", "error": "storage failure"})
		return
	}
	metrics.RecordStoredResponse()
	slog.Info("response stored", "id", resp.ID, "guests", len(resp.Guests))

	writeJSON(w, http.StatusOK, map[string]string{"result": "success", "id": resp.ID})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	responses, err := h.store.ListResponses(r.Context())
	if err != nil {
		slog.Error("failed to list responses", "error", err)
		http.Error(w, "failed to list responses", http.StatusInternalServerError)
		return
	}
	if responses == nil {
		responses = []*models.Response{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"responses": responses})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.store.GetResponse(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, "response not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to get response", "error", err)
		http.Error(w, "failed to get response", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Totals is the summary of every stored response.
type Totals struct {
	roster.Summary
	Responses  int      `json:"responses"`
	Households int      `json:"households"`
	Surnames   []string `json:"surnames"`
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	responses, err := h.store.ListResponses(r.Context())
	if err != nil {
		slog.Error("failed to list responses", "error", err)
		http.Error(w, "failed to summarize responses", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, Summarize(responses))
}

// Summarize totals the responses. Households are counted by distinct surname,
// compared case-insensitively.
func Summarize(responses []*models.Response) Totals {
	var t Totals
	fold := cases.Fold()
	title := cases.Title(language.Romanian)
	seen := make(map[string]string)

	for _, resp := range responses {
		t.Responses++
		t.Add(resp.Guests)
		for _, g := range resp.Guests {
			key := fold.String(strings.TrimSpace(g.LastName))
			if key == "" {
				continue
			}
			if _, ok := seen[key]; !ok {
				seen[key] = title.String(strings.TrimSpace(g.LastName))
			}
		}
	}
	t.Households = len(seen)
	t.Surnames = make([]string, 0, len(seen))
	for _, name := range seen {
		t.Surnames = append(t.Surnames, name)
	}
	sort.Strings(t.Surnames)
	return t
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("failed to write response", "error", err)
	}
}
