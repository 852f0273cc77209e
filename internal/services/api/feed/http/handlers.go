// Package http provides the public feed endpoints and the status page
package http

import (
	"html/template"
	"net/http"

	"sensutv/internal/modkit/httpkit"
	perr "sensutv/internal/platform/errors"
	"sensutv/internal/platform/logger"
	catalog "sensutv/internal/services/catalog/domain"
)

// Deps are the handler dependencies
type Deps struct {
	Registry catalog.RegistryPort
	Planner  catalog.PlannerPort

	PayLink string
	Bucket  string
	Region  string
	Store   string
}

type handlers struct {
	deps Deps
	page *template.Template
}

// Register mounts the feed routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{
		deps: d,
		page: template.Must(template.New("home").Parse(homeHTML)),
	}

	r.Get("/", h.home)
	httpkit.Get(r, "/api/models", h.models)
	httpkit.Get(r, "/api/uploads", h.uploads)
	httpkit.Get(r, "/feed", h.feed)
	httpkit.Get(r, "/premium", h.premium)
}

// UploadsResponse mirrors the stored uploads document
type UploadsResponse struct {
	Items []catalog.UploadRecord `json:"items"`
}

// FeedResponse tags the newest-first item list with the requested tier.
// The tier is echoed, not enforced.
type FeedResponse struct {
	Tier  string                 `json:"tier"`
	Items []catalog.UploadRecord `json:"items"`
}

// PremiumResponse points the caller at the payment bot
type PremiumResponse struct {
	OK   bool   `json:"ok"`
	Next string `json:"next"`
}

func (h *handlers) models(r *http.Request) (any, error) {
	return h.deps.Registry.ListModels(r.Context())
}

func (h *handlers) uploads(r *http.Request) (any, error) {
	items, err := h.deps.Planner.ListUploads(r.Context(), false)
	if err != nil {
		return nil, err
	}
	return UploadsResponse{Items: items}, nil
}

func (h *handlers) feed(r *http.Request) (any, error) {
	tier := r.URL.Query().Get("tier")
	if tier == "" {
		tier = "free"
	}
	items, err := h.deps.Planner.ListUploads(r.Context(), true)
	if err != nil {
		return nil, err
	}
	return FeedResponse{Tier: tier, Items: items}, nil
}

func (h *handlers) premium(_ *http.Request) (any, error) {
	if h.deps.PayLink == "" {
		return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "BOT_PAY_LINK not set")
	}
	return PremiumResponse{OK: true, Next: h.deps.PayLink}, nil
}

// homeData feeds the status page template
type homeData struct {
	Items      []catalog.UploadRecord
	BotPayLink string
	Bucket     string
	Region     string
	Store      string
}

func (h *handlers) home(w http.ResponseWriter, r *http.Request) {
	items, err := h.deps.Planner.LastUploads(r.Context(), 6)
	if err != nil {
		items = nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.page.Execute(w, homeData{
		Items:      items,
		BotPayLink: h.deps.PayLink,
		Bucket:     h.deps.Bucket,
		Region:     h.deps.Region,
		Store:      h.deps.Store,
	}); err != nil {
		logger.C(r.Context()).Error().Err(err).Msg("status page render failed")
	}
}
