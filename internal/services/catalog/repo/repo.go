// Package repo persists catalog documents through the doc store seam.
//
// Two layouts exist: the split layout keeps models.json and uploads.json as
// separate documents (the on-disk shape), while the manifest layout bundles
// both into a single manifest.json object with items newest first (the
// object-store shape). Both present the same Storage contract with uploads
// ordered oldest first.
package repo

import (
	"context"

	"sensutv/internal/modkit/dockit"
	perr "sensutv/internal/platform/errors"
	"sensutv/internal/platform/logger"
	"sensutv/internal/services/catalog/domain"
)

// Document keys under the store root
const (
	modelsKey   = "models.json"
	uploadsKey  = "uploads.json"
	manifestKey = "manifest.json"
)

// Storage defines the catalog repository
type Storage interface {
	Models(ctx context.Context) (map[string]domain.ModelProfile, error)
	SaveModels(ctx context.Context, models map[string]domain.ModelProfile) error
	Uploads(ctx context.Context) ([]domain.UploadRecord, error)
	SaveUploads(ctx context.Context, items []domain.UploadRecord) error
}

type (
	split    struct{ d dockit.Docs }
	manifest struct{ d dockit.Docs }

	splitBinder    struct{}
	manifestBinder struct{}
)

// NewSplit constructs a binder for the two-document layout
func NewSplit() dockit.Binder[Storage] { return splitBinder{} }

// Bind implements dockit.Binder
func (splitBinder) Bind(d dockit.Docs) Storage { return &split{d: d} }

// NewManifest constructs a binder for the single-manifest layout
func NewManifest() dockit.Binder[Storage] { return manifestBinder{} }

// Bind implements dockit.Binder
func (manifestBinder) Bind(d dockit.Docs) Storage { return &manifest{d: d} }

// uploadsDoc is the wire shape of uploads.json
type uploadsDoc struct {
	Items []domain.UploadRecord `json:"items"`
}

// manifestDoc is the wire shape of manifest.json.
// Items are stored newest first so the freshest records sit at the top
// when the object is inspected by hand.
type manifestDoc struct {
	Models map[string]domain.ModelProfile `json:"models"`
	Items  []domain.UploadRecord          `json:"items"`
}

// loadOrEmpty decodes key into out and reports whether out is usable.
// A missing document is an empty catalog; a broken one is logged and
// treated the same so a bad read never takes the bot down.
func loadOrEmpty(ctx context.Context, d dockit.Docs, key string, out any) bool {
	err := dockit.Load(ctx, d, key, out)
	switch {
	case err == nil:
		return true
	case perr.IsCode(err, perr.ErrorCodeNotFound):
		return false
	default:
		logger.C(ctx).Error().Err(err).Str("key", key).Msg("catalog document unreadable, serving empty")
		return false
	}
}

func (s *split) Models(ctx context.Context) (map[string]domain.ModelProfile, error) {
	models := map[string]domain.ModelProfile{}
	loadOrEmpty(ctx, s.d, modelsKey, &models)
	if models == nil {
		models = map[string]domain.ModelProfile{}
	}
	return models, nil
}

func (s *split) SaveModels(ctx context.Context, models map[string]domain.ModelProfile) error {
	return dockit.Save(ctx, s.d, modelsKey, models)
}

func (s *split) Uploads(ctx context.Context) ([]domain.UploadRecord, error) {
	var doc uploadsDoc
	loadOrEmpty(ctx, s.d, uploadsKey, &doc)
	if doc.Items == nil {
		doc.Items = []domain.UploadRecord{}
	}
	return doc.Items, nil
}

func (s *split) SaveUploads(ctx context.Context, items []domain.UploadRecord) error {
	if items == nil {
		items = []domain.UploadRecord{}
	}
	return dockit.Save(ctx, s.d, uploadsKey, uploadsDoc{Items: items})
}

func (m *manifest) load(ctx context.Context) manifestDoc {
	var doc manifestDoc
	loadOrEmpty(ctx, m.d, manifestKey, &doc)
	if doc.Models == nil {
		doc.Models = map[string]domain.ModelProfile{}
	}
	if doc.Items == nil {
		doc.Items = []domain.UploadRecord{}
	}
	return doc
}

func (m *manifest) save(ctx context.Context, doc manifestDoc) error {
	return dockit.Save(ctx, m.d, manifestKey, doc)
}

func (m *manifest) Models(ctx context.Context) (map[string]domain.ModelProfile, error) {
	return m.load(ctx).Models, nil
}

func (m *manifest) SaveModels(ctx context.Context, models map[string]domain.ModelProfile) error {
	doc := m.load(ctx)
	doc.Models = models
	return m.save(ctx, doc)
}

func (m *manifest) Uploads(ctx context.Context) ([]domain.UploadRecord, error) {
	return reversed(m.load(ctx).Items), nil
}

func (m *manifest) SaveUploads(ctx context.Context, items []domain.UploadRecord) error {
	doc := m.load(ctx)
	doc.Items = reversed(items)
	return m.save(ctx, doc)
}

// reversed copies items in opposite order
func reversed(items []domain.UploadRecord) []domain.UploadRecord {
	out := make([]domain.UploadRecord, len(items))
	for i, it := range items {
		out[len(items)-1-i] = it
	}
	return out
}
