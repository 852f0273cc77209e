package repo

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	perr "sensutv/internal/platform/errors"
	"sensutv/internal/services/catalog/domain"
)

type memDocs struct {
	data map[string][]byte
}

func newMemDocs() *memDocs { return &memDocs{data: map[string][]byte{}} }

func (m *memDocs) Get(_ context.Context, key string) ([]byte, error) {
	b, ok := m.data[key]
	if !ok {
		return nil, perr.NotFoundf("no document at %s", key)
	}
	return b, nil
}

func (m *memDocs) Put(_ context.Context, key string, data []byte, _ string) error {
	m.data[key] = append([]byte(nil), data...)
	return nil
}

func rec(id string, created time.Time) domain.UploadRecord {
	return domain.UploadRecord{
		ID:        id,
		Bucket:    "sensutv-media",
		ModelID:   "aurora",
		ModelName: "Aurora",
		Type:      domain.TypeVideo,
		Category:  "teaser",
		Date:      created.Format("2006-01-02"),
		Path:      "peru/aurora/video/teaser/" + created.Format("2006-01-02") + "/",
		CreatedAt: created,
	}
}

func TestSplit_EmptyStoreServesEmptyCatalog(t *testing.T) {
	t.Parallel()

	st := NewSplit().Bind(newMemDocs())
	ctx := context.Background()

	models, err := st.Models(ctx)
	if err != nil {
		t.Fatalf("Models: %v", err)
	}
	if len(models) != 0 {
		t.Fatalf("want empty models, got %d", len(models))
	}

	items, err := st.Uploads(ctx)
	if err != nil {
		t.Fatalf("Uploads: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("want empty uploads, got %d", len(items))
	}
}

func TestSplit_RoundTrip(t *testing.T) {
	t.Parallel()

	d := newMemDocs()
	st := NewSplit().Bind(d)
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	models := map[string]domain.ModelProfile{
		"aurora": {ID: "aurora", Name: "Aurora", Country: "Perú", Age: "23", Tags: []string{"latina"}, CreatedAt: now},
	}
	if err := st.SaveModels(ctx, models); err != nil {
		t.Fatalf("SaveModels: %v", err)
	}
	got, err := st.Models(ctx)
	if err != nil {
		t.Fatalf("Models: %v", err)
	}
	if got["aurora"].Name != "Aurora" || got["aurora"].Country != "Perú" {
		t.Fatalf("models round trip mismatch: %+v", got["aurora"])
	}

	items := []domain.UploadRecord{rec("a", now), rec("b", now.Add(time.Hour))}
	if err := st.SaveUploads(ctx, items); err != nil {
		t.Fatalf("SaveUploads: %v", err)
	}
	back, err := st.Uploads(ctx)
	if err != nil {
		t.Fatalf("Uploads: %v", err)
	}
	if len(back) != 2 || back[0].ID != "a" || back[1].ID != "b" {
		t.Fatalf("uploads should stay oldest first: %+v", back)
	}

	// both documents exist separately
	if _, ok := d.data["models.json"]; !ok {
		t.Fatalf("expected models.json to be written")
	}
	if _, ok := d.data["uploads.json"]; !ok {
		t.Fatalf("expected uploads.json to be written")
	}
}

func TestSplit_BrokenDocumentServesEmpty(t *testing.T) {
	t.Parallel()

	d := newMemDocs()
	d.data["models.json"] = []byte("{broken")
	d.data["uploads.json"] = []byte("not json either")
	st := NewSplit().Bind(d)
	ctx := context.Background()

	models, err := st.Models(ctx)
	if err != nil || len(models) != 0 {
		t.Fatalf("broken models.json should serve empty, got %v %v", models, err)
	}
	items, err := st.Uploads(ctx)
	if err != nil || len(items) != 0 {
		t.Fatalf("broken uploads.json should serve empty, got %v %v", items, err)
	}
}

func TestManifest_NormalizesOrdering(t *testing.T) {
	t.Parallel()

	d := newMemDocs()
	st := NewManifest().Bind(d)
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	// contract order is oldest first
	items := []domain.UploadRecord{rec("old", now), rec("mid", now.Add(time.Hour)), rec("new", now.Add(2*time.Hour))}
	if err := st.SaveUploads(ctx, items); err != nil {
		t.Fatalf("SaveUploads: %v", err)
	}

	back, err := st.Uploads(ctx)
	if err != nil {
		t.Fatalf("Uploads: %v", err)
	}
	if len(back) != 3 || back[0].ID != "old" || back[2].ID != "new" {
		t.Fatalf("contract order should survive the round trip: %+v", back)
	}

	// physical document stores newest first
	var doc manifestDoc
	raw := d.data["manifest.json"]
	if raw == nil {
		t.Fatalf("expected manifest.json to be written")
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("decode manifest: %v", err)
	}
	if len(doc.Items) != 3 || doc.Items[0].ID != "new" || doc.Items[2].ID != "old" {
		t.Fatalf("manifest should store newest first: %+v", doc.Items)
	}
}

func TestManifest_ModelsShareTheDocument(t *testing.T) {
	t.Parallel()

	d := newMemDocs()
	st := NewManifest().Bind(d)
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	if err := st.SaveModels(ctx, map[string]domain.ModelProfile{
		"aurora": {ID: "aurora", Name: "Aurora", CreatedAt: now},
	}); err != nil {
		t.Fatalf("SaveModels: %v", err)
	}
	if err := st.SaveUploads(ctx, []domain.UploadRecord{rec("a", now)}); err != nil {
		t.Fatalf("SaveUploads: %v", err)
	}

	// saving uploads must not drop the models half of the manifest
	models, err := st.Models(ctx)
	if err != nil {
		t.Fatalf("Models: %v", err)
	}
	if _, ok := models["aurora"]; !ok {
		t.Fatalf("models lost after uploads save: %+v", models)
	}
	if _, ok := d.data["models.json"]; ok {
		t.Fatalf("manifest layout must not write models.json")
	}
}
