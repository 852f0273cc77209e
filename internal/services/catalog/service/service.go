// Package service implements the catalog operations over the repo seam
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"sensutv/internal/core/slug"
	"sensutv/internal/modkit/dockit"
	perr "sensutv/internal/platform/errors"
	"sensutv/internal/services/catalog/domain"
	"sensutv/internal/services/catalog/repo"
)

// Config carries the storage identity stamped onto every record
type Config struct {
	Bucket string
	Region string

	// Now is the clock; tests pin it
	Now func() time.Time
}

// Service implements domain.RegistryPort and domain.PlannerPort
type Service struct {
	docs dockit.Docs
	st   repo.Storage
	cfg  Config
}

var (
	_ domain.RegistryPort = (*Service)(nil)
	_ domain.PlannerPort  = (*Service)(nil)
)

// New binds the repo to the doc store and returns the catalog service
func New(docs dockit.Docs, binder dockit.Binder[repo.Storage], cfg Config) *Service {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Service{
		docs: dockit.RequireDocs(docs),
		st:   dockit.MustBind(binder, docs),
		cfg:  cfg,
	}
}

// RegisterModel derives the profile id from the name and overwrites any
// existing profile under the same id
func (s *Service) RegisterModel(ctx context.Context, in domain.RegisterInput) (domain.ModelProfile, error) {
	now := s.cfg.Now().UTC()

	id := slug.Normalize(in.Name)
	if id == "" {
		id = fmt.Sprintf("model-%d", now.Unix())
	}

	age := slug.Digits(in.AgeRaw)
	if age == "" {
		age = "?"
	}

	p := domain.ModelProfile{
		ID:        id,
		Name:      strings.TrimSpace(in.Name),
		Country:   strings.TrimSpace(in.Country),
		Age:       age,
		Tags:      slug.Tags(in.TagsRaw),
		CreatedAt: now,
	}

	models, err := s.st.Models(ctx)
	if err != nil {
		return domain.ModelProfile{}, err
	}
	models[id] = p
	if err := s.st.SaveModels(ctx, models); err != nil {
		return domain.ModelProfile{}, err
	}
	return p, nil
}

// ListModels returns every registered profile keyed by id
func (s *Service) ListModels(ctx context.Context) (map[string]domain.ModelProfile, error) {
	return s.st.Models(ctx)
}

// GetModel returns the profile for id or NotFound
func (s *Service) GetModel(ctx context.Context, id string) (domain.ModelProfile, error) {
	models, err := s.st.Models(ctx)
	if err != nil {
		return domain.ModelProfile{}, err
	}
	p, ok := models[id]
	if !ok {
		return domain.ModelProfile{}, perr.NotFoundf("model %s is not registered", id)
	}
	return p, nil
}

// PlanUpload derives the destination key for the given model and appends
// the record. The record states intent only; nothing verifies files later
// appear at the path.
func (s *Service) PlanUpload(ctx context.Context, in domain.PlanInput) (domain.UploadRecord, error) {
	if in.Type != domain.TypeVideo && in.Type != domain.TypeFoto {
		return domain.UploadRecord{}, perr.Newf(perr.ErrorCodeInvalidArgument, "type must be video or foto, got %q", in.Type)
	}

	m, err := s.GetModel(ctx, in.ModelID)
	if err != nil {
		return domain.UploadRecord{}, err
	}

	now := s.cfg.Now().UTC()
	category := in.Category
	if category == "" {
		category = "general"
	}
	country := slug.Normalize(m.Country)
	if country == "" {
		country = "unknown"
	}

	rec := domain.UploadRecord{
		ID:        uuid.NewString(),
		Bucket:    s.cfg.Bucket,
		Region:    s.cfg.Region,
		ModelID:   m.ID,
		ModelName: m.Name,
		Country:   m.Country,
		Type:      in.Type,
		Category:  category,
		Date:      slug.Day(now),
		Title:     fmt.Sprintf("%s • %s • %s", m.Name, in.Type, category),
		Path:      slug.PlanKey(country, m.ID, in.Type, category, now),
		Source:    domain.SourcePlan,
		CreatedAt: now,
	}
	return rec, s.append(ctx, rec)
}

// RecordMedia stores attachment bytes under the media tree and appends a
// record pointing at them. Download and store are separate steps with no
// retry; a failed store leaves no record.
func (s *Service) RecordMedia(ctx context.Context, in domain.MediaInput) (domain.UploadRecord, error) {
	m, err := s.GetModel(ctx, in.ModelID)
	if err != nil {
		return domain.UploadRecord{}, err
	}
	if len(in.Data) == 0 {
		return domain.UploadRecord{}, perr.Newf(perr.ErrorCodeInvalidArgument, "media payload is empty")
	}

	now := s.cfg.Now().UTC()
	key := slug.MediaKey(m.ID, in.Filename, now)
	if err := s.docs.Put(ctx, key, in.Data, in.ContentType); err != nil {
		return domain.UploadRecord{}, err
	}

	var thumbKey string
	if len(in.Thumb) > 0 {
		thumbKey = slug.ThumbKey(m.ID, in.ThumbName, now)
		if err := s.docs.Put(ctx, thumbKey, in.Thumb, "image/jpeg"); err != nil {
			return domain.UploadRecord{}, err
		}
	}

	title := strings.TrimSpace(in.Caption)
	if title == "" {
		title = fmt.Sprintf("%s • %s • media", m.Name, in.Type)
	}

	rec := domain.UploadRecord{
		ID:        uuid.NewString(),
		Bucket:    s.cfg.Bucket,
		Region:    s.cfg.Region,
		ModelID:   m.ID,
		ModelName: m.Name,
		Country:   m.Country,
		Type:      in.Type,
		Category:  "media",
		Date:      slug.Day(now),
		Title:     title,
		Path:      key,
		ThumbPath: thumbKey,
		Source:    domain.SourceMedia,
		CreatedAt: now,
	}
	return rec, s.append(ctx, rec)
}

// ListUploads returns every record, oldest first unless newestFirst is set
func (s *Service) ListUploads(ctx context.Context, newestFirst bool) ([]domain.UploadRecord, error) {
	items, err := s.st.Uploads(ctx)
	if err != nil {
		return nil, err
	}
	if newestFirst {
		for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
			items[i], items[j] = items[j], items[i]
		}
	}
	return items, nil
}

// LastUploads returns the n most recent records, newest first
func (s *Service) LastUploads(ctx context.Context, n int) ([]domain.UploadRecord, error) {
	items, err := s.ListUploads(ctx, true)
	if err != nil {
		return nil, err
	}
	if n > 0 && len(items) > n {
		items = items[:n]
	}
	return items, nil
}

func (s *Service) append(ctx context.Context, rec domain.UploadRecord) error {
	items, err := s.st.Uploads(ctx)
	if err != nil {
		return err
	}
	return s.st.SaveUploads(ctx, append(items, rec))
}
