package domain

import "context"

// RegistryPort manages model profiles
type RegistryPort interface {
	RegisterModel(ctx context.Context, in RegisterInput) (ModelProfile, error)
	ListModels(ctx context.Context) (map[string]ModelProfile, error)
	GetModel(ctx context.Context, id string) (ModelProfile, error)
}

// PlannerPort manages upload records and media persistence
type PlannerPort interface {
	PlanUpload(ctx context.Context, in PlanInput) (UploadRecord, error)
	RecordMedia(ctx context.Context, in MediaInput) (UploadRecord, error)
	ListUploads(ctx context.Context, newestFirst bool) ([]UploadRecord, error)
	LastUploads(ctx context.Context, n int) ([]UploadRecord, error)
}
