// Package domain defines the types and interfaces for the catalog service
package domain

import "time"

// ModelProfile is a registered model keyed by its slug id
type ModelProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	Age       string    `json:"age"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

// UploadRecord is one planned or recorded destination in the media store
type UploadRecord struct {
	ID        string    `json:"id,omitempty"`
	Bucket    string    `json:"bucket"`
	Region    string    `json:"region"`
	ModelID   string    `json:"model_id"`
	ModelName string    `json:"model_name"`
	Country   string    `json:"country"`
	Type      string    `json:"type"`
	Category  string    `json:"category"`
	Date      string    `json:"date"`
	Title     string    `json:"title"`
	Path      string    `json:"path"`
	ThumbPath string    `json:"thumb_path,omitempty"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Record sources
const (
	SourcePlan  = "plan"
	SourceMedia = "media"
)

// Content types accepted by the plan flow
const (
	TypeVideo = "video"
	TypeFoto  = "foto"
)

// RegisterInput carries the raw answers collected for a new profile.
// Age and tags arrive as typed text and are filtered here, not upstream.
type RegisterInput struct {
	Name    string
	Country string
	AgeRaw  string
	TagsRaw string
}

// PlanInput names an intended upload destination
type PlanInput struct {
	ModelID  string
	Type     string
	Category string
}

// MediaInput carries attachment bytes to persist under the media tree
type MediaInput struct {
	ModelID     string
	Type        string
	Filename    string
	Data        []byte
	ContentType string
	ThumbName   string
	Thumb       []byte
	Caption     string
}
