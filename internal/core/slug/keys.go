package slug

import (
	"fmt"
	"time"
)

// Keys here are addressing conventions for the record store, not filesystem
// operations; the object backend never creates directories.

// Day formats t as a UTC calendar day, YYYY-MM-DD
func Day(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// PlanKey derives the storage prefix for a planned upload.
// All parts are expected to be normalized already.
func PlanKey(countrySlug, modelID, contentType, category string, t time.Time) string {
	return fmt.Sprintf("%s/%s/%s/%s/%s/", countrySlug, modelID, contentType, category, Day(t))
}

// MediaKey derives the object key for stored media bytes
func MediaKey(modelSlug, filename string, t time.Time) string {
	u := t.UTC()
	return fmt.Sprintf("models/%s/media/%04d/%02d/%02d/%s", modelSlug, u.Year(), u.Month(), u.Day(), filename)
}

// ThumbKey derives the object key for a media thumbnail, a parallel tree to MediaKey
func ThumbKey(modelSlug, filename string, t time.Time) string {
	u := t.UTC()
	return fmt.Sprintf("models/%s/thumbs/%04d/%02d/%02d/%s", modelSlug, u.Year(), u.Month(), u.Day(), filename)
}
