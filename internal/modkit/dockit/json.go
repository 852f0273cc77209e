package dockit

import (
	"context"
	"encoding/json"

	perr "sensutv/internal/platform/errors"
)

const jsonContentType = "application/json"

// Load fetches the document at key and decodes it into out.
// A missing key surfaces unchanged so callers can treat it as an empty document.
func Load(ctx context.Context, d Docs, key string, out any) error {
	data, err := d.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeJSON, "decode %s", key)
	}
	return nil
}

// Save encodes v and overwrites the document at key.
// Writes are whole document, last write wins.
func Save(ctx context.Context, d Docs, key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeJSON, "encode %s", key)
	}
	return d.Put(ctx, key, data, jsonContentType)
}
