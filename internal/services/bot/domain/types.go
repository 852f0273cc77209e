// Package domain defines the types and interfaces for the bot service
package domain

import "context"

// Attachment points at a file hosted by the chat platform
type Attachment struct {
	FileID      string
	ThumbFileID string
	Filename    string
	ContentType string
}

// Incoming is one normalized chat message. Command is set when the text
// starts with a slash; Photo/Video when the message carries media.
type Incoming struct {
	ChatID  int64
	UserID  int64
	Command string
	Args    string
	Text    string
	Caption string
	Photo   *Attachment
	Video   *Attachment
}

// DispatcherPort routes one message and returns the reply text.
// An empty reply means the message was ignored.
type DispatcherPort interface {
	Dispatch(ctx context.Context, in Incoming) string
}

// FilePort downloads platform hosted files
type FilePort interface {
	Download(ctx context.Context, fileID string) ([]byte, error)
}
