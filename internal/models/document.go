package models

import "time"

// Document is one uploaded file, keyed by Type: the backend expects at most
// one active upload per type, though the client does not enforce it.
type Document struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	FileName   string    `json:"fileName"`
	UploadedAt time.Time `json:"uploadedAt"`
}
