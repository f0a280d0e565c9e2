// Package ingest validates beat upload requests and turns them into
// addressable storage records.
package ingest

import "time"

// AssetUpload is one uploaded file as submitted by the client: the original
// file name, the base64 (or data URL) payload, and the declared media type.
// The declared type and size are never trusted; sizes are always taken from
// the decoded bytes.
type AssetUpload struct {
	Name string `json:"name"`
	Data string `json:"data"`
	Type string `json:"type"`
}

// UploadRequest is the body of an upload call. BPM and Price are pointers so
// an absent field can be told apart from a zero value.
type UploadRequest struct {
	Title       string       `json:"title"`
	BPM         *int         `json:"bpm"`
	Price       *int         `json:"price"`
	Description string       `json:"description"`
	Tags        []string     `json:"tags"`
	AudioFile   *AssetUpload `json:"audioFile"`
	CoverFile   *AssetUpload `json:"coverFile"`
}

// Metadata echoes the validated request fields plus the ingestion timestamp.
type Metadata struct {
	Title       string    `json:"title"`
	BPM         int       `json:"bpm"`
	Price       int       `json:"price"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// ObjectLocation describes where one decoded asset was stored. Size is the
// decoded byte length.
type ObjectLocation struct {
	URL  string `json:"url"`
	Name string `json:"name"`
	Size int    `json:"size"`
}

// IngestionResult is produced once per successful ingestion and never
// mutated afterwards. Cover is nil for audio-only uploads.
type IngestionResult struct {
	AssetID  string          `json:"beatId"`
	Metadata Metadata        `json:"metadata"`
	Audio    ObjectLocation  `json:"audio"`
	Cover    *ObjectLocation `json:"cover"`
}
