package ingest

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/beatvard/beatvard-backend/internal/domain/asset"
	"github.com/beatvard/beatvard-backend/internal/infra/storage"
)

// Key prefixes group objects by role in the store.
const (
	audioKeyPrefix = "beats/"
	coverKeyPrefix = "covers/"
)

// Service turns validated upload requests into storage records.
type Service struct {
	store storage.ObjectStore

	// Injectable for tests.
	now   func() time.Time
	newID func() string
}

// NewService creates an ingestion service writing to the given store.
func NewService(store storage.ObjectStore) *Service {
	return &Service{
		store: store,
		now:   time.Now,
		newID: asset.NewID,
	}
}

// Ingest validates the request, decodes its payloads, stores the decoded
// objects, and assembles the result. Validation is all-or-nothing before any
// decoding, and a failed cover write fails the whole request: the caller
// never sees a half-populated result. Identical requests produce distinct
// asset ids.
func (s *Service) Ingest(ctx context.Context, req *UploadRequest) (*IngestionResult, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	assetID := s.newID()

	audioBytes, err := asset.Decode(req.AudioFile.Data)
	if err != nil {
		return nil, &PayloadError{Field: "audioFile", Err: err}
	}

	var coverBytes []byte
	if req.CoverFile != nil {
		coverBytes, err = asset.Decode(req.CoverFile.Data)
		if err != nil {
			return nil, &PayloadError{Field: "coverFile", Err: err}
		}
	}

	audioName := asset.ObjectName(assetID, asset.RoleAudio, req.AudioFile.Name)
	audioKey := audioKeyPrefix + audioName

	audioURL, err := s.store.Put(ctx, audioKey, audioBytes)
	if err != nil {
		return nil, &StorageError{Key: audioKey, Err: err}
	}

	result := &IngestionResult{
		AssetID: assetID,
		Metadata: Metadata{
			Title:       req.Title,
			BPM:         *req.BPM,
			Price:       *req.Price,
			Description: req.Description,
			Tags:        normalizeTags(req.Tags),
			UploadedAt:  s.now(),
		},
		Audio: ObjectLocation{
			URL:  audioURL,
			Name: audioName,
			Size: len(audioBytes),
		},
	}

	if req.CoverFile != nil {
		coverName := asset.ObjectName(assetID, asset.RoleCover, req.CoverFile.Name)
		coverKey := coverKeyPrefix + coverName

		coverURL, err := s.store.Put(ctx, coverKey, coverBytes)
		if err != nil {
			return nil, &StorageError{Key: coverKey, Err: err}
		}
		result.Cover = &ObjectLocation{
			URL:  coverURL,
			Name: coverName,
			Size: len(coverBytes),
		}
	}

	log.Info().
		Str("assetId", assetID).
		Str("title", result.Metadata.Title).
		Int("audioSize", result.Audio.Size).
		Bool("hasCover", result.Cover != nil).
		Msg("Beat ingested")

	return result, nil
}

// validate checks every required field and reports all violations at once.
func validate(req *UploadRequest) error {
	var missing []string

	if req.Title == "" {
		missing = append(missing, "title")
	}
	if req.BPM == nil || *req.BPM <= 0 {
		missing = append(missing, "bpm")
	}
	if req.Price == nil || *req.Price < 0 {
		missing = append(missing, "price")
	}
	if req.AudioFile == nil || req.AudioFile.Name == "" || req.AudioFile.Data == "" {
		missing = append(missing, "audioFile")
	}

	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// normalizeTags replaces a nil tag list with an empty one so the result
// always serializes as an array.
func normalizeTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
