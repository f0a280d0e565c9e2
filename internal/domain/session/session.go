// Package session provides the per-client browsing state: cart, playback,
// and the active filter selection. Nothing here survives a restart; a
// session lives exactly as long as its client connection.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/beatvard/beatvard-backend/internal/domain/catalog"
)

// ErrUnknownBeat is returned when an operation references an id that is not
// in the session's catalog snapshot.
var ErrUnknownBeat = errors.New("session: unknown beat id")

// Session owns one browsing client's state against a fixed catalog snapshot.
// It is safe for concurrent use; transport callbacks may run on multiple
// goroutines.
type Session struct {
	catalog *catalog.Catalog

	mu       sync.RWMutex
	cart     *Cart
	playback *Playback
	filter   catalog.FilterSpec
}

// New creates a session over the given catalog snapshot.
func New(c *catalog.Catalog) *Session {
	return &Session{
		catalog:  c,
		cart:     NewCart(),
		playback: NewPlayback(),
	}
}

// AddToCart inserts the beat into the cart. Adding an already-carted beat is
// a no-op, not an error.
func (s *Session) AddToCart(id string) error {
	if !s.catalog.Contains(id) {
		return fmt.Errorf("%w: %s", ErrUnknownBeat, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(id)
	return nil
}

// InCart reports whether the beat is in the cart.
func (s *Session) InCart(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.Contains(id)
}

// CartIDs returns the carted beat ids in insertion order.
func (s *Session) CartIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.IDs()
}

// TogglePlay starts playback of the beat, pauses it if it is already the one
// playing, or interrupts whatever else was playing.
func (s *Session) TogglePlay(id string) error {
	if !s.catalog.Contains(id) {
		return fmt.Errorf("%w: %s", ErrUnknownBeat, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playback.Toggle(id)
	return nil
}

// StopPlayback forces playback to idle.
func (s *Session) StopPlayback() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playback.Stop()
}

// NowPlaying returns the currently playing beat, if any.
func (s *Session) NowPlaying() (catalog.Beat, bool) {
	s.mu.RLock()
	id, ok := s.playback.Current()
	s.mu.RUnlock()
	if !ok {
		return catalog.Beat{}, false
	}
	return s.catalog.Get(id)
}

// SetQuery replaces the free-text search query.
func (s *Session) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.SearchQuery = query
}

// ToggleTag adds the tag to the selection, or removes it if already
// selected.
func (s *Session) ToggleTag(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.filter.SelectedTags {
		if t == tag {
			s.filter.SelectedTags = append(s.filter.SelectedTags[:i], s.filter.SelectedTags[i+1:]...)
			return
		}
	}
	s.filter.SelectedTags = append(s.filter.SelectedTags, tag)
}

// Filter returns a copy of the active filter spec.
func (s *Session) Filter() catalog.FilterSpec {
	s.mu.RLock()
	defer s.mu.RUnlock()

	spec := catalog.FilterSpec{SearchQuery: s.filter.SearchQuery}
	spec.SelectedTags = append(spec.SelectedTags, s.filter.SelectedTags...)
	return spec
}

// Visible runs the filter engine over the catalog snapshot with the active
// spec and returns the visible beats in catalog order.
func (s *Session) Visible() []catalog.Beat {
	return catalog.Filter(s.catalog.Beats(), s.Filter())
}
