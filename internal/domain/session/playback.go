package session

// Playback tracks which single beat, if any, is currently playing. The
// single current slot makes "one beat at a time" structural; there is no
// runtime check to enforce it. Playback is not safe for concurrent use on
// its own; Session serializes access.
type Playback struct {
	current string // empty means idle
}

// NewPlayback creates an idle playback controller.
func NewPlayback() *Playback {
	return &Playback{}
}

// Toggle flips playback for the id: if it is the one playing, playback goes
// idle (pause); otherwise it becomes the playing beat, silently interrupting
// whatever was playing before. Returns whether the id is playing afterwards.
func (p *Playback) Toggle(id string) bool {
	if p.current == id {
		p.current = ""
		return false
	}
	p.current = id
	return true
}

// Stop forces the controller to idle regardless of current state.
func (p *Playback) Stop() {
	p.current = ""
}

// Current returns the playing id, and false when idle.
func (p *Playback) Current() (string, bool) {
	if p.current == "" {
		return "", false
	}
	return p.current, true
}
