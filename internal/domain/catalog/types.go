// Package catalog provides the beat catalog model and the filtering engine
// behind the browse view.
package catalog

// Beat represents one purchasable beat and its listing metadata.
type Beat struct {
	ID       string   `json:"id" toml:"id"`
	Title    string   `json:"title" toml:"title"`
	Producer string   `json:"producer" toml:"producer"`
	BPM      int      `json:"bpm" toml:"bpm"`
	Price    int      `json:"price" toml:"price"` // minor currency units
	Tags     []string `json:"tags" toml:"tags"`
	CoverURL string   `json:"coverUrl,omitempty" toml:"cover_url"`
}

// FilterSpec describes the user's current filter selections.
// An empty tag selection means no tag restriction; an empty query means no
// text restriction.
type FilterSpec struct {
	SelectedTags []string `json:"selectedTags"`
	SearchQuery  string   `json:"searchQuery"`
}

// KnownTags is the controlled genre/mood vocabulary offered by the UI.
var KnownTags = []string{
	"Trap", "Hip-Hop", "Boom Bap", "EDM", "Lo-Fi", "Dubstep",
	"Dark", "Chill", "Melodic", "Heavy Bass", "Old School", "Energetic",
}

// IsKnownTag reports whether tag belongs to the controlled vocabulary.
func IsKnownTag(tag string) bool {
	for _, t := range KnownTags {
		if t == tag {
			return true
		}
	}
	return false
}

// Catalog is an ordered, immutable snapshot of beats. Relative order is the
// listing order and is preserved by filtering.
type Catalog struct {
	beats []Beat
	byID  map[string]int
}

// NewCatalog builds a snapshot from an ordered sequence of beats.
func NewCatalog(beats []Beat) *Catalog {
	byID := make(map[string]int, len(beats))
	for i, b := range beats {
		byID[b.ID] = i
	}
	return &Catalog{beats: beats, byID: byID}
}

// Beats returns the full ordered sequence.
func (c *Catalog) Beats() []Beat {
	return c.beats
}

// Get returns the beat with the given id.
func (c *Catalog) Get(id string) (Beat, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Beat{}, false
	}
	return c.beats[i], true
}

// Contains reports whether the snapshot holds the given id.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Len returns the number of beats in the snapshot.
func (c *Catalog) Len() int {
	return len(c.beats)
}
