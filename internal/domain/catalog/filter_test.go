package catalog

import (
	"reflect"
	"testing"
)

func testBeats() []Beat {
	return []Beat{
		{ID: "1", Title: "Midnight Vibes", Producer: "DJ Astronaut", BPM: 140, Price: 2500, Tags: []string{"Trap", "Dark", "Heavy Bass"}},
		{ID: "2", Title: "Summer Dreams", Producer: "BeatMaker Pro", BPM: 128, Price: 3000, Tags: []string{"Hip-Hop", "Chill", "Melodic"}},
		{ID: "3", Title: "Urban Flow", Producer: "Sound Wave", BPM: 95, Price: 2000, Tags: []string{"Boom Bap", "Old School", "Vinyl"}},
		{ID: "4", Title: "Electric Night", Producer: "DJ Astronaut", BPM: 150, Price: 3500, Tags: []string{"EDM", "Energetic", "Club"}},
		{ID: "5", Title: "Lofi Sunset", Producer: "Chill Beats", BPM: 85, Price: 1800, Tags: []string{"Lo-Fi", "Chill", "Study"}},
		{ID: "6", Title: "Bass Drop", Producer: "Sound Wave", BPM: 145, Price: 4000, Tags: []string{"Dubstep", "Dark", "Bass"}},
	}
}

func ids(beats []Beat) []string {
	out := make([]string, len(beats))
	for i, b := range beats {
		out[i] = b.ID
	}
	return out
}

func TestFilterEmptySpecIsIdentity(t *testing.T) {
	beats := testBeats()
	got := Filter(beats, FilterSpec{})

	if !reflect.DeepEqual(got, beats) {
		t.Errorf("empty spec changed result: got %v", ids(got))
	}
}

func TestFilterByTags(t *testing.T) {
	tests := []struct {
		name     string
		selected []string
		wantIDs  []string
	}{
		{"single tag", []string{"Dark"}, []string{"1", "6"}},
		{"or semantics across tags", []string{"Trap", "Chill"}, []string{"1", "2", "5"}},
		{"tag nobody carries", []string{"Jazz"}, []string{}},
		{"nil selection matches all", nil, []string{"1", "2", "3", "4", "5", "6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(testBeats(), FilterSpec{SelectedTags: tt.selected})
			if !reflect.DeepEqual(ids(got), tt.wantIDs) {
				t.Errorf("got %v, want %v", ids(got), tt.wantIDs)
			}
		})
	}
}

func TestFilterTagResultsIntersectSelection(t *testing.T) {
	selected := []string{"Chill"}
	got := Filter(testBeats(), FilterSpec{SelectedTags: selected})

	for _, beat := range got {
		if !matchesTags(beat, selected) {
			t.Errorf("beat %s in result without a selected tag", beat.ID)
		}
	}

	// And nothing outside the result matches.
	inResult := make(map[string]bool)
	for _, beat := range got {
		inResult[beat.ID] = true
	}
	for _, beat := range testBeats() {
		if !inResult[beat.ID] && matchesTags(beat, selected) {
			t.Errorf("beat %s matches selection but was excluded", beat.ID)
		}
	}
}

func TestFilterSearchCaseInsensitive(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"upper case title match", "MIDNIGHT", []string{"1"}},
		{"lower case producer match", "sound wave", []string{"3", "6"}},
		{"mixed case substring", "DrEaM", []string{"2"}},
		{"no match", "xyzzy", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(testBeats(), FilterSpec{SearchQuery: tt.query})
			if !reflect.DeepEqual(ids(got), tt.wantIDs) {
				t.Errorf("query %q: got %v, want %v", tt.query, ids(got), tt.wantIDs)
			}
		})
	}
}

func TestFilterCombinesConjunctively(t *testing.T) {
	beats := testBeats()
	spec := FilterSpec{SelectedTags: []string{"Dark"}, SearchQuery: "bass"}

	got := Filter(beats, spec)

	// Only "Bass Drop" is both Dark-tagged and matches "bass".
	if !reflect.DeepEqual(ids(got), []string{"6"}) {
		t.Errorf("got %v, want [6]", ids(got))
	}

	// Must equal the intersection of the two single-predicate results.
	tagOnly := Filter(beats, FilterSpec{SelectedTags: spec.SelectedTags})
	textOnly := Filter(beats, FilterSpec{SearchQuery: spec.SearchQuery})
	inText := make(map[string]bool)
	for _, b := range textOnly {
		inText[b.ID] = true
	}
	var intersection []string
	for _, b := range tagOnly {
		if inText[b.ID] {
			intersection = append(intersection, b.ID)
		}
	}
	if !reflect.DeepEqual(ids(got), intersection) {
		t.Errorf("conjunction %v != intersection %v", ids(got), intersection)
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	got := Filter(testBeats(), FilterSpec{SelectedTags: []string{"Dark"}})

	want := []string{"1", "6"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("got %v in order, want %v", ids(got), want)
	}
}

func TestCatalogLookup(t *testing.T) {
	c := NewCatalog(testBeats())

	beat, ok := c.Get("3")
	if !ok {
		t.Fatal("expected beat 3 to exist")
	}
	if beat.Title != "Urban Flow" {
		t.Errorf("beat 3 title = %q", beat.Title)
	}

	if _, ok := c.Get("999"); ok {
		t.Error("unexpected hit for unknown id")
	}
	if !c.Contains("1") || c.Contains("999") {
		t.Error("Contains gave wrong answer")
	}
	if c.Len() != 6 {
		t.Errorf("Len = %d, want 6", c.Len())
	}
}

func TestIsKnownTag(t *testing.T) {
	if !IsKnownTag("Trap") {
		t.Error("Trap should be a known tag")
	}
	if IsKnownTag("Polka") {
		t.Error("Polka should not be a known tag")
	}
}
