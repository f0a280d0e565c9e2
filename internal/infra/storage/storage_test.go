package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryStorePut(t *testing.T) {
	store := NewMemoryStore("")

	url, err := store.Put(context.Background(), "beats/abc_audio_track.mp3", []byte("audio"))
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if url != "https://storage.beatvard.com/beats/abc_audio_track.mp3" {
		t.Errorf("url = %q", url)
	}

	data, ok := store.Get("beats/abc_audio_track.mp3")
	if !ok {
		t.Fatal("object not found after Put")
	}
	if string(data) != "audio" {
		t.Errorf("stored bytes = %q", data)
	}
}

func TestMemoryStoreCustomBaseURL(t *testing.T) {
	store := NewMemoryStore("http://localhost:9000/")

	url, err := store.Put(context.Background(), "covers/x.png", []byte("img"))
	if err != nil {
		t.Fatal(err)
	}
	if url != "http://localhost:9000/covers/x.png" {
		t.Errorf("url = %q", url)
	}
}

func TestMemoryStoreCopiesData(t *testing.T) {
	store := NewMemoryStore("")
	buf := []byte("original")

	if _, err := store.Put(context.Background(), "k", buf); err != nil {
		t.Fatal(err)
	}
	buf[0] = 'X'

	data, _ := store.Get("k")
	if string(data) != "original" {
		t.Error("store shares the caller's buffer")
	}
}

func TestMemoryStoreCancelledContext(t *testing.T) {
	store := NewMemoryStore("")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.Put(ctx, "k", []byte("v")); err == nil {
		t.Error("expected error for cancelled context")
	}
	if store.Len() != 0 {
		t.Error("cancelled Put stored an object")
	}
}

func TestFilesystemStorePut(t *testing.T) {
	dir := t.TempDir()
	store := NewFilesystemStore(dir, "http://files.local")

	url, err := store.Put(context.Background(), "beats/id_audio_a.mp3", []byte("bytes"))
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if url != "http://files.local/beats/id_audio_a.mp3" {
		t.Errorf("url = %q", url)
	}

	data, err := os.ReadFile(filepath.Join(dir, "beats", "id_audio_a.mp3"))
	if err != nil {
		t.Fatalf("object file missing: %v", err)
	}
	if string(data) != "bytes" {
		t.Errorf("file contents = %q", data)
	}
}

func TestFilesystemStoreRejectsEscapingKeys(t *testing.T) {
	store := NewFilesystemStore(t.TempDir(), "")

	for _, key := range []string{"", "/abs", "a/../../etc/passwd", "a//b", "."} {
		if _, err := store.Put(context.Background(), key, []byte("x")); err == nil {
			t.Errorf("key %q accepted, want error", key)
		}
	}
}

func TestValidKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"beats/a.mp3", true},
		{"covers/id_cover_art.png", true},
		{"plain", true},
		{"", false},
		{"/rooted", false},
		{"has/../dotdot", false},
		{"trailing/", false},
	}
	for _, tt := range tests {
		if got := validKey(tt.key); got != tt.want {
			t.Errorf("validKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
