package audio

import (
	"os"
	"testing"
	"testing/fstest"
)

func TestNewPlayerSkipsMissingAndBrokenFiles(t *testing.T) {
	content := fstest.MapFS{
		"assets/broken.ogg": &fstest.MapFile{Data: []byte("not a vorbis stream")},
	}

	p := NewPlayer(content, "assets", "missing.ogg", "broken.ogg", "")
	if p.Has("missing.ogg") || p.Has("broken.ogg") {
		t.Error("unreadable sounds should not be loaded")
	}

	// Playing an unknown sound only logs.
	p.Play("missing.ogg")
}

func TestLoadSoundsDecodesChime(t *testing.T) {
	buffers := loadSounds(os.DirFS(".."), "assets", "chime.ogg", "chime.ogg", "missing.ogg")
	if len(buffers) != 1 {
		t.Fatalf("loaded %d sounds, want 1", len(buffers))
	}

	p := &Player{buffers: buffers}
	if !p.Has("chime.ogg") {
		t.Fatal("chime.ogg was not decoded")
	}
	b := buffers["chime.ogg"]
	if b.Len() != 22050 {
		t.Errorf("chime has %d samples, want 22050", b.Len())
	}
	if b.Format().SampleRate != SampleRate {
		t.Errorf("chime sample rate = %d, want %d", b.Format().SampleRate, SampleRate)
	}
}
