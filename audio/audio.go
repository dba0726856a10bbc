// Package audio plays short sound effects decoded from the app content.
package audio

import (
	"io/fs"
	"log"
	"path"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
)

// SampleRate is the speaker output rate.
const SampleRate beep.SampleRate = 44100

var (
	speakerOnce sync.Once
	speakerErr  error
)

// Player holds decoded sounds keyed by file name.
type Player struct {
	buffers map[string]*beep.Buffer
	mu      sync.Mutex
}

// NewPlayer decodes each named .ogg file under dir in content. Files that
// cannot be opened or decoded are logged and skipped; the speaker is only
// initialized when at least one sound loaded.
func NewPlayer(content fs.FS, dir string, names ...string) *Player {
	p := &Player{buffers: loadSounds(content, dir, names...)}

	if len(p.buffers) > 0 {
		speakerOnce.Do(func() {
			speakerErr = speaker.Init(SampleRate, SampleRate.N(time.Second/10))
		})
		if speakerErr != nil {
			log.Printf("Audio disabled: Failed to initialize speaker: %v", speakerErr)
			p.buffers = map[string]*beep.Buffer{}
		}
	}
	return p
}

func loadSounds(content fs.FS, dir string, names ...string) map[string]*beep.Buffer {
	buffers := make(map[string]*beep.Buffer)

	for _, filename := range names {
		if filename == "" {
			continue
		}
		if _, ok := buffers[filename]; ok {
			continue
		}

		filepath := path.Join(dir, filename)
		data, err := content.Open(filepath)
		if err != nil {
			log.Printf("Failed to open audio %s: %v", filepath, err)
			continue
		}

		streamer, format, err := vorbis.Decode(data)
		if err != nil {
			log.Printf("Failed to decode audio %s: %v", filepath, err)
			data.Close()
			continue
		}

		buffer := beep.NewBuffer(format)
		buffer.Append(streamer)
		buffers[filename] = buffer

		streamer.Close()
		data.Close()
	}
	return buffers
}

// Has reports whether name was loaded.
func (p *Player) Has(name string) bool {
	_, ok := p.buffers[name]
	return ok
}

// Play starts name on the speaker without waiting for it to finish.
func (p *Player) Play(name string) {
	b, ok := p.buffers[name]
	if !ok {
		log.Printf("Sound buffer not found for %s", name)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	speaker.Play(b.Streamer(0, b.Len()))
}
