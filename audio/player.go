package audio

import (
	"sync"
)

//go:generate go tool mockgen -destination=./mocks/player_mock.go -package=mocks . Player

// Player plays clips fire-and-forget
type Player interface {
	Play(clip Clip)
}

// Discard drops every clip
type Discard struct{}

func (Discard) Play(Clip) {}

// Recorder keeps played clips in order, safe for concurrent use
type Recorder struct {
	mu    sync.Mutex
	clips []Clip
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Play(clip Clip) {
	r.mu.Lock()
	r.clips = append(r.clips, clip)
	r.mu.Unlock()
}

// Clips returns a copy of the played clips
func (r *Recorder) Clips() []Clip {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Clip, len(r.clips))
	copy(out, r.clips)
	return out
}

// Count returns how many clips of a family were played
func (r *Recorder) Count(family Clip) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.clips {
		if c.Family() == family {
			n++
		}
	}
	return n
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.clips = r.clips[:0]
	r.mu.Unlock()
}
