package oto

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/otoate/scaledegree"
)

// Context plays rendered tones on the default audio device.
type Context struct {
	context    *oto.Context
	sampleRate int

	mu      sync.Mutex
	playing []*oto.Player
}

const otoBufferSize = 50 * time.Millisecond

var _ scaledegree.AudioContext = (*Context)(nil)

// NewContext opens the audio device and waits until it is ready.
func NewContext(sampleRate int) (*Context, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   otoBufferSize,
	}
	context, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	<-ready
	return &Context{context: context, sampleRate: sampleRate}, nil
}

// PlayTone renders the tone and starts playing it. It returns without waiting
// for the tone to finish; overlapping tones are mixed by the device.
func (c *Context) PlayTone(offset int, duration time.Duration) error {
	if err := c.context.Err(); err != nil {
		return fmt.Errorf("oto context failed: %w", err)
	}
	buffer := scaledegree.RenderTone(offset, duration, c.sampleRate)
	data := FloatBufferTo16BitLE(buffer, nil)
	player := c.context.NewPlayer(bytes.NewReader(data))
	player.Play()
	c.keep(player)
	return nil
}

// keep holds a reference to every player still playing, releasing the ones
// that have finished.
func (c *Context) keep(p *oto.Player) {
	c.mu.Lock()
	defer c.mu.Unlock()
	alive := c.playing[:0]
	for _, q := range c.playing {
		if q.IsPlaying() {
			alive = append(alive, q)
		}
	}
	c.playing = append(alive, p)
}

// Close stops all tones. The oto context itself cannot be closed; it lives
// until the process exits.
func (c *Context) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.playing {
		p.Pause()
	}
	c.playing = nil
	return nil
}
