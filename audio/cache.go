package audio

import (
	"sync"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/junk-mart/constants"
	"github.com/lixenwraith/junk-mart/core"
)

// format is the output format shared by every cue and the speaker
var format = beep.Format{
	SampleRate:  beep.SampleRate(constants.AudioSampleRate),
	NumChannels: 2,
	Precision:   2,
}

// monoStreamer plays a mono float buffer on both channels
type monoStreamer struct {
	buf floatBuffer
	pos int
}

func (m *monoStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if m.pos >= len(m.buf) {
		return 0, false
	}
	for i := range samples {
		if m.pos >= len(m.buf) {
			break
		}
		samples[i][0] = m.buf[m.pos]
		samples[i][1] = m.buf[m.pos]
		m.pos++
		n++
	}
	return n, true
}

func (m *monoStreamer) Err() error {
	return nil
}

// soundCache stores rendered cues as beep buffers
type soundCache struct {
	mu    sync.RWMutex
	store [core.SoundTypeCount]*beep.Buffer
}

func newSoundCache() *soundCache {
	return &soundCache{}
}

// get returns the cached buffer, rendering it on first use
func (c *soundCache) get(st core.SoundType) *beep.Buffer {
	if st < 0 || st >= core.SoundTypeCount {
		return nil
	}

	c.mu.RLock()
	buf := c.store[st]
	c.mu.RUnlock()
	if buf != nil {
		return buf
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.store[st] != nil {
		return c.store[st]
	}

	samples := generateSound(st)
	if samples == nil {
		return nil
	}
	buf = beep.NewBuffer(format)
	buf.Append(&monoStreamer{buf: samples})
	c.store[st] = buf
	return buf
}

// preload renders every cue so the first play does not stall the mixer
func (c *soundCache) preload() {
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		c.get(st)
	}
}
