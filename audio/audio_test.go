package audio

import (
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/junk-mart/core"
	"github.com/lixenwraith/junk-mart/events"
)

func TestEveryCueIsGenerated(t *testing.T) {
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		t.Run(st.String(), func(t *testing.T) {
			buf := generateSound(st)
			require.NotEmpty(t, buf)
			for _, s := range buf {
				require.False(t, math.IsNaN(s))
				require.LessOrEqual(t, math.Abs(s), 1.0+1e-9)
			}
		})
	}
	assert.Nil(t, generateSound(core.SoundTypeCount))
}

func TestGenerationIsDeterministic(t *testing.T) {
	assert.Equal(t, generateSound(core.SoundWhoosh), generateSound(core.SoundWhoosh))
	assert.Equal(t, generateSound(core.SoundRumble), generateSound(core.SoundRumble))
}

func TestEnvelopeEndsSilent(t *testing.T) {
	buf := tone(waveSquare, 440, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond)
	assert.InDelta(t, 0, buf[0], 1e-9)
	assert.Less(t, math.Abs(buf[len(buf)-1]), 0.01)
}

func TestCacheRendersOnce(t *testing.T) {
	c := newSoundCache()
	first := c.get(core.SoundCoin)
	require.NotNil(t, first)
	assert.Same(t, first, c.get(core.SoundCoin))
	assert.Equal(t, len(generateSound(core.SoundCoin)), first.Len())
	assert.Nil(t, c.get(core.SoundType(-1)))
}

func TestMonoStreamerDuplicatesChannels(t *testing.T) {
	m := &monoStreamer{buf: floatBuffer{0.1, -0.2, 0.3}}
	out := make([][2]float64, 2)

	n, ok := m.Stream(out)
	assert.Equal(t, 2, n)
	assert.True(t, ok)
	assert.Equal(t, [2]float64{-0.2, -0.2}, out[1])

	n, ok = m.Stream(out)
	assert.Equal(t, 1, n)
	assert.True(t, ok)

	n, ok = m.Stream(out)
	assert.Zero(t, n)
	assert.False(t, ok)
}

func TestVolumeLevel(t *testing.T) {
	assert.InDelta(t, 0, volumeLevel(1), 1e-9)
	assert.InDelta(t, -1, volumeLevel(0.5), 1e-9)
	assert.InDelta(t, 0, volumeLevel(4), 1e-9)
	assert.True(t, math.IsInf(volumeLevel(0), -1))
}

// TestSoundManagerGracefulDegradation verifies operations are safe without a speaker
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(0.6, false)
	assert.False(t, sm.Play(core.SoundBell))
	assert.False(t, sm.IsMuted())
	assert.True(t, sm.ToggleMute())
	assert.True(t, sm.IsMuted())
	assert.False(t, sm.ToggleMute())
	sm.Cleanup()
}

func TestServiceBeforeStartHasNoPlayer(t *testing.T) {
	s := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Equal(t, "audio", s.Name())
	assert.Empty(t, s.Dependencies())
	require.NoError(t, s.Init(true, 0.3))
	assert.False(t, s.IsDisabled())
	require.NotNil(t, s.manager)
	assert.True(t, s.manager.IsMuted())
	require.NoError(t, s.Stop())
}

type recordingPlayer struct {
	played []core.SoundType
}

func (p *recordingPlayer) Play(st core.SoundType) bool {
	p.played = append(p.played, st)
	return true
}
func (p *recordingPlayer) ToggleMute() bool { return false }
func (p *recordingPlayer) IsMuted() bool    { return false }

func TestSystemRoutesSoundRequests(t *testing.T) {
	q := events.NewEventQueue()
	player := &recordingPlayer{}
	router := events.NewRouter[time.Time](q)
	router.Register(NewSystem(player, nil))

	q.Push(events.GameEvent{Type: events.EventSoundRequest, Payload: &events.SoundRequestPayload{Sound: core.SoundCoin}})
	q.Push(events.GameEvent{Type: events.EventWin})
	q.Push(events.GameEvent{Type: events.EventSoundRequest, Payload: &events.SoundRequestPayload{Sound: core.SoundFanfare}})

	assert.Equal(t, 3, router.DispatchAll(time.Now()))
	assert.Equal(t, []core.SoundType{core.SoundCoin, core.SoundFanfare}, player.played)
}

func TestSystemWithoutPlayerDropsRequests(t *testing.T) {
	s := NewSystem(nil, nil)
	assert.NotPanics(t, func() {
		s.HandleEvent(time.Now(), events.GameEvent{Type: events.EventSoundRequest, Payload: &events.SoundRequestPayload{Sound: core.SoundBell}})
	})
}
