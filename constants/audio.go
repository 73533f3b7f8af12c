package constants

import "time"

// Audio output
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer, trading latency for underruns
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultVolume is the master gain in [0,1]
	DefaultVolume = 0.6
)

// Whoosh: filtered noise swell for chest and camera moves
const (
	WhooshSoundDuration = 300 * time.Millisecond
	WhooshSoundAttack   = 150 * time.Millisecond
	WhooshSoundRelease  = 150 * time.Millisecond
)

// Bell: item presented
const (
	BellSoundDuration           = 600 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 550 * time.Millisecond
	BellSoundOvertoneRelease    = 200 * time.Millisecond
)

// Coin: two-note sale jingle
const (
	CoinSoundNote1Duration = 80 * time.Millisecond
	CoinSoundNote2Duration = 280 * time.Millisecond
	CoinSoundAttack        = 5 * time.Millisecond
	CoinSoundNote1Release  = 40 * time.Millisecond
	CoinSoundNote2Release  = 200 * time.Millisecond
)

// Error: low saw buzz for wrong items
const (
	ErrorSoundDuration = 250 * time.Millisecond
	ErrorSoundAttack   = 5 * time.Millisecond
	ErrorSoundRelease  = 80 * time.Millisecond
)

// Rumble: reshuffle
const (
	RumbleSoundDuration = 900 * time.Millisecond
	RumbleSoundAttack   = 100 * time.Millisecond
	RumbleSoundRelease  = 400 * time.Millisecond
)

// Chime: effect ended
const (
	ChimeSoundNoteDuration = 150 * time.Millisecond
	ChimeSoundAttack       = 5 * time.Millisecond
	ChimeSoundRelease      = 100 * time.Millisecond
)

// Door: customer arrival, two short knocks
const (
	DoorSoundKnockDuration = 60 * time.Millisecond
	DoorSoundGapDuration   = 90 * time.Millisecond
	DoorSoundRelease       = 50 * time.Millisecond
)

// Fanfare: win
const (
	FanfareSoundNoteDuration  = 160 * time.Millisecond
	FanfareSoundFinalDuration = 700 * time.Millisecond
	FanfareSoundAttack        = 10 * time.Millisecond
	FanfareSoundRelease       = 120 * time.Millisecond
)
