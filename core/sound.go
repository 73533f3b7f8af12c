package core

// SoundType represents the shop's sound cues
type SoundType int

const (
	SoundWhoosh    SoundType = iota // Chest swap, camera move
	SoundBell                       // Item presented
	SoundCoin                       // Correct sale
	SoundError                      // Wrong item
	SoundRumble                     // Reshuffle
	SoundChime                      // Status effect ended
	SoundDoor                       // Customer arrival
	SoundFanfare                    // Win
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	"whoosh", "bell", "coin", "error", "rumble", "chime", "door", "fanfare",
}

// String returns the lower-case cue name used in config and logs
func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
