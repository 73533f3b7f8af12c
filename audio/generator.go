package audio

import (
	"math"
	"time"

	"github.com/lixenwraith/junk-mart/constants"
	"github.com/lixenwraith/junk-mart/core"
	"github.com/lixenwraith/junk-mart/rng"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// noiseSeed keeps generated noise identical between runs
const noiseSeed = 0x6a756e6b

// oscillator generates raw waveform samples
func oscillator(waveType int, freq float64, samples int, noise *rng.Rand) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(constants.AudioSampleRate)

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		case waveNoise:
			buf[i] = noise.Float64()*2 - 1
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attack, release time.Duration) {
	total := len(buf)
	attackSamples := samplesFor(attack)
	releaseSamples := samplesFor(release)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// mixFloatBuffers adds b into a (in place), extending a if needed
func mixFloatBuffers(a, b floatBuffer, bScale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

// concatFloatBuffers appends the parts in order
func concatFloatBuffers(parts ...floatBuffer) floatBuffer {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	result := make(floatBuffer, 0, n)
	for _, p := range parts {
		result = append(result, p...)
	}
	return result
}

// normalize scales the buffer so its peak is at most 1
func normalize(buf floatBuffer) floatBuffer {
	peak := 0.0
	for _, s := range buf {
		peak = math.Max(peak, math.Abs(s))
	}
	if peak > 1 {
		for i := range buf {
			buf[i] /= peak
		}
	}
	return buf
}

func samplesFor(d time.Duration) int {
	return int(d.Seconds() * float64(constants.AudioSampleRate))
}

// tone is a single enveloped note
func tone(wave int, freq float64, d, attack, release time.Duration) floatBuffer {
	buf := oscillator(wave, freq, samplesFor(d), nil)
	applyEnvelope(buf, attack, release)
	return buf
}

// --- Sound Generators (unity gain) ---

func generateWhooshSound(noise *rng.Rand) floatBuffer {
	buf := oscillator(waveNoise, 0, samplesFor(constants.WhooshSoundDuration), noise)
	// One-pole low-pass takes the hiss off
	prev := 0.0
	for i, s := range buf {
		prev += 0.15 * (s - prev)
		buf[i] = prev * 2
	}
	applyEnvelope(buf, constants.WhooshSoundAttack, constants.WhooshSoundRelease)
	return buf
}

func generateBellSound() floatBuffer {
	// Fundamental A5 with an A6 overtone
	fund := tone(waveSine, 880.0, constants.BellSoundDuration, constants.BellSoundAttack, constants.BellSoundFundamentalRelease)
	over := tone(waveSine, 1760.0, constants.BellSoundDuration, constants.BellSoundAttack, constants.BellSoundOvertoneRelease)
	return mixFloatBuffers(fund, over, 0.3/0.7)
}

func generateCoinSound() floatBuffer {
	// B5 then E6
	n1 := tone(waveSquare, 987.77, constants.CoinSoundNote1Duration, constants.CoinSoundAttack, constants.CoinSoundNote1Release)
	n2 := tone(waveSquare, 1318.51, constants.CoinSoundNote2Duration, constants.CoinSoundAttack, constants.CoinSoundNote2Release)
	return concatFloatBuffers(n1, n2)
}

func generateErrorSound() floatBuffer {
	return tone(waveSaw, 100.0, constants.ErrorSoundDuration, constants.ErrorSoundAttack, constants.ErrorSoundRelease)
}

func generateRumbleSound(noise *rng.Rand) floatBuffer {
	samples := samplesFor(constants.RumbleSoundDuration)
	low := oscillator(waveSine, 45.0, samples, nil)
	grit := oscillator(waveNoise, 0, samples, noise)
	buf := mixFloatBuffers(low, grit, 0.25)
	applyEnvelope(buf, constants.RumbleSoundAttack, constants.RumbleSoundRelease)
	return buf
}

func generateChimeSound() floatBuffer {
	// Rising E6, G6, C7
	var notes []floatBuffer
	for _, f := range []float64{1318.51, 1567.98, 2093.0} {
		notes = append(notes, tone(waveSine, f, constants.ChimeSoundNoteDuration, constants.ChimeSoundAttack, constants.ChimeSoundRelease))
	}
	return concatFloatBuffers(notes...)
}

func generateDoorSound() floatBuffer {
	knock := tone(waveSquare, 180.0, constants.DoorSoundKnockDuration, 0, constants.DoorSoundRelease)
	gap := make(floatBuffer, samplesFor(constants.DoorSoundGapDuration))
	return concatFloatBuffers(knock, gap, knock)
}

func generateFanfareSound() floatBuffer {
	// C5 E5 G5 then a held C6
	var notes []floatBuffer
	for _, f := range []float64{523.25, 659.25, 783.99} {
		notes = append(notes, tone(waveSquare, f, constants.FanfareSoundNoteDuration, constants.FanfareSoundAttack, constants.FanfareSoundRelease))
	}
	final := tone(waveSquare, 1046.5, constants.FanfareSoundFinalDuration, constants.FanfareSoundAttack, constants.FanfareSoundFinalDuration/2)
	return concatFloatBuffers(append(notes, final)...)
}

// generateSound dispatches to specific generator
// Every cue is normalized to unity peak; nil for unknown types
func generateSound(st core.SoundType) floatBuffer {
	noise := rng.New(noiseSeed + uint64(st))
	var buf floatBuffer
	switch st {
	case core.SoundWhoosh:
		buf = generateWhooshSound(noise)
	case core.SoundBell:
		buf = generateBellSound()
	case core.SoundCoin:
		buf = generateCoinSound()
	case core.SoundError:
		buf = generateErrorSound()
	case core.SoundRumble:
		buf = generateRumbleSound(noise)
	case core.SoundChime:
		buf = generateChimeSound()
	case core.SoundDoor:
		buf = generateDoorSound()
	case core.SoundFanfare:
		buf = generateFanfareSound()
	default:
		return nil
	}
	return normalize(buf)
}
