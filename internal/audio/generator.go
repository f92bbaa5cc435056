package audio

import (
	"math"
	"math/rand"
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

// oscillator generates raw waveform samples
func oscillator(waveType int, freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(sampleRate)

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
			buf[i] = rand.Float64()*2 - 1
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * float64(sampleRate))
	releaseSamples := int(releaseSec * float64(sampleRate))

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

// concatFloatBuffers appends b to a
func concatFloatBuffers(a, b floatBuffer) floatBuffer {
	result := make(floatBuffer, len(a)+len(b))
	copy(result, a)
	copy(result[len(a):], b)
	return result
}

// durationToSamples converts duration in seconds to sample count
func durationToSamples(d float64) int {
	return int(d * float64(sampleRate))
}

// --- Sound Generators (unity gain) ---

// generateFireSound is a short square blip, A4.
func generateFireSound() floatBuffer {
	buf := oscillator(waveSquare, 440.0, durationToSamples(0.06))
	applyEnvelope(buf, 0.005, 0.03)
	return buf
}

// generateEnemyDownSound is a noise burst with a saw undertone.
func generateEnemyDownSound() floatBuffer {
	samples := durationToSamples(0.18)

	noise := oscillator(waveNoise, 0, samples)
	applyEnvelope(noise, 0.005, 0.14)

	under := oscillator(waveSaw, 110.0, samples)
	applyEnvelope(under, 0.005, 0.1)

	return mixFloatBuffers(noise, under, 0.5)
}

// generatePlayerHitSound is a harsh low saw.
func generatePlayerHitSound() floatBuffer {
	buf := oscillator(waveSaw, 80.0, durationToSamples(0.3))
	applyEnvelope(buf, 0.005, 0.2)
	return buf
}

// generatePickupSound is a two-note square arpeggio, B5 then E6.
func generatePickupSound() floatBuffer {
	n1 := oscillator(waveSquare, 987.77, durationToSamples(0.07))
	applyEnvelope(n1, 0.005, 0.03)

	n2 := oscillator(waveSquare, 1318.51, durationToSamples(0.12))
	applyEnvelope(n2, 0.005, 0.08)

	return concatFloatBuffers(n1, n2)
}

// generateGateOpenSound is a bell: fundamental A5 plus an A6 overtone.
func generateGateOpenSound() floatBuffer {
	samples := durationToSamples(0.5)

	fund := oscillator(waveSine, 880.0, samples)
	applyEnvelope(fund, 0.005, 0.4)

	over := oscillator(waveSine, 1760.0, samples)
	applyEnvelope(over, 0.005, 0.25)

	// Mix 70% fundamental + 30% overtone
	return mixFloatBuffers(fund, over, 0.3/0.7)
}

// generateLevelAdvanceSound is an ascending three-note sine fanfare:
// C5, E5, G5.
func generateLevelAdvanceSound() floatBuffer {
	var buf floatBuffer
	for _, freq := range []float64{523.25, 659.25, 783.99} {
		note := oscillator(waveSine, freq, durationToSamples(0.11))
		applyEnvelope(note, 0.005, 0.05)
		buf = concatFloatBuffers(buf, note)
	}
	return buf
}
