// Feature extraction: amplitude, band energy, spectral shape, and tempo.
package audio

import (
	"math"
	"sort"

	"github.com/talgya/ember/internal/entity"
)

// Band boundaries in Hz.
const (
	bassLow    = 20
	bassHigh   = 250
	midHigh    = 4000
	trebleHigh = 20000
)

// Tempo estimation parameters.
const (
	envelopeWindowSec = 0.020 // 20 ms RMS envelope frames
	onsetThresholdK   = 1.5   // threshold = k × mean of the rectified derivative
	minOnsetGapSec    = 0.150
	minBPM            = 40
	maxBPM            = 220
)

// Bands holds relative band energies, 0–100 each, summing to at most 100.
type Bands struct {
	Bass   float64 `json:"bass"`
	Mid    float64 `json:"mid"`
	Treble float64 `json:"treble"`
}

// Features is the full numeric description of one audio clip.
type Features struct {
	Duration         float64 `json:"duration"`          // seconds
	Amplitude        float64 `json:"amplitude"`         // RMS mapped to 0–100
	Bands            Bands   `json:"bands"`             //
	BPM              float64 `json:"bpm"`               // 0 when undetectable
	BeatRegularity   float64 `json:"beat_regularity"`   // 0–100
	HarmonicRichness float64 `json:"harmonic_richness"` // 0–100, inverse flatness
	ZeroCrossingRate float64 `json:"zero_crossing_rate"` // 0–100
	SpectralCentroid float64 `json:"spectral_centroid"` // Hz
}

// Extract computes features for a mono PCM buffer in [-1, 1]. Degenerate
// inputs come back as zero features, never an error: the perception filter
// treats silence and garbage identically.
func Extract(samples []float64, sampleRate int) Features {
	var f Features
	if len(samples) == 0 || sampleRate <= 0 {
		return f
	}

	rms := rootMeanSquare(samples)
	if rms == 0 {
		// Pure silence reads the same as no input at all.
		return f
	}

	f.Duration = entity.Round2(float64(len(samples)) / float64(sampleRate))
	// Full-scale sine (RMS 1/√2) maps to 100.
	f.Amplitude = entity.Round2(entity.ClampF(rms*math.Sqrt2*100, 0, 100))

	f.ZeroCrossingRate = entity.Round2(zeroCrossingRate(samples) * 100)

	mags := magnitudeSpectrum(samples)
	if len(mags) > 0 {
		binHz := float64(sampleRate) / float64(2*len(mags))
		f.Bands = bandEnergies(mags, binHz)
		f.HarmonicRichness = entity.Round2(inverseFlatness(mags) * 100)
		f.SpectralCentroid = entity.Round2(spectralCentroid(mags, binHz))
	}

	if f.Duration >= 2 {
		f.BPM, f.BeatRegularity = estimateTempo(samples, sampleRate)
	}

	return f
}

func rootMeanSquare(samples []float64) float64 {
	var sum float64
	for _, s := range samples {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(samples)))
}

func zeroCrossingRate(samples []float64) float64 {
	if len(samples) < 2 {
		return 0
	}
	crossings := 0
	for i := 1; i < len(samples); i++ {
		if (samples[i-1] >= 0) != (samples[i] >= 0) {
			crossings++
		}
	}
	return float64(crossings) / float64(len(samples)-1)
}

// bandEnergies sums magnitudes per band and normalizes by the total across
// all bins, so the three shares sum to at most 100.
func bandEnergies(mags []float64, binHz float64) Bands {
	var bass, mid, treble, total float64
	for i, m := range mags {
		freq := float64(i) * binHz
		total += m
		switch {
		case freq >= bassLow && freq < bassHigh:
			bass += m
		case freq >= bassHigh && freq < midHigh:
			mid += m
		case freq >= midHigh && freq < trebleHigh:
			treble += m
		}
	}
	if total == 0 {
		return Bands{}
	}
	return Bands{
		Bass:   entity.Round2(bass / total * 100),
		Mid:    entity.Round2(mid / total * 100),
		Treble: entity.Round2(treble / total * 100),
	}
}

// inverseFlatness returns 1 − (geometric mean / arithmetic mean) of the
// magnitude bins. Tonal material scores high, noise scores low.
func inverseFlatness(mags []float64) float64 {
	const eps = 1e-12
	var logSum, sum float64
	for _, m := range mags {
		logSum += math.Log(m + eps)
		sum += m
	}
	n := float64(len(mags))
	geo := math.Exp(logSum / n)
	arith := sum / n
	if arith == 0 {
		return 0
	}
	return entity.ClampF(1-geo/arith, 0, 1)
}

func spectralCentroid(mags []float64, binHz float64) float64 {
	var weighted, total float64
	for i, m := range mags {
		weighted += float64(i) * binHz * m
		total += m
	}
	if total == 0 {
		return 0
	}
	return weighted / total
}

// estimateTempo runs onset detection over a 20 ms RMS envelope and converts
// the median inter-onset interval into BPM. Returns (0, 0) whenever the
// signal is too short or too few onsets survive the threshold.
func estimateTempo(samples []float64, sampleRate int) (bpm, regularity float64) {
	frameLen := int(envelopeWindowSec * float64(sampleRate))
	if frameLen < 1 {
		return 0, 0
	}

	envelope := make([]float64, 0, len(samples)/frameLen)
	for start := 0; start+frameLen <= len(samples); start += frameLen {
		envelope = append(envelope, rootMeanSquare(samples[start:start+frameLen]))
	}
	if len(envelope) < 4 {
		return 0, 0
	}

	// Half-wave-rectified derivative: rises only.
	flux := make([]float64, len(envelope)-1)
	var fluxSum float64
	for i := 1; i < len(envelope); i++ {
		d := envelope[i] - envelope[i-1]
		if d < 0 {
			d = 0
		}
		flux[i-1] = d
		fluxSum += d
	}
	threshold := onsetThresholdK * fluxSum / float64(len(flux))
	if threshold == 0 {
		return 0, 0
	}

	gapFrames := minOnsetGapSec / envelopeWindowSec
	minGapFrames := int(gapFrames)
	var onsets []int
	lastOnset := -minGapFrames - 1
	for i, d := range flux {
		if d > threshold && i-lastOnset > minGapFrames {
			onsets = append(onsets, i)
			lastOnset = i
		}
	}
	if len(onsets) < 2 {
		return 0, 0
	}

	intervals := make([]float64, len(onsets)-1)
	for i := 1; i < len(onsets); i++ {
		intervals[i-1] = float64(onsets[i]-onsets[i-1]) * envelopeWindowSec
	}
	sort.Float64s(intervals)
	median := intervals[len(intervals)/2]
	if len(intervals)%2 == 0 {
		median = (intervals[len(intervals)/2-1] + intervals[len(intervals)/2]) / 2
	}
	if median <= 0 {
		return 0, 0
	}

	// Fold into the plausible tempo range by octave doubling/halving.
	bpm = 60 / median
	for bpm < minBPM {
		bpm *= 2
	}
	for bpm > maxBPM {
		bpm /= 2
	}
	bpm = entity.Round2(bpm)

	// Regularity from intervals near the median; far outliers are noise,
	// not an irregular beat.
	var kept []float64
	for _, iv := range intervals {
		if math.Abs(iv-median) <= median*0.5 {
			kept = append(kept, iv)
		}
	}
	if len(kept) < 2 {
		return bpm, 0
	}
	var mean float64
	for _, iv := range kept {
		mean += iv
	}
	mean /= float64(len(kept))
	var variance float64
	for _, iv := range kept {
		variance += (iv - mean) * (iv - mean)
	}
	variance /= float64(len(kept))
	cv := math.Sqrt(variance) / mean
	regularity = entity.Round2(math.Max(0, (1-cv)*100))

	return bpm, regularity
}
