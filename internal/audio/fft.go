// Package audio extracts numeric features from mono PCM buffers. The
// features feed perception-growth accounting as one class of sensory input;
// nothing here touches hardware or files.
package audio

import "math"

// maxFFTSize bounds the analysis window. Larger buffers are truncated to
// the leading power-of-two slice.
const maxFFTSize = 8192

// fft runs an in-place radix-2 iterative FFT. len(buf) must be a power of
// two; callers go through analysisSize to guarantee that.
func fft(buf []complex128) {
	n := len(buf)
	if n < 2 {
		return
	}

	// Bit-reversal permutation.
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}

	// Butterflies, doubling the transform length each pass.
	for length := 2; length <= n; length <<= 1 {
		angle := -2 * math.Pi / float64(length)
		wl := complex(math.Cos(angle), math.Sin(angle))
		for start := 0; start < n; start += length {
			w := complex(1, 0)
			half := length / 2
			for k := 0; k < half; k++ {
				u := buf[start+k]
				v := buf[start+k+half] * w
				buf[start+k] = u + v
				buf[start+k+half] = u - v
				w *= wl
			}
		}
	}
}

// analysisSize returns the largest power of two ≤ n, capped at maxFFTSize.
func analysisSize(n int) int {
	if n < 2 {
		return 0
	}
	size := 2
	for size*2 <= n && size*2 <= maxFFTSize {
		size *= 2
	}
	return size
}

// hann returns the Hann window of the given length.
func hann(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return w
}

// magnitudeSpectrum windows the leading slice of samples, runs the FFT, and
// returns the magnitudes of the first n/2 bins.
func magnitudeSpectrum(samples []float64) []float64 {
	size := analysisSize(len(samples))
	if size == 0 {
		return nil
	}

	buf := make([]complex128, size)
	window := hann(size)
	for i := 0; i < size; i++ {
		buf[i] = complex(samples[i]*window[i], 0)
	}
	fft(buf)

	mags := make([]float64, size/2)
	for i := range mags {
		mags[i] = cmplxAbs(buf[i])
	}
	return mags
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}
