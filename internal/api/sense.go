// The sense endpoint: perception-boundary samples arriving over HTTP from
// the hardware helpers. Audio arrives as base64 PCM16 and is reduced to
// features before the core sees it.
package api

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"math"
	"net/http"
	"time"

	"github.com/talgya/ember/internal/audio"
	"github.com/talgya/ember/internal/perception"
)

type senseRequest struct {
	Kind string `json:"kind"`

	Text     string                      `json:"text,omitempty"`
	Light    *perception.LightReading    `json:"light,omitempty"`
	Climate  *perception.ClimateReading  `json:"climate,omitempty"`
	Distance *perception.DistanceReading `json:"distance,omitempty"`
	Touch    *perception.TouchReading    `json:"touch,omitempty"`
	Image    *perception.ImageRef        `json:"image,omitempty"`

	// Audio: little-endian signed 16-bit mono PCM, base64 encoded.
	AudioPCM16      string `json:"audio_pcm16,omitempty"`
	AudioSampleRate int    `json:"audio_sample_rate,omitempty"`
}

// handleSense records one sensor sample. Audio samples additionally return
// the extracted features so the caller can describe what was heard.
func (s *Server) handleSense(w http.ResponseWriter, r *http.Request) {
	var req senseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	sample := perception.Sample{
		Kind:     req.Kind,
		At:       time.Now(),
		Text:     req.Text,
		Light:    req.Light,
		Climate:  req.Climate,
		Distance: req.Distance,
		Touch:    req.Touch,
		Image:    req.Image,
	}

	resp := map[string]any{"recorded": true, "kind": req.Kind}

	if req.Kind == perception.ModalityAudio {
		samples, err := decodePCM16(req.AudioPCM16)
		if err != nil {
			http.Error(w, "bad audio payload", http.StatusBadRequest)
			return
		}
		sample.Audio = &perception.AudioClip{Samples: samples, SampleRate: req.AudioSampleRate}
		resp["features"] = audio.Extract(samples, req.AudioSampleRate)
	}

	switch req.Kind {
	case perception.ModalityText, perception.ModalityImage, perception.ModalityAudio,
		perception.ModalityTouch, perception.ModalityLight,
		perception.ModalityClimate, perception.ModalityDistance:
	default:
		http.Error(w, "unknown modality", http.StatusBadRequest)
		return
	}

	s.Keeper.Sense(sample)
	writeJSON(w, resp)
}

// decodePCM16 converts base64 little-endian int16 mono PCM into the [-1, 1]
// float samples the extractor expects.
func decodePCM16(encoded string) ([]float64, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}
	samples := make([]float64, len(raw)/2)
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(raw[2*i:]))
		samples[i] = float64(v) / math.MaxInt16
	}
	return samples, nil
}
