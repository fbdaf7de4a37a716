// Tagged sample records arriving from the perception-input boundary. The
// channels mirror what the hardware helpers emit (light in lux, climate as
// temperature/humidity/pressure, ultrasonic distance, capacitive touch)
// plus the text/image/audio media samples.
package perception

import "time"

// Modality names used for exposure accounting.
const (
	ModalityText     = "text"
	ModalityImage    = "image"
	ModalityAudio    = "audio"
	ModalityTouch    = "touch"
	ModalityLight    = "light"
	ModalityClimate  = "climate"
	ModalityDistance = "distance"
)

// Sample is a tagged union: exactly one payload field is set, matching Kind.
type Sample struct {
	Kind string    `json:"kind"`
	At   time.Time `json:"at"`

	Text     string         `json:"text,omitempty"`
	Light    *LightReading  `json:"light,omitempty"`
	Climate  *ClimateReading `json:"climate,omitempty"`
	Distance *DistanceReading `json:"distance,omitempty"`
	Touch    *TouchReading  `json:"touch,omitempty"`
	Audio    *AudioClip     `json:"audio,omitempty"`
	Image    *ImageRef      `json:"image,omitempty"`
}

// LightReading is ambient illuminance.
type LightReading struct {
	Lux float64 `json:"lux"`
}

// ClimateReading bundles the environmental sensor channels.
type ClimateReading struct {
	TemperatureC float64 `json:"temperature_c"`
	HumidityPct  float64 `json:"humidity_pct"`
	PressureHPa  float64 `json:"pressure_hpa"`
}

// DistanceReading is an ultrasonic range measurement.
type DistanceReading struct {
	CM float64 `json:"cm"`
}

// TouchReading is a capacitive touch event.
type TouchReading struct {
	Pressed  bool          `json:"pressed"`
	Duration time.Duration `json:"duration,omitempty"`
}

// AudioClip carries mono PCM samples for the feature extractor.
type AudioClip struct {
	Samples    []float64 `json:"-"`
	SampleRate int       `json:"sample_rate"`
}

// ImageRef points at an already-captured frame; the core never decodes it.
type ImageRef struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}
