package gemini

import "time"

// Config holds everything the Gemini client needs. Values usually come from
// common.Config.LLM.
type Config struct {
	BaseURL     string
	Model       string
	APIKey      string
	Temperature float32
	Timeout     time.Duration
	MaxRetries  int
	RatePerSec  float64

	// LenientOptional enables the sanitize-and-revalidate fallback when the
	// strict schema check fails.
	LenientOptional bool
}

func (c Config) withDefaults() Config {
	out := c
	if out.BaseURL == "" {
		out.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if out.Model == "" {
		out.Model = "gemini-2.5-pro"
	}
	if out.Timeout <= 0 {
		out.Timeout = 120 * time.Second
	}
	if out.MaxRetries <= 0 {
		out.MaxRetries = 3
	}
	if out.RatePerSec <= 0 {
		out.RatePerSec = 1
	}
	return out
}
