// Package llm wraps the generative model used to tag job listings.
package llm

import "maps"

// ModelTier selects a model by cost and capability.
type ModelTier string

const (
	// TierLite is the cheapest model, good enough for short classification
	TierLite ModelTier = "lite"
	// TierStandard is the default for batch tagging
	TierStandard ModelTier = "standard"
)

// Config maps tiers to concrete Gemini model names.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model mapping.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of c with tier mapped to model.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	next := &Config{Models: make(map[ModelTier]string, len(c.Models)+1)}
	maps.Copy(next.Models, c.Models)
	next.Models[tier] = model
	return next
}
