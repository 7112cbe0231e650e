package component

import "time"

// Agent tuning defaults.
const (
	DefaultSearchRadius     = 2000.0
	DefaultAcceptanceRadius = 300.0
	DefaultSearchInterval   = 100 * time.Millisecond
)

// AIConfig tunes an agent's search and chase behavior.
type AIConfig struct {
	SearchRadius     float64
	AcceptanceRadius float64
	SearchInterval   time.Duration
	// LoseRange drops a chase once the target is farther than this. Zero
	// keeps chasing at any distance.
	LoseRange        float64
	SensePlayersOnly bool
}

// DefaultAIConfig returns the stock agent tuning.
func DefaultAIConfig() AIConfig {
	return AIConfig{
		SearchRadius:     DefaultSearchRadius,
		AcceptanceRadius: DefaultAcceptanceRadius,
		SearchInterval:   DefaultSearchInterval,
		SensePlayersOnly: true,
	}
}

// Normalized fills zero fields with defaults.
func (c AIConfig) Normalized() AIConfig {
	d := DefaultAIConfig()
	if c.SearchRadius <= 0 {
		c.SearchRadius = d.SearchRadius
	}
	if c.AcceptanceRadius <= 0 {
		c.AcceptanceRadius = d.AcceptanceRadius
	}
	if c.SearchInterval <= 0 {
		c.SearchInterval = d.SearchInterval
	}
	if c.LoseRange < 0 {
		c.LoseRange = 0
	}
	return c
}

var AIConfigComponent = NewComponent[AIConfig]()
