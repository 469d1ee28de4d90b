package parity

import (
	"time"

	"github.com/google/uuid"
)

const (
	LabelEven = "Even"
	LabelOdd  = "Odd"
)

// Label reports the parity of n as one of the two labels.
// Only the remainder's equality with zero matters, so Go's truncated
// modulus for negative operands (-5 % 2 == -1) needs no normalization.
func Label(n int64) string {
	if n%2 == 0 {
		return LabelEven
	}
	return LabelOdd
}

// Result carries a single classification with request metadata
type Result struct {
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
	Number    int64     `json:"number"`
	Label     string    `json:"label"`
	Reason    string    `json:"reason,omitempty"`
}

// Classifier wraps the pure label function with request metadata
type Classifier struct {
	emitReason bool
}

// Config holds classifier configuration
type Config struct {
	// EmitReason controls whether results carry a human-readable
	// explanation alongside the label
	EmitReason bool
}

// DefaultConfig returns default classifier configuration
func DefaultConfig() Config {
	return Config{
		EmitReason: true,
	}
}

// New creates a new classifier
func New(cfg Config) *Classifier {
	return &Classifier{
		emitReason: cfg.EmitReason,
	}
}

// Classify labels n and wraps it in a Result
func (c *Classifier) Classify(n int64) Result {
	label := Label(n)

	var reason string
	if c.emitReason {
		if label == LabelEven {
			reason = "divisible by 2"
		} else {
			reason = "not divisible by 2"
		}
	}

	return Result{
		RequestID: uuid.New().String(),
		Timestamp: time.Now().UTC(),
		Number:    n,
		Label:     label,
		Reason:    reason,
	}
}
