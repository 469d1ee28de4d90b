package parity

import (
	"math"
	"testing"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		name   string
		number int64
		want   string
	}{
		{"even", 4, LabelEven},
		{"odd", 5, LabelOdd},
		{"zero", 0, LabelEven},
		{"negative even", -6, LabelEven},
		{"negative odd", -5, LabelOdd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Label(tt.number); got != tt.want {
				t.Errorf("Label(%d) = %q, want %q", tt.number, got, tt.want)
			}
		})
	}
}

func TestLabel_Extremes(t *testing.T) {
	// MinInt64 is even, MaxInt64 is odd; n % 2 cannot overflow
	if got := Label(math.MinInt64); got != LabelEven {
		t.Errorf("Label(MinInt64) = %q, want %q", got, LabelEven)
	}
	if got := Label(math.MaxInt64); got != LabelOdd {
		t.Errorf("Label(MaxInt64) = %q, want %q", got, LabelOdd)
	}
}

func TestLabel_Deterministic(t *testing.T) {
	for _, n := range []int64{4, 5, 0, -6, -5} {
		first := Label(n)
		for i := 0; i < 10; i++ {
			if got := Label(n); got != first {
				t.Fatalf("Label(%d) changed between calls: %q then %q", n, first, got)
			}
		}
	}
}

func TestClassifierDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.EmitReason {
		t.Error("DefaultConfig().EmitReason should be true")
	}
}

func TestClassify(t *testing.T) {
	c := New(DefaultConfig())

	result := c.Classify(4)

	if result.Label != LabelEven {
		t.Errorf("Classify(4) label = %q, want %q", result.Label, LabelEven)
	}
	if result.Number != 4 {
		t.Errorf("Classify(4) number = %d, want 4", result.Number)
	}
	if result.RequestID == "" {
		t.Error("Classify() should generate RequestID")
	}
	if result.Timestamp.IsZero() {
		t.Error("Classify() should set Timestamp")
	}
	if result.Reason != "divisible by 2" {
		t.Errorf("Classify(4) reason = %q, want %q", result.Reason, "divisible by 2")
	}
}

func TestClassify_OddReason(t *testing.T) {
	c := New(DefaultConfig())

	result := c.Classify(-5)

	if result.Label != LabelOdd {
		t.Errorf("Classify(-5) label = %q, want %q", result.Label, LabelOdd)
	}
	if result.Reason != "not divisible by 2" {
		t.Errorf("Classify(-5) reason = %q, want %q", result.Reason, "not divisible by 2")
	}
}

func TestClassify_NoReason(t *testing.T) {
	c := New(Config{EmitReason: false})

	result := c.Classify(7)

	if result.Label != LabelOdd {
		t.Errorf("Classify(7) label = %q, want %q", result.Label, LabelOdd)
	}
	if result.Reason != "" {
		t.Errorf("Classify(7) reason = %q, want empty", result.Reason)
	}
}

func TestClassify_UniqueRequestIDs(t *testing.T) {
	c := New(DefaultConfig())

	a := c.Classify(4)
	b := c.Classify(4)

	if a.RequestID == b.RequestID {
		t.Error("Classify() should generate a unique RequestID per call")
	}
	if a.Label != b.Label {
		t.Errorf("Classify(4) label changed between calls: %q then %q", a.Label, b.Label)
	}
}
