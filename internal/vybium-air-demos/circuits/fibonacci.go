package circuits

import (
	"fmt"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"

	"github.com/vybium/vybium-air-demos/internal/vybium-air-demos/air"
	"github.com/vybium/vybium-air-demos/internal/vybium-air-demos/utils"
)

// Column layout of the Fibonacci trace: row n holds [F(n), F(n+1)].
const (
	FibColA = iota // F(n)
	FibColB        // F(n+1)
	NumFibonacciCols
)

// FibonacciName identifies the Fibonacci circuit in claims.
const FibonacciName = "fibonacci"

// DefaultFibonacciTerms is the default number of claimed sequence terms.
// 100 terms pad to a 128-row trace.
const DefaultFibonacciTerms = 100

// FibonacciConfig holds the instance parameters of the Fibonacci circuit:
// the seed pair and the number of terms the proof attests to.
type FibonacciConfig struct {
	// Seed pair [F(0), F(1)]
	Seed0 uint64
	Seed1 uint64

	// NumTerms is the number of sequence terms covered by the claim.
	// Zero selects DefaultFibonacciTerms.
	NumTerms int
}

// DefaultFibonacciConfig returns the reference instance: seeds 0, 1 with
// 100 terms.
func DefaultFibonacciConfig() FibonacciConfig {
	return FibonacciConfig{Seed0: 0, Seed1: 1, NumTerms: DefaultFibonacciTerms}
}

// Validate checks the configuration.
func (cfg FibonacciConfig) Validate() error {
	if cfg.NumTerms < 0 {
		return fmt.Errorf("term count cannot be negative, got %d", cfg.NumTerms)
	}
	return nil
}

// Terms returns the effective term count.
func (cfg FibonacciConfig) Terms() int {
	if cfg.NumTerms == 0 {
		return DefaultFibonacciTerms
	}
	return cfg.NumTerms
}

// PaddedRows returns the trace height: the term count rounded up to a power
// of two, and at least two rows so a transition exists.
func (cfg FibonacciConfig) PaddedRows() int {
	rows := utils.NextPowerOfTwo(cfg.Terms())
	if rows < 2 {
		rows = 2
	}
	return rows
}

// TerminalValue returns the claimed terminal term F(NumTerms), computed by
// the same field additions used during trace generation.
func (cfg FibonacciConfig) TerminalValue() field.Element {
	a := field.New(cfg.Seed0)
	b := field.New(cfg.Seed1)
	for i := 1; i < cfg.Terms(); i++ {
		a, b = b, a.Add(b)
	}
	return b
}

// GenerateFibonacciTrace builds the execution trace for the Fibonacci
// circuit. Row 0 is the seed pair; every subsequent row is derived from its
// predecessor by the recurrence [prevB, prevA+prevB].
//
// The padding region beyond the claimed term count is filled by continuing
// the genuine recurrence. Repeating the final row would break the
// transition constraints for every pair except the fixed point A == B, so
// padding rows are real sequence steps that simply lie past the claim.
func GenerateFibonacciTrace(cfg FibonacciConfig) (*air.TraceMatrix, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fibonacci config: %w", err)
	}

	rows := cfg.PaddedRows()
	tm, err := air.NewTraceMatrix(rows, NumFibonacciCols)
	if err != nil {
		return nil, err
	}

	a := field.New(cfg.Seed0)
	b := field.New(cfg.Seed1)
	for i := 0; i < rows; i++ {
		tm.SetCell(i, FibColA, a)
		tm.SetCell(i, FibColB, b)
		a, b = b, a.Add(b)
	}

	return tm, nil
}

// NewFibonacciAIR builds the AIR for the Fibonacci circuit: two transition
// constraints encoding the state shift and the recurrence step, plus public
// boundary values for the seed pair and the claimed terminal term.
func NewFibonacciAIR(cfg FibonacciConfig) *air.Definition {
	d := air.NewDefinition(FibonacciName, NumFibonacciCols)

	d.AddTransitionConstraint("state_shift", 1, func(local, next []field.Element) field.Element {
		return next[FibColA].Sub(local[FibColB])
	})

	d.AddTransitionConstraint("recurrence_step", 1, func(local, next []field.Element) field.Element {
		return next[FibColB].Sub(local[FibColA]).Sub(local[FibColB])
	})

	terminalRow := cfg.Terms() - 1
	d.AddBoundaryValue("seed_0", 0, FibColA, field.New(cfg.Seed0))
	d.AddBoundaryValue("seed_1", 0, FibColB, field.New(cfg.Seed1))
	d.AddBoundaryValue("terminal_term", terminalRow, FibColB, cfg.TerminalValue())

	return d
}
