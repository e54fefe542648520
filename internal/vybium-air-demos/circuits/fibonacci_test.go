package circuits

import (
	"testing"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"

	"github.com/vybium/vybium-air-demos/internal/vybium-air-demos/air"
)

// TestFibonacciTraceReference tests the reference instance: seeds (0, 1)
// with 100 terms padding to 128 rows.
func TestFibonacciTraceReference(t *testing.T) {
	cfg := DefaultFibonacciConfig()
	tm, err := GenerateFibonacciTrace(cfg)
	if err != nil {
		t.Fatalf("trace generation failed: %v", err)
	}

	if tm.Rows() != 128 {
		t.Errorf("expected 128 rows, got %d", tm.Rows())
	}
	if tm.Width() != NumFibonacciCols {
		t.Errorf("expected %d columns, got %d", NumFibonacciCols, tm.Width())
	}

	if !tm.Cell(0, FibColA).Equal(field.Zero) || !tm.Cell(0, FibColB).Equal(field.One) {
		t.Errorf("row 0 = [%s, %s], want [0, 1]",
			tm.Cell(0, FibColA).String(), tm.Cell(0, FibColB).String())
	}

	// F(5) = 5 and F(10) = 55: row n holds [F(n), F(n+1)].
	if got := tm.Cell(5, FibColA); !got.Equal(field.New(5)) {
		t.Errorf("F(5) = %s, want 5", got.String())
	}
	if got := tm.Cell(10, FibColA); !got.Equal(field.New(55)) {
		t.Errorf("F(10) = %s, want 55", got.String())
	}
}

// TestFibonacciTransitionsHoldEverywhere tests the recurrence property for
// every adjacent row pair, padding region included. Padding continues the
// real recurrence, so no pair is exempt.
func TestFibonacciTransitionsHoldEverywhere(t *testing.T) {
	tests := []struct {
		name         string
		seed0, seed1 uint64
		numTerms     int
	}{
		{"reference", 0, 1, 100},
		{"offset seed", 1, 1, 100},
		{"short", 0, 1, 5},
		{"arbitrary seeds", 17, 23, 60},
		{"wrapping seeds", field.P - 1, field.P - 1, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := FibonacciConfig{Seed0: tt.seed0, Seed1: tt.seed1, NumTerms: tt.numTerms}
			tm, err := GenerateFibonacciTrace(cfg)
			if err != nil {
				t.Fatalf("trace generation failed: %v", err)
			}

			for i := 0; i < tm.Rows()-1; i++ {
				local := tm.Row(i)
				next := tm.Row(i + 1)
				if !next[FibColA].Equal(local[FibColB]) {
					t.Fatalf("state shift broken between rows %d and %d", i, i+1)
				}
				if !next[FibColB].Equal(local[FibColA].Add(local[FibColB])) {
					t.Fatalf("recurrence broken between rows %d and %d", i, i+1)
				}
			}

			if err := air.CheckTrace(NewFibonacciAIR(cfg), tm); err != nil {
				t.Errorf("generated trace violates its own AIR: %v", err)
			}
		})
	}
}

// TestFibonacciTerminalValue tests the claimed terminal term against known
// sequence values.
func TestFibonacciTerminalValue(t *testing.T) {
	tests := []struct {
		name     string
		numTerms int
		expected uint64
	}{
		{"five terms", 5, 5},    // F(5)
		{"ten terms", 10, 55},   // F(10)
		{"twenty terms", 20, 6765}, // F(20)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := FibonacciConfig{Seed0: 0, Seed1: 1, NumTerms: tt.numTerms}
			if got := cfg.TerminalValue(); !got.Equal(field.New(tt.expected)) {
				t.Errorf("terminal value = %s, want %d", got.String(), tt.expected)
			}

			// The boundary value in the AIR must agree with the trace cell.
			tm, err := GenerateFibonacciTrace(cfg)
			if err != nil {
				t.Fatalf("trace generation failed: %v", err)
			}
			if got := tm.Cell(tt.numTerms-1, FibColB); !got.Equal(field.New(tt.expected)) {
				t.Errorf("trace terminal cell = %s, want %d", got.String(), tt.expected)
			}
		})
	}
}

// TestFibonacciOffsetSeedSequence tests the offset seed pair (1, 1), which
// yields the variant where the sequence starts at 1.
func TestFibonacciOffsetSeedSequence(t *testing.T) {
	cfg := FibonacciConfig{Seed0: 1, Seed1: 1, NumTerms: 16}
	tm, err := GenerateFibonacciTrace(cfg)
	if err != nil {
		t.Fatalf("trace generation failed: %v", err)
	}

	want := []uint64{1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144, 233, 377, 610, 987}
	for i, w := range want {
		if got := tm.Cell(i, FibColA); !got.Equal(field.New(w)) {
			t.Errorf("row %d col A = %s, want %d", i, got.String(), w)
		}
	}
}

// TestFibonacciAIRRejectsRepeatedRowPadding tests that the constraint check
// catches the "repeat the final row" padding shortcut: duplicated rows only
// satisfy the transitions at the fixed point A == B.
func TestFibonacciAIRRejectsRepeatedRowPadding(t *testing.T) {
	cfg := FibonacciConfig{Seed0: 0, Seed1: 1, NumTerms: 5}
	tm, err := GenerateFibonacciTrace(cfg)
	if err != nil {
		t.Fatalf("trace generation failed: %v", err)
	}

	// Overwrite the padding region (rows 5..7) with copies of row 4.
	last := append([]field.Element(nil), tm.Row(4)...)
	for i := 5; i < tm.Rows(); i++ {
		if err := tm.SetRow(i, last); err != nil {
			t.Fatalf("SetRow failed: %v", err)
		}
	}

	if err := air.CheckTrace(NewFibonacciAIR(cfg), tm); err == nil {
		t.Error("repeated-row padding passed the transition constraints")
	}
}

// TestFibonacciAIRRejectsCorruptedCell tests single-cell corruption.
func TestFibonacciAIRRejectsCorruptedCell(t *testing.T) {
	cfg := FibonacciConfig{Seed0: 0, Seed1: 1, NumTerms: 8}
	tm, err := GenerateFibonacciTrace(cfg)
	if err != nil {
		t.Fatalf("trace generation failed: %v", err)
	}

	orig := tm.Cell(3, FibColB)
	tm.SetCell(3, FibColB, orig.Add(field.One))

	if err := air.CheckTrace(NewFibonacciAIR(cfg), tm); err == nil {
		t.Error("corrupted cell went undetected")
	}
}
