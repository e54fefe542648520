package air

import (
	"fmt"

	"github.com/vybium/vybium-air-demos/internal/vybium-air-demos/utils"
)

// CheckTrace verifies that a trace satisfies every constraint of an AIR.
//
// This is the prover's local assertion: a failing trace is rejected before
// any commitment work starts, rather than surfacing later as an opaque
// verification failure. The same walk backs the property tests on the demo
// circuits.
func CheckTrace(a AIR, tm *TraceMatrix) error {
	if tm == nil {
		return fmt.Errorf("trace cannot be nil")
	}
	if tm.Width() != a.Width() {
		return fmt.Errorf("trace width %d does not match AIR width %d", tm.Width(), a.Width())
	}
	if !utils.IsPowerOfTwo(tm.Rows()) {
		return fmt.Errorf("trace height %d is not a power of two", tm.Rows())
	}

	rows := tm.Rows()

	for i := 0; i < rows; i++ {
		row := tm.Row(i)
		for _, c := range a.RowConstraints() {
			if v := c.Evaluate(row); !v.IsZero() {
				return fmt.Errorf("constraint %q violated at row %d: got %s, want 0",
					c.Name, i, v.String())
			}
		}
	}

	for i := 0; i < rows-1; i++ {
		local := tm.Row(i)
		next := tm.Row(i + 1)
		for _, c := range a.TransitionConstraints() {
			if v := c.Evaluate(local, next); !v.IsZero() {
				return fmt.Errorf("transition constraint %q violated between rows %d and %d: got %s, want 0",
					c.Name, i, i+1, v.String())
			}
		}
	}

	for _, b := range a.Boundary() {
		if b.Row < 0 || b.Row >= rows {
			return fmt.Errorf("boundary value %q references row %d outside trace of height %d",
				b.Name, b.Row, rows)
		}
		if b.Column < 0 || b.Column >= tm.Width() {
			return fmt.Errorf("boundary value %q references column %d outside trace of width %d",
				b.Name, b.Column, tm.Width())
		}
		if got := tm.Cell(b.Row, b.Column); !got.Equal(b.Value) {
			return fmt.Errorf("boundary value %q mismatch at (%d, %d): got %s, want %s",
				b.Name, b.Row, b.Column, got.String(), b.Value.String())
		}
	}

	return nil
}
