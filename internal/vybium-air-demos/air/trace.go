package air

import (
	"fmt"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// TraceMatrix is the execution trace of a computation: a rectangular table
// of field elements, one row per step, stored row-major in a single backing
// slice. The matrix owns all cells; Row returns read-only views into it.
type TraceMatrix struct {
	values []field.Element
	width  int
}

// NewTraceMatrix creates a zero-initialized trace with the given shape.
func NewTraceMatrix(rows, width int) (*TraceMatrix, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("trace must have at least one row, got %d", rows)
	}
	if width <= 0 {
		return nil, fmt.Errorf("trace width must be positive, got %d", width)
	}

	values := make([]field.Element, rows*width)
	for i := range values {
		values[i] = field.Zero
	}

	return &TraceMatrix{values: values, width: width}, nil
}

// Rows returns the number of rows.
func (tm *TraceMatrix) Rows() int {
	return len(tm.values) / tm.width
}

// Width returns the number of columns.
func (tm *TraceMatrix) Width() int {
	return tm.width
}

// Row returns row i as a read-only view. Callers must not mutate it.
func (tm *TraceMatrix) Row(i int) []field.Element {
	return tm.values[i*tm.width : (i+1)*tm.width]
}

// Cell returns the value at (row, col).
func (tm *TraceMatrix) Cell(row, col int) field.Element {
	return tm.values[row*tm.width+col]
}

// SetCell sets the value at (row, col).
func (tm *TraceMatrix) SetCell(row, col int, v field.Element) {
	tm.values[row*tm.width+col] = v
}

// SetRow copies vals into row i.
func (tm *TraceMatrix) SetRow(i int, vals []field.Element) error {
	if len(vals) != tm.width {
		return fmt.Errorf("row has %d values, trace width is %d", len(vals), tm.width)
	}
	copy(tm.values[i*tm.width:(i+1)*tm.width], vals)
	return nil
}

// Column returns a copy of column j.
func (tm *TraceMatrix) Column(j int) []field.Element {
	rows := tm.Rows()
	col := make([]field.Element, rows)
	for i := 0; i < rows; i++ {
		col[i] = tm.values[i*tm.width+j]
	}
	return col
}

// Clone returns a deep copy of the trace.
func (tm *TraceMatrix) Clone() *TraceMatrix {
	values := make([]field.Element, len(tm.values))
	copy(values, tm.values)
	return &TraceMatrix{values: values, width: tm.width}
}
