package air

import (
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// SingleRowConstraint is a polynomial constraint over one row of the trace.
// The constraint is satisfied when Evaluate returns zero.
type SingleRowConstraint struct {
	// Name for error reporting
	Name string

	// Degree of the constraint polynomial in the trace columns
	Degree int

	// Evaluate computes the constraint value for a row
	Evaluate func(row []field.Element) field.Element
}

// TransitionConstraint is a polynomial constraint over two consecutive rows.
// It applies to every row except the last, and is satisfied when Evaluate
// returns zero for the (local, next) pair.
type TransitionConstraint struct {
	// Name for error reporting
	Name string

	// Degree of the constraint polynomial in the trace columns
	Degree int

	// Evaluate computes the constraint value for a pair of adjacent rows
	Evaluate func(local, next []field.Element) field.Element
}

// BoundaryValue pins a single trace cell to a public value. Boundary values
// are the public inputs of a circuit: the verifier checks them independently
// of the committed trace.
type BoundaryValue struct {
	Name   string
	Row    int
	Column int
	Value  field.Element
}

// AIR is an Algebraic Intermediate Representation: the set of polynomial
// constraints a valid execution trace must satisfy. Constraint slices are
// ordered; prover and verifier rely on the ordering when assigning
// composition weights.
type AIR interface {
	// Name identifies the circuit
	Name() string

	// Width is the number of trace columns
	Width() int

	// RowConstraints apply to every row in isolation
	RowConstraints() []SingleRowConstraint

	// TransitionConstraints apply to every adjacent row pair
	TransitionConstraints() []TransitionConstraint

	// Boundary returns the pinned public cells, in claim order
	Boundary() []BoundaryValue
}

// Definition is a concrete AIR assembled from named constraints, in the
// builder style used for table constraints elsewhere in the system.
type Definition struct {
	name                  string
	width                 int
	rowConstraints        []SingleRowConstraint
	transitionConstraints []TransitionConstraint
	boundary              []BoundaryValue
}

// NewDefinition creates an empty AIR definition for a circuit.
func NewDefinition(name string, width int) *Definition {
	return &Definition{
		name:  name,
		width: width,
	}
}

// AddRowConstraint appends a single-row constraint.
func (d *Definition) AddRowConstraint(name string, degree int,
	eval func(row []field.Element) field.Element,
) {
	d.rowConstraints = append(d.rowConstraints, SingleRowConstraint{
		Name:     name,
		Degree:   degree,
		Evaluate: eval,
	})
}

// AddTransitionConstraint appends a transition constraint.
func (d *Definition) AddTransitionConstraint(name string, degree int,
	eval func(local, next []field.Element) field.Element,
) {
	d.transitionConstraints = append(d.transitionConstraints, TransitionConstraint{
		Name:     name,
		Degree:   degree,
		Evaluate: eval,
	})
}

// AddBoundaryValue pins the cell at (row, col) to a public value.
func (d *Definition) AddBoundaryValue(name string, row, col int, value field.Element) {
	d.boundary = append(d.boundary, BoundaryValue{
		Name:   name,
		Row:    row,
		Column: col,
		Value:  value,
	})
}

// Name implements AIR.
func (d *Definition) Name() string { return d.name }

// Width implements AIR.
func (d *Definition) Width() int { return d.width }

// RowConstraints implements AIR.
func (d *Definition) RowConstraints() []SingleRowConstraint { return d.rowConstraints }

// TransitionConstraints implements AIR.
func (d *Definition) TransitionConstraints() []TransitionConstraint {
	return d.transitionConstraints
}

// Boundary implements AIR.
func (d *Definition) Boundary() []BoundaryValue { return d.boundary }

// NumConstraints returns the total number of constraints, boundary values
// included. This is the number of composition weights the proof driver
// samples.
func NumConstraints(a AIR) int {
	return len(a.RowConstraints()) + len(a.TransitionConstraints()) + len(a.Boundary())
}

// MaxDegree returns the maximum constraint degree of the AIR.
func MaxDegree(a AIR) int {
	maxDeg := 1
	for _, c := range a.RowConstraints() {
		if c.Degree > maxDeg {
			maxDeg = c.Degree
		}
	}
	for _, c := range a.TransitionConstraints() {
		if c.Degree > maxDeg {
			maxDeg = c.Degree
		}
	}
	return maxDeg
}
