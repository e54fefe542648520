package circuits

import (
	"fmt"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"

	"github.com/vybium/vybium-air-demos/internal/vybium-air-demos/air"
	"github.com/vybium/vybium-air-demos/internal/vybium-air-demos/utils"
)

// Column layout of the arithmetic trace: one stored equation per row.
const (
	ArithColA = iota // a
	ArithColC        // c
	ArithColD        // d
	ArithColE        // e = a + c*d
	NumArithmeticCols
)

// ArithmeticName identifies the arithmetic circuit in claims.
const ArithmeticName = "arithmetic"

// DefaultArithmeticRows is the default trace height. A single row would
// encode the equation; the height is a policy choice, not a derived minimum.
const DefaultArithmeticRows = 256

// ArithmeticConfig holds the instance parameters of the arithmetic circuit:
// the operands of a + c*d = e and the trace height.
type ArithmeticConfig struct {
	// Operands of the stored equation
	A uint64
	C uint64
	D uint64

	// NumRows is the requested trace height; rounded up to the next power
	// of two. Zero selects DefaultArithmeticRows.
	NumRows int
}

// DefaultArithmeticConfig returns the reference instance: 3 + 4*5 = 23 over
// 256 rows.
func DefaultArithmeticConfig() ArithmeticConfig {
	return ArithmeticConfig{A: 3, C: 4, D: 5, NumRows: DefaultArithmeticRows}
}

// Validate checks the configuration.
func (cfg ArithmeticConfig) Validate() error {
	if cfg.NumRows < 0 {
		return fmt.Errorf("row count cannot be negative, got %d", cfg.NumRows)
	}
	return nil
}

// PaddedRows returns the actual trace height: NumRows rounded up to a power
// of two.
func (cfg ArithmeticConfig) PaddedRows() int {
	rows := cfg.NumRows
	if rows == 0 {
		rows = DefaultArithmeticRows
	}
	return utils.NextPowerOfTwo(rows)
}

// GenerateArithmeticTrace builds the execution trace for the arithmetic
// circuit: e = a + c*d is computed in the field once, and the resulting row
// [a, c, d, e] is replicated until the trace height reaches the configured
// power of two. Operands are reduced into the field by construction; the
// constraint itself never reduces.
func GenerateArithmeticTrace(cfg ArithmeticConfig) (*air.TraceMatrix, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid arithmetic config: %w", err)
	}

	a := field.New(cfg.A)
	c := field.New(cfg.C)
	d := field.New(cfg.D)
	e := a.Add(c.Mul(d))

	rows := cfg.PaddedRows()
	tm, err := air.NewTraceMatrix(rows, NumArithmeticCols)
	if err != nil {
		return nil, err
	}

	row := []field.Element{a, c, d, e}
	for i := 0; i < rows; i++ {
		if err := tm.SetRow(i, row); err != nil {
			return nil, err
		}
	}

	return tm, nil
}

// NewArithmeticAIR builds the AIR for the arithmetic circuit: a single
// per-row constraint a + c*d - e = 0, no transition constraints, no public
// boundary values. The proof attests only to the internal consistency of
// the stored equation.
func NewArithmeticAIR() *air.Definition {
	d := air.NewDefinition(ArithmeticName, NumArithmeticCols)

	d.AddRowConstraint("a_plus_c_times_d_equals_e", 2, func(row []field.Element) field.Element {
		return row[ArithColA].Add(row[ArithColC].Mul(row[ArithColD])).Sub(row[ArithColE])
	})

	return d
}
