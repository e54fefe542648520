package protocols

import (
	"fmt"

	"github.com/vybium/vybium-air-demos/internal/vybium-air-demos/utils"
)

// STARKParameters contains the parameters for the STARK proof system
type STARKParameters struct {
	// SecurityLevel is the conjectured security level in bits
	// The system has soundness error 2^(-SecurityLevel)
	SecurityLevel int

	// ExpansionFactor is the ratio between the evaluation domain and the
	// trace domain. Must be a power of 2. A larger blowup buys more
	// soundness per query at the cost of prover work.
	ExpansionFactor int

	// NumQueries is the number of spot checks in the query phase
	NumQueries int
}

// DefaultSTARKParameters returns the default STARK parameters
// These give a conjectured security level of 80 bits
func DefaultSTARKParameters() STARKParameters {
	return STARKParameters{
		SecurityLevel:   80,
		ExpansionFactor: 4,  // 4x blowup
		NumQueries:      40, // For soundness
	}
}

// NewSTARKParameters creates custom STARK parameters
func NewSTARKParameters(securityLevel int) STARKParameters {
	// With a 4x blowup each query contributes roughly 2 bits
	numQueries := securityLevel / 2
	if numQueries < 10 {
		numQueries = 10
	}

	return STARKParameters{
		SecurityLevel:   securityLevel,
		ExpansionFactor: 4,
		NumQueries:      numQueries,
	}
}

// Validate checks if the parameters are valid
func (sp *STARKParameters) Validate() error {
	if sp.SecurityLevel < 1 {
		return fmt.Errorf("security level must be positive, got %d", sp.SecurityLevel)
	}

	if sp.ExpansionFactor < 2 || !utils.IsPowerOfTwo(sp.ExpansionFactor) {
		return fmt.Errorf("expansion factor must be a power of 2 >= 2, got %d", sp.ExpansionFactor)
	}

	if sp.NumQueries < 1 {
		return fmt.Errorf("number of queries must be at least 1, got %d", sp.NumQueries)
	}

	return nil
}

// EvaluationDomainLength returns the size of the evaluation domain for a
// trace of the given padded height
func (sp *STARKParameters) EvaluationDomainLength(paddedHeight int) int {
	return paddedHeight * sp.ExpansionFactor
}

// NumFRILayers returns the number of folding layers for a trace of the
// given padded height. The codeword starts at ExpansionFactor*paddedHeight
// values and folds in half until ExpansionFactor values remain, at which
// point a codeword of degree < paddedHeight has collapsed to a constant.
func (sp *STARKParameters) NumFRILayers(paddedHeight int) int {
	return utils.Log2(paddedHeight) + 1
}

// String returns a human-readable representation of the parameters
func (sp *STARKParameters) String() string {
	return fmt.Sprintf("STARK{Security: %d bits, Blowup: %dx, Queries: %d}",
		sp.SecurityLevel,
		sp.ExpansionFactor,
		sp.NumQueries)
}
