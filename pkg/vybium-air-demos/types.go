package vybiumairdemos

import (
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"

	"github.com/vybium/vybium-air-demos/internal/vybium-air-demos/air"
	"github.com/vybium/vybium-air-demos/internal/vybium-air-demos/circuits"
	"github.com/vybium/vybium-air-demos/internal/vybium-air-demos/protocols"
)

// FieldElement represents an element of the Goldilocks field
// This is the public type for field elements used throughout the demos
type FieldElement = field.Element

// TraceMatrix represents an execution trace
type TraceMatrix = air.TraceMatrix

// AIR is the constraint contract a trace must satisfy
type AIR = air.AIR

// Proof represents a STARK proof
type Proof = protocols.Proof

// Claim represents public information about a computation
type Claim = protocols.Claim

// ArithmeticInstance configures the arithmetic circuit: the operands of
// a + c*d = e and the trace height
type ArithmeticInstance = circuits.ArithmeticConfig

// FibonacciInstance configures the Fibonacci circuit: the seed pair and
// the number of claimed terms
type FibonacciInstance = circuits.FibonacciConfig

// Config represents configuration for the STARK prover/verifier
type Config struct {
	// Security level in bits
	SecurityLevel int

	// Blowup factor for low-degree extension (power of 2)
	BlowupFactor int

	// Number of queries for soundness
	NumQueries int
}

// DefaultConfig returns the default prover/verifier configuration
func DefaultConfig() *Config {
	params := protocols.DefaultSTARKParameters()
	return &Config{
		SecurityLevel: params.SecurityLevel,
		BlowupFactor:  params.ExpansionFactor,
		NumQueries:    params.NumQueries,
	}
}

// DefaultArithmeticInstance returns the reference arithmetic instance:
// 3 + 4*5 = 23 over 256 rows
func DefaultArithmeticInstance() ArithmeticInstance {
	return circuits.DefaultArithmeticConfig()
}

// DefaultFibonacciInstance returns the reference Fibonacci instance:
// seeds 0, 1 with 100 terms
func DefaultFibonacciInstance() FibonacciInstance {
	return circuits.DefaultFibonacciConfig()
}

// params converts the public config to internal STARK parameters
func (c *Config) params() protocols.STARKParameters {
	return protocols.STARKParameters{
		SecurityLevel:   c.SecurityLevel,
		ExpansionFactor: c.BlowupFactor,
		NumQueries:      c.NumQueries,
	}
}
