package vybiumairdemos

import (
	"github.com/vybium/vybium-air-demos/internal/vybium-air-demos/air"
	"github.com/vybium/vybium-air-demos/internal/vybium-air-demos/circuits"
	"github.com/vybium/vybium-air-demos/internal/vybium-air-demos/protocols"
)

// Prove generates a STARK proof that the trace satisfies the AIR. The
// claim is derived from the AIR's boundary values; the trace is checked
// against the constraints before any cryptographic work.
func Prove(config *Config, a AIR, trace *TraceMatrix) (*Proof, error) {
	if config == nil {
		return nil, &DemoError{Code: ErrInvalidConfig, Message: "config cannot be nil"}
	}
	if a == nil {
		return nil, &DemoError{Code: ErrInvalidInput, Message: "AIR cannot be nil"}
	}
	if trace == nil {
		return nil, &DemoError{Code: ErrMalformedTrace, Message: "trace cannot be nil"}
	}

	// Classify constraint failures separately from the rest of proving
	if err := air.CheckTrace(a, trace); err != nil {
		return nil, &DemoError{
			Code:    ErrConstraintViolation,
			Message: "trace violates its constraints",
			Cause:   err,
		}
	}

	prover, err := protocols.NewProver(config.params())
	if err != nil {
		return nil, &DemoError{
			Code:    ErrInvalidConfig,
			Message: "invalid prover configuration",
			Cause:   err,
		}
	}

	claim := protocols.ClaimFor(a, trace.Rows())
	proof, err := prover.Prove(claim, a, trace)
	if err != nil {
		return nil, &DemoError{
			Code:    ErrProofGeneration,
			Message: "proof generation failed",
			Cause:   err,
		}
	}

	return proof, nil
}

// Verify checks a STARK proof against an AIR and a claim. It returns nil
// exactly when the proof is accepted.
func Verify(config *Config, a AIR, claim *Claim, proof *Proof) error {
	if config == nil {
		return &DemoError{Code: ErrInvalidConfig, Message: "config cannot be nil"}
	}

	verifier, err := protocols.NewVerifier(config.params())
	if err != nil {
		return &DemoError{
			Code:    ErrInvalidConfig,
			Message: "invalid verifier configuration",
			Cause:   err,
		}
	}

	if err := verifier.Verify(claim, a, proof); err != nil {
		return &DemoError{
			Code:    ErrProofVerification,
			Message: "proof verification failed",
			Cause:   err,
		}
	}

	return nil
}

// ProveArithmetic generates a proof for the arithmetic circuit instance
func ProveArithmetic(config *Config, instance ArithmeticInstance) (*Proof, error) {
	trace, err := circuits.GenerateArithmeticTrace(instance)
	if err != nil {
		return nil, &DemoError{
			Code:    ErrInvalidConfig,
			Message: "invalid arithmetic instance",
			Cause:   err,
		}
	}
	return Prove(config, circuits.NewArithmeticAIR(), trace)
}

// VerifyArithmetic checks a proof for the arithmetic circuit instance.
// The claim is rebuilt from the instance, so the proof is checked against
// exactly the public values the caller expects.
func VerifyArithmetic(config *Config, instance ArithmeticInstance, proof *Proof) error {
	if err := instance.Validate(); err != nil {
		return &DemoError{
			Code:    ErrInvalidConfig,
			Message: "invalid arithmetic instance",
			Cause:   err,
		}
	}
	a := circuits.NewArithmeticAIR()
	claim := protocols.ClaimFor(a, instance.PaddedRows())
	return Verify(config, a, claim, proof)
}

// ProveFibonacci generates a proof for the Fibonacci circuit instance
func ProveFibonacci(config *Config, instance FibonacciInstance) (*Proof, error) {
	trace, err := circuits.GenerateFibonacciTrace(instance)
	if err != nil {
		return nil, &DemoError{
			Code:    ErrInvalidConfig,
			Message: "invalid fibonacci instance",
			Cause:   err,
		}
	}
	return Prove(config, circuits.NewFibonacciAIR(instance), trace)
}

// VerifyFibonacci checks a proof for the Fibonacci circuit instance.
// The claim carries the seed pair and the claimed terminal term derived
// from the instance.
func VerifyFibonacci(config *Config, instance FibonacciInstance, proof *Proof) error {
	if err := instance.Validate(); err != nil {
		return &DemoError{
			Code:    ErrInvalidConfig,
			Message: "invalid fibonacci instance",
			Cause:   err,
		}
	}
	a := circuits.NewFibonacciAIR(instance)
	claim := protocols.ClaimFor(a, instance.PaddedRows())
	return Verify(config, a, claim, proof)
}

// ArithmeticAIR returns the AIR for the arithmetic circuit
func ArithmeticAIR() AIR {
	return circuits.NewArithmeticAIR()
}

// FibonacciAIR returns the AIR for a Fibonacci instance
func FibonacciAIR(instance FibonacciInstance) AIR {
	return circuits.NewFibonacciAIR(instance)
}

// GenerateArithmeticTrace builds the execution trace for an arithmetic
// instance
func GenerateArithmeticTrace(instance ArithmeticInstance) (*TraceMatrix, error) {
	return circuits.GenerateArithmeticTrace(instance)
}

// GenerateFibonacciTrace builds the execution trace for a Fibonacci
// instance
func GenerateFibonacciTrace(instance FibonacciInstance) (*TraceMatrix, error) {
	return circuits.GenerateFibonacciTrace(instance)
}

// FibonacciClaim returns the claim for a Fibonacci instance: the seed
// pair and the claimed terminal term, bound to the trace shape
func FibonacciClaim(instance FibonacciInstance) *Claim {
	return protocols.ClaimFor(circuits.NewFibonacciAIR(instance), instance.PaddedRows())
}

// ArithmeticClaim returns the claim for an arithmetic instance
func ArithmeticClaim(instance ArithmeticInstance) *Claim {
	return protocols.ClaimFor(circuits.NewArithmeticAIR(), instance.PaddedRows())
}
