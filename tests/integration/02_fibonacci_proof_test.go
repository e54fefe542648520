package integration_test

import (
	"reflect"
	"testing"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"

	"github.com/vybium/vybium-air-demos/internal/vybium-air-demos/circuits"
	"github.com/vybium/vybium-air-demos/internal/vybium-air-demos/protocols"
)

// Test02_FibonacciProof tests the full Fibonacci pipeline at reference
// size:
// 1. Generate the trace for 100 terms from seeds (0, 1), padded to 128 rows
// 2. Generate a STARK proof against the public seed and terminal value
// 3. Verify the proof
// 4. Prove again and confirm the proof is byte-identical
//
// Related example: examples/02_fibonacci/main.go (user-facing demonstration)
func Test02_FibonacciProof(t *testing.T) {
	t.Log("=== Test 02: Fibonacci Trace -> STARK Proof ===")

	// Step 1: Generate the reference trace
	t.Log("Step 1: Generating trace...")
	instance := circuits.DefaultFibonacciConfig()
	trace, err := circuits.GenerateFibonacciTrace(instance)
	if err != nil {
		t.Fatalf("Failed to generate trace: %v", err)
	}
	if trace.Rows() != 128 {
		t.Fatalf("Reference trace has %d rows, want 128", trace.Rows())
	}
	if !trace.Cell(10, circuits.FibColA).Equal(field.New(55)) {
		t.Fatalf("F(10) = %s in the trace, want 55", trace.Cell(10, circuits.FibColA).String())
	}

	// Step 2: Prove against the public values
	t.Log("Step 2: Generating proof...")
	a := circuits.NewFibonacciAIR(instance)
	claim := protocols.ClaimFor(a, trace.Rows())
	if len(claim.PublicInputs) != 3 {
		t.Fatalf("Claim carries %d public inputs, want seed pair + terminal", len(claim.PublicInputs))
	}

	params := protocols.DefaultSTARKParameters()
	prover, err := protocols.NewProver(params)
	if err != nil {
		t.Fatalf("Failed to create prover: %v", err)
	}
	proof, err := prover.Prove(claim, a, trace)
	if err != nil {
		t.Fatalf("Proof generation failed: %v", err)
	}
	t.Logf("Proof generated: %d bytes", proof.Size())

	// Step 3: Verify
	t.Log("Step 3: Verifying proof...")
	verifier, err := protocols.NewVerifier(params)
	if err != nil {
		t.Fatalf("Failed to create verifier: %v", err)
	}
	if err := verifier.Verify(claim, a, proof); err != nil {
		t.Fatalf("Proof verification failed: %v", err)
	}

	// Step 4: Proving is deterministic for a fixed instance
	t.Log("Step 4: Re-proving to check determinism...")
	again, err := prover.Prove(claim, a, trace)
	if err != nil {
		t.Fatalf("Second proof generation failed: %v", err)
	}
	if !reflect.DeepEqual(proof, again) {
		t.Error("Proving the same instance twice produced different proofs")
	}

	t.Log("Fibonacci proof verified")
}
