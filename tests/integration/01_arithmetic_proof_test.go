package integration_test

import (
	"testing"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"

	"github.com/vybium/vybium-air-demos/internal/vybium-air-demos/air"
	"github.com/vybium/vybium-air-demos/internal/vybium-air-demos/circuits"
	"github.com/vybium/vybium-air-demos/internal/vybium-air-demos/protocols"
)

// Test01_ArithmeticProof tests the full arithmetic pipeline at reference
// size:
// 1. Generate the 256-row trace for 3 + 4*5 = 23
// 2. Check the trace against its AIR
// 3. Generate a STARK proof
// 4. Verify the proof
//
// Related example: examples/01_arithmetic/main.go (user-facing demonstration)
func Test01_ArithmeticProof(t *testing.T) {
	t.Log("=== Test 01: Arithmetic Trace -> STARK Proof ===")

	// Step 1: Generate the reference trace
	t.Log("Step 1: Generating trace...")
	instance := circuits.DefaultArithmeticConfig()
	trace, err := circuits.GenerateArithmeticTrace(instance)
	if err != nil {
		t.Fatalf("Failed to generate trace: %v", err)
	}
	if trace.Rows() != 256 {
		t.Fatalf("Reference trace has %d rows, want 256", trace.Rows())
	}
	if !trace.Cell(0, circuits.ArithColE).Equal(field.New(23)) {
		t.Fatalf("Reference trace stores e = %s, want 23", trace.Cell(0, circuits.ArithColE).String())
	}

	// Step 2: Check the trace against the AIR
	t.Log("Step 2: Checking constraints...")
	a := circuits.NewArithmeticAIR()
	if err := air.CheckTrace(a, trace); err != nil {
		t.Fatalf("Reference trace violates its AIR: %v", err)
	}

	// Step 3: Prove
	t.Log("Step 3: Generating proof...")
	params := protocols.DefaultSTARKParameters()
	prover, err := protocols.NewProver(params)
	if err != nil {
		t.Fatalf("Failed to create prover: %v", err)
	}
	claim := protocols.ClaimFor(a, trace.Rows())
	proof, err := prover.Prove(claim, a, trace)
	if err != nil {
		t.Fatalf("Proof generation failed: %v", err)
	}
	t.Logf("Proof generated: %d bytes", proof.Size())

	// Step 4: Verify
	t.Log("Step 4: Verifying proof...")
	verifier, err := protocols.NewVerifier(params)
	if err != nil {
		t.Fatalf("Failed to create verifier: %v", err)
	}
	if err := verifier.Verify(claim, a, proof); err != nil {
		t.Fatalf("Proof verification failed: %v", err)
	}

	t.Log("Arithmetic proof verified")
}
