package integration_test

import (
	"errors"
	"testing"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"

	"github.com/vybium/vybium-air-demos/internal/vybium-air-demos/circuits"
	"github.com/vybium/vybium-air-demos/internal/vybium-air-demos/protocols"
	vybiumairdemos "github.com/vybium/vybium-air-demos/pkg/vybium-air-demos"
)

// Test03_TamperRejection tests the failure paths through the public
// facade and the raw driver:
// 1. A corrupted trace cell is rejected before proving starts
// 2. A tampered proof is rejected by verification
// 3. A claim for different public values does not verify a valid proof
func Test03_TamperRejection(t *testing.T) {
	t.Log("=== Test 03: Tamper Rejection ===")

	config := vybiumairdemos.DefaultConfig()
	instance := vybiumairdemos.FibonacciInstance{Seed0: 0, Seed1: 1, NumTerms: 20}

	// Step 1: Corrupted trace fails with a constraint violation
	t.Log("Step 1: Proving over a corrupted trace...")
	trace, err := vybiumairdemos.GenerateFibonacciTrace(instance)
	if err != nil {
		t.Fatalf("Failed to generate trace: %v", err)
	}
	trace.SetCell(7, circuits.FibColB, trace.Cell(7, circuits.FibColB).Add(field.One))

	_, err = vybiumairdemos.Prove(config, vybiumairdemos.FibonacciAIR(instance), trace)
	if err == nil {
		t.Fatal("Proving over a corrupted trace succeeded")
	}
	if !errors.Is(err, &vybiumairdemos.DemoError{Code: vybiumairdemos.ErrConstraintViolation}) {
		t.Errorf("Expected a constraint violation, got %v", err)
	}
	t.Logf("Rejected as expected: %v", err)

	// Step 2: Honest proof, then tamper with it
	t.Log("Step 2: Tampering with a valid proof...")
	proof, err := vybiumairdemos.ProveFibonacci(config, instance)
	if err != nil {
		t.Fatalf("Proof generation failed: %v", err)
	}
	if err := vybiumairdemos.VerifyFibonacci(config, instance, proof); err != nil {
		t.Fatalf("Honest proof rejected: %v", err)
	}

	proof.FRI.FinalValue = proof.FRI.FinalValue.Add(field.One)
	if err := vybiumairdemos.VerifyFibonacci(config, instance, proof); err == nil {
		t.Error("Proof with a tampered final constant accepted")
	}

	// Step 3: Valid proof against the wrong public values
	t.Log("Step 3: Verifying against the wrong instance...")
	proof, err = vybiumairdemos.ProveFibonacci(config, instance)
	if err != nil {
		t.Fatalf("Proof generation failed: %v", err)
	}

	wrongInstance := vybiumairdemos.FibonacciInstance{Seed0: 2, Seed1: 3, NumTerms: 20}
	if err := vybiumairdemos.VerifyFibonacci(config, wrongInstance, proof); err == nil {
		t.Error("Proof accepted for different public values")
	}

	// Direct driver check: a claim whose public inputs disagree with the
	// AIR is rejected before any cryptographic work
	a := circuits.NewFibonacciAIR(circuits.FibonacciConfig{Seed0: 0, Seed1: 1, NumTerms: 20})
	claim := protocols.ClaimFor(a, 32)
	claim.PublicInputs[0] = field.New(9)

	verifier, err := protocols.NewVerifier(protocols.DefaultSTARKParameters())
	if err != nil {
		t.Fatalf("Failed to create verifier: %v", err)
	}
	if err := verifier.Verify(claim, a, proof); err == nil {
		t.Error("Claim with tampered public inputs accepted")
	}

	t.Log("All tampering attempts rejected")
}
