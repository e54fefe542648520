// Package vybiumairdemos provides two tutorial STARK circuits with a
// complete prover and verifier.
//
// The package proves and verifies two toy computations:
//
// - Arithmetic: a trace storing the equation a + c*d = e on every row,
//   with a single per-row constraint
// - Fibonacci: a trace walking the recurrence F(n) = F(n-1) + F(n-2),
//   with transition constraints and public seed and terminal values
//
// Both circuits run the same pipeline: generate a trace, check it against
// its AIR, low-degree extend and commit, compose the constraint quotients,
// fold with FRI, and open queried rows. Proving is deterministic: the same
// instance always yields the same proof bytes.
//
// # Quick Start
//
// Proving and verifying the Fibonacci circuit:
//
//	config := vybiumairdemos.DefaultConfig()
//	instance := vybiumairdemos.DefaultFibonacciInstance()
//
//	proof, err := vybiumairdemos.ProveFibonacci(config, instance)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := vybiumairdemos.VerifyFibonacci(config, instance, proof); err != nil {
//		log.Fatal(err)
//	}
//
// The arithmetic circuit works the same way with ProveArithmetic and
// VerifyArithmetic.
//
// # Architecture
//
// - pkg/vybium-air-demos/: Public API (this package)
// - internal/vybium-air-demos/: Private implementation (not importable)
//
// The public API provides stable entry points for proving and verifying;
// the AIR contract, the circuits and the proof driver live in internal/
// and can be refactored without breaking the public API.
//
// # References
//
// - STARK Paper: https://eprint.iacr.org/2018/046
// - FRI Paper: https://eccc.weizmann.ac.il/report/2017/134/
//
// # License
//
// See LICENSE file in the repository root.
package vybiumairdemos
