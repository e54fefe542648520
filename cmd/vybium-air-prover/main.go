package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	vybiumairdemos "github.com/vybium/vybium-air-demos/pkg/vybium-air-demos"
)

// Request is one prove-and-verify job, read as a single JSON line from
// stdin. Exactly one of the circuit blocks must be set.
type Request struct {
	Circuit string `json:"circuit"` // "arithmetic" or "fibonacci"

	Arithmetic *ArithmeticRequest `json:"arithmetic,omitempty"`
	Fibonacci  *FibonacciRequest  `json:"fibonacci,omitempty"`

	// Optional proof system overrides; zero values select the defaults
	SecurityLevel int `json:"security_level,omitempty"`
	BlowupFactor  int `json:"blowup_factor,omitempty"`
	NumQueries    int `json:"num_queries,omitempty"`
}

type ArithmeticRequest struct {
	A       uint64 `json:"a"`
	C       uint64 `json:"c"`
	D       uint64 `json:"d"`
	NumRows int    `json:"num_rows,omitempty"`
}

type FibonacciRequest struct {
	Seed0    uint64 `json:"seed_0"`
	Seed1    uint64 `json:"seed_1"`
	NumTerms int    `json:"num_terms,omitempty"`
}

// Result is written as a single JSON line to stdout
type Result struct {
	Circuit      string   `json:"circuit"`
	PaddedHeight int      `json:"padded_height"`
	ProofBytes   int      `json:"proof_bytes"`
	FRILayers    int      `json:"fri_layers"`
	PublicInputs []uint64 `json:"public_inputs"`
	Verified     bool     `json:"verified"`
}

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	if !scanner.Scan() {
		fatal("Failed to read request")
	}
	var req Request
	if err := json.Unmarshal(scanner.Bytes(), &req); err != nil {
		fatal(fmt.Sprintf("Failed to parse request: %v", err))
	}

	config := vybiumairdemos.DefaultConfig()
	if req.SecurityLevel != 0 {
		config.SecurityLevel = req.SecurityLevel
	}
	if req.BlowupFactor != 0 {
		config.BlowupFactor = req.BlowupFactor
	}
	if req.NumQueries != 0 {
		config.NumQueries = req.NumQueries
	}

	var (
		proof *vybiumairdemos.Proof
		claim *vybiumairdemos.Claim
		err   error
	)

	switch req.Circuit {
	case "arithmetic":
		instance := vybiumairdemos.DefaultArithmeticInstance()
		if req.Arithmetic != nil {
			instance = vybiumairdemos.ArithmeticInstance{
				A:       req.Arithmetic.A,
				C:       req.Arithmetic.C,
				D:       req.Arithmetic.D,
				NumRows: req.Arithmetic.NumRows,
			}
		}
		claim = vybiumairdemos.ArithmeticClaim(instance)

		logStderr("Generating arithmetic proof...")
		proof, err = vybiumairdemos.ProveArithmetic(config, instance)
		if err != nil {
			fatal(fmt.Sprintf("Proof generation failed: %v", err))
		}

		logStderr("Verifying...")
		if err := vybiumairdemos.VerifyArithmetic(config, instance, proof); err != nil {
			fatal(fmt.Sprintf("Proof verification failed: %v", err))
		}

	case "fibonacci":
		instance := vybiumairdemos.DefaultFibonacciInstance()
		if req.Fibonacci != nil {
			instance = vybiumairdemos.FibonacciInstance{
				Seed0:    req.Fibonacci.Seed0,
				Seed1:    req.Fibonacci.Seed1,
				NumTerms: req.Fibonacci.NumTerms,
			}
		}
		claim = vybiumairdemos.FibonacciClaim(instance)

		logStderr("Generating fibonacci proof...")
		proof, err = vybiumairdemos.ProveFibonacci(config, instance)
		if err != nil {
			fatal(fmt.Sprintf("Proof generation failed: %v", err))
		}

		logStderr("Verifying...")
		if err := vybiumairdemos.VerifyFibonacci(config, instance, proof); err != nil {
			fatal(fmt.Sprintf("Proof verification failed: %v", err))
		}

	default:
		fatal(fmt.Sprintf("Unknown circuit %q (want \"arithmetic\" or \"fibonacci\")", req.Circuit))
	}

	logStderr("Proof verified")

	publicInputs := make([]uint64, len(claim.PublicInputs))
	for i, e := range claim.PublicInputs {
		publicInputs[i] = e.Value()
	}

	result := Result{
		Circuit:      req.Circuit,
		PaddedHeight: proof.PaddedHeight(),
		ProofBytes:   proof.Size(),
		FRILayers:    len(proof.FRI.Layers),
		PublicInputs: publicInputs,
		Verified:     true,
	}

	out, err := json.Marshal(result)
	if err != nil {
		fatal(fmt.Sprintf("Failed to serialize result: %v", err))
	}
	os.Stdout.Write(out)
	os.Stdout.Write([]byte("\n"))
}

func logStderr(msg string) {
	fmt.Fprintln(os.Stderr, "vybium-air-prover:", msg)
}

func fatal(msg string) {
	logStderr("ERROR: " + msg)
	os.Exit(1)
}
