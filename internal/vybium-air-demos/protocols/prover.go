package protocols

import (
	"fmt"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/hash"

	"github.com/vybium/vybium-air-demos/internal/vybium-air-demos/air"
	"github.com/vybium/vybium-air-demos/internal/vybium-air-demos/utils"
)

// Prover generates STARK proofs for AIR execution traces
//
// The Prover implements the following workflow:
// 1. Checks the trace against the AIR constraints
// 2. Low-degree extends each trace column onto the evaluation coset
// 3. Merkle commits to the extended trace rows
// 4. Samples constraint weights via Fiat-Shamir
// 5. Combines constraint quotients into one composition codeword
// 6. Runs the FRI commit phase on the composition
// 7. Opens the queried trace rows
//
// All randomness flows through the Fiat-Shamir channel, so proving the
// same claim over the same trace yields a byte-identical proof.
type Prover struct {
	// Parameters for the STARK proof system
	params STARKParameters
}

// NewProver creates a new prover with the given parameters
func NewProver(params STARKParameters) (*Prover, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid STARK parameters: %w", err)
	}
	return &Prover{params: params}, nil
}

// Prove generates a STARK proof that the trace satisfies the AIR and
// matches the claim's public inputs.
//
// The trace is checked against the constraints before any cryptographic
// work happens: a prover holding an invalid trace fails here instead of
// producing a proof the verifier would reject.
func (p *Prover) Prove(claim *Claim, a air.AIR, trace *air.TraceMatrix) (*Proof, error) {
	if claim == nil {
		return nil, fmt.Errorf("claim cannot be nil")
	}
	if a == nil {
		return nil, fmt.Errorf("AIR cannot be nil")
	}
	if trace == nil {
		return nil, fmt.Errorf("trace cannot be nil")
	}
	if err := claim.Validate(); err != nil {
		return nil, fmt.Errorf("invalid claim: %w", err)
	}
	if err := claim.MatchesAIR(a); err != nil {
		return nil, fmt.Errorf("claim does not describe the AIR: %w", err)
	}
	if claim.PaddedHeight != trace.Rows() {
		return nil, fmt.Errorf("claim padded height %d does not match trace height %d",
			claim.PaddedHeight, trace.Rows())
	}

	// Step 1: Check the trace before committing to anything
	if err := air.CheckTrace(a, trace); err != nil {
		return nil, fmt.Errorf("trace violates its constraints: %w", err)
	}

	// Step 2: Derive domains and low-degree extend all columns
	domains, err := DeriveProofDomains(trace.Rows(), p.params.ExpansionFactor)
	if err != nil {
		return nil, fmt.Errorf("failed to derive domains: %w", err)
	}

	columnEvals, err := p.extendColumns(a, trace, domains)
	if err != nil {
		return nil, fmt.Errorf("failed to extend trace: %w", err)
	}

	// Step 3: Merkle commit to the extended trace rows
	tree, err := p.commitToTrace(columnEvals)
	if err != nil {
		return nil, fmt.Errorf("failed to commit to trace: %w", err)
	}
	traceRoot := tree.Root()

	// Step 4: Initialize Fiat-Shamir with the claim and the commitment
	channel := utils.NewChannel()
	claimHash, err := claim.Hash()
	if err != nil {
		return nil, fmt.Errorf("failed to hash claim: %w", err)
	}
	channel.Send(digestToBytes(claimHash))
	channel.Send(digestToBytes(traceRoot))

	weights := sampleWeights(a, channel)

	// Step 5: Build the composition codeword over the evaluation domain
	composition := p.buildComposition(a, weights, columnEvals, domains)

	// Step 6: FRI commit phase
	friProof, err := friCommit(composition, domains.Evaluation, p.params.ExpansionFactor, channel)
	if err != nil {
		return nil, fmt.Errorf("FRI protocol failed: %w", err)
	}

	// Step 7: Open the queried trace rows
	queries, err := p.openQueries(tree, columnEvals, channel)
	if err != nil {
		return nil, fmt.Errorf("failed to open queries: %w", err)
	}

	proof := &Proof{
		Log2PaddedHeight: utils.Log2(trace.Rows()),
		TraceRoot:        traceRoot,
		FRI:              friProof,
		Queries:          queries,
	}

	if err := proof.Validate(p.params); err != nil {
		return nil, fmt.Errorf("generated invalid proof: %w", err)
	}

	return proof, nil
}

// extendColumns interpolates each trace column over the trace domain and
// evaluates the interpolant over the evaluation coset
func (p *Prover) extendColumns(a air.AIR, trace *air.TraceMatrix, domains *ProofDomains) ([][]field.Element, error) {
	columnEvals := make([][]field.Element, a.Width())
	for col := 0; col < a.Width(); col++ {
		poly, err := domains.Trace.Interpolate(trace.Column(col))
		if err != nil {
			return nil, fmt.Errorf("failed to interpolate column %d: %w", col, err)
		}
		columnEvals[col] = domains.Evaluation.Evaluate(poly)
	}
	return columnEvals, nil
}

// commitToTrace builds a Merkle tree over the extended trace, one leaf per
// evaluation domain row
func (p *Prover) commitToTrace(columnEvals [][]field.Element) (*MerkleTree, error) {
	numRows := len(columnEvals[0])
	leaves := make([]hash.Digest, numRows)
	for i := 0; i < numRows; i++ {
		leaves[i] = hashRow(rowAt(columnEvals, i))
	}
	return NewMerkleTree(leaves)
}

// buildComposition evaluates the weighted constraint composition at every
// point of the evaluation domain. The next row at position i sits blowup
// positions further along the coset.
func (p *Prover) buildComposition(a air.AIR, weights []field.Element, columnEvals [][]field.Element, domains *ProofDomains) []field.Element {
	blowup := p.params.ExpansionFactor
	evalElems := domains.Evaluation.Elements()
	numRows := domains.Evaluation.Length

	composition := make([]field.Element, numRows)
	for i := 0; i < numRows; i++ {
		local := rowAt(columnEvals, i)
		next := rowAt(columnEvals, (i+blowup)%numRows)
		composition[i] = compositionAt(a, weights, evalElems[i], local, next, domains.Trace)
	}
	return composition
}

// openQueries draws query indices from the channel and opens the local and
// next trace rows at each one
func (p *Prover) openQueries(tree *MerkleTree, columnEvals [][]field.Element, channel *utils.Channel) ([]TraceOpening, error) {
	blowup := p.params.ExpansionFactor
	numRows := len(columnEvals[0])

	queries := make([]TraceOpening, p.params.NumQueries)
	for q := range queries {
		index := channel.ReceiveRandomIndex(numRows)
		nextIndex := (index + blowup) % numRows

		localPath, err := tree.AuthenticationPath(index)
		if err != nil {
			return nil, fmt.Errorf("failed to open row %d: %w", index, err)
		}
		nextPath, err := tree.AuthenticationPath(nextIndex)
		if err != nil {
			return nil, fmt.Errorf("failed to open row %d: %w", nextIndex, err)
		}

		queries[q] = TraceOpening{
			Index:     index,
			LocalRow:  rowAt(columnEvals, index),
			NextRow:   rowAt(columnEvals, nextIndex),
			LocalPath: localPath,
			NextPath:  nextPath,
		}
	}
	return queries, nil
}

// sampleWeights draws one composition weight per constraint from the
// channel, in the AIR's constraint order: row constraints, transition
// constraints, boundary values
func sampleWeights(a air.AIR, channel *utils.Channel) []field.Element {
	weights := make([]field.Element, air.NumConstraints(a))
	for i := range weights {
		weights[i] = channel.ReceiveRandomFieldElement()
	}
	return weights
}

// compositionAt evaluates the weighted constraint composition at a single
// out-of-trace point x, given the trace row evaluations at x and at
// omega*x.
//
// Each constraint contributes its quotient by the matching zerofier:
// row constraints divide by the full subgroup zerofier x^n - 1, transition
// constraints additionally exclude the last row, and boundary values
// divide by the single linear factor of their pinned row. All quotients
// have degree below the trace height, so the composition does too.
func compositionAt(a air.AIR, weights []field.Element, x field.Element, localRow, nextRow []field.Element, traceDomain *ArithmeticDomain) field.Element {
	n := uint64(traceDomain.Length)
	omega := traceDomain.Generator

	// Subgroup zerofier x^n - 1; nonzero off the trace subgroup
	zerofierInv := x.ModPow(n).Sub(field.One).Inverse()
	lastPoint := omega.ModPow(n - 1)

	result := field.Zero
	w := 0

	for _, c := range a.RowConstraints() {
		quotient := c.Evaluate(localRow).Mul(zerofierInv)
		result = result.Add(weights[w].Mul(quotient))
		w++
	}

	for _, c := range a.TransitionConstraints() {
		// The transition zerofier excludes the last row: multiply the
		// subgroup zerofier inverse back up by (x - omega^(n-1))
		quotient := c.Evaluate(localRow, nextRow).Mul(x.Sub(lastPoint)).Mul(zerofierInv)
		result = result.Add(weights[w].Mul(quotient))
		w++
	}

	for _, b := range a.Boundary() {
		point := omega.ModPow(uint64(b.Row))
		quotient := localRow[b.Column].Sub(b.Value).Mul(x.Sub(point).Inverse())
		result = result.Add(weights[w].Mul(quotient))
		w++
	}

	return result
}

// rowAt collects the values of all columns at one evaluation domain index
func rowAt(columnEvals [][]field.Element, index int) []field.Element {
	row := make([]field.Element, len(columnEvals))
	for col := range columnEvals {
		row[col] = columnEvals[col][index]
	}
	return row
}
