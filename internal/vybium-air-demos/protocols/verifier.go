package protocols

import (
	"fmt"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"

	"github.com/vybium/vybium-air-demos/internal/vybium-air-demos/air"
	"github.com/vybium/vybium-air-demos/internal/vybium-air-demos/utils"
)

// Verifier checks STARK proofs against claims
//
// The Verifier replays the prover's Fiat-Shamir transcript, so every
// challenge it derives matches the prover's if and only if the proof was
// produced honestly for this exact claim. Verification never touches the
// witness: the AIR, the claim and the proof are all it sees.
type Verifier struct {
	params STARKParameters
}

// NewVerifier creates a new verifier with the given parameters
func NewVerifier(params STARKParameters) (*Verifier, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid STARK parameters: %w", err)
	}
	return &Verifier{params: params}, nil
}

// Verify checks a proof against a claim and the AIR it is about.
// It returns nil exactly when the proof is accepted.
//
// The checks run in transcript order:
// 1. The claim must describe the AIR, public inputs included
// 2. The proof must be well-formed for the claimed trace shape
// 3. The FRI transcript must replay: roots, challenges, every fold,
//    and the constant final layer
// 4. Every queried trace opening must authenticate against the trace
//    commitment, and the composition recomputed from the opened rows
//    must equal the first FRI layer at the queried position
func (v *Verifier) Verify(claim *Claim, a air.AIR, proof *Proof) error {
	if claim == nil {
		return fmt.Errorf("claim cannot be nil")
	}
	if a == nil {
		return fmt.Errorf("AIR cannot be nil")
	}
	if proof == nil {
		return fmt.Errorf("proof cannot be nil")
	}
	if err := claim.Validate(); err != nil {
		return fmt.Errorf("invalid claim: %w", err)
	}
	if err := claim.MatchesAIR(a); err != nil {
		return fmt.Errorf("claim does not describe the AIR: %w", err)
	}
	if claim.PaddedHeight != proof.PaddedHeight() {
		return fmt.Errorf("claim padded height %d does not match proof padded height %d",
			claim.PaddedHeight, proof.PaddedHeight())
	}
	if err := proof.Validate(v.params); err != nil {
		return fmt.Errorf("malformed proof: %w", err)
	}

	domains, err := DeriveProofDomains(proof.PaddedHeight(), v.params.ExpansionFactor)
	if err != nil {
		return fmt.Errorf("failed to derive domains: %w", err)
	}

	// Replay the transcript from the top
	channel := utils.NewChannel()
	claimHash, err := claim.Hash()
	if err != nil {
		return fmt.Errorf("failed to hash claim: %w", err)
	}
	channel.Send(digestToBytes(claimHash))
	channel.Send(digestToBytes(proof.TraceRoot))

	weights := sampleWeights(a, channel)

	if err := friVerify(proof.FRI, domains.Evaluation, v.params.ExpansionFactor, channel); err != nil {
		return fmt.Errorf("FRI verification failed: %w", err)
	}

	if err := v.checkQueries(a, weights, proof, domains, channel); err != nil {
		return fmt.Errorf("query verification failed: %w", err)
	}

	return nil
}

// checkQueries authenticates every opened trace row and ties the openings
// to the FRI transcript: the composition value recomputed from the opened
// rows must equal the first FRI layer at the queried position.
func (v *Verifier) checkQueries(a air.AIR, weights []field.Element, proof *Proof, domains *ProofDomains, channel *utils.Channel) error {
	blowup := v.params.ExpansionFactor
	numRows := domains.Evaluation.Length
	evalElems := domains.Evaluation.Elements()
	firstLayer := proof.FRI.Layers[0].Values

	for q, opening := range proof.Queries {
		index := channel.ReceiveRandomIndex(numRows)
		if opening.Index != index {
			return fmt.Errorf("query %d opens index %d, transcript demands %d", q, opening.Index, index)
		}
		nextIndex := (index + blowup) % numRows

		if len(opening.LocalRow) != a.Width() {
			return fmt.Errorf("query %d opens a row of width %d, AIR has %d columns",
				q, len(opening.LocalRow), a.Width())
		}

		if !VerifyPath(proof.TraceRoot, index, hashRow(opening.LocalRow), opening.LocalPath) {
			return fmt.Errorf("query %d local row fails authentication at index %d", q, index)
		}
		if !VerifyPath(proof.TraceRoot, nextIndex, hashRow(opening.NextRow), opening.NextPath) {
			return fmt.Errorf("query %d next row fails authentication at index %d", q, nextIndex)
		}

		expected := compositionAt(a, weights, evalElems[index], opening.LocalRow, opening.NextRow, domains.Trace)
		if !expected.Equal(firstLayer[index]) {
			return fmt.Errorf("query %d composition mismatch at index %d", q, index)
		}
	}

	return nil
}
