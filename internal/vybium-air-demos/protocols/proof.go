package protocols

import (
	"fmt"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/hash"
)

// Proof contains the cryptographic information to verify a computation.
// Should be used together with a Claim.
//
// The proof carries the trace commitment, the full FRI folding transcript
// and the queried trace openings. Everything the verifier needs beyond the
// claim itself is in here.
type Proof struct {
	// Log2PaddedHeight is the log2 of the padded trace height
	Log2PaddedHeight int

	// TraceRoot is the Merkle commitment to the low-degree extended trace
	TraceRoot hash.Digest

	// FRI is the folding transcript for the composition codeword
	FRI *FRIProof

	// Queries are the opened trace rows for the spot checks
	Queries []TraceOpening
}

// FRIProof is the commit-phase transcript of the FRI protocol: every
// folding layer plus the constant the final layer collapses to.
type FRIProof struct {
	Layers     []FRILayer
	FinalValue field.Element
}

// FRILayer is one codeword in the folding sequence. Values are included in
// full; the verifier recomputes the root and checks the fold at every
// position, so the root doubles as a transcript binding rather than an
// opening commitment.
type FRILayer struct {
	Values    []field.Element
	Root      hash.Digest
	Challenge field.Element // folding challenge into the next layer, zero on the final layer
}

// TraceOpening is one spot check: the trace row at a queried evaluation
// domain index and the row one trace step later, each with its Merkle
// authentication path.
type TraceOpening struct {
	Index     int
	LocalRow  []field.Element
	NextRow   []field.Element
	LocalPath []hash.Digest
	NextPath  []hash.Digest
}

// PaddedHeight returns the padded trace height
func (p *Proof) PaddedHeight() int {
	return 1 << p.Log2PaddedHeight
}

// Validate checks if the proof is well-formed: the layer sizes halve down
// from the evaluation domain to the expansion factor, and every opening
// carries both rows and both paths. Validation checks shape only; the
// cryptographic checks live in the Verifier.
func (p *Proof) Validate(params STARKParameters) error {
	if p.Log2PaddedHeight < 0 || p.Log2PaddedHeight > 62 {
		return fmt.Errorf("implausible log2 padded height %d", p.Log2PaddedHeight)
	}

	if p.FRI == nil {
		return fmt.Errorf("proof is missing the FRI transcript")
	}

	expectedLayers := params.NumFRILayers(p.PaddedHeight())
	if len(p.FRI.Layers) != expectedLayers {
		return fmt.Errorf("expected %d FRI layers, got %d", expectedLayers, len(p.FRI.Layers))
	}

	expectedLen := params.EvaluationDomainLength(p.PaddedHeight())
	for i, layer := range p.FRI.Layers {
		if len(layer.Values) != expectedLen {
			return fmt.Errorf("FRI layer %d has %d values, expected %d", i, len(layer.Values), expectedLen)
		}
		expectedLen /= 2
	}

	if len(p.Queries) != params.NumQueries {
		return fmt.Errorf("expected %d query openings, got %d", params.NumQueries, len(p.Queries))
	}

	domainLen := params.EvaluationDomainLength(p.PaddedHeight())
	pathLen := 0
	for n := domainLen; n > 1; n /= 2 {
		pathLen++
	}
	for i, q := range p.Queries {
		if q.Index < 0 || q.Index >= domainLen {
			return fmt.Errorf("query %d index %d out of range [0, %d)", i, q.Index, domainLen)
		}
		if len(q.LocalRow) == 0 || len(q.NextRow) == 0 {
			return fmt.Errorf("query %d is missing opened rows", i)
		}
		if len(q.LocalRow) != len(q.NextRow) {
			return fmt.Errorf("query %d row width mismatch: %d vs %d", i, len(q.LocalRow), len(q.NextRow))
		}
		if len(q.LocalPath) != pathLen || len(q.NextPath) != pathLen {
			return fmt.Errorf("query %d has authentication paths of length %d/%d, expected %d",
				i, len(q.LocalPath), len(q.NextPath), pathLen)
		}
	}

	return nil
}

// Size returns the approximate size of the proof in bytes
func (p *Proof) Size() int {
	size := 4 // log2 height
	size += len(p.TraceRoot) * 8

	if p.FRI != nil {
		for _, layer := range p.FRI.Layers {
			size += len(layer.Values) * 8
			size += len(layer.Root) * 8
			size += 8 // challenge
		}
		size += 8 // final value
	}

	for _, q := range p.Queries {
		size += 4 // index
		size += (len(q.LocalRow) + len(q.NextRow)) * 8
		size += (len(q.LocalPath) + len(q.NextPath)) * len(hash.Digest{}) * 8
	}

	return size
}

// String returns a human-readable representation of the proof
func (p *Proof) String() string {
	layers := 0
	if p.FRI != nil {
		layers = len(p.FRI.Layers)
	}
	return fmt.Sprintf("Proof{PaddedHeight: %d, FRILayers: %d, Queries: %d, Size: %d bytes}",
		p.PaddedHeight(), layers, len(p.Queries), p.Size())
}
