package protocols

import (
	"bytes"
	"testing"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/polynomial"

	"github.com/vybium/vybium-air-demos/internal/vybium-air-demos/utils"
)

// lowDegreeCodeword evaluates a fixed cubic over a 16-point coset, giving a
// codeword with expansion factor 4.
func lowDegreeCodeword(t *testing.T) ([]field.Element, *ArithmeticDomain) {
	t.Helper()

	d, err := NewArithmeticDomain(16)
	if err != nil {
		t.Fatalf("failed to create domain: %v", err)
	}
	d = d.WithOffset(field.New(CosetOffsetValue))

	poly := polynomial.New([]field.Element{
		field.New(5), field.New(3), field.New(2), field.New(1),
	})
	return d.Evaluate(poly), d
}

func TestFoldCodewordHalvesDegree(t *testing.T) {
	codeword, d := lowDegreeCodeword(t)

	folded := foldCodeword(codeword, d.Elements(), field.New(9))
	if len(folded) != 8 {
		t.Fatalf("folded codeword has length %d, want 8", len(folded))
	}

	// The folded codeword lives on the squared domain and interpolates to
	// a polynomial of half the degree.
	squared := halveDomainElements(d.Elements())
	points := make([][2]field.Element, len(folded))
	for i := range points {
		points[i] = [2]field.Element{squared[i], folded[i]}
	}
	foldedPoly := polynomial.Interpolate(points)

	if foldedPoly.Degree() > 1 {
		t.Errorf("folding a cubic gave degree %d, want at most 1", foldedPoly.Degree())
	}
}

func TestFRICommitVerifyRoundTrip(t *testing.T) {
	codeword, d := lowDegreeCodeword(t)

	proverChannel := utils.NewChannel()
	proof, err := friCommit(codeword, d, 4, proverChannel)
	if err != nil {
		t.Fatalf("commit phase failed: %v", err)
	}

	// 16 -> 8 -> 4: three layers, constant at the end
	if len(proof.Layers) != 3 {
		t.Fatalf("got %d layers, want 3", len(proof.Layers))
	}

	verifierChannel := utils.NewChannel()
	if err := friVerify(proof, d, 4, verifierChannel); err != nil {
		t.Fatalf("honest transcript rejected: %v", err)
	}

	// Replaying must leave both channels in the same state, otherwise the
	// query indices drawn afterwards would diverge.
	if !bytes.Equal(proverChannel.State(), verifierChannel.State()) {
		t.Error("prover and verifier channel states diverge after FRI")
	}
}

func TestFRICommitRejectsBadShapes(t *testing.T) {
	codeword, d := lowDegreeCodeword(t)

	smaller, err := NewArithmeticDomain(8)
	if err != nil {
		t.Fatalf("failed to create domain: %v", err)
	}
	if _, err := friCommit(codeword, smaller, 4, utils.NewChannel()); err == nil {
		t.Error("codeword longer than the domain accepted")
	}

	if _, err := friCommit(codeword[:2], d, 4, utils.NewChannel()); err == nil {
		t.Error("codeword shorter than the expansion factor accepted")
	}
}
