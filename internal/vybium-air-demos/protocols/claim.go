package protocols

import (
	"fmt"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/hash"

	"github.com/vybium/vybium-air-demos/internal/vybium-air-demos/air"
	"github.com/vybium/vybium-air-demos/internal/vybium-air-demos/utils"
)

// CurrentVersion is the version of the proof system. It changes whenever
// the transcript format or the constraint composition changes.
const CurrentVersion uint32 = 0

// Claim contains the public information of a verifiably correct computation.
// A corresponding Proof is needed to verify the computation.
//
// The claim is hashed into the Fiat-Shamir transcript before anything else,
// so a proof is bound to one circuit, one trace shape and one set of public
// inputs.
type Claim struct {
	// Circuit names the AIR the proof is about
	Circuit string

	// Version of the proof system
	Version uint32

	// Width is the number of trace columns
	Width int

	// PaddedHeight is the power-of-two trace height
	PaddedHeight int

	// PublicInputs are the pinned boundary values of the circuit, in the
	// order the AIR declares them
	PublicInputs []field.Element
}

// ClaimFor builds the claim for an AIR and a padded trace height. The
// public inputs are the AIR's boundary values in declaration order.
func ClaimFor(a air.AIR, paddedHeight int) *Claim {
	boundary := a.Boundary()
	inputs := make([]field.Element, len(boundary))
	for i, b := range boundary {
		inputs[i] = b.Value
	}

	return &Claim{
		Circuit:      a.Name(),
		Version:      CurrentVersion,
		Width:        a.Width(),
		PaddedHeight: paddedHeight,
		PublicInputs: inputs,
	}
}

// Validate checks if the claim is well-formed
func (c *Claim) Validate() error {
	if c.Circuit == "" {
		return fmt.Errorf("claim must name a circuit")
	}
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported proof system version %d, expected %d", c.Version, CurrentVersion)
	}
	if c.Width < 1 {
		return fmt.Errorf("trace width must be positive, got %d", c.Width)
	}
	if !utils.IsPowerOfTwo(c.PaddedHeight) {
		return fmt.Errorf("padded height must be a power of 2, got %d", c.PaddedHeight)
	}
	return nil
}

// MatchesAIR checks that the claim describes the given AIR: same circuit,
// same shape, and public inputs equal to the AIR's boundary values. The
// verifier calls this before touching the proof, so a claim with tampered
// public inputs is rejected outright.
func (c *Claim) MatchesAIR(a air.AIR) error {
	if c.Circuit != a.Name() {
		return fmt.Errorf("claim is for circuit %q, AIR is %q", c.Circuit, a.Name())
	}
	if c.Width != a.Width() {
		return fmt.Errorf("claim width %d does not match AIR width %d", c.Width, a.Width())
	}

	boundary := a.Boundary()
	if len(c.PublicInputs) != len(boundary) {
		return fmt.Errorf("claim has %d public inputs, AIR pins %d boundary values",
			len(c.PublicInputs), len(boundary))
	}
	for i, b := range boundary {
		if !c.PublicInputs[i].Equal(b.Value) {
			return fmt.Errorf("public input %q mismatch: claim has %s, AIR pins %s",
				b.Name, c.PublicInputs[i].String(), b.Value.String())
		}
	}

	return nil
}

// Hash computes a digest of the claim for Fiat-Shamir
func (c *Claim) Hash() (hash.Digest, error) {
	if err := c.Validate(); err != nil {
		return hash.Digest{}, fmt.Errorf("invalid claim: %w", err)
	}

	// Encode the circuit name length-prefixed so distinct claims never
	// collide on the element stream
	elements := make([]field.Element, 0, len(c.Circuit)+len(c.PublicInputs)+4)
	elements = append(elements, field.New(uint64(len(c.Circuit))))
	for _, ch := range []byte(c.Circuit) {
		elements = append(elements, field.New(uint64(ch)))
	}
	elements = append(elements, field.New(uint64(c.Version)))
	elements = append(elements, field.New(uint64(c.Width)))
	elements = append(elements, field.New(uint64(c.PaddedHeight)))
	elements = append(elements, c.PublicInputs...)

	return hash.HashVarlen(elements), nil
}

// String returns a human-readable representation of the claim
func (c *Claim) String() string {
	return fmt.Sprintf("Claim{Circuit: %s, Width: %d, PaddedHeight: %d, PublicInputs: %d}",
		c.Circuit, c.Width, c.PaddedHeight, len(c.PublicInputs))
}
