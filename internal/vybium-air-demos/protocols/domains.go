package protocols

import (
	"fmt"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/polynomial"

	"github.com/vybium/vybium-air-demos/internal/vybium-air-demos/utils"
)

// CosetOffsetValue shifts the evaluation domain off the trace subgroup.
// 7 generates the full multiplicative group of the Goldilocks field, so its
// order does not divide any power of two and the coset 7*<h> is disjoint
// from every 2-adic subgroup. Zerofier denominators therefore never vanish
// on the evaluation domain.
const CosetOffsetValue = 7

// ArithmeticDomain represents a domain for polynomial operations
// This is a coset of a multiplicative subgroup: {offset * generator^i : i = 0..length-1}
//
// All domains have power-of-2 lengths.
type ArithmeticDomain struct {
	// Offset shifts the domain (field.One for no offset)
	Offset field.Element

	// Generator is a primitive n-th root of unity where n = length
	Generator field.Element

	// Length is the number of elements in the domain (must be power of 2)
	Length int
}

// NewArithmeticDomain creates a domain with the given length and no offset
func NewArithmeticDomain(length int) (*ArithmeticDomain, error) {
	if !utils.IsPowerOfTwo(length) {
		return nil, fmt.Errorf("domain length must be a power of 2, got %d", length)
	}
	if (field.P-1)%uint64(length) != 0 {
		return nil, fmt.Errorf("no subgroup of order %d in the field", length)
	}

	// g^((p-1)/n) for a generator g of the multiplicative group has order
	// exactly n. Zerofiers depend on x^n - 1 vanishing on the whole
	// subgroup, so the order is verified rather than assumed.
	generator := field.Generator().ModPow((field.P - 1) / uint64(length))
	if !generator.ModPow(uint64(length)).Equal(field.One) {
		return nil, fmt.Errorf("generator order does not divide %d", length)
	}
	if length > 1 && generator.ModPow(uint64(length/2)).Equal(field.One) {
		return nil, fmt.Errorf("generator order is below %d", length)
	}

	return &ArithmeticDomain{
		Offset:    field.One,
		Generator: generator,
		Length:    length,
	}, nil
}

// WithOffset returns a new domain with the given offset
func (d *ArithmeticDomain) WithOffset(offset field.Element) *ArithmeticDomain {
	return &ArithmeticDomain{
		Offset:    offset,
		Generator: d.Generator,
		Length:    d.Length,
	}
}

// Elements returns all elements in the domain: {offset * generator^i : i = 0..length-1}
func (d *ArithmeticDomain) Elements() []field.Element {
	elements := make([]field.Element, d.Length)
	current := d.Offset
	for i := 0; i < d.Length; i++ {
		elements[i] = current
		current = current.Mul(d.Generator)
	}
	return elements
}

// Evaluate evaluates a polynomial (in coefficient form) over the entire domain
func (d *ArithmeticDomain) Evaluate(poly *polynomial.Polynomial) []field.Element {
	domainElements := d.Elements()
	values := make([]field.Element, len(domainElements))

	for i, x := range domainElements {
		values[i] = poly.Evaluate(x)
	}

	return values
}

// Interpolate returns the polynomial of degree < length taking the given
// values over the domain, in order
func (d *ArithmeticDomain) Interpolate(values []field.Element) (*polynomial.Polynomial, error) {
	if len(values) != d.Length {
		return nil, fmt.Errorf("expected %d values, got %d", d.Length, len(values))
	}

	domainElements := d.Elements()
	points := make([][2]field.Element, d.Length)
	for i := range points {
		points[i] = [2]field.Element{domainElements[i], values[i]}
	}

	return polynomial.Interpolate(points), nil
}

// String returns a human-readable representation
func (d *ArithmeticDomain) String() string {
	return fmt.Sprintf("Domain{length: %d, offset: %v, generator: %v}",
		d.Length, d.Offset, d.Generator)
}

// ProofDomains contains the two arithmetic domains used by the prover and
// verifier: the trace domain carrying the interpolated columns and the
// larger coset the codewords live on.
type ProofDomains struct {
	// Trace domain: dictated by the padded trace height
	Trace *ArithmeticDomain

	// Evaluation domain: ExpansionFactor times larger, shifted onto a coset
	Evaluation *ArithmeticDomain
}

// DeriveProofDomains computes both domains for a trace of the given padded
// height. The evaluation domain generator h satisfies h^blowup = omega, so
// stepping blowup positions along the evaluation domain advances exactly
// one trace row.
func DeriveProofDomains(paddedHeight int, expansionFactor int) (*ProofDomains, error) {
	traceDomain, err := NewArithmeticDomain(paddedHeight)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace domain: %w", err)
	}

	evalDomain, err := NewArithmeticDomain(paddedHeight * expansionFactor)
	if err != nil {
		return nil, fmt.Errorf("failed to create evaluation domain: %w", err)
	}
	evalDomain = evalDomain.WithOffset(field.New(CosetOffsetValue))

	return &ProofDomains{
		Trace:      traceDomain,
		Evaluation: evalDomain,
	}, nil
}

// String returns a human-readable representation of both domains
func (pd *ProofDomains) String() string {
	return fmt.Sprintf("ProofDomains{Trace: %s, Evaluation: %s}", pd.Trace, pd.Evaluation)
}
