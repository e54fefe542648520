package protocols

import (
	"fmt"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/hash"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/merkle"

	"github.com/vybium/vybium-air-demos/internal/vybium-air-demos/utils"
)

// FRI commit phase: the composition codeword is folded in half layer by
// layer until only ExpansionFactor values remain. A codeword of degree
// less than the trace height collapses to a constant after exactly that
// many folds, so the low-degree test reduces to checking that the final
// layer is constant.
//
// Each fold uses the formula
//
//	f'(x^2) = (f(x) + f(-x))/2 + beta * (f(x) - f(-x))/(2x)
//
// where beta is the verifier challenge for the layer. On a domain of size
// n the points x and -x sit at indices i and i+n/2.

// friCommit runs the commit phase over the given codeword. The codeword
// must live on the given domain. Layer roots are sent into the channel
// before each challenge is drawn, and the final constant is sent last.
func friCommit(codeword []field.Element, domain *ArithmeticDomain, expansionFactor int, channel *utils.Channel) (*FRIProof, error) {
	if len(codeword) != domain.Length {
		return nil, fmt.Errorf("codeword length %d does not match domain length %d", len(codeword), domain.Length)
	}
	if len(codeword) < expansionFactor {
		return nil, fmt.Errorf("codeword length %d below expansion factor %d", len(codeword), expansionFactor)
	}

	currentValues := codeword
	currentDomain := domain.Elements()

	proof := &FRIProof{}
	for {
		root, err := friLayerRoot(currentValues)
		if err != nil {
			return nil, fmt.Errorf("failed to commit to FRI layer %d: %w", len(proof.Layers), err)
		}
		channel.Send(digestToBytes(root))

		layer := FRILayer{
			Values: append([]field.Element(nil), currentValues...),
			Root:   root,
		}

		if len(currentValues) == expansionFactor {
			proof.Layers = append(proof.Layers, layer)
			break
		}

		beta := channel.ReceiveRandomFieldElement()
		layer.Challenge = beta
		proof.Layers = append(proof.Layers, layer)

		currentValues = foldCodeword(currentValues, currentDomain, beta)
		currentDomain = halveDomainElements(currentDomain)
	}

	final := proof.Layers[len(proof.Layers)-1].Values
	for i, v := range final {
		if !v.Equal(final[0]) {
			return nil, fmt.Errorf("final FRI layer is not constant at position %d; codeword degree too high", i)
		}
	}
	proof.FinalValue = final[0]
	channel.SendFieldElement(proof.FinalValue)

	return proof, nil
}

// friVerify replays the commit phase against the proof: every layer root
// is recomputed from the included values, the folding is checked at every
// position, and the final layer must equal the claimed constant. The
// channel ends up in the same state the prover's channel had after
// committing, so query indices drawn afterwards match.
func friVerify(fp *FRIProof, domain *ArithmeticDomain, expansionFactor int, channel *utils.Channel) error {
	if len(fp.Layers) == 0 {
		return fmt.Errorf("FRI transcript has no layers")
	}
	if len(fp.Layers[0].Values) != domain.Length {
		return fmt.Errorf("first FRI layer has %d values, expected %d", len(fp.Layers[0].Values), domain.Length)
	}

	currentDomain := domain.Elements()
	for i, layer := range fp.Layers {
		root, err := friLayerRoot(layer.Values)
		if err != nil {
			return fmt.Errorf("failed to recompute root of FRI layer %d: %w", i, err)
		}
		if !digestsEqual(root, layer.Root) {
			return fmt.Errorf("FRI layer %d root mismatch", i)
		}
		channel.Send(digestToBytes(root))

		last := i == len(fp.Layers)-1
		if last {
			if len(layer.Values) != expansionFactor {
				return fmt.Errorf("final FRI layer has %d values, expected %d", len(layer.Values), expansionFactor)
			}
			for j, v := range layer.Values {
				if !v.Equal(fp.FinalValue) {
					return fmt.Errorf("final FRI layer deviates from the claimed constant at position %d", j)
				}
			}
			channel.SendFieldElement(fp.FinalValue)
			break
		}

		beta := channel.ReceiveRandomFieldElement()
		if !beta.Equal(layer.Challenge) {
			return fmt.Errorf("FRI layer %d challenge does not match the transcript", i)
		}

		next := fp.Layers[i+1]
		folded := foldCodeword(layer.Values, currentDomain, beta)
		if len(folded) != len(next.Values) {
			return fmt.Errorf("FRI layer %d has %d values, expected %d after folding", i+1, len(next.Values), len(folded))
		}
		for j := range folded {
			if !folded[j].Equal(next.Values[j]) {
				return fmt.Errorf("folding consistency check failed at layer %d position %d", i, j)
			}
		}

		currentDomain = halveDomainElements(currentDomain)
	}

	return nil
}

// foldCodeword folds a codeword in half with the given challenge. The
// domain slice must hold the evaluation points of the codeword.
func foldCodeword(values, domainElems []field.Element, beta field.Element) []field.Element {
	half := len(values) / 2
	two := field.New(2)
	twoInv := two.Inverse()

	next := make([]field.Element, half)
	for i := 0; i < half; i++ {
		fx := values[i]
		fNegX := values[i+half]
		x := domainElems[i]

		// (f(x) + f(-x))/2
		even := fx.Add(fNegX).Mul(twoInv)

		// beta * (f(x) - f(-x))/(2x)
		odd := beta.Mul(fx.Sub(fNegX).Mul(x.Mul(two).Inverse()))

		next[i] = even.Add(odd)
	}
	return next
}

// halveDomainElements squares the first half of the domain, yielding the
// evaluation points of the folded codeword
func halveDomainElements(domainElems []field.Element) []field.Element {
	half := make([]field.Element, len(domainElems)/2)
	for i := range half {
		half[i] = domainElems[i].Mul(domainElems[i])
	}
	return half
}

// friLayerRoot commits to a codeword with the vybium-crypto Merkle tree,
// one leaf per value
func friLayerRoot(values []field.Element) (hash.Digest, error) {
	leaves := make([]hash.Digest, len(values))
	for i, v := range values {
		leaves[i] = hash.HashVarlen([]field.Element{v})
	}

	tree, err := merkle.New(leaves)
	if err != nil {
		return hash.Digest{}, fmt.Errorf("failed to build layer tree: %w", err)
	}
	return tree.Root(), nil
}
