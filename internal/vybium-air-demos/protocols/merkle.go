package protocols

import (
	"fmt"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/hash"

	"github.com/vybium/vybium-air-demos/internal/vybium-air-demos/utils"
)

// MerkleTree is a binary Merkle tree over Tip5 digests with authentication
// path openings. The commitment to the extended trace uses this tree so
// that individual rows can be opened during the query phase.
//
// Nodes are stored heap-style: the root lives at index 1 and leaf i lives
// at index numLeaves+i.
type MerkleTree struct {
	numLeaves int
	nodes     []hash.Digest
}

// NewMerkleTree builds a tree over the given leaf digests. The leaf count
// must be a power of two; callers commit to power-of-two domains.
func NewMerkleTree(leaves []hash.Digest) (*MerkleTree, error) {
	if len(leaves) == 0 {
		return nil, fmt.Errorf("cannot build Merkle tree with no leaves")
	}
	if !utils.IsPowerOfTwo(len(leaves)) {
		return nil, fmt.Errorf("leaf count must be a power of 2, got %d", len(leaves))
	}

	n := len(leaves)
	nodes := make([]hash.Digest, 2*n)
	copy(nodes[n:], leaves)
	for i := n - 1; i >= 1; i-- {
		nodes[i] = hashPair(nodes[2*i], nodes[2*i+1])
	}

	return &MerkleTree{numLeaves: n, nodes: nodes}, nil
}

// Root returns the root digest
func (t *MerkleTree) Root() hash.Digest {
	return t.nodes[1]
}

// NumLeaves returns the number of leaves
func (t *MerkleTree) NumLeaves() int {
	return t.numLeaves
}

// AuthenticationPath returns the sibling digests on the path from leaf
// index up to the root, ordered leaf-to-root
func (t *MerkleTree) AuthenticationPath(index int) ([]hash.Digest, error) {
	if index < 0 || index >= t.numLeaves {
		return nil, fmt.Errorf("leaf index %d out of range [0, %d)", index, t.numLeaves)
	}

	path := make([]hash.Digest, 0, utils.Log2(t.numLeaves))
	for node := t.numLeaves + index; node > 1; node /= 2 {
		path = append(path, t.nodes[node^1])
	}
	return path, nil
}

// VerifyPath checks an authentication path against a root. The index
// selects left/right at each level: bit j of index says whether the leaf's
// ancestor at level j is a right child.
func VerifyPath(root hash.Digest, index int, leaf hash.Digest, path []hash.Digest) bool {
	if index < 0 || index >= 1<<len(path) {
		return false
	}

	current := leaf
	for _, sibling := range path {
		if index&1 == 1 {
			current = hashPair(sibling, current)
		} else {
			current = hashPair(current, sibling)
		}
		index >>= 1
	}
	return digestsEqual(current, root)
}

// hashPair compresses two digests into one. Two Tip5 digests fill the
// 10-element rate exactly.
func hashPair(left, right hash.Digest) hash.Digest {
	var input [10]field.Element
	copy(input[:hash.DigestLen], left[:])
	copy(input[hash.DigestLen:], right[:])
	return hash.Hash10(input)
}

// hashRow hashes a slice of field elements into a leaf digest
func hashRow(row []field.Element) hash.Digest {
	return hash.HashVarlen(row)
}

func digestsEqual(a, b hash.Digest) bool {
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// digestToBytes serializes a digest for the Fiat-Shamir channel, 8 bytes
// per element in little-endian order
func digestToBytes(d hash.Digest) []byte {
	out := make([]byte, len(d)*8)
	for i, elem := range d {
		val := elem.Value()
		for j := 0; j < 8; j++ {
			out[i*8+j] = byte(val >> (j * 8))
		}
	}
	return out
}
