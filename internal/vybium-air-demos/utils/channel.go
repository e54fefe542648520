package utils

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// Channel is a Fiat-Shamir transcript channel.
//
// The prover sends commitments into the channel and receives challenges
// derived from the accumulated state; the verifier replays the same sequence
// of operations and obtains the same challenges. All protocol randomness
// flows through the channel, so proving is deterministic for a fixed
// transcript.
type Channel struct {
	state []byte
}

// NewChannel creates a fresh channel with a fixed initial state.
func NewChannel() *Channel {
	return &Channel{state: []byte{0}}
}

// Send absorbs data into the channel state.
func (c *Channel) Send(data []byte) {
	h := sha3.Sum256(append(c.state, data...))
	c.state = h[:]
}

// SendFieldElement absorbs a single field element.
func (c *Channel) SendFieldElement(e field.Element) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], e.Value())
	c.Send(buf[:])
}

// SendFieldElements absorbs a slice of field elements.
func (c *Channel) SendFieldElements(elems []field.Element) {
	buf := make([]byte, 8*len(elems))
	for i, e := range elems {
		binary.LittleEndian.PutUint64(buf[i*8:], e.Value())
	}
	c.Send(buf)
}

// ReceiveRandomFieldElement squeezes a challenge field element and advances
// the channel state.
func (c *Channel) ReceiveRandomFieldElement() field.Element {
	val := binary.LittleEndian.Uint64(c.state[:8])
	c.advance()
	// field.New reduces modulo the Goldilocks prime.
	return field.New(val)
}

// ReceiveRandomIndex squeezes an index in [0, bound) and advances the
// channel state. Returns 0 for a non-positive bound.
func (c *Channel) ReceiveRandomIndex(bound int) int {
	if bound <= 0 {
		return 0
	}
	val := binary.LittleEndian.Uint64(c.state[:8])
	c.advance()
	return int(val % uint64(bound))
}

// State returns a copy of the current channel state.
func (c *Channel) State() []byte {
	return append([]byte(nil), c.state...)
}

func (c *Channel) advance() {
	h := sha3.Sum256(c.state)
	c.state = h[:]
}
