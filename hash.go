package kson

import (
	"github.com/cespare/xxhash/v2"
)

// hashOutput feeds serialized text into an xxhash digest
type hashOutput struct {
	*xxhash.Digest
	scratch [1]byte
}

func (h *hashOutput) WriteByte(c byte) error {
	h.scratch[0] = c
	_, err := h.Write(h.scratch[:])
	return err
}

// hashJson hashes the compact serialization, so equal containers hash alike
func hashJson(j Json) uint64 {
	h := &hashOutput{Digest: xxhash.New()}
	_ = j.Write(h)
	return h.Sum64()
}

// Hash returns the xxhash of the compact text. A NaN or infinite leaf stops
// the serialization, so only the text before it is hashed, as with String.
func (a *Array) Hash() uint64 {
	return hashJson(a)
}

// Hash returns the xxhash of the compact text. A NaN or infinite leaf stops
// the serialization, so only the text before it is hashed, as with String.
func (o *Object) Hash() uint64 {
	return hashJson(o)
}
