package blockstore

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// RefSize is the byte length of a content reference.
const RefSize = 32

// cborBstr32 is the CBOR header for a definite length byte string of RefSize
// bytes: major type 2, one byte length follows.
var cborBstr32 = [2]byte{0x58, RefSize}

// Ref is a content reference: the blake2b-256 digest of a block's canonical
// encoding. The zero Ref is reserved as the null commitment and never
// addresses a stored block.
type Ref [RefSize]byte

// NewRef derives the content reference for data. Put on any Store returns
// exactly this value for the same bytes.
func NewRef(data []byte) Ref {
	return blake2b.Sum256(data)
}

func (r Ref) IsZero() bool {
	return r == Ref{}
}

func (r Ref) String() string {
	return hex.EncodeToString(r[:])
}

// ParseRef decodes the hex form produced by String.
func ParseRef(s string) (Ref, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Ref{}, fmt.Errorf("parsing ref %q: %w", s, err)
	}
	if len(b) != RefSize {
		return Ref{}, fmt.Errorf("parsing ref %q: need %d bytes, got %d", s, RefSize, len(b))
	}
	var r Ref
	copy(r[:], b)
	return r, nil
}

// MarshalCBOR encodes the ref as a definite length byte string so that refs
// embedded in pair nodes and peaks lists stay compact and deterministic.
func (r Ref) MarshalCBOR() ([]byte, error) {
	out := make([]byte, 2+RefSize)
	out[0], out[1] = cborBstr32[0], cborBstr32[1]
	copy(out[2:], r[:])
	return out, nil
}

func (r *Ref) UnmarshalCBOR(data []byte) error {
	if len(data) != 2+RefSize || data[0] != cborBstr32[0] || data[1] != cborBstr32[1] {
		return fmt.Errorf("ref must be a %d byte cbor byte string", RefSize)
	}
	copy(r[:], data[2:])
	return nil
}
