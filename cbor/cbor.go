// Package cbor provides the deterministic CBOR codec used for all content
// addressed encoding. Content addressing is only meaningful if a logical
// value always encodes to the same bytes, so the encode options are pinned to
// the core deterministic profile and must not be loosened.
package cbor

import (
	"github.com/fxamacker/cbor/v2"
)

var (
	EncOptions = NewDeterministicEncOpts()
	DecOptions = NewDeterministicDecOpts()
)

func NewDeterministicEncOpts() cbor.EncOptions {
	return cbor.CoreDetEncOptions()
}

// NewDeterministicDecOpts returns decode options matched to the
// deterministic encode profile. Unsigned integers decode to uint64.
func NewDeterministicDecOpts() cbor.DecOptions {
	return cbor.DecOptions{
		IntDec: cbor.IntDecConvertNone,
	}
}

type CBORCodec struct {
	encMode cbor.EncMode
	decMode cbor.DecMode
}

func NewCBORCodec(encOpts cbor.EncOptions, decOpts cbor.DecOptions) (CBORCodec, error) {
	encMode, err := encOpts.EncMode()
	if err != nil {
		return CBORCodec{}, err
	}
	decMode, err := decOpts.DecMode()
	if err != nil {
		return CBORCodec{}, err
	}
	return CBORCodec{encMode: encMode, decMode: decMode}, nil
}

// MarshalCBOR encodes value under the codec's deterministic profile.
func (c CBORCodec) MarshalCBOR(value any) ([]byte, error) {
	return c.encMode.Marshal(value)
}

// UnmarshalInto decodes data into the provided value, which must be a
// pointer.
func (c CBORCodec) UnmarshalInto(data []byte, value any) error {
	return c.decMode.Unmarshal(data, value)
}
