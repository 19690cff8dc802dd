package accumulator

import (
	"github.com/textileio/go-accumulator/cbor"
)

// codec is the single deterministic codec every block written by this
// package goes through. The modes are static, so construction cannot fail
// at runtime.
var codec = mustCodec()

func mustCodec() cbor.CBORCodec {
	c, err := cbor.NewCBORCodec(cbor.EncOptions, cbor.DecOptions)
	if err != nil {
		panic(err)
	}
	return c
}
