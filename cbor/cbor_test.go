package cbor

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecDeterministic(t *testing.T) {
	codec, err := NewCBORCodec(EncOptions, DecOptions)
	require.NoError(t, err)

	type record struct {
		_     struct{} `cbor:",toarray"`
		Name  string
		Count uint64
	}

	a, err := codec.MarshalCBOR(record{Name: "peak", Count: 11})
	require.NoError(t, err)
	b, err := codec.MarshalCBOR(record{Name: "peak", Count: 11})
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a, b), "identical values must encode identically")

	var got record
	require.NoError(t, codec.UnmarshalInto(a, &got))
	assert.Equal(t, "peak", got.Name)
	assert.Equal(t, uint64(11), got.Count)
}

func TestCodecByteStrings(t *testing.T) {
	codec, err := NewCBORCodec(EncOptions, DecOptions)
	require.NoError(t, err)

	enc, err := codec.MarshalCBOR([][]byte{{1, 2}, {3, 4}})
	require.NoError(t, err)

	var got [][]byte
	require.NoError(t, codec.UnmarshalInto(enc, &got))
	require.Len(t, got, 2)
	assert.Equal(t, []byte{1, 2}, got[0])
	assert.Equal(t, []byte{3, 4}, got[1])
}
