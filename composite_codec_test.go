package iso8583

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPPNUnpack(t *testing.T) {
	sub, err := ppnCodec{}.Unpack([]byte("001003ABC045004JOHN07000512345"))
	require.NoError(t, err)
	assert.Equal(t, Message{"120.1": "ABC", "120.45": "JOHN", "120.70": "12345"}, sub)
}

func TestPPNPackCanonicalOrder(t *testing.T) {
	out, err := ppnCodec{}.Pack(Message{"120.70": "12345", "120.1": "ABC", "120.45": "JOHN"})
	require.NoError(t, err)
	assert.Equal(t, "001003ABC045004JOHN07000512345", string(out))
}

func TestPPNPackSkipsMissingSubfields(t *testing.T) {
	out, err := ppnCodec{}.Pack(Message{"120.1": "ABC"})
	require.NoError(t, err)
	assert.Equal(t, "001003ABC", string(out))
}

func TestPPNRoundTrip(t *testing.T) {
	sub := Message{"120.1": "01", "120.45": "REMITTER NAME", "120.62": "0011223344"}
	packed, err := ppnCodec{}.Pack(sub)
	require.NoError(t, err)
	unpacked, err := ppnCodec{}.Unpack(packed)
	require.NoError(t, err)
	assert.Equal(t, sub, unpacked)
}

func TestPPNFixedWidthTagsUseDeclaredLength(t *testing.T) {
	wire := "047005ABCDE050002XY056001Z"
	sub, err := ppnCodec{}.Unpack([]byte(wire))
	require.NoError(t, err)
	assert.Equal(t, Message{"120.47": "ABCDE", "120.50": "XY", "120.56": "Z"}, sub)

	packed, err := ppnCodec{}.Pack(sub)
	require.NoError(t, err)
	assert.Equal(t, wire, string(packed))
}

func TestPPNUnpackUnknownTag(t *testing.T) {
	_, err := ppnCodec{}.Unpack([]byte("999003ABC"))
	require.Error(t, err)
	var te *TLVError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "999", te.Tag)
}

func TestPPNUnpackTruncated(t *testing.T) {
	_, err := ppnCodec{}.Unpack([]byte("001010short"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCompositeData)
}

func TestPPNPackRejectsOverLongValue(t *testing.T) {
	long := make([]byte, 1000)
	for i := range long {
		long[i] = 'x'
	}
	_, err := ppnCodec{}.Pack(Message{"120.1": string(long)})
	require.Error(t, err)
}

func TestCompositeSubMessageFiltersByPrefix(t *testing.T) {
	msg := Message{"120.1": "a", "120.45": "b", "127.1": "c", "0": "0800"}
	sub := compositeSubMessage(msg, "120")
	assert.Equal(t, Message{"120.1": "a", "120.45": "b"}, sub)
}
