package keys

import (
	"bytes"
	"crypto/sha256"
	"testing"

	"github.com/iov-one/quorum/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	key, priv, err := Generate()
	require.NoError(t, err)

	msg := []byte("foobar")
	sig := Sign(priv, msg)

	assert.True(t, Verify(key, msg, sig))
	assert.False(t, Verify(key, []byte("dingbooms"), sig))
	assert.False(t, Verify(key, msg, sig[:32]))
	assert.False(t, Verify(key, msg, nil))
}

func TestVerifyRequiresEd25519Key(t *testing.T) {
	key := PreimageKey([]byte("secret"))
	assert.False(t, Verify(key, []byte("msg"), make([]byte, 64)))

	assert.False(t, Verify("not a key", []byte("msg"), make([]byte, 64)))
}

func TestFromSeedIsDeterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{42}, 32)

	key, priv, err := FromSeed(seed)
	require.NoError(t, err)
	again, privAgain, err := FromSeed(seed)
	require.NoError(t, err)

	assert.Equal(t, key, again)
	assert.Equal(t, priv, privAgain)

	msg := []byte("deterministic")
	assert.True(t, Verify(key, msg, Sign(priv, msg)))

	if _, _, err := FromSeed(seed[:16]); !errors.ErrInput.Is(err) {
		t.Fatalf("want ErrInput for a short seed, got %+v", err)
	}
}

func TestPreimageKey(t *testing.T) {
	preimage := []byte("this is not a secret")
	key := PreimageKey(preimage)

	kind, payload, err := Decode(key)
	require.NoError(t, err)
	assert.Equal(t, Preimage, kind)

	hash := sha256.Sum256(preimage)
	assert.Equal(t, hash[:], payload)
}

func TestPreAuthTxKey(t *testing.T) {
	txhash := bytes.Repeat([]byte{3}, 32)

	key, err := PreAuthTxKey(txhash)
	require.NoError(t, err)

	kind, payload, err := Decode(key)
	require.NoError(t, err)
	assert.Equal(t, PreAuthTx, kind)
	assert.Equal(t, txhash, payload)

	if _, err := PreAuthTxKey(txhash[:5]); !errors.ErrInput.Is(err) {
		t.Fatalf("want ErrInput for a short hash, got %+v", err)
	}
}

func TestSeedRoundTrip(t *testing.T) {
	seed := bytes.Repeat([]byte{1}, 32)

	s, err := EncodeSeed(seed)
	require.NoError(t, err)
	assert.Equal(t, byte('S'), s[0])

	got, err := DecodeSeed(s)
	require.NoError(t, err)
	assert.Equal(t, seed, got)

	// A signer key is not a seed.
	key, _, err := Generate()
	require.NoError(t, err)
	if _, err := DecodeSeed(key); !ErrMalformedKey.Is(err) {
		t.Fatalf("want ErrMalformedKey, got %+v", err)
	}
}
