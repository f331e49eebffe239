package inbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"message_id": "msg-1", "inbox_address": "a@b"}`)
	sig := SignBody("whsec", body)

	assert.True(t, VerifySignature("whsec", body, sig))
	assert.False(t, VerifySignature("whsec", body, "deadbeef"))
	assert.False(t, VerifySignature("whsec", []byte("tampered"), sig))
	assert.False(t, VerifySignature("other-secret", body, sig))
}

func TestVerifySignatureDisabledWithoutSecret(t *testing.T) {
	assert.True(t, VerifySignature("", []byte("anything"), ""))
	assert.True(t, VerifySignature("", []byte("anything"), "garbage"))
}

func TestSignBodyIsDeterministicHex(t *testing.T) {
	a := SignBody("s", []byte("body"))
	b := SignBody("s", []byte("body"))
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
	assert.Regexp(t, "^[0-9a-f]+$", a)
}
