package trust

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlwaysTrust(t *testing.T) {
	d, err := AlwaysTrust{}.IsTrusted(context.Background(), "did:example:anyone")
	require.NoError(t, err)
	assert.True(t, d.Trusted)
}

func TestLocalAllowlist(t *testing.T) {
	l := NewLocalAllowlist("did:example:issuer")

	d, err := l.IsTrusted(context.Background(), "did:example:issuer")
	require.NoError(t, err)
	assert.True(t, d.Trusted)

	d, err = l.IsTrusted(context.Background(), "did:example:mallory")
	require.NoError(t, err)
	assert.False(t, d.Trusted)

	l.Add("did:example:mallory")
	d, err = l.IsTrusted(context.Background(), "did:example:mallory")
	require.NoError(t, err)
	assert.True(t, d.Trusted)
}
