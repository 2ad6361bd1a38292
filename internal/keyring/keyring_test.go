package keyring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ttwebclient/pkg/core"
)

func triple(n string) core.Credentials {
	return core.Credentials{ID: "id-" + n, Key: "key-" + n, Secret: "secret-" + n}
}

func TestRing_Empty(t *testing.T) {
	ring := New(nil, RotationManual)

	_, err := ring.Current()
	assert.ErrorIs(t, err, core.ErrNoCredentials)
	assert.Equal(t, 0, ring.Len())
}

func TestRing_Current(t *testing.T) {
	ring := New([]core.Credentials{triple("a"), triple("b")}, RotationManual)

	creds, err := ring.Current()
	require.NoError(t, err)
	assert.Equal(t, "id-a", creds.ID)

	ring.Rotate()
	creds, err = ring.Current()
	require.NoError(t, err)
	assert.Equal(t, "id-b", creds.ID)

	ring.Rotate()
	creds, err = ring.Current()
	require.NoError(t, err)
	assert.Equal(t, "id-a", creds.ID)
}

func TestRing_RoundRobinAdvancesOnUse(t *testing.T) {
	ring := New([]core.Credentials{triple("a"), triple("b")}, RotationRoundRobin)

	creds, err := ring.Current()
	require.NoError(t, err)
	assert.Equal(t, "id-a", creds.ID)

	ring.MarkUsed()
	creds, err = ring.Current()
	require.NoError(t, err)
	assert.Equal(t, "id-b", creds.ID)
}

func TestRing_RotatesOnError(t *testing.T) {
	ring := New([]core.Credentials{triple("a"), triple("b")}, RotationOnError)

	ring.OnError()
	creds, err := ring.Current()
	require.NoError(t, err)
	assert.Equal(t, "id-b", creds.ID)
}

func TestRing_DisableSkipsEntry(t *testing.T) {
	ring := New([]core.Credentials{triple("a"), triple("b")}, RotationManual)

	ring.Disable("id-a")
	creds, err := ring.Current()
	require.NoError(t, err)
	assert.Equal(t, "id-b", creds.ID)

	ring.Disable("id-b")
	_, err = ring.Current()
	assert.ErrorIs(t, err, core.ErrNoCredentials)

	ring.Enable("id-a")
	creds, err = ring.Current()
	require.NoError(t, err)
	assert.Equal(t, "id-a", creds.ID)
}

func TestRing_AddAndRemove(t *testing.T) {
	ring := New([]core.Credentials{triple("a")}, RotationManual)

	ring.Add(triple("b"))
	ring.Add(triple("b")) // duplicate id ignored
	assert.Equal(t, 2, ring.Len())

	ring.Remove("id-a")
	assert.Equal(t, 1, ring.Len())

	creds, err := ring.Current()
	require.NoError(t, err)
	assert.Equal(t, "id-b", creds.ID)
}

func TestEntry_StringMasksSecret(t *testing.T) {
	e := &Entry{Credentials: core.Credentials{ID: "abcdef", Key: "uvwxyz", Secret: "topsecret"}}

	s := e.String()
	assert.NotContains(t, s, "topsecret")
}
