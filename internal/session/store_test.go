package session

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveLoadClear(t *testing.T) {
	s := NewStore(t.TempDir(), nil)

	_, ok := s.Token()
	assert.False(t, ok)

	user := User{ID: 7, FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}
	require.NoError(t, s.Save("tok-123", user))

	token, ok := s.Token()
	require.True(t, ok)
	assert.Equal(t, "tok-123", token)

	got, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, user, got)

	require.NoError(t, s.Clear())
	_, ok = s.Token()
	assert.False(t, ok)
}

func TestStore_ClearWithoutSessionIsNoop(t *testing.T) {
	s := NewStore(t.TempDir(), nil)
	assert.NoError(t, s.Clear())
}

func TestStore_RequireToken(t *testing.T) {
	s := NewStore(t.TempDir(), nil)

	_, err := s.RequireToken()
	assert.ErrorIs(t, err, ErrUnauthenticated)

	require.NoError(t, s.Save("tok", User{}))
	token, err := s.RequireToken()
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
}

func TestStore_CorruptStateFileDegradesToNoSession(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte("{nope"), 0o600))

	s := NewStore(dir, nil)
	_, ok := s.Token()
	assert.False(t, ok)
}

func TestStore_SaveCreatesStateDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	s := NewStore(dir, nil)

	require.NoError(t, s.Save("tok", User{}))

	_, ok := s.Token()
	assert.True(t, ok)
}

func TestDecodeClaims_ValidToken(t *testing.T) {
	s := NewStore(t.TempDir(), nil)

	payload := base64.RawURLEncoding.EncodeToString(
		[]byte(`{"id":7,"email":"jane@example.com","first_name":"Jane","last_name":"Doe","address":"1 Main St"}`))
	token := "eyJhbGciOiJIUzI1NiJ9." + payload + ".sig"

	claims, ok := s.DecodeClaims(token)

	require.True(t, ok)
	assert.Equal(t, 7, claims.ID)
	assert.Equal(t, "Jane", claims.FirstName)
	assert.Equal(t, "Doe", claims.LastName)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "1 Main St", claims.Address)
}

func TestDecodeClaims_MalformedNeverErrors(t *testing.T) {
	s := NewStore(t.TempDir(), nil)

	for _, token := range []string{
		"not.a.jwt",
		"",
		"onesegment",
		"a.b",
		"a.b.c.d",
		"a.!!notbase64!!.c",
		"a." + base64.RawURLEncoding.EncodeToString([]byte("not json")) + ".c",
	} {
		claims, ok := s.DecodeClaims(token)
		assert.False(t, ok, "token %q", token)
		assert.Equal(t, Claims{}, claims, "token %q", token)
	}
}

func TestCurrentClaims_NoSession(t *testing.T) {
	s := NewStore(t.TempDir(), nil)
	_, ok := s.CurrentClaims()
	assert.False(t, ok)
}

func TestCurrentClaims_DecodesStoredToken(t *testing.T) {
	s := NewStore(t.TempDir(), nil)

	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"id":3,"email":"x@y.co"}`))
	require.NoError(t, s.Save("h."+payload+".s", User{}))

	claims, ok := s.CurrentClaims()
	require.True(t, ok)
	assert.Equal(t, 3, claims.ID)
}

func TestAddress_SaveAndLoad(t *testing.T) {
	s := NewStore(t.TempDir(), nil)

	_, ok := s.LoadAddress()
	assert.False(t, ok)

	a := Address{Street: "1 Main St", City: "Springfield", State: "IL", Zip: "62701"}
	require.NoError(t, s.SaveAddress(a))

	got, ok := s.LoadAddress()
	require.True(t, ok)
	assert.Equal(t, a, got)
}

func TestAddress_CorruptCacheDegrades(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "address.json"), []byte("garbage"), 0o600))

	s := NewStore(dir, nil)
	_, ok := s.LoadAddress()
	assert.False(t, ok)
}
