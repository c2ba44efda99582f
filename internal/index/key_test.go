package index

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	require.Equal(t, "CC18DACH", Normalize("  cc18dach "))
	require.Equal(t, "", Normalize("   "))
}

func TestKeyFormat(t *testing.T) {
	id := uuid.New()
	key := Key(id, " cc18dach ")

	parts := strings.SplitN(key, "|", 2)
	require.Len(t, parts, 2)
	require.Equal(t, "CC18DACH", parts[1])

	decoded, err := base64.StdEncoding.DecodeString(parts[0])
	require.NoError(t, err)
	require.Equal(t, id[:], decoded)

	// Same logical value, same key; different definition, different key.
	require.Equal(t, key, Key(id, "CC18DACH"))
	require.NotEqual(t, key, Key(uuid.New(), "CC18DACH"))
}
