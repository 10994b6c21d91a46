package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teamline.db")
	local, err := Open(path)
	require.NoError(t, err)
	defer local.Close()

	require.Empty(t, local.Token())
	require.NoError(t, local.SetToken("abc"))
	require.Equal(t, "abc", local.Token())

	// Overwrite, not append.
	require.NoError(t, local.SetToken("def"))
	require.Equal(t, "def", local.Token())
}

func TestLocalSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teamline.db")

	local, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, local.SetToken("persisted"))
	require.NoError(t, local.Set(KeyUsername, "alice"))
	require.NoError(t, local.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()
	require.Equal(t, "persisted", reopened.Token())
	require.Equal(t, "alice", reopened.Get(KeyUsername))
}

func TestLocalClearWipesEverything(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teamline.db")
	local, err := Open(path)
	require.NoError(t, err)
	defer local.Close()

	require.NoError(t, local.SetToken("abc"))
	require.NoError(t, local.Set(KeyUsername, "alice"))
	require.NoError(t, local.Set(KeyUserID, "1"))

	require.NoError(t, local.Clear())
	require.Empty(t, local.Token())
	require.Empty(t, local.Get(KeyUsername))
	require.Empty(t, local.Get(KeyUserID))
}

func TestSetEmptyValueDeletes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teamline.db")
	local, err := Open(path)
	require.NoError(t, err)
	defer local.Close()

	require.NoError(t, local.SetToken("abc"))
	require.NoError(t, local.SetToken(""))
	require.Empty(t, local.Token())
}

func TestOpenCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "teamline.db")
	local, err := Open(path)
	require.NoError(t, err)
	defer local.Close()
	require.NoError(t, local.SetToken("abc"))
}

func TestMemoryMatchesLocalSemantics(t *testing.T) {
	mem := NewMemory()

	require.Empty(t, mem.Token())
	require.NoError(t, mem.SetToken("abc"))
	require.Equal(t, "abc", mem.Token())

	require.NoError(t, mem.Set(KeyUsername, "alice"))
	require.NoError(t, mem.SetToken(""))
	require.Empty(t, mem.Token())
	require.Equal(t, "alice", mem.Get(KeyUsername))

	require.NoError(t, mem.SetToken("abc"))
	require.NoError(t, mem.Clear())
	require.Empty(t, mem.Token())
	require.Empty(t, mem.Get(KeyUsername))
}
