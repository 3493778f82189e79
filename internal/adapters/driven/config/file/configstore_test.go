package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_StartsEmpty(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("vault.path")
	assert.False(t, ok)
	assert.Equal(t, "", store.GetString("vault.path"))
	assert.Equal(t, 0, store.GetInt("gmail.max_results"))
	assert.False(t, store.GetBool("verbose"))
}

func TestConfigStore_SetPersistsAndReloads(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("vault.path", "/home/me/vault"))
	require.NoError(t, store.Set("gmail.max_results", int64(25)))

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "/home/me/vault", reloaded.GetString("vault.path"))
	assert.Equal(t, 25, reloaded.GetInt("gmail.max_results"))
}

func TestConfigStore_LoadsNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := `
[vault]
path = "/home/me/vault"
default_folder = "Inbox"

[vault.shortcuts]
personal = "1 - Personal"
work = "4 - Work"

[gmail]
query = "subject:custom"
max_results = 10
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "/home/me/vault", store.GetString("vault.path"))
	assert.Equal(t, "Inbox", store.GetString("vault.default_folder"))
	assert.Equal(t, "subject:custom", store.GetString("gmail.query"))
	assert.Equal(t, 10, store.GetInt("gmail.max_results"))

	shortcuts := store.StringsByPrefix("vault.shortcuts")
	assert.Equal(t, map[string]string{
		"personal": "1 - Personal",
		"work":     "4 - Work",
	}, shortcuts)
}

func TestConfigStore_StringsByPrefix_NoMatches(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("vault.path", "/v"))

	assert.Empty(t, store.StringsByPrefix("vault.shortcuts"))
}

func TestConfigStore_SaveWritesNestedTables(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("vault.shortcuts.personal", "1 - Personal"))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[vault.shortcuts]")

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "1 - Personal", reloaded.GetString("vault.shortcuts.personal"))
}

func TestConfigStore_WrongTypeYieldsZeroValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("gmail.max_results", "not a number"))

	assert.Equal(t, 0, store.GetInt("gmail.max_results"))
	assert.Equal(t, "not a number", store.GetString("gmail.max_results"))
	assert.False(t, store.GetBool("gmail.max_results"))
}
