package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run выполняет команду с отдельным каталогом данных и возвращает stdout
func run(t *testing.T, dataDir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DATA_DIR", dataDir)
	t.Setenv("APP_ENV", "local")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--driver", "bbolt"}, args...))
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		jsonOutput = false
	})

	err := rootCmd.Execute()
	closeApp()
	return out.String(), err
}

func TestCLI_FavoritesPersistBetweenRuns(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "favorite", "add", "makanan", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "в избранном")

	out, err = run(t, dir, "--json", "favorite", "check", "makanan_1")
	require.NoError(t, err)
	var check map[string]bool
	require.NoError(t, json.Unmarshal([]byte(out), &check))
	assert.True(t, check["favorite"])

	_, err = os.Stat(filepath.Join(dir, "resep.bolt"))
	assert.NoError(t, err)
}

func TestCLI_ReviewValidation(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "review", "add", "minuman", "1", "--rating", "7", "--comment", "Manis")
	assert.ErrorContains(t, err, "rating")

	_, err = run(t, dir, "review", "add", "minuman", "1", "--rating", "4", "--comment", "Segar")
	require.NoError(t, err)

	out, err := run(t, dir, "--json", "review", "summary", "minuman", "1")
	require.NoError(t, err)
	var sum struct {
		Count   int     `json:"count"`
		Average float64 `json:"average"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	assert.Equal(t, 1, sum.Count)
	assert.Equal(t, 4.0, sum.Average)
}

func TestCLI_UnknownRecipe(t *testing.T) {
	_, err := run(t, t.TempDir(), "recipe", "show", "makanan", "999")
	assert.Error(t, err)
}
