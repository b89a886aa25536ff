package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes sikectl with args and returns what it printed on stdout
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &logs
	err := app.Run(append([]string{"sikectl"}, args...))
	return strings.TrimSpace(out.String()), err
}

func writeConfig(t *testing.T, dir string, compressed bool) string {
	t.Helper()
	path := filepath.Join(dir, "sikectl.toml")
	body := fmt.Sprintf("[KEM]\nCompressed = %t\n[Output]\nDir = %q\nHex = true\n", compressed, dir)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestInfo(t *testing.T) {
	out, err := run(t, "--loglevel", "error", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "SIKEp434_compressed")
	assert.Contains(t, out, "ciphertext  211")

	out, err = run(t, "--loglevel", "error", "--uncompressed", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "ciphertext  346")
}

func TestRoundTrip(t *testing.T) {
	for _, compressed := range []bool{true, false} {
		t.Run(fmt.Sprintf("compressed=%t", compressed), func(t *testing.T) {
			dir := t.TempDir()
			cfg := writeConfig(t, dir, compressed)

			_, err := run(t, "--config", cfg, "--seed", "keygen", "--loglevel", "error", "keygen", "--name", "bob")
			require.NoError(t, err)
			require.FileExists(t, filepath.Join(dir, "bob.sk"))
			require.FileExists(t, filepath.Join(dir, "bob.pk"))

			encSS, err := run(t, "--config", cfg, "--loglevel", "error", "encaps",
				"--pk", filepath.Join(dir, "bob.pk"), "--name", "msg")
			require.NoError(t, err)
			assert.Len(t, encSS, 32)

			decSS, err := run(t, "--config", cfg, "--loglevel", "error", "decaps",
				"--sk", filepath.Join(dir, "bob.sk"), "--ct", filepath.Join(dir, "msg.ct"))
			require.NoError(t, err)
			assert.Equal(t, encSS, decSS)
		})
	}
}

func TestSeededKeygenIsReproducible(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	for _, dir := range []string{a, b} {
		_, err := run(t, "--config", writeConfig(t, dir, true), "--seed", "fixed", "--loglevel", "error", "keygen")
		require.NoError(t, err)
	}
	pkA, err := os.ReadFile(filepath.Join(a, "sike.pk"))
	require.NoError(t, err)
	pkB, err := os.ReadFile(filepath.Join(b, "sike.pk"))
	require.NoError(t, err)
	assert.Equal(t, pkA, pkB)
}

func TestAgree(t *testing.T) {
	out, err := run(t, "--seed", "agree", "--loglevel", "error", "agree")
	require.NoError(t, err)
	assert.Len(t, out, 220)
}

func TestDecapsRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, true)
	_, err := run(t, "--config", cfg, "--loglevel", "error", "keygen")
	require.NoError(t, err)
	ct := filepath.Join(dir, "bad.ct")
	require.NoError(t, os.WriteFile(ct, []byte("abcd\n"), 0o600))
	_, err = run(t, "--config", cfg, "--loglevel", "error", "decaps", "--sk", filepath.Join(dir, "sike.sk"), "--ct", ct)
	assert.Error(t, err)
}
