package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", cfg.ServerURL)
	assert.Equal(t, "auth-storage.json", cfg.StateFile)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.json")
	b, err := json.Marshal(map[string]any{
		"server_url": "http://json:1111",
		"state_file": "from-json.json",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))

	// Flags win over the JSON overlay.
	os.Args = []string{"testbin", "-config", path, "-a", "http://flags:2222"}

	cfg := LoadConfig()
	assert.Equal(t, "http://flags:2222", cfg.ServerURL)
	assert.Equal(t, "from-json.json", cfg.StateFile)
}

func TestParseJson_InvalidPanics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("nope"), 0o600))
	os.Args = []string{"testbin", "-config", bad}

	require.Panics(t, func() { parseJson(&Config{}) })
}
