package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/chsim/internal/config"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, config.Default().Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	cfg, err := config.Load(write(t, "seed: 42\nformat: pretty\n"))
	require.NoError(t, err)
	require.Equal(t, int64(42), cfg.Seed)
	require.Equal(t, config.FormatPretty, cfg.Format)
	require.Equal(t, config.Default().Precision, cfg.Precision)
}

func TestLoadEmptyFileKeepsDefaults(t *testing.T) {
	for name, body := range map[string]string{
		"empty":        "",
		"comment only": "# nothing set yet\n",
	} {
		t.Run(name, func(t *testing.T) {
			cfg, err := config.Load(write(t, body))
			require.NoError(t, err)
			require.Equal(t, config.Default(), cfg)
		})
	}
}

func TestLoadRejects(t *testing.T) {
	cases := map[string]string{
		"unknown field": "colour: red\n",
		"bad format":    "format: html\n",
		"bad cap":       "max_statevector_qubits: 40\n",
		"bad precision": "precision: -1\n",
		"not yaml":      "seed: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(write(t, body))
			require.Error(t, err)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
