package demo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, "INFO", cfg.LogLevel)
	require.Equal(t, "plain", cfg.LogEncoder)
	require.Equal(t, 4, cfg.Workers)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, cfg.Sizes)
	require.Equal(t, 5, cfg.CycleListSize)
	require.Equal(t, []int{0, 1, 2, 3, 4}, cfg.CyclePositions)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("XLINKED_LOG_LEVEL", "debug")
	t.Setenv("XLINKED_WORKERS", "2")
	t.Setenv("XLINKED_SIZES", "0,5,6")
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 2, cfg.Workers)
	require.Equal(t, []int{0, 5, 6}, cfg.Sizes)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xlinked.yaml")
	content := []byte("log_level: WARN\nlog_encoder: json\nworkers: 8\nsizes: [3]\ncycle_list_size: 3\ncycle_positions: [2, 7]\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "WARN", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogEncoder)
	require.Equal(t, 8, cfg.Workers)
	require.Equal(t, []int{3}, cfg.Sizes)
	require.Equal(t, []int{2, 7}, cfg.CyclePositions)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{
		LogLevel:      "trace",
		LogEncoder:    "xml",
		Workers:       0,
		Sizes:         []int{-1, 2},
		CycleListSize: -3,
	}
	err := cfg.Validate()
	require.Error(t, err)
	es, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok)
	require.Len(t, es.Unwrap(), 5)

	t.Setenv("XLINKED_WORKERS", "-1")
	_, err = LoadConfig("")
	require.Error(t, err)
}

func TestUsage(t *testing.T) {
	usage := Usage()
	require.Contains(t, usage, "XLINKED_WORKERS")
	require.Contains(t, usage, "XLINKED_CYCLE_POSITIONS")
}
