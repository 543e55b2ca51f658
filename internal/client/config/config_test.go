package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "http://127.0.0.1:8000", cfg.APIBaseURL)
	require.Equal(t, "jobdeck.db", cfg.DatabaseDSN)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	t.Setenv("JOBDECK_API_BASE_URL", "http://env:8000")
	t.Setenv("JOBDECK_LOG_LEVEL", "debug")
	os.Args = []string{"cli", "-a", "http://flags:8000"}

	cfg := LoadConfig()

	// flags win over env; env wins over defaults
	require.Equal(t, "http://flags:8000", cfg.APIBaseURL)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "jobdeck.db", cfg.DatabaseDSN)
}
