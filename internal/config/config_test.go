package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtimmerkamp/littlecalc/pkg/number"
)

// isolateEnv points HOME at an empty directory so a developer's own
// dotenv files cannot leak into assertions.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	isolateEnv(t)

	settings, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, uint32(number.DefaultPrecision), settings.Precision)
	assert.Equal(t, []string{"builtin", "decimal", "constants"}, settings.Modules)
	assert.Equal(t, "warn", settings.LogLevel)
	assert.Equal(t, "", settings.LogFile)
	assert.False(t, settings.Strict)
}

func TestLoadFromEnvironment(t *testing.T) {
	isolateEnv(t)
	t.Setenv("LITTLECALC_PRECISION", "50")
	t.Setenv("LITTLECALC_MODULES", "builtin, decimal")
	t.Setenv("LITTLECALC_LOG_LEVEL", "debug")
	t.Setenv("LITTLECALC_LOG_FILE", "/tmp/littlecalc.log")
	t.Setenv("LITTLECALC_STRICT", "true")

	settings, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, uint32(50), settings.Precision)
	assert.Equal(t, []string{"builtin", "decimal"}, settings.Modules)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.Equal(t, "/tmp/littlecalc.log", settings.LogFile)
	assert.True(t, settings.Strict)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	isolateEnv(t)
	t.Setenv("LITTLECALC_PRECISION", "50")

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Uint32("precision", number.DefaultPrecision, "")
	require.NoError(t, cmd.Flags().Set("precision", "12"))

	v := viper.New()
	require.NoError(t, v.BindPFlag("precision", cmd.Flags().Lookup("precision")))

	settings, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, uint32(12), settings.Precision)
}

func TestUnchangedFlagDoesNotShadowEnvironment(t *testing.T) {
	isolateEnv(t)
	t.Setenv("LITTLECALC_PRECISION", "50")

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Uint32("precision", number.DefaultPrecision, "")

	v := viper.New()
	require.NoError(t, v.BindPFlag("precision", cmd.Flags().Lookup("precision")))

	settings, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, uint32(50), settings.Precision)
}

func TestDotEnvFiles(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homeEnv := "LITTLECALC_PRECISION=40\nLITTLECALC_LOG_LEVEL=debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, dotEnvName), []byte(homeEnv), 0o600))

	work := t.TempDir()
	workEnv := "LITTLECALC_PRECISION=35\nOTHER_TOOL_SETTING=ignored\n"
	require.NoError(t, os.WriteFile(filepath.Join(work, dotEnvName), []byte(workEnv), 0o600))
	t.Chdir(work)

	settings, err := Load(viper.New())
	require.NoError(t, err)

	// The working directory file wins for precision, the home file still
	// contributes the log level, and unprefixed keys are ignored.
	assert.Equal(t, uint32(35), settings.Precision)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.Equal(t, []string{"builtin", "decimal", "constants"}, settings.Modules)
}

func TestEnvironmentOverridesDotEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, dotEnvName), []byte("LITTLECALC_PRECISION=40\n"), 0o600))
	t.Setenv("LITTLECALC_PRECISION", "50")

	settings, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, uint32(50), settings.Precision)
}

func TestMalformedDotEnvIsSkipped(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, dotEnvName), []byte("not a dotenv line\n"), 0o600))

	settings, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, uint32(number.DefaultPrecision), settings.Precision)
}

func TestLoadRejectsBadPrecision(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not a number", "abc"},
		{"zero", "0"},
		{"negative", "-5"},
		{"fractional", "2.5"},
		{"above maximum", "100001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			t.Setenv("LITTLECALC_PRECISION", tt.value)

			_, err := Load(viper.New())
			assert.Error(t, err)
		})
	}
}

func TestSplitModules(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{"single module", "builtin", []string{"builtin"}},
		{"spaces and trailing comma", "builtin, decimal,,constants,", []string{"builtin", "decimal", "constants"}},
		{"only separators", " , ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitModules(tt.raw))
		})
	}
}
