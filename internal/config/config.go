// Package config resolves littlecalc settings from command line flags,
// LITTLECALC_* environment variables, optional dotenv files and built-in
// defaults, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mtimmerkamp/littlecalc/internal/logger"
	"github.com/mtimmerkamp/littlecalc/pkg/number"
)

// envPrefix namespaces every environment variable the resolver reads.
const envPrefix = "LITTLECALC"

// dotEnvName is the dotenv file looked up in the working directory and
// in the user's home directory.
const dotEnvName = ".littlecalc.env"

// Defaults used when neither flags, environment nor dotenv files
// configure a setting.
const (
	// DefaultModules are the modules loaded on startup.
	DefaultModules = "builtin,decimal,constants"

	// DefaultLogLevel keeps the session quiet unless something is wrong.
	DefaultLogLevel = "warn"
)

// Settings holds the resolved configuration for a calculator session.
type Settings struct {
	// Precision is the ambient decimal precision in significant digits.
	Precision uint32

	// Modules names the registered module factories to load, in order.
	Modules []string

	// LogLevel selects the minimum level for diagnostic logging.
	LogLevel string

	// LogFile redirects diagnostic logging to a file when non-empty.
	LogFile string

	// Strict makes unknown input tokens abort evaluation instead of
	// being reported and skipped.
	Strict bool
}

// Load resolves the effective settings. Flags bound to v take the
// highest precedence, then LITTLECALC_* environment variables, then
// dotenv files (working directory over home directory), then defaults.
func Load(v *viper.Viper) (Settings, error) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("precision", number.DefaultPrecision)
	v.SetDefault("modules", DefaultModules)
	v.SetDefault("log-level", DefaultLogLevel)
	v.SetDefault("log-file", "")
	v.SetDefault("strict", false)

	// Dotenv values sit between the built-in defaults and the real
	// environment, so they are applied as stronger defaults.
	if home, err := os.UserHomeDir(); err == nil {
		applyDotEnv(v, filepath.Join(home, dotEnvName))
	}
	applyDotEnv(v, dotEnvName)

	precision, err := parsePrecision(v.GetString("precision"))
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		Precision: precision,
		Modules:   splitModules(v.GetString("modules")),
		LogLevel:  v.GetString("log-level"),
		LogFile:   v.GetString("log-file"),
		Strict:    v.GetBool("strict"),
	}, nil
}

// applyDotEnv merges one dotenv file into v as defaults. A missing
// file is not an error; a malformed one is reported and skipped.
func applyDotEnv(v *viper.Viper, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	envMap, err := godotenv.Unmarshal(string(data))
	if err != nil {
		logger.Warn("ignoring malformed dotenv file", "path", path, "error", err)
		return
	}

	for key, value := range envMap {
		name, found := strings.CutPrefix(key, envPrefix+"_")
		if !found {
			continue
		}
		v.SetDefault(viperKey(name), value)
	}
}

// viperKey converts an environment variable suffix such as LOG_LEVEL
// to the viper key it configures.
func viperKey(envSuffix string) string {
	return strings.ReplaceAll(strings.ToLower(envSuffix), "_", "-")
}

func parsePrecision(raw string) (uint32, error) {
	precision, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid precision %q: must be a positive integer", raw)
	}
	if precision < 1 || precision > uint64(number.MaxPrecision) {
		return 0, fmt.Errorf("precision must be between 1 and %d, got %d", number.MaxPrecision, precision)
	}
	return uint32(precision), nil
}

// splitModules parses a comma-separated module list, dropping empty
// entries so trailing commas are harmless.
func splitModules(raw string) []string {
	var modules []string
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		modules = append(modules, name)
	}
	return modules
}
