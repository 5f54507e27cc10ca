// Package main provides the littlecalc CLI application entry point.
// littlecalc is an RPN calculator built around arbitrary-precision
// decimal arithmetic and loadable operation modules.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mtimmerkamp/littlecalc/internal/config"
	"github.com/mtimmerkamp/littlecalc/internal/core"
	"github.com/mtimmerkamp/littlecalc/internal/logger"
	_ "github.com/mtimmerkamp/littlecalc/internal/modules/builtin" // Import for side effects (init functions)
	_ "github.com/mtimmerkamp/littlecalc/internal/modules/constants"
	_ "github.com/mtimmerkamp/littlecalc/internal/modules/decimal"
	"github.com/mtimmerkamp/littlecalc/internal/shell"
	"github.com/mtimmerkamp/littlecalc/internal/version"
	"github.com/mtimmerkamp/littlecalc/pkg/number"
)

// cfg holds the settings resolved by initConfig before any command runs.
var cfg config.Settings

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "littlecalc",
	Short: "littlecalc - an RPN calculator with arbitrary precision",
	Long: `littlecalc is a reverse Polish notation calculator built around
arbitrary-precision decimal arithmetic. Operations live in loadable
modules; the default set covers stack manipulation, decimal arithmetic,
elementary functions and physical constants.`,
	Run: runShell, // Default behavior is to run the interactive shell
}

// shellCmd represents the shell command (explicit version of default behavior)
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive calculator",
	Long:  `Start the interactive RPN calculator session.`,
	Run:   runShell,
}

// evalCmd represents the eval command for non-interactive evaluation
var evalCmd = &cobra.Command{
	Use:   "eval <token>...",
	Short: "Evaluate RPN tokens and print the resulting stack",
	Long: `Evaluate the given tokens as a single input line and print the
resulting stack from bottom to top, one value per line. The process
exits non-zero when any token fails to evaluate.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runEval,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display detailed version information for littlecalc.`,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.GetDetailedVersion())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().Uint32("precision", number.DefaultPrecision, "Ambient decimal precision in significant digits")
	rootCmd.PersistentFlags().String("modules", config.DefaultModules, "Comma-separated modules to load on startup")
	rootCmd.PersistentFlags().String("log-level", "", "Set log level (debug|info|warn|error) [default: warn]")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().Bool("strict", false, "Abort evaluation at the first unknown token")

	// Bind flags to viper
	for _, name := range []string{"precision", "modules", "log-level", "log-file", "strict"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", name, err)
			os.Exit(1)
		}
	}

	// Add subcommands
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(versionCmd)

	// Resolve configuration before any command execution
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	settings, err := config.Load(viper.GetViper())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	cfg = settings

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

// newCalculator builds a calculator per the resolved settings and loads
// the configured modules.
func newCalculator(opts ...core.Option) (*core.Calculator, error) {
	opts = append([]core.Option{
		core.WithPrecision(cfg.Precision),
		core.WithStrict(cfg.Strict),
	}, opts...)

	calc := core.New(opts...)
	for _, name := range cfg.Modules {
		if err := calc.LoadModuleByName(name); err != nil {
			return nil, err
		}
	}
	return calc, nil
}

// rendererOptions builds the markdown renderer option. Listings stay
// plain when glamour cannot initialize for the current terminal.
func rendererOptions() []core.Option {
	md, err := shell.NewMarkdown()
	if err != nil {
		logger.Warn("markdown rendering unavailable", "error", err)
		return nil
	}
	return []core.Option{core.WithRenderer(md)}
}

func runShell(_ *cobra.Command, _ []string) {
	logger.Info("starting littlecalc", "version", version.GetVersion())

	calc, err := newCalculator(rendererOptions()...)
	if err != nil {
		logger.Fatal("failed to initialize calculator", "error", err)
	}

	shell.New(calc).Run()
}

func runEval(_ *cobra.Command, args []string) {
	calc, err := newCalculator(rendererOptions()...)
	if err != nil {
		logger.Fatal("failed to initialize calculator", "error", err)
	}

	evalErr := calc.Evaluate(strings.Join(args, " "))

	for _, v := range calc.Stack().Values() {
		fmt.Println(v)
	}
	if evalErr != nil {
		os.Exit(1)
	}
}
