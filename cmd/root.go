// Package cmd is for command line interactions with the primername application
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jjtimmons/primername/config"
	"github.com/jjtimmons/primername/internal/primer"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = NewRootCmd()

// app is the state shared by the commands of one command tree
type app struct {
	v      *viper.Viper
	conf   *config.Config
	logger *zap.Logger
}

// NewRootCmd returns a new primername command tree
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}
	config.SetDefaults(a.v)

	rootCmd := &cobra.Command{
		Use:   "primername",
		Short: "Find primer numbers in text and look up their gene, exon and strand",
		Long: `Find primer numbers in text and look up their gene, exon and strand.

The reference file lists one primer per line: a primer number and a primer name,
in either order. Primer names are a gene symbol, an exon and a strand, ex:
"BRCA1_ex12_for" or "brca1exon12r". Lines starting with '#' are comments.`,
		Version:           "0.1.0",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringP("reference", "r", "primers.txt", "primer reference file with a primer number and name per line")
	rootCmd.PersistentFlags().StringP("settings", "s", config.RootSettingsFile, "settings file")
	rootCmd.PersistentFlags().StringP("format", "f", "table", "output format: table, json or yaml")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug messages to stderr")

	// bind the persistent flags to viper
	for _, name := range []string{"reference", "settings", "format", "verbose"} {
		_ = a.v.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	rootCmd.AddCommand(a.newResolveCmd())
	rootCmd.AddCommand(a.newNameCmd())
	rootCmd.AddCommand(a.newFindCmd())
	rootCmd.AddCommand(a.newSetCmd())
	rootCmd.AddCommand(a.newDeleteCmd())
	rootCmd.AddCommand(a.newCheckCmd())
	rootCmd.AddCommand(newDocsCmd())

	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		newLogger(os.Stderr, false).Fatal(err.Error())
	}
}

// setup reads the settings and creates the logger before any command runs
func (a *app) setup(cmd *cobra.Command, args []string) error {
	conf, err := config.New(a.v)
	if err != nil {
		return err
	}
	a.conf = conf
	a.logger = newLogger(cmd.ErrOrStderr(), conf.Verbose)

	a.logger.Debug("settings",
		zap.String("reference", conf.Reference),
		zap.String("format", conf.Format),
		zap.String("settings", a.v.GetString("settings")))
	return nil
}

// index loads the reference file
func (a *app) index() (*primer.Index, error) {
	return primer.Load(a.conf.Reference, primer.WithLogger(a.logger))
}

// format is the output format, checked in setup
func (a *app) format() primer.Format {
	f, _ := primer.ParseFormat(a.conf.Format)
	return f
}

// newLogger returns a console logger without timestamps, the CLI's stderr isn't a log file
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	encoderConfig.CallerKey = ""

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), level)
	return zap.New(core)
}

// readText returns the text to search: the arguments, the --in file or stdin
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if in, _ := cmd.Flags().GetString("in"); in != "" {
		b, err := os.ReadFile(in)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(b), nil
	}

	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(b), nil
}
