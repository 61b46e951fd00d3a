// Package cmd implements the soyc command line.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	soy "github.com/robfig/soyc"
	"github.com/robfig/soyc/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string
	output    string
)

var rootCmd = &cobra.Command{
	Use:   "soyc",
	Short: "Compiles soy templates to JavaScript",
	Long: `soyc compiles soy templates into Closure-style JavaScript.

Commands:
  compile  - write the JavaScript for a set of templates
  extract  - write a PO template of the messages in a set of templates`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.toml or .yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text, json)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
}

// loadConfig reads the config file, if any, and applies the flags and
// arguments on top of it, followed by the command's own flags in merge. The
// merged result is validated, and the configured logger installed.
func loadConfig(cmd *cobra.Command, args []string, merge ...func(*config.Config)) (*config.Config, error) {
	var cfg = config.Default()
	if cfgFile != "" {
		var err error
		if cfg, err = config.Load(cfgFile); err != nil {
			return nil, err
		}
	}

	var flags = cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = logFormat
	}
	if flags.Changed("output") {
		cfg.Output = output
	}
	if len(args) > 0 {
		cfg.Inputs = args
	}
	for _, fn := range merge {
		fn(cfg)
	}
	if len(cfg.Inputs) == 0 {
		return nil, fmt.Errorf("no templates given")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var log, err = cfg.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	soy.Logger = log
	return cfg, nil
}

// addInputs adds each file, or each *.soy file beneath each directory, to
// the bundle.
func addInputs(b *soy.Bundle, inputs []string) *soy.Bundle {
	for _, input := range inputs {
		if info, err := os.Stat(input); err == nil && info.IsDir() {
			b.AddTemplateDir(input)
		} else {
			b.AddTemplateFile(input)
		}
	}
	return b
}

// writeOutput writes content to the named file, or to w if the name is
// empty or "-".
func writeOutput(w io.Writer, name string, content []byte) error {
	if name == "" || name == "-" {
		_, err := w.Write(content)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return err
	}
	return os.WriteFile(name, content, 0644)
}
