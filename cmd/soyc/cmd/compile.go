package cmd

import (
	"os"
	"os/signal"
	"syscall"

	soy "github.com/robfig/soyc"
	"github.com/robfig/soyc/config"
	"github.com/robfig/soyc/soymsg/pomsg"
	"github.com/spf13/cobra"
)

var (
	watch      bool
	locale     string
	messages   string
	knownTypes []string
	forEach    string
)

var compileCmd = &cobra.Command{
	Use:   "compile [templates...]",
	Short: "Writes the JavaScript for a set of templates",
	Long: `Compiles the given template files, and every *.soy file beneath the
given directories, into one JavaScript source.

With --locale, messages are replaced by their translations from the
<locale>.po file in the --messages directory.`,
	RunE: runCompile,
}

func init() {
	var flags = compileCmd.Flags()
	flags.BoolVarP(&watch, "watch", "w", false, "recompile when a template changes")
	flags.StringVar(&locale, "locale", "", "translate messages into this locale")
	flags.StringVar(&messages, "messages", "", "directory of <locale>.po files")
	flags.StringSliceVar(&knownTypes, "known-type", nil, "type that is never required (repeatable)")
	flags.StringVar(&forEach, "foreach", "", "iteration helper (default: goog.array.forEach)")
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	var cfg, err = loadConfig(cmd, args, func(cfg *config.Config) {
		var flags = cmd.Flags()
		if flags.Changed("locale") {
			cfg.Locale = locale
		}
		if flags.Changed("messages") {
			cfg.Messages = messages
		}
		if flags.Changed("known-type") {
			cfg.KnownTypes = knownTypes
		}
		if flags.Changed("foreach") {
			cfg.ForEach = forEach
		}
	})
	if err != nil {
		return err
	}

	var bundle = soy.NewBundle().
		WatchFiles(watch).
		WithOptions(cfg.CompilerOptions())
	if cfg.Locale != "" {
		var prov, err = pomsg.Dir(cfg.Messages)
		if err != nil {
			return err
		}
		bundle.WithTranslations(prov, cfg.Locale)
	}
	defer bundle.Close()

	var stdout = cmd.OutOrStdout()
	bundle.SetRecompilationCallback(func(out *soy.Output) {
		if err := writeOutput(stdout, cfg.Output, []byte(out.JS)); err != nil {
			soy.Logger.Error("write failed", "output", cfg.Output, "error", err)
		}
	})

	out, err := addInputs(bundle, cfg.Inputs).Compile()
	if err != nil {
		return err
	}
	if err := writeOutput(stdout, cfg.Output, []byte(out.JS)); err != nil {
		return err
	}
	soy.Logger.Debug("compiled", "templates", len(cfg.Inputs), "messages", len(out.Messages))

	if watch {
		soy.Logger.Info("watching for changes")
		var sig = make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
	}
	return nil
}
