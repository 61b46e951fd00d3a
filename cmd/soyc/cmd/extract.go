package cmd

import (
	"bytes"

	soy "github.com/robfig/soyc"
	"github.com/robfig/soyc/soymsg/pomsg"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [templates...]",
	Short: "Writes a PO template of the messages in a set of templates",
	Long: `Extracts every {msg} in the given templates into a PO template for
translators. Identical messages are merged into one entry that lists each
place it occurs.`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	var cfg, err = loadConfig(cmd, args)
	if err != nil {
		return err
	}

	var extractor = pomsg.NewExtractor()
	var opts = cfg.CompilerOptions()
	opts.OnMessage = extractor.Add
	if _, err := addInputs(soy.NewBundle().WithOptions(opts), cfg.Inputs).Compile(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if _, err := extractor.WriteTo(&buf); err != nil {
		return err
	}
	soy.Logger.Debug("extracted", "messages", extractor.Len())
	return writeOutput(cmd.OutOrStdout(), cfg.Output, buf.Bytes())
}
