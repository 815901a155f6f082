package cmd

import (
	"github.com/jjtimmons/primername/internal/primer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newResolveCmd is for finding the primers referenced in a block of text
func (a *app) newResolveCmd() *cobra.Command {
	resolveCmd := &cobra.Command{
		Use:                        "resolve [text]",
		Short:                      "Find primer numbers in text and group them by gene",
		RunE:                       a.resolve,
		SuggestionsMinimumDistance: 2,
		Long: `Find primer numbers in text and group them by gene.

Every run of digits in the text is looked up in the reference file. Numbers that
aren't primers are ignored. The text is read from the arguments, the --in file,
or stdin.`,
		Example: `  primername resolve "ordered 101 and 102 for the BRCA run"
  primername resolve -i order.txt -f json`,
		Aliases: []string{"scan"},
	}

	resolveCmd.Flags().StringP("in", "i", "", "file with the text to search")

	return resolveCmd
}

func (a *app) resolve(cmd *cobra.Command, args []string) error {
	text, err := readText(cmd, args)
	if err != nil {
		return err
	}

	ix, err := a.index()
	if err != nil {
		return err
	}

	res := ix.Resolve(text)
	a.logger.Debug("resolved text",
		zap.Int("chars", len(text)),
		zap.Int("genes", len(res)),
		zap.Int("primers", res.Len()))
	if res.Len() == 0 {
		a.logger.Info("no primer numbers from the reference found in the text")
	}

	return primer.WriteResult(cmd.OutOrStdout(), res, a.format())
}
