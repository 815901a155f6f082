package cmd

import (
	"fmt"

	"github.com/jjtimmons/primername/internal/primer"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// newCheckCmd is for validating the reference file
func (a *app) newCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:                        "check",
		Short:                      "Check the reference file for errors",
		RunE:                       a.check,
		SuggestionsMinimumDistance: 2,
		Long: `Check every line of the reference file.

Lines without a primer number and lines with malformed primer names are errors.
Primer numbers listed under more than one gene are written to stdout; with
--strict they are errors too.`,
		Aliases: []string{"validate"},
	}

	checkCmd.Flags().Bool("strict", false, "fail if a primer number is listed under more than one gene")

	return checkCmd
}

func (a *app) check(cmd *cobra.Command, args []string) error {
	lines, err := primer.ReadFile(a.conf.Reference)
	if err != nil {
		return err
	}

	if err := primer.Validate(lines); err != nil {
		errs := multierr.Errors(err)
		for _, e := range errs {
			a.logger.Error("bad reference line", zap.Error(e))
		}
		return fmt.Errorf("%d bad lines in %s", len(errs), a.conf.Reference)
	}

	ix, err := primer.Build(lines) // conflicts are written below
	if err != nil {
		return err
	}

	conflicts := ix.Conflicts()
	if len(conflicts) > 0 {
		if err := primer.WriteConflicts(cmd.OutOrStdout(), conflicts, a.format()); err != nil {
			return err
		}

		if strict, _ := cmd.Flags().GetBool("strict"); strict {
			return fmt.Errorf("%d primer numbers listed under more than one gene in %s", len(conflicts), a.conf.Reference)
		}
	}

	a.logger.Info("reference file is valid",
		zap.String("path", a.conf.Reference),
		zap.Int("primers", ix.Len()),
		zap.Int("genes", len(ix.Genes())))
	return nil
}
