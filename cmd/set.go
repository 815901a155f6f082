package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/jjtimmons/primername/internal/primer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newSetCmd is for adding or updating primers in the reference file
func (a *app) newSetCmd() *cobra.Command {
	setCmd := &cobra.Command{
		Use:                        "set [primer]",
		Short:                      "Set a primer in the reference file",
		SuggestionsMinimumDistance: 1,
		Long: `
Create/update a primer in the reference file with its number and name.`,
		Aliases: []string{"add", "update"},
	}

	// primerSetCmd is for adding a primer to the reference file
	primerSetCmd := &cobra.Command{
		Use:                        "primer [number] [name]",
		Short:                      "Add a primer to the reference file",
		Args:                       cobra.ExactArgs(2),
		RunE:                       a.setPrimer,
		SuggestionsMinimumDistance: 2,
		Long: `
Set a primer in the reference file. The name is normalized before it is written.
Lines that already have the primer number are replaced, otherwise the primer is appended.`,
		Example: "  primername set primer 103 brca1_ex13_r",
	}

	setCmd.AddCommand(primerSetCmd)

	return setCmd
}

func (a *app) setPrimer(cmd *cobra.Command, args []string) error {
	number, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("not a primer number: %q", args[0])
	}

	lines, err := primer.ReadFile(a.conf.Reference)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	lines, updated, err := primer.SetEntry(lines, number, args[1])
	if err != nil {
		return err
	}

	if err := primer.WriteFile(a.conf.Reference, lines); err != nil {
		return err
	}

	a.logger.Debug("wrote reference file", zap.String("path", a.conf.Reference), zap.Int("lines", len(lines)))
	if updated {
		fmt.Fprintf(cmd.OutOrStdout(), "updated %d in the reference file\n", number)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "added %d to the reference file\n", number)
	}
	return nil
}
