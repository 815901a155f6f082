package cmd

import (
	"fmt"
	"strconv"

	"github.com/jjtimmons/primername/internal/primer"
	"github.com/spf13/cobra"
)

// newDeleteCmd is for removing primers from the reference file
func (a *app) newDeleteCmd() *cobra.Command {
	deleteCmd := &cobra.Command{
		Use:                        "delete [primer]",
		Short:                      "Delete a primer",
		SuggestionsMinimumDistance: 2,
		Long:                       `Delete a primer from the reference file by its number.`,
		Aliases:                    []string{"rm", "remove"},
	}

	// primerDeleteCmd is for deleting primers from the reference file
	primerDeleteCmd := &cobra.Command{
		Use:                        "primer [number]",
		Short:                      "Delete a primer from the reference file",
		Args:                       cobra.ExactArgs(1),
		RunE:                       a.deletePrimer,
		SuggestionsMinimumDistance: 2,
		Aliases:                    []string{"remove"},
		Example:                    "  primername delete primer 103",
		Long: `Delete a primer from the reference file by its number.
If no line has the primer number, an error is returned.`,
	}

	deleteCmd.AddCommand(primerDeleteCmd)

	return deleteCmd
}

func (a *app) deletePrimer(cmd *cobra.Command, args []string) error {
	number, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("not a primer number: %q", args[0])
	}

	lines, err := primer.ReadFile(a.conf.Reference)
	if err != nil {
		return err
	}

	lines, deleted := primer.DeleteEntry(lines, number)
	if !deleted {
		return fmt.Errorf("failed to find %d in the reference file", number)
	}

	if err := primer.WriteFile(a.conf.Reference, lines); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "deleted %d from the reference file\n", number)
	return nil
}
