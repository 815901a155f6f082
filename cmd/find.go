package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jjtimmons/primername/internal/primer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newFindCmd is for finding genes or primers in the reference file
func (a *app) newFindCmd() *cobra.Command {
	findCmd := &cobra.Command{
		Use:                        "find",
		Short:                      "Find genes or primers in the reference file",
		SuggestionsMinimumDistance: 2,
		Long: `Find genes or primers in the reference file.
If there is no exact match for a gene, similar genes are suggested`,
		Aliases: []string{"ls", "list"},
	}

	// geneFindCmd is for listing the primers of a gene
	geneFindCmd := &cobra.Command{
		Use:                        "gene [symbol]",
		Short:                      "Find the primers of a gene",
		Args:                       cobra.MaximumNArgs(1),
		RunE:                       a.findGene,
		SuggestionsMinimumDistance: 2,
		Example:                    "  primername find gene BRCA1",
		Long: `Find the primers listed under a gene symbol.

'primername find gene' without any arguments lists every gene with its primer count.`,
		Aliases: []string{"genes"},
	}

	// primerFindCmd is for looking up primers by number
	primerFindCmd := &cobra.Command{
		Use:                        "primer [number] ... [numberN]",
		Short:                      "Find primers by their number",
		Args:                       cobra.MinimumNArgs(1),
		RunE:                       a.findPrimer,
		SuggestionsMinimumDistance: 2,
		Example:                    "  primername find primer 101 102",
		Aliases:                    []string{"primers"},
	}

	findCmd.AddCommand(geneFindCmd)
	findCmd.AddCommand(primerFindCmd)

	return findCmd
}

func (a *app) findGene(cmd *cobra.Command, args []string) error {
	ix, err := a.index()
	if err != nil {
		return err
	}

	if len(args) < 1 {
		return primer.WriteGenes(cmd.OutOrStdout(), ix.Summary(), a.format())
	}

	gene := strings.ToUpper(args[0])
	if entries := ix.GeneEntries(gene); len(entries) > 0 {
		return primer.WriteEntries(cmd.OutOrStdout(), entries, a.format())
	}

	if similar := ix.Suggest(gene); len(similar) > 0 {
		a.logger.Info("similar genes in the reference", zap.Strings("genes", similar))
	}
	return fmt.Errorf("failed to find gene %s in %s", gene, a.conf.Reference)
}

func (a *app) findPrimer(cmd *cobra.Command, args []string) error {
	ix, err := a.index()
	if err != nil {
		return err
	}

	entries := []primer.Entry{}
	missing := []string{}
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return fmt.Errorf("not a primer number: %q", arg)
		}

		if e, ok := ix.Entry(n); ok {
			entries = append(entries, e)
		} else {
			missing = append(missing, arg)
		}
	}

	if len(entries) > 0 {
		if err := primer.WriteEntries(cmd.OutOrStdout(), entries, a.format()); err != nil {
			return err
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("failed to find primers %s in %s", strings.Join(missing, ", "), a.conf.Reference)
	}
	return nil
}
