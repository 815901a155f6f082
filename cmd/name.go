package cmd

import (
	"github.com/jjtimmons/primername/internal/primer"
	"github.com/spf13/cobra"
)

// newNameCmd is for normalizing primer names without a reference file
func (a *app) newNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:                        "name [name] ... [nameN]",
		Short:                      "Normalize primer names",
		Args:                       cobra.MinimumNArgs(1),
		RunE:                       a.name,
		SuggestionsMinimumDistance: 2,
		Long: `Normalize primer names to GENE_exon_strand.

The gene symbol is uppercased, the exon lowercased, and the strand written as
"for" or "rev". Underscores between the parts are optional.`,
		Example: `  primername name brca1_ex12_f BRCA2EXON3REV`,
		Aliases: []string{"normalize"},
	}
}

func (a *app) name(cmd *cobra.Command, args []string) error {
	names := make([]primer.Name, 0, len(args))
	for _, raw := range args {
		n, err := primer.Normalize(raw)
		if err != nil {
			return err
		}
		names = append(names, n)
	}

	return primer.WriteNames(cmd.OutOrStdout(), args, names, a.format())
}
