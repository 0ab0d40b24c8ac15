package cli

import (
	"github.com/spf13/cobra"

	"github.com/verslag-digest/digest/internal/core/domain"
)

var facetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "List topics and parties",
	Long: `List every topic and party found in the corpus with the number of
documents each appears in, most frequent first.`,
	Args: cobra.NoArgs,
	RunE: runFacets,
}

func init() {
	facetsCmd.Flags().Bool("json", false, "Output as JSON")
	rootCmd.AddCommand(facetsCmd)
}

type facetsOutput struct {
	Topics  []domain.TopicFilter `json:"topics"`
	Parties []domain.PartyFilter `json:"parties"`
}

func runFacets(cmd *cobra.Command, _ []string) error {
	snap, err := loadCorpus(cmd)
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		return writeJSON(cmd.OutOrStdout(), facetsOutput{Topics: snap.Topics, Parties: snap.Parties})
	}

	p := newPrinter(cmd.OutOrStdout())

	cmd.Printf("Topics (%d)\n", len(snap.Topics))
	for _, t := range snap.Topics {
		cmd.Printf("  %4d  %s\n", t.Count, t.Name)
	}

	cmd.Println()
	cmd.Printf("Parties (%d)\n", len(snap.Parties))
	for _, party := range snap.Parties {
		cmd.Printf("  %4d  %s\n", party.Count, p.party(party.Name, party.Color))
	}
	return nil
}
