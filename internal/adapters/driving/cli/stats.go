package cli

import (
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus statistics",
	Long:  `Show document, topic, and party counts, the date range, and which models produced the summaries.`,
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().Bool("json", false, "Output as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	snap, err := loadCorpus(cmd)
	if err != nil {
		return err
	}
	stats := snap.Stats

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		return writeJSON(cmd.OutOrStdout(), stats)
	}

	cmd.Println("Corpus Statistics")
	cmd.Println("=================")
	cmd.Printf("  Documents: %d\n", stats.TotalDocuments)
	cmd.Printf("  Topics:    %d\n", stats.TotalTopics)
	cmd.Printf("  Parties:   %d\n", stats.UniqueParties)
	if stats.DateRange != nil {
		cmd.Printf("  Period:    %s - %s\n",
			stats.DateRange.Earliest.Format(time.DateOnly),
			stats.DateRange.Latest.Format(time.DateOnly))
	}

	if len(stats.ModelBreakdown) > 0 {
		cmd.Println()
		cmd.Println("Models")
		models := make([]string, 0, len(stats.ModelBreakdown))
		for model := range stats.ModelBreakdown {
			models = append(models, model)
		}
		slices.SortFunc(models, func(a, b string) int {
			if d := stats.ModelBreakdown[b] - stats.ModelBreakdown[a]; d != 0 {
				return d
			}
			return strings.Compare(a, b)
		})
		for _, model := range models {
			cmd.Printf("  %-20s %d\n", model, stats.ModelBreakdown[model])
		}
	}
	return nil
}
