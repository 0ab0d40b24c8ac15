package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verslag-digest/digest/internal/core/domain"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a meeting summary",
	Long: `Show the full summary of one meeting: executive summary, topics with each
party's position, decisions, political dynamics, and next steps.

The id is the meeting report id printed by 'digest list'.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().Bool("json", false, "Output as JSON")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if _, err := loadCorpus(cmd); err != nil {
		return err
	}

	id := args[0]
	doc, err := corpusService.Project(commandContext(cmd), id)
	if err != nil {
		return fmt.Errorf("document %q: %w", id, err)
	}
	corpusService.SelectDocument(id)

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		return writeJSON(cmd.OutOrStdout(), doc)
	}

	printDocument(cmd, doc)
	return nil
}

func printDocument(cmd *cobra.Command, doc *domain.ProjectedDocument) {
	p := newPrinter(cmd.OutOrStdout())

	cmd.Println(p.title(doc.Title))
	cmd.Printf("%s | %s\n", doc.FormattedDate, doc.Model)
	cmd.Printf("ID: %s\n", doc.ID)
	if doc.ProcessingError != "" {
		cmd.Printf("Note: summary produced by a degraded path (%s)\n", doc.ProcessingError)
	}

	if doc.ExecutiveSummary != "" {
		cmd.Println()
		cmd.Println(p.title("Summary"))
		cmd.Println(p.wrap(doc.ExecutiveSummary, 2))
	}

	if doc.HasTopics {
		cmd.Println()
		cmd.Printf("%s (%d)\n", p.title("Topics"), doc.TopicCount)
		for _, topic := range doc.Topics {
			cmd.Println()
			cmd.Printf("  %s\n", topic.Name)
			if topic.Summary != "" {
				cmd.Println(p.wrap(topic.Summary, 4))
			}
			for _, line := range topic.Context {
				cmd.Println(p.wrap(line, 4))
			}
			for _, entry := range topic.Parties {
				cmd.Printf("    %s: %s\n", p.party(entry.Party, entry.Color), entry.Statement)
				if len(entry.Proposals) > 0 {
					cmd.Printf("      Proposals: %s\n", strings.Join(entry.Proposals, "; "))
				}
				if entry.Reasoning != "" {
					cmd.Printf("      Reasoning: %s\n", entry.Reasoning)
				}
			}
			if topic.Outcome != "" {
				cmd.Printf("    Outcome: %s\n", topic.Outcome)
			}
		}
	}

	printList(cmd, p, "Decisions", doc.Decisions)

	if doc.PoliticalDynamics != "" {
		cmd.Println()
		cmd.Println(p.title("Political dynamics"))
		cmd.Println(p.wrap(doc.PoliticalDynamics, 2))
	}

	printList(cmd, p, "Next steps", doc.NextSteps)
}

func printList(cmd *cobra.Command, p *printer, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	cmd.Println()
	cmd.Printf("%s (%d)\n", p.title(heading), len(items))
	for _, item := range items {
		cmd.Printf("  - %s\n", item)
	}
}
