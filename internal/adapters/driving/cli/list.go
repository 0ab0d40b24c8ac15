package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verslag-digest/digest/internal/core/domain"
	"github.com/verslag-digest/digest/internal/core/ports/driving"
)

// searchFields are the values accepted by --fields.
var searchFields = []string{"topics", "positions", "decisions", "context", "reasoning"}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List meeting summaries",
	Long: `List the meeting summaries that pass the active filters, newest first.

Filters combine with AND: a document is shown when it has a selected topic,
a selected party, and matches the query. The executive summary and next steps
are always searched; --fields limits which other fields take part.

Examples:
  digest list --party VVD --party PVV
  digest list --topic "Climate Policy" -q stikstof
  digest list -q woningbouw --fields topics,decisions`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringSlice("topic", nil, "Show only documents covering these topics")
	listCmd.Flags().StringSlice("party", nil, "Show only documents where these parties took a position")
	listCmd.Flags().StringP("query", "q", "", "Case-insensitive text query")
	listCmd.Flags().StringSlice("fields", nil, "Fields searched besides the summary: "+strings.Join(searchFields, ","))
	listCmd.Flags().IntP("limit", "n", 0, "Maximum number of documents to print (0 = all)")
	listCmd.Flags().Bool("json", false, "Output as JSON")
	rootCmd.AddCommand(listCmd)
}

type listOutput struct {
	Total     int                        `json:"total"`
	Matched   int                        `json:"matched"`
	Documents []domain.ProjectedDocument `json:"documents"`
	Warning   string                     `json:"warning,omitempty"`
}

func runList(cmd *cobra.Command, _ []string) error {
	snap, err := loadCorpus(cmd)
	if err != nil {
		return err
	}

	topics, _ := cmd.Flags().GetStringSlice("topic")
	parties, _ := cmd.Flags().GetStringSlice("party")
	query, _ := cmd.Flags().GetString("query")
	fields, _ := cmd.Flags().GetStringSlice("fields")
	limit, _ := cmd.Flags().GetInt("limit")
	asJSON, _ := cmd.Flags().GetBool("json")

	if err := selectTopics(snap.Topics, topics); err != nil {
		return err
	}
	if err := selectParties(snap.Parties, parties); err != nil {
		return err
	}

	patch, err := searchPatch(query, fields)
	if err != nil {
		return err
	}
	corpusService.UpdateSearch(patch)

	snap = corpusService.Snapshot()
	projected := snap.Projected
	if limit > 0 && len(projected) > limit {
		projected = projected[:limit]
	}

	if asJSON {
		return writeJSON(cmd.OutOrStdout(), listOutput{
			Total:     len(snap.Documents),
			Matched:   len(snap.Visible),
			Documents: projected,
			Warning:   snap.Warning,
		})
	}

	printDocumentList(cmd, snap, projected)
	return nil
}

// selectTopics narrows the topic facet to names. An empty list keeps the
// current selection.
func selectTopics(facet []domain.TopicFilter, names []string) error {
	if len(names) == 0 {
		return nil
	}
	known := make([]string, 0, len(facet))
	for _, f := range facet {
		known = append(known, f.Name)
	}
	if err := checkKnown("topic", names, known); err != nil {
		return err
	}
	for _, name := range known {
		corpusService.ToggleTopic(name, slices.Contains(names, name))
	}
	return nil
}

// selectParties narrows the party facet to names.
func selectParties(facet []domain.PartyFilter, names []string) error {
	if len(names) == 0 {
		return nil
	}
	known := make([]string, 0, len(facet))
	for _, f := range facet {
		known = append(known, f.Name)
	}
	if err := checkKnown("party", names, known); err != nil {
		return err
	}
	for _, name := range known {
		corpusService.ToggleParty(name, slices.Contains(names, name))
	}
	return nil
}

func checkKnown(kind string, names, known []string) error {
	for _, name := range names {
		if !slices.Contains(known, name) {
			return fmt.Errorf("%w: unknown %s %q (run 'digest facets' to list them)", domain.ErrInvalidInput, kind, name)
		}
	}
	return nil
}

// searchPatch builds the search update for a query and an optional field list.
func searchPatch(query string, fields []string) (domain.SearchPatch, error) {
	patch := domain.QueryPatch(query)
	if len(fields) == 0 {
		return patch, nil
	}

	enabled := make(map[string]bool, len(fields))
	for _, f := range fields {
		f = strings.ToLower(strings.TrimSpace(f))
		if !slices.Contains(searchFields, f) {
			return domain.SearchPatch{}, fmt.Errorf("%w: unknown search field %q", domain.ErrInvalidInput, f)
		}
		enabled[f] = true
	}

	include := func(name string) *bool {
		v := enabled[name]
		return &v
	}
	patch.IncludeTopics = include("topics")
	patch.IncludePositions = include("positions")
	patch.IncludeDecisions = include("decisions")
	patch.IncludeContext = include("context")
	patch.IncludeReasoning = include("reasoning")
	return patch, nil
}

func printDocumentList(cmd *cobra.Command, snap driving.Snapshot, projected []domain.ProjectedDocument) {
	p := newPrinter(cmd.OutOrStdout())

	cmd.Printf("%d of %d documents\n", len(snap.Visible), len(snap.Documents))
	if len(projected) == 0 {
		cmd.Println("No documents match the current filters.")
		return
	}

	for i := range projected {
		doc := &projected[i]
		cmd.Println()
		cmd.Printf("%s  %s\n", p.title(doc.Title), p.muted(doc.FormattedDate))
		cmd.Printf("  ID: %s\n", doc.ID)
		if doc.Preview != "" {
			cmd.Println(p.wrap(doc.Preview, 2))
		}
		if doc.HasTopics {
			cmd.Printf("  Topics: %s\n", strings.Join(topicNames(doc), ", "))
		}
		if parties := documentParties(doc); len(parties) > 0 {
			labels := make([]string, 0, len(parties))
			for _, entry := range parties {
				labels = append(labels, p.party(entry.Party, entry.Color))
			}
			cmd.Printf("  Parties: %s\n", strings.Join(labels, ", "))
		}
	}

	if len(projected) < len(snap.Visible) {
		cmd.Println()
		cmd.Printf("(%d more, use --limit to show more)\n", len(snap.Visible)-len(projected))
	}
}
