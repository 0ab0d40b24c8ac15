package cli

import (
	"bytes"
	"path"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/verslag-digest/digest/internal/adapters/driven/source/filesystem"
	"github.com/verslag-digest/digest/internal/adapters/driven/storage/memory"
	"github.com/verslag-digest/digest/internal/core/services"
)

const testRoot = "/summaries"

const (
	fileFeb = "mistral_summary_123e4567-e89b-12d3-a456-426614174000.json"
	fileMar = "deepseek_summary_223e4567-e89b-12d3-a456-426614174001.json"
)

// testSummaries is a two-meeting corpus discovered through files.json.
var testSummaries = map[string]string{
	"files.json": `["` + fileFeb + `", "` + fileMar + `"]`,
	fileFeb: `{
  "executive_summary": "Housing shortage debate",
  "main_topics": [{"name": "Housing Regulation", "positions": {"VVD": "Build more homes"}}],
  "key_decisions": ["Adopt housing motion"],
  "meeting_info": {"verslag_id": "feb", "vergadering_titel": "Commissiedebat Wonen", "vergadering_datum": "2025-02-01"},
  "processing_info": {"ai_model": "mistral"}
}`,
	fileMar: `{
  "executiveSummary": "Climate targets debate",
  "topics": [{"name": "Climate Policy", "summary": "Emission targets", "positions": {"VVD": "Nuclear energy", "PVV": "Oppose targets"}}],
  "nextSteps": ["Letter to parliament"],
  "meetingInfo": {"verslagId": "mar", "title": "Commissiedebat Klimaat", "date": "2025-03-11"},
  "processingInfo": {"aiModel": "deepseek"}
}`,
}

// setupTestServices wires real services over the sample corpus and returns
// a function restoring the previous services.
func setupTestServices() func() {
	return setupServicesWith(testSummaries)
}

// setupServicesWith wires real services over an in-memory source holding files.
func setupServicesWith(files map[string]string) func() {
	fs := afero.NewMemMapFs()
	_ = fs.MkdirAll(testRoot, 0o755)
	for name, content := range files {
		_ = afero.WriteFile(fs, path.Join(testRoot, name), []byte(content), 0o644)
	}

	settingsSvc := services.NewSettingsService(memory.NewConfigStore())
	settings := settingsSvc.GetDefaults()
	settings.Search.Debounce = 0

	fetcher := filesystem.NewFetcherFs(fs, testRoot)
	loader := services.NewDocumentLoader(fetcher, services.NewDefaultDiscovery(fetcher, settings.Source), 0)
	corpus := services.NewCorpusService(loader, memory.NewDocumentStore(), settings)

	prevCorpus, prevSettings := corpusService, settingsService
	SetServices(corpus, settingsSvc)
	return func() {
		corpus.Close()
		corpusService, settingsService = prevCorpus, prevSettings
	}
}

// execute runs the root command with args and returns stdout and stderr.
// Flag values persist between cobra executions, so they are reset first.
func execute(args ...string) (stdout, stderr string, err error) {
	resetFlags(rootCmd)

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
