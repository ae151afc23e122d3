package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/infoai1/taliq/internal/concepts"
	"github.com/infoai1/taliq/internal/config"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "taliq",
	Short: "Manuscript structuring and reference extraction pipeline",
	Long: `Taliq turns book manuscripts into structured, annotated JSON.

The pipeline includes:
  - Structural parsing of DOCX, Markdown, and HTML manuscripts
  - Page alignment against a print-edition PDF
  - Quran and Hadith citation detection with canonical names
  - Footnote marker and definition linking
  - Token-bounded paragraph grouping for retrieval
  - Book JSON and chunk JSON export

Configuration comes from environment variables (MIN_GROUP_TOKENS,
MAX_GROUP_TOKENS, MIN_PAGE_CONFIDENCE, EXPORT_DIR, TAXONOMY_PATH, ...).`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(batchCmd)
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

// loadTagger builds the concept tagger from the configured taxonomy. A
// missing taxonomy file downgrades to keyword tagging without one.
func loadTagger(cfg config.Config, log *slog.Logger) *concepts.Tagger {
	if !cfg.ConceptTagging {
		return nil
	}
	tax, err := concepts.LoadTaxonomy(cfg.TaxonomyPath)
	if err != nil {
		log.Warn("taxonomy unavailable, tagging without it", "path", cfg.TaxonomyPath, "error", err)
		return concepts.NewTagger(nil)
	}
	return concepts.NewTagger(tax)
}
