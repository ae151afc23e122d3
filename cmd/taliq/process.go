package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/infoai1/taliq/internal/config"
	"github.com/infoai1/taliq/internal/pipeline"
)

var (
	processPDF    string
	processTitle  string
	processAuthor string
)

var processCmd = &cobra.Command{
	Use:   "process <manuscript>",
	Short: "Process a single manuscript",
	Long: `Process one manuscript file through the full pipeline and write the
Book JSON and chunk JSON exports.

Examples:
  taliq process book.docx
  taliq process book.docx --pdf book.pdf --title "The Age of Peace"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		cfg := config.Load()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		job := pipeline.NewJob(args[0], processPDF, processTitle, processAuthor)
		worker := pipeline.NewWorker(cfg, loadTagger(cfg, log), log)
		worker.Process(cmd.Context(), job)

		snap := job.Snapshot()
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap); err != nil {
			return err
		}

		if snap.Status == pipeline.StatusFailed {
			return fmt.Errorf("processing failed: %v", snap.Progress.Errors)
		}
		return nil
	},
}

func init() {
	processCmd.Flags().StringVar(&processPDF, "pdf", "", "print-edition PDF for page alignment")
	processCmd.Flags().StringVar(&processTitle, "title", "", "book title (default: derived from the manuscript)")
	processCmd.Flags().StringVar(&processAuthor, "author", "", "book author")
}
