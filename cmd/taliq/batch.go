package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/infoai1/taliq/internal/config"
	"github.com/infoai1/taliq/internal/parser"
	"github.com/infoai1/taliq/internal/pipeline"
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Process every manuscript in a directory",
	Long: `Queue every supported manuscript in a directory and process them on the
configured worker pool (WORKER_COUNT). A PDF sitting next to a manuscript
with the same base name is used for page alignment.

Example:
  taliq batch ./manuscripts`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		cfg := config.Load()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		entries, err := os.ReadDir(args[0])
		if err != nil {
			return fmt.Errorf("read directory: %w", err)
		}

		orch := pipeline.NewOrchestrator(cfg, loadTagger(cfg, log), log)
		orch.Start(cmd.Context())
		defer orch.Stop()

		var jobs []*pipeline.Job
		for _, entry := range entries {
			if entry.IsDir() || !parser.IsSupportedExtension(entry.Name()) {
				continue
			}
			source := filepath.Join(args[0], entry.Name())

			base := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
			pdf := filepath.Join(args[0], base+".pdf")
			if _, err := os.Stat(pdf); err != nil {
				pdf = ""
			}

			job := pipeline.NewJob(source, pdf, "", "")
			if err := orch.Submit(job); err != nil {
				log.Error("submit failed", "source", source, "error", err)
				continue
			}
			jobs = append(jobs, job)
			log.Info("queued", "job_id", job.ID, "source", source, "pdf", pdf)
		}

		if len(jobs) == 0 {
			return fmt.Errorf("no supported manuscripts in %s", args[0])
		}

		// Wait for all jobs to settle.
		failed := 0
		for _, job := range jobs {
			for {
				snap := job.Snapshot()
				switch snap.Status {
				case pipeline.StatusCompleted, pipeline.StatusPartial:
					log.Info("finished", "job_id", snap.ID, "status", snap.Status,
						"paragraphs", snap.Progress.Paragraphs, "groups", snap.Progress.Groups)
				case pipeline.StatusFailed:
					log.Error("failed", "job_id", snap.ID, "errors", snap.Progress.Errors)
					failed++
				default:
					select {
					case <-cmd.Context().Done():
						return cmd.Context().Err()
					case <-time.After(100 * time.Millisecond):
					}
					continue
				}
				break
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d manuscripts failed", failed, len(jobs))
		}
		return nil
	},
}
