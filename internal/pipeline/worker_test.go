package pipeline

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/infoai1/taliq/internal/concepts"
	"github.com/infoai1/taliq/internal/config"
)

const sampleMarkdown = `# Chapter One

As stated in Quran 2:255, God is eternal.` + "¹" + ` The Prophet taught peace to all.

Narrated in Bukhari 1, patience is a light for the believer.

[1] Bukhari 123
`

func testConfig(exportDir string) config.Config {
	return config.Config{
		MinGroupTokens:    512,
		MaxGroupTokens:    800,
		MinPageConfidence: 0.3,
		WorkerCount:       1,
		MaxQueueSize:      10,
		JobTTL:            time.Hour,
		ExportDir:         exportDir,
		ConceptTagging:    true,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "book.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestWorker_ProcessCompletes(t *testing.T) {
	exportDir := t.TempDir()
	w := NewWorker(testConfig(exportDir), concepts.NewTagger(nil), discardLogger())

	job := NewJob(writeSource(t, sampleMarkdown), "", "Test Book", "An Author")
	w.Process(context.Background(), job)

	if job.Status != StatusCompleted {
		t.Fatalf("status = %q, errors = %v", job.Status, job.Snapshot().Progress.Errors)
	}

	snap := job.Snapshot()
	if snap.Progress.Paragraphs != 4 {
		t.Errorf("paragraphs = %d, want 4", snap.Progress.Paragraphs)
	}
	if snap.Progress.Chapters != 1 {
		t.Errorf("chapters = %d, want 1", snap.Progress.Chapters)
	}
	if snap.Progress.QuranRefs != 1 {
		t.Errorf("quran refs = %d, want 1", snap.Progress.QuranRefs)
	}
	if snap.Progress.HadithRefs < 1 {
		t.Errorf("hadith refs = %d, want at least 1", snap.Progress.HadithRefs)
	}
	if snap.Progress.Footnotes != 1 {
		t.Errorf("footnote links = %d, want 1", snap.Progress.Footnotes)
	}
	if snap.Progress.Groups != 1 {
		t.Errorf("groups = %d, want 1", snap.Progress.Groups)
	}

	if job.ContentHash == "" {
		t.Error("content hash not set")
	}
	for _, p := range []string{job.BookPath, job.ChunksPath} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("missing export file %s: %v", p, err)
		}
	}
}

func TestWorker_MissingSourceFails(t *testing.T) {
	w := NewWorker(testConfig(t.TempDir()), nil, discardLogger())
	job := NewJob(filepath.Join(t.TempDir(), "absent.docx"), "", "Test Book", "")
	w.Process(context.Background(), job)

	if job.Status != StatusFailed {
		t.Errorf("status = %q, want failed", job.Status)
	}
	if len(job.Snapshot().Progress.Errors) == 0 {
		t.Error("expected recorded error")
	}
}

func TestWorker_BadPDFDegradesToPartial(t *testing.T) {
	w := NewWorker(testConfig(t.TempDir()), nil, discardLogger())
	job := NewJob(writeSource(t, sampleMarkdown), filepath.Join(t.TempDir(), "absent.pdf"), "Test Book", "")
	w.Process(context.Background(), job)

	if job.Status != StatusPartial {
		t.Errorf("status = %q, want partial", job.Status)
	}
	// Exports still happen without page numbers.
	if _, err := os.Stat(job.BookPath); err != nil {
		t.Errorf("book export missing: %v", err)
	}
}

func TestWorker_CancelledContext(t *testing.T) {
	w := NewWorker(testConfig(t.TempDir()), nil, discardLogger())
	job := NewJob(writeSource(t, sampleMarkdown), "", "Test Book", "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.Process(ctx, job)

	if job.Status != StatusFailed {
		t.Errorf("status = %q, want failed", job.Status)
	}
}

func TestWorker_TitleFallsBackToDocument(t *testing.T) {
	w := NewWorker(testConfig(t.TempDir()), nil, discardLogger())
	job := NewJob(writeSource(t, sampleMarkdown), "", "", "")
	w.Process(context.Background(), job)

	if job.Title != "book" {
		t.Errorf("title = %q, want book", job.Title)
	}
	if job.Slug != "book" {
		t.Errorf("slug = %q, want book", job.Slug)
	}
}

func TestOrchestrator_SubmitAndProcess(t *testing.T) {
	cfg := testConfig(t.TempDir())
	o := NewOrchestrator(cfg, nil, discardLogger())
	o.Start(context.Background())

	job := NewJob(writeSource(t, sampleMarkdown), "", "Test Book", "")
	if err := o.Submit(job); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if s := o.GetJob(job.ID).Snapshot(); s.Status == StatusCompleted || s.Status == StatusFailed {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	o.Stop()

	if got := o.GetJob(job.ID).Snapshot().Status; got != StatusCompleted {
		t.Errorf("status = %q, want completed", got)
	}
}

func TestOrchestrator_QueueFull(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.MaxQueueSize = 1
	o := NewOrchestrator(cfg, nil, discardLogger())
	// Not started: nothing drains the queue.

	first := NewJob("a.md", "", "A", "")
	second := NewJob("b.md", "", "B", "")
	if err := o.Submit(first); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if err := o.Submit(second); err == nil {
		t.Error("expected queue-full error")
	}
	if second.Status != StatusFailed {
		t.Errorf("second job status = %q, want failed", second.Status)
	}
}
