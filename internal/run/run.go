// Package run drives a sweep over a list of files and accumulates the
// run statistics. Per-file I/O failures are reported and skipped; they
// never abort the run.
package run

import (
	"fmt"
	"io"
	"os"

	"commentsweep/internal/sweep"
)

// FileResult records the outcome for one file.
type FileResult struct {
	Path     string `json:"path"`
	Modified bool   `json:"modified"`
	Removed  int    `json:"removed"`
}

// Report is the aggregate outcome of a run.
type Report struct {
	RunID           string       `json:"run_id"`
	DryRun          bool         `json:"dry_run"`
	FilesScanned    int          `json:"files_scanned"`
	FilesModified   int          `json:"files_modified"`
	CommentsRemoved int          `json:"comments_removed"`
	Files           []FileResult `json:"files,omitempty"`
}

// Runner processes files sequentially with a single Sweeper.
type Runner struct {
	Sweeper *sweep.Sweeper

	// DryRun reports would-be changes without writing any file.
	DryRun bool

	// Stdout receives progress and the summary; Stderr receives per-file
	// I/O errors. Both default to the process streams.
	Stdout io.Writer
	Stderr io.Writer
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r *Runner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}

// Run sweeps every file in order and returns the aggregated report.
// files is expected to be pre-validated by walk.Discover; a file that
// fails to read or write here is logged and counted as unmodified.
func (r *Runner) Run(files []string) (*Report, error) {
	id, err := NewRunID()
	if err != nil {
		return nil, err
	}
	rep := &Report{RunID: id, DryRun: r.DryRun}

	for _, path := range files {
		rep.FilesScanned++
		res := r.processFile(path)
		rep.Files = append(rep.Files, res)
		if res.Modified {
			rep.FilesModified++
			rep.CommentsRemoved += res.Removed
		}
	}
	return rep, nil
}

func (r *Runner) processFile(path string) FileResult {
	res := FileResult{Path: path}

	original, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(r.stderr(), "Error reading %s: %v\n", path, err)
		return res
	}

	rewritten, removed := r.Sweeper.File(string(original))
	if removed == 0 || rewritten == string(original) {
		return res
	}

	if r.DryRun {
		fmt.Fprintf(r.stdout(), "[DRY RUN] Would modify %s: removed %d comments\n", path, removed)
		res.Modified = true
		res.Removed = removed
		return res
	}

	if err := os.WriteFile(path, []byte(rewritten), 0644); err != nil {
		fmt.Fprintf(r.stderr(), "Error writing %s: %v\n", path, err)
		return res
	}
	fmt.Fprintf(r.stdout(), "Modified %s: removed %d comments\n", path, removed)
	res.Modified = true
	res.Removed = removed
	return res
}

// PrintSummary writes the final summary block for the report.
func (r *Runner) PrintSummary(rep *Report) {
	w := r.stdout()
	prefix := ""
	if rep.DryRun {
		prefix = "[DRY RUN] "
	}
	fmt.Fprintf(w, "\n%sSummary:\n", prefix)
	fmt.Fprintf(w, "  Run ID: %s\n", rep.RunID)
	fmt.Fprintf(w, "  Files scanned: %d\n", rep.FilesScanned)
	fmt.Fprintf(w, "  Files modified: %d\n", rep.FilesModified)
	fmt.Fprintf(w, "  Comments removed: %d\n", rep.CommentsRemoved)
	if rep.DryRun && rep.FilesModified > 0 {
		fmt.Fprintf(w, "\nRun without --dry-run to apply changes.\n")
	}
}
