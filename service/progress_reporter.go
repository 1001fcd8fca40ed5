package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// ProgressReporterImpl implements the ProgressReporter interface with a
// terminal progress bar. Non-interactive environments stay silent unless
// verbose is set.
type ProgressReporterImpl struct {
	mu          sync.Mutex
	writer      io.Writer
	progressBar *progressbar.ProgressBar
	interactive bool
	verbose     bool
}

// NewProgressReporter creates a new progress reporter
func NewProgressReporter(writer io.Writer, verbose bool) *ProgressReporterImpl {
	if writer == nil {
		writer = os.Stderr // Progress output typically goes to stderr
	}

	interactive := false
	if file, ok := writer.(*os.File); ok {
		interactive = IsInteractiveEnvironment() && term.IsTerminal(int(file.Fd()))
	}

	return &ProgressReporterImpl{
		writer:      writer,
		interactive: interactive,
		verbose:     verbose,
	}
}

// StartProgress starts progress reporting for the given number of files
func (p *ProgressReporterImpl) StartProgress(totalFiles int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.verbose {
		fmt.Fprintf(p.writer, "Processing %d trajectory files...\n", totalFiles)
	}
	if p.interactive && !p.verbose && totalFiles > 1 {
		p.progressBar = p.createProgressBar("Rendering", totalFiles)
	}
}

// UpdateProgress updates the progress with the current file being processed
func (p *ProgressReporterImpl) UpdateProgress(currentFile string, processed, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.verbose {
		fmt.Fprintf(p.writer, "[%d/%d] %s\n", processed+1, total, filepath.Base(currentFile))
		return
	}
	if p.progressBar != nil {
		_ = p.progressBar.Set(processed + 1)
	}
}

// FinishProgress finishes progress reporting
func (p *ProgressReporterImpl) FinishProgress() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.progressBar != nil {
		_ = p.progressBar.Finish()
		p.progressBar = nil
	}
}

func (p *ProgressReporterImpl) createProgressBar(description string, max int) *progressbar.ProgressBar {
	writer := p.writer
	if writer == nil {
		writer = io.Discard
	}

	return progressbar.NewOptions(max,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetWriter(writer),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(writer)
		}),
	)
}

// NoOpProgressReporter is a progress reporter that does nothing
type NoOpProgressReporter struct{}

// NewNoOpProgressReporter creates a no-op progress reporter
func NewNoOpProgressReporter() *NoOpProgressReporter {
	return &NoOpProgressReporter{}
}

func (n *NoOpProgressReporter) StartProgress(totalFiles int)                            {}
func (n *NoOpProgressReporter) UpdateProgress(currentFile string, processed, total int) {}
func (n *NoOpProgressReporter) FinishProgress()                                         {}

// IsInteractiveEnvironment reports whether stderr is attached to a terminal
// outside CI.
func IsInteractiveEnvironment() bool {
	if os.Getenv("CI") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}
