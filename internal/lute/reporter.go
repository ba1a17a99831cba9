package lute

import "log/slog"

//go:generate mockgen -source=reporter.go -destination=../mocks/lute/mock_reporter.go -package=mock_lute

// Reporter receives progress and failure notices from an extraction. The
// extractor itself stays a function from (path, options) to (result, error);
// all notification concerns are composed at the boundary through this
// interface.
type Reporter interface {
	// QueryStarted is called right before the term query executes.
	QueryStarted()
	// Connected is called after the store at path has been opened.
	Connected(path string)
	// Summarized is called with the final counts of a successful extraction.
	Summarized(termCount, languageCount int)
	// Failed is called with the tagged error of a failed extraction.
	Failed(err error)
	// Notify carries a user-facing message (invalid path, connection error).
	Notify(message string)
}

// SlogReporter forwards extraction notices to a slog.Logger.
type SlogReporter struct {
	logger *slog.Logger
}

// NewSlogReporter creates a SlogReporter. A nil logger means slog.Default().
func NewSlogReporter(logger *slog.Logger) *SlogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogReporter{logger: logger}
}

func (r *SlogReporter) QueryStarted() {
	r.logger.Info("executing term query")
}

func (r *SlogReporter) Connected(path string) {
	r.logger.Info("connected to lute database", "path", path)
}

func (r *SlogReporter) Summarized(termCount, languageCount int) {
	r.logger.Info("extraction finished", "terms", termCount, "languages", languageCount)
}

func (r *SlogReporter) Failed(err error) {
	r.logger.Error("extraction failed", "error", err)
}

func (r *SlogReporter) Notify(message string) {
	r.logger.Warn(message)
}

// NopReporter discards all notices.
type NopReporter struct{}

func (NopReporter) QueryStarted()       {}
func (NopReporter) Connected(string)    {}
func (NopReporter) Summarized(int, int) {}
func (NopReporter) Failed(error)        {}
func (NopReporter) Notify(string)       {}
