package lute

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Connector opens a database connection for a store path.
type Connector func(path string) (*sqlx.DB, error)

// Extractor retrieves filtered terms and their referenced languages from a
// Lute store. Each Extract call opens its own connection and closes it
// before returning; no state survives across calls.
type Extractor struct {
	connect  Connector
	reporter Reporter
}

// NewExtractor creates an Extractor. A nil reporter discards all notices.
func NewExtractor(connect Connector, reporter Reporter) *Extractor {
	if reporter == nil {
		reporter = NopReporter{}
	}
	return &Extractor{
		connect:  connect,
		reporter: reporter,
	}
}

// Extract opens the store at path, runs the filtered term query and returns
// the matching terms together with the languages they reference.
//
// Failures are tagged: a *ValidationError when path does not name a lute.db
// file, a *StoreError when opening the connection or executing a query
// fails. An empty Result with a nil error means the store genuinely had no
// matching terms.
func (e *Extractor) Extract(ctx context.Context, path string, opts FilterOptions) (Result, error) {
	if !strings.HasSuffix(path, StoreFilename) {
		err := &ValidationError{Path: path}
		e.reporter.Notify(fmt.Sprintf("Please select a %s file", StoreFilename))
		e.reporter.Failed(err)
		return Result{}, err
	}

	db, err := e.connect(path)
	if err != nil {
		return Result{}, e.fail("open lute database", err)
	}
	defer func() { _ = db.Close() }()
	e.reporter.Connected(path)

	repo := NewDBTermRepository(db)
	e.reporter.QueryStarted()
	terms, err := repo.FindTerms(ctx, opts)
	if err != nil {
		return Result{}, e.fail("query terms", err)
	}

	languages, err := referencedLanguages(ctx, repo, terms)
	if err != nil {
		return Result{}, e.fail("query languages", err)
	}

	e.reporter.Summarized(len(terms), len(languages))
	return Result{Terms: terms, Languages: languages}, nil
}

// fail tags err as a StoreError and routes it through the reporter.
func (e *Extractor) fail(op string, err error) *StoreError {
	storeErr := &StoreError{Op: op, Err: err}
	e.reporter.Failed(storeErr)
	e.reporter.Notify(fmt.Sprintf("Database connection error: %s", err))
	return storeErr
}

// referencedLanguages restricts the store's languages to the identifiers
// present in terms, preserving (identifier, name) pairs without duplicates.
func referencedLanguages(ctx context.Context, repo TermRepository, terms []Term) ([]Language, error) {
	used := make(map[int64]struct{}, len(terms))
	for _, term := range terms {
		used[term.LanguageID] = struct{}{}
	}

	all, err := repo.FindLanguages(ctx)
	if err != nil {
		return nil, err
	}

	languages := make([]Language, 0, len(used))
	for _, lang := range all {
		if _, ok := used[lang.ID]; ok {
			languages = append(languages, lang)
		}
	}
	return languages, nil
}
