package lute

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// TermRepository defines the read operations an extraction performs against
// an open Lute store.
type TermRepository interface {
	FindTerms(ctx context.Context, opts FilterOptions) ([]Term, error)
	FindLanguages(ctx context.Context) ([]Language, error)
}

// DBTermRepository implements TermRepository over a Lute SQLite connection.
type DBTermRepository struct {
	db *sqlx.DB
}

// NewDBTermRepository creates a new DBTermRepository.
func NewDBTermRepository(db *sqlx.DB) *DBTermRepository {
	return &DBTermRepository{db: db}
}

// FindTerms returns the terms matching opts, one flattened row per
// (term, tag, image) combination as the joins naturally produce them.
func (r *DBTermRepository) FindTerms(ctx context.Context, opts FilterOptions) ([]Term, error) {
	query, args := buildTermQuery(opts)

	var terms []Term
	if err := r.db.SelectContext(ctx, &terms, query, args...); err != nil {
		return nil, fmt.Errorf("load terms: %w", err)
	}
	return terms, nil
}

// FindLanguages returns every language in the store.
func (r *DBTermRepository) FindLanguages(ctx context.Context) ([]Language, error) {
	var languages []Language
	if err := r.db.SelectContext(ctx, &languages, "SELECT LgID, LgName FROM languages"); err != nil {
		return nil, fmt.Errorf("load languages: %w", err)
	}
	return languages, nil
}
