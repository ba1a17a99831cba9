package lute

import (
	"strings"
	"time"
)

// StoreFilename is the file name a Lute database must have. Extraction
// refuses paths that do not end with it.
const StoreFilename = "lute.db"

// WellKnownThreshold is the highest term status that is still considered
// "learning". Statuses above it mark well-known terms, which are excluded
// unless FilterOptions.IncludeWellKnown is set.
const WellKnownThreshold = 5

// cutoffDateFormat is the layout the cutoff date is bound with. The
// comparison in the query is date-only; any time component of the cutoff is
// dropped.
const cutoffDateFormat = "2006-01-02"

// FilterOptions selects which terms an extraction returns. The zero value is
// the most restrictive configuration: empty translations excluded, well-known
// terms excluded, cutoff = today.
type FilterOptions struct {
	// ParentsOnly is accepted for compatibility with stored option sets.
	// The parent-chain restriction is applied on every extraction; the flag
	// does not change which rows qualify.
	ParentsOnly bool

	// AllowEmptyTranslation keeps terms whose translation is set but empty.
	// Terms with no translation at all are never returned.
	AllowEmptyTranslation bool

	// IncludeWellKnown keeps terms with a status above WellKnownThreshold.
	IncludeWellKnown bool

	// Cutoff is the inclusive lower bound on term creation date. A zero
	// Cutoff means today.
	Cutoff time.Time
}

// cutoff returns the effective cutoff date, defaulting to today.
func (o FilterOptions) cutoff() time.Time {
	if o.Cutoff.IsZero() {
		return time.Now()
	}
	return o.Cutoff
}

// selectTermsBase selects the consumed term fields joined against the tag
// and image side-tables. Column names and join structure must match the
// Lute schema byte-for-byte; the two wordparents joins back the parent-chain
// predicate and are always present so the clause is well-formed.
const selectTermsBase = `SELECT
	w.WoText,
	w.WoTranslation,
	w.WoLgID,
	w.WoCreated,
	t.TgText,
	w.WoStatusChanged,
	w.WoTextLC,
	w.WoID,
	w.WoStatus,
	w.WoRomanization,
	w.WoTokenCount,
	wi.WiSource,
	t.TgComment
FROM words AS w
LEFT JOIN wordimages AS wi ON w.WoID = wi.WiWoID
LEFT JOIN wordtags AS wt ON wi.WiWoID = wt.WtWoID
LEFT JOIN tags AS t ON wt.WtTgID = t.TgID
LEFT JOIN wordparents AS wp_child ON w.WoID = wp_child.WpWoID
LEFT JOIN wordparents AS wp_parent ON w.WoID = wp_parent.WpParentWoID`

// termPredicates returns the WHERE clauses for opts together with their bind
// arguments. The clause list is closed: every extraction is a conjunction of
// a subset of these six conditions, toggled only by opts.
func termPredicates(opts FilterOptions) ([]string, []any) {
	conds := []string{
		// A translation must be present, unconditionally.
		"w.WoTranslation IS NOT NULL",
		// Parent-chain condition: the term has no parent link, or the term
		// is itself a parent. Applied on every extraction.
		"(wp_child.WpParentWoID IS NULL OR wp_parent.WpParentWoID IS NOT NULL)",
		// Inclusive, date-only creation cutoff, bound as a parameter.
		"date(w.WoCreated) >= date(?)",
	}
	args := []any{opts.cutoff().Format(cutoffDateFormat)}

	if !opts.AllowEmptyTranslation {
		conds = append(conds, "w.WoTranslation <> ''")
	}
	if !opts.IncludeWellKnown {
		conds = append(conds, "w.WoStatus <= 5")
	}
	// Status 0 ("unknown") terms are never returned.
	conds = append(conds, "1 <= w.WoStatus")

	return conds, args
}

// buildTermQuery assembles the full term query for opts. No ORDER BY is
// imposed: result order is whatever the store returns.
func buildTermQuery(opts FilterOptions) (string, []any) {
	conds, args := termPredicates(opts)
	return selectTermsBase + "\nWHERE " + strings.Join(conds, "\n  AND "), args
}
