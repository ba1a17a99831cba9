// Package lute reads vocabulary terms and their languages from a Lute
// database file. The extractor is read-only: it never creates, updates or
// deletes rows in the store.
package lute

import (
	"database/sql"
	"time"
)

// Term is one vocabulary entry row from the Lute store. Field order matches
// the column order of the term query. Fields populated through LEFT joins
// (tag, image source, tag comment) are nullable: a term without tags or
// images still appears, with those fields unset.
type Term struct {
	Text          string         `db:"WoText"`
	Translation   string         `db:"WoTranslation"`
	LanguageID    int64          `db:"WoLgID"`
	Created       time.Time      `db:"WoCreated"`
	Tag           sql.NullString `db:"TgText"`
	StatusChanged time.Time      `db:"WoStatusChanged"`
	TextLC        string         `db:"WoTextLC"`
	ID            int64          `db:"WoID"`
	Status        int            `db:"WoStatus"`
	Romanization  sql.NullString `db:"WoRomanization"`
	TokenCount    int            `db:"WoTokenCount"`
	ImageSource   sql.NullString `db:"WiSource"`
	TagComment    sql.NullString `db:"TgComment"`
}

// Language is an (identifier, display name) pair from the Lute store.
type Language struct {
	ID   int64  `db:"LgID"`
	Name string `db:"LgName"`
}

// Result is the outcome of a successful extraction: the filtered terms and
// the languages they reference. Languages contains exactly the distinct
// language identifiers present in Terms, each with its display name.
type Result struct {
	Terms     []Term
	Languages []Language
}
