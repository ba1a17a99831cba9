// Package testutil provides shared test helpers for building throwaway Lute
// database files.
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// luteSchema is the subset of the Lute schema the extractor consumes.
const luteSchema = `
CREATE TABLE languages (
	LgID INTEGER PRIMARY KEY,
	LgName TEXT NOT NULL
);
CREATE TABLE words (
	WoID INTEGER PRIMARY KEY,
	WoLgID INTEGER NOT NULL,
	WoText TEXT NOT NULL,
	WoTextLC TEXT NOT NULL,
	WoStatus INTEGER NOT NULL,
	WoTranslation TEXT,
	WoRomanization TEXT,
	WoTokenCount INTEGER NOT NULL DEFAULT 1,
	WoCreated DATETIME NOT NULL,
	WoStatusChanged DATETIME NOT NULL
);
CREATE TABLE tags (
	TgID INTEGER PRIMARY KEY,
	TgText TEXT NOT NULL,
	TgComment TEXT
);
CREATE TABLE wordtags (
	WtWoID INTEGER NOT NULL,
	WtTgID INTEGER NOT NULL
);
CREATE TABLE wordimages (
	WiID INTEGER PRIMARY KEY,
	WiWoID INTEGER NOT NULL,
	WiSource TEXT
);
CREATE TABLE wordparents (
	WpWoID INTEGER NOT NULL,
	WpParentWoID INTEGER NOT NULL
);
`

// Word describes one seeded row of the words table. A nil Translation is
// stored as NULL.
type Word struct {
	ID            int64
	LanguageID    int64
	Text          string
	TextLC        string
	Status        int
	Translation   *string
	Romanization  *string
	TokenCount    int
	Created       string // "2006-01-02 15:04:05"
	StatusChanged string // "2006-01-02 15:04:05"
}

// SetupLuteDB creates a lute.db file under dir with the consumed subset of
// the Lute schema and returns its path together with a read-write handle for
// seeding. The handle is closed automatically when the test finishes.
func SetupLuteDB(t *testing.T, dir string) (string, *sql.DB) {
	t.Helper()

	path := filepath.Join(dir, "lute.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(luteSchema)
	require.NoError(t, err)

	return path, db
}

// InsertLanguage seeds one languages row.
func InsertLanguage(t *testing.T, db *sql.DB, id int64, name string) {
	t.Helper()

	_, err := db.Exec("INSERT INTO languages (LgID, LgName) VALUES (?, ?)", id, name)
	require.NoError(t, err)
}

// InsertWord seeds one words row.
func InsertWord(t *testing.T, db *sql.DB, w Word) {
	t.Helper()

	if w.TextLC == "" {
		w.TextLC = w.Text
	}
	if w.TokenCount == 0 {
		w.TokenCount = 1
	}
	if w.StatusChanged == "" {
		w.StatusChanged = w.Created
	}

	_, err := db.Exec(`INSERT INTO words
		(WoID, WoLgID, WoText, WoTextLC, WoStatus, WoTranslation, WoRomanization, WoTokenCount, WoCreated, WoStatusChanged)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		w.ID, w.LanguageID, w.Text, w.TextLC, w.Status, w.Translation, w.Romanization, w.TokenCount, w.Created, w.StatusChanged)
	require.NoError(t, err)
}

// InsertTag seeds one tags row and links it to the given word.
func InsertTag(t *testing.T, db *sql.DB, tagID, wordID int64, text, comment string) {
	t.Helper()

	_, err := db.Exec("INSERT INTO tags (TgID, TgText, TgComment) VALUES (?, ?, ?)", tagID, text, comment)
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO wordtags (WtWoID, WtTgID) VALUES (?, ?)", wordID, tagID)
	require.NoError(t, err)
}

// InsertImage seeds one wordimages row for the given word.
func InsertImage(t *testing.T, db *sql.DB, wordID int64, source string) {
	t.Helper()

	_, err := db.Exec("INSERT INTO wordimages (WiWoID, WiSource) VALUES (?, ?)", wordID, source)
	require.NoError(t, err)
}

// InsertParent links child to parent in the wordparents table.
func InsertParent(t *testing.T, db *sql.DB, childID, parentID int64) {
	t.Helper()

	_, err := db.Exec("INSERT INTO wordparents (WpWoID, WpParentWoID) VALUES (?, ?)", childID, parentID)
	require.NoError(t, err)
}
