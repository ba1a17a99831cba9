package lute

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var termColumns = []string{
	"WoText", "WoTranslation", "WoLgID", "WoCreated", "TgText",
	"WoStatusChanged", "WoTextLC", "WoID", "WoStatus", "WoRomanization",
	"WoTokenCount", "WiSource", "TgComment",
}

func TestDBTermRepository_FindTerms(t *testing.T) {
	created := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	cutoff := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		opts      FilterOptions
		setupMock func(mock sqlmock.Sqlmock)
		want      []Term
		wantErr   bool
	}{
		{
			name: "maps all consumed columns",
			opts: FilterOptions{Cutoff: cutoff},
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(termColumns).
					AddRow("Hund", "dog", int64(1), created, "noun", created, "hund", int64(10), 1, "", 1, "hund.jpg", "animals").
					AddRow("Katze", "cat", int64(1), created, nil, created, "katze", int64(11), 3, nil, 1, nil, nil)
				mock.ExpectQuery("FROM words").
					WithArgs("2026-08-01").
					WillReturnRows(rows)
			},
			want: []Term{
				{
					Text:          "Hund",
					Translation:   "dog",
					LanguageID:    1,
					Created:       created,
					Tag:           sql.NullString{String: "noun", Valid: true},
					StatusChanged: created,
					TextLC:        "hund",
					ID:            10,
					Status:        1,
					Romanization:  sql.NullString{String: "", Valid: true},
					TokenCount:    1,
					ImageSource:   sql.NullString{String: "hund.jpg", Valid: true},
					TagComment:    sql.NullString{String: "animals", Valid: true},
				},
				{
					Text:          "Katze",
					Translation:   "cat",
					LanguageID:    1,
					Created:       created,
					StatusChanged: created,
					TextLC:        "katze",
					ID:            11,
					Status:        3,
					TokenCount:    1,
				},
			},
		},
		{
			name: "no matches",
			opts: FilterOptions{Cutoff: cutoff},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM words").
					WithArgs("2026-08-01").
					WillReturnRows(sqlmock.NewRows(termColumns))
			},
			want: nil,
		},
		{
			name: "db error",
			opts: FilterOptions{Cutoff: cutoff},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM words").
					WithArgs("2026-08-01").
					WillReturnError(fmt.Errorf("file is not a database"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			sqlxDB := sqlx.NewDb(db, "sqlite3")
			repo := NewDBTermRepository(sqlxDB)
			tt.setupMock(mock)

			got, err := repo.FindTerms(context.Background(), tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBTermRepository_FindLanguages(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      []Language
		wantErr   bool
	}{
		{
			name: "returns all languages",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"LgID", "LgName"}).
					AddRow(int64(1), "German").
					AddRow(int64(2), "Spanish")
				mock.ExpectQuery("SELECT LgID, LgName FROM languages").WillReturnRows(rows)
			},
			want: []Language{
				{ID: 1, Name: "German"},
				{ID: 2, Name: "Spanish"},
			},
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT LgID, LgName FROM languages").
					WillReturnError(fmt.Errorf("disk I/O error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			sqlxDB := sqlx.NewDb(db, "sqlite3")
			repo := NewDBTermRepository(sqlxDB)
			tt.setupMock(mock)

			got, err := repo.FindLanguages(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
