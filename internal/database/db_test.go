package database

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liozur/lutextract/internal/testutil"
)

func TestOpen(t *testing.T) {
	path, seed := testutil.SetupLuteDB(t, t.TempDir())
	testutil.InsertLanguage(t, seed, 1, "German")

	got, err := Open(path)
	require.NoError(t, err)
	require.NotNil(t, got)
	defer got.Close()

	assert.Equal(t, "sqlite3", got.DriverName())

	var count int
	require.NoError(t, got.Get(&count, "SELECT COUNT(*) FROM languages"))
	assert.Equal(t, 1, count)
}

func TestOpen_ReadOnly(t *testing.T) {
	path, _ := testutil.SetupLuteDB(t, t.TempDir())

	got, err := Open(path)
	require.NoError(t, err)
	defer got.Close()

	_, err = got.Exec("INSERT INTO languages (LgID, LgName) VALUES (1, 'German')")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "readonly")
}

func TestOpen_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lute.db")

	got, err := Open(path)
	require.Error(t, err)
	assert.Nil(t, got)
}

func TestIsLockedError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil",
			err:  nil,
			want: false,
		},
		{
			name: "database is locked",
			err:  errors.New("database is locked"),
			want: true,
		},
		{
			name: "database table is locked",
			err:  errors.New("database table is locked: words"),
			want: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("file is not a database"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isLockedError(tt.err))
		})
	}
}
