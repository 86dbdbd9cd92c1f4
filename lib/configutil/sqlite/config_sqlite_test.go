package configsqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSchema = `create table if not exists thing (id text primary key);`

func TestOpenDB(t *testing.T) {
	{
		_, err := Struct{}.OpenDB(testSchema)
		require.Error(t, err)
	}

	path := filepath.Join(t.TempDir(), "nested", "test.db")
	db, err := Struct{File: path}.OpenDB(testSchema)
	require.NoError(t, err)

	_, err = db.Exec("insert into thing (id) values ('a')")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// reopening applies the schema again without clobbering data
	db, err = Struct{File: path}.OpenDB(testSchema)
	require.NoError(t, err)
	defer db.Close()

	var count int
	err = db.QueryRow("select count(*) from thing").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
