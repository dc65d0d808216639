package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/unionconnect/go-wallet-admin/internal/config"
	"github.com/unionconnect/go-wallet-admin/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSchemaMocks(t *testing.T) (*Repository, sqlmock.Sqlmock, sqlmock.Sqlmock) {
	t.Helper()

	writeDB, writeMock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { writeDB.Close() })
	readDB, readMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { readDB.Close() })

	return NewSQLRepository(writeDB, readDB, config.Config{}), writeMock, readMock
}

func TestRepository_Migrate(t *testing.T) {
	files, err := schemaFiles()
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.IsIncreasing(t, files)

	t.Run("applies every file in name order on the write database", func(t *testing.T) {
		repo, writeMock, readMock := newSchemaMocks(t)
		writeMock.MatchExpectationsInOrder(true)
		for _, file := range files {
			content, err := schemaFS.ReadFile(file)
			require.NoError(t, err)
			writeMock.ExpectExec(string(content)).WillReturnResult(sqlmock.NewResult(0, 0))
		}

		require.NoError(t, repo.Migrate(context.Background()))
		assert.NoError(t, writeMock.ExpectationsWereMet())
		assert.NoError(t, readMock.ExpectationsWereMet())
	})

	t.Run("stops at the first failing file", func(t *testing.T) {
		repo, writeMock, _ := newSchemaMocks(t)
		content, err := schemaFS.ReadFile(files[0])
		require.NoError(t, err)
		writeMock.ExpectExec(string(content)).WillReturnError(errors.New("syntax error"))

		err = repo.Migrate(context.Background())
		assert.ErrorContains(t, err, "apply "+files[0])
		assert.NoError(t, writeMock.ExpectationsWereMet())
	})
}

func TestSchema_notifyTriggers(t *testing.T) {
	files, err := schemaFiles()
	require.NoError(t, err)

	var schema string
	for _, file := range files {
		content, err := schemaFS.ReadFile(file)
		require.NoError(t, err)
		schema += string(content)
	}

	for _, collection := range models.Collections {
		assert.Contains(t, schema, fmt.Sprintf("CREATE TRIGGER %q", ChannelName(collection)), collection)
	}
}
