package connection_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/Arun-hash30/Attendence-helix/internal/shared/connection"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type probe struct {
	ID   uint
	Name string
}

func TestWithTx_RunsOnTransaction(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer sqlDB.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "probes" SET "name"=$1 WHERE id = $2`)).
		WithArgs("updated", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ctx := context.Background()
	tx, err := sqlDB.BeginTx(ctx, nil)
	assert.NoError(t, err)

	res := connection.WithTx(ctx, gdb, tx).Model(&probe{}).Where("id = ?", 1).Update("name", "updated")
	assert.NoError(t, res.Error)
	assert.Equal(t, int64(1), res.RowsAffected)

	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
