package entry_test

import (
	"context"
	"database/sql"
	"testing"

	"go-paylink/internal/entry"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepoTest(t *testing.T) (entry.Repository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	return entry.NewRepository(gormDB), mock, db
}

func TestEntryRepository_Create(t *testing.T) {
	t.Run("with tx - insert runs on the transaction connection", func(t *testing.T) {
		repo, mock, db := setupRepoTest(t)
		defer db.Close()

		ent := &entry.Entry{
			ID:         uuid.New(),
			LinkID:     uuid.New(),
			EmployeeID: uuid.New(),
			Name:       "Ravi Kumar",
			UpiID:      "ravi@oksbi",
			Amount:     250,
		}

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO entries`).
			WithArgs(ent.ID, ent.LinkID, ent.EmployeeID, ent.Name, ent.UpiID, ent.Amount, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := db.Begin()
		assert.NoError(t, err)

		err = repo.WithTx(tx).Create(context.Background(), ent)
		assert.NoError(t, err)
		assert.NoError(t, tx.Commit())

		assert.NoError(t, mock.ExpectationsWereMet())
		assert.False(t, ent.CreatedAt.IsZero())
	})

	t.Run("with tx - insert failure surfaces before commit", func(t *testing.T) {
		repo, mock, db := setupRepoTest(t)
		defer db.Close()

		ent := &entry.Entry{
			ID:         uuid.New(),
			LinkID:     uuid.New(),
			EmployeeID: uuid.New(),
			Name:       "Ravi Kumar",
			UpiID:      "ravi@oksbi",
			Amount:     250,
		}

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO entries`).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		tx, err := db.Begin()
		assert.NoError(t, err)

		err = repo.WithTx(tx).Create(context.Background(), ent)
		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.NoError(t, tx.Rollback())

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEntryRepository_SummarizeByEmployeeForLink(t *testing.T) {
	// Pattern hanya match "FROM entries JOIN employees": LEFT JOIN akan
	// gagal di sini. Entry yang employee record-nya hilang memang terbuang.
	joinPattern := `FROM entries JOIN employees ON employees\.employee_id = entries\.employee_id`

	t.Run("groups per employee through the inner join", func(t *testing.T) {
		repo, mock, db := setupRepoTest(t)
		defer db.Close()

		linkID := uuid.NewString()

		rows := sqlmock.NewRows([]string{"employee_id", "name", "entry_count", "employee_total"}).
			AddRow(uuid.NewString(), "Asha Verma", int64(2), 350.0).
			AddRow(uuid.NewString(), "Binod Singh", int64(1), 75.0)

		mock.ExpectQuery(joinPattern).
			WithArgs(linkID).
			WillReturnRows(rows)

		got, err := repo.SummarizeByEmployeeForLink(context.Background(), linkID)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, "Asha Verma", got[0].Name)
		assert.Equal(t, int64(2), got[0].EntryCount)
		assert.Equal(t, 350.0, got[0].EmployeeTotal)
		assert.Equal(t, 75.0, got[1].EmployeeTotal)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("all entries orphaned yields zero rows", func(t *testing.T) {
		repo, mock, db := setupRepoTest(t)
		defer db.Close()

		linkID := uuid.NewString()

		mock.ExpectQuery(joinPattern).
			WithArgs(linkID).
			WillReturnRows(sqlmock.NewRows([]string{"employee_id", "name", "entry_count", "employee_total"}))

		got, err := repo.SummarizeByEmployeeForLink(context.Background(), linkID)
		assert.NoError(t, err)
		assert.Empty(t, got)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
