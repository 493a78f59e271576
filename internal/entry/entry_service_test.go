package entry_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-paylink/internal/entry"
	entryerrors "go-paylink/internal/entry/errors"
	"go-paylink/internal/events"
	"go-paylink/internal/messaging/kafka"
	"go-paylink/internal/qr"

	entryMock "go-paylink/internal/entry/mock"
	kafkaMock "go-paylink/internal/messaging/kafka/mock"
	qrMock "go-paylink/internal/qr/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service entry.Service
	repo    *entryMock.MockRepository
	outbox  *kafkaMock.MockOutboxRepository
	decoder *qrMock.MockDecoder
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := entryMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)
	decoder := qrMock.NewMockDecoder(ctrl)

	svc := entry.NewServiceWithOutbox(db, repo, outboxRepo, decoder)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		outbox:  outboxRepo,
		decoder: decoder,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func validSubmitRequest() entry.SubmitEntryRequest {
	return entry.SubmitEntryRequest{
		LinkID:     uuid.New().String(),
		EmployeeID: uuid.New().String(),
		Name:       "Ravi Kumar",
		Amount:     250,
		Image:      []byte("fake-png-bytes"),
	}
}

func TestEntryService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("success - image mode decodes QR and extracts UPI id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validSubmitRequest()

		deps.decoder.EXPECT().
			Decode(req.Image).
			Return("upi://pay?pa=ravi@oksbi&pn=Ravi%20Kumar", nil)

		deps.repo.EXPECT().
			ExistsByLinkAndUPI(ctx, req.LinkID, "ravi@oksbi").
			Return(false, nil)

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *entry.Entry) error {
				assert.Equal(t, req.LinkID, e.LinkID.String())
				assert.Equal(t, req.EmployeeID, e.EmployeeID.String())
				assert.Equal(t, "ravi@oksbi", e.UpiID)
				assert.Equal(t, req.Amount, e.Amount)
				return nil
			})

		deps.outbox.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.outbox)

		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, "entry_submitted", ev.EventType)
				assert.Equal(t, "entry", ev.AggregateType)
				assert.Equal(t, events.EntrySubmittedTopic, ev.Topic)
				assert.Equal(t, kafka.OutboxStatusPending, ev.Status)
				return nil
			})

		res, err := deps.service.Submit(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "ravi@oksbi", res.UpiID)
		assert.NotEmpty(t, res.EntryID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success - explicit upi id skips decoder entirely", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validSubmitRequest()
		req.Image = nil
		req.UpiID = "  merchant@okaxis  "

		deps.repo.EXPECT().
			ExistsByLinkAndUPI(ctx, req.LinkID, "merchant@okaxis").
			Return(false, nil)

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		res, err := deps.service.Submit(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "merchant@okaxis", res.UpiID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("fail - missing name rejected before decode", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validSubmitRequest()
		req.Name = ""

		_, err := deps.service.Submit(ctx, req)

		assert.ErrorIs(t, err, entryerrors.ErrMissingRequiredFields)
	})

	t.Run("fail - zero amount rejected before decode", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validSubmitRequest()
		req.Amount = 0

		_, err := deps.service.Submit(ctx, req)

		assert.ErrorIs(t, err, entryerrors.ErrInvalidAmount)
	})

	t.Run("fail - neither image nor upi id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validSubmitRequest()
		req.Image = nil
		req.UpiID = "   "

		_, err := deps.service.Submit(ctx, req)

		assert.ErrorIs(t, err, entryerrors.ErrMissingPayload)
	})

	t.Run("fail - unreadable QR propagates decode error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validSubmitRequest()

		deps.decoder.EXPECT().
			Decode(req.Image).
			Return("", qr.ErrUnreadableQR)

		_, err := deps.service.Submit(ctx, req)

		assert.ErrorIs(t, err, qr.ErrUnreadableQR)
	})

	t.Run("fail - duplicate caught on fast path", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validSubmitRequest()
		req.Image = nil
		req.UpiID = "dup@okicici"

		deps.repo.EXPECT().
			ExistsByLinkAndUPI(ctx, req.LinkID, "dup@okicici").
			Return(true, nil)

		_, err := deps.service.Submit(ctx, req)

		assert.ErrorIs(t, err, entryerrors.ErrDuplicateSubmission)
	})

	t.Run("fail - concurrent loser maps unique violation to duplicate", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validSubmitRequest()
		req.Image = nil
		req.UpiID = "race@oksbi"

		// Fast path lolos: baris pemenang belum terlihat saat check
		deps.repo.EXPECT().
			ExistsByLinkAndUPI(ctx, req.LinkID, "race@oksbi").
			Return(false, nil)

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{
				Code:           "23505",
				ConstraintName: "uq_entries_link_upi",
			})

		_, err := deps.service.Submit(ctx, req)

		assert.ErrorIs(t, err, entryerrors.ErrDuplicateSubmission)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("fail - unrelated storage error is not swallowed", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validSubmitRequest()
		req.Image = nil
		req.UpiID = "ok@okhdfc"

		storageErr := errors.New("connection reset by peer")

		deps.repo.EXPECT().
			ExistsByLinkAndUPI(ctx, req.LinkID, "ok@okhdfc").
			Return(false, nil)

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(storageErr)

		_, err := deps.service.Submit(ctx, req)

		assert.ErrorIs(t, err, storageErr)
		assert.NotErrorIs(t, err, entryerrors.ErrDuplicateSubmission)
	})
}

func TestEntryService_GetByLink(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		linkID := uuid.New()
		rows := []entry.Entry{
			{ID: uuid.New(), LinkID: linkID, EmployeeID: uuid.New(), Name: "A", UpiID: "a@oksbi", Amount: 100},
			{ID: uuid.New(), LinkID: linkID, EmployeeID: uuid.New(), Name: "B", UpiID: "b@oksbi", Amount: 50},
		}

		deps.repo.EXPECT().
			FindByLink(ctx, linkID.String()).
			Return(rows, nil)

		res, err := deps.service.GetByLink(ctx, linkID.String())

		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, "a@oksbi", res[0].UpiID)
		assert.Equal(t, float64(50), res[1].Amount)
	})

	t.Run("empty result stays empty slice", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		linkID := uuid.New().String()

		deps.repo.EXPECT().
			FindByLink(ctx, linkID).
			Return([]entry.Entry{}, nil)

		res, err := deps.service.GetByLink(ctx, linkID)

		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.Empty(t, res)
	})
}

func TestEntryService_GetByEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		employeeID := uuid.New()
		rows := []entry.Entry{
			{ID: uuid.New(), LinkID: uuid.New(), EmployeeID: employeeID, Name: "C", UpiID: "c@okaxis", Amount: 75},
		}

		deps.repo.EXPECT().
			FindByEmployee(ctx, employeeID.String()).
			Return(rows, nil)

		res, err := deps.service.GetByEmployee(ctx, employeeID.String())

		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, employeeID.String(), res[0].EmployeeID)
	})

	t.Run("repo error propagates", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		repoErr := errors.New("query timeout")

		deps.repo.EXPECT().
			FindByEmployee(ctx, gomock.Any()).
			Return(nil, repoErr)

		_, err := deps.service.GetByEmployee(ctx, uuid.New().String())

		assert.ErrorIs(t, err, repoErr)
	})
}

// Entry row dan event outbox harus berbagi satu transaksi: tanpa itu,
// outbox yang gagal meninggalkan entry yatim dan retry caller mentok
// di duplicate guard.
func TestEntryService_SubmitTransactionBoundary(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (entry.Service, sqlmock.Sqlmock, *kafkaMock.MockOutboxRepository, *sql.DB) {
		t.Helper()
		ctrl := gomock.NewController(t)

		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)

		gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
		assert.NoError(t, err)

		outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)
		svc := entry.NewServiceWithOutbox(db, entry.NewRepository(gormDB), outboxRepo, qrMock.NewMockDecoder(ctrl))
		return svc, sqlMock, outboxRepo, db
	}

	explicitRequest := func() entry.SubmitEntryRequest {
		req := validSubmitRequest()
		req.Image = nil
		req.UpiID = "ravi@oksbi"
		return req
	}

	t.Run("insert rides the same tx as the outbox write", func(t *testing.T) {
		svc, sqlMock, outboxRepo, db := setup(t)
		defer db.Close()

		req := explicitRequest()

		sqlMock.ExpectQuery(`SELECT count\(\*\) FROM "entries"`).
			WithArgs(req.LinkID, req.UpiID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))

		sqlMock.ExpectBegin()
		sqlMock.ExpectExec(`INSERT INTO entries`).
			WithArgs(
				sqlmock.AnyArg(), req.LinkID, req.EmployeeID,
				req.Name, req.UpiID, req.Amount, sqlmock.AnyArg(),
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		outboxRepo.EXPECT().
			WithTx(gomock.Any()).
			Return(outboxRepo)
		outboxRepo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(nil)

		sqlMock.ExpectCommit()

		resp, err := svc.Submit(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, req.UpiID, resp.UpiID)

		// Urutan expectation membuktikan INSERT berada di antara BEGIN
		// dan COMMIT pada koneksi yang sama
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("outbox failure rolls the entry insert back", func(t *testing.T) {
		svc, sqlMock, outboxRepo, db := setup(t)
		defer db.Close()

		req := explicitRequest()

		sqlMock.ExpectQuery(`SELECT count\(\*\) FROM "entries"`).
			WithArgs(req.LinkID, req.UpiID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))

		sqlMock.ExpectBegin()
		sqlMock.ExpectExec(`INSERT INTO entries`).
			WithArgs(
				sqlmock.AnyArg(), req.LinkID, req.EmployeeID,
				req.Name, req.UpiID, req.Amount, sqlmock.AnyArg(),
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		outboxRepo.EXPECT().
			WithTx(gomock.Any()).
			Return(outboxRepo)
		outboxRepo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(errors.New("outbox insert failed"))

		sqlMock.ExpectRollback()

		_, err := svc.Submit(ctx, req)
		assert.Error(t, err)

		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}
