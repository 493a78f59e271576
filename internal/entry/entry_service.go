package entry

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	entryerrors "go-paylink/internal/entry/errors"
	"go-paylink/internal/events"
	"go-paylink/internal/messaging/kafka"
	"go-paylink/internal/qr"
	"go-paylink/internal/shared/contextutil"
	"go-paylink/internal/upi"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=entry_service.go -destination=mock/entry_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, req SubmitEntryRequest) (SubmitEntryResponse, error)
	GetByLink(ctx context.Context, linkID string) ([]EntryResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]EntryResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	outbox  kafka.OutboxRepository
	decoder qr.Decoder
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, decoder qr.Decoder, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, decoder, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	decoder qr.Decoder,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("entry.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("entry.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		outbox:  outboxRepo,
		decoder: decoder,
		logger:  l,
	}
}

// Submit menjalankan pipeline lengkap: validasi -> decode QR -> extract UPI id ->
// duplicate check -> persist. Mode explicit-id melewati decode/extract.
func (s *service) Submit(ctx context.Context, req SubmitEntryRequest) (SubmitEntryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("submit entry requested",
		zap.String("request_id", rid),
		zap.String("link_id", req.LinkID),
		zap.String("employee_id", req.EmployeeID),
	)

	// Fail fast sebelum decode: decode image itu mahal
	if err := validateSubmitRequest(req); err != nil {
		s.logger.Warn("submit entry validation failed", zap.String("request_id", rid), zap.Error(err))
		return SubmitEntryResponse{}, err
	}

	upiID := strings.TrimSpace(req.UpiID)
	if upiID == "" {
		decoded, err := s.decoder.Decode(req.Image)
		if err != nil {
			s.logger.Warn("submit entry qr decode failed", zap.String("request_id", rid), zap.Error(err))
			return SubmitEntryResponse{}, err
		}

		upiID, err = upi.Extract(decoded)
		if err != nil {
			s.logger.Warn("submit entry upi extraction failed", zap.String("request_id", rid), zap.Error(err))
			return SubmitEntryResponse{}, err
		}
	}

	// Fast path saja; penjaga sesungguhnya adalah unique index di store
	exists, err := s.repo.ExistsByLinkAndUPI(ctx, req.LinkID, upiID)
	if err != nil {
		s.logger.Error("submit entry duplicate check failed", zap.String("request_id", rid), zap.Error(err))
		return SubmitEntryResponse{}, err
	}
	if exists {
		s.logger.Info("submit entry duplicate rejected",
			zap.String("request_id", rid),
			zap.String("link_id", req.LinkID),
		)
		return SubmitEntryResponse{}, entryerrors.ErrDuplicateSubmission
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit entry begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return SubmitEntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ent := &Entry{
		ID:         uuid.New(),
		LinkID:     uuid.MustParse(req.LinkID),
		EmployeeID: uuid.MustParse(req.EmployeeID),
		Name:       req.Name,
		UpiID:      upiID,
		Amount:     req.Amount,
	}

	if err := qtx.Create(ctx, ent); err != nil {
		s.logger.Warn("submit entry persist failed", zap.String("request_id", rid), zap.Error(err))
		return SubmitEntryResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EntrySubmittedEvent{
			EventType:  "entry_submitted",
			RequestID:  rid,
			EntryID:    ent.ID.String(),
			LinkID:     req.LinkID,
			EmployeeID: req.EmployeeID,
			UpiID:      upiID,
			Amount:     req.Amount,
			OccurredAt: time.Now().UTC(),
		}

		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return SubmitEntryResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "entry",
			AggregateID:   ent.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EntrySubmittedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("submit entry outbox persist failed",
				zap.String("entry_id", ent.ID.String()),
				zap.Error(err),
			)
			return SubmitEntryResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return SubmitEntryResponse{}, err
	}

	s.logger.Info("submit entry success",
		zap.String("request_id", rid),
		zap.String("entry_id", ent.ID.String()),
		zap.String("link_id", req.LinkID),
	)

	return SubmitEntryResponse{
		Message: "Entry submitted successfully",
		EntryID: ent.ID.String(),
		UpiID:   upiID,
	}, nil
}

func (s *service) GetByLink(ctx context.Context, linkID string) ([]EntryResponse, error) {
	s.logger.Debug("get entries by link requested", zap.String("link_id", linkID))
	entries, err := s.repo.FindByLink(ctx, linkID)
	if err != nil {
		s.logger.Error("get entries by link failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return MapToListResponse(entries), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]EntryResponse, error) {
	s.logger.Debug("get entries by employee requested", zap.String("employee_id", employeeID))
	entries, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("get entries by employee failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return MapToListResponse(entries), nil
}

func validateSubmitRequest(req SubmitEntryRequest) error {
	if req.Name == "" || req.EmployeeID == "" || req.LinkID == "" {
		return entryerrors.ErrMissingRequiredFields
	}
	if req.Amount <= 0 {
		return entryerrors.ErrInvalidAmount
	}
	if _, err := uuid.Parse(req.LinkID); err != nil {
		return entryerrors.ErrMissingRequiredFields
	}
	if _, err := uuid.Parse(req.EmployeeID); err != nil {
		return entryerrors.ErrMissingRequiredFields
	}
	if len(req.Image) == 0 && strings.TrimSpace(req.UpiID) == "" {
		return entryerrors.ErrMissingPayload
	}
	return nil
}

func MapToResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:         e.ID.String(),
		LinkID:     e.LinkID.String(),
		EmployeeID: e.EmployeeID.String(),
		Name:       e.Name,
		UpiID:      e.UpiID,
		Amount:     e.Amount,
		CreatedAt:  e.CreatedAt,
	}
}

func MapToListResponse(entries []Entry) []EntryResponse {
	res := make([]EntryResponse, len(entries))
	for i, e := range entries {
		res[i] = MapToResponse(e)
	}
	return res
}
