package report

import (
	"context"
	"errors"

	"go-paylink/internal/entry"
	"go-paylink/internal/link"
	linkerrors "go-paylink/internal/link/errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	LinksByEmployee(ctx context.Context, employeeID string, page, limit int) (LinksByEmployeeResponse, error)
	EntriesByEmployeeAndLink(ctx context.Context, employeeID, linkID string, page, limit int) (EntriesByEmployeeAndLinkResponse, error)
	LinkSummary(ctx context.Context, linkID string) (LinkSummaryResponse, error)
}

type service struct {
	entryRepo entry.Repository
	linkRepo  link.Repository
	logger    *zap.Logger
}

func NewService(entryRepo entry.Repository, linkRepo link.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{
		entryRepo: entryRepo,
		linkRepo:  linkRepo,
		logger:    l,
	}
}

// LinksByEmployee menghitung distinct set link yang pernah disubmit employee,
// lalu melakukan pagination di atas set yang SUDAH terurut leksikografis
// supaya page boundary stabil. Page hasil fetch di-sort ulang created_at DESC
// untuk display.
func (s *service) LinksByEmployee(
	ctx context.Context,
	employeeID string,
	page, limit int,
) (LinksByEmployeeResponse, error) {
	s.logger.Debug("links by employee requested",
		zap.String("employee_id", employeeID),
		zap.Int("page", page),
		zap.Int("limit", limit),
	)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	ids, err := s.entryRepo.DistinctLinkIDsByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("links by employee distinct query failed", zap.Error(err))
		return LinksByEmployeeResponse{}, err
	}

	total := len(ids)
	if total == 0 {
		return LinksByEmployeeResponse{
			Links: []link.LinkResponse{},
			Total: 0,
			Page:  1,
			Pages: 0,
		}, nil
	}

	pages := (total + limit - 1) / limit

	skip := (page - 1) * limit
	if skip > total {
		skip = total
	}
	end := skip + limit
	if end > total {
		end = total
	}
	pagedIDs := ids[skip:end]

	links := []link.Link{}
	if len(pagedIDs) > 0 {
		links, err = s.linkRepo.FindByIDs(ctx, pagedIDs)
		if err != nil {
			s.logger.Error("links by employee fetch failed", zap.Error(err))
			return LinksByEmployeeResponse{}, err
		}
	}

	resp := make([]link.LinkResponse, len(links))
	for i, l := range links {
		resp[i] = link.LinkResponse{
			ID:        l.ID.String(),
			Title:     l.Title,
			CreatedBy: l.CreatedBy.String(),
			CreatedAt: l.CreatedAt,
		}
	}

	return LinksByEmployeeResponse{
		Links: resp,
		Total: int64(total),
		Page:  page,
		Pages: pages,
	}, nil
}

// EntriesByEmployeeAndLink mengembalikan satu page entries (created_at DESC)
// beserta total row count dan grand sum amount untuk SEMUA row yang match.
// Flag isLatest dihitung terhadap link terbaru di seluruh store; filter
// employee sengaja diabaikan untuk flag ini, mengikuti perilaku yang sudah
// dikontrak caller.
func (s *service) EntriesByEmployeeAndLink(
	ctx context.Context,
	employeeID, linkID string,
	page, limit int,
) (EntriesByEmployeeAndLinkResponse, error) {
	s.logger.Debug("entries by employee and link requested",
		zap.String("employee_id", employeeID),
		zap.String("link_id", linkID),
		zap.Int("page", page),
		zap.Int("limit", limit),
	)

	if page < 1 {
		page = 1
	}

	var (
		total       int64
		totalAmount float64
		entries     []entry.Entry
		latest      *link.Link
	)

	// Empat query read-only independen; jalankan paralel seperti
	// aggregate lain di façade ini
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		total, err = s.entryRepo.CountByEmployeeAndLink(gctx, employeeID, linkID)
		return err
	})
	g.Go(func() error {
		var err error
		entries, err = s.entryRepo.FindPageByEmployeeAndLink(gctx, employeeID, linkID, (page-1)*limit, limit)
		return err
	})
	g.Go(func() error {
		var err error
		totalAmount, err = s.entryRepo.SumAmountByEmployeeAndLink(gctx, employeeID, linkID)
		return err
	})
	g.Go(func() error {
		var err error
		latest, err = s.linkRepo.FindLatest(gctx)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Store tanpa link sama sekali: flag saja yang false
			latest = nil
			return nil
		}
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("entries by employee and link failed", zap.Error(err))
		return EntriesByEmployeeAndLinkResponse{}, err
	}

	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}

	return EntriesByEmployeeAndLinkResponse{
		Entries:     entry.MapToListResponse(entries),
		Total:       total,
		TotalAmount: totalAmount,
		IsLatest:    latest != nil && latest.ID.String() == linkID,
		Page:        page,
		Pages:       pages,
	}, nil
}

// LinkSummary mengambil title link dan agregat per-employee secara paralel.
// GrandTotal = jumlah seluruh subtotal per employee, yang harus sama dengan
// sum amount semua entries untuk link tersebut.
func (s *service) LinkSummary(ctx context.Context, linkID string) (LinkSummaryResponse, error) {
	s.logger.Debug("link summary requested", zap.String("link_id", linkID))

	var (
		lnk  *link.Link
		rows []entry.EmployeeSummaryRow
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		lnk, err = s.linkRepo.FindByID(gctx, linkID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return linkerrors.ErrLinkNotFound
		}
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = s.entryRepo.SummarizeByEmployeeForLink(gctx, linkID)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn("link summary failed", zap.String("link_id", linkID), zap.Error(err))
		return LinkSummaryResponse{}, err
	}

	if rows == nil {
		rows = []entry.EmployeeSummaryRow{}
	}

	var grandTotal float64
	for _, r := range rows {
		grandTotal += r.EmployeeTotal
	}

	return LinkSummaryResponse{
		Title:      lnk.Title,
		Rows:       rows,
		GrandTotal: grandTotal,
	}, nil
}
