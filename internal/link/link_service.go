package link

import (
	"context"
	"encoding/json"
	"time"

	"go-paylink/internal/admin"
	adminerrors "go-paylink/internal/admin/errors"
	"go-paylink/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const LinkListingKey = "links:listing"

//go:generate mockgen -source=link_service.go -destination=mock/link_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLinkRequest) (CreateLinkResponse, error)
	GetAll(ctx context.Context) ([]LinkResponse, error)
	GetAllWithLatest(ctx context.Context) ([]AnnotatedLinkResponse, error)
	GetByID(ctx context.Context, id string) (LinkResponse, error)
}

type service struct {
	repo      Repository
	adminRepo admin.Repository
	rdb       *redis.Client
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(repo Repository, adminRepo admin.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("link.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("link.service")
	}
	return &service{
		repo:      repo,
		adminRepo: adminRepo,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, req CreateLinkRequest) (CreateLinkResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create link requested",
		zap.String("request_id", rid),
		zap.String("admin_id", req.AdminID),
		zap.String("title", req.Title),
	)

	exists, err := s.adminRepo.ExistsByAdminID(ctx, req.AdminID)
	if err != nil {
		s.logger.Error("create link admin lookup failed", zap.String("request_id", rid), zap.Error(err))
		return CreateLinkResponse{}, err
	}
	if !exists {
		s.logger.Warn("create link unknown admin", zap.String("admin_id", req.AdminID))
		return CreateLinkResponse{}, adminerrors.ErrInvalidAdminID
	}

	lnk := &Link{
		ID:        uuid.New(),
		Title:     req.Title,
		CreatedBy: uuid.MustParse(req.AdminID),
	}

	if err := s.repo.Create(ctx, lnk); err != nil {
		s.logger.Error("create link persist failed", zap.String("request_id", rid), zap.Error(err))
		return CreateLinkResponse{}, mapRepositoryError(err)
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, LinkListingKey).Err(); err != nil {
			s.logger.Error("failed to invalidate link listing cache",
				zap.Error(err),
				zap.String("key", LinkListingKey),
			)
		}
	}

	s.logger.Info("create link success",
		zap.String("request_id", rid),
		zap.String("link_id", lnk.ID.String()),
	)

	return CreateLinkResponse{Link: "/employee/links/" + lnk.ID.String()}, nil
}

func (s *service) GetAll(ctx context.Context) ([]LinkResponse, error) {
	s.logger.Debug("get all links requested")
	links, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all links failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]LinkResponse, len(links))
	for i, l := range links {
		res[i] = mapToResponse(l)
	}
	return res, nil
}

// GetAllWithLatest mengembalikan semua link dalam urutan kebalikan dari
// creation order, masing-masing dengan flag isLatest terhadap link terbaru
// di seluruh store.
func (s *service) GetAllWithLatest(ctx context.Context) ([]AnnotatedLinkResponse, error) {
	// 1. Cek Redis
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, LinkListingKey).Result(); err == nil {
			var resp []AnnotatedLinkResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight untuk handle traffic tinggi saat listing dibuka
	v, err, _ := s.sf.Do(LinkListingKey, func() (interface{}, error) {
		links, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := annotate(links)

		// 3. Simpan ke Redis (TTL pendek; listing berubah saat admin membuat link)
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, LinkListingKey, jsonData, 5*time.Minute)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]AnnotatedLinkResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LinkResponse, error) {
	s.logger.Debug("get link by id requested", zap.String("link_id", id))
	lnk, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get link by id failed", zap.Error(err))
		return LinkResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*lnk), nil
}

// annotate menentukan link terbaru lalu membalik urutan listing.
// FindAll mengembalikan created_at ASC; tiebreak pada created_at identik
// mengikuti FindLatest: id terbesar menang.
func annotate(links []Link) []AnnotatedLinkResponse {
	resp := make([]AnnotatedLinkResponse, 0, len(links))
	if len(links) == 0 {
		return resp
	}

	latest := links[0]
	for _, l := range links[1:] {
		if l.CreatedAt.After(latest.CreatedAt) {
			latest = l
			continue
		}
		if l.CreatedAt.Equal(latest.CreatedAt) && l.ID.String() > latest.ID.String() {
			latest = l
		}
	}

	for i := len(links) - 1; i >= 0; i-- {
		l := links[i]
		resp = append(resp, AnnotatedLinkResponse{
			LinkResponse: mapToResponse(l),
			IsLatest:     l.ID == latest.ID,
		})
	}
	return resp
}

func mapToResponse(l Link) LinkResponse {
	return LinkResponse{
		ID:        l.ID.String(),
		Title:     l.Title,
		CreatedBy: l.CreatedBy.String(),
		CreatedAt: l.CreatedAt,
	}
}
