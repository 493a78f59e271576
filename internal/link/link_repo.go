package link

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=link_repo.go -destination=mock/link_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, link *Link) error
	FindAll(ctx context.Context) ([]Link, error)
	FindByID(ctx context.Context, id string) (*Link, error)
	FindByIDs(ctx context.Context, ids []string) ([]Link, error)
	FindLatest(ctx context.Context) (*Link, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, link *Link) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Link, error) {
	var links []Link
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&links).Error
	return links, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Link, error) {
	var link Link
	err := r.db.WithContext(ctx).
		First(&link, "id = ?", id).Error
	return &link, err
}

func (r *repository) FindByIDs(ctx context.Context, ids []string) ([]Link, error) {
	var links []Link
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("created_at DESC").
		Find(&links).Error
	return links, err
}

// FindLatest mengambil link terbaru di seluruh store.
// Tiebreak pada created_at identik: id terbesar menang, supaya deterministik.
func (r *repository) FindLatest(ctx context.Context) (*Link, error) {
	var link Link
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		First(&link).Error
	return &link, err
}
