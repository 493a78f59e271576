package admin

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=admin_repo.go -destination=mock/admin_repo_mock.go -package=mock
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*Admin, error)
	ExistsByAdminID(ctx context.Context, adminID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Admin, error) {
	var adm Admin
	err := r.db.WithContext(ctx).
		First(&adm, "email = ?", email).Error
	return &adm, err
}

func (r *repository) ExistsByAdminID(ctx context.Context, adminID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Admin{}).
		Where("admin_id = ?", adminID).
		Count(&count).Error
	return count > 0, err
}
