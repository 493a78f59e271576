package admin_test

import (
	"context"
	"testing"

	"go-paylink/internal/admin"
	adminerrors "go-paylink/internal/admin/errors"
	adminMock "go-paylink/internal/admin/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupServiceTest(t *testing.T) (admin.Service, *adminMock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := adminMock.NewMockRepository(ctrl)
	return admin.NewService(repo), repo
}

func TestAdminService_Login(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin-secret"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	t.Run("success - token carries admin role and stable id", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		adm := &admin.Admin{
			ID:       uuid.New(),
			AdminID:  uuid.New(),
			Email:    "boss@example.com",
			Password: string(hashed),
		}

		repo.EXPECT().
			FindByEmail(ctx, "boss@example.com").
			Return(adm, nil)

		res, err := svc.Login(ctx, admin.LoginRequest{
			Email:    "boss@example.com",
			Password: "admin-secret",
		})

		assert.NoError(t, err)
		assert.Equal(t, adm.AdminID.String(), res.AdminID)

		parsed, err := jwt.Parse(res.AccessToken, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		assert.NoError(t, err)

		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, "admin", claims["role"])
		assert.Equal(t, adm.AdminID.String(), claims["admin_id"])
	})

	t.Run("fail - wrong password", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		repo.EXPECT().
			FindByEmail(ctx, "boss@example.com").
			Return(&admin.Admin{Password: string(hashed)}, nil)

		_, err := svc.Login(ctx, admin.LoginRequest{
			Email:    "boss@example.com",
			Password: "nope",
		})

		assert.ErrorIs(t, err, adminerrors.ErrInvalidCredentials)
	})

	t.Run("fail - unknown email", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		repo.EXPECT().
			FindByEmail(ctx, "ghost@example.com").
			Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Login(ctx, admin.LoginRequest{
			Email:    "ghost@example.com",
			Password: "whatever",
		})

		assert.ErrorIs(t, err, adminerrors.ErrInvalidCredentials)
	})
}
