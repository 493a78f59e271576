package admin

import (
	"context"
	"os"
	"time"

	adminerrors "go-paylink/internal/admin/errors"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=admin_service.go -destination=mock/admin_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("admin.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("admin.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	adm, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return LoginResponse{}, adminerrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(adm.Password), []byte(req.Password)); err != nil {
		return LoginResponse{}, adminerrors.ErrInvalidCredentials
	}

	token, err := generateToken(adm.ID.String(), adm.AdminID.String(), 15*time.Minute)
	if err != nil {
		s.logger.Error("login admin token generation failed", zap.Error(err))
		return LoginResponse{}, err
	}

	s.logger.Info("login admin success", zap.String("admin_id", adm.AdminID.String()))

	return LoginResponse{
		Message:     "Admin login successful",
		AdminID:     adm.AdminID.String(),
		AccessToken: token,
	}, nil
}

func generateToken(userID, adminID string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"admin_id": adminID,
		"role":     "admin",
		"exp":      time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
