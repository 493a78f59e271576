package employee

import (
	"context"
	"os"
	"time"

	employeeerrors "go-paylink/internal/employee/errors"
	"go-paylink/internal/shared/contextutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("register employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("register employee hash failed", zap.String("request_id", rid), zap.Error(err))
		return RegisterResponse{}, err
	}

	empl := &Employee{
		ID:         uuid.New(),
		EmployeeID: uuid.New(), // stable id, bukan row id
		Name:       req.Name,
		Email:      req.Email,
		Password:   string(hashed),
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("register employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return RegisterResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("register employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.EmployeeID.String()),
	)

	return RegisterResponse{
		Message:    "Registration successful",
		EmployeeID: empl.EmployeeID.String(),
	}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	empl, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		// Jangan bedakan unknown email vs wrong password
		return LoginResponse{}, employeeerrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(empl.Password), []byte(req.Password)); err != nil {
		return LoginResponse{}, employeeerrors.ErrInvalidCredentials
	}

	token, err := generateToken(empl.ID.String(), empl.EmployeeID.String(), 15*time.Minute)
	if err != nil {
		s.logger.Error("login employee token generation failed", zap.Error(err))
		return LoginResponse{}, err
	}

	s.logger.Info("login employee success", zap.String("employee_id", empl.EmployeeID.String()))

	return LoginResponse{
		Message:     "Login successful",
		UserID:      empl.ID.String(),
		EmployeeID:  empl.EmployeeID.String(),
		Name:        empl.Name,
		AccessToken: token,
	}, nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = EmployeeResponse{
			EmployeeID: e.EmployeeID.String(),
			Name:       e.Name,
			Email:      e.Email,
		}
	}
	return res, nil
}

// reusable token generator
func generateToken(userID, employeeID string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":     userID,
		"employee_id": employeeID,
		"role":        "employee",
		"exp":         time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
