package adminerrors

import (
	"net/http"

	"go-paylink/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid credentials",
		http.StatusUnauthorized,
	)
	ErrInvalidAdminID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid adminId",
		http.StatusBadRequest,
	)
)
