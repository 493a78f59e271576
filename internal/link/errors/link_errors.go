package linkerrors

import (
	"net/http"

	"go-paylink/internal/shared/apperror"
)

var (
	ErrLinkNotFound = apperror.New(
		apperror.CodeNotFound,
		"Link not found",
		http.StatusNotFound,
	)
	ErrInvalidLinkID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid linkId",
		http.StatusBadRequest,
	)
)
