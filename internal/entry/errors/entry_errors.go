package entryerrors

import (
	"net/http"

	"go-paylink/internal/shared/apperror"
)

var (
	ErrMissingRequiredFields = apperror.New(
		apperror.CodeInvalidInput,
		"name, amount and employeeId are all required",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"amount must be a positive number",
		http.StatusBadRequest,
	)
	ErrMissingPayload = apperror.New(
		apperror.CodeInvalidInput,
		"QR image file (qrImage) or upiId is required",
		http.StatusBadRequest,
	)
	ErrDuplicateSubmission = apperror.New(
		apperror.CodeConflict,
		"This UPI ID has already been used for this link",
		http.StatusConflict,
	)
	ErrEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Entry not found",
		http.StatusNotFound,
	)
)
