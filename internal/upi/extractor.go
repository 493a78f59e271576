package upi

import (
	"net/http"
	"net/url"
	"strings"

	"go-paylink/internal/shared/apperror"
)

const schemePrefix = "upi://"

var ErrNoUPIID = apperror.New(
	apperror.CodeUPIExtractFailed,
	"Could not extract UPI ID from QR code",
	http.StatusBadRequest,
)

// Extract mengambil canonical UPI id dari hasil decode QR.
// Dua bentuk input yang didukung:
//   - deep link "upi://...?pa=<payee>&..." -> nilai parameter pa (percent-decoded)
//   - bare identifier                      -> seluruh teks setelah trim
//
// Hasil tidak dinormalisasi lebih lanjut (tanpa case-folding).
func Extract(decoded string) (string, error) {
	if strings.HasPrefix(decoded, schemePrefix) {
		// Deep link tanpa query string tidak punya payee address
		idx := strings.Index(decoded, "?")
		if idx < 0 {
			return "", ErrNoUPIID
		}

		values, err := url.ParseQuery(decoded[idx+1:])
		if err != nil {
			return "", apperror.Wrap(err, ErrNoUPIID.Code, ErrNoUPIID.Message, ErrNoUPIID.HTTPStatus)
		}

		upiID := strings.TrimSpace(values.Get("pa"))
		if upiID == "" {
			return "", ErrNoUPIID
		}
		return upiID, nil
	}

	upiID := strings.TrimSpace(decoded)
	if upiID == "" {
		return "", ErrNoUPIID
	}
	return upiID, nil
}
