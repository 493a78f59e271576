package entry

import (
	"errors"
	"strings"

	entryerrors "go-paylink/internal/entry/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError menerjemahkan error storage menjadi error domain.
// Pelanggaran unique constraint (link_id, upi_id) WAJIB menjadi
// ErrDuplicateSubmission, bukan bocor sebagai raw storage error:
// constraint inilah arbiter final saat dua submission concurrent
// menarget pasangan (link, UPI id) yang sama.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entryerrors.ErrEntryNotFound
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return entryerrors.ErrDuplicateSubmission
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_entries_link_upi" {
			return entryerrors.ErrDuplicateSubmission
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_entries_link_upi") {
		return entryerrors.ErrDuplicateSubmission
	}

	return err
}
