package link

import (
	"errors"

	linkerrors "go-paylink/internal/link/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return linkerrors.ErrLinkNotFound
	}

	return err
}
