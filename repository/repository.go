package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrDuplicateKey được trả về khi vi phạm ràng buộc unique
var ErrDuplicateKey = errors.New("duplicate key")

func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	return err
}
