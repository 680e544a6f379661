package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// nextSeq returns the insertion sequence for a new row of model. It must run
// inside the transaction that inserts the row.
func nextSeq(tx *gorm.DB, model any) (int64, error) {
	var max int64
	if err := tx.Model(model).Select("COALESCE(MAX(seq), 0)").Scan(&max).Error; err != nil {
		return 0, fmt.Errorf("next seq: %w", err)
	}
	return max + 1, nil
}

// notFound converts gorm's record-not-found into the domain sentinel.
func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
