package db

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotOwner means the row exists but the caller may not delete it.
var ErrNotOwner = errors.New("caller may not delete this row")

// OwnedDelete describes a delete that only the owner or the admin may perform.
type OwnedDelete struct {
	ID          uint
	OwnerColumn string
	CallerID    uint
	IsAdmin     bool
	// BeforeCommit runs after the row is deleted and before the transaction
	// commits. An error rolls the deletion back.
	BeforeCommit func() error
}

// DeleteOwned loads the row into dest and deletes it with a single
// conditional statement (id AND (owner OR admin)). It returns
// gorm.ErrRecordNotFound for missing rows and ErrNotOwner when the condition
// matched nothing.
func DeleteOwned(ctx context.Context, gdb *gorm.DB, dest interface{}, op OwnedDelete) error {
	return gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(dest, op.ID).Error; err != nil {
			return err
		}

		query := tx.Where("id = ?", op.ID)
		if !op.IsAdmin {
			query = query.Where(op.OwnerColumn+" = ?", op.CallerID)
		}
		res := query.Delete(dest)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotOwner
		}

		if op.BeforeCommit != nil {
			return op.BeforeCommit()
		}
		return nil
	})
}
