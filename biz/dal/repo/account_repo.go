package repo

import (
	"context"
	"errors"

	"user_center/biz/model/storage"

	"gorm.io/gorm"
)

// AccountRepository is the record store the account service is built on.
// Lookups return (nil, nil) when no row matches; errors are reserved for the
// store itself failing.
type AccountRepository interface {
	Create(ctx context.Context, m *storage.AccountRecord) (*storage.AccountRecord, error)
	FindByID(ctx context.Context, id uint) (*storage.AccountRecord, error)
	FindByEmail(ctx context.Context, email string) (*storage.AccountRecord, error)
	Save(ctx context.Context, m *storage.AccountRecord) error
	Delete(ctx context.Context, m *storage.AccountRecord) error
	ListAll(ctx context.Context) ([]*storage.AccountRecord, error)
}

type accountRepositoryGorm struct {
	db *gorm.DB
}

func NewAccountRepositoryGorm(db *gorm.DB) AccountRepository {
	return &accountRepositoryGorm{db: db}
}

func (r *accountRepositoryGorm) Create(ctx context.Context, m *storage.AccountRecord) (*storage.AccountRecord, error) {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (r *accountRepositoryGorm) FindByID(ctx context.Context, id uint) (*storage.AccountRecord, error) {
	var m storage.AccountRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *accountRepositoryGorm) FindByEmail(ctx context.Context, email string) (*storage.AccountRecord, error) {
	var m storage.AccountRecord
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *accountRepositoryGorm) Save(ctx context.Context, m *storage.AccountRecord) error {
	return r.db.WithContext(ctx).Save(m).Error
}

// Delete removes the row for good. The schema has no soft-delete column.
func (r *accountRepositoryGorm) Delete(ctx context.Context, m *storage.AccountRecord) error {
	return r.db.WithContext(ctx).Delete(m).Error
}

func (r *accountRepositoryGorm) ListAll(ctx context.Context) ([]*storage.AccountRecord, error) {
	var ms []*storage.AccountRecord
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return ms, nil
}
