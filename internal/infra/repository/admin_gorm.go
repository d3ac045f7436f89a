package repository

import (
	"context"
	"errors"

	"cuddlecrafts/internal/domain/model"
	repo "cuddlecrafts/internal/repository"

	"gorm.io/gorm"
)

type AdminCredentialGormRepository struct {
	db *gorm.DB
}

func NewAdminCredentialGormRepository(db *gorm.DB) *AdminCredentialGormRepository {
	return &AdminCredentialGormRepository{db: db}
}

func (r *AdminCredentialGormRepository) GetHash(ctx context.Context) (string, error) {
	var cred model.AdminCredential
	err := r.db.WithContext(ctx).Order("id asc").First(&cred).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", repo.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return cred.PasswordHash, nil
}

// 行が無いときだけ作成（初回起動のシード用）
func (r *AdminCredentialGormRepository) EnsureExists(ctx context.Context, hash string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cred model.AdminCredential
		err := tx.Order("id asc").First(&cred).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&model.AdminCredential{PasswordHash: hash}).Error
	})
}

func (r *AdminCredentialGormRepository) UpdateHash(ctx context.Context, hash string) error {
	res := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Model(&model.AdminCredential{}).
		Update("password_hash", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
