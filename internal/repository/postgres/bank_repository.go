package postgres

import (
	"context"
	"errors"
	"fmt"

	"cardPilot/domain"

	"gorm.io/gorm"
)

type BankRepository struct {
	DB *gorm.DB
}

func NewBankRepository(db *gorm.DB) *BankRepository {
	return &BankRepository{
		DB: db,
	}
}

func (r *BankRepository) Create(ctx context.Context, bank *domain.Bank) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(bank).Error; err != nil {
		return fmt.Errorf("failed to create bank: %w", err)
	}

	return nil
}

// FindByCode returns (nil, nil) when no bank carries the code, so
// callers can distinguish "absent" from a query failure.
func (r *BankRepository) FindByCode(ctx context.Context, code string) (*domain.Bank, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var bank domain.Bank
	err := r.DB.WithContext(ctx).Where("code = ?", code).First(&bank).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find bank: %w", err)
	}

	return &bank, nil
}

func (r *BankRepository) FindAll(ctx context.Context) ([]domain.Bank, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var banks []domain.Bank
	err := r.DB.WithContext(ctx).Order("id").Find(&banks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find banks: %w", err)
	}

	return banks, nil
}
