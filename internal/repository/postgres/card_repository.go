package postgres

import (
	"context"
	"errors"
	"fmt"

	"cardPilot/domain"

	"gorm.io/gorm"
)

type CardRepository struct {
	DB *gorm.DB
}

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{
		DB: db,
	}
}

func (r *CardRepository) Create(ctx context.Context, card *domain.CreditCard) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(card).Error; err != nil {
		return fmt.Errorf("failed to create card: %w", err)
	}

	return nil
}

func (r *CardRepository) FindByID(ctx context.Context, id uint64) (domain.CreditCard, error) {
	if err := ctx.Err(); err != nil {
		return domain.CreditCard{}, fmt.Errorf("context error: %w", err)
	}

	var card domain.CreditCard

	err := r.DB.WithContext(ctx).Preload("Bank").First(&card, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CreditCard{}, errors.New("card not found")
		}
		return domain.CreditCard{}, fmt.Errorf("failed to find card: %w", err)
	}

	return card, nil
}

func (r *CardRepository) FindAll(ctx context.Context) ([]domain.CreditCard, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var cards []domain.CreditCard
	err := r.DB.WithContext(ctx).Preload("Bank").Order("id").Find(&cards).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find cards: %w", err)
	}

	return cards, nil
}
