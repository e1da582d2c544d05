package postgres

import (
	"context"
	"fmt"
	"time"

	"cardPilot/domain"

	"gorm.io/gorm"
)

type PromotionRepository struct {
	DB *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) *PromotionRepository {
	return &PromotionRepository{
		DB: db,
	}
}

func (r *PromotionRepository) Create(ctx context.Context, promotion *domain.Promotion) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(promotion).Error; err != nil {
		return fmt.Errorf("failed to create promotion: %w", err)
	}

	return nil
}

func (r *PromotionRepository) FindByCardID(ctx context.Context, cardID uint64) ([]domain.Promotion, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var promotions []domain.Promotion
	err := r.DB.WithContext(ctx).Where("card_id = ?", cardID).Order("id").Find(&promotions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find promotions: %w", err)
	}

	return promotions, nil
}

// FindActiveByCardID returns a card's promotions whose validity window
// contains the given instant. Open-ended windows always match.
func (r *PromotionRepository) FindActiveByCardID(ctx context.Context, cardID uint64, at time.Time) ([]domain.Promotion, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var promotions []domain.Promotion
	err := r.DB.WithContext(ctx).
		Where("card_id = ?", cardID).
		Where("start_date IS NULL OR start_date <= ?", at).
		Where("end_date IS NULL OR end_date >= ?", at).
		Order("id").
		Find(&promotions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find active promotions: %w", err)
	}

	return promotions, nil
}
