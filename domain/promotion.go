package domain

import (
	"time"
)

// Promotion is a category-scoped rate override for a single card,
// optionally capped by a per-period reward limit in currency units.
type Promotion struct {
	ID          uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CardID      uint64     `gorm:"column:card_id;not null" json:"card_id"`
	Title       string     `gorm:"column:title;type:text" json:"title"`
	Category    string     `gorm:"column:category;type:text" json:"category"`
	RewardRate  float64    `gorm:"column:reward_rate;type:numeric" json:"reward_rate"`
	RewardLimit *float64   `gorm:"column:reward_limit;type:numeric" json:"reward_limit,omitempty"`
	StartDate   *time.Time `gorm:"column:start_date" json:"start_date,omitempty"`
	EndDate     *time.Time `gorm:"column:end_date" json:"end_date,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
}

func (Promotion) TableName() string {
	return "promotions"
}

// ActiveAt reports whether the promotion is inside its validity window.
// Open-ended promotions (nil dates) are always active.
func (p Promotion) ActiveAt(t time.Time) bool {
	if p.StartDate != nil && t.Before(*p.StartDate) {
		return false
	}
	if p.EndDate != nil && t.After(*p.EndDate) {
		return false
	}
	return true
}
