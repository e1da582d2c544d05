package domain

import (
	"time"
)

type Bank struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;type:text;not null" json:"name"`
	Code      string    `gorm:"column:code;type:text;uniqueIndex" json:"code"`
	Website   string    `gorm:"column:website;type:text" json:"website"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Bank) TableName() string {
	return "banks"
}
