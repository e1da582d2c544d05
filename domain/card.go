package domain

import (
	"time"
)

// CREATE TABLE public.credit_cards (
//     id               BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     bank_id          BIGINT REFERENCES banks(id),
//     name             TEXT NOT NULL,
//     annual_fee       INTEGER,
//     base_reward_rate NUMERIC,
//     features         JSONB,
//     created_at       TIMESTAMPTZ DEFAULT NOW()
// );

type CreditCard struct {
	ID             uint64       `gorm:"primaryKey;autoIncrement" json:"id"`
	BankID         uint64       `gorm:"column:bank_id" json:"bank_id"`
	Name           string       `gorm:"column:name;type:text;not null" json:"name"`
	AnnualFee      int          `gorm:"column:annual_fee;default:0" json:"annual_fee"`
	BaseRewardRate float64      `gorm:"column:base_reward_rate;type:numeric" json:"base_reward_rate"`
	Features       CardFeatures `gorm:"column:features;type:jsonb;serializer:json" json:"features"`
	CreatedAt      time.Time    `gorm:"column:created_at" json:"created_at"`

	Bank Bank `gorm:"foreignKey:BankID" json:"bank"`
}

func (CreditCard) TableName() string {
	return "credit_cards"
}

// IsFree reports whether the card carries no annual fee. A missing fee
// is stored as 0, so zero and free are the same thing.
func (c CreditCard) IsFree() bool {
	return c.AnnualFee <= 0
}

// CardFeatures is the capability set a card advertises. The upstream
// crawlers emit a free-form JSON object; the named fields below are the
// ones scoring understands. RewardType is "cashback" or "miles".
type CardFeatures struct {
	RewardType         string `json:"reward_type,omitempty"`
	AirportPickup      bool   `json:"airport_pickup,omitempty"`
	LoungeAccess       bool   `json:"lounge_access,omitempty"`
	Lounge             bool   `json:"lounge,omitempty"` // legacy key, same meaning as LoungeAccess
	Overseas           bool   `json:"overseas,omitempty"`
	AirportTransfer    bool   `json:"airport_transfer,omitempty"`
	Dining             bool   `json:"dining,omitempty"`
	MobilePay          bool   `json:"mobile_pay,omitempty"`
	OnlineShopping     bool   `json:"online_shopping,omitempty"`
	NewCardholderBonus bool   `json:"new_cardholder_bonus,omitempty"`
	Installment        bool   `json:"installment,omitempty"`
	Streaming          bool   `json:"streaming,omitempty"`
	TravelInsurance    bool   `json:"travel_insurance,omitempty"`
}
