package seed

import (
	"context"
	"fmt"

	"cardPilot/domain"
	"cardPilot/pkg/logger"
)

type BankRepository interface {
	Create(ctx context.Context, bank *domain.Bank) error
	FindByCode(ctx context.Context, code string) (*domain.Bank, error)
}

type CardRepository interface {
	Create(ctx context.Context, card *domain.CreditCard) error
	FindAll(ctx context.Context) ([]domain.CreditCard, error)
}

type PromotionRepository interface {
	Create(ctx context.Context, promotion *domain.Promotion) error
}

var banks = []domain.Bank{
	{Name: "中國信託", Code: "ctbc", Website: "https://www.ctbcbank.com"},
	{Name: "國泰世華", Code: "cathay", Website: "https://www.cathaybk.com.tw"},
	{Name: "玉山銀行", Code: "esun", Website: "https://www.esunbank.com.tw"},
	{Name: "台新銀行", Code: "taishin", Website: "https://www.taishinbank.com.tw"},
	{Name: "富邦銀行", Code: "fubon", Website: "https://www.fubon.com"},
	{Name: "永豐銀行", Code: "sinopac", Website: "https://www.sinopac.com"},
	{Name: "聯邦銀行", Code: "ubot", Website: "https://www.ubot.com.tw"},
	{Name: "第一銀行", Code: "firstbank", Website: "https://www.firstbank.com.tw"},
	{Name: "華南銀行", Code: "hncb", Website: "https://www.hncb.com.tw"},
	{Name: "兆豐銀行", Code: "megabank", Website: "https://www.megabank.com.tw"},
}

// Run inserts the bank reference data and, when the card table is
// still empty, a small demo card set so recommend works out of the
// box. Existing banks are left alone; Run is safe to repeat.
func Run(ctx context.Context, bankRepo BankRepository, cardRepo CardRepository, promoRepo PromotionRepository) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	byCode := make(map[string]uint64, len(banks))
	for _, b := range banks {
		existing, err := bankRepo.FindByCode(ctx, b.Code)
		if err != nil {
			return fmt.Errorf("check bank %s: %w", b.Code, err)
		}
		if existing != nil {
			byCode[b.Code] = existing.ID
			logger.Info("bank already exists", "code", b.Code)
			continue
		}

		bank := b
		if err := bankRepo.Create(ctx, &bank); err != nil {
			return fmt.Errorf("create bank %s: %w", b.Code, err)
		}
		byCode[b.Code] = bank.ID
		logger.Info("added bank", "code", bank.Code, "name", bank.Name)
	}

	existingCards, err := cardRepo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("check cards: %w", err)
	}
	if len(existingCards) > 0 {
		logger.Info("cards already seeded", "count", len(existingCards))
		return nil
	}

	return seedDemoCards(ctx, cardRepo, promoRepo, byCode)
}

func seedDemoCards(ctx context.Context, cardRepo CardRepository, promoRepo PromotionRepository, byCode map[string]uint64) error {
	limit200 := 200.0
	limit500 := 500.0

	cards := []struct {
		card   domain.CreditCard
		promos []domain.Promotion
	}{
		{
			card: domain.CreditCard{
				BankID:         byCode["ctbc"],
				Name:           "LINE Pay 卡",
				AnnualFee:      0,
				BaseRewardRate: 1.0,
				Features: domain.CardFeatures{
					RewardType:     "cashback",
					MobilePay:      true,
					OnlineShopping: true,
				},
			},
			promos: []domain.Promotion{
				{Title: "網購加碼", Category: "online_shopping", RewardRate: 5.0, RewardLimit: &limit200},
				{Title: "行動支付回饋", Category: "mobile_pay", RewardRate: 3.0},
			},
		},
		{
			card: domain.CreditCard{
				BankID:         byCode["cathay"],
				Name:           "CUBE 卡",
				AnnualFee:      0,
				BaseRewardRate: 2.0,
				Features: domain.CardFeatures{
					RewardType: "cashback",
					Dining:     true,
					Streaming:  true,
				},
			},
			promos: []domain.Promotion{
				{Title: "餐飲回饋", Category: "dining", RewardRate: 3.0, RewardLimit: &limit500},
			},
		},
		{
			card: domain.CreditCard{
				BankID:         byCode["taishin"],
				Name:           "環球御璽卡",
				AnnualFee:      2000,
				BaseRewardRate: 0.5,
				Features: domain.CardFeatures{
					RewardType:      "miles",
					LoungeAccess:    true,
					Overseas:        true,
					TravelInsurance: true,
				},
			},
			promos: []domain.Promotion{
				{Title: "海外消費加倍", Category: "overseas", RewardRate: 4.0},
			},
		},
	}

	for _, entry := range cards {
		card := entry.card
		if err := cardRepo.Create(ctx, &card); err != nil {
			return fmt.Errorf("create card %s: %w", card.Name, err)
		}

		for _, p := range entry.promos {
			promo := p
			promo.CardID = card.ID
			if err := promoRepo.Create(ctx, &promo); err != nil {
				return fmt.Errorf("create promotion %s: %w", promo.Title, err)
			}
		}

		logger.Info("added card", "name", card.Name, "promotions", len(entry.promos))
	}

	logger.Info("seed completed")

	return nil
}
