package domain

import (
	"testing"
	"time"
)

func TestPromotionActiveAt(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	before := now.AddDate(0, -1, 0)
	after := now.AddDate(0, 1, 0)

	cases := []struct {
		name  string
		promo Promotion
		want  bool
	}{
		{"no window", Promotion{}, true},
		{"inside window", Promotion{StartDate: &before, EndDate: &after}, true},
		{"not started", Promotion{StartDate: &after}, false},
		{"expired", Promotion{EndDate: &before}, false},
		{"open start", Promotion{EndDate: &after}, true},
		{"open end", Promotion{StartDate: &before}, true},
	}

	for _, tc := range cases {
		if got := tc.promo.ActiveAt(now); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestCreditCardIsFree(t *testing.T) {
	if !(CreditCard{AnnualFee: 0}).IsFree() {
		t.Fatal("zero fee should be free")
	}
	if (CreditCard{AnnualFee: 2000}).IsFree() {
		t.Fatal("fee-bearing card is not free")
	}
}

func TestCatalogSnapshotPromotionsFor(t *testing.T) {
	snapshot := CatalogSnapshot{
		Promotions: map[uint64][]Promotion{
			1: {{ID: 10, CardID: 1}},
		},
	}

	if got := snapshot.PromotionsFor(1); len(got) != 1 {
		t.Fatalf("expected 1 promotion, got %d", len(got))
	}
	if got := snapshot.PromotionsFor(2); got != nil {
		t.Fatalf("expected nil for unknown card, got %v", got)
	}
}
