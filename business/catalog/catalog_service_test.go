package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"cardPilot/domain"
)

type fakeCardRepo struct {
	cards []domain.CreditCard
	err   error
	calls int
}

func (f *fakeCardRepo) FindAll(ctx context.Context) ([]domain.CreditCard, error) {
	f.calls++
	return f.cards, f.err
}

type fakePromoRepo struct {
	promos map[uint64][]domain.Promotion
	err    error
}

func (f *fakePromoRepo) FindActiveByCardID(ctx context.Context, cardID uint64, at time.Time) ([]domain.Promotion, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.promos[cardID], nil
}

type fakeCache struct {
	snapshot *domain.CatalogSnapshot
	getErr   error
	sets     int
}

func (f *fakeCache) Get(ctx context.Context) (*domain.CatalogSnapshot, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.snapshot, nil
}

func (f *fakeCache) Set(ctx context.Context, snapshot domain.CatalogSnapshot) error {
	f.snapshot = &snapshot
	f.sets++
	return nil
}

func TestSnapshot_AssemblesActivePromotions(t *testing.T) {
	cardRepo := &fakeCardRepo{cards: []domain.CreditCard{
		{ID: 1, Name: "A"},
		{ID: 2, Name: "B"},
	}}
	promoRepo := &fakePromoRepo{promos: map[uint64][]domain.Promotion{
		1: {{ID: 10, CardID: 1, Category: "dining", RewardRate: 3.0}},
	}}

	svc := NewService(cardRepo, promoRepo, nil)

	snapshot, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snapshot.Cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(snapshot.Cards))
	}
	if len(snapshot.PromotionsFor(1)) != 1 {
		t.Fatalf("expected 1 promotion for card 1, got %d", len(snapshot.PromotionsFor(1)))
	}
	// Cards without active promotions get no map entry.
	if _, ok := snapshot.Promotions[2]; ok {
		t.Fatal("card 2 should have no promotions entry")
	}
}

func TestSnapshot_CacheHitSkipsDatabase(t *testing.T) {
	cardRepo := &fakeCardRepo{cards: []domain.CreditCard{{ID: 1}}}
	cache := &fakeCache{snapshot: &domain.CatalogSnapshot{
		Cards: []domain.CreditCard{{ID: 99, Name: "cached"}},
	}}

	svc := NewService(cardRepo, &fakePromoRepo{}, cache)

	snapshot, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cardRepo.calls != 0 {
		t.Fatalf("cache hit should not touch the database, got %d calls", cardRepo.calls)
	}
	if len(snapshot.Cards) != 1 || snapshot.Cards[0].ID != 99 {
		t.Fatalf("expected the cached snapshot, got %+v", snapshot.Cards)
	}
}

func TestSnapshot_CacheMissPopulatesCache(t *testing.T) {
	cardRepo := &fakeCardRepo{cards: []domain.CreditCard{{ID: 1}}}
	cache := &fakeCache{}

	svc := NewService(cardRepo, &fakePromoRepo{}, cache)

	if _, err := svc.Snapshot(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cardRepo.calls != 1 {
		t.Fatalf("expected one database load, got %d", cardRepo.calls)
	}
	if cache.sets != 1 {
		t.Fatalf("expected snapshot to be cached, got %d sets", cache.sets)
	}
}

func TestSnapshot_CacheReadFailureFallsThrough(t *testing.T) {
	cardRepo := &fakeCardRepo{cards: []domain.CreditCard{{ID: 1}}}
	cache := &fakeCache{getErr: errors.New("connection reset")}

	svc := NewService(cardRepo, &fakePromoRepo{}, cache)

	snapshot, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("cache failure must not fail the call: %v", err)
	}
	if len(snapshot.Cards) != 1 {
		t.Fatalf("expected the database snapshot, got %+v", snapshot.Cards)
	}
}

func TestSnapshot_CardLoadError(t *testing.T) {
	cardRepo := &fakeCardRepo{err: errors.New("relation does not exist")}

	svc := NewService(cardRepo, &fakePromoRepo{}, nil)

	if _, err := svc.Snapshot(context.Background()); err == nil {
		t.Fatal("expected error when card load fails")
	}
}

func TestSnapshot_PromotionLoadError(t *testing.T) {
	cardRepo := &fakeCardRepo{cards: []domain.CreditCard{{ID: 1}}}
	promoRepo := &fakePromoRepo{err: errors.New("timeout")}

	svc := NewService(cardRepo, promoRepo, nil)

	if _, err := svc.Snapshot(context.Background()); err == nil {
		t.Fatal("expected error when promotion load fails")
	}
}

func TestSnapshot_CancelledContext(t *testing.T) {
	svc := NewService(&fakeCardRepo{}, &fakePromoRepo{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Snapshot(ctx); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
