package domain

// CatalogSnapshot is the immutable card universe one recommendation
// call works against. Promotions are keyed by card ID and already
// filtered to the active set. The engine never mutates a snapshot, so
// a single snapshot may be shared across concurrent calls.
type CatalogSnapshot struct {
	Cards      []CreditCard           `json:"cards"`
	Promotions map[uint64][]Promotion `json:"promotions"`
}

// PromotionsFor returns the active promotions of a card, possibly nil.
func (s CatalogSnapshot) PromotionsFor(cardID uint64) []Promotion {
	if s.Promotions == nil {
		return nil
	}
	return s.Promotions[cardID]
}
