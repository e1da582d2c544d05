package recommender

import (
	"cardPilot/domain"
)

// preferencePredicate checks one preference tag against a card.
type preferencePredicate func(domain.CreditCard) bool

// preferenceRegistry is the closed set of recognized preference tags.
// Unknown tags are not an error; they simply never match, so new tags
// introduced upstream degrade a card's feature score instead of
// breaking scoring. Extend by adding a pair here.
var preferenceRegistry = map[string]preferencePredicate{
	"no_annual_fee": func(c domain.CreditCard) bool {
		return c.IsFree()
	},
	"airport_pickup": func(c domain.CreditCard) bool {
		return c.Features.AirportPickup
	},
	"lounge_access": func(c domain.CreditCard) bool {
		return c.Features.LoungeAccess || c.Features.Lounge
	},
	"cashback": func(c domain.CreditCard) bool {
		return c.Features.RewardType == "cashback"
	},
	"miles": func(c domain.CreditCard) bool {
		return c.Features.RewardType == "miles"
	},
	"high_reward": func(c domain.CreditCard) bool {
		return c.BaseRewardRate >= 2.0
	},
	"travel": func(c domain.CreditCard) bool {
		return c.Features.RewardType == "miles" || c.Features.Overseas || c.Features.AirportTransfer
	},
	"dining": func(c domain.CreditCard) bool {
		return c.Features.Dining
	},
	"mobile_pay": func(c domain.CreditCard) bool {
		return c.Features.MobilePay
	},
	"online_shopping": func(c domain.CreditCard) bool {
		return c.Features.OnlineShopping
	},
	"new_cardholder": func(c domain.CreditCard) bool {
		return c.Features.NewCardholderBonus
	},
	"installment": func(c domain.CreditCard) bool {
		return c.Features.Installment
	},
	"streaming": func(c domain.CreditCard) bool {
		return c.Features.Streaming
	},
	"travel_insurance": func(c domain.CreditCard) bool {
		return c.Features.TravelInsurance
	},
}

// hasPreference reports whether a tag appears in the request.
func hasPreference(preferences []string, tag string) bool {
	for _, p := range preferences {
		if p == tag {
			return true
		}
	}
	return false
}
