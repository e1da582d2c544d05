package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cardPilot/business/recommender"
	"cardPilot/domain"
	"cardPilot/internal/seed"
	"cardPilot/pkg/config"
	"cardPilot/pkg/logger"
	"cardPilot/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/urfave/cli/v2"
)

type recommendInput struct {
	SpendingHabits map[string]float64 `validate:"dive,gte=0"`
	MonthlyAmount  int
	Preferences    []string
	Limit          int `validate:"gte=0,lte=100"`
}

type shoppingInput struct {
	Platform string `validate:"required"`
	Amount   int    `validate:"gt=0"`
	CardID   uint64
}

func recommendCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "recommend",
		Usage: "Rank cards for a monthly spending profile",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "amount", Usage: "Monthly spending amount", Required: true},
			&cli.StringSliceFlag{Name: "habit", Usage: "Spending fraction as category=fraction (repeatable)"},
			&cli.StringSliceFlag{Name: "prefer", Usage: "Preference tag, e.g. no_annual_fee (repeatable)"},
			&cli.IntFlag{Name: "limit", Usage: "Maximum number of recommendations"},
		},
		Action: func(c *cli.Context) error {
			habits, err := parseHabits(c.StringSlice("habit"))
			if err != nil {
				return err
			}

			input := recommendInput{
				SpendingHabits: habits,
				MonthlyAmount:  c.Int("amount"),
				Preferences:    c.StringSlice("prefer"),
				Limit:          c.Int("limit"),
			}
			if err := validator.New().Struct(&input); err != nil {
				return fmt.Errorf("invalid input: %w", err)
			}

			d, err := buildDeps(cfg)
			if err != nil {
				return err
			}
			defer d.close()

			ctx := recommender.WithTraceID(c.Context, newTraceID())

			start := time.Now()
			recs, err := d.service.Recommend(ctx, domain.RecommendRequest{
				SpendingHabits: input.SpendingHabits,
				MonthlyAmount:  input.MonthlyAmount,
				Preferences:    input.Preferences,
				Limit:          input.Limit,
			})
			metrics.RecommendLatency.Observe(time.Since(start).Seconds())
			if err != nil {
				return err
			}

			return printJSON(map[string]interface{}{
				"recommendations": recs,
			})
		},
	}
}

func shoppingRewardCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "shopping-reward",
		Usage: "Best card (or one card's reward) for a single purchase",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "platform", Usage: "Shopping platform, e.g. pchome or momo", Required: true},
			&cli.IntFlag{Name: "amount", Usage: "Purchase amount", Required: true},
			&cli.Uint64Flag{Name: "card", Usage: "Card ID (omit to scan the whole catalog)"},
		},
		Action: func(c *cli.Context) error {
			input := shoppingInput{
				Platform: c.String("platform"),
				Amount:   c.Int("amount"),
				CardID:   c.Uint64("card"),
			}
			if err := validator.New().Struct(&input); err != nil {
				return fmt.Errorf("invalid input: %w", err)
			}

			d, err := buildDeps(cfg)
			if err != nil {
				return err
			}
			defer d.close()

			ctx := recommender.WithTraceID(c.Context, newTraceID())

			if input.CardID > 0 {
				reward, err := d.service.ShoppingReward(ctx, input.CardID, input.Platform, input.Amount)
				if err != nil {
					return err
				}
				return printJSON(reward)
			}

			best, err := d.service.BestCardForPurchase(ctx, input.Platform, input.Amount)
			if err != nil {
				return err
			}
			return printJSON(best)
		},
	}
}

func seedCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Insert bank reference data and demo cards",
		Action: func(c *cli.Context) error {
			d, err := buildDeps(cfg)
			if err != nil {
				return err
			}
			defer d.close()

			if err := seed.Run(c.Context, d.bankRepo, d.cardRepo, d.promoRepo); err != nil {
				return err
			}

			if d.cache != nil {
				if err := d.cache.Invalidate(c.Context); err != nil {
					logger.Warn("failed to invalidate catalog cache", err)
				}
			}

			return nil
		},
	}
}

// parseHabits turns repeated category=fraction flags into the habits
// map, e.g. --habit dining=0.5 --habit online_shopping=0.5.
func parseHabits(pairs []string) (map[string]float64, error) {
	habits := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("invalid habit %q, expected category=fraction", pair)
		}
		fraction, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid habit fraction %q: %w", parts[1], err)
		}
		habits[parts[0]] = fraction
	}
	return habits, nil
}

func newTraceID() string {
	return fmt.Sprintf("cli-%d", time.Now().UnixNano())
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
