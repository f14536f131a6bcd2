// Package seed fills an empty marketplace with demo data through its API.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"emerald-console/internal/core/domain"
	"emerald-console/internal/core/port"
)

type demoSeller struct {
	name     string
	balance  string
	products []string
}

var demoSellers = []demoSeller{
	{name: "Emerald Emporium", balance: "500", products: []string{"Enchanted Lamp", "Diamond Pickaxe"}},
	{name: "Village Traders", balance: "120.50", products: []string{"Wheat Bundle"}},
}

const demoKeywordsPerCampaign = 2

// Demo creates demo sellers, products and one campaign per product when
// the marketplace has no sellers yet. It reports whether anything was
// created. Campaigns target the first known town and use keywords from
// the dictionary when available.
func Demo(ctx context.Context, api port.Marketplace, logger *slog.Logger) (bool, error) {
	sellers, err := api.ListSellers(ctx)
	if err != nil {
		return false, fmt.Errorf("list sellers: %w", err)
	}
	if len(sellers) > 0 {
		logger.Info("demo data skipped, marketplace is not empty", slog.Int("sellers", len(sellers)))
		return false, nil
	}

	var townID *int64
	if towns, err := api.ListTowns(ctx); err != nil {
		logger.Warn("demo campaigns will not target a town", slog.Any("error", err))
	} else if len(towns) > 0 {
		townID = &towns[0].ID
	}

	var keywords []string
	if found, err := api.SearchKeywords(ctx, ""); err != nil {
		logger.Warn("demo campaigns will have no keywords", slog.Any("error", err))
	} else {
		for _, kw := range domain.UniqueKeywords(found) {
			keywords = append(keywords, kw.Value)
		}
	}

	for i, ds := range demoSellers {
		seller, err := api.CreateSeller(ctx, domain.NewSeller{
			Name:                  ds.name,
			InitialEmeraldBalance: domain.MustAmount(ds.balance),
		})
		if err != nil {
			return false, fmt.Errorf("create seller %q: %w", ds.name, err)
		}

		for j, name := range ds.products {
			product, err := api.CreateProduct(ctx, seller.ID, domain.NewProduct{Name: name})
			if err != nil {
				return false, fmt.Errorf("create product %q: %w", name, err)
			}

			fields := domain.CampaignFields{
				Name:         name + " Launch",
				Keywords:     pick(keywords, i+j, demoKeywordsPerCampaign),
				BidAmount:    domain.MustAmount("0.25"),
				CampaignFund: domain.MustAmount("10"),
				Status:       domain.StatusOn,
				TownID:       townID,
				RadiusKm:     5 * (j + 1),
			}
			if _, err = api.CreateCampaign(ctx, product.ID, fields); err != nil {
				return false, fmt.Errorf("create campaign for %q: %w", name, err)
			}
		}
		logger.Info("demo seller created", slog.Int64("seller_id", seller.ID), slog.String("name", seller.Name))
	}
	return true, nil
}

// pick returns up to n values starting at offset, wrapping around.
func pick(values []string, offset, n int) []string {
	out := make([]string, 0, n)
	if len(values) == 0 {
		return out
	}
	set := domain.NewKeywordSet()
	for i := 0; i < n && i < len(values); i++ {
		set.Add(values[(offset+i)%len(values)])
	}
	return append(out, set.Values()...)
}
