// Package collector is the price-collection pipeline: it fans one fetch
// task out per inventory row, composes lookup-key normalization, page
// fetch, price extraction and currency conversion, and reassembles the
// outcomes in input order.
package collector

import (
	"context"
	"log/slog"

	"pricetracker/lib/currency"
	"pricetracker/lib/inventory"
	"pricetracker/lib/scrapers/pricecharting"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("services/collector")

// Fetcher is the slice of the pricing-site client the collector depends on.
type Fetcher interface {
	FetchGamePage(ctx context.Context, key pricecharting.LookupKey) (*goquery.Document, error)
}

type Options struct {
	// maximum in-flight fetches, defaults to 16
	Concurrency int
}

type Collector struct {
	fetcher     Fetcher
	converter   currency.Converter
	concurrency int
}

func New(fetcher Fetcher, converter currency.Converter, opts Options) *Collector {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 16
	}
	return &Collector{
		fetcher:     fetcher,
		converter:   converter,
		concurrency: opts.Concurrency,
	}
}

// CollectPrices prices every row concurrently and returns exactly one
// result per row, in input order regardless of completion order. Per-row
// failures (network error, missing price field, unknown condition) degrade
// to a zero-amount result with a diagnostic; they never abort sibling rows,
// so the batch always runs to completion.
func (c *Collector) CollectPrices(ctx context.Context, rows []inventory.Row, curr string) []inventory.PriceResult {
	ctx, span := tracer.Start(ctx, "CollectPrices")
	defer span.End()

	results := make([]inventory.PriceResult, len(rows))

	g := errgroup.Group{}
	g.SetLimit(c.concurrency)
	for i, row := range rows {
		i, row := i, row
		g.Go(func() error {
			results[i] = c.priceRow(ctx, i, row, curr)
			return nil
		})
	}
	// tasks recover their own failures, the join never yields an error
	_ = g.Wait()

	return results
}

func (c *Collector) priceRow(ctx context.Context, idx int, row inventory.Row, curr string) inventory.PriceResult {
	result := inventory.PriceResult{RowIndex: idx, Currency: curr}

	key := pricecharting.NewLookupKey(row)
	if !pricecharting.KnownCondition(key.Condition) {
		slog.WarnContext(
			ctx, "unknown condition code",
			"condition", string(key.Condition),
			"title", row.Title,
			"platform", row.Platform,
			"region", row.Region,
		)
		result.Status = inventory.StatusUnknownCondition
		return result
	}

	doc, err := c.fetcher.FetchGamePage(ctx, key)
	if err != nil {
		slog.WarnContext(
			ctx, "failed to fetch price page",
			"title", row.Title,
			"platform", row.Platform,
			"region", row.Region,
			"err", err,
		)
		result.Status = inventory.StatusMissingPrice
		return result
	}

	price := pricecharting.ExtractPrice(doc, key.Condition)
	result.Status = price.Status
	if price.Status != inventory.StatusOK {
		slog.WarnContext(
			ctx, "missing price",
			"title", row.Title,
			"platform", row.Platform,
			"region", row.Region,
		)
		return result
	}

	amount := price.Amount
	if curr != "USD" {
		amount, err = c.converter.Convert(amount, "USD", curr)
		if err != nil {
			// target currencies are validated before the batch starts,
			// so this is unexpected; still recover the row to zero
			slog.ErrorContext(
				ctx, "currency conversion failed",
				"title", row.Title,
				"platform", row.Platform,
				"err", err,
			)
			result.Status = inventory.StatusMissingPrice
			return result
		}
	}

	result.Amount = amount
	return result
}
