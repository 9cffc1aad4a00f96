package ratefeed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/traiders/practice-backend/internal/core/domain"
	portsrepo "github.com/traiders/practice-backend/internal/core/ports/repositories"
)

// referenceSymbol is the quote currency of the fetched snapshot. Every
// cross rate is computed from this one snapshot, so a single request
// covers all tracked pairs.
const referenceSymbol = "USD"

// trackedCurrencies is the fixed universe the feed job maintains.
var trackedCurrencies = []struct {
	Symbol string
	Name   string
}{
	{"USD", "U.S. Dollar"},
	{"JPY", "Japanese Yen"},
	{"GBP", "British Pound"},
	{"CHF", "Swiss Franc"},
	{"CAD", "Canadian Dollar"},
	{"AUD", "Australian Dollar"},
	{"NZD", "New Zealand Dollar"},
	{"ZAR", "South African Rand"},
	{"TRY", "Turkish Lira"},
}

// Job periodically refreshes the parity store from the external feed.
// Each run appends one observation per ordered pair of tracked
// currencies; a pair that cannot be computed is skipped, never fails the
// whole run.
type Job struct {
	client        *Client
	equipmentRepo portsrepo.EquipmentWriter
	parityRepo    portsrepo.ParityWriter
	logger        *slog.Logger
}

// NewJob creates the rate feed job.
func NewJob(client *Client, equipmentRepo portsrepo.EquipmentWriter, parityRepo portsrepo.ParityWriter, logger *slog.Logger) *Job {
	return &Job{
		client:        client,
		equipmentRepo: equipmentRepo,
		parityRepo:    parityRepo,
		logger:        logger.With(slog.String("component", "ratefeed")),
	}
}

// Name identifies the job in scheduler logs.
func (j *Job) Name() string {
	return "rate-feed"
}

// runTimeout bounds a whole feed run, covering the fetch and all
// per-pair inserts.
const runTimeout = time.Minute

// Run seeds the registry if needed and appends a fresh observation per
// tracked pair.
func (j *Job) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	if err := j.seedRegistry(ctx); err != nil {
		return fmt.Errorf("failed to seed equipment registry: %w", err)
	}

	rates, err := j.client.FetchRates(ctx, referenceSymbol)
	if err != nil {
		return err
	}

	recordedAt := time.Now().UTC()
	saved, skipped := 0, 0
	for _, base := range trackedCurrencies {
		for _, target := range trackedCurrencies {
			if base.Symbol == target.Symbol {
				continue
			}

			ratio, err := crossRate(rates, base.Symbol, target.Symbol)
			if err != nil {
				j.logger.Warn("Skipping pair",
					slog.String("base", base.Symbol),
					slog.String("target", target.Symbol),
					slog.String("error", err.Error()))
				skipped++
				continue
			}

			parity := domain.Parity{
				BaseSymbol:   base.Symbol,
				TargetSymbol: target.Symbol,
				Ratio:        ratio,
				RecordedAt:   recordedAt,
			}
			if err := j.parityRepo.SaveParity(ctx, parity); err != nil {
				j.logger.Warn("Failed to save parity",
					slog.String("base", base.Symbol),
					slog.String("target", target.Symbol),
					slog.String("error", err.Error()))
				skipped++
				continue
			}
			saved++
		}
	}

	j.logger.Info("Rate feed run finished", slog.Int("saved", saved), slog.Int("skipped", skipped))
	return nil
}

// seedRegistry upserts the tracked currencies so parities and
// investments always reference known symbols.
func (j *Job) seedRegistry(ctx context.Context) error {
	now := time.Now().UTC()
	for _, c := range trackedCurrencies {
		equipment := domain.Equipment{
			Symbol:   c.Symbol,
			Name:     c.Name,
			Category: domain.CategoryCurrency,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     domain.SystemActorID,
				LastUpdatedAt: now,
				LastUpdatedBy: domain.SystemActorID,
			},
		}
		if err := j.equipmentRepo.SaveEquipment(ctx, equipment); err != nil {
			return err
		}
	}
	return nil
}

// crossRate computes 1 base = ? target from a snapshot quoted against
// the reference currency.
func crossRate(rates map[string]float64, base, target string) (decimal.Decimal, error) {
	baseRate, ok := rates[base]
	if !ok {
		return decimal.Zero, fmt.Errorf("snapshot has no rate for %s", base)
	}
	targetRate, ok := rates[target]
	if !ok {
		return decimal.Zero, fmt.Errorf("snapshot has no rate for %s", target)
	}
	if baseRate == 0 {
		return decimal.Zero, fmt.Errorf("snapshot rate for %s is zero", base)
	}
	return decimal.NewFromFloat(targetRate).Div(decimal.NewFromFloat(baseRate)), nil
}
