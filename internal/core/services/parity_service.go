package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/traiders/practice-backend/internal/apperrors"
	"github.com/traiders/practice-backend/internal/core/domain"
	portsrepo "github.com/traiders/practice-backend/internal/core/ports/repositories"
)

// ParityService is the parity query engine: it answers "latest" and
// per-day historic rate questions over the append-only parity store.
type ParityService struct {
	parityRepo    portsrepo.ParityReader
	equipmentRepo portsrepo.EquipmentReader
}

// NewParityService creates a new ParityService.
func NewParityService(parityRepo portsrepo.ParityReader, equipmentRepo portsrepo.EquipmentReader) *ParityService {
	return &ParityService{
		parityRepo:    parityRepo,
		equipmentRepo: equipmentRepo,
	}
}

// Latest returns the most recent observation for every ordered pair
// matching the filters, ordered by (base, target). Pairs with no history
// are omitted, except that an explicitly requested pair (both filters
// set) with no history is apperrors.ErrNotFound.
func (s *ParityService) Latest(ctx context.Context, baseSymbol, targetSymbol *string) ([]domain.Parity, error) {
	if err := s.validateFilterSymbols(ctx, baseSymbol, targetSymbol); err != nil {
		return nil, err
	}

	rows, err := s.parityRepo.FindParities(ctx, portsrepo.ParityFilter{
		BaseSymbol:   baseSymbol,
		TargetSymbol: targetSymbol,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query parities: %w", err)
	}

	winners := keepLatestPerPair(rows)
	if baseSymbol != nil && targetSymbol != nil && len(winners) == 0 {
		return nil, fmt.Errorf("%w: no parity recorded for pair %s/%s", apperrors.ErrNotFound, *baseSymbol, *targetSymbol)
	}
	return winners, nil
}

// Historic returns, per ordered pair matching the filters, the latest
// observation within the UTC calendar day of `day`. The hour, minute and
// second of stored timestamps only matter for picking the winner inside
// the day. A day without records yields an empty slice.
func (s *ParityService) Historic(ctx context.Context, day time.Time, baseSymbol, targetSymbol *string) ([]domain.Parity, error) {
	if err := s.validateFilterSymbols(ctx, baseSymbol, targetSymbol); err != nil {
		return nil, err
	}

	d := day.UTC()
	from := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	rows, err := s.parityRepo.FindParities(ctx, portsrepo.ParityFilter{
		BaseSymbol:   baseSymbol,
		TargetSymbol: targetSymbol,
		From:         &from,
		To:           &to,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query parities for %s: %w", from.Format("2006-01-02"), err)
	}

	return keepLatestPerPair(rows), nil
}

// ListPairs returns the distinct ordered pairs with recorded history.
func (s *ParityService) ListPairs(ctx context.Context) ([]domain.ParityPair, error) {
	pairs, err := s.parityRepo.ListParityPairs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list parity pairs: %w", err)
	}
	if pairs == nil {
		return []domain.ParityPair{}, nil
	}
	return pairs, nil
}

// validateFilterSymbols rejects filter symbols that are not in the
// equipment registry.
func (s *ParityService) validateFilterSymbols(ctx context.Context, symbols ...*string) error {
	for _, sym := range symbols {
		if sym == nil {
			continue
		}
		if _, err := s.equipmentRepo.FindEquipmentBySymbol(ctx, *sym); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: unknown symbol %s", apperrors.ErrNotFound, *sym)
			}
			return fmt.Errorf("failed to validate symbol %s: %w", *sym, err)
		}
	}
	return nil
}

// keepLatestPerPair keeps the winning observation per ordered pair. It
// relies on the repository ordering contract: rows arrive sorted by
// (base, target) ascending, then recorded_at and recorded_seq
// descending, so the first row of each pair group is the most recent
// record, with the higher insertion sequence winning timestamp ties.
func keepLatestPerPair(rows []domain.Parity) []domain.Parity {
	winners := make([]domain.Parity, 0, len(rows))
	for _, p := range rows {
		n := len(winners)
		if n == 0 || winners[n-1].BaseSymbol != p.BaseSymbol || winners[n-1].TargetSymbol != p.TargetSymbol {
			winners = append(winners, p)
		}
	}
	return winners
}
