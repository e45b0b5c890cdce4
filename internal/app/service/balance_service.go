package service

import (
	"time"

	"walletstate/internal/app/port"
	"walletstate/internal/domain/entity"
)

// BalanceService serves balance summaries from the current state.
type BalanceService struct {
	reader    port.StateReader
	populated port.PopulatedChains
	now       func() time.Time
	logger    port.Logger
}

// NewBalanceService creates a new BalanceService. A nil now uses time.Now.
func NewBalanceService(reader port.StateReader, populated port.PopulatedChains, now func() time.Time, logger port.Logger) *BalanceService {
	if now == nil {
		now = time.Now
	}
	return &BalanceService{
		reader:    reader,
		populated: populated,
		now:       now,
		logger:    logger,
	}
}

// Summary aggregates the balances of address, keeping only those matching filter.
func (s *BalanceService) Summary(address, filter string) entity.BalanceSummary {
	raw := s.reader.Balances(address)
	summary := AggregateBalances(AggregateInput{
		Balances:  raw,
		Rates:     s.reader.Rates(),
		Chains:    s.reader.Chains(),
		Meta:      s.reader.ChainsMeta(),
		Populated: s.populated.Populated(),
		Filter:    filter,
		Now:       s.now(),
	})
	s.logger.Debug("Balance summary built", "address", address, "raw", len(raw), "shown", len(summary.Balances))
	return summary
}
