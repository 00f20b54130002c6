package services

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"lunargrid/internal/cache"
	"lunargrid/internal/models"

	"github.com/shopspring/decimal"
)

// aggregationService implements AggregationServiceInterface with a memo
// layer keyed on an owned revision counter plus a cheap list fingerprint, so
// repeated reads during a single render never re-scan the transaction list.
type aggregationService struct {
	dayMaps  *cache.MemoStore[map[int]decimal.Decimal]
	revision atomic.Int64
	metrics  MetricsRecorderInterface
}

// NewAggregationService creates a new aggregation service
func NewAggregationService(metrics MetricsRecorderInterface) AggregationServiceInterface {
	return &aggregationService{
		dayMaps: cache.NewMemoStore[map[int]decimal.Decimal](),
		metrics: metrics,
	}
}

func (s *aggregationService) AmountsForCategory(category string, transactions []models.Transaction) map[int]decimal.Decimal {
	return s.memoized("category", category, "", transactions, func() map[int]decimal.Decimal {
		amounts := make(map[int]decimal.Decimal)
		for _, tx := range transactions {
			if tx.Category != category {
				continue
			}
			day := tx.Day()
			amounts[day] = amounts[day].Add(tx.Amount.Abs())
		}
		return amounts
	})
}

func (s *aggregationService) AmountsForSubcategory(category, subcategory string, transactions []models.Transaction) map[int]decimal.Decimal {
	return s.memoized("subcategory", category, subcategory, transactions, func() map[int]decimal.Decimal {
		amounts := make(map[int]decimal.Decimal)
		for _, tx := range transactions {
			if tx.Category != category || tx.Subcategory != subcategory {
				continue
			}
			day := tx.Day()
			amounts[day] = amounts[day].Add(tx.Amount.Abs())
		}
		return amounts
	})
}

// DailyBalance sums signed amounts across all categories. The result is
// independent of transaction order.
func (s *aggregationService) DailyBalance(transactions []models.Transaction) map[int]decimal.Decimal {
	return s.memoized("balance", "", "", transactions, func() map[int]decimal.Decimal {
		amounts := make(map[int]decimal.Decimal)
		for _, tx := range transactions {
			day := tx.Day()
			amounts[day] = amounts[day].Add(tx.SignedAmount())
		}
		return amounts
	})
}

func (s *aggregationService) SumForCell(category, subcategory string, day int, transactions []models.Transaction) decimal.Decimal {
	var amounts map[int]decimal.Decimal
	switch {
	case category == models.BalanceRowCategory:
		amounts = s.DailyBalance(transactions)
	case subcategory != "":
		amounts = s.AmountsForSubcategory(category, subcategory, transactions)
	default:
		amounts = s.AmountsForCategory(category, transactions)
	}

	if sum, ok := amounts[day]; ok {
		return sum
	}
	return decimal.Zero
}

// Invalidate bumps the revision counter and purges the memo store. Every
// key embeds the revision, so entries computed before the bump can never be
// served again even if a stale writer races the purge.
func (s *aggregationService) Invalidate() {
	revision := s.revision.Add(1)
	s.dayMaps.Purge()
	slog.Debug("aggregation caches invalidated", "revision", revision)
}

// memoized serves compute() through the day-map cache. Cached maps are
// shared across callers and must be treated as read-only.
func (s *aggregationService) memoized(kind, category, subcategory string, transactions []models.Transaction, compute func() map[int]decimal.Decimal) map[int]decimal.Decimal {
	key := s.memoKey(kind, category, subcategory, transactions)
	if cached, ok := s.dayMaps.Get(key); ok {
		s.metrics.RecordCacheHit(kind)
		return cached
	}
	s.metrics.RecordCacheMiss(kind)

	amounts := compute()
	s.dayMaps.Set(key, amounts)
	return amounts
}

func (s *aggregationService) memoKey(kind, category, subcategory string, transactions []models.Transaction) string {
	firstID := ""
	if len(transactions) > 0 {
		firstID = transactions[0].ID.String()
	}
	return fmt.Sprintf("%s|%s|%s|%d|%d|%s",
		kind, category, subcategory, s.revision.Load(), len(transactions), firstID)
}
