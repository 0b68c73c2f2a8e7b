package journal

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// SortBy selects the history ordering.
type SortBy string

const (
	SortByDate     SortBy = "date"
	SortByEarliest SortBy = "earliest"
	SortByProfit   SortBy = "profit"
	SortByLoss     SortBy = "loss"
)

var SortOrders = []SortBy{SortByDate, SortByEarliest, SortByProfit, SortByLoss}

// ParseSortBy accepts the order names case-insensitively. Empty means date.
func ParseSortBy(s string) (SortBy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SortByDate, nil
	}
	for _, o := range SortOrders {
		if string(o) == s {
			return o, nil
		}
	}
	return "", fmt.Errorf("unknown sort order: %q", s)
}

func (s SortBy) Label() string {
	switch s {
	case SortByEarliest:
		return "Earliest First"
	case SortByProfit:
		return "Highest Profit"
	case SortByLoss:
		return "Highest Loss"
	default:
		return "Latest First"
	}
}

// Sort returns a sorted copy of trades. Ties keep their input order.
func Sort(trades []Trade, by SortBy) []Trade {
	out := append([]Trade(nil), trades...)

	switch by {
	case SortByEarliest:
		sort.SliceStable(out, func(i, j int) bool {
			return entryDay(out[i]).Before(entryDay(out[j]))
		})
	case SortByProfit, SortByLoss:
		keyed := make([]struct {
			t  Trade
			pl float64
		}, len(out))
		for i, t := range out {
			keyed[i].t, keyed[i].pl = t, t.Result().PnL
		}
		sort.SliceStable(keyed, func(i, j int) bool {
			if by == SortByProfit {
				return keyed[i].pl > keyed[j].pl
			}
			return keyed[i].pl < keyed[j].pl
		})
		for i := range keyed {
			out[i] = keyed[i].t
		}
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return recordedAt(out[i]).After(recordedAt(out[j]))
		})
	}
	return out
}

// recordedAt is CreatedAt, or the entry date for trades that never had one.
func recordedAt(t Trade) time.Time {
	if !t.CreatedAt.IsZero() {
		return t.CreatedAt
	}
	return entryDay(t)
}

func entryDay(t Trade) time.Time {
	d, _ := time.Parse(DateLayout, t.EntryDate)
	return d
}
