// Package service holds domain logic that sits between handlers and
// repositories: the popular-cars ranking and the queue publisher.
package service

import "github.com/Leplia/Diller-shop/internal/repository"

// PadPopular assembles the fixed-size popular-cars list for the
// homepage carousel from two inputs: cars ranked by order count
// (descending) and the full catalog ranked by price (descending,
// already limited to the requested size).
//
// The carousel must always be visually full, so when fewer than limit
// cars have orders the remaining slots are filled by cycling through
// the price-ranked list with modulo indexing; the same car may appear
// more than once, which is the intended fallback on a near-empty
// database, not a bug. With more ranked cars than slots the list is
// truncated; with no ranked cars at all the price-ranked list is used
// outright.
func PadPopular(withOrders, topPriced []repository.PopularCar, limit int) []repository.PopularCar {
	result := make([]repository.PopularCar, 0, limit)
	result = append(result, withOrders...)

	if len(result) < limit && len(topPriced) > 0 {
		needed := limit - len(result)
		for i := 0; i < needed; i++ {
			result = append(result, topPriced[i%len(topPriced)])
		}
	} else if len(result) > limit {
		result = result[:limit]
	}

	if len(result) == 0 && len(topPriced) > 0 {
		if len(topPriced) > limit {
			return topPriced[:limit]
		}
		return topPriced
	}
	return result
}
