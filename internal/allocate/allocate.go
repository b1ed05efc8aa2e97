// Package allocate distributes child-row counts across parent entities.
// Both policies conserve the requested total exactly; callers normalize the
// request (raising a too-small budget count, capping cards to capacity)
// before calling in.
package allocate

// Budgets splits budgetCount across businessCount parents. Every parent gets
// at least one budget; the remainder is handed out one at a time round-robin
// starting from index 0. budgetCount must already be >= businessCount.
func Budgets(businessCount, budgetCount int) []int {
	counts := make([]int, businessCount)
	for i := range counts {
		counts[i] = 1
	}

	extra := budgetCount - businessCount
	for i := 0; extra > 0; i = (i + 1) % businessCount {
		counts[i]++
		extra--
	}
	return counts
}

// Cards splits cardCount across businessCount parents with a per-parent cap.
// When the request covers every business, each gets one card and the
// remainder cycles round-robin skipping businesses already at the cap. When
// it does not, only the first cardCount businesses get a single card — a
// truncation policy, not a proportional one. A request beyond global
// capacity is clamped to it.
func Cards(businessCount, cardCount, maxCardsPerBusiness int) []int {
	counts := make([]int, businessCount)

	capacity := businessCount * maxCardsPerBusiness
	if cardCount > capacity {
		cardCount = capacity
	}

	if cardCount < businessCount {
		for i := 0; i < cardCount; i++ {
			counts[i] = 1
		}
		return counts
	}

	for i := range counts {
		counts[i] = 1
	}
	remaining := cardCount - businessCount
	for i := 0; remaining > 0; i = (i + 1) % businessCount {
		if counts[i] < maxCardsPerBusiness {
			counts[i]++
			remaining--
		}
	}
	return counts
}

// Capacity is the largest card count businessCount parents can absorb.
func Capacity(businessCount, maxCardsPerBusiness int) int {
	return businessCount * maxCardsPerBusiness
}

// Total sums an allocation. Used by callers to assert conservation.
func Total(counts []int) int {
	sum := 0
	for _, c := range counts {
		sum += c
	}
	return sum
}
