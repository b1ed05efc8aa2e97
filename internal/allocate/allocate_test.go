package allocate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBudgetsConservation(t *testing.T) {
	for _, tc := range []struct{ businesses, budgets int }{
		{1, 1}, {3, 3}, {3, 10}, {7, 100}, {10, 11},
	} {
		counts := Budgets(tc.businesses, tc.budgets)
		assert.Len(t, counts, tc.businesses)
		assert.Equal(t, tc.budgets, Total(counts))
		for i, c := range counts {
			assert.GreaterOrEqual(t, c, 1, "business %d starved", i)
		}
	}
}

func TestBudgetsRoundRobinFromZero(t *testing.T) {
	assert.Equal(t, []int{2, 2, 1}, Budgets(3, 5))
	assert.Equal(t, []int{2, 1, 1}, Budgets(3, 4))
}

func TestCardsScenario(t *testing.T) {
	// 3 businesses, cap 2, 5 cards: first pass gives each 1, the remaining
	// 2 go round-robin skipping capped businesses.
	assert.Equal(t, []int{2, 2, 1}, Cards(3, 5, 2))
}

func TestCardsCapRespected(t *testing.T) {
	for _, tc := range []struct{ businesses, cards, max int }{
		{1, 0, 1}, {3, 5, 2}, {4, 100, 3}, {5, 5, 1}, {2, 7, 10},
	} {
		counts := Cards(tc.businesses, tc.cards, tc.max)
		expected := tc.cards
		if cap := tc.businesses * tc.max; expected > cap {
			expected = cap
		}
		assert.Equal(t, expected, Total(counts))
		for _, c := range counts {
			assert.LessOrEqual(t, c, tc.max)
		}
	}
}

func TestCardsTruncationBelowBusinessCount(t *testing.T) {
	// Fewer cards than businesses: the first N businesses get exactly one
	// card each, the rest get none.
	assert.Equal(t, []int{1, 1, 0, 0, 0}, Cards(5, 2, 3))
}

func TestCardsRequestBeyondCapacityClamped(t *testing.T) {
	counts := Cards(3, 100, 2)
	assert.Equal(t, []int{2, 2, 2}, counts)
}

func TestCapacity(t *testing.T) {
	assert.Equal(t, 6, Capacity(3, 2))
}
