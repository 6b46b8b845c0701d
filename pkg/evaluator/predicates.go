package evaluator

import (
	"fmt"
	"sort"

	"showdown/pkg/deck"
)

// The Is* predicates classify exactly five cards; the Has* family accepts
// larger card sets (e.g., a seven-card board) and only answers whether the
// combination exists somewhere in the cards.

// assertAtLeast guards predicates that need a minimum card count
func assertAtLeast(h deck.Hand, n int) {
	if len(h) < n {
		panic(fmt.Sprintf("hand must contain at least %d cards, got %d", n, len(h)))
	}
}

func assertExactly(h deck.Hand, n int) {
	if len(h) != n {
		panic(fmt.Sprintf("hand must contain exactly %d cards, got %d", n, len(h)))
	}
}

// rankCounts returns how many times each rank appears in the hand
func rankCounts(h deck.Hand) map[deck.Rank]int {
	counts := make(map[deck.Rank]int)
	for _, card := range h {
		counts[card.Rank]++
	}

	return counts
}

// frequencySignature returns the rank-appearance counts sorted ascending.
// A five-card two pair, for example, yields [1,2,2].
func frequencySignature(h deck.Hand) []int {
	counts := rankCounts(h)
	signature := make([]int, 0, len(counts))
	for _, n := range counts {
		signature = append(signature, n)
	}

	sort.Ints(signature)
	return signature
}

func matchesSignature(h deck.Hand, want []int) bool {
	signature := frequencySignature(h)
	if len(signature) != len(want) {
		return false
	}

	for i, n := range want {
		if signature[i] != n {
			return false
		}
	}

	return true
}

// IsFlush returns true if all five cards share a suit
func IsFlush(h deck.Hand) bool {
	assertExactly(h, 5)

	for _, card := range h[1:] {
		if card.Suit != h[0].Suit {
			return false
		}
	}

	return true
}

// IsStraight returns true if the five ranks form a contiguous ascending run.
// The ace only plays high here; the five-high straight is handled as a
// special case during scoring.
func IsStraight(h deck.Hand) bool {
	assertExactly(h, 5)

	ranks := make([]int, len(h))
	for i, card := range h {
		ranks[i] = int(card.Rank)
	}
	sort.Ints(ranks)

	for i := 1; i < len(ranks); i++ {
		if ranks[i] != ranks[0]+i {
			return false
		}
	}

	return true
}

// IsStraightFlush returns true if the hand is both a straight and a flush
func IsStraightFlush(h deck.Hand) bool {
	return IsStraight(h) && IsFlush(h)
}

// IsFullHouse returns true if a five-card hand holds trips and a pair
func IsFullHouse(h deck.Hand) bool {
	return matchesSignature(h, []int{2, 3})
}

// IsFourOfAKind returns true if a five-card hand holds four of one rank
func IsFourOfAKind(h deck.Hand) bool {
	return matchesSignature(h, []int{1, 4})
}

// IsThreeOfAKind returns true if a five-card hand holds exactly three of one rank
func IsThreeOfAKind(h deck.Hand) bool {
	return matchesSignature(h, []int{1, 1, 3})
}

// IsPair returns true if a five-card hand holds exactly one pair
func IsPair(h deck.Hand) bool {
	return matchesSignature(h, []int{1, 1, 1, 2})
}

// IsTwoPairs returns true if a five-card hand holds exactly two pairs
func IsTwoPairs(h deck.Hand) bool {
	return matchesSignature(h, []int{1, 2, 2})
}

// HasSetOfSameRanks returns true if some rank appears exactly size times
func HasSetOfSameRanks(h deck.Hand, size int) bool {
	assertAtLeast(h, size)

	for _, n := range rankCounts(h) {
		if n == size {
			return true
		}
	}

	return false
}

// HasPair returns true if some rank appears exactly twice
func HasPair(h deck.Hand) bool {
	return HasSetOfSameRanks(h, 2)
}

// HasThreeOfAKind returns true if some rank appears exactly three times
func HasThreeOfAKind(h deck.Hand) bool {
	return HasSetOfSameRanks(h, 3)
}

// HasFourOfAKind returns true if some rank appears exactly four times
func HasFourOfAKind(h deck.Hand) bool {
	return HasSetOfSameRanks(h, 4)
}

// HasTwoPairs returns true if at least two distinct ranks each appear exactly twice
func HasTwoPairs(h deck.Hand) bool {
	assertAtLeast(h, 4)

	pairs := 0
	for _, n := range rankCounts(h) {
		if n == 2 {
			pairs++
		}
	}

	return pairs >= 2
}

// HasFullHouse returns true if the cards hold both trips and a pair
func HasFullHouse(h deck.Hand) bool {
	assertAtLeast(h, 5)

	return HasThreeOfAKind(h) && HasPair(h)
}
