package deck

import "sort"

// Hand represents a collection of cards. The evaluator treats a hand as an
// unordered multiset; the order here only matters for display.
type Hand []Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c == card {
			return true
		}
	}

	return false
}

// SortHighToLow sorts the hand in place by descending rank
func (h Hand) SortHighToLow() {
	sort.Slice(h, func(i, j int) bool {
		return h[i].Rank > h[j].Rank
	})
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

// HandFromString will return a hand from a string in the format of 2c,3h,4s,...
func HandFromString(s string) Hand {
	return Hand(CardsFromString(s))
}
