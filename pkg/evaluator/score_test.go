package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"showdown/pkg/deck"
)

func TestHandRankOf(t *testing.T) {
	tests := []struct {
		name  string
		cards string
		want  HandRank
	}{
		{"straight flush", "11c,10c,9c,8c,7c", StraightFlush},
		{"four of a kind", "5c,5d,5h,5s,2d", FourOfAKind},
		{"full house", "6s,6h,6d,13c,13h", FullHouse},
		{"flush", "11d,9d,8d,4d,3d", Flush},
		{"straight", "10d,9s,8h,7d,6c", Straight},
		{"three of a kind", "12c,12s,12h,9h,2s", ThreeOfAKind},
		{"two pair", "11h,11s,3c,3s,2h", TwoPair},
		{"pair", "10s,10h,8s,7h,4c", OnePair},
		{"high card", "13d,12d,7s,4s,3h", HighCard},
		// the wheel is only promoted during scoring
		{"wheel", "14c,5d,4h,3s,2c", HighCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HandRankOf(deck.HandFromString(tt.cards)))
		})
	}
}

func TestTieBreakers(t *testing.T) {
	a := assert.New(t)

	// paired ranks come before kickers, higher ranks first within a count
	a.Equal([]int{5, 2}, TieBreakers(deck.HandFromString("5c,5d,5h,5s,2d")))
	a.Equal([]int{6, 13}, TieBreakers(deck.HandFromString("6s,6h,6d,13c,13h")))
	a.Equal([]int{11, 3, 2}, TieBreakers(deck.HandFromString("3c,3s,11h,11s,2h")))
	a.Equal([]int{12, 9, 2}, TieBreakers(deck.HandFromString("12c,12s,12h,9h,2s")))
	a.Equal([]int{13, 12, 7, 4, 3}, TieBreakers(deck.HandFromString("13d,12d,7s,4s,3h")))
}

func TestScoreOf(t *testing.T) {
	a := assert.New(t)

	a.Equal(Score{8, 11, 10, 9, 8, 7}, ScoreOf(deck.HandFromString("11c,10c,9c,8c,7c")))
	a.Equal(Score{7, 5, 2}, ScoreOf(deck.HandFromString("5c,5d,5h,5s,2d")))
	a.Equal(Score{6, 6, 13}, ScoreOf(deck.HandFromString("6s,6h,6d,13c,13h")))
	a.Equal(Score{0, 13, 12, 7, 4, 3}, ScoreOf(deck.HandFromString("13d,12d,7s,4s,3h")))
}

func TestScoreOf_wheel(t *testing.T) {
	a := assert.New(t)

	// mixed-suit wheel scores as a five-high straight, ace playing low
	a.Equal(Score{4, 5, 4, 3, 2, 1}, ScoreOf(deck.HandFromString("14c,5d,4h,3s,2c")))

	// single-suit wheel scores as a straight flush
	a.Equal(Score{8, 5, 4, 3, 2, 1}, ScoreOf(deck.HandFromString("14c,5c,4c,3c,2c")))

	// a six-high straight is already visible to IsStraight and is not rewritten
	a.Equal(Score{4, 6, 5, 4, 3, 2}, ScoreOf(deck.HandFromString("6c,5d,4h,3s,2c")))

	// an ace-high flush without the wheel ranks is untouched
	a.Equal(Score{5, 14, 6, 4, 3, 2}, ScoreOf(deck.HandFromString("14c,6c,4c,3c,2c")))
}

func TestScoreOf_orderIndependent(t *testing.T) {
	a := assert.New(t)

	want := ScoreOf(deck.HandFromString("13d,12d,7s,4s,3h"))
	a.Equal(want, ScoreOf(deck.HandFromString("3h,4s,7s,12d,13d")))
	a.Equal(want, ScoreOf(deck.HandFromString("7s,13d,3h,12d,4s")))
}

func TestCompare(t *testing.T) {
	a := assert.New(t)

	fourOfAKind := deck.HandFromString("5c,5d,5h,5s,2d")
	fullHouse := deck.HandFromString("6s,6h,6d,13c,13h")

	// -1 means the left hand wins: sign(right - left) at the rank index
	a.Equal(-1, Compare(fourOfAKind, fullHouse))
	a.Equal(1, Compare(fullHouse, fourOfAKind))
	a.Equal(0, Compare(fourOfAKind, fourOfAKind))

	// same category, decided on the second tie-breaker
	a.Equal(-1, Compare(deck.HandFromString("11d,9d,8d,4d,3d"), deck.HandFromString("11h,7h,6h,5h,2h")))

	// identical ranks in different suits tie
	a.Equal(0, Compare(deck.HandFromString("10s,10h,8s,7h,4c"), deck.HandFromString("10d,10c,8h,7s,4d")))

	// the wheel straight flush beats an ordinary flush
	a.Equal(-1, Compare(deck.HandFromString("14c,5c,4c,3c,2c"), deck.HandFromString("14d,12d,9d,6d,3d")))
}

func TestCompare_antisymmetric(t *testing.T) {
	a := assert.New(t)

	hands := []deck.Hand{
		deck.HandFromString("11c,10c,9c,8c,7c"),
		deck.HandFromString("5c,5d,5h,5s,2d"),
		deck.HandFromString("6s,6h,6d,13c,13h"),
		deck.HandFromString("14c,5d,4h,3s,2c"),
		deck.HandFromString("13d,12d,7s,4s,3h"),
	}

	for _, left := range hands {
		for _, right := range hands {
			a.Equal(Compare(left, right), -Compare(right, left))
		}
	}
}

func TestScore_Compare(t *testing.T) {
	a := assert.New(t)

	a.Equal(1, Score{4, 8, 7, 6, 5, 4}.Compare(Score{6, 3, 2}))
	a.Equal(-1, Score{5, 11, 9, 8, 4, 3}.Compare(Score{5, 11, 7, 6, 5, 2}))
	a.Equal(0, Score{7, 5, 2}.Compare(Score{7, 5, 2}))

	// bounded by the shorter score
	a.Equal(0, Score{7, 5}.Compare(Score{7, 5, 2}))
}
