package evaluator

import (
	"sort"

	"showdown/pkg/deck"
)

// Score orders hands against each other. Index 0 is the HandRank ordinal and
// the remaining values are tie-breakers, strongest first. Two hands of the
// same category always produce scores of equal length.
type Score []int

// the five-high straight ("wheel") is invisible to IsStraight because the ace
// counts high there. The raw scores for the two affected hands are rewritten
// to these exact patterns, with the ace demoted to a one.
var (
	wheelRaw      = Score{int(HighCard), 14, 5, 4, 3, 2}
	wheelFlushRaw = Score{int(Flush), 14, 5, 4, 3, 2}
	wheel         = Score{int(Straight), 5, 4, 3, 2, int(deck.LowAce)}
	wheelFlush    = Score{int(StraightFlush), 5, 4, 3, 2, int(deck.LowAce)}
)

func (s Score) equal(other Score) bool {
	if len(s) != len(other) {
		return false
	}

	for i, v := range s {
		if other[i] != v {
			return false
		}
	}

	return true
}

// Compare walks both scores index by index and reports
// sign(other[i] - s[i]) at the first index where they differ, bounded by the
// shorter score. The sign convention follows the original engine and callers
// depend on it: -1 means the receiver outranks other, +1 means other outranks
// the receiver, and 0 means the scores are equal.
func (s Score) Compare(other Score) int {
	n := len(s)
	if len(other) < n {
		n = len(other)
	}

	for i := 0; i < n; i++ {
		if s[i] != other[i] {
			if other[i] > s[i] {
				return 1
			}

			return -1
		}
	}

	return 0
}

// HandRankOf classifies a five-card hand, testing categories from strongest
// to weakest and returning the first match
func HandRankOf(h deck.Hand) HandRank {
	switch {
	case IsStraightFlush(h):
		return StraightFlush
	case IsFourOfAKind(h):
		return FourOfAKind
	case IsFullHouse(h):
		return FullHouse
	case IsFlush(h):
		return Flush
	case IsStraight(h):
		return Straight
	case IsThreeOfAKind(h):
		return ThreeOfAKind
	case IsTwoPairs(h):
		return TwoPair
	case IsPair(h):
		return OnePair
	default:
		return HighCard
	}
}

// TieBreakers returns the hand's rank values ordered for tie-breaking:
// by descending rank count first, then by descending rank, so paired ranks
// come before kickers. The result has one entry per distinct rank.
func TieBreakers(h deck.Hand) []int {
	counts := rankCounts(h)

	type rankCount struct {
		rank  deck.Rank
		count int
	}

	pairs := make([]rankCount, 0, len(counts))
	for rank, count := range counts {
		pairs = append(pairs, rankCount{rank, count})
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].count != pairs[j].count {
			return pairs[i].count > pairs[j].count
		}

		return pairs[i].rank > pairs[j].rank
	})

	breakers := make([]int, len(pairs))
	for i, p := range pairs {
		breakers[i] = int(p.rank)
	}

	return breakers
}

// ScoreOf computes the hand's score: the HandRank ordinal followed by the
// tie-breakers. Exactly two raw scores are rewritten afterwards, both for the
// five-high straight where the ace must play low; no other pattern is touched.
// Duplicate cards in the hand are not rejected and produce unspecified results.
func ScoreOf(h deck.Hand) Score {
	score := make(Score, 0, 6)
	score = append(score, int(HandRankOf(h)))
	score = append(score, TieBreakers(h)...)

	if score.equal(wheelRaw) {
		return wheel.clone()
	}

	if score.equal(wheelFlushRaw) {
		return wheelFlush.clone()
	}

	return score
}

func (s Score) clone() Score {
	s2 := make(Score, len(s))
	copy(s2, s)

	return s2
}

// Compare scores both hands and compares them per Score.Compare: -1 means
// left outranks right, +1 means right outranks left, 0 means the hands tie.
func Compare(left, right deck.Hand) int {
	return ScoreOf(left).Compare(ScoreOf(right))
}
