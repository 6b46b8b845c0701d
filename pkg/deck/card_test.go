package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_rankConstants(t *testing.T) {
	assert.Equal(t, Rank(2), Two)
	assert.Equal(t, Rank(10), Ten)
	assert.Equal(t, Rank(11), Jack)
	assert.Equal(t, Rank(12), Queen)
	assert.Equal(t, Rank(13), King)
	assert.Equal(t, Rank(14), Ace)
	assert.Equal(t, Rank(1), LowAce)
}

func TestRank_ordering(t *testing.T) {
	a := assert.New(t)

	a.True(Two < Three)
	a.True(Ten < Jack)
	a.True(King < Ace)

	for i := 1; i < len(Ranks); i++ {
		a.True(Ranks[i-1] < Ranks[i])
	}
}

func TestCard_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("2♡", Card{Rank: Two, Suit: Hearts}.String())
	a.Equal("J♣", Card{Rank: Jack, Suit: Clubs}.String())
	a.Equal("Q♢", Card{Rank: Queen, Suit: Diamonds}.String())
	a.Equal("K♠", Card{Rank: King, Suit: Spades}.String())
	a.Equal("A♠", Card{Rank: Ace, Suit: Spades}.String())
}

func TestCard_equality(t *testing.T) {
	a := assert.New(t)

	a.Equal(Card{Rank: Five, Suit: Clubs}, CardFromString("5c"))
	a.True(Card{Rank: Five, Suit: Clubs} == Card{Rank: Five, Suit: Clubs})
	a.False(Card{Rank: Five, Suit: Clubs} == Card{Rank: Five, Suit: Hearts})

	// cards are usable as map keys
	seen := map[Card]bool{
		{Rank: Five, Suit: Clubs}: true,
	}
	a.True(seen[CardFromString("5c")])
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	a.Equal(Card{Rank: Two, Suit: Clubs}, CardFromString("2c"))
	a.Equal(Card{Rank: Ten, Suit: Diamonds}, CardFromString("10d"))
	a.Equal(Card{Rank: Ace, Suit: Spades}, CardFromString("14s"))

	a.Panics(func() {
		CardFromString("1c")
	})

	a.Panics(func() {
		CardFromString("15c")
	})

	a.Panics(func() {
		CardFromString("5x")
	})
}

func TestCardsFromString(t *testing.T) {
	a := assert.New(t)

	a.Equal([]Card{}, CardsFromString(""))

	cards := CardsFromString("2c,3h,14s")
	a.Equal([]Card{
		{Rank: Two, Suit: Clubs},
		{Rank: Three, Suit: Hearts},
		{Rank: Ace, Suit: Spades},
	}, cards)

	a.Equal("2c,3h,14s", CardsToString(cards))
}

func TestCardToString(t *testing.T) {
	a := assert.New(t)

	a.Equal("14c", CardToString(Card{Rank: Ace, Suit: Clubs}))
	a.Equal("2s", CardToString(Card{Rank: Two, Suit: Spades}))
}
