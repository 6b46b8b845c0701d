package deck

import (
	"errors"
	"math/rand"
	"time"

	"showdown/internal/rng"
)

// ErrEndOfDeck is an error when a draw is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck
type Deck struct {
	Cards []Card `json:"cards"`
	seed  int64
	rng   *rand.Rand
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		seed: -1,
	}

	d.buildDeck()
	return d
}

// SetSeed will set the seed
// This should only be used by tests. Setting the seed is normally handled when you call Shuffle()
func (d *Deck) SetSeed(seed int64) {
	d.seed = seed
	d.rng = rand.New(rand.NewSource(seed))
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, 52)
	for _, rank := range Ranks {
		for _, suit := range Suits {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the deck of cards
// You can manually specify the seed, or pass 0 to have one picked for you.
func (d *Deck) Shuffle(seed int64) {
	if seed < 0 {
		panic("seed cannot be < 0")
	}

	// we always want to shuffle from an unshuffled deck.
	// this check here is to make sure we aren't double building the deck
	if len(d.Cards) != 52 || d.seed != -1 {
		d.buildDeck()
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	d.SetSeed(seed)

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// GetSeed returns the seed used to shuffle the deck
func (d *Deck) GetSeed() int64 {
	return d.seed
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// CanDraw returns true if there are at least count cards remaining
func (d *Deck) CanDraw(count int) bool {
	return len(d.Cards) >= count
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned.
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) == 0 {
		return Card{}, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// DrawHand draws the next count cards as a hand
func (d *Deck) DrawHand(count int) (Hand, error) {
	if !d.CanDraw(count) {
		return nil, ErrEndOfDeck
	}

	hand := make(Hand, 0, count)
	for i := 0; i < count; i++ {
		card, err := d.Draw()
		if err != nil {
			return nil, err
		}

		hand.AddCard(card)
	}

	return hand, nil
}

// CommunityCards draws the five cards usable by all players at the table
func (d *Deck) CommunityCards() (Hand, error) {
	return d.DrawHand(5)
}

// HoleCards draws the two cards given to a player at the start of a game
func (d *Deck) HoleCards() (Hand, error) {
	return d.DrawHand(2)
}

// SplitIntoFives partitions the remaining deck into five-card hands.
// Leftover cards that cannot form a complete hand are not returned.
func (d *Deck) SplitIntoFives() []Hand {
	hands := make([]Hand, 0, len(d.Cards)/5)
	for len(d.Cards) >= 5 {
		hand, _ := d.DrawHand(5)
		hands = append(hands, hand)
	}

	return hands
}

// RandomCard returns a uniformly random card. The card is drawn from the
// full rank and suit space, not from any particular deck.
func RandomCard(g rng.Generator) Card {
	return Card{
		Rank: Ranks[g.Intn(len(Ranks))],
		Suit: Suits[g.Intn(len(Suits))],
	}
}
