package game

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/ratel-online/fool/consts"
	"github.com/ratel-online/fool/fool/card"
)

// Deck only shrinks: it is built once per game and never refilled.
type Deck struct {
	sync.Mutex
	cards []card.Card
}

func NewDeck(factory card.Factory) *Deck {
	return &Deck{cards: factory.Cards()}
}

// NewStackedDeck keeps the given order, top card first.
func NewStackedDeck(cards []card.Card) *Deck {
	deck := &Deck{cards: make([]card.Card, len(cards))}
	copy(deck.cards, cards)
	return deck
}

func (d *Deck) Shuffle(rng *rand.Rand) {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	rng.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}

// Draw removes and returns up to amount cards from the top. Asking for more
// than is left returns whatever remains.
func (d *Deck) Draw(amount int) ([]card.Card, error) {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	if amount < 0 {
		return nil, fmt.Errorf("%wdraw %d cards", consts.ErrorsInvalidArgument, amount)
	}
	if amount > len(d.cards) {
		amount = len(d.cards)
	}
	cards := make([]card.Card, amount)
	copy(cards, d.cards[:amount])
	d.cards = d.cards[amount:]
	return cards, nil
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}
