package game

import (
	"sort"

	"github.com/ratel-online/fool/fool/card"
)

// Source is anything a hand can take cards from: the deck or the table.
type Source interface {
	Draw(amount int) ([]card.Card, error)
}

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 6)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

// TakeFrom draws amount cards from source into the hand and returns them.
func (h *Hand) TakeFrom(source Source, amount int) ([]card.Card, error) {
	cards, err := source.Draw(amount)
	if err != nil {
		return nil, err
	}
	h.AddCards(cards)
	return cards, nil
}

// Cards returns a copy sorted for display: plain suits first, trumps last,
// each by rank.
func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	SortCards(cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Size() int {
	return len(h.cards)
}

// Find looks a card up by rank and suit.
func (h *Hand) Find(target card.Card) (card.Card, bool) {
	for _, cardInHand := range h.cards {
		if cardInHand.Identical(target) {
			return cardInHand, true
		}
	}
	return card.Card{}, false
}

func (h *Hand) RemoveCard(target card.Card) bool {
	for index, cardInHand := range h.cards {
		if cardInHand.Identical(target) {
			h.cards[index] = h.cards[len(h.cards)-1]
			h.cards = h.cards[:len(h.cards)-1]
			return true
		}
	}
	return false
}

func (h *Hand) LowestTrump() (card.Card, bool) {
	var (
		lowest card.Card
		found  bool
	)
	for _, cardInHand := range h.cards {
		if cardInHand.Trump() && (!found || cardInHand.Rank() < lowest.Rank()) {
			lowest = cardInHand
			found = true
		}
	}
	return lowest, found
}

func SortCards(cards []card.Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		if cards[i].Trump() != cards[j].Trump() {
			return !cards[i].Trump()
		}
		if cards[i].Rank() != cards[j].Rank() {
			return cards[i].Rank() < cards[j].Rank()
		}
		return cards[i].Suit() < cards[j].Suit()
	})
}
