package game

import (
	"sort"

	"github.com/ratel-online/fool/fool/card"
)

// Table holds the cards of the current round. ranks always equals the set
// of ranks among cards.
type Table struct {
	cards   []card.Card
	ranks   map[card.Rank]bool
	discard []card.Card
}

func NewTable() *Table {
	return &Table{
		cards: make([]card.Card, 0, 12),
		ranks: map[card.Rank]bool{},
	}
}

func (t *Table) AddCard(c card.Card) {
	t.cards = append(t.cards, c)
	t.ranks[c.Rank()] = true
}

func (t *Table) HasRank(rank card.Rank) bool {
	return t.ranks[rank]
}

// Ranks returns the ranks present, lowest first.
func (t *Table) Ranks() []card.Rank {
	ranks := make([]card.Rank, 0, len(t.ranks))
	for rank := range t.ranks {
		ranks = append(ranks, rank)
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })
	return ranks
}

func (t *Table) Cards() []card.Card {
	cards := make([]card.Card, len(t.cards))
	copy(cards, t.cards)
	return cards
}

// Discard returns the beaten cards of every round so far.
func (t *Table) Discard() []card.Card {
	cards := make([]card.Card, len(t.discard))
	copy(cards, t.discard)
	return cards
}

func (t *Table) Size() int {
	return len(t.cards)
}

func (t *Table) Empty() bool {
	return len(t.cards) == 0
}

// Clear moves every card on the table to the discard pile.
func (t *Table) Clear() {
	t.discard = append(t.discard, t.cards...)
	t.reset()
}

// TakeAll removes and returns every card without discarding it.
func (t *Table) TakeAll() []card.Card {
	cards := t.Cards()
	t.reset()
	return cards
}

// Draw lets a hand take from the table like from the deck. The table
// always gives away all of its cards, whatever the amount.
func (t *Table) Draw(int) ([]card.Card, error) {
	return t.TakeAll(), nil
}

func (t *Table) reset() {
	t.cards = make([]card.Card, 0, 12)
	t.ranks = map[card.Rank]bool{}
}
