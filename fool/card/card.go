package card

import (
	"fmt"

	"github.com/fatih/color"
)

var trumpMark = color.New(color.Bold, color.Underline).SprintFunc()

// Card is immutable. Its trump flag is fixed when the deck is built.
type Card struct {
	rank  Rank
	suit  Suit
	trump bool
}

func New(rank Rank, suit Suit, trump bool) Card {
	return Card{
		rank:  rank,
		suit:  suit,
		trump: trump,
	}
}

func (c Card) Rank() Rank {
	return c.rank
}

func (c Card) Suit() Suit {
	return c.suit
}

func (c Card) Trump() bool {
	return c.trump
}

// Identical reports whether both cards have the same rank and suit. The
// trump flag takes no part in identity.
func (c Card) Identical(other Card) bool {
	return c.rank == other.rank && c.suit == other.suit
}

// GreaterThan reports whether c beats other. Cards of one suit compare by
// rank. Otherwise c wins only when it is a trump. Two non-trump cards of
// different suits are incomparable: neither is greater than the other.
func (c Card) GreaterThan(other Card) bool {
	if c.suit == other.suit {
		return c.rank > other.rank
	}
	return c.trump
}

// Designator renders the card the way players type it, e.g. "10C".
func (c Card) Designator() string {
	return fmt.Sprintf("%s%c", c.rank, c.suit.Initial())
}

func (c Card) String() string {
	text := c.suit.Paintf("%s%s", c.rank, c.suit.Symbol())
	if c.trump {
		return trumpMark(text)
	}
	return text
}
