package card

import (
	"fmt"
	"strings"

	"github.com/ratel-online/fool/consts"
)

// Factory builds the cards of one game: it knows the rank variant in play
// and the trump suit, so every card it creates carries the right trump flag.
type Factory struct {
	ranks Ranks
	trump Suit
}

func NewFactory(deckSize int, trump Suit) (Factory, error) {
	ranks, err := RanksFor(deckSize)
	if err != nil {
		return Factory{}, err
	}
	if !trump.Valid() {
		return Factory{}, fmt.Errorf("%wtrump suit %d", consts.ErrorsInvalidArgument, trump)
	}
	return Factory{ranks: ranks, trump: trump}, nil
}

func (f Factory) Trump() Suit {
	return f.trump
}

func (f Factory) Ranks() Ranks {
	return f.ranks
}

// Size is the number of cards in a full deck.
func (f Factory) Size() int {
	return len(f.ranks) * len(Suits)
}

func (f Factory) New(rank Rank, suit Suit) (Card, error) {
	if !f.ranks.Contains(rank) || !suit.Valid() {
		return Card{}, fmt.Errorf("%w%s of %s", consts.ErrorsInvalidArgument, rank, suit.Name())
	}
	return New(rank, suit, suit == f.trump), nil
}

// Parse converts a designator such as "10C" or "as" into a card.
func (f Factory) Parse(designator string) (Card, error) {
	text := strings.ToUpper(strings.TrimSpace(designator))
	if len(text) < 2 || len(text) > 3 {
		return Card{}, fmt.Errorf("%w'%s'", consts.ErrorsInvalidCardDesignator, designator)
	}
	rank, ok := rankByLabel(text[:len(text)-1])
	if !ok || !f.ranks.Contains(rank) {
		return Card{}, fmt.Errorf("%w'%s'", consts.ErrorsInvalidCardDesignator, designator)
	}
	suit, ok := suitByInitial(text[len(text)-1])
	if !ok {
		return Card{}, fmt.Errorf("%w'%s'", consts.ErrorsInvalidCardDesignator, designator)
	}
	return New(rank, suit, suit == f.trump), nil
}

// Cards returns every rank and suit combination of the variant, suit by suit.
func (f Factory) Cards() []Card {
	cards := make([]Card, 0, f.Size())
	for _, suit := range Suits {
		for _, rank := range f.ranks {
			cards = append(cards, New(rank, suit, suit == f.trump))
		}
	}
	return cards
}
