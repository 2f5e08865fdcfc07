package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ratel-online/fool/consts"
	"github.com/ratel-online/fool/fool/card"
)

// move is one answer of a player after validation.
type move struct {
	cards    []card.Card
	timedOut bool
}

func (m move) passed() bool {
	return len(m.cards) == 0
}

type playerController struct {
	player Player
	hand   *Hand
}

func newPlayerController(player Player) *playerController {
	return &playerController{
		player: player,
		hand:   NewHand(),
	}
}

func (c *playerController) Name() string {
	return c.player.Name()
}

func (c *playerController) Hand() []card.Card {
	return c.hand.Cards()
}

func (c *playerController) NoCards() bool {
	return c.hand.Empty()
}

func (c *playerController) take(source Source, amount int) (int, error) {
	cards, err := c.hand.TakeFrom(source, amount)
	if err != nil {
		return 0, err
	}
	if len(cards) > 0 {
		c.player.NotifyCardsDrawn(cards)
	}
	return len(cards), nil
}

// resolve turns a designator into the matching card of the hand.
func (c *playerController) resolve(factory card.Factory, designator string) (card.Card, error) {
	wanted, err := factory.Parse(designator)
	if err != nil {
		return card.Card{}, err
	}
	held, found := c.hand.Find(wanted)
	if !found {
		return card.Card{}, fmt.Errorf("%w%s", consts.ErrorsCardNotInHand, wanted.Designator())
	}
	return held, nil
}

func (c *playerController) reject(reason error) {
	c.player.NotifyRejected(reason)
}

// Attack asks until the player names a legal attack card or passes. A pass
// is refused while the table is empty.
func (c *playerController) Attack(gameState State, table *Table, factory card.Factory) (move, error) {
	for {
		designator, err := c.player.Attack(gameState)
		if err != nil {
			if !errors.Is(err, consts.ErrorsTimeout) {
				return move{}, err
			}
			if table.Empty() {
				return move{cards: []card.Card{c.forcedAttack()}, timedOut: true}, nil
			}
			return move{timedOut: true}, nil
		}
		if isPass(designator) {
			if table.Empty() {
				c.reject(fmt.Errorf("%wyou cannot pass when the table is empty", consts.ErrorsIllegalMove))
				continue
			}
			return move{}, nil
		}
		selected, err := c.resolve(factory, designator)
		if err != nil {
			c.reject(err)
			continue
		}
		if !CanAttack(selected, table.Ranks()) {
			c.reject(fmt.Errorf("%wno cards of rank %s on the table", consts.ErrorsIllegalMove, selected.Rank()))
			continue
		}
		c.hand.RemoveCard(selected)
		return move{cards: []card.Card{selected}}, nil
	}
}

// forcedAttack plays the cheapest card for a player who timed out on an
// empty table, where passing is not allowed.
func (c *playerController) forcedAttack() card.Card {
	selected := c.hand.Cards()[0]
	c.hand.RemoveCard(selected)
	return selected
}

func (c *playerController) Defend(gameState State, attackCard card.Card, factory card.Factory) (move, error) {
	for {
		designator, err := c.player.Defend(gameState, attackCard)
		if err != nil {
			if errors.Is(err, consts.ErrorsTimeout) {
				return move{timedOut: true}, nil
			}
			return move{}, err
		}
		if isPass(designator) {
			return move{}, nil
		}
		selected, err := c.resolve(factory, designator)
		if err != nil {
			c.reject(err)
			continue
		}
		if !CanDefend(selected, attackCard) {
			c.reject(fmt.Errorf("%w%s does not beat %s", consts.ErrorsIllegalMove, selected.Designator(), attackCard.Designator()))
			continue
		}
		c.hand.RemoveCard(selected)
		return move{cards: []card.Card{selected}}, nil
	}
}

// Throw asks once for a batch of cards. A batch is applied whole or not at
// all; a rejected batch is asked for again.
func (c *playerController) Throw(gameState State, table *Table, maxCards int, factory card.Factory) (move, error) {
	for {
		designators, err := c.player.Throw(gameState, maxCards)
		if err != nil {
			if errors.Is(err, consts.ErrorsTimeout) {
				return move{timedOut: true}, nil
			}
			return move{}, err
		}
		designators = compact(designators)
		if len(designators) == 0 || (len(designators) == 1 && isPass(designators[0])) {
			return move{}, nil
		}
		selected, err := c.validateThrow(designators, table, maxCards, factory)
		if err != nil {
			c.reject(err)
			continue
		}
		for _, thrown := range selected {
			c.hand.RemoveCard(thrown)
		}
		return move{cards: selected}, nil
	}
}

func (c *playerController) validateThrow(designators []string, table *Table, maxCards int, factory card.Factory) ([]card.Card, error) {
	if len(designators) > maxCards {
		return nil, fmt.Errorf("%wat most %d card(s) can be thrown", consts.ErrorsIllegalMove, maxCards)
	}
	tableRanks := table.Ranks()
	selected := make([]card.Card, 0, len(designators))
	for _, designator := range designators {
		held, err := c.resolve(factory, designator)
		if err != nil {
			return nil, fmt.Errorf("%w%s", consts.ErrorsIllegalMove, err)
		}
		for _, other := range selected {
			if other.Identical(held) {
				return nil, fmt.Errorf("%w%s named twice", consts.ErrorsIllegalMove, held.Designator())
			}
		}
		if !CanThrow(held, tableRanks) {
			return nil, fmt.Errorf("%wno cards of rank %s on the table", consts.ErrorsIllegalMove, held.Rank())
		}
		selected = append(selected, held)
	}
	return selected, nil
}

func isPass(designator string) bool {
	return strings.EqualFold(strings.TrimSpace(designator), consts.Pass)
}

func compact(designators []string) []string {
	result := make([]string, 0, len(designators))
	for _, designator := range designators {
		if trimmed := strings.TrimSpace(designator); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
