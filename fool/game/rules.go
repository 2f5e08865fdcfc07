package game

import (
	"fmt"
	"math"

	"github.com/ratel-online/fool/consts"
	"github.com/ratel-online/fool/fool/card"
)

// Rules is the per-game configuration.
type Rules struct {
	DeckSize    int
	CardsToHave int
	MaxAttacks  int
}

func DefaultRules() Rules {
	return Rules{
		DeckSize:    36,
		CardsToHave: 6,
		MaxAttacks:  6,
	}
}

func (r Rules) Validate() error {
	if _, err := card.RanksFor(r.DeckSize); err != nil {
		return err
	}
	if r.CardsToHave < 1 {
		return fmt.Errorf("%wcards to have %d", consts.ErrorsInvalidArgument, r.CardsToHave)
	}
	if r.MaxAttacks < 1 {
		return fmt.Errorf("%wmax attacks %d", consts.ErrorsInvalidArgument, r.MaxAttacks)
	}
	return nil
}

// MaxPlayers is how many seats the deck can deal a full hand to.
func (r Rules) MaxPlayers() int {
	if r.CardsToHave < 1 {
		return 0
	}
	return r.DeckSize / r.CardsToHave
}

// CanAttack reports whether c may be put on a table holding tableRanks: the
// first attack of a round is free, later ones must match a rank in play.
func CanAttack(c card.Card, tableRanks []card.Rank) bool {
	return len(tableRanks) == 0 || containsRank(tableRanks, c.Rank())
}

func CanDefend(defendCard card.Card, attackCard card.Card) bool {
	return defendCard.GreaterThan(attackCard)
}

// CanThrow reports whether c may be thrown in to a defender who gave up.
func CanThrow(c card.Card, tableRanks []card.Rank) bool {
	return containsRank(tableRanks, c.Rank())
}

func PlayableAttacks(hand []card.Card, tableRanks []card.Rank) []card.Card {
	var playable []card.Card
	for _, candidate := range hand {
		if CanAttack(candidate, tableRanks) {
			playable = append(playable, candidate)
		}
	}
	return playable
}

func PlayableDefences(hand []card.Card, attackCard card.Card) []card.Card {
	var playable []card.Card
	for _, candidate := range hand {
		if CanDefend(candidate, attackCard) {
			playable = append(playable, candidate)
		}
	}
	return playable
}

func PlayableThrows(hand []card.Card, tableRanks []card.Rank) []card.Card {
	var playable []card.Card
	for _, candidate := range hand {
		if CanThrow(candidate, tableRanks) {
			playable = append(playable, candidate)
		}
	}
	return playable
}

// throwBudget is how many cards may still be thrown in. Every attack slot
// used so far left one or two cards on the table, so halving the table and
// rounding up counts those slots.
func throwBudget(maxAttacks int, tableSize int) int {
	used := int(math.Ceil(float64(tableSize) / 2))
	if used >= maxAttacks {
		return 0
	}
	return maxAttacks - used
}

func containsRank(ranks []card.Rank, rank card.Rank) bool {
	for _, r := range ranks {
		if r == rank {
			return true
		}
	}
	return false
}
