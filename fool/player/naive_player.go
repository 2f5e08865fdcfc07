package player

import (
	"github.com/ratel-online/fool/consts"
	"github.com/ratel-online/fool/fool/card"
	"github.com/ratel-online/fool/fool/game"
)

// naivePlayer always plays the first legal card it finds.
type naivePlayer struct {
	basicPlayer
}

func NewNaivePlayer(name string) game.Player {
	return naivePlayer{basicPlayer: basicPlayer{name: name}}
}

func (p naivePlayer) Attack(gameState game.State) (string, error) {
	return first(game.PlayableAttacks(gameState.CurrentPlayerHand, gameState.TableRanks)), nil
}

func (p naivePlayer) Defend(gameState game.State, attackCard card.Card) (string, error) {
	return first(game.PlayableDefences(gameState.CurrentPlayerHand, attackCard)), nil
}

func (p naivePlayer) Throw(gameState game.State, maxCards int) ([]string, error) {
	playable := game.PlayableThrows(gameState.CurrentPlayerHand, gameState.TableRanks)
	if len(playable) == 0 || maxCards < 1 {
		return nil, nil
	}
	return []string{playable[0].Designator()}, nil
}

func first(playable []card.Card) string {
	if len(playable) == 0 {
		return consts.Pass
	}
	return playable[0].Designator()
}
