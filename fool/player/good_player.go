package player

import (
	"github.com/ratel-online/fool/consts"
	"github.com/ratel-online/fool/fool/card"
	"github.com/ratel-online/fool/fool/game"
)

// goodPlayer sheds its cheapest cards and keeps trumps for the end game,
// when the deck is gone and they decide who becomes the fool.
type goodPlayer struct {
	basicPlayer
}

func NewGoodPlayer(name string) game.Player {
	return goodPlayer{basicPlayer: basicPlayer{name: name}}
}

func (p goodPlayer) Attack(gameState game.State) (string, error) {
	playable := game.PlayableAttacks(gameState.CurrentPlayerHand, gameState.TableRanks)
	if len(gameState.Table) > 0 && gameState.DeckSize > 0 {
		playable = plain(playable)
	}
	return first(playable), nil
}

func (p goodPlayer) Defend(gameState game.State, attackCard card.Card) (string, error) {
	playable := game.PlayableDefences(gameState.CurrentPlayerHand, attackCard)
	if len(playable) == 0 {
		return consts.Pass, nil
	}
	cheapest := playable[0]
	if cheapest.Trump() && !attackCard.Trump() && cheapest.Rank() >= card.Queen && gameState.DeckSize > 0 {
		return consts.Pass, nil
	}
	return cheapest.Designator(), nil
}

func (p goodPlayer) Throw(gameState game.State, maxCards int) ([]string, error) {
	playable := game.PlayableThrows(gameState.CurrentPlayerHand, gameState.TableRanks)
	if gameState.DeckSize > 0 {
		playable = plain(playable)
	}
	thrown := make([]string, 0, maxCards)
	for _, c := range playable {
		if len(thrown) == maxCards {
			break
		}
		thrown = append(thrown, c.Designator())
	}
	return thrown, nil
}

func plain(cards []card.Card) []card.Card {
	var result []card.Card
	for _, c := range cards {
		if !c.Trump() {
			result = append(result, c)
		}
	}
	return result
}
