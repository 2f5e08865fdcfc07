package game

import (
	"github.com/ratel-online/fool/fool/card"
)

// Player is the decision side of a seat, supplied by a front end. Answers
// are card designators such as "10C", or consts.Pass to decline; the engine
// validates every answer itself. Returning consts.ErrorsTimeout counts as a
// decline; any other error aborts the game.
type Player interface {
	Name() string
	Attack(gameState State) (string, error)
	Defend(gameState State, attackCard card.Card) (string, error)
	Throw(gameState State, maxCards int) ([]string, error)
	NotifyCardsDrawn(drawnCards []card.Card)
	NotifyRejected(reason error)
}
