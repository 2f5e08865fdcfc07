package player

import (
	"github.com/ratel-online/fool/fool/card"
	"github.com/ratel-online/fool/fool/event"
	"github.com/ratel-online/fool/fool/game"
	"github.com/ratel-online/fool/fool/msg"
	"github.com/ratel-online/fool/fool/ui"
)

// HumanPlayer asks the console for every move and prints the milestones of
// the game it listens to.
type HumanPlayer struct {
	basicPlayer
}

func NewHumanPlayer(name string) *HumanPlayer {
	return &HumanPlayer{basicPlayer: basicPlayer{name: name}}
}

func (p *HumanPlayer) Attack(gameState game.State) (string, error) {
	ui.Println(gameState)
	return ui.PromptString(msg.Message.AttackPrompt(p.name, gameState.Defender))
}

func (p *HumanPlayer) Defend(gameState game.State, attackCard card.Card) (string, error) {
	ui.Println(gameState)
	return ui.PromptString(msg.Message.DefendPrompt(p.name, attackCard))
}

func (p *HumanPlayer) Throw(gameState game.State, maxCards int) ([]string, error) {
	ui.Println(gameState)
	return ui.PromptDesignators(msg.Message.ThrowPrompt(p.name, maxCards))
}

func (p *HumanPlayer) NotifyCardsDrawn(cards []card.Card) {
	ui.Print(msg.Message.HumanPlayerDrewCards(cards))
}

func (p *HumanPlayer) NotifyRejected(reason error) {
	ui.Error(reason)
}

func (p *HumanPlayer) OnRoundStarted(payload event.RoundStartedPayload) {
	ui.Banner("|FOOL|", msg.Message.RoundStarted(payload))
}

func (p *HumanPlayer) OnCardPlayed(payload event.CardPlayedPayload) {
	ui.Print(msg.Message.CardPlayed(payload))
}

func (p *HumanPlayer) OnPlayerPassed(payload event.PlayerPassedPayload) {
	ui.Print(msg.Message.PlayerPassed(payload))
}

func (p *HumanPlayer) OnPlayerTimedOut(payload event.PlayerTimedOutPayload) {
	ui.Print(msg.Message.PlayerTimedOut(payload))
}

func (p *HumanPlayer) OnRoundFinished(payload event.RoundFinishedPayload) {
	ui.Info(msg.Message.RoundFinished(payload))
}

func (p *HumanPlayer) OnPlayerFinished(payload event.PlayerFinishedPayload) {
	ui.Success(msg.Message.PlayerFinished(payload))
}

func (p *HumanPlayer) OnGameFinished(payload event.GameFinishedPayload) {
	ui.Banner("|GAME OVER|", msg.Message.GameFinished(payload))
}
