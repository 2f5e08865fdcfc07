package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/fool/fool/card"
	"github.com/ratel-online/fool/fool/event"
)

var Message = MessageWriter{}

// MessageWriter renders game milestones and prompts as plain text lines,
// shared by the console and the network front ends.
type MessageWriter struct{}

func (m MessageWriter) Welcome() string {
	symbols := make([]string, 0, len(card.Suits))
	for _, suit := range card.Suits {
		symbols = append(symbols, suit.Paintf("%s", suit.Symbol()))
	}
	return Sprintfln("WELCOME TO FOOL %s", strings.Join(symbols, " "))
}

func (m MessageWriter) RoundStarted(payload event.RoundStartedPayload) string {
	return Sprintlns([]string{
		fmt.Sprintf("======== Round %d ========", payload.Round),
		fmt.Sprintf("Trump: %s %s", payload.Trump.Paintf("%s", payload.Trump.Symbol()), payload.Trump.Name()),
		fmt.Sprintf("Cards in the deck: %d", payload.DeckSize),
		fmt.Sprintf("Players: %s", strings.Join(payload.Players, ", ")),
		fmt.Sprintf("%s attacks %s", payload.Attacker, payload.Defender),
	})
}

func (m MessageWriter) CardPlayed(payload event.CardPlayedPayload) string {
	switch payload.Action {
	case event.Attack:
		return Sprintfln("%s attacks with %s", payload.PlayerName, payload.Cards[0])
	case event.Defend:
		return Sprintfln("%s beats it with %s", payload.PlayerName, payload.Cards[0])
	default:
		return Sprintfln("%s throws %d card(s): %s", payload.PlayerName, len(payload.Cards), payload.Cards)
	}
}

func (m MessageWriter) PlayerPassed(payload event.PlayerPassedPayload) string {
	return Sprintfln("%s does not want to or has no cards to %s", payload.PlayerName, payload.Action)
}

func (m MessageWriter) PlayerTimedOut(payload event.PlayerTimedOutPayload) string {
	return Sprintfln("%s ran out of time to %s", payload.PlayerName, payload.Action)
}

func (m MessageWriter) RoundFinished(payload event.RoundFinishedPayload) string {
	if payload.DefenderLost {
		return Sprintfln("%s could not defend and takes %d card(s)", payload.Defender, payload.CardsTaken)
	}
	return Sprintfln("%s has beaten off every attack", payload.Defender)
}

func (m MessageWriter) PlayerFinished(payload event.PlayerFinishedPayload) string {
	return Sprintfln("%s has no cards left and leaves the game", payload.PlayerName)
}

func (m MessageWriter) GameFinished(payload event.GameFinishedPayload) string {
	if payload.HasLoser {
		return Sprintfln("%s is the fool!", payload.Loser)
	}
	return Sprintln("Everybody got rid of their cards, nobody is the fool!")
}

func (m MessageWriter) HumanPlayerDrewCards(cards []card.Card) string {
	return Sprintfln("You drew %s", cards)
}

func (m MessageWriter) Rejected(reason error) string {
	text := strings.TrimRight(strings.TrimSpace(reason.Error()), ".")
	return Sprintfln("%s. Try again.", text)
}

func (m MessageWriter) AttackPrompt(playerName string, defender string) string {
	return Sprintfln("%s, choose a card to attack %s or send %s:", playerName, defender, "PASS")
}

func (m MessageWriter) DefendPrompt(playerName string, attackCard card.Card) string {
	return Sprintfln("%s, choose a card to beat %s or send %s:", playerName, attackCard, "PASS")
}

func (m MessageWriter) ThrowPrompt(playerName string, maxCards int) string {
	return Sprintfln("%s, you can throw at most %d card(s), separated by spaces, or send %s:", playerName, maxCards, "PASS")
}
