package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/fool/fool/card"
)

// State is the snapshot a player sees when asked for a move.
type State struct {
	Round             int
	Trump             card.Suit
	DeckSize          int
	Table             []card.Card
	TableRanks        []card.Rank
	CurrentPlayerHand []card.Card
	PlayerSequence    []string
	PlayerHandCounts  map[string]int
	Attacker          string
	Defender          string
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Round %d, trump: %s, cards in the deck: %d", s.Round, s.Trump, s.DeckSize))

	var playerStatuses []string
	for _, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[playerName])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Players: %s", strings.Join(playerStatuses, ", ")))
	lines = append(lines, fmt.Sprintf("Attacker: %s, defender: %s", s.Attacker, s.Defender))

	if len(s.Table) == 0 {
		lines = append(lines, "Table is empty")
	} else {
		lines = append(lines, fmt.Sprintf("Table: %s", s.Table))
	}
	lines = append(lines, fmt.Sprintf("Your hand: %s", s.CurrentPlayerHand))

	return strings.Join(lines, "\n")
}
