package msg_test

import (
	"fmt"
	"testing"

	"github.com/ratel-online/fool/consts"
	"github.com/ratel-online/fool/fool/event"
	"github.com/ratel-online/fool/fool/msg"
	"github.com/stretchr/testify/assert"
)

func TestPlayerPassed(t *testing.T) {
	message := msg.Message.PlayerPassed(event.PlayerPassedPayload{PlayerName: "Jinx", Action: event.Throw})
	assert.Equal(t, "Jinx does not want to or has no cards to throw\n", message)
}

func TestRoundFinished(t *testing.T) {
	assert.Equal(t, "Zoe could not defend and takes 3 card(s)\n", msg.Message.RoundFinished(event.RoundFinishedPayload{
		Round:        2,
		Defender:     "Zoe",
		DefenderLost: true,
		CardsTaken:   3,
	}))
	assert.Equal(t, "Zoe has beaten off every attack\n", msg.Message.RoundFinished(event.RoundFinishedPayload{
		Round:    2,
		Defender: "Zoe",
	}))
}

func TestGameFinished(t *testing.T) {
	assert.Equal(t, "Udyr is the fool!\n", msg.Message.GameFinished(event.GameFinishedPayload{Loser: "Udyr", HasLoser: true}))
	assert.Contains(t, msg.Message.GameFinished(event.GameFinishedPayload{}), "nobody is the fool")
}

func TestRoundStarted(t *testing.T) {
	message := msg.Message.RoundStarted(event.RoundStartedPayload{
		Round:    1,
		DeckSize: 24,
		Players:  []string{"A", "B"},
		Attacker: "A",
		Defender: "B",
	})
	assert.Contains(t, message, "Round 1")
	assert.Contains(t, message, "Cards in the deck: 24")
	assert.Contains(t, message, "Players: A, B")
	assert.Contains(t, message, "A attacks B")
}

func TestRejected(t *testing.T) {
	assert.Equal(t, "Illegal move. Try again.\n", msg.Message.Rejected(consts.ErrorsIllegalMove))
	assert.Equal(t, "Card not in hand. QH. Try again.\n", msg.Message.Rejected(fmt.Errorf("%wQH", consts.ErrorsCardNotInHand)))
}
