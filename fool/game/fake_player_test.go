package game_test

import (
	"github.com/ratel-online/fool/consts"
	"github.com/ratel-online/fool/fool/card"
	"github.com/ratel-online/fool/fool/game"
)

const timeout = "TIMEOUT"

// scriptedPlayer answers from queues and falls back to the cheapest legal
// move once a queue runs dry.
type scriptedPlayer struct {
	name     string
	attacks  []string
	defends  []string
	throws   [][]string
	drawn    []card.Card
	rejected []error
	fatal    error
}

func newScriptedPlayer(name string) *scriptedPlayer {
	return &scriptedPlayer{name: name}
}

func (p *scriptedPlayer) Name() string {
	return p.name
}

func (p *scriptedPlayer) Attack(state game.State) (string, error) {
	if p.fatal != nil {
		return "", p.fatal
	}
	if len(p.attacks) > 0 {
		answer := p.attacks[0]
		p.attacks = p.attacks[1:]
		return answerOf(answer)
	}
	playable := game.PlayableAttacks(state.CurrentPlayerHand, state.TableRanks)
	if len(playable) == 0 {
		return consts.Pass, nil
	}
	return playable[0].Designator(), nil
}

func (p *scriptedPlayer) Defend(state game.State, attackCard card.Card) (string, error) {
	if len(p.defends) > 0 {
		answer := p.defends[0]
		p.defends = p.defends[1:]
		return answerOf(answer)
	}
	playable := game.PlayableDefences(state.CurrentPlayerHand, attackCard)
	if len(playable) == 0 {
		return consts.Pass, nil
	}
	return playable[0].Designator(), nil
}

func (p *scriptedPlayer) Throw(state game.State, maxCards int) ([]string, error) {
	if len(p.throws) > 0 {
		answer := p.throws[0]
		p.throws = p.throws[1:]
		if len(answer) == 1 && answer[0] == timeout {
			return nil, consts.ErrorsTimeout
		}
		return answer, nil
	}
	return nil, nil
}

func (p *scriptedPlayer) NotifyCardsDrawn(cards []card.Card) {
	p.drawn = append(p.drawn, cards...)
}

func (p *scriptedPlayer) NotifyRejected(reason error) {
	p.rejected = append(p.rejected, reason)
}

func answerOf(answer string) (string, error) {
	if answer == timeout {
		return "", consts.ErrorsTimeout
	}
	return answer, nil
}

func players(scripted ...*scriptedPlayer) []game.Player {
	result := make([]game.Player, 0, len(scripted))
	for _, p := range scripted {
		result = append(result, p)
	}
	return result
}

func designators(cards []card.Card) []string {
	result := make([]string, 0, len(cards))
	for _, c := range cards {
		result = append(result, c.Designator())
	}
	return result
}

func nameList(list []game.Player) []string {
	result := make([]string, 0, len(list))
	for _, p := range list {
		result = append(result, p.Name())
	}
	return result
}
