package game

import (
	"github.com/ratel-online/fool/fool/card"
	"github.com/ratel-online/fool/fool/event"
)

// RoundResult tells how a round ended for its defender.
type RoundResult struct {
	Round        int
	Defender     string
	DefenderLost bool
	CardsTaken   int
}

// round runs the attack, defend and throw exchanges of one round against
// the current seating: index 0 attacks first, index 1 defends, everyone
// else attacks after the first attacker in seat order.
type round struct {
	game       *Game
	attackers  []*playerController
	defender   *playerController
	maxAttacks int
	attacks    int
}

func newRound(g *Game) *round {
	attackers := make([]*playerController, 0, len(g.players)-1)
	for index, pc := range g.players {
		if index != 1 {
			attackers = append(attackers, pc)
		}
	}
	defender := g.players[1]
	maxAttacks := g.rules.MaxAttacks
	if defender.hand.Size() < maxAttacks {
		maxAttacks = defender.hand.Size()
	}
	return &round{
		game:       g,
		attackers:  attackers,
		defender:   defender,
		maxAttacks: maxAttacks,
	}
}

func (r *round) play() (RoundResult, error) {
	result := RoundResult{Round: r.game.round, Defender: r.defender.Name()}
	for _, attacker := range r.attackers {
		for r.attacks < r.maxAttacks {
			attackMove, err := r.attack(attacker)
			if err != nil {
				return result, err
			}
			if attackMove.passed() {
				break
			}
			defended, err := r.defend(attackMove.cards[0])
			if err != nil {
				return result, err
			}
			if defended {
				continue
			}
			if err := r.throwIn(); err != nil {
				return result, err
			}
			taken, err := r.defender.take(r.game.table, 0)
			if err != nil {
				return result, err
			}
			result.DefenderLost = true
			result.CardsTaken = taken
			return result, nil
		}
	}
	return result, nil
}

func (r *round) attack(attacker *playerController) (move, error) {
	g := r.game
	if attacker.NoCards() {
		g.bus.EmitPlayerPassed(event.PlayerPassedPayload{PlayerName: attacker.Name(), Action: event.Attack})
		return move{}, nil
	}
	attackMove, err := attacker.Attack(g.extractState(attacker), g.table, g.factory)
	if err != nil {
		return move{}, err
	}
	r.announce(attacker, event.Attack, attackMove)
	if !attackMove.passed() {
		g.table.AddCard(attackMove.cards[0])
		r.attacks++
	}
	return attackMove, nil
}

func (r *round) defend(attackCard card.Card) (bool, error) {
	g := r.game
	defendMove, err := r.defender.Defend(g.extractState(r.defender), attackCard, g.factory)
	if err != nil {
		return false, err
	}
	r.announce(r.defender, event.Defend, defendMove)
	if defendMove.passed() {
		return false, nil
	}
	g.table.AddCard(defendMove.cards[0])
	return true, nil
}

// throwIn offers every attacker, once each, to add cards of ranks already on
// the table until the shared budget runs out.
func (r *round) throwIn() error {
	g := r.game
	budget := throwBudget(r.maxAttacks, g.table.Size())
	for _, attacker := range r.attackers {
		if budget <= 0 {
			break
		}
		if attacker.NoCards() {
			continue
		}
		throwMove, err := attacker.Throw(g.extractState(attacker), g.table, budget, g.factory)
		if err != nil {
			return err
		}
		r.announce(attacker, event.Throw, throwMove)
		for _, thrown := range throwMove.cards {
			g.table.AddCard(thrown)
		}
		budget -= len(throwMove.cards)
	}
	return nil
}

func (r *round) announce(pc *playerController, action event.Action, m move) {
	bus := r.game.bus
	if m.timedOut {
		bus.EmitPlayerTimedOut(event.PlayerTimedOutPayload{PlayerName: pc.Name(), Action: action})
	}
	if m.passed() {
		if !m.timedOut {
			bus.EmitPlayerPassed(event.PlayerPassedPayload{PlayerName: pc.Name(), Action: action})
		}
		return
	}
	bus.EmitCardPlayed(event.CardPlayedPayload{PlayerName: pc.Name(), Action: action, Cards: m.cards})
}
