package game

import "github.com/ratel-online/fool/fool/card"

// SeatWithHands skips dealing: every player gets the named cards and the
// seating stays as passed to New.
func (g *Game) SeatWithHands(hands map[string][]string) error {
	for _, pc := range g.players {
		for _, designator := range hands[pc.Name()] {
			c, err := g.factory.Parse(designator)
			if err != nil {
				return err
			}
			pc.hand.AddCards([]card.Card{c})
		}
	}
	g.started = true
	return nil
}

var ThrowBudget = throwBudget
