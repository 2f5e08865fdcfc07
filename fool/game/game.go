package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ratel-online/fool/consts"
	"github.com/ratel-online/fool/fool/card"
	"github.com/ratel-online/fool/fool/event"
)

// Game owns the seating, deck, table and trump of one match. Seat order
// encodes roles: index 0 attacks first, index 1 defends.
type Game struct {
	rules    Rules
	factory  card.Factory
	players  []*playerController
	watchers []*playerController
	deck     *Deck
	table    *Table
	bus      *event.Bus
	rng      *rand.Rand

	trump    card.Suit
	trumpSet bool
	stacked  []string
	deckSet  bool
	round    int
	skipTurn bool
	loser    *playerController
	started  bool
	finished bool
}

type Option func(*Game)

func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

func WithTrump(trump card.Suit) Option {
	return func(g *Game) {
		g.trump = trump
		g.trumpSet = true
	}
}

// WithDeck replaces the shuffled deck with the given designators, top card
// first.
func WithDeck(designators ...string) Option {
	return func(g *Game) {
		g.stacked = designators
		g.deckSet = true
	}
}

func WithBus(bus *event.Bus) Option {
	return func(g *Game) {
		g.bus = bus
	}
}

func New(players []Player, rules Rules, options ...Option) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if len(players) < consts.MinPlayers || len(players) > rules.MaxPlayers() {
		return nil, fmt.Errorf("%w%d players", consts.ErrorsGamePlayersInvalid, len(players))
	}
	g := &Game{
		rules: rules,
		table: NewTable(),
	}
	for _, option := range options {
		option(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.bus == nil {
		g.bus = event.NewBus()
	}
	if !g.trumpSet {
		g.trump = card.Suits[g.rng.Intn(len(card.Suits))]
	}

	factory, err := card.NewFactory(rules.DeckSize, g.trump)
	if err != nil {
		return nil, err
	}
	g.factory = factory
	if g.deckSet {
		cards := make([]card.Card, 0, len(g.stacked))
		for _, designator := range g.stacked {
			c, err := factory.Parse(designator)
			if err != nil {
				return nil, err
			}
			cards = append(cards, c)
		}
		g.deck = NewStackedDeck(cards)
	} else {
		g.deck = NewDeck(factory)
	}

	seen := map[string]bool{}
	for _, player := range players {
		if seen[player.Name()] {
			return nil, fmt.Errorf("%wduplicate name %s", consts.ErrorsGamePlayersInvalid, player.Name())
		}
		seen[player.Name()] = true
		g.players = append(g.players, newPlayerController(player))
	}
	return g, nil
}

func (g *Game) Bus() *event.Bus {
	return g.bus
}

func (g *Game) Trump() card.Suit {
	return g.trump
}

func (g *Game) Factory() card.Factory {
	return g.factory
}

func (g *Game) Round() int {
	return g.round
}

func (g *Game) SkipTurn() bool {
	return g.skipTurn
}

func (g *Game) DeckSize() int {
	return g.deck.Size()
}

func (g *Game) TableCards() []card.Card {
	return g.table.Cards()
}

func (g *Game) Discard() []card.Card {
	return g.table.Discard()
}

// Attacker is the player opening the next round.
func (g *Game) Attacker() Player {
	if len(g.players) < 1 {
		return nil
	}
	return g.players[0].player
}

// Defender is the player defending in the next round.
func (g *Game) Defender() Player {
	if len(g.players) < 2 {
		return nil
	}
	return g.players[1].player
}

func (g *Game) Players() []Player {
	return unwrap(g.players)
}

// Watchers are the players who emptied their hands and left the game.
func (g *Game) Watchers() []Player {
	return unwrap(g.watchers)
}

// Loser is the fool, or nil while the game runs or when nobody lost.
func (g *Game) Loser() Player {
	if g.loser == nil {
		return nil
	}
	return g.loser.player
}

func (g *Game) Finished() bool {
	return g.finished
}

func (g *Game) GetPlayerCards(name string) []card.Card {
	if pc := g.controller(name); pc != nil {
		return pc.Hand()
	}
	return nil
}

// Start shuffles the deck, deals every hand and seats the holder of the
// lowest trump as the first attacker.
func (g *Game) Start() error {
	if g.started {
		return fmt.Errorf("%wgame already started", consts.ErrorsInvalidArgument)
	}
	g.started = true
	if !g.deckSet {
		g.deck.Shuffle(g.rng)
	}
	if err := g.refill(); err != nil {
		return err
	}
	g.rotate(g.findFirstAttacker())
	return nil
}

// findFirstAttacker returns the seat of the lowest trump holder, or a random
// seat when nobody holds a trump.
func (g *Game) findFirstAttacker() int {
	first := -1
	var smallest card.Card
	for index, pc := range g.players {
		lowest, ok := pc.hand.LowestTrump()
		if ok && (first < 0 || lowest.Rank() < smallest.Rank()) {
			first = index
			smallest = lowest
		}
	}
	if first < 0 {
		first = g.rng.Intn(len(g.players))
	}
	return first
}

// Play runs rounds until fewer than two players hold cards and returns the
// fool, or nil when everybody got rid of their cards at once.
func (g *Game) Play() (Player, error) {
	if !g.started {
		if err := g.Start(); err != nil {
			return nil, err
		}
	}
	for !g.finished {
		if _, err := g.PlayRound(); err != nil {
			return nil, err
		}
	}
	return g.Loser(), nil
}

// PlayRound plays one round and then discards the table, refills hands,
// rotates roles and retires players who ran out of cards.
func (g *Game) PlayRound() (RoundResult, error) {
	if !g.started {
		return RoundResult{}, fmt.Errorf("%wgame not started", consts.ErrorsInvalidArgument)
	}
	if g.finished {
		return RoundResult{}, fmt.Errorf("%wgame is over", consts.ErrorsInvalidArgument)
	}
	g.skipTurn = false
	g.round++
	g.bus.EmitRoundStarted(event.RoundStartedPayload{
		Round:    g.round,
		Trump:    g.trump,
		DeckSize: g.deck.Size(),
		Players:  names(g.players),
		Attacker: g.players[0].Name(),
		Defender: g.players[1].Name(),
	})

	result, err := newRound(g).play()
	if err != nil {
		return result, err
	}
	g.skipTurn = result.DefenderLost
	g.bus.EmitRoundFinished(event.RoundFinishedPayload{
		Round:        result.Round,
		Defender:     result.Defender,
		DefenderLost: result.DefenderLost,
		CardsTaken:   result.CardsTaken,
	})

	g.table.Clear()
	if err := g.refill(); err != nil {
		return result, err
	}
	g.reassignRoles()
	g.removeWatchers()
	g.checkFinished()
	return result, nil
}

// refill tops every hand up to CardsToHave: first attacker first, the other
// attackers next, the defender last.
func (g *Game) refill() error {
	for _, index := range g.refillOrder() {
		pc := g.players[index]
		if missing := g.rules.CardsToHave - pc.hand.Size(); missing > 0 {
			if _, err := pc.take(g.deck, missing); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Game) refillOrder() []int {
	if len(g.players) < 2 {
		order := make([]int, len(g.players))
		for i := range order {
			order[i] = i
		}
		return order
	}
	order := []int{0}
	for i := 2; i < len(g.players); i++ {
		order = append(order, i)
	}
	return append(order, 1)
}

// reassignRoles sends both the attacker and a beaten defender to the back.
// A defender who held sends only the attacker back and opens the next round.
func (g *Game) reassignRoles() {
	if len(g.players) < 2 {
		return
	}
	if g.skipTurn {
		g.rotate(2)
		return
	}
	g.rotate(1)
}

// rotate moves the first seats to the back of the seating.
func (g *Game) rotate(seats int) {
	players := make([]*playerController, 0, len(g.players))
	players = append(players, g.players[seats:]...)
	players = append(players, g.players[:seats]...)
	g.players = players
}

// removeWatchers retires the players left without cards once the deck is
// exhausted.
func (g *Game) removeWatchers() {
	if !g.deck.Empty() {
		return
	}
	players := make([]*playerController, 0, len(g.players))
	for _, pc := range g.players {
		if pc.NoCards() {
			g.watchers = append(g.watchers, pc)
			g.bus.EmitPlayerFinished(event.PlayerFinishedPayload{PlayerName: pc.Name()})
			continue
		}
		players = append(players, pc)
	}
	g.players = players
}

func (g *Game) checkFinished() {
	if len(g.players) >= 2 {
		return
	}
	g.finished = true
	if len(g.players) == 1 && g.loser == nil {
		g.loser = g.players[0]
	}
	payload := event.GameFinishedPayload{}
	if g.loser != nil {
		payload.Loser = g.loser.Name()
		payload.HasLoser = true
	}
	g.bus.EmitGameFinished(payload)
}

// ExtractState builds the snapshot the named player sees.
func (g *Game) ExtractState(name string) State {
	pc := g.controller(name)
	if pc == nil {
		return g.extractState(&playerController{hand: NewHand()})
	}
	return g.extractState(pc)
}

func (g *Game) extractState(current *playerController) State {
	playerSequence := make([]string, 0, len(g.players))
	playerHandCounts := make(map[string]int, len(g.players))
	for _, pc := range g.players {
		playerSequence = append(playerSequence, pc.Name())
		playerHandCounts[pc.Name()] = pc.hand.Size()
	}
	state := State{
		Round:             g.round,
		Trump:             g.trump,
		DeckSize:          g.deck.Size(),
		Table:             g.table.Cards(),
		TableRanks:        g.table.Ranks(),
		CurrentPlayerHand: current.Hand(),
		PlayerSequence:    playerSequence,
		PlayerHandCounts:  playerHandCounts,
	}
	if len(g.players) > 1 {
		state.Attacker = g.players[0].Name()
		state.Defender = g.players[1].Name()
	}
	return state
}

func (g *Game) controller(name string) *playerController {
	for _, pc := range g.players {
		if pc.Name() == name {
			return pc
		}
	}
	for _, pc := range g.watchers {
		if pc.Name() == name {
			return pc
		}
	}
	return nil
}

func names(players []*playerController) []string {
	result := make([]string, 0, len(players))
	for _, pc := range players {
		result = append(result, pc.Name())
	}
	return result
}

func unwrap(players []*playerController) []Player {
	result := make([]Player, 0, len(players))
	for _, pc := range players {
		result = append(result, pc.player)
	}
	return result
}
