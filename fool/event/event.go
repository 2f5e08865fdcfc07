package event

import "github.com/ratel-online/fool/fool/card"

// Action names the query point a payload belongs to.
type Action string

const (
	Attack Action = "attack"
	Defend Action = "defend"
	Throw  Action = "throw"
)

type RoundStartedPayload struct {
	Round    int
	Trump    card.Suit
	DeckSize int
	Players  []string
	Attacker string
	Defender string
}

type CardPlayedPayload struct {
	PlayerName string
	Action     Action
	Cards      []card.Card
}

type PlayerPassedPayload struct {
	PlayerName string
	Action     Action
}

type PlayerTimedOutPayload struct {
	PlayerName string
	Action     Action
}

type RoundFinishedPayload struct {
	Round        int
	Defender     string
	DefenderLost bool
	CardsTaken   int
}

type PlayerFinishedPayload struct {
	PlayerName string
}

type GameFinishedPayload struct {
	Loser    string
	HasLoser bool
}

type Listener interface {
	OnRoundStarted(RoundStartedPayload)
	OnCardPlayed(CardPlayedPayload)
	OnPlayerPassed(PlayerPassedPayload)
	OnPlayerTimedOut(PlayerTimedOutPayload)
	OnRoundFinished(RoundFinishedPayload)
	OnPlayerFinished(PlayerFinishedPayload)
	OnGameFinished(GameFinishedPayload)
}

// Bus fans milestones out to listeners. Each game owns its own bus, so
// parallel games never see each other's events. Delivery is fire and forget.
type Bus struct {
	listeners []Listener
}

func NewBus() *Bus {
	return &Bus{listeners: make([]Listener, 0)}
}

func (b *Bus) AddListener(listener Listener) {
	b.listeners = append(b.listeners, listener)
}

func (b *Bus) EmitRoundStarted(payload RoundStartedPayload) {
	for _, listener := range b.listeners {
		listener.OnRoundStarted(payload)
	}
}

func (b *Bus) EmitCardPlayed(payload CardPlayedPayload) {
	for _, listener := range b.listeners {
		listener.OnCardPlayed(payload)
	}
}

func (b *Bus) EmitPlayerPassed(payload PlayerPassedPayload) {
	for _, listener := range b.listeners {
		listener.OnPlayerPassed(payload)
	}
}

func (b *Bus) EmitPlayerTimedOut(payload PlayerTimedOutPayload) {
	for _, listener := range b.listeners {
		listener.OnPlayerTimedOut(payload)
	}
}

func (b *Bus) EmitRoundFinished(payload RoundFinishedPayload) {
	for _, listener := range b.listeners {
		listener.OnRoundFinished(payload)
	}
}

func (b *Bus) EmitPlayerFinished(payload PlayerFinishedPayload) {
	for _, listener := range b.listeners {
		listener.OnPlayerFinished(payload)
	}
}

func (b *Bus) EmitGameFinished(payload GameFinishedPayload) {
	for _, listener := range b.listeners {
		listener.OnGameFinished(payload)
	}
}
