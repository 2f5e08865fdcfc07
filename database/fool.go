package database

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/fool/consts"
	"github.com/ratel-online/fool/fool/card"
	"github.com/ratel-online/fool/fool/event"
	"github.com/ratel-online/fool/fool/game"
	"github.com/ratel-online/fool/fool/msg"
	"github.com/ratel-online/fool/fool/player"
)

// FoolGame is one running match of a room. Every match owns its engine and
// event bus, so rooms play in parallel without sharing state.
type FoolGame struct {
	ID      string     `json:"id"`
	Room    *Room      `json:"room"`
	Players []int64    `json:"players"`
	Game    *game.Game `json:"-"`

	arrivals chan int64
	done     chan struct{}
	err      error
}

// StartFoolGame seats the room's players and robots in random order and
// plays the match in its own goroutine. The room must be locked by the
// caller.
func StartFoolGame(room *Room) (*FoolGame, error) {
	ids := RoomPlayers(room.ID)
	seats := make([]game.Player, 0, len(ids)+room.Robots)
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		p := getPlayer(id)
		if p == nil {
			continue
		}
		name := p.Name
		for _, taken := range names {
			if taken == name {
				name = p.String()
				break
			}
		}
		seats = append(seats, NewFoolPlayer(name, p, room.AskTimeout))
		names = append(names, name)
	}
	seats = append(seats, player.GenerateBots(room.Robots, names...)...)
	rand.Shuffle(len(seats), func(i, j int) { seats[i], seats[j] = seats[j], seats[i] })

	bus := event.NewBus()
	bus.AddListener(roomListener{roomID: room.ID})
	g, err := game.New(seats, room.Rules, game.WithBus(bus))
	if err != nil {
		return nil, err
	}
	fg := &FoolGame{
		ID:       uuid.NewString(),
		Room:     room,
		Players:  ids,
		Game:     g,
		arrivals: make(chan int64, len(ids)),
		done:     make(chan struct{}),
	}
	room.Game = fg
	room.State = consts.RoomStateRunning
	log.Infof("game %s started in room %d with %d player(s) and %d robot(s)\n", fg.ID, room.ID, len(ids), room.Robots)
	async.Async(fg.run)
	return fg, nil
}

// Arrive tells the match that a player stopped reading lobby input and can
// be asked for moves.
func (fg *FoolGame) Arrive(playerId int64) {
	fg.arrivals <- playerId
}

// Done is closed once the match is over, whatever the outcome.
func (fg *FoolGame) Done() <-chan struct{} {
	return fg.done
}

func (fg *FoolGame) Err() error {
	return fg.err
}

func (fg *FoolGame) run() {
	defer fg.finish()
	fg.waitArrivals(consts.AuthTimeout)
	Broadcast(fg.Room.ID, msg.Message.Welcome())
	loser, err := fg.Game.Play()
	if err != nil {
		fg.err = err
		log.Errorf("game %s aborted: %v\n", fg.ID, err)
		Broadcast(fg.Room.ID, fmt.Sprintf("Game aborted: %v\n", err))
		return
	}
	if loser != nil {
		log.Infof("game %s finished, loser %s\n", fg.ID, loser.Name())
	} else {
		log.Infof("game %s finished without loser\n", fg.ID)
	}
}

func (fg *FoolGame) waitArrivals(timeout time.Duration) {
	deadline := time.After(timeout)
	for arrived := 0; arrived < len(fg.Players); arrived++ {
		select {
		case <-fg.arrivals:
		case <-deadline:
			return
		}
	}
}

func (fg *FoolGame) finish() {
	room := fg.Room
	room.Lock()
	room.Game = nil
	room.State = consts.RoomStateWaiting
	room.ActiveTime = time.Now()
	room.Unlock()
	close(fg.done)
}

type client interface {
	WriteString(data string) error
	AskForString(timeout ...time.Duration) (string, error)
}

// FoolPlayer lets a connected client take part in a match. Every question
// is written to the client and the answer is awaited for at most timeout.
type FoolPlayer struct {
	name    string
	client  client
	timeout time.Duration
}

func NewFoolPlayer(name string, c client, timeout time.Duration) *FoolPlayer {
	return &FoolPlayer{name: name, client: c, timeout: timeout}
}

func (fp *FoolPlayer) Name() string {
	return fp.name
}

func (fp *FoolPlayer) Attack(gameState game.State) (string, error) {
	return fp.ask(gameState, msg.Message.AttackPrompt(fp.name, gameState.Defender))
}

func (fp *FoolPlayer) Defend(gameState game.State, attackCard card.Card) (string, error) {
	return fp.ask(gameState, msg.Message.DefendPrompt(fp.name, attackCard))
}

func (fp *FoolPlayer) Throw(gameState game.State, maxCards int) ([]string, error) {
	answer, err := fp.ask(gameState, msg.Message.ThrowPrompt(fp.name, maxCards))
	if err != nil {
		return nil, err
	}
	return msg.Fields(answer), nil
}

func (fp *FoolPlayer) NotifyCardsDrawn(cards []card.Card) {
	_ = fp.client.WriteString(msg.Message.HumanPlayerDrewCards(cards))
}

func (fp *FoolPlayer) NotifyRejected(reason error) {
	_ = fp.client.WriteString(msg.Message.Rejected(reason))
}

func (fp *FoolPlayer) ask(gameState game.State, prompt string) (string, error) {
	if err := fp.client.WriteString(msg.Sprintlns([]string{gameState.String(), strings.TrimRight(prompt, "\n")})); err != nil {
		return "", err
	}
	return fp.client.AskForString(fp.timeout)
}

// roomListener broadcasts the milestones of a match to its room.
type roomListener struct {
	roomID int64
}

func (l roomListener) OnRoundStarted(payload event.RoundStartedPayload) {
	Broadcast(l.roomID, msg.Message.RoundStarted(payload))
}

func (l roomListener) OnCardPlayed(payload event.CardPlayedPayload) {
	Broadcast(l.roomID, msg.Message.CardPlayed(payload))
}

func (l roomListener) OnPlayerPassed(payload event.PlayerPassedPayload) {
	Broadcast(l.roomID, msg.Message.PlayerPassed(payload))
}

func (l roomListener) OnPlayerTimedOut(payload event.PlayerTimedOutPayload) {
	Broadcast(l.roomID, msg.Message.PlayerTimedOut(payload))
}

func (l roomListener) OnRoundFinished(payload event.RoundFinishedPayload) {
	Broadcast(l.roomID, msg.Message.RoundFinished(payload))
}

func (l roomListener) OnPlayerFinished(payload event.PlayerFinishedPayload) {
	Broadcast(l.roomID, msg.Message.PlayerFinished(payload))
}

func (l roomListener) OnGameFinished(payload event.GameFinishedPayload) {
	Broadcast(l.roomID, msg.Message.GameFinished(payload))
}
