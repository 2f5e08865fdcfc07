package database

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/fool/consts"
	"github.com/ratel-online/fool/fool/game"
)

type Room struct {
	sync.Mutex

	ID         int64         `json:"id"`
	Game       *FoolGame     `json:"game"`
	State      int           `json:"state"`
	Players    int           `json:"players"`
	Robots     int           `json:"robots"`
	Creator    int64         `json:"creator"`
	ActiveTime time.Time     `json:"activeTime"`
	MaxPlayers int           `json:"maxPlayers"`
	Password   string        `json:"password"`
	Rules      game.Rules    `json:"rules"`
	AskTimeout time.Duration `json:"askTimeout"`
}

// SetRoomProps changes one setting of a waiting room, see consts.RoomProps*.
func SetRoomProps(room *Room, key, value string) error {
	room.Lock()
	defer room.Unlock()
	if room.State != consts.RoomStateWaiting {
		return consts.ErrorsJoinFailForRoomRunning
	}
	if key == consts.RoomPropsPassword {
		if value == "off" {
			value = ""
		}
		room.Password = value
		return nil
	}
	number, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w%s=%s", consts.ErrorsRoomPropsInvalid, key, value)
	}
	rules := room.Rules
	maxPlayers := room.MaxPlayers
	robots := room.Robots
	switch key {
	case consts.RoomPropsPlayerNum:
		maxPlayers = number
	case consts.RoomPropsDeckSize:
		rules.DeckSize = number
	case consts.RoomPropsCardsToHave:
		rules.CardsToHave = number
	case consts.RoomPropsMaxAttacks:
		rules.MaxAttacks = number
	case consts.RoomPropsRobots:
		robots = number
	default:
		return fmt.Errorf("%wunknown key %s", consts.ErrorsRoomPropsInvalid, key)
	}
	if err := rules.Validate(); err != nil {
		return fmt.Errorf("%w%s=%s", consts.ErrorsRoomPropsInvalid, key, value)
	}
	if key != consts.RoomPropsPlayerNum && maxPlayers > rules.MaxPlayers() {
		maxPlayers = rules.MaxPlayers()
	}
	if maxPlayers < consts.MinPlayers || maxPlayers > rules.MaxPlayers() {
		return fmt.Errorf("%w%s=%s", consts.ErrorsRoomPropsInvalid, key, value)
	}
	if robots < 0 || room.Players+robots > maxPlayers {
		return fmt.Errorf("%w%s=%s", consts.ErrorsRoomPropsInvalid, key, value)
	}
	room.Rules = rules
	room.MaxPlayers = maxPlayers
	room.Robots = robots
	room.ActiveTime = time.Now()
	return nil
}

func (room *Room) removePlayer(player *Player) {
	if room == nil || player == nil {
		return
	}
	room.ActiveTime = time.Now()
	playersIds := getRoomPlayers(room.ID)
	if _, ok := playersIds[player.ID]; ok {
		room.Players--
		player.RoomID = 0
		delete(playersIds, player.ID)
		if len(playersIds) > 0 && room.Creator == player.ID {
			for _, id := range RoomPlayers(room.ID) {
				room.Creator = id
				break
			}
		}
	}
	if len(playersIds) == 0 {
		room.delete()
	}
}

func (room *Room) cancel() {
	if room.ActiveTime.Add(24 * time.Hour).Before(time.Now()) {
		log.Infof("room %d is timeout 24 hours, removed.\n", room.ID)
		room.delete()
		return
	}
	living := false
	for id := range getRoomPlayers(room.ID) {
		if player := getPlayer(id); player != nil && player.online {
			living = true
			break
		}
	}
	if !living {
		log.Infof("room %d is not living, removed.\n", room.ID)
		room.delete()
	}
}

func (room *Room) broadcast(msg string, exclude ...int64) {
	room.ActiveTime = time.Now()
	excludeSet := map[int64]bool{}
	for _, exc := range exclude {
		excludeSet[exc] = true
	}
	for playerId := range getRoomPlayers(room.ID) {
		if player := getPlayer(playerId); player != nil && player.online && !excludeSet[playerId] {
			_ = player.WriteString(">> " + msg)
		}
	}
}

func (room *Room) delete() {
	if room != nil {
		rooms.Del(room.ID)
		roomPlayers.Del(room.ID)
	}
}
