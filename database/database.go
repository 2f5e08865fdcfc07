package database

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/log"
	modelx "github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/fool/consts"
	"github.com/ratel-online/fool/fool/game"
)

var roomIds int64 = 0
var players = hashmap.New()
var rooms = hashmap.New()
var roomPlayers = hashmap.New()

func init() {
	async.Async(func() {
		for {
			time.Sleep(1 * time.Minute)
			rooms.Foreach(func(e *hashmap.Entry) {
				room := e.Value().(*Room)
				room.Lock()
				room.cancel()
				room.Unlock()
			})
		}
	})
}

func Connected(conn *network.Conn, info *modelx.AuthInfo) *Player {
	player := &Player{
		ID:    info.ID,
		Name:  info.Name,
		Score: info.Score,
	}
	player.Conn(conn)
	players.Set(info.ID, player)
	return player
}

// CreateRoom opens a waiting room whose rules start from defaults.
func CreateRoom(creator int64, defaults game.Rules, timeout time.Duration) *Room {
	room := &Room{
		ID:         atomic.AddInt64(&roomIds, 1),
		State:      consts.RoomStateWaiting,
		Creator:    creator,
		ActiveTime: time.Now(),
		MaxPlayers: defaults.MaxPlayers(),
		Rules:      defaults,
		AskTimeout: timeout,
	}
	rooms.Set(room.ID, room)
	roomPlayers.Set(room.ID, map[int64]bool{})
	log.Infof("room %d created by player %d\n", room.ID, creator)
	return room
}

func GetRooms() []*Room {
	list := make([]*Room, 0)
	rooms.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Room))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

func GetRoom(roomId int64) *Room {
	return getRoom(roomId)
}

func GetPlayer(playerId int64) *Player {
	return getPlayer(playerId)
}

func getRoom(roomId int64) *Room {
	if v, ok := rooms.Get(roomId); ok {
		return v.(*Room)
	}
	return nil
}

func getPlayer(playerId int64) *Player {
	if v, ok := players.Get(playerId); ok {
		return v.(*Player)
	}
	return nil
}

func getRoomPlayers(roomId int64) map[int64]bool {
	if v, ok := roomPlayers.Get(roomId); ok {
		return v.(map[int64]bool)
	}
	return nil
}

// RoomPlayers returns the ids seated in the room, lowest first.
func RoomPlayers(roomId int64) []int64 {
	ids := make([]int64, 0)
	for id := range getRoomPlayers(roomId) {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func JoinRoom(roomId, playerId int64) error {
	player := getPlayer(playerId)
	if player == nil {
		return consts.ErrorsExist
	}
	room := getRoom(roomId)
	if room == nil {
		return consts.ErrorsRoomInvalid
	}
	room.Lock()
	defer room.Unlock()
	if room.State == consts.RoomStateRunning {
		return consts.ErrorsJoinFailForRoomRunning
	}
	if room.Players+room.Robots >= room.MaxPlayers {
		return consts.ErrorsRoomPlayersIsFull
	}
	playersIds := getRoomPlayers(roomId)
	if playersIds != nil {
		playersIds[playerId] = true
		room.Players++
		room.ActiveTime = time.Now()
		player.RoomID = roomId
	}
	return nil
}

func LeaveRoom(roomId, playerId int64) {
	room := getRoom(roomId)
	if room != nil {
		room.Lock()
		defer room.Unlock()
		room.removePlayer(getPlayer(playerId))
	}
}

func Broadcast(roomId int64, msg string, exclude ...int64) {
	room := getRoom(roomId)
	if room == nil {
		return
	}
	room.broadcast(msg, exclude...)
}
