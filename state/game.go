package state

import (
	"github.com/ratel-online/fool/consts"
	"github.com/ratel-online/fool/database"
)

// foolGame parks the connection while the match asks it for moves, so the
// lobby never reads input that belongs to the match.
type foolGame struct{}

func (*foolGame) Next(player *database.Player) (consts.StateID, error) {
	room := database.GetRoom(player.RoomID)
	if room == nil {
		return 0, consts.ErrorsExist
	}
	room.Lock()
	match := room.Game
	room.Unlock()
	if match == nil {
		return consts.StateWaiting, nil
	}
	match.Arrive(player.ID)
	<-match.Done()
	return consts.StateWaiting, nil
}

func (*foolGame) Exit(player *database.Player) consts.StateID {
	return consts.StateWaiting
}
