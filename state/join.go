package state

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/ratel-online/fool/consts"
	"github.com/ratel-online/fool/database"
)

type join struct{}

func (s *join) Next(player *database.Player) (consts.StateID, error) {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%-10s%-10s%-10s%-10s\n", "ID", "Players", "Rules", "State"))
	for _, room := range database.GetRooms() {
		pwdFlag := ""
		if room.Password != "" {
			pwdFlag = "*"
		}
		buf.WriteString(fmt.Sprintf("%-10s%-10s%-10s%-10s\n",
			pwdFlag+strconv.FormatInt(room.ID, 10),
			fmt.Sprintf("%d/%d", room.Players+room.Robots, room.MaxPlayers),
			fmt.Sprintf("%d/%d/%d", room.Rules.DeckSize, room.Rules.CardsToHave, room.Rules.MaxAttacks),
			consts.RoomStates[room.State]))
	}
	err := player.WriteString(buf.String())
	if err != nil {
		return 0, player.WriteError(err)
	}
	signal, err := player.AskForString()
	if err != nil {
		return 0, player.WriteError(err)
	}
	if isExit(signal) {
		return s.Exit(player), nil
	}
	if isLs(signal) {
		return consts.StateJoin, nil
	}
	roomId, err := strconv.ParseInt(signal, 10, 64)
	if err != nil {
		return 0, player.WriteError(consts.ErrorsRoomInvalid)
	}
	room := database.GetRoom(roomId)
	if room == nil {
		return 0, player.WriteError(consts.ErrorsRoomInvalid)
	}
	if pwd := room.Password; pwd != "" {
		err = verifyPassword(player, pwd)
		if err != nil {
			return 0, player.WriteError(err)
		}
	}
	err = database.JoinRoom(roomId, player.ID)
	if err != nil {
		return 0, player.WriteError(err)
	}
	database.Broadcast(roomId, fmt.Sprintf("%s joined room! room current has %d players\n", player.Name, room.Players))
	return consts.StateWaiting, nil
}

func (*join) Exit(player *database.Player) consts.StateID {
	return consts.StateHome
}

func verifyPassword(player *database.Player, pwd string) error {
	err := player.WriteString("Please input room password: \n")
	if err != nil {
		return err
	}
	password, err := player.AskForString()
	if err != nil {
		return err
	}
	if password != pwd {
		return consts.ErrorsRoomPassword
	}
	return nil
}
