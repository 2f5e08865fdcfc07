package state

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/ratel-online/fool/consts"
	"github.com/ratel-online/fool/database"
)

type waiting struct{}

func (s *waiting) Next(player *database.Player) (consts.StateID, error) {
	room := database.GetRoom(player.RoomID)
	if room == nil {
		return 0, consts.ErrorsExist
	}
	access, err := waitingForStart(player, room)
	if err != nil {
		return 0, err
	}
	if access {
		return consts.StateGame, nil
	}
	return s.Exit(player), nil
}

func (*waiting) Exit(player *database.Player) consts.StateID {
	room := database.GetRoom(player.RoomID)
	if room != nil {
		isOwner := room.Creator == player.ID
		database.LeaveRoom(room.ID, player.ID)
		database.Broadcast(room.ID, fmt.Sprintf("%s exited room! room current has %d players\n", player.Name, room.Players))
		if isOwner {
			if newOwner := database.GetPlayer(room.Creator); newOwner != nil {
				database.Broadcast(room.ID, fmt.Sprintf("%s become new owner\n", newOwner.Name))
			}
		}
	}
	return consts.StateHome
}

func waitingForStart(player *database.Player, room *database.Room) (bool, error) {
	player.StartTransaction()
	defer player.StopTransaction()
	for {
		signal, err := player.AskForStringWithoutTransaction(time.Second)
		if err != nil && err != consts.ErrorsTimeout {
			return false, err
		}
		if room.State == consts.RoomStateRunning {
			return true, nil
		}
		lower := strings.ToLower(signal)
		if isLs(lower) {
			viewRoomPlayers(room, player)
		} else if (lower == "start" || lower == "s") && room.Creator == player.ID {
			if err := startGame(room); err != nil {
				_ = player.WriteError(err)
				continue
			}
			return true, nil
		} else if strings.HasPrefix(lower, "set ") && room.Creator == player.ID {
			tags := strings.Fields(signal)
			if len(tags) != 3 {
				_ = player.WriteError(consts.ErrorsRoomPropsInvalid)
				continue
			}
			if err := database.SetRoomProps(room, strings.ToLower(tags[1]), tags[2]); err != nil {
				_ = player.WriteError(err)
				continue
			}
			database.Broadcast(room.ID, fmt.Sprintf("%s set %s to %s\n", player.Name, tags[1], tags[2]), player.ID)
			viewRoomPlayers(room, player)
		} else if len(signal) > 0 {
			player.BroadcastChat(fmt.Sprintf("%s say: %s\n", player.Name, signal))
		}
	}
}

func startGame(room *database.Room) error {
	room.Lock()
	defer room.Unlock()
	if room.State == consts.RoomStateRunning {
		return nil
	}
	if room.Players+room.Robots < consts.MinPlayers {
		return fmt.Errorf("%wadd a player or a robot with: set %s 1", consts.ErrorsGamePlayersInvalid, consts.RoomPropsRobots)
	}
	_, err := database.StartFoolGame(room)
	return err
}

func viewRoomPlayers(room *database.Room, currPlayer *database.Player) {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("Room ID: %d\n", room.ID))
	buf.WriteString(fmt.Sprintf("%-20s%-10s%-10s\n", "Name", "Score", "Title"))
	for _, playerId := range database.RoomPlayers(room.ID) {
		title := "player"
		if playerId == room.Creator {
			title = "owner"
		}
		if player := database.GetPlayer(playerId); player != nil {
			buf.WriteString(fmt.Sprintf("%-20s%-10d%-10s\n", player.Name, player.Score, title))
		}
	}
	for i := 0; i < room.Robots; i++ {
		buf.WriteString(fmt.Sprintf("%-20s%-10d%-10s\n", "?", 0, "robot"))
	}
	buf.WriteString("\nSettings:\n")
	buf.WriteString(fmt.Sprintf("%-5s%-5v%-5s%-5v\n", consts.RoomPropsPlayerNum+":", fmt.Sprintf("%d,", room.MaxPlayers), consts.RoomPropsRobots+":", room.Robots))
	buf.WriteString(fmt.Sprintf("%-5s%-5v%-5s%-5v%-5s%-5v\n",
		consts.RoomPropsDeckSize+":", fmt.Sprintf("%d,", room.Rules.DeckSize),
		consts.RoomPropsCardsToHave+":", fmt.Sprintf("%d,", room.Rules.CardsToHave),
		consts.RoomPropsMaxAttacks+":", room.Rules.MaxAttacks))
	pwd := room.Password
	if pwd != "" {
		if room.Creator != currPlayer.ID {
			pwd = "********"
		}
	} else {
		pwd = "off"
	}
	buf.WriteString(fmt.Sprintf("%-5s%-20v\n", consts.RoomPropsPassword, pwd))
	_ = currPlayer.WriteString(buf.String())
}
