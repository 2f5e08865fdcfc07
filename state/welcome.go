package state

import (
	"fmt"

	"github.com/ratel-online/fool/consts"
	"github.com/ratel-online/fool/database"
	"github.com/ratel-online/fool/fool/msg"
)

type welcome struct{}

func (*welcome) Next(player *database.Player) (consts.StateID, error) {
	err := player.WriteString(msg.Message.Welcome() + fmt.Sprintf("Hi, %s, have a nice game and good luck!\n", player.Name))
	if err != nil {
		return 0, player.WriteError(err)
	}
	return consts.StateHome, nil
}

func (*welcome) Exit(player *database.Player) consts.StateID {
	return 0
}
