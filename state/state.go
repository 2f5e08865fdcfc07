package state

import (
	"errors"
	"strings"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/fool/config"
	"github.com/ratel-online/fool/consts"
	"github.com/ratel-online/fool/database"
)

var states = map[consts.StateID]State{}

// defaults seeds the rules and timeout of every new room.
var defaults = config.Default()

func init() {
	register(consts.StateWelcome, &welcome{})
	register(consts.StateHome, &home{})
	register(consts.StateJoin, &join{})
	register(consts.StateCreate, &create{})
	register(consts.StateWaiting, &waiting{})
	register(consts.StateGame, &foolGame{})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

// Setup replaces the room defaults; call it before serving.
func Setup(c config.Config) {
	defaults = c
}

type State interface {
	Next(player *database.Player) (consts.StateID, error)
	Exit(player *database.Player) consts.StateID
}

func Run(player *database.Player) {
	player.State(consts.StateWelcome)
	defer func() {
		if err := recover(); err != nil {
			async.PrintStackTrace(err)
		}
		log.Infof("player %s state machine break up.\n", player)
	}()
	for {
		state := states[player.GetState()]
		stateId, err := state.Next(player)
		if err != nil {
			var e consts.Error
			if errors.Is(err, consts.ErrorsChanClosed) {
				state.Exit(player)
				break
			}
			if errors.As(err, &e) {
				if e.Exit {
					stateId = state.Exit(player)
				}
			} else {
				log.Error(err)
				state.Exit(player)
				break
			}
		}
		if stateId > 0 {
			player.State(stateId)
		}
	}
}

func isExit(signal string) bool {
	signal = strings.ToLower(signal)
	return signal == "exit" || signal == "e"
}

func isLs(signal string) bool {
	signal = strings.ToLower(signal)
	return signal == "ls" || signal == "v"
}
