package consts

import (
	"time"

	"github.com/ratel-online/core/consts"
)

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StateHome
	StateJoin
	StateCreate
	StateWaiting
	StateGame
)

const (
	IsStart = consts.IsStart
	IsStop  = consts.IsStop

	MinPlayers = 2

	RoomStateWaiting = 1
	RoomStateRunning = 2

	AuthTimeout = 3 * time.Second
	PlayTimeout = 40 * time.Second

	// Pass is the explicit decline token accepted at every query point.
	Pass = "PASS"
)

// Room properties.
const (
	RoomPropsPlayerNum   = "pn"
	RoomPropsDeckSize    = "ds"
	RoomPropsCardsToHave = "ch"
	RoomPropsMaxAttacks  = "ma"
	RoomPropsRobots      = "rb"
	RoomPropsPassword    = "pwd"
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist                  = NewErr(1, true, "Exist. ")
	ErrorsChanClosed             = NewErr(1, true, "Chan closed. ")
	ErrorsTimeout                = NewErr(1, false, "Timeout. ")
	ErrorsInputInvalid           = NewErr(1, false, "Input invalid. ")
	ErrorsAuthFail               = NewErr(1, true, "Auth fail. ")
	ErrorsRoomInvalid            = NewErr(1, true, "Room invalid. ")
	ErrorsRoomPlayersIsFull      = NewErr(1, false, "Room players is full. ")
	ErrorsRoomPassword           = NewErr(1, false, "Sorry! Password incorrect! ")
	ErrorsJoinFailForRoomRunning = NewErr(1, false, "Join fail, room is running. ")
	ErrorsGamePlayersInvalid     = NewErr(1, false, "Game players invalid. ")
	ErrorsRoomPropsInvalid       = NewErr(1, false, "Room props invalid. ")

	ErrorsInvalidCardDesignator = NewErr(2, false, "Invalid card. ")
	ErrorsCardNotInHand         = NewErr(2, false, "Card not in hand. ")
	ErrorsIllegalMove           = NewErr(2, false, "Illegal move. ")
	ErrorsInvalidArgument       = NewErr(3, true, "Invalid argument. ")
	ErrorsDeckSizeInvalid       = NewErr(3, true, "Deck size invalid. ")

	RoomStates = map[int]string{
		RoomStateWaiting: "Waiting",
		RoomStateRunning: "Running",
	}
)
