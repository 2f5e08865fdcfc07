package card

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

type Suit int

const (
	Spades Suit = iota
	Clubs
	Diamonds
	Hearts
)

// Suits lists every suit in deck order.
var Suits = []Suit{Spades, Clubs, Diamonds, Hearts}

type suitStruct struct {
	name          string
	symbol        string
	colorFunction func(string, ...interface{}) string
}

var suits = map[Suit]suitStruct{
	Spades: {
		name:          "Spades",
		symbol:        "♠",
		colorFunction: color.New(color.FgHiWhite).SprintfFunc(),
	},
	Clubs: {
		name:          "Clubs",
		symbol:        "♣",
		colorFunction: color.New(color.FgHiWhite).SprintfFunc(),
	},
	Diamonds: {
		name:          "Diamonds",
		symbol:        "♦",
		colorFunction: color.New(color.FgHiRed).SprintfFunc(),
	},
	Hearts: {
		name:          "Hearts",
		symbol:        "♥",
		colorFunction: color.New(color.FgHiRed).SprintfFunc(),
	},
}

func (s Suit) Valid() bool {
	_, ok := suits[s]
	return ok
}

func (s Suit) Name() string {
	return suits[s].name
}

// Initial is the letter a designator uses for the suit.
func (s Suit) Initial() byte {
	return suits[s].name[0]
}

func (s Suit) Symbol() string {
	return suits[s].symbol
}

func (s Suit) Paintf(format string, args ...interface{}) string {
	return suits[s].colorFunction(format, args...)
}

func (s Suit) String() string {
	return s.Paintf("%s%s", s.Symbol(), s.Name())
}

func SuitByName(name string) (Suit, error) {
	for _, suit := range Suits {
		if strings.EqualFold(suit.Name(), name) {
			return suit, nil
		}
	}
	return 0, fmt.Errorf("invalid suit '%s'", name)
}

func suitByInitial(initial byte) (Suit, bool) {
	for _, suit := range Suits {
		if suit.Initial() == initial {
			return suit, true
		}
	}
	return 0, false
}
