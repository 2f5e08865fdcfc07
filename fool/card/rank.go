package card

import (
	"fmt"

	"github.com/ratel-online/fool/consts"
)

type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankLabels = map[Rank]string{
	Two:   "2",
	Three: "3",
	Four:  "4",
	Five:  "5",
	Six:   "6",
	Seven: "7",
	Eight: "8",
	Nine:  "9",
	Ten:   "10",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
	Ace:   "A",
}

func (r Rank) String() string {
	return rankLabels[r]
}

func rankByLabel(label string) (Rank, bool) {
	for rank, rankLabel := range rankLabels {
		if rankLabel == label {
			return rank, true
		}
	}
	return 0, false
}

// Ranks is the ascending rank order of one deck variant. Both variants end
// at the ace and the short one is a suffix of the long one, so rank values
// order cards the same way rank indexes do.
type Ranks []Rank

var (
	Ranks36 = Ranks{Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
	Ranks52 = Ranks{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
)

func RanksFor(deckSize int) (Ranks, error) {
	switch deckSize {
	case 36:
		return Ranks36, nil
	case 52:
		return Ranks52, nil
	}
	return nil, fmt.Errorf("%w%d", consts.ErrorsDeckSizeInvalid, deckSize)
}

// Index returns the position of the rank in the variant, or -1.
func (rs Ranks) Index(rank Rank) int {
	for i, r := range rs {
		if r == rank {
			return i
		}
	}
	return -1
}

func (rs Ranks) Contains(rank Rank) bool {
	return rs.Index(rank) >= 0
}
