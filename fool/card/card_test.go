package card_test

import (
	"testing"

	"github.com/ratel-online/fool/consts"
	"github.com/ratel-online/fool/fool/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreaterThan(t *testing.T) {
	scenarios := []struct {
		description string
		card        card.Card
		other       card.Card
		greater     bool
		lower       bool
	}{
		{
			description: "same_suit_higher_rank",
			card:        card.New(card.Ace, card.Spades, true),
			other:       card.New(card.Seven, card.Spades, true),
			greater:     true,
			lower:       false,
		},
		{
			description: "same_suit_non_trump",
			card:        card.New(card.Ace, card.Hearts, false),
			other:       card.New(card.Seven, card.Hearts, false),
			greater:     true,
			lower:       false,
		},
		{
			description: "trump_beats_other_suit_of_any_rank",
			card:        card.New(card.Seven, card.Spades, true),
			other:       card.New(card.Ace, card.Hearts, false),
			greater:     true,
			lower:       false,
		},
		{
			description: "non_trump_cards_of_different_suits_are_incomparable",
			card:        card.New(card.Seven, card.Hearts, false),
			other:       card.New(card.Ten, card.Clubs, false),
			greater:     false,
			lower:       false,
		},
		{
			description: "same_card_is_not_greater_than_itself",
			card:        card.New(card.Queen, card.Clubs, false),
			other:       card.New(card.Queen, card.Clubs, false),
			greater:     false,
			lower:       false,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			assert.Equal(t, scenario.greater, scenario.card.GreaterThan(scenario.other))
			assert.Equal(t, scenario.lower, scenario.other.GreaterThan(scenario.card))
		})
	}
}

func TestGreaterThanSameSuitFollowsRankIndex(t *testing.T) {
	for _, ranks := range []card.Ranks{card.Ranks36, card.Ranks52} {
		for i, a := range ranks {
			for j, b := range ranks {
				x := card.New(a, card.Diamonds, false)
				y := card.New(b, card.Diamonds, false)
				require.Equal(t, i > j, x.GreaterThan(y), "%s vs %s", x.Designator(), y.Designator())
			}
		}
	}
}

func TestGreaterThanDifferentSuitsWithoutTrump(t *testing.T) {
	for _, a := range card.Suits {
		for _, b := range card.Suits {
			if a == b {
				continue
			}
			for _, rank := range card.Ranks52 {
				x := card.New(rank, a, false)
				y := card.New(card.Ace, b, false)
				require.False(t, x.GreaterThan(y))
				require.False(t, y.GreaterThan(x))
			}
		}
	}
}

func TestIdentical(t *testing.T) {
	require.True(t, card.New(card.Ace, card.Spades, true).Identical(card.New(card.Ace, card.Spades, false)))
	require.False(t, card.New(card.Ace, card.Spades, true).Identical(card.New(card.Ace, card.Hearts, true)))
	require.False(t, card.New(card.Ace, card.Spades, true).Identical(card.New(card.King, card.Spades, true)))
}

func TestDesignator(t *testing.T) {
	require.Equal(t, "10C", card.New(card.Ten, card.Clubs, false).Designator())
	require.Equal(t, "AS", card.New(card.Ace, card.Spades, true).Designator())
	require.Equal(t, "6H", card.New(card.Six, card.Hearts, false).Designator())
}

func TestRanksFor(t *testing.T) {
	ranks, err := card.RanksFor(36)
	require.NoError(t, err)
	require.Len(t, ranks, 9)
	require.Equal(t, card.Six, ranks[0])
	require.Equal(t, card.Ace, ranks[len(ranks)-1])

	ranks, err = card.RanksFor(52)
	require.NoError(t, err)
	require.Len(t, ranks, 13)
	require.Equal(t, card.Two, ranks[0])

	_, err = card.RanksFor(40)
	require.ErrorIs(t, err, consts.ErrorsDeckSizeInvalid)
}

func TestSuitByName(t *testing.T) {
	suit, err := card.SuitByName("hearts")
	require.NoError(t, err)
	require.Equal(t, card.Hearts, suit)

	_, err = card.SuitByName("Cups")
	require.Error(t, err)
}
