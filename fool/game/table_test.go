package game_test

import (
	"testing"

	"github.com/ratel-online/fool/fool/card"
	"github.com/ratel-online/fool/fool/game"
	"github.com/stretchr/testify/require"
)

func parseAll(t *testing.T, factory card.Factory, list ...string) []card.Card {
	t.Helper()
	cards := make([]card.Card, 0, len(list))
	for _, designator := range list {
		c, err := factory.Parse(designator)
		require.NoError(t, err)
		cards = append(cards, c)
	}
	return cards
}

func TestTableRanksFollowCards(t *testing.T) {
	factory, err := card.NewFactory(36, card.Spades)
	require.NoError(t, err)
	table := game.NewTable()
	require.True(t, table.Empty())
	require.Empty(t, table.Ranks())

	for _, c := range parseAll(t, factory, "9H", "KD", "9C") {
		table.AddCard(c)
	}
	require.Equal(t, 3, table.Size())
	require.Equal(t, []card.Rank{card.Nine, card.King}, table.Ranks())
	require.True(t, table.HasRank(card.King))
	require.False(t, table.HasRank(card.Ace))
}

func TestTableClear(t *testing.T) {
	factory, err := card.NewFactory(36, card.Spades)
	require.NoError(t, err)
	table := game.NewTable()
	for _, c := range parseAll(t, factory, "9H", "10H") {
		table.AddCard(c)
	}

	table.Clear()
	require.True(t, table.Empty())
	require.Empty(t, table.Ranks())
	require.Equal(t, []string{"9H", "10H"}, designators(table.Discard()))

	table.Clear()
	require.Equal(t, []string{"9H", "10H"}, designators(table.Discard()))

	table.AddCard(parseAll(t, factory, "6C")[0])
	table.Clear()
	require.Equal(t, []string{"9H", "10H", "6C"}, designators(table.Discard()))
}

func TestTableTakeAllSkipsDiscard(t *testing.T) {
	factory, err := card.NewFactory(36, card.Spades)
	require.NoError(t, err)
	table := game.NewTable()
	for _, c := range parseAll(t, factory, "9H", "10H", "9S") {
		table.AddCard(c)
	}

	hand := game.NewHand()
	taken, err := hand.TakeFrom(table, 0)
	require.NoError(t, err)
	require.Len(t, taken, 3)
	require.Equal(t, 3, hand.Size())
	require.True(t, table.Empty())
	require.Empty(t, table.Ranks())
	require.Empty(t, table.Discard())
}
