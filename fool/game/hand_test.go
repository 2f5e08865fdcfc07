package game_test

import (
	"testing"

	"github.com/ratel-online/fool/fool/card"
	"github.com/ratel-online/fool/fool/game"
	"github.com/stretchr/testify/require"
)

func TestHandCardsSorted(t *testing.T) {
	factory, err := card.NewFactory(36, card.Diamonds)
	require.NoError(t, err)
	hand := game.NewHand()
	hand.AddCards(parseAll(t, factory, "AD", "KS", "6D", "7C", "7H"))

	require.Equal(t, []string{"7C", "7H", "KS", "6D", "AD"}, designators(hand.Cards()))
}

func TestHandFindAndRemove(t *testing.T) {
	factory, err := card.NewFactory(36, card.Diamonds)
	require.NoError(t, err)
	hand := game.NewHand()
	hand.AddCards(parseAll(t, factory, "AD", "KS", "6D"))

	wanted := parseAll(t, factory, "KS")[0]
	found, ok := hand.Find(wanted)
	require.True(t, ok)
	require.Equal(t, "KS", found.Designator())

	require.True(t, hand.RemoveCard(wanted))
	require.False(t, hand.RemoveCard(wanted))
	_, ok = hand.Find(wanted)
	require.False(t, ok)
	require.Equal(t, 2, hand.Size())
}

func TestHandLowestTrump(t *testing.T) {
	factory, err := card.NewFactory(36, card.Diamonds)
	require.NoError(t, err)

	hand := game.NewHand()
	hand.AddCards(parseAll(t, factory, "AD", "KS", "9D"))
	lowest, ok := hand.LowestTrump()
	require.True(t, ok)
	require.Equal(t, "9D", lowest.Designator())

	hand = game.NewHand()
	hand.AddCards(parseAll(t, factory, "KS"))
	_, ok = hand.LowestTrump()
	require.False(t, ok)
}

func TestHandTakeFromDeck(t *testing.T) {
	factory, err := card.NewFactory(36, card.Diamonds)
	require.NoError(t, err)
	deck := game.NewStackedDeck(parseAll(t, factory, "6S", "7S"))
	hand := game.NewHand()

	taken, err := hand.TakeFrom(deck, 5)
	require.NoError(t, err)
	require.Len(t, taken, 2)
	require.Equal(t, 2, hand.Size())
	require.True(t, deck.Empty())
}
