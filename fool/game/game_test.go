package game_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/fool/consts"
	"github.com/ratel-online/fool/fool/card"
	"github.com/ratel-online/fool/fool/event"
	"github.com/ratel-online/fool/fool/game"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadSetup(t *testing.T) {
	tests := []struct {
		name    string
		players []*scriptedPlayer
		rules   game.Rules
		err     error
	}{
		{
			name:    "single_player",
			players: []*scriptedPlayer{newScriptedPlayer("A")},
			rules:   game.DefaultRules(),
			err:     consts.ErrorsGamePlayersInvalid,
		},
		{
			name: "too_many_players",
			players: []*scriptedPlayer{
				newScriptedPlayer("A"), newScriptedPlayer("B"), newScriptedPlayer("C"), newScriptedPlayer("D"),
			},
			rules: game.Rules{DeckSize: 36, CardsToHave: 12, MaxAttacks: 6},
			err:   consts.ErrorsGamePlayersInvalid,
		},
		{
			name:    "duplicate_names",
			players: []*scriptedPlayer{newScriptedPlayer("A"), newScriptedPlayer("A")},
			rules:   game.DefaultRules(),
			err:     consts.ErrorsGamePlayersInvalid,
		},
		{
			name:    "deck_size",
			players: []*scriptedPlayer{newScriptedPlayer("A"), newScriptedPlayer("B")},
			rules:   game.Rules{DeckSize: 32, CardsToHave: 6, MaxAttacks: 6},
			err:     consts.ErrorsDeckSizeInvalid,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := game.New(players(test.players...), test.rules)
			require.ErrorIs(t, err, test.err)
		})
	}
}

func TestNewWithStackedDeckRejectsUnknownCard(t *testing.T) {
	_, err := game.New(players(newScriptedPlayer("A"), newScriptedPlayer("B")), game.DefaultRules(), game.WithDeck("2H"))
	require.ErrorIs(t, err, consts.ErrorsInvalidCardDesignator)
}

func TestLowestTrumpAttacksFirst(t *testing.T) {
	g, err := game.New(players(newScriptedPlayer("B"), newScriptedPlayer("A")),
		game.Rules{DeckSize: 36, CardsToHave: 1, MaxAttacks: 6},
		game.WithTrump(card.Hearts),
		game.WithDeck("7S", "6H", "8S", "9S"))
	require.NoError(t, err)
	require.NoError(t, g.Start())

	require.Equal(t, "A", g.Attacker().Name())
	require.Equal(t, "B", g.Defender().Name())
	require.Equal(t, []string{"6H"}, designators(g.GetPlayerCards("A")))
	require.Equal(t, []string{"7S"}, designators(g.GetPlayerCards("B")))
	require.Equal(t, 2, g.DeckSize())

	state := g.ExtractState("A")
	require.Equal(t, card.Hearts, state.Trump)
	require.Equal(t, []string{"A", "B"}, state.PlayerSequence)
	require.Equal(t, map[string]int{"A": 1, "B": 1}, state.PlayerHandCounts)
	require.Equal(t, "A", state.Attacker)
	require.Equal(t, "B", state.Defender)
	require.Equal(t, []string{"6H"}, designators(state.CurrentPlayerHand))
	require.Empty(t, state.Table)

	require.ErrorIs(t, g.Start(), consts.ErrorsInvalidArgument)
}

func TestRandomAttackerWithoutTrumps(t *testing.T) {
	g, err := game.New(players(newScriptedPlayer("A"), newScriptedPlayer("B")),
		game.Rules{DeckSize: 36, CardsToHave: 1, MaxAttacks: 6},
		game.WithTrump(card.Hearts),
		game.WithRand(rand.New(rand.NewSource(1))),
		game.WithDeck("7S", "8S"))
	require.NoError(t, err)
	require.NoError(t, g.Start())

	require.Contains(t, []string{"A", "B"}, g.Attacker().Name())
	require.NotEqual(t, g.Attacker().Name(), g.Defender().Name())
}

func TestStartDealsFullHands(t *testing.T) {
	g, err := game.New(players(newScriptedPlayer("A"), newScriptedPlayer("B"), newScriptedPlayer("C")),
		game.DefaultRules(), game.WithRand(rand.New(rand.NewSource(3))))
	require.NoError(t, err)
	require.True(t, g.Trump().Valid())
	require.NoError(t, g.Start())

	for _, name := range []string{"A", "B", "C"} {
		require.Len(t, g.GetPlayerCards(name), 6)
	}
	require.Equal(t, 18, g.DeckSize())
}

func TestPlayRoundBeforeStart(t *testing.T) {
	g, err := game.New(players(newScriptedPlayer("A"), newScriptedPlayer("B")), game.DefaultRules())
	require.NoError(t, err)

	_, err = g.PlayRound()
	require.ErrorIs(t, err, consts.ErrorsInvalidArgument)
}

func TestGameWithoutLoser(t *testing.T) {
	s := seat(t, game.Rules{DeckSize: 36, CardsToHave: 1, MaxAttacks: 6}, card.Hearts, nil,
		map[string][]string{
			"A": {"6S"},
			"B": {"7S"},
		}, newScriptedPlayer("A"), newScriptedPlayer("B"))

	_, err := s.game.PlayRound()
	require.NoError(t, err)
	require.True(t, s.game.Finished())
	require.Nil(t, s.game.Loser())
	require.Empty(t, s.game.Players())
	require.ElementsMatch(t, []string{"A", "B"}, nameList(s.game.Watchers()))

	payloads := s.listener.ReceivedPayloads()
	require.Equal(t, event.GameFinishedPayload{}, payloads[len(payloads)-1])

	_, err = s.game.PlayRound()
	require.ErrorIs(t, err, consts.ErrorsInvalidArgument)
}

func TestGameWithLoser(t *testing.T) {
	s := seat(t, game.Rules{DeckSize: 36, CardsToHave: 2, MaxAttacks: 6}, card.Hearts, nil,
		map[string][]string{
			"A": {"6S"},
			"B": {"7S", "8C"},
		}, newScriptedPlayer("A"), newScriptedPlayer("B"))

	loser, err := s.game.Play()
	require.NoError(t, err)
	require.NotNil(t, loser)
	require.Equal(t, "B", loser.Name())
	require.Equal(t, "B", s.game.Loser().Name())
	require.Equal(t, []string{"A"}, nameList(s.game.Watchers()))

	payloads := s.listener.ReceivedPayloads()
	require.Equal(t, event.PlayerFinishedPayload{PlayerName: "A"}, payloads[len(payloads)-2])
	require.Equal(t, event.GameFinishedPayload{Loser: "B", HasLoser: true}, payloads[len(payloads)-1])
}

func TestFullGameKeepsEveryCard(t *testing.T) {
	for _, deckSize := range []int{36, 52} {
		rules := game.DefaultRules()
		rules.DeckSize = deckSize
		g, err := game.New(players(newScriptedPlayer("A"), newScriptedPlayer("B")), rules,
			game.WithRand(rand.New(rand.NewSource(int64(deckSize)))))
		require.NoError(t, err)

		loser, err := g.Play()
		require.NoError(t, err)
		require.True(t, g.Finished())
		require.Zero(t, g.DeckSize())
		if loser != nil {
			require.Equal(t, []string{loser.Name()}, nameList(g.Players()))
		} else {
			require.Empty(t, g.Players())
		}

		total := len(g.Discard())
		for _, name := range []string{"A", "B"} {
			total += len(g.GetPlayerCards(name))
		}
		require.Equal(t, deckSize, total)
	}
}
