package config_test

import (
	"io"
	"testing"
	"time"

	"github.com/ratel-online/fool/config"
	"github.com/ratel-online/fool/consts"
	"github.com/ratel-online/fool/fool/game"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	require.Equal(t, game.DefaultRules(), c.Rules)
	require.Equal(t, consts.PlayTimeout, c.AskTimeout)
}

func TestParse(t *testing.T) {
	c, err := config.Parse("fool", []string{"-addr", ":7000", "-deck", "52", "-hand", "5", "-attacks", "4", "-timeout", "10s", "-players", "4"}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, ":7000", c.Addr)
	require.Equal(t, game.Rules{DeckSize: 52, CardsToHave: 5, MaxAttacks: 4}, c.Rules)
	require.Equal(t, 10*time.Second, c.AskTimeout)
	require.Equal(t, 4, c.Players)
}

func TestParseRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
		err  error
	}{
		{name: "deck_size", args: []string{"-deck", "40"}, err: consts.ErrorsDeckSizeInvalid},
		{name: "timeout", args: []string{"-timeout", "0s"}, err: consts.ErrorsInvalidArgument},
		{name: "players", args: []string{"-players", "7"}, err: consts.ErrorsGamePlayersInvalid},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := config.Parse("fool", test.args, io.Discard)
			require.ErrorIs(t, err, test.err)
		})
	}

	_, err := config.Parse("fool", []string{"-unknown"}, io.Discard)
	require.Error(t, err)
}
