package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/ratel-online/fool/consts"
	"github.com/ratel-online/fool/fool/game"
)

type Config struct {
	Addr       string
	WsAddr     string
	AskTimeout time.Duration
	Rules      game.Rules

	// Players and Name seat the local console game.
	Players int
	Name    string
}

func Default() Config {
	return Config{
		Addr:       ":9999",
		WsAddr:     ":9998",
		AskTimeout: consts.PlayTimeout,
		Rules:      game.DefaultRules(),
		Players:    consts.MinPlayers,
		Name:       "Player",
	}
}

func (c Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if c.AskTimeout <= 0 {
		return fmt.Errorf("%wask timeout %s", consts.ErrorsInvalidArgument, c.AskTimeout)
	}
	if c.Players < consts.MinPlayers || c.Players > c.Rules.MaxPlayers() {
		return fmt.Errorf("%w%d players", consts.ErrorsGamePlayersInvalid, c.Players)
	}
	return nil
}

// Parse reads command line flags on top of Default.
func Parse(name string, args []string, output io.Writer) (Config, error) {
	c := Default()
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(output)
	flags.StringVar(&c.Addr, "addr", c.Addr, "tcp listen address")
	flags.StringVar(&c.WsAddr, "ws", c.WsAddr, "websocket listen address, empty to disable")
	flags.DurationVar(&c.AskTimeout, "timeout", c.AskTimeout, "time a player has for every move")
	flags.IntVar(&c.Rules.DeckSize, "deck", c.Rules.DeckSize, "deck size, 36 or 52")
	flags.IntVar(&c.Rules.CardsToHave, "hand", c.Rules.CardsToHave, "cards every hand is refilled to")
	flags.IntVar(&c.Rules.MaxAttacks, "attacks", c.Rules.MaxAttacks, "attacks allowed in one round")
	flags.IntVar(&c.Players, "players", c.Players, "seats of the local game")
	flags.StringVar(&c.Name, "name", c.Name, "name of the local human player")
	if err := flags.Parse(args); err != nil {
		return c, err
	}
	return c, c.Validate()
}
