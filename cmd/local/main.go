package main

import (
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/ratel-online/fool/config"
	"github.com/ratel-online/fool/fool/event"
	"github.com/ratel-online/fool/fool/game"
	"github.com/ratel-online/fool/fool/msg"
	"github.com/ratel-online/fool/fool/player"
	"github.com/ratel-online/fool/fool/ui"
)

func main() {
	c, err := config.Parse("fool-local", os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}
	ui.Print(msg.Message.Welcome())

	name, err := ui.PromptString("Please enter your name")
	if err != nil {
		ui.Error(err)
		os.Exit(1)
	}
	if name == "" {
		name = c.Name
	}
	human := player.NewHumanPlayer(name)

	numberOfPlayers, err := promptPlayers(c)
	if err != nil {
		ui.Error(err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	players := player.CreatePlayers(numberOfPlayers, human)
	rng.Shuffle(len(players), func(i, j int) { players[i], players[j] = players[j], players[i] })

	bus := event.NewBus()
	bus.AddListener(human)
	g, err := game.New(players, c.Rules, game.WithRand(rng), game.WithBus(bus))
	if err != nil {
		ui.Error(err)
		os.Exit(1)
	}
	if _, err := g.Play(); err != nil {
		ui.Error(err)
		os.Exit(1)
	}
}

func promptPlayers(c config.Config) (int, error) {
	options := make([]string, 0, c.Rules.MaxPlayers())
	for n := c.Players; n <= c.Rules.MaxPlayers(); n++ {
		options = append(options, strconv.Itoa(n))
	}
	selected, err := ui.PromptSelect("Select the number of players", options)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(selected)
}
