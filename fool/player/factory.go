package player

import (
	"math/rand"

	"github.com/ratel-online/fool/fool/game"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

// CreatePlayers seats the human first and fills the other seats with bots.
func CreatePlayers(numberOfPlayers int, human *HumanPlayer) []game.Player {
	players := make([]game.Player, 0, numberOfPlayers)
	players = append(players, human)
	players = append(players, GenerateBots(numberOfPlayers-1, human.Name())...)
	return players
}

// GenerateBots returns amount good bots whose names differ from taken.
func GenerateBots(amount int, taken ...string) []game.Player {
	used := map[string]bool{}
	for _, name := range taken {
		used[name] = true
	}
	names := make([]string, 0, len(botNames))
	for _, name := range botNames {
		if !used[name] {
			names = append(names, name)
		}
	}
	rand.Shuffle(len(names), func(i int, j int) { names[i], names[j] = names[j], names[i] })
	if amount > len(names) {
		amount = len(names)
	}
	bots := make([]game.Player, 0, amount)
	for _, botName := range names[:amount] {
		bots = append(bots, NewGoodPlayer(botName))
	}
	return bots
}
