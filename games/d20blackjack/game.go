// Package d20blackjack implements the d20 blackjack chat game: roll two d20s
// aiming for exactly 21, with one optional reroll of a named die.
package d20blackjack

import (
	"math/rand"

	"github.com/totorewa/roro-chat-api/db"

	"github.com/mitchellh/mapstructure"
)

const (
	GameID    = "d20blackjack"
	Blackjack = 21
)

type gamePhase string

const (
	phaseWaiting gamePhase = "waiting"
	phasePlaying gamePhase = "playing"
)

type RollResult string

const (
	ResultInvalidState RollResult = "invalid_state"
	ResultInvalidFace  RollResult = "invalid_face"
	ResultRolled       RollResult = "rolled"
	ResultBlackjack    RollResult = "blackjack"
	ResultBust         RollResult = "bust"
)

type gameState struct {
	GameID  string    `mapstructure:"game_id"`
	Phase   gamePhase `mapstructure:"state"`
	Channel string    `mapstructure:"channel"`
	Dice    []int     `mapstructure:"dice"`
}

type Stats struct {
	Rolls            int `mapstructure:"rolls"`
	Rerolls          int `mapstructure:"rerolls"`
	Blackjacks       int `mapstructure:"blackjacks"`
	Busts            int `mapstructure:"busts"`
	AccumulatedValue int `mapstructure:"accumulated_value"`
}

// Game holds the rules engine. The die is injectable for tests.
type Game struct {
	players *db.Repository
	roll    func() int
}

func NewGame(players *db.Repository) *Game {
	return &Game{
		players: players,
		roll: func() int {
			return rand.Intn(20) + 1
		},
	}
}

func (g *Game) Player(provider string, playerID string, name string) (*db.Player, error) {
	return g.players.Player(provider, playerID, name)
}

func (g *Game) PlayerByName(provider string, name string) (*db.Player, error) {
	return g.players.PlayerByName(provider, name)
}

// RollDice rolls a fresh pair of d20s. A non-21, non-bust roll leaves the game
// in the playing phase so the player can reroll once.
func (g *Game) RollDice(channel string, player *db.Player) ([]int, RollResult, error) {
	game, err := g.state(player)

	if err != nil {
		return nil, ResultInvalidState, err
	}

	dice := []int{g.roll(), g.roll()}
	result := calculateResult(dice)

	game.Dice = dice
	game.Channel = channel
	game.Phase = phaseWaiting

	if result == ResultRolled {
		game.Phase = phasePlaying
	}

	if err := g.setState(player, game); err != nil {
		return nil, ResultInvalidState, err
	}

	stats, err := g.Stats(player)

	if err != nil {
		return nil, ResultInvalidState, err
	}

	stats.Rolls++
	commitRoll(&stats, dice)

	if err := g.SetStats(player, stats); err != nil {
		return nil, ResultInvalidState, err
	}

	return dice, result, nil
}

// RerollDice replaces one die showing faceValue with a fresh roll. Only valid
// while the game is in the playing phase on the same channel it was rolled in.
func (g *Game) RerollDice(channel string, player *db.Player, faceValue int) ([]int, RollResult, error) {
	game, err := g.state(player)

	if err != nil {
		return nil, ResultInvalidState, err
	}

	if game.Phase != phasePlaying || game.Channel != channel {
		return nil, ResultInvalidState, nil
	}

	index := -1

	for i, die := range game.Dice {
		if die == faceValue {
			index = i
			break
		}
	}

	if index == -1 {
		return nil, ResultInvalidFace, nil
	}

	stats, err := g.Stats(player)

	if err != nil {
		return nil, ResultInvalidState, err
	}

	uncommitRoll(&stats, game.Dice)

	game.Dice[index] = g.roll()
	game.Phase = phaseWaiting

	if err := g.setState(player, game); err != nil {
		return nil, ResultInvalidState, err
	}

	result := calculateResult(game.Dice)

	stats.Rerolls++
	commitRoll(&stats, game.Dice)

	if err := g.SetStats(player, stats); err != nil {
		return nil, ResultInvalidState, err
	}

	return game.Dice, result, nil
}

func (g *Game) Stats(player *db.Player) (Stats, error) {
	var stats Stats

	raw := player.GetData(GameID)

	if raw == nil {
		return stats, nil
	}

	if err := decode(raw, &stats); err != nil {
		return stats, err
	}

	return stats, nil
}

func (g *Game) SetStats(player *db.Player, stats Stats) error {
	var doc map[string]any

	if err := decode(stats, &doc); err != nil {
		return err
	}

	return player.SetData(GameID, doc)
}

func (g *Game) state(player *db.Player) (gameState, error) {
	doc, err := player.GetGame(GameID)

	if err != nil {
		return gameState{}, err
	}

	var game gameState

	if err := decode(doc, &game); err != nil {
		return gameState{}, err
	}

	if game.GameID == "" {
		game = gameState{GameID: GameID, Phase: phaseWaiting}
	}

	return game, nil
}

func (g *Game) setState(player *db.Player, game gameState) error {
	var doc map[string]any

	if err := decode(game, &doc); err != nil {
		return err
	}

	return player.SetGame(GameID, doc)
}

// decode bridges flat-file documents and typed structs in both directions.
func decode(in any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})

	if err != nil {
		return err
	}

	return decoder.Decode(in)
}

func commitRoll(stats *Stats, dice []int) {
	total := sum(dice)
	stats.AccumulatedValue += total

	if total == Blackjack {
		stats.Blackjacks++
	} else if total > Blackjack {
		stats.Busts++
	}
}

// uncommitRoll backs a roll out of the stats before a reroll replaces it.
// Blackjack and bust branches are unreachable here since those end the game.
func uncommitRoll(stats *Stats, dice []int) {
	total := sum(dice)
	stats.AccumulatedValue -= total

	if total == Blackjack {
		stats.Blackjacks--
	} else if total > Blackjack {
		stats.Busts--
	}
}

func calculateResult(dice []int) RollResult {
	if len(dice) != 2 {
		return ResultInvalidState
	}

	total := sum(dice)

	if total == Blackjack {
		return ResultBlackjack
	}

	if total > Blackjack {
		return ResultBust
	}

	return ResultRolled
}

func sum(dice []int) int {
	total := 0

	for _, die := range dice {
		total += die
	}

	return total
}
