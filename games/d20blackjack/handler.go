package d20blackjack

import (
	"fmt"
	"math"
	"strconv"

	"github.com/totorewa/roro-chat-api/db"

	"go.uber.org/zap"
)

const (
	msgSomethingWrong = "Erm something went wrong. NotLikeThis"
	msgInvalidFace    = "That's not a valid d20 face value. smh"
	msgNotRolled      = "You haven't rolled yet. Susge"
)

// CommandHandler turns chat arguments into game actions and renders the
// outcome as a single bot message.
type CommandHandler struct {
	game   *Game
	logger *zap.SugaredLogger
}

func NewCommandHandler(game *Game, logger *zap.SugaredLogger) *CommandHandler {
	return &CommandHandler{game: game, logger: logger}
}

func (h *CommandHandler) Handle(provider string, channel string, playerID string, name string, args []string) string {
	if len(args) > 0 && args[0] == "stats" {
		return h.handleStats(provider, playerID, name, args)
	}

	player, err := h.game.Player(provider, playerID, name)

	if err != nil {
		h.logger.Errorf("Error loading player: %s", err.Error())
		return msgSomethingWrong
	}

	if len(args) > 0 {
		return h.handleReroll(channel, player, args[0])
	}

	return h.handleRoll(channel, player)
}

func (h *CommandHandler) handleRoll(channel string, player *db.Player) string {
	dice, result, err := h.game.RollDice(channel, player)

	if err != nil {
		h.logger.Errorf("Error rolling dice: %s", err.Error())
		return msgSomethingWrong
	}

	if result == ResultInvalidState {
		return msgSomethingWrong
	}

	return exclaim(result, formatDice(dice, result, false))
}

func (h *CommandHandler) handleReroll(channel string, player *db.Player, arg string) string {
	faceValue, err := strconv.Atoi(arg)

	if err != nil {
		return msgInvalidFace
	}

	dice, result, err := h.game.RerollDice(channel, player, faceValue)

	if err != nil {
		h.logger.Errorf("Error rerolling dice: %s", err.Error())
		return msgSomethingWrong
	}

	if result == ResultInvalidState {
		return msgNotRolled
	}

	if result == ResultInvalidFace {
		return msgInvalidFace
	}

	return exclaim(result, formatDice(dice, result, true))
}

func (h *CommandHandler) handleStats(provider string, playerID string, name string, args []string) string {
	var player *db.Player
	var err error

	if len(args) == 1 {
		player, err = h.game.Player(provider, playerID, name)
	} else {
		player, err = h.game.PlayerByName(provider, args[1])
	}

	if err != nil {
		h.logger.Errorf("Error loading player for stats: %s", err.Error())
		return msgSomethingWrong
	}

	if player == nil {
		return fmt.Sprintf("Player %s not found. smh", args[1])
	}

	stats, err := h.game.Stats(player)

	if err != nil {
		h.logger.Errorf("Error loading stats: %s", err.Error())
		return msgSomethingWrong
	}

	var average float64
	var percentageRerolled int

	if stats.Rolls > 0 {
		average = math.Round(float64(stats.AccumulatedValue)/float64(stats.Rolls)*100) / 100
		percentageRerolled = int(math.Round(float64(stats.Rerolls) / float64(stats.Rolls) * 100))
	}

	return fmt.Sprintf(
		"%s has rolled %d times, rerolled %d times (%d%%), got %d blackjacks, and busted %d times. They have accumulated a total of %d, averaging %g per roll.",
		player.Name, stats.Rolls, stats.Rerolls, percentageRerolled, stats.Blackjacks, stats.Busts, stats.AccumulatedValue, average,
	)
}

func exclaim(result RollResult, roll string) string {
	if result == ResultBlackjack {
		return "Blackjack! " + roll
	}

	if result == ResultBust {
		return "Bust! " + roll
	}

	return roll
}

func formatDice(dice []int, result RollResult, reroll bool) string {
	verb := "rolled"

	if reroll {
		verb = "rerolled"
	}

	total := sum(dice)
	goal := ""

	switch result {
	case ResultBust:
		goal = fmt.Sprintf(" You overshot blackjack by %d. CatPats", total-Blackjack)
	case ResultRolled:
		tense, emote := "are", "Stare"

		if reroll {
			tense, emote = "were", "CatPats"
		}

		goal = fmt.Sprintf(" You %s %d short of a blackjack. %s", tense, Blackjack-total, emote)
	}

	return fmt.Sprintf("You %s [%d] and [%d] for %d.%s", verb, dice[0], dice[1], total, goal)
}
