package d20blackjack

import (
	"testing"

	"github.com/totorewa/roro-chat-api/db"
)

// scriptDice makes the game roll a fixed sequence.
func scriptDice(g *Game, rolls ...int) {
	i := 0

	g.roll = func() int {
		roll := rolls[i%len(rolls)]
		i++
		return roll
	}
}

func newTestGame(t *testing.T) (*Game, *db.Player) {
	t.Helper()

	repo := db.NewRepository(t.TempDir())

	player, err := repo.Player("twitch", "123", "roro")

	if err != nil {
		t.Fatal(err)
	}

	return NewGame(repo), player
}

func TestRollBlackjack(t *testing.T) {
	game, player := newTestGame(t)
	scriptDice(game, 20, 1)

	dice, result, err := game.RollDice("chan", player)

	if err != nil {
		t.Fatal(err)
	}

	if result != ResultBlackjack {
		t.Errorf("expected blackjack, got %s", result)
	}

	if dice[0]+dice[1] != Blackjack {
		t.Errorf("unexpected dice %v", dice)
	}

	stats, err := game.Stats(player)

	if err != nil {
		t.Fatal(err)
	}

	if stats.Rolls != 1 || stats.Blackjacks != 1 || stats.AccumulatedValue != 21 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestRollBust(t *testing.T) {
	game, player := newTestGame(t)
	scriptDice(game, 20, 20)

	_, result, err := game.RollDice("chan", player)

	if err != nil {
		t.Fatal(err)
	}

	if result != ResultBust {
		t.Errorf("expected bust, got %s", result)
	}

	stats, _ := game.Stats(player)

	if stats.Busts != 1 || stats.AccumulatedValue != 40 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestRerollReplacesNamedDie(t *testing.T) {
	game, player := newTestGame(t)
	scriptDice(game, 10, 5, 11)

	if _, result, err := game.RollDice("chan", player); err != nil || result != ResultRolled {
		t.Fatalf("setup roll failed: %v %s", err, result)
	}

	dice, result, err := game.RerollDice("chan", player, 5)

	if err != nil {
		t.Fatal(err)
	}

	if result != ResultBlackjack {
		t.Errorf("expected blackjack after reroll, got %s", result)
	}

	if dice[0] != 10 || dice[1] != 11 {
		t.Errorf("expected the named die replaced, got %v", dice)
	}

	stats, _ := game.Stats(player)

	// The first roll's 15 is backed out before the rerolled 21 is committed.
	if stats.AccumulatedValue != 21 || stats.Rerolls != 1 || stats.Rolls != 1 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestRerollWithoutRoll(t *testing.T) {
	game, player := newTestGame(t)

	_, result, err := game.RerollDice("chan", player, 5)

	if err != nil {
		t.Fatal(err)
	}

	if result != ResultInvalidState {
		t.Errorf("expected invalid state, got %s", result)
	}
}

func TestRerollWrongChannel(t *testing.T) {
	game, player := newTestGame(t)
	scriptDice(game, 10, 5)

	if _, _, err := game.RollDice("chan", player); err != nil {
		t.Fatal(err)
	}

	_, result, err := game.RerollDice("otherchan", player, 5)

	if err != nil {
		t.Fatal(err)
	}

	if result != ResultInvalidState {
		t.Errorf("expected invalid state for wrong channel, got %s", result)
	}
}

func TestRerollInvalidFace(t *testing.T) {
	game, player := newTestGame(t)
	scriptDice(game, 10, 5)

	if _, _, err := game.RollDice("chan", player); err != nil {
		t.Fatal(err)
	}

	_, result, err := game.RerollDice("chan", player, 7)

	if err != nil {
		t.Fatal(err)
	}

	if result != ResultInvalidFace {
		t.Errorf("expected invalid face, got %s", result)
	}
}

func TestRerollOnlyOnce(t *testing.T) {
	game, player := newTestGame(t)
	scriptDice(game, 10, 5, 3, 2)

	if _, _, err := game.RollDice("chan", player); err != nil {
		t.Fatal(err)
	}

	if _, result, err := game.RerollDice("chan", player, 5); err != nil || result != ResultRolled {
		t.Fatalf("first reroll failed: %v %s", err, result)
	}

	_, result, err := game.RerollDice("chan", player, 3)

	if err != nil {
		t.Fatal(err)
	}

	if result != ResultInvalidState {
		t.Errorf("expected reroll to be single-use, got %s", result)
	}
}

func TestBlackjackEndsGame(t *testing.T) {
	game, player := newTestGame(t)
	scriptDice(game, 20, 1)

	if _, _, err := game.RollDice("chan", player); err != nil {
		t.Fatal(err)
	}

	_, result, err := game.RerollDice("chan", player, 20)

	if err != nil {
		t.Fatal(err)
	}

	if result != ResultInvalidState {
		t.Errorf("expected no reroll after blackjack, got %s", result)
	}
}

func TestStatsSurviveReload(t *testing.T) {
	dir := t.TempDir()

	repo := db.NewRepository(dir)
	player, err := repo.Player("twitch", "123", "roro")

	if err != nil {
		t.Fatal(err)
	}

	game := NewGame(repo)
	scriptDice(game, 10, 5)

	if _, _, err := game.RollDice("chan", player); err != nil {
		t.Fatal(err)
	}

	repo2 := db.NewRepository(dir)
	player2, err := repo2.Player("twitch", "123", "roro")

	if err != nil {
		t.Fatal(err)
	}

	stats, err := NewGame(repo2).Stats(player2)

	if err != nil {
		t.Fatal(err)
	}

	if stats.Rolls != 1 || stats.AccumulatedValue != 15 {
		t.Errorf("expected stats to survive reload, got %+v", stats)
	}
}
