package d20blackjack

import (
	"strings"
	"testing"

	"github.com/totorewa/roro-chat-api/db"

	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, rolls ...int) *CommandHandler {
	t.Helper()

	repo := db.NewRepository(t.TempDir())
	game := NewGame(repo)

	if len(rolls) > 0 {
		scriptDice(game, rolls...)
	}

	return NewCommandHandler(game, zap.NewNop().Sugar())
}

func TestHandleRoll(t *testing.T) {
	h := newTestHandler(t, 10, 5)

	got := h.Handle("twitch", "chan", "123", "roro", nil)

	want := "You rolled [10] and [5] for 15. You are 6 short of a blackjack. Stare"

	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestHandleRollBlackjack(t *testing.T) {
	h := newTestHandler(t, 20, 1)

	got := h.Handle("twitch", "chan", "123", "roro", nil)

	if got != "Blackjack! You rolled [20] and [1] for 21." {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestHandleRollBust(t *testing.T) {
	h := newTestHandler(t, 20, 20)

	got := h.Handle("twitch", "chan", "123", "roro", nil)

	if got != "Bust! You rolled [20] and [20] for 40. You overshot blackjack by 19. CatPats" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestHandleReroll(t *testing.T) {
	h := newTestHandler(t, 10, 5, 6)

	h.Handle("twitch", "chan", "123", "roro", nil)

	got := h.Handle("twitch", "chan", "123", "roro", []string{"5"})

	want := "You rerolled [10] and [6] for 16. You were 5 short of a blackjack. CatPats"

	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestHandleRerollBeforeRolling(t *testing.T) {
	h := newTestHandler(t)

	got := h.Handle("twitch", "chan", "123", "roro", []string{"5"})

	if got != msgNotRolled {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestHandleRerollBadFace(t *testing.T) {
	h := newTestHandler(t, 10, 5)

	h.Handle("twitch", "chan", "123", "roro", nil)

	if got := h.Handle("twitch", "chan", "123", "roro", []string{"banana"}); got != msgInvalidFace {
		t.Errorf("unexpected message: %q", got)
	}

	if got := h.Handle("twitch", "chan", "123", "roro", []string{"7"}); got != msgInvalidFace {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestHandleStats(t *testing.T) {
	h := newTestHandler(t, 10, 5)

	h.Handle("twitch", "chan", "123", "roro", nil)

	got := h.Handle("twitch", "chan", "123", "roro", []string{"stats"})

	if !strings.Contains(got, "roro has rolled 1 times") {
		t.Errorf("unexpected stats message: %q", got)
	}

	if !strings.Contains(got, "accumulated a total of 15, averaging 15 per roll") {
		t.Errorf("unexpected stats totals: %q", got)
	}
}

func TestHandleStatsUnknownPlayer(t *testing.T) {
	h := newTestHandler(t)

	got := h.Handle("twitch", "chan", "123", "roro", []string{"stats", "stranger"})

	if got != "Player stranger not found. smh" {
		t.Errorf("unexpected message: %q", got)
	}
}
