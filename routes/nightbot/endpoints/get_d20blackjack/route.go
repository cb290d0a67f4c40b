package get_d20blackjack

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/totorewa/roro-chat-api/api"
	"github.com/totorewa/roro-chat-api/games/d20blackjack"
	"github.com/totorewa/roro-chat-api/routes/nightbot/assets"
	"github.com/totorewa/roro-chat-api/state"
)

const usage = "Roll 2 d20 to get %d! If you go over, you bust! You can re-roll one die ONCE using %s <face value>."

func Route(d api.RouteData, r *http.Request) api.HttpResponse {
	if !state.Verifier.Verify(r) {
		return api.DefaultResponse(http.StatusUnauthorized)
	}

	channel, ok := assets.ValidateChannel(r)

	if !ok {
		return api.DefaultResponse(http.StatusUnauthorized)
	}

	query := r.URL.Query()

	rawArgs := strings.ToLower(strings.TrimSpace(query.Get("args")))

	if rawArgs == "help" {
		command := query.Get("cmd")

		if command == "" {
			command = "!<command>"
		}

		return api.HttpResponse{
			Status: http.StatusOK,
			Data:   fmt.Sprintf(usage, d20blackjack.Blackjack, command),
		}
	}

	var args []string

	if rawArgs != "" {
		args = strings.Split(rawArgs, " ")
	}

	user, provider, providerID := assets.User(r)

	return api.HttpResponse{
		Status: http.StatusOK,
		Data:   state.Blackjack.Handle(provider, channel, providerID, user, args),
	}
}
