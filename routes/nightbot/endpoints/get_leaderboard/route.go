package get_leaderboard

import (
	"fmt"
	"net/http"

	"github.com/totorewa/roro-chat-api/api"
	"github.com/totorewa/roro-chat-api/routes/nightbot/assets"
	"github.com/totorewa/roro-chat-api/state"
)

const usage = "Usage: %s [board] (<name> | <rank> | <<time> | [>]<time> | top <number> | range <from> <to> | count)"

func Route(d api.RouteData, r *http.Request) api.HttpResponse {
	if !state.Verifier.Verify(r) {
		return api.DefaultResponse(http.StatusUnauthorized)
	}

	channel, ok := assets.ValidateChannel(r)

	if !ok {
		return api.DefaultResponse(http.StatusUnauthorized)
	}

	if !state.Channels.Allowed(channel) {
		return api.DefaultResponse(http.StatusUnauthorized)
	}

	query := r.URL.Query()

	search := query.Get("search")
	category := query.Get("cat")

	if category == "" {
		category = "aa"
	}

	if search == "help" {
		command := query.Get("cmd")

		if command == "" {
			command = "!<command>"
		}

		return api.HttpResponse{Status: http.StatusOK, Data: fmt.Sprintf(usage, command)}
	}

	if override := query.Get("channel"); override != "" {
		channel = override
	}

	user, _, _ := assets.User(r)

	state.Logger.Infof("[%s] %s (%s) -> %s", channel, user, category, search)

	args := assets.SanitizeArgs(search)
	suffix := state.Suffixes.Suffix(user)

	return api.HttpResponse{
		Status: http.StatusOK,
		Data:   state.Leaderboard.Handle(d.Context, channel, category, args, suffix),
	}
}
