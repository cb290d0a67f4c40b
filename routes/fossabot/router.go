package fossabot

import (
	"github.com/totorewa/roro-chat-api/api"
	"github.com/totorewa/roro-chat-api/routes/fossabot/endpoints/get_leaderboard"
)

const tagName = "Fossabot"

type Router struct{}

func (b Router) Tag() (string, string) {
	return tagName, "Webhook commands for Fossabot integrations."
}

func (b Router) Routes(r api.Router) {
	api.Route{
		Pattern: "/api/fossabot/leaderboard",
		OpId:    "get_leaderboard",
		Method:  api.GET,
		Handler: get_leaderboard.Route,
	}.Route(r)
}
