package nightbot

import (
	"github.com/totorewa/roro-chat-api/api"
	"github.com/totorewa/roro-chat-api/routes/nightbot/endpoints/get_d20blackjack"
	"github.com/totorewa/roro-chat-api/routes/nightbot/endpoints/get_leaderboard"
)

const tagName = "Nightbot"

type Router struct{}

func (b Router) Tag() (string, string) {
	return tagName, "Webhook commands for Nightbot integrations."
}

func (b Router) Routes(r api.Router) {
	api.Route{
		Pattern: "/api/nightbot/leaderboard",
		OpId:    "get_leaderboard",
		Method:  api.GET,
		Handler: get_leaderboard.Route,
	}.Route(r)

	// For remapping to other commands
	api.Route{
		Pattern: "/api/nightbot/roro",
		OpId:    "get_leaderboard_roro",
		Method:  api.GET,
		Handler: get_leaderboard.Route,
	}.Route(r)

	// Legacy
	api.Route{
		Pattern: "/api/twitch/aalb",
		OpId:    "get_leaderboard_aalb",
		Method:  api.GET,
		Handler: get_leaderboard.Route,
	}.Route(r)

	api.Route{
		Pattern: "/api/nightbot/d20blackjack",
		OpId:    "get_d20blackjack",
		Method:  api.GET,
		Handler: get_d20blackjack.Route,
	}.Route(r)

	// For remapping to other commands
	api.Route{
		Pattern: "/api/nightbot/roro2",
		OpId:    "get_d20blackjack_roro2",
		Method:  api.GET,
		Handler: get_d20blackjack.Route,
	}.Route(r)
}
