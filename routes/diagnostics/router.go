package diagnostics

import (
	"github.com/totorewa/roro-chat-api/api"
	"github.com/totorewa/roro-chat-api/routes/diagnostics/endpoints/ping"
)

const tagName = "Diagnostics"

type Router struct{}

func (b Router) Tag() (string, string) {
	return tagName, "Liveness checks."
}

func (b Router) Routes(r api.Router) {
	api.Route{
		Pattern: "/api/ping",
		OpId:    "ping",
		Method:  api.GET,
		Handler: ping.Route,
	}.Route(r)
}
