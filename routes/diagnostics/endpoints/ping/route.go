package ping

import (
	"net/http"

	"github.com/totorewa/roro-chat-api/api"
)

func Route(d api.RouteData, r *http.Request) api.HttpResponse {
	return api.HttpResponse{
		Status: http.StatusOK,
		Data:   "Roro Chat API is online. Pog",
	}
}
