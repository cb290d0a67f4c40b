package get_leaderboard

import (
	"net/http"

	"github.com/totorewa/roro-chat-api/api"
	"github.com/totorewa/roro-chat-api/state"
)

// ValidateChannel extracts the broadcasting channel from the Fossabot login
// header.
func ValidateChannel(r *http.Request) (string, bool) {
	if state.Config.Meta.DisableChannelCheck {
		return "test_channel", true
	}

	header := r.Header.Get("x-fossabot-channellogin")

	if header == "" {
		return "", false
	}

	return header, true
}

func Route(d api.RouteData, r *http.Request) api.HttpResponse {
	if _, ok := ValidateChannel(r); !ok {
		return api.DefaultResponse(http.StatusUnauthorized)
	}

	// Fossabot not supported yet until a request verifier for it exists
	return api.DefaultResponse(http.StatusUnauthorized)
}
