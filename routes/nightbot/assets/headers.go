// Shared helpers for the chat-bot webhook headers.
package assets

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/totorewa/roro-chat-api/state"
)

// Nightbot packs metadata into headers as URL-encoded-ish k=v pairs joined
// with "&", e.g. "name=roro&provider=twitch&providerId=123".
func ParseBotHeader(r *http.Request, headerName string) map[string]string {
	header := r.Header.Get(headerName)

	if header == "" {
		return map[string]string{}
	}

	parsed := map[string]string{}

	for _, part := range strings.Split(header, "&") {
		k, v, ok := strings.Cut(part, "=")

		if !ok {
			continue
		}

		parsed[k] = v
	}

	return parsed
}

// ValidateChannel extracts the broadcasting channel from the Nightbot-Channel
// header. Only twitch channels are accepted.
func ValidateChannel(r *http.Request) (string, bool) {
	if state.Config.Meta.DisableChannelCheck {
		return "test_channel", true
	}

	header := ParseBotHeader(r, "Nightbot-Channel")

	name := header["name"]

	if name == "" || !strings.EqualFold(header["provider"], "twitch") {
		return "", false
	}

	return name, true
}

// User extracts the invoking user's name, provider and provider id from the
// Nightbot-User header.
func User(r *http.Request) (string, string, string) {
	if state.Config.Meta.DisableChannelCheck {
		return "test_user", "test_provider", "test_id"
	}

	header := ParseBotHeader(r, "Nightbot-User")

	return header["name"], header["provider"], header["providerId"]
}

var disallowedChars = regexp.MustCompile(`[^a-zA-Z0-9 !.:<>_]`)

// SanitizeArgs strips disallowed characters from the raw search string and
// tokenizes it on spaces. An all-blank search yields no tokens.
func SanitizeArgs(search string) []string {
	args := strings.Split(disallowedChars.ReplaceAllString(strings.TrimSpace(search), ""), " ")

	if len(args) > 0 && args[0] == "" {
		return nil
	}

	return args
}
