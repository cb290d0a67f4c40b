package leaderboard

import (
	"fmt"
	"strings"
)

// Bot messages above this length get cut off by the chat integrations.
const maxMessageLength = 250

const tooManyPlayers = "That's too many players. smh"

// Formatter renders search results into a single bot message within the
// message length budget.
type Formatter struct {
	Results  []Run
	Board    string
	Type     SearchType
	Term     string
	Multiple bool
}

// Format renders the message. Rendering degrades in two steps when the budget
// is blown: first the completion times are dropped, then the whole result set
// is replaced by a fallback line (which deliberately omits the suffix).
func (f Formatter) Format(suffix string) string {
	if len(f.Results) == 0 {
		return f.formatEmpty() + suffix
	}

	prefix := f.Board + " "
	formatted := prefix + f.formatEntries(true) + suffix

	if len(formatted) <= maxMessageLength {
		return formatted
	}

	formatted = prefix + f.formatEntries(false) + suffix

	if len(formatted) <= maxMessageLength {
		return formatted
	}

	return tooManyPlayers
}

func (f Formatter) formatEmpty() string {
	term := f.Term

	if term == "" {
		term = "ERROR"
	}

	switch f.Type {
	case SearchRange:
		return fmt.Sprintf("I can't find any players in the range %s. Hmmge", term)
	case SearchLteTime:
		return fmt.Sprintf("I can't find a player with a time less than %s. Erm", term)
	case SearchGteTime:
		return fmt.Sprintf("I can't find a player with a time greater than %s. Erm", term)
	case SearchPlace:
		return fmt.Sprintf("I can't find a player at #%s. Hmmge", term)
	case SearchTop:
		return fmt.Sprintf("There's no one in the top %s. Susge", term)
	case SearchName:
		return fmt.Sprintf("Sorry, I don't know who %s is. smh", term)
	}

	return "Something went wrong. smh"
}

func (f Formatter) formatEntries(showTime bool) string {
	var entries []string

	for i, run := range f.Results {
		if !f.Multiple && i != 0 {
			break
		}

		entries = append(entries, f.formatEntry(run, showTime, i == 0))
	}

	return strings.Join(entries, " | ")
}

func (f Formatter) formatEntry(run Run, showTime bool, showPlace bool) string {
	var sb strings.Builder

	if showPlace {
		fmt.Fprintf(&sb, "#%d: ", run.Place)
	}

	sb.WriteString(FormatPlayers(run.Players))

	if showTime {
		fmt.Fprintf(&sb, " (%s)", run.CompletionTime)
	}

	return sb.String()
}

// FormatPlayers joins a player list Oxford-style: "a, b & c".
func FormatPlayers(players []string) string {
	switch len(players) {
	case 0:
		return "Unknown"
	case 1:
		return players[0]
	}

	return strings.Join(players[:len(players)-1], ", ") + " & " + players[len(players)-1]
}
