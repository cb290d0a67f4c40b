package leaderboard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidQuery means the user-supplied query syntax could not be parsed.
var ErrInvalidQuery = errors.New("invalid query")

type SearchType string

const (
	SearchRange   SearchType = "range"
	SearchTop     SearchType = "top"
	SearchName    SearchType = "name"
	SearchLteTime SearchType = "lte_time"
	SearchGteTime SearchType = "gte_time"
	SearchPlace   SearchType = "place"
)

// ParsedQuery is the structured form of a chat query: the parameters to send
// to the remote service plus a human-readable echo of what was searched.
type ParsedQuery struct {
	Params map[string]string
	Type   SearchType
	Term   string
}

// Multiple reports whether the query requested more than one row.
func (q ParsedQuery) Multiple() bool {
	_, ok := q.Params["take"]
	return ok
}

type queryParser struct {
	channel  string
	category string
	args     []string

	params map[string]string
	typ    SearchType
	term   string
}

// subParsers dispatches on the leading token; anything else falls through to
// the general form (time filter, place or name).
var subParsers = map[string]func(*queryParser) error{
	"range": (*queryParser).parseRange,
	"top":   (*queryParser).parseTop,
}

// ParseQuery turns a tokenized, pre-sanitized argument list into a
// ParsedQuery. An empty argument list searches for the channel itself.
func ParseQuery(channel string, category string, args []string) (ParsedQuery, error) {
	p := &queryParser{
		channel:  channel,
		category: category,
		args:     args,
		params:   make(map[string]string),
	}

	if err := p.parse(); err != nil {
		return ParsedQuery{}, err
	}

	if p.term == "" {
		p.term = "ERROR"
	}

	return ParsedQuery{Params: p.params, Type: p.typ, Term: p.term}, nil
}

func (p *queryParser) parse() error {
	if len(p.args) == 0 {
		p.typ = SearchName
		p.term = p.channel
		p.params["name"] = p.channel
		return nil
	}

	if sub, ok := subParsers[p.args[0]]; ok {
		return sub(p)
	}

	return p.parseGeneral()
}

func (p *queryParser) parseRange() error {
	if len(p.args) < 3 {
		return fmt.Errorf("%w: range requires start and end values", ErrInvalidQuery)
	}

	start, err := strconv.Atoi(p.args[1])

	if err != nil {
		return fmt.Errorf("%w: bad range start %q", ErrInvalidQuery, p.args[1])
	}

	end, err := strconv.Atoi(p.args[2])

	if err != nil {
		return fmt.Errorf("%w: bad range end %q", ErrInvalidQuery, p.args[2])
	}

	if start < 1 || end < start {
		return fmt.Errorf("%w: bad range bounds %d - %d", ErrInvalidQuery, start, end)
	}

	p.typ = SearchRange
	p.term = fmt.Sprintf("%d - %d", start, end)
	p.params["place"] = strconv.Itoa(start)
	p.params["take"] = strconv.Itoa(end - start + 1)

	return nil
}

func (p *queryParser) parseTop() error {
	if len(p.args) < 2 {
		return fmt.Errorf("%w: top requires a value", ErrInvalidQuery)
	}

	n, err := strconv.Atoi(p.args[1])

	if err != nil {
		return fmt.Errorf("%w: bad top value %q", ErrInvalidQuery, p.args[1])
	}

	p.typ = SearchTop
	p.term = fmt.Sprintf("top %d", n)
	p.params["place"] = "1"
	p.params["take"] = strconv.Itoa(n)

	return nil
}

func (p *queryParser) parseGeneral() error {
	arg := p.args[0]

	if strings.Contains(arg, ":") {
		return p.parseTime(arg)
	}

	if isDigits(arg) {
		p.typ = SearchPlace
		p.term = arg
		p.params["place"] = arg
		return nil
	}

	p.typ = SearchName
	p.term = strings.Join(p.args, " ")
	p.params["name"] = p.term

	return nil
}

func (p *queryParser) parseTime(arg string) error {
	operator := ">"
	timeStr := arg

	if arg[0] == '<' || arg[0] == '>' {
		operator = string(arg[0])
		timeStr = arg[1:]
	}

	timeVal, err := p.parseTimeString(timeStr)

	if err != nil {
		return err
	}

	p.term = timeVal

	if operator == "<" {
		p.typ = SearchLteTime
		p.params["ltetime"] = timeVal
	} else {
		p.typ = SearchGteTime
		p.params["gtetime"] = timeVal
	}

	return nil
}

// parseTimeString normalizes a colon-separated tuple to HH:MM:SS. The category
// decides what a short tuple means: "aa" runs are hours-scale so a lone number
// is hours, everywhere else it is minutes.
func (p *queryParser) parseTimeString(timeStr string) (string, error) {
	fields := strings.Split(timeStr, ":")

	if len(fields) > 3 {
		return "", fmt.Errorf("%w: too many time components in %q", ErrInvalidQuery, timeStr)
	}

	parts := make([]int, 0, len(fields))

	for _, field := range fields {
		n, err := strconv.Atoi(field)

		if err != nil {
			return "", fmt.Errorf("%w: bad time component %q", ErrInvalidQuery, field)
		}

		parts = append(parts, n)
	}

	var h, m, s int

	switch len(parts) {
	case 1:
		if p.category == "aa" {
			h = parts[0]
		} else {
			m = parts[0]
		}
	case 2:
		if p.category == "aa" {
			h, m = parts[0], parts[1]
		} else {
			m, s = parts[0], parts[1]
		}
	default:
		h, m, s = parts[0], parts[1], parts[2]
	}

	return fmt.Sprintf("%02d:%02d:%02d", h, m, s), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
