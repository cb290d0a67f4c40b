package leaderboard

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// CommandHandler composes the boards cache, query parser, remote client and
// formatter into a single chat command. Every failure is converted to a
// user-facing apology here; no error escapes this layer.
type CommandHandler struct {
	api          Service
	boards       *BoardsCache
	defaultBoard string
	logger       *zap.SugaredLogger
}

func NewCommandHandler(api Service, boards *BoardsCache, defaultBoard string, logger *zap.SugaredLogger) *CommandHandler {
	return &CommandHandler{
		api:          api,
		boards:       boards,
		defaultBoard: defaultBoard,
		logger:       logger,
	}
}

func (h *CommandHandler) Handle(ctx context.Context, channel string, category string, args []string, suffix string) string {
	boards, err := h.boards.ValidBoards(ctx, category)

	if err != nil {
		h.logger.With(
			zap.String("category", category),
			zap.String("stage", "boards"),
		).Errorf("Error getting boards: %s", err.Error())
		return "I wasn't able to get the leaderboards. smh"
	}

	board, queryArgs := resolveBoard(args, boards, h.defaultBoard)

	boardName, err := h.boards.DisplayName(ctx, category, board)

	if err != nil {
		h.logger.With(
			zap.String("category", category),
			zap.String("stage", "boards"),
		).Errorf("Error getting board display name: %s", err.Error())
		return "I wasn't able to get the leaderboards. smh"
	}

	if boardName == "" {
		boardName = board
	}

	if len(queryArgs) > 0 && queryArgs[0] == "boards" {
		return "Available boards: " + formatBoardList(boards)
	}

	if len(queryArgs) > 0 && queryArgs[0] == "count" {
		count, err := h.api.TotalRecords(ctx, category, board)

		if err != nil {
			h.logger.With(
				zap.String("category", category),
				zap.String("board", board),
				zap.String("stage", "count"),
			).Errorf("Error getting total records: %s", err.Error())
			return fmt.Sprintf("Oh I wasn't able to count the number of entries in the %s leaderboard.", boardName)
		}

		if count == 0 {
			return fmt.Sprintf("I can't find any entries for the %s leaderboard.", boardName)
		}

		return fmt.Sprintf("There are %d entries in the %s leaderboard.", count, boardName)
	}

	query, err := ParseQuery(channel, category, queryArgs)

	if err != nil {
		h.logger.With(
			zap.String("category", category),
			zap.String("board", board),
			zap.String("stage", "parse"),
		).Errorf("Error parsing query: %s", err.Error())
		return "Your query is invalid. ReallyGun"
	}

	results, err := h.api.Search(ctx, category, board, query.Params)

	if err != nil {
		h.logger.With(
			zap.String("category", category),
			zap.String("board", board),
			zap.String("stage", "search"),
		).Errorf("Error querying leaderboards: %s", err.Error())
		return fmt.Sprintf("I wasn't able to query the %s leaderboard. smh", boardName)
	}

	return Formatter{
		Results:  results,
		Board:    boardName,
		Type:     query.Type,
		Term:     query.Term,
		Multiple: query.Multiple(),
	}.Format(suffix)
}

// resolveBoard consumes a leading board-name token, or falls back to the
// default (first) board, or to a hardcoded board id when none are known.
func resolveBoard(args []string, validBoards []string, defaultBoard string) (string, []string) {
	if len(args) > 0 {
		for _, board := range validBoards {
			if args[0] == board {
				return board, args[1:]
			}
		}
	}

	if len(validBoards) > 0 {
		return validBoards[0], args
	}

	return defaultBoard, args
}

func formatBoardList(boards []string) string {
	entries := make([]string, 0, len(boards))

	for i, board := range boards {
		if i == 0 {
			board += " (default)"
		}

		entries = append(entries, board)
	}

	return strings.Join(entries, ", ")
}
