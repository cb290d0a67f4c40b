package leaderboard

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

const boardsCacheExpiry = 3600 * time.Second

// BoardsCache holds the per-category board lists with a single shared
// last-update timestamp: refreshing one category refreshes all of them.
type BoardsCache struct {
	api        Service
	categories []string
	logger     *zap.SugaredLogger

	mu         sync.Mutex
	boards     map[string][]Board
	lastUpdate time.Time

	now func() time.Time
}

func NewBoardsCache(api Service, categories []string, logger *zap.SugaredLogger) *BoardsCache {
	return &BoardsCache{
		api:        api,
		categories: categories,
		logger:     logger,
		boards:     make(map[string][]Board),
		now:        time.Now,
	}
}

// ValidBoards returns the board names for a category, default board first.
func (c *BoardsCache) ValidBoards(ctx context.Context, category string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureUpdated(ctx); err != nil {
		return nil, err
	}

	return c.boardNames(category), nil
}

// DisplayName resolves a board's display name, or "" if the board is unknown.
func (c *BoardsCache) DisplayName(ctx context.Context, category string, name string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureUpdated(ctx); err != nil {
		return "", err
	}

	for _, board := range c.boards[category] {
		if board.Name == name {
			return board.DisplayName, nil
		}
	}

	return "", nil
}

// Clear forces the next call to refresh regardless of elapsed time.
func (c *BoardsCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastUpdate = time.Time{}
}

// ensureUpdated refreshes every category once the expiry has elapsed. A
// failure partway through leaves earlier categories refreshed but the
// timestamp untouched, so the next call retries the whole set.
func (c *BoardsCache) ensureUpdated(ctx context.Context) error {
	if c.now().Sub(c.lastUpdate) <= boardsCacheExpiry {
		return nil
	}

	for _, category := range c.categories {
		boards, err := c.api.Boards(ctx, category)

		if err != nil {
			return err
		}

		slices.SortStableFunc(boards, func(a, b Board) int {
			if a.IsDefault == b.IsDefault {
				return 0
			}

			if a.IsDefault {
				return -1
			}

			return 1
		})

		c.boards[category] = boards

		c.logger.Infof("Updated %s boards cache: %s", category, strings.Join(c.boardNames(category), ", "))
	}

	c.lastUpdate = c.now()

	return nil
}

func (c *BoardsCache) boardNames(category string) []string {
	names := make([]string, 0, len(c.boards[category]))

	for _, board := range c.boards[category] {
		names = append(names, board.Name)
	}

	return names
}
