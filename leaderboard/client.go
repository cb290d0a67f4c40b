package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/totorewa/roro-chat-api/config"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrFetch covers every way a remote call can fail: transport errors,
// non-success statuses and undecodable bodies all look the same to callers.
var ErrFetch = errors.New("leaderboard service fetch failed")

// Board is a leaderboard variant within a category.
type Board struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	IsDefault   bool   `json:"isDefault"`
}

// Run is a single leaderboard entry as returned by a search.
type Run struct {
	Place          int      `json:"place"`
	Players        []string `json:"players"`
	CompletionTime string   `json:"completionTime"`
}

type searchResult struct {
	Run Run `json:"run"`
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

// Service is the contract the rest of the package has with the remote
// leaderboard service.
type Service interface {
	Boards(ctx context.Context, category string) ([]Board, error)
	Search(ctx context.Context, category string, board string, params map[string]string) ([]Run, error)
	TotalRecords(ctx context.Context, category string, board string) (int, error)
}

// Client calls the remote leaderboard service over HTTP with basic auth.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	client       *http.Client
}

func NewClient(cfg config.Mcsr) *Client {
	return &Client{
		baseURL:      cfg.BaseURL + "/api/leaderboard",
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

func (c *Client) Boards(ctx context.Context, category string) ([]Board, error) {
	query := url.Values{}
	query.Set("cat", category)

	resp, err := c.do(ctx, "GET", "/boards", query)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	var boards []Board

	if err := json.NewDecoder(resp.Body).Decode(&boards); err != nil {
		return nil, fmt.Errorf("%w: decoding boards: %s", ErrFetch, err.Error())
	}

	return boards, nil
}

func (c *Client) Search(ctx context.Context, category string, board string, params map[string]string) ([]Run, error) {
	query := url.Values{}

	for k, v := range params {
		query.Set(k, v)
	}

	query.Set("cat", category)
	query.Set("board", board)

	resp, err := c.do(ctx, "GET", "/search", query)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	var data searchResponse

	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: decoding search results: %s", ErrFetch, err.Error())
	}

	runs := make([]Run, 0, len(data.Results))

	for _, result := range data.Results {
		runs = append(runs, result.Run)
	}

	return runs, nil
}

func (c *Client) TotalRecords(ctx context.Context, category string, board string) (int, error) {
	query := url.Values{}
	query.Set("cat", category)
	query.Set("board", board)

	resp, err := c.do(ctx, "HEAD", "/all", query)

	if err != nil {
		return 0, err
	}

	defer resp.Body.Close()

	header := resp.Header.Get("x-total-count")

	if header == "" {
		return 0, nil
	}

	count, err := strconv.Atoi(header)

	if err != nil {
		return 0, fmt.Errorf("%w: bad x-total-count header: %s", ErrFetch, header)
	}

	return count, nil
}

func (c *Client) do(ctx context.Context, method string, path string, query url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path+"?"+query.Encode(), nil)

	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %s", ErrFetch, err.Error())
	}

	req.SetBasicAuth(c.clientID, c.clientSecret)

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFetch, err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: status code %d from %s", ErrFetch, resp.StatusCode, path)
	}

	return resp, nil
}
