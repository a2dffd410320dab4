package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"vlr-growth/internal/config"

	"github.com/valyala/fasthttp"
)

// Client talks to the public VLR esports API. It performs no caching and no
// retries; a failed call propagates to the caller immediately.
type Client struct {
	baseURL   string
	pageLimit int
	client    *fasthttp.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:   cfg.VLRAPIBaseURL,
		pageLimit: cfg.PageLimit,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

func (c *Client) GetPlayers(ctx context.Context, page, limit int, country string) (*PlayerListResponse, error) {
	u := fmt.Sprintf("%s/players?page=%d&limit=%d", c.baseURL, page, limit)
	if country != "" {
		u += "&country=" + url.QueryEscape(country)
	}
	return doRequest[PlayerListResponse](ctx, c, u)
}

func (c *Client) GetPlayer(ctx context.Context, id string) (*PlayerDetailResponse, error) {
	u := fmt.Sprintf("%s/players/%s", c.baseURL, url.PathEscape(id))
	return doRequest[PlayerDetailResponse](ctx, c, u)
}

func (c *Client) GetTeams(ctx context.Context, page, limit int, region string) (*TeamListResponse, error) {
	u := fmt.Sprintf("%s/teams?page=%d&limit=%d", c.baseURL, page, limit)
	if region != "" {
		u += "&region=" + url.QueryEscape(region)
	}
	return doRequest[TeamListResponse](ctx, c, u)
}

func (c *Client) GetTeam(ctx context.Context, id string) (*TeamDetailResponse, error) {
	u := fmt.Sprintf("%s/teams/%s", c.baseURL, url.PathEscape(id))
	return doRequest[TeamDetailResponse](ctx, c, u)
}

// GetAllPlayers walks every page sequentially, concatenating results. The
// loop stops on the first page whose pagination reports no next page. On any
// error the partial results are discarded.
func (c *Client) GetAllPlayers(ctx context.Context, country string) ([]PlayerListItem, error) {
	var all []PlayerListItem
	for page := 1; ; page++ {
		resp, err := c.GetPlayers(ctx, page, c.pageLimit, country)
		if err != nil {
			return nil, err
		}
		all = append(all, resp.Data...)
		if !resp.Pagination.HasNextPage {
			return all, nil
		}
	}
}

func (c *Client) GetAllTeams(ctx context.Context, region string) ([]TeamListItem, error) {
	var all []TeamListItem
	for page := 1; ; page++ {
		resp, err := c.GetTeams(ctx, page, c.pageLimit, region)
		if err != nil {
			return nil, err
		}
		all = append(all, resp.Data...)
		if !resp.Pagination.HasNextPage {
			return all, nil
		}
	}
}

func doRequest[T any](ctx context.Context, client *Client, url string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	if resp.StatusCode() < fasthttp.StatusOK || resp.StatusCode() >= fasthttp.StatusMultipleChoices {
		return nil, &TransportError{
			StatusCode: resp.StatusCode(),
			Body:       string(resp.Body()),
		}
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, &DecodeError{URL: url, Err: err}
	}
	return &result, nil
}
