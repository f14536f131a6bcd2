package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"emerald-console/internal/core/domain"
)

// ListTowns calls GET /dictionary/towns.
func (c *Client) ListTowns(ctx context.Context) ([]domain.Town, error) {
	var towns []domain.Town
	err := c.do(ctx, operation{
		name:    "list_towns",
		failure: "Failed to fetch towns",
		method:  http.MethodGet,
		path:    "/dictionary/towns",
	}, &towns)
	return towns, err
}

// SearchKeywords calls GET /dictionary/keywords. The query parameter is
// sent verbatim and omitted entirely when query is empty.
func (c *Client) SearchKeywords(ctx context.Context, query string) ([]domain.Keyword, error) {
	var params url.Values
	if query != "" {
		params = url.Values{"query": {query}}
	}
	var keywords []domain.Keyword
	err := c.do(ctx, operation{
		name:    "search_keywords",
		failure: "Failed to fetch keywords",
		method:  http.MethodGet,
		path:    "/dictionary/keywords",
		query:   params,
	}, &keywords)
	return keywords, err
}
