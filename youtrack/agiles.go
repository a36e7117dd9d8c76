package youtrack

import (
	"context"
	"net/http"
	"net/url"
)

// GetAgiles lists the agile boards configured on the instance.
func (c *Client) GetAgiles(ctx context.Context, opts *ListOptions) ([]Agile, error) {
	q, err := queryFor(agileFields, opts)
	if err != nil {
		return nil, err
	}
	var out []Agile
	if err := c.do(ctx, http.MethodGet, "/agiles", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAgile reads one agile board by id.
func (c *Client) GetAgile(ctx context.Context, agileID string) (*Agile, error) {
	q, err := queryFor(agileFields, nil)
	if err != nil {
		return nil, err
	}
	var out Agile
	if err := c.do(ctx, http.MethodGet, "/agiles/"+url.PathEscape(agileID), q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSprints lists the sprints of an agile board.
func (c *Client) GetSprints(ctx context.Context, agileID string, opts *ListOptions) ([]Sprint, error) {
	q, err := queryFor(sprintFields, opts)
	if err != nil {
		return nil, err
	}
	var out []Sprint
	if err := c.do(ctx, http.MethodGet, "/agiles/"+url.PathEscape(agileID)+"/sprints", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSprint reads one sprint of an agile board.
func (c *Client) GetSprint(ctx context.Context, agileID, sprintID string) (*Sprint, error) {
	q, err := queryFor(sprintFields, nil)
	if err != nil {
		return nil, err
	}
	var out Sprint
	path := "/agiles/" + url.PathEscape(agileID) + "/sprints/" + url.PathEscape(sprintID)
	if err := c.do(ctx, http.MethodGet, path, q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
