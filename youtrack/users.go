package youtrack

import (
	"context"
	"net/http"
)

// GetUsers lists the registered users.
func (c *Client) GetUsers(ctx context.Context, opts *ListOptions) ([]User, error) {
	q, err := queryFor(userFields, opts)
	if err != nil {
		return nil, err
	}
	var out []User
	if err := c.do(ctx, http.MethodGet, "/users", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
