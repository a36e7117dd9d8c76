package youtrack

import (
	"context"
	"net/http"
	"net/url"
)

// GetTags lists the tags visible to the token.
func (c *Client) GetTags(ctx context.Context, opts *ListOptions) ([]Tag, error) {
	q, err := queryFor(tagFields, opts)
	if err != nil {
		return nil, err
	}
	var out []Tag
	if err := c.do(ctx, http.MethodGet, "/tags", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddIssueTag attaches an existing tag to the issue. The tag must carry its
// id.
func (c *Client) AddIssueTag(ctx context.Context, issueID string, tag Tag) error {
	return c.do(ctx, http.MethodPost, "/issues/"+url.PathEscape(issueID)+"/tags", nil, tag, nil)
}
