package youtrack

import (
	"context"
	"net/http"
	"net/url"
)

// GetIssueWorkItems lists the spent-time records on an issue.
func (c *Client) GetIssueWorkItems(ctx context.Context, issueID string, opts *ListOptions) ([]IssueWorkItem, error) {
	q, err := queryFor(issueWorkItemFields, opts)
	if err != nil {
		return nil, err
	}
	var out []IssueWorkItem
	if err := c.do(ctx, http.MethodGet, "/issues/"+url.PathEscape(issueID)+"/timeTracking/workItems", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateIssueWorkItem records spent time on the issue.
func (c *Client) CreateIssueWorkItem(ctx context.Context, issueID string, workItem IssueWorkItem) (*IssueWorkItem, error) {
	q, err := queryFor(issueWorkItemFields, nil)
	if err != nil {
		return nil, err
	}
	var out IssueWorkItem
	if err := c.do(ctx, http.MethodPost, "/issues/"+url.PathEscape(issueID)+"/timeTracking/workItems", q, workItem, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
