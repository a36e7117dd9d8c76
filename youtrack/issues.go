package youtrack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// GetIssue reads one issue by internal or readable id (e.g. "ABC-123").
func (c *Client) GetIssue(ctx context.Context, issueID string) (*Issue, error) {
	q, err := queryFor(issueFields, nil)
	if err != nil {
		return nil, err
	}
	var out Issue
	if err := c.do(ctx, http.MethodGet, "/issues/"+url.PathEscape(issueID), q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetIssues lists issues matching the options' search query; a nil opts
// returns all issues the token can see.
func (c *Client) GetIssues(ctx context.Context, opts *IssueListOptions) ([]Issue, error) {
	q, err := queryFor(issueFields, opts)
	if err != nil {
		return nil, err
	}
	var out []Issue
	if err := c.do(ctx, http.MethodGet, "/issues", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateIssue creates a new issue. The issue must carry at least a project
// reference and a summary.
func (c *Client) CreateIssue(ctx context.Context, issue Issue) (*Issue, error) {
	q, err := queryFor(issueFields, nil)
	if err != nil {
		return nil, err
	}
	var out Issue
	if err := c.do(ctx, http.MethodPost, "/issues", q, issue, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateIssue applies the set attributes of issue to an existing issue.
// muteUpdateNotifications suppresses subscriber notifications for this
// change.
func (c *Client) UpdateIssue(ctx context.Context, issueID string, issue Issue, muteUpdateNotifications bool) (*Issue, error) {
	q, err := queryFor(issueFields, nil)
	if err != nil {
		return nil, err
	}
	if muteUpdateNotifications {
		q.Set("muteUpdateNotifications", "true")
	}
	var out Issue
	if err := c.do(ctx, http.MethodPost, "/issues/"+url.PathEscape(issueID), q, issue, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteIssue removes the issue permanently.
func (c *Client) DeleteIssue(ctx context.Context, issueID string) error {
	return c.do(ctx, http.MethodDelete, "/issues/"+url.PathEscape(issueID), nil, nil, nil)
}

// GetIssueCustomFields lists the custom fields present on the issue.
func (c *Client) GetIssueCustomFields(ctx context.Context, issueID string, opts *ListOptions) (IssueCustomFields, error) {
	q, err := queryFor(issueCustomFieldFields, opts)
	if err != nil {
		return nil, err
	}
	var out IssueCustomFields
	if err := c.do(ctx, http.MethodGet, "/issues/"+url.PathEscape(issueID)+"/customFields", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateIssueCustomField sets one custom field on the issue. The field must
// carry its instance id.
func (c *Client) UpdateIssueCustomField(ctx context.Context, issueID string, field IssueCustomField, muteUpdateNotifications bool) (IssueCustomField, error) {
	fieldID, ok := field.CustomFieldID()
	if !ok {
		return nil, &MalformedPayloadError{Detail: "issue custom field update requires the field id"}
	}

	q, err := queryFor(issueCustomFieldFields, nil)
	if err != nil {
		return nil, err
	}
	if muteUpdateNotifications {
		q.Set("muteUpdateNotifications", "true")
	}

	var raw json.RawMessage
	path := "/issues/" + url.PathEscape(issueID) + "/customFields/" + url.PathEscape(fieldID)
	if err := c.do(ctx, http.MethodPost, path, q, field, &raw); err != nil {
		return nil, err
	}
	return UnmarshalIssueCustomField(raw)
}
