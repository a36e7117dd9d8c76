package youtrack

import (
	"context"
	"net/http"
	"net/url"
)

// GetIssueComments lists the comments on an issue in posting order.
func (c *Client) GetIssueComments(ctx context.Context, issueID string, opts *ListOptions) ([]IssueComment, error) {
	q, err := queryFor(issueCommentFields, opts)
	if err != nil {
		return nil, err
	}
	var out []IssueComment
	if err := c.do(ctx, http.MethodGet, "/issues/"+url.PathEscape(issueID)+"/comments", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateIssueComment posts a new comment on the issue.
func (c *Client) CreateIssueComment(ctx context.Context, issueID string, comment IssueComment) (*IssueComment, error) {
	q, err := queryFor(issueCommentFields, nil)
	if err != nil {
		return nil, err
	}
	var out IssueComment
	if err := c.do(ctx, http.MethodPost, "/issues/"+url.PathEscape(issueID)+"/comments", q, comment, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateIssueComment applies the set attributes of comment to an existing
// comment. The comment must carry its id.
func (c *Client) UpdateIssueComment(ctx context.Context, issueID string, comment IssueComment, muteUpdateNotifications bool) (*IssueComment, error) {
	commentID, ok := comment.ID.Value()
	if !ok {
		return nil, &MalformedPayloadError{Detail: "comment update requires the comment id"}
	}

	q, err := queryFor(issueCommentFields, nil)
	if err != nil {
		return nil, err
	}
	if muteUpdateNotifications {
		q.Set("muteUpdateNotifications", "true")
	}

	var out IssueComment
	path := "/issues/" + url.PathEscape(issueID) + "/comments/" + url.PathEscape(commentID)
	if err := c.do(ctx, http.MethodPost, path, q, comment, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// HideIssueComment marks the comment as deleted. Hidden comments stay
// recoverable on the server; use DeleteIssueComment to drop one permanently.
func (c *Client) HideIssueComment(ctx context.Context, issueID, commentID string) error {
	_, err := c.UpdateIssueComment(ctx, issueID, IssueComment{
		ID:      Set(commentID),
		Deleted: Set(true),
	}, false)
	return err
}

// DeleteIssueComment removes the comment permanently.
func (c *Client) DeleteIssueComment(ctx context.Context, issueID, commentID string) error {
	path := "/issues/" + url.PathEscape(issueID) + "/comments/" + url.PathEscape(commentID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
