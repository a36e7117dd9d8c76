package youtrack

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// GetIssueAttachments lists the files attached to an issue.
func (c *Client) GetIssueAttachments(ctx context.Context, issueID string, opts *ListOptions) ([]IssueAttachment, error) {
	q, err := queryFor(attachmentFields, opts)
	if err != nil {
		return nil, err
	}
	var out []IssueAttachment
	if err := c.do(ctx, http.MethodGet, "/issues/"+url.PathEscape(issueID)+"/attachments", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateIssueAttachments uploads files to an issue, keyed by file name, and
// returns the created attachments.
func (c *Client) CreateIssueAttachments(ctx context.Context, issueID string, files map[string]io.Reader) ([]IssueAttachment, error) {
	q, err := queryFor(attachmentFields, nil)
	if err != nil {
		return nil, err
	}
	var out []IssueAttachment
	if err := c.upload(ctx, "/issues/"+url.PathEscape(issueID)+"/attachments", q, files, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCommentAttachments uploads files to an existing comment, keyed by
// file name, and returns the created attachments.
func (c *Client) CreateCommentAttachments(ctx context.Context, issueID, commentID string, files map[string]io.Reader) ([]IssueAttachment, error) {
	q, err := queryFor(attachmentFields, nil)
	if err != nil {
		return nil, err
	}
	var out []IssueAttachment
	path := "/issues/" + url.PathEscape(issueID) + "/comments/" + url.PathEscape(commentID) + "/attachments"
	if err := c.upload(ctx, path, q, files, &out); err != nil {
		return nil, err
	}
	return out, nil
}
