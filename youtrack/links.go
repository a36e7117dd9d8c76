package youtrack

import (
	"context"
	"net/http"
	"net/url"
)

// pathSuffix maps the link direction to the suffix the links endpoint appends
// to the link type id.
func (d LinkDirection) pathSuffix() string {
	switch d {
	case LinkOutward:
		return "s"
	case LinkInward:
		return "t"
	default:
		return ""
	}
}

// GetIssueLinks lists the issue's link relations, including empty ones.
func (c *Client) GetIssueLinks(ctx context.Context, issueID string, opts *ListOptions) ([]IssueLink, error) {
	q, err := queryFor(issueLinkFields, opts)
	if err != nil {
		return nil, err
	}
	var out []IssueLink
	if err := c.do(ctx, http.MethodGet, "/issues/"+url.PathEscape(issueID)+"/links", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetIssueLinkTypes lists the link relations configured on the instance.
func (c *Client) GetIssueLinkTypes(ctx context.Context, opts *ListOptions) ([]IssueLinkType, error) {
	q, err := queryFor(issueLinkTypeFields, opts)
	if err != nil {
		return nil, err
	}
	var out []IssueLinkType
	if err := c.do(ctx, http.MethodGet, "/issueLinkTypes", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LinkIssues links the target issue to the source issue with the given link
// type and direction, returning the linked target.
func (c *Client) LinkIssues(ctx context.Context, sourceIssueID, targetIssueID, linkTypeID string, direction LinkDirection) (*Issue, error) {
	q, err := queryFor(issueFields, nil)
	if err != nil {
		return nil, err
	}
	var out Issue
	path := "/issues/" + url.PathEscape(sourceIssueID) + "/links/" +
		url.PathEscape(linkTypeID) + direction.pathSuffix() + "/issues"
	if err := c.do(ctx, http.MethodPost, path, q, Issue{ID: Set(targetIssueID)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteIssueLink removes the link between two issues.
func (c *Client) DeleteIssueLink(ctx context.Context, sourceIssueID, targetIssueID, linkTypeID string) error {
	path := "/issues/" + url.PathEscape(sourceIssueID) + "/links/" +
		url.PathEscape(linkTypeID) + "/issues/" + url.PathEscape(targetIssueID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
