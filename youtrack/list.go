package youtrack

import (
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
)

// ListOptions pages a list endpoint. The zero value requests the server
// defaults.
type ListOptions struct {
	// Skip is the number of leading entries to omit.
	Skip int `url:"$skip,omitempty"`
	// Top caps the number of entries returned.
	Top int `url:"$top,omitempty"`
}

// IssueListOptions filters and pages the issues list endpoint.
type IssueListOptions struct {
	// Query is a YouTrack search query; empty matches all issues.
	Query string `url:"query,omitempty"`
	// CustomFields names custom fields to return regardless of the
	// requested projection.
	CustomFields []string `url:"customFields,omitempty"`

	ListOptions
}

// queryFor encodes opts (which may be nil) and pins the field projection.
func queryFor(fields string, opts any) (url.Values, error) {
	q := url.Values{}
	if opts != nil {
		var err error
		q, err = query.Values(opts)
		if err != nil {
			return nil, fmt.Errorf("youtrack: encode query options: %w", err)
		}
	}
	q.Set("fields", fields)
	return q, nil
}
