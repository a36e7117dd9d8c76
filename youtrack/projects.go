package youtrack

import (
	"context"
	"net/http"
	"net/url"
)

// GetProjects lists the projects the token can see.
func (c *Client) GetProjects(ctx context.Context, opts *ListOptions) ([]Project, error) {
	q, err := queryFor(projectFields, opts)
	if err != nil {
		return nil, err
	}
	var out []Project
	if err := c.do(ctx, http.MethodGet, "/admin/projects", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProjectCustomFields lists the custom fields attached to a project.
func (c *Client) GetProjectCustomFields(ctx context.Context, projectID string, opts *ListOptions) (ProjectCustomFields, error) {
	q, err := queryFor(projectCustomFieldFields, opts)
	if err != nil {
		return nil, err
	}
	var out ProjectCustomFields
	if err := c.do(ctx, http.MethodGet, "/admin/projects/"+url.PathEscape(projectID)+"/customFields", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProjectWorkItemTypes lists the work item categories configured for a
// project's time tracking.
func (c *Client) GetProjectWorkItemTypes(ctx context.Context, projectID string, opts *ListOptions) ([]WorkItemType, error) {
	q, err := queryFor(workItemTypeFields, opts)
	if err != nil {
		return nil, err
	}
	var out []WorkItemType
	path := "/admin/projects/" + url.PathEscape(projectID) + "/timeTrackingSettings/workItemTypes"
	if err := c.do(ctx, http.MethodGet, path, q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
