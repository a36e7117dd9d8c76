package youtrack

import (
	"context"
	"io"
)

// Future is the pending result of an asynchronous call. It resolves exactly
// once; Result blocks until then and may be called from multiple goroutines.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Done returns a channel closed when the result is available, for use in
// select statements.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Result blocks until the call completes and returns its outcome.
func (f *Future[T]) Result() (T, error) {
	<-f.done
	return f.val, f.err
}

func future[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.val, f.err = fn()
	}()
	return f
}

func futureErr(fn func() error) *Future[struct{}] {
	return future(func() (struct{}, error) {
		return struct{}{}, fn()
	})
}

// AsyncClient mirrors every Client operation as a non-blocking call
// returning a Future. It shares the blocking client's transport and codec,
// so both surfaces produce identical results for identical responses.
type AsyncClient struct {
	c *Client
}

// NewAsyncClient returns an asynchronous client for the YouTrack instance at
// baseURL.
func NewAsyncClient(baseURL, token string, opts ...ClientOption) (*AsyncClient, error) {
	c, err := NewClient(baseURL, token, opts...)
	if err != nil {
		return nil, err
	}
	return &AsyncClient{c: c}, nil
}

// Sync returns the underlying blocking client.
func (a *AsyncClient) Sync() *Client { return a.c }

// Close releases idle transport connections. Pending futures still resolve.
func (a *AsyncClient) Close() { a.c.Close() }

func (a *AsyncClient) GetIssue(ctx context.Context, issueID string) *Future[*Issue] {
	return future(func() (*Issue, error) { return a.c.GetIssue(ctx, issueID) })
}

func (a *AsyncClient) GetIssues(ctx context.Context, opts *IssueListOptions) *Future[[]Issue] {
	return future(func() ([]Issue, error) { return a.c.GetIssues(ctx, opts) })
}

func (a *AsyncClient) CreateIssue(ctx context.Context, issue Issue) *Future[*Issue] {
	return future(func() (*Issue, error) { return a.c.CreateIssue(ctx, issue) })
}

func (a *AsyncClient) UpdateIssue(ctx context.Context, issueID string, issue Issue, muteUpdateNotifications bool) *Future[*Issue] {
	return future(func() (*Issue, error) { return a.c.UpdateIssue(ctx, issueID, issue, muteUpdateNotifications) })
}

func (a *AsyncClient) DeleteIssue(ctx context.Context, issueID string) *Future[struct{}] {
	return futureErr(func() error { return a.c.DeleteIssue(ctx, issueID) })
}

func (a *AsyncClient) GetIssueCustomFields(ctx context.Context, issueID string, opts *ListOptions) *Future[IssueCustomFields] {
	return future(func() (IssueCustomFields, error) { return a.c.GetIssueCustomFields(ctx, issueID, opts) })
}

func (a *AsyncClient) UpdateIssueCustomField(ctx context.Context, issueID string, field IssueCustomField, muteUpdateNotifications bool) *Future[IssueCustomField] {
	return future(func() (IssueCustomField, error) {
		return a.c.UpdateIssueCustomField(ctx, issueID, field, muteUpdateNotifications)
	})
}

func (a *AsyncClient) GetIssueComments(ctx context.Context, issueID string, opts *ListOptions) *Future[[]IssueComment] {
	return future(func() ([]IssueComment, error) { return a.c.GetIssueComments(ctx, issueID, opts) })
}

func (a *AsyncClient) CreateIssueComment(ctx context.Context, issueID string, comment IssueComment) *Future[*IssueComment] {
	return future(func() (*IssueComment, error) { return a.c.CreateIssueComment(ctx, issueID, comment) })
}

func (a *AsyncClient) UpdateIssueComment(ctx context.Context, issueID string, comment IssueComment, muteUpdateNotifications bool) *Future[*IssueComment] {
	return future(func() (*IssueComment, error) {
		return a.c.UpdateIssueComment(ctx, issueID, comment, muteUpdateNotifications)
	})
}

func (a *AsyncClient) HideIssueComment(ctx context.Context, issueID, commentID string) *Future[struct{}] {
	return futureErr(func() error { return a.c.HideIssueComment(ctx, issueID, commentID) })
}

func (a *AsyncClient) DeleteIssueComment(ctx context.Context, issueID, commentID string) *Future[struct{}] {
	return futureErr(func() error { return a.c.DeleteIssueComment(ctx, issueID, commentID) })
}

func (a *AsyncClient) GetIssueAttachments(ctx context.Context, issueID string, opts *ListOptions) *Future[[]IssueAttachment] {
	return future(func() ([]IssueAttachment, error) { return a.c.GetIssueAttachments(ctx, issueID, opts) })
}

func (a *AsyncClient) CreateIssueAttachments(ctx context.Context, issueID string, files map[string]io.Reader) *Future[[]IssueAttachment] {
	return future(func() ([]IssueAttachment, error) { return a.c.CreateIssueAttachments(ctx, issueID, files) })
}

func (a *AsyncClient) CreateCommentAttachments(ctx context.Context, issueID, commentID string, files map[string]io.Reader) *Future[[]IssueAttachment] {
	return future(func() ([]IssueAttachment, error) {
		return a.c.CreateCommentAttachments(ctx, issueID, commentID, files)
	})
}

func (a *AsyncClient) GetIssueWorkItems(ctx context.Context, issueID string, opts *ListOptions) *Future[[]IssueWorkItem] {
	return future(func() ([]IssueWorkItem, error) { return a.c.GetIssueWorkItems(ctx, issueID, opts) })
}

func (a *AsyncClient) CreateIssueWorkItem(ctx context.Context, issueID string, workItem IssueWorkItem) *Future[*IssueWorkItem] {
	return future(func() (*IssueWorkItem, error) { return a.c.CreateIssueWorkItem(ctx, issueID, workItem) })
}

func (a *AsyncClient) GetProjects(ctx context.Context, opts *ListOptions) *Future[[]Project] {
	return future(func() ([]Project, error) { return a.c.GetProjects(ctx, opts) })
}

func (a *AsyncClient) GetProjectCustomFields(ctx context.Context, projectID string, opts *ListOptions) *Future[ProjectCustomFields] {
	return future(func() (ProjectCustomFields, error) { return a.c.GetProjectCustomFields(ctx, projectID, opts) })
}

func (a *AsyncClient) GetProjectWorkItemTypes(ctx context.Context, projectID string, opts *ListOptions) *Future[[]WorkItemType] {
	return future(func() ([]WorkItemType, error) { return a.c.GetProjectWorkItemTypes(ctx, projectID, opts) })
}

func (a *AsyncClient) GetTags(ctx context.Context, opts *ListOptions) *Future[[]Tag] {
	return future(func() ([]Tag, error) { return a.c.GetTags(ctx, opts) })
}

func (a *AsyncClient) AddIssueTag(ctx context.Context, issueID string, tag Tag) *Future[struct{}] {
	return futureErr(func() error { return a.c.AddIssueTag(ctx, issueID, tag) })
}

func (a *AsyncClient) GetUsers(ctx context.Context, opts *ListOptions) *Future[[]User] {
	return future(func() ([]User, error) { return a.c.GetUsers(ctx, opts) })
}

func (a *AsyncClient) GetIssueLinks(ctx context.Context, issueID string, opts *ListOptions) *Future[[]IssueLink] {
	return future(func() ([]IssueLink, error) { return a.c.GetIssueLinks(ctx, issueID, opts) })
}

func (a *AsyncClient) GetIssueLinkTypes(ctx context.Context, opts *ListOptions) *Future[[]IssueLinkType] {
	return future(func() ([]IssueLinkType, error) { return a.c.GetIssueLinkTypes(ctx, opts) })
}

func (a *AsyncClient) LinkIssues(ctx context.Context, sourceIssueID, targetIssueID, linkTypeID string, direction LinkDirection) *Future[*Issue] {
	return future(func() (*Issue, error) {
		return a.c.LinkIssues(ctx, sourceIssueID, targetIssueID, linkTypeID, direction)
	})
}

func (a *AsyncClient) DeleteIssueLink(ctx context.Context, sourceIssueID, targetIssueID, linkTypeID string) *Future[struct{}] {
	return futureErr(func() error { return a.c.DeleteIssueLink(ctx, sourceIssueID, targetIssueID, linkTypeID) })
}

func (a *AsyncClient) GetAgiles(ctx context.Context, opts *ListOptions) *Future[[]Agile] {
	return future(func() ([]Agile, error) { return a.c.GetAgiles(ctx, opts) })
}

func (a *AsyncClient) GetAgile(ctx context.Context, agileID string) *Future[*Agile] {
	return future(func() (*Agile, error) { return a.c.GetAgile(ctx, agileID) })
}

func (a *AsyncClient) GetSprints(ctx context.Context, agileID string, opts *ListOptions) *Future[[]Sprint] {
	return future(func() ([]Sprint, error) { return a.c.GetSprints(ctx, agileID, opts) })
}

func (a *AsyncClient) GetSprint(ctx context.Context, agileID, sprintID string) *Future[*Sprint] {
	return future(func() (*Sprint, error) { return a.c.GetSprint(ctx, agileID, sprintID) })
}
