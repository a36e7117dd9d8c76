package youtrack

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL, "test-token", WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	t.Cleanup(c.Close)
	return c
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("https://yt.example.com", ""); err == nil {
		t.Error("NewClient() with empty token succeeded, want error")
	}
	if _, err := NewClient("yt.example.com", "token"); err == nil {
		t.Error("NewClient() with relative url succeeded, want error")
	}
	if _, err := NewClient("https://yt.example.com/", "token"); err != nil {
		t.Errorf("NewClient() error = %v", err)
	}
}

func TestGetIssue(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/api/issues/HD-99" {
			t.Errorf("path = %s, want /api/issues/HD-99", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q, want Bearer test-token", got)
		}
		if r.URL.Query().Get("fields") == "" {
			t.Error("fields parameter is missing")
		}
		_, _ = w.Write([]byte(`{"$type":"Issue","id":"2-46619","idReadable":"HD-99","summary":"Site is down"}`))
	})

	issue, err := c.GetIssue(context.Background(), "HD-99")
	if err != nil {
		t.Fatalf("GetIssue() error = %v", err)
	}
	if got := issue.Summary.Or(""); got != "Site is down" {
		t.Errorf("Summary = %q, want Site is down", got)
	}
}

func TestGetIssuesQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("query"); got != "project: HD #Unresolved" {
			t.Errorf("query = %q", got)
		}
		if got := q.Get("$skip"); got != "10" {
			t.Errorf("$skip = %q, want 10", got)
		}
		if got := q.Get("$top"); got != "5" {
			t.Errorf("$top = %q, want 5", got)
		}
		if got := q["customFields"]; len(got) != 2 || got[0] != "State" || got[1] != "Priority" {
			t.Errorf("customFields = %v, want [State Priority]", got)
		}
		_, _ = w.Write([]byte(`[{"$type":"Issue","id":"2-1"},{"$type":"Issue","id":"2-2"}]`))
	})

	issues, err := c.GetIssues(context.Background(), &IssueListOptions{
		Query:        "project: HD #Unresolved",
		CustomFields: []string{"State", "Priority"},
		ListOptions:  ListOptions{Skip: 10, Top: 5},
	})
	if err != nil {
		t.Fatalf("GetIssues() error = %v", err)
	}
	if len(issues) != 2 {
		t.Errorf("got %d issues, want 2", len(issues))
	}
}

func TestCreateIssueBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}
		body, _ := io.ReadAll(r.Body)
		want := `{"$type":"Issue","project":{"$type":"Project","id":"0-0"},"summary":"Site is down"}`
		if string(body) != want {
			t.Errorf("body = %s, want %s", body, want)
		}
		_, _ = w.Write([]byte(`{"$type":"Issue","id":"2-1","idReadable":"HD-1","summary":"Site is down"}`))
	})

	created, err := c.CreateIssue(context.Background(), Issue{
		Project: Set(Project{ID: Set("0-0")}),
		Summary: Set("Site is down"),
	})
	if err != nil {
		t.Fatalf("CreateIssue() error = %v", err)
	}
	if got := created.IDReadable.Or(""); got != "HD-1" {
		t.Errorf("IDReadable = %q, want HD-1", got)
	}
}

func TestUpdateIssueMutesNotifications(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("muteUpdateNotifications"); got != "true" {
			t.Errorf("muteUpdateNotifications = %q, want true", got)
		}
		_, _ = w.Write([]byte(`{"$type":"Issue","id":"2-1"}`))
	})

	if _, err := c.UpdateIssue(context.Background(), "HD-1", Issue{Summary: Set("updated")}, true); err != nil {
		t.Fatalf("UpdateIssue() error = %v", err)
	}
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, want: ErrUnauthorized},
		{name: "not found", status: http.StatusNotFound, want: ErrNotFound},
		{name: "rate limited", status: http.StatusTooManyRequests, want: ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tt.status)
			})
			_, err := c.GetIssue(context.Background(), "HD-1")
			if !errors.Is(err, tt.want) {
				t.Errorf("GetIssue() error = %v, want %v", err, tt.want)
			}
			var apiErr *APIError
			if !errors.As(err, &apiErr) || apiErr.StatusCode != tt.status {
				t.Errorf("status not preserved in %v", err)
			}
		})
	}
}

func TestServerErrorKeepsStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.GetIssue(context.Background(), "HD-1")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want APIError", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", apiErr.StatusCode)
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrUnauthorized) {
		t.Error("500 must not match a sentinel")
	}
}

func TestDeleteIssueEmptyBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		w.WriteHeader(http.StatusOK)
	})

	if err := c.DeleteIssue(context.Background(), "HD-1"); err != nil {
		t.Fatalf("DeleteIssue() error = %v", err)
	}
}

func TestUpdateIssueCustomField(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/issues/HD-1/customFields/92-1" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"$type":"StateIssueCustomField","id":"92-1","name":"State","value":{"name":"Fixed","isResolved":true}}`))
	})

	updated, err := c.UpdateIssueCustomField(context.Background(), "HD-1", &StateIssueCustomField{
		ID:    Set("92-1"),
		Value: Set(StateBundleElement{Name: Set("Fixed")}),
	}, false)
	if err != nil {
		t.Fatalf("UpdateIssueCustomField() error = %v", err)
	}
	state, ok := updated.(*StateIssueCustomField)
	if !ok {
		t.Fatalf("got %T, want *StateIssueCustomField", updated)
	}
	value, _ := state.Value.Value()
	if resolved, _ := value.IsResolved.Value(); !resolved {
		t.Error("IsResolved = false, want true")
	}
}

func TestUpdateIssueCustomFieldRequiresID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := c.UpdateIssueCustomField(context.Background(), "HD-1", &StateIssueCustomField{}, false)
	var malformed *MalformedPayloadError
	if !errors.As(err, &malformed) {
		t.Fatalf("error = %v, want MalformedPayloadError", err)
	}
}

func TestHideIssueCommentBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/issues/HD-1/comments/4-2" {
			t.Errorf("path = %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		want := `{"$type":"IssueComment","id":"4-2","deleted":true}`
		if string(body) != want {
			t.Errorf("body = %s, want %s", body, want)
		}
		_, _ = w.Write([]byte(`{"$type":"IssueComment","id":"4-2","deleted":true}`))
	})

	if err := c.HideIssueComment(context.Background(), "HD-1", "4-2"); err != nil {
		t.Fatalf("HideIssueComment() error = %v", err)
	}
}

func TestLinkIssuesDirectionPath(t *testing.T) {
	tests := []struct {
		direction LinkDirection
		wantPath  string
	}{
		{direction: LinkOutward, wantPath: "/api/issues/HD-1/links/105-0s/issues"},
		{direction: LinkInward, wantPath: "/api/issues/HD-1/links/105-0t/issues"},
		{direction: LinkBoth, wantPath: "/api/issues/HD-1/links/105-0/issues"},
	}

	for _, tt := range tests {
		t.Run(string(tt.direction), func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != tt.wantPath {
					t.Errorf("path = %s, want %s", r.URL.Path, tt.wantPath)
				}
				body, _ := io.ReadAll(r.Body)
				if string(body) != `{"$type":"Issue","id":"2-9"}` {
					t.Errorf("body = %s", body)
				}
				_, _ = w.Write([]byte(`{"$type":"Issue","id":"2-9"}`))
			})

			if _, err := c.LinkIssues(context.Background(), "HD-1", "2-9", "105-0", tt.direction); err != nil {
				t.Fatalf("LinkIssues() error = %v", err)
			}
		})
	}
}

func TestCreateIssueAttachmentsMultipart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			t.Errorf("Content-Type = %q, want multipart/form-data", r.Header.Get("Content-Type"))
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm() error = %v", err)
		}
		file, header, err := r.FormFile("report.txt")
		if err != nil {
			t.Fatalf("FormFile() error = %v", err)
		}
		defer func() { _ = file.Close() }()
		if header.Filename != "report.txt" {
			t.Errorf("Filename = %q, want report.txt", header.Filename)
		}
		content, _ := io.ReadAll(file)
		if string(content) != "all good" {
			t.Errorf("content = %q, want all good", content)
		}
		_, _ = w.Write([]byte(`[{"$type":"IssueAttachment","id":"8-1","name":"report.txt"}]`))
	})

	attachments, err := c.CreateIssueAttachments(context.Background(), "HD-1", map[string]io.Reader{
		"report.txt": strings.NewReader("all good"),
	})
	if err != nil {
		t.Fatalf("CreateIssueAttachments() error = %v", err)
	}
	if len(attachments) != 1 || attachments[0].Name.Or("") != "report.txt" {
		t.Errorf("attachments = %v", attachments)
	}
}

func TestGetProjectCustomFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/admin/projects/0-0/customFields" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"$type":"StateProjectCustomField","id":"40-1"}]`))
	})

	fields, err := c.GetProjectCustomFields(context.Background(), "0-0", nil)
	if err != nil {
		t.Fatalf("GetProjectCustomFields() error = %v", err)
	}
	if len(fields) != 1 || fields[0].TypeName() != TypeStateProjectCustomField {
		t.Errorf("fields = %v", fields)
	}
}

func TestAbsoluteURL(t *testing.T) {
	c, err := NewClient("https://yt.example.com", "token")
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if got := c.AbsoluteURL("/issue/HD-99"); got != "https://yt.example.com/issue/HD-99" {
		t.Errorf("AbsoluteURL() = %q", got)
	}
}

func TestMalformedResponseBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"$type":`))
	})

	_, err := c.GetIssue(context.Background(), "HD-1")
	var malformed *MalformedPayloadError
	if !errors.As(err, &malformed) {
		t.Fatalf("error = %v, want MalformedPayloadError", err)
	}
}
