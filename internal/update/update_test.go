package update

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-github/v67/github"
)

func newTestChecker(t *testing.T, releasesJSON string) *Checker {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/valksor/go-youtrack/releases" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(releasesJSON))
	}))
	t.Cleanup(srv.Close)

	gh := github.NewClient(srv.Client())
	base, _ := url.Parse(srv.URL + "/")
	gh.BaseURL = base

	return &Checker{ghClient: gh, owner: defaultOwner, repo: defaultRepo}
}

func TestCheckDevBuild(t *testing.T) {
	c := NewChecker("", "", "")
	_, err := c.Check(context.Background(), CheckOptions{CurrentVersion: "dev"})
	if !errors.Is(err, ErrDevBuild) {
		t.Errorf("Check(dev) error = %v, want ErrDevBuild", err)
	}
}

func TestCheckNewerRelease(t *testing.T) {
	c := newTestChecker(t, `[
		{"tag_name":"v1.3.0","draft":false,"prerelease":false,"html_url":"https://example.com/r/v1.3.0","body":"fixes"},
		{"tag_name":"v1.2.0","draft":false,"prerelease":false}
	]`)

	status, err := c.Check(context.Background(), CheckOptions{CurrentVersion: "v1.2.0"})
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if !status.IsNewer || status.LatestVersion != "v1.3.0" {
		t.Errorf("status = %+v, want newer v1.3.0", status)
	}
}

func TestCheckUpToDate(t *testing.T) {
	c := newTestChecker(t, `[{"tag_name":"v1.2.0","draft":false,"prerelease":false}]`)

	status, err := c.Check(context.Background(), CheckOptions{CurrentVersion: "1.2.0"})
	if !errors.Is(err, ErrNoUpdateAvailable) {
		t.Fatalf("Check() error = %v, want ErrNoUpdateAvailable", err)
	}
	if status == nil || status.IsNewer {
		t.Errorf("status = %+v, want not newer", status)
	}
}

func TestCheckSkipsDraftsAndPreReleases(t *testing.T) {
	c := newTestChecker(t, `[
		{"tag_name":"v2.0.0-rc.1","draft":false,"prerelease":true},
		{"tag_name":"v2.0.0","draft":true,"prerelease":false},
		{"tag_name":"v1.5.0","draft":false,"prerelease":false}
	]`)

	status, err := c.Check(context.Background(), CheckOptions{CurrentVersion: "v1.0.0"})
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if status.LatestVersion != "v1.5.0" {
		t.Errorf("LatestVersion = %q, want v1.5.0", status.LatestVersion)
	}
}

func TestCanonical(t *testing.T) {
	if canonical("1.2.3") != "v1.2.3" || canonical("v1.2.3") != "v1.2.3" {
		t.Error("canonical must produce a v-prefixed version")
	}
}
