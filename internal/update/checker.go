// Package update checks GitHub releases for a newer yt binary.
package update

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/google/go-github/v67/github"
	"golang.org/x/mod/semver"
	"golang.org/x/oauth2"
)

const (
	defaultOwner = "valksor"
	defaultRepo  = "go-youtrack"
)

// Checker looks up released versions on GitHub.
type Checker struct {
	ghClient *github.Client
	owner    string
	repo     string
}

// NewChecker returns a checker for the given repository. An empty token
// makes unauthenticated requests, which are subject to rate limits.
func NewChecker(token, owner, repo string) *Checker {
	var gh *github.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		gh = github.NewClient(oauth2.NewClient(context.Background(), ts))
	} else {
		gh = github.NewClient(nil)
	}

	if owner == "" {
		owner = defaultOwner
	}
	if repo == "" {
		repo = defaultRepo
	}

	return &Checker{ghClient: gh, owner: owner, repo: repo}
}

// Check compares the current version against the latest release. It returns
// ErrNoUpdateAvailable when the current version is up to date and ErrDevBuild
// when the binary was built without a release version.
func (c *Checker) Check(ctx context.Context, opts CheckOptions) (*Status, error) {
	if opts.CurrentVersion == "dev" || opts.CurrentVersion == "none" || opts.CurrentVersion == "" {
		return nil, ErrDevBuild
	}

	releases, _, err := c.ghClient.Repositories.ListReleases(ctx, c.owner, c.repo, &github.ListOptions{
		PerPage: 10,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch releases: %w", err)
	}

	var latest *github.RepositoryRelease
	for _, r := range releases {
		if r.GetDraft() {
			continue
		}
		if !opts.IncludePreRelease && r.GetPrerelease() {
			continue
		}
		latest = r
		break // releases arrive newest first
	}
	if latest == nil {
		return nil, fmt.Errorf("no suitable release found")
	}

	current := canonical(opts.CurrentVersion)
	latestVersion := canonical(latest.GetTagName())

	if semver.Compare(latestVersion, current) <= 0 {
		return &Status{
			CurrentVersion: opts.CurrentVersion,
			LatestVersion:  latest.GetTagName(),
			IsNewer:        false,
			IsPreRelease:   latest.GetPrerelease(),
		}, ErrNoUpdateAvailable
	}

	status := &Status{
		CurrentVersion: opts.CurrentVersion,
		LatestVersion:  latest.GetTagName(),
		IsNewer:        true,
		IsPreRelease:   latest.GetPrerelease(),
		ReleaseURL:     latest.GetHTMLURL(),
		ReleaseNotes:   latest.GetBody(),
	}

	wantAsset := fmt.Sprintf("yt-%s-%s", runtime.GOOS, runtime.GOARCH)
	for _, asset := range latest.Assets {
		if asset.GetName() == wantAsset {
			status.AssetName = wantAsset
			status.AssetURL = asset.GetBrowserDownloadURL()
			status.AssetSize = int64(asset.GetSize())
		}
	}

	return status, nil
}

// canonical normalizes a tag for semver comparison.
func canonical(v string) string {
	return "v" + strings.TrimPrefix(v, "v")
}
