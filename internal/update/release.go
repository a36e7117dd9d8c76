package update

// Status is the result of an update check.
type Status struct {
	CurrentVersion string
	LatestVersion  string
	AssetName      string // binary asset for this platform, when published
	AssetURL       string
	AssetSize      int64
	IsNewer        bool
	IsPreRelease   bool
	ReleaseURL     string
	ReleaseNotes   string
}

// CheckOptions configures an update check.
type CheckOptions struct {
	CurrentVersion    string // release tag or "dev"
	IncludePreRelease bool
}
