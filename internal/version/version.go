// Package version reports which linkpage build is running. The values are
// shown by `linkpage version`, sent as the User-Agent on document and
// profile requests, and written into the page's generator meta tag.
package version

import (
	"runtime"
	"runtime/debug"
	"sync"
)

// Set with -ldflags "-X github.com/reglet-dev/linkpage/internal/version.Version=...".
var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)

// Info describes the running build.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	Platform  string
	Modified  bool
}

var (
	vcsOnce sync.Once
	vcs     Info
)

// Get returns the build info. Commit and date fall back to the VCS stamp
// the Go toolchain embeds when they were not set by ldflags.
func Get() Info {
	vcsOnce.Do(func() { vcs = readBuildInfo() })

	info := Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Modified:  vcs.Modified,
	}
	if info.Commit == "" {
		info.Commit = vcs.Commit
	}
	if info.BuildDate == "" {
		info.BuildDate = vcs.BuildDate
	}
	if info.Version == "dev" && vcs.Version != "" {
		info.Version = vcs.Version
	}
	return info
}

func readBuildInfo() Info {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return Info{}
	}

	var out Info
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		out.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.BuildDate = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}
	return out
}

// String returns the version alone.
func (i Info) String() string {
	return i.Version
}

// Full is the line printed by `linkpage version`.
func (i Info) Full() string {
	commit := i.Commit
	if commit == "" {
		commit = "unknown"
	} else if len(commit) > 12 {
		commit = commit[:12]
	}
	if i.Modified {
		commit += "-dirty"
	}

	out := i.Version + " (" + commit + ")"
	if i.BuildDate != "" {
		out += " built " + i.BuildDate
	}
	return out + " " + i.GoVersion + " " + i.Platform
}

// UserAgent identifies linkpage to the document host and the GitHub API.
func (i Info) UserAgent() string {
	return "linkpage/" + i.Version + " (" + i.Platform + ")"
}
