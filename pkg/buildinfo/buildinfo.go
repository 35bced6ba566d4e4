// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X src.cons.sh/pkg/buildinfo.Var=value" to "go build" or
// "go install".
package buildinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"src.cons.sh/pkg/prog"
)

// VersionBase identifies the version of conslist. On development commits, it
// identifies the next release.
const VersionBase = "0.1.0"

// VCSOverride may be set during compilation to "time-commit" (e.g.
// "20220401235958-123456789012") for use as the version suffix of a
// development build. It takes precedence over VCS information embedded by the
// Go toolchain.
var VCSOverride string

// Type contains all the build information fields.
type Type struct {
	Version   string `json:"version"`
	GoVersion string `json:"goversion"`
}

// Value contains all the build information.
var Value = Type{
	Version:   devVersion(VersionBase, VCSOverride, debug.ReadBuildInfo),
	GoVersion: runtime.Version(),
}

func devVersion(next, vcsOverride string, readBuildInfo func() (*debug.BuildInfo, bool)) string {
	if vcsOverride != "" {
		return next + "-dev.0." + vcsOverride
	}
	fallback := next + "-dev.unknown"
	bi, ok := readBuildInfo()
	if !ok {
		return fallback
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		return strings.TrimPrefix(v, "v")
	}
	var revision, timestamp string
	modified := false
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.time":
			timestamp = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if revision == "" {
		return fallback
	}
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return fallback
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	v := next + "-dev.0." + t.UTC().Format("20060102150405") + "-" + revision
	if modified {
		v += "-dirty"
	}
	return v
}

// Program is the buildinfo subprogram. It only runs when -version or
// -buildinfo is given.
type Program struct {
	version, buildinfo, json bool
}

// RegisterFlags implements prog.Program.
func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	*p = Program{}
	fs.BoolVar(&p.version, "version", false, "show version and quit")
	fs.BoolVar(&p.buildinfo, "buildinfo", false, "show build info and quit")
	fs.BoolVar(&p.json, "json", false, "show output of -version and -buildinfo in JSON")
}

// Run implements prog.Program.
func (p *Program) Run(fds [3]*os.File, _ []string) error {
	switch {
	case p.buildinfo:
		if p.json {
			fmt.Fprintln(fds[1], mustToJSON(Value))
		} else {
			fmt.Fprintln(fds[1], "Version:", Value.Version)
			fmt.Fprintln(fds[1], "Go version:", Value.GoVersion)
		}
	case p.version:
		if p.json {
			fmt.Fprintln(fds[1], mustToJSON(Value.Version))
		} else {
			fmt.Fprintln(fds[1], Value.Version)
		}
	default:
		return prog.ErrNotSuitable
	}
	return nil
}

func mustToJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
