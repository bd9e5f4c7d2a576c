package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"

	m "github.com/mouse-blink/dtm/internal/model"
)

// ErrInvalidGoVersion is returned when a version is not canonical Go semver.
var ErrInvalidGoVersion = errors.New("invalid go module version")

// GoComparator orders module versions the way the go command does.
func GoComparator(a, b m.Version) (int, error) {
	for _, v := range []m.Version{a, b} {
		if !semver.IsValid(string(v)) {
			return 0, errors.Wrapf(ErrInvalidGoVersion, "%q", v)
		}
	}

	return semver.Compare(string(a), string(b)), nil
}

// GoOracle switches module versions with go get.
type GoOracle struct {
	baseOracle

	registry RegistryClient
	proxyURL string
	fs       ProjectFSAdapter
	backup   *fileBackup
}

var (
	_ ConflictDiagnoser = (*GoOracle)(nil)
	_ Restorer          = (*GoOracle)(nil)
)

// NewGoOracle constructs a GoOracle. proxyURL is a GOPROXY base URL.
func NewGoOracle(pkg string, env *Environment, runner CommandRunner, registry RegistryClient,
	fs ProjectFSAdapter, proxyURL string, log logrus.FieldLogger) *GoOracle {
	return &GoOracle{
		baseOracle: newBaseOracle(m.Go, pkg, env, runner, log),
		registry:   registry,
		proxyURL:   strings.TrimRight(proxyURL, "/"),
		fs:         fs,
		backup:     newFileBackup(fs),
	}
}

// Comparator orders versions with golang.org/x/mod/semver.
func (o *GoOracle) Comparator() m.Comparator { return GoComparator }

// EnumerateVersions reads the proxy's @v/list for the module.
func (o *GoOracle) EnumerateVersions(ctx context.Context) (m.VersionList, error) {
	escaped, err := module.EscapePath(o.pkg)
	if err != nil {
		return nil, o.registryError(err)
	}

	body, err := o.registry.GetText(ctx, fmt.Sprintf("%s/%s/@v/list", o.proxyURL, escaped))
	if err != nil {
		if errors.Is(err, ErrPackageNotFound) {
			return m.VersionList{}, nil
		}

		return nil, o.registryError(err)
	}

	list, skipped := m.NewVersionList(strings.Fields(body), o.Comparator())
	if len(skipped) > 0 {
		o.log.WithField("skipped", skipped).Debug("ignoring versions that cannot be ordered")
	}

	return list, nil
}

// InstallVersion requires exactly v in go.mod.
func (o *GoOracle) InstallVersion(ctx context.Context, v m.Version) error {
	if err := o.snapshot(); err != nil {
		return &m.InstallError{Package: o.pkg, Version: v, Err: err}
	}

	return o.install(ctx, v, o.getSpec(v))
}

// RunTests runs command in the module directory.
func (o *GoOracle) RunTests(ctx context.Context, command string) (m.TestRun, error) {
	return o.runTests(ctx, command, nil)
}

// DiagnoseConflicts re-runs go get and parses its requirement errors.
func (o *GoOracle) DiagnoseConflicts(ctx context.Context, v m.Version) (m.ConflictReport, bool) {
	return o.diagnose(ctx, v, o.getSpec(v))
}

// Restore puts go.mod and go.sum back the way they were found.
func (o *GoOracle) Restore(_ context.Context) error {
	return o.backup.Restore()
}

func (o *GoOracle) snapshot() error {
	return o.backup.Snapshot(o.fs.JoinPath(o.dir(), goModFile), o.fs.JoinPath(o.dir(), "go.sum"))
}

func (o *GoOracle) getSpec(v m.Version) CommandSpec {
	return CommandSpec{
		Dir:  o.dir(),
		Env:  []string{"GOFLAGS=-mod=mod"},
		Name: "go",
		Args: []string{"get", o.pkg + "@" + string(v)},
	}
}
