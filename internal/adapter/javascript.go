package adapter

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	m "github.com/mouse-blink/dtm/internal/model"
)

// JSOracle installs npm packages with the npm CLI.
type JSOracle struct {
	baseOracle

	npm string
}

var _ ConflictDiagnoser = (*JSOracle)(nil)

// NewJSOracle constructs a JSOracle using the given npm executable.
func NewJSOracle(pkg string, env *Environment, runner CommandRunner, npm string, log logrus.FieldLogger) *JSOracle {
	return &JSOracle{
		baseOracle: newBaseOracle(m.JavaScript, pkg, env, runner, log),
		npm:        npm,
	}
}

// EnumerateVersions asks npm for every published version.
func (o *JSOracle) EnumerateVersions(ctx context.Context) (m.VersionList, error) {
	spec := CommandSpec{Dir: o.dir(), Name: o.npm, Args: []string{"view", o.pkg, "versions", "--json"}}

	res, err := o.runner.Run(ctx, spec)
	if err != nil {
		if strings.Contains(res.Combined(), "E404") {
			return m.VersionList{}, nil
		}

		return nil, o.registryError(err)
	}

	raw, err := parseNpmVersions(res.Stdout)
	if err != nil {
		return nil, o.registryError(err)
	}

	list, skipped := m.NewVersionList(raw, o.Comparator())
	if len(skipped) > 0 {
		o.log.WithField("skipped", skipped).Debug("ignoring versions that cannot be ordered")
	}

	return list, nil
}

// parseNpmVersions accepts both shapes npm prints: an array, or a bare
// string when exactly one version exists.
func parseNpmVersions(out string) ([]string, error) {
	out = strings.TrimSpace(out)
	if out == "" {
		return nil, nil
	}

	var many []string
	if err := json.Unmarshal([]byte(out), &many); err == nil {
		return many, nil
	}

	var one string
	if err := json.Unmarshal([]byte(out), &one); err != nil {
		return nil, errors.Wrap(err, "decode npm versions")
	}

	return []string{one}, nil
}

// InstallVersion installs v without touching package.json.
func (o *JSOracle) InstallVersion(ctx context.Context, v m.Version) error {
	return o.install(ctx, v, o.installSpec(v))
}

// RunTests runs command in the project directory.
func (o *JSOracle) RunTests(ctx context.Context, command string) (m.TestRun, error) {
	return o.runTests(ctx, command, nil)
}

// DiagnoseConflicts re-runs npm install and parses ERESOLVE output.
func (o *JSOracle) DiagnoseConflicts(ctx context.Context, v m.Version) (m.ConflictReport, bool) {
	return o.diagnose(ctx, v, o.installSpec(v))
}

func (o *JSOracle) installSpec(v m.Version) CommandSpec {
	return CommandSpec{
		Dir:  o.dir(),
		Name: o.npm,
		Args: []string{"install", o.pkg + "@" + string(v), "--no-save", "--no-audit", "--no-fund"},
	}
}
