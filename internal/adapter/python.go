package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	m "github.com/mouse-blink/dtm/internal/model"
)

// PythonOracle installs PyPI packages with pip.
type PythonOracle struct {
	baseOracle

	registry RegistryClient
	indexURL string
	python   string
}

var _ ConflictDiagnoser = (*PythonOracle)(nil)

// NewPythonOracle constructs a PythonOracle. indexURL is the PyPI JSON API root.
func NewPythonOracle(pkg string, env *Environment, runner CommandRunner, registry RegistryClient,
	indexURL, python string, log logrus.FieldLogger) *PythonOracle {
	return &PythonOracle{
		baseOracle: newBaseOracle(m.Python, pkg, env, runner, log),
		registry:   registry,
		indexURL:   strings.TrimRight(indexURL, "/"),
		python:     python,
	}
}

type pypiFile struct {
	Yanked bool `json:"yanked"`
}

type pypiProject struct {
	Releases map[string][]pypiFile `json:"releases"`
}

// EnumerateVersions lists releases that still have installable files.
func (o *PythonOracle) EnumerateVersions(ctx context.Context) (m.VersionList, error) {
	var project pypiProject

	endpoint := fmt.Sprintf("%s/%s/json", o.indexURL, url.PathEscape(o.pkg))
	if err := o.registry.GetJSON(ctx, endpoint, &project); err != nil {
		if errors.Is(err, ErrPackageNotFound) {
			return m.VersionList{}, nil
		}

		return nil, o.registryError(err)
	}

	raw := make([]string, 0, len(project.Releases))

	for version, files := range project.Releases {
		if installable(files) {
			raw = append(raw, version)
		}
	}

	list, skipped := m.NewVersionList(raw, o.Comparator())
	if len(skipped) > 0 {
		o.log.WithField("skipped", skipped).Debug("ignoring versions that cannot be ordered")
	}

	return list, nil
}

func installable(files []pypiFile) bool {
	for _, f := range files {
		if !f.Yanked {
			return true
		}
	}

	return false
}

// InstallVersion replaces the installed release with v.
func (o *PythonOracle) InstallVersion(ctx context.Context, v m.Version) error {
	if o.env == nil || !o.env.Isolated {
		o.uninstall(ctx)
	}

	return o.install(ctx, v, o.installSpec(v))
}

// RunTests runs command with the isolated site directory on PYTHONPATH.
func (o *PythonOracle) RunTests(ctx context.Context, command string) (m.TestRun, error) {
	return o.runTests(ctx, command, o.testEnv())
}

// DiagnoseConflicts re-runs pip and parses its resolver output.
func (o *PythonOracle) DiagnoseConflicts(ctx context.Context, v m.Version) (m.ConflictReport, bool) {
	return o.diagnose(ctx, v, o.installSpec(v))
}

func (o *PythonOracle) installSpec(v m.Version) CommandSpec {
	args := []string{"-m", "pip", "install", "--disable-pip-version-check", "--no-input"}
	if o.env != nil && o.env.Isolated {
		args = append(args, "--upgrade", "--target", o.env.SiteDir())
	}

	args = append(args, fmt.Sprintf("%s==%s", o.pkg, v))

	return CommandSpec{Dir: o.dir(), Name: o.python, Args: args}
}

// uninstall removes the currently installed release; failures are ignored.
func (o *PythonOracle) uninstall(ctx context.Context) {
	spec := CommandSpec{
		Dir:  o.dir(),
		Name: o.python,
		Args: []string{"-m", "pip", "uninstall", "-y", "--disable-pip-version-check", o.pkg},
	}

	if _, err := o.runner.Run(ctx, spec); err != nil {
		o.log.WithError(err).Debug("uninstall before install failed")
	}
}

func (o *PythonOracle) testEnv() []string {
	if o.env == nil || !o.env.Isolated {
		return nil
	}

	return []string{"PYTHONPATH=" + o.env.SiteDir()}
}
