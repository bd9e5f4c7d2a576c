package adapter

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
)

// siteDirName holds python packages installed into an isolated environment.
const siteDirName = ".dtm-site"

// Environment is an evaluation environment that installs mutate: a project
// directory plus whatever the package manager keeps next to it. At most one
// probe may hold an environment at a time.
type Environment struct {
	ID       string
	Dir      string
	Isolated bool

	sem *semaphore.Weighted
}

// NewEnvironment returns an unlocked environment rooted at dir.
func NewEnvironment(id, dir string, isolated bool) *Environment {
	return &Environment{
		ID:       id,
		Dir:      dir,
		Isolated: isolated,
		sem:      semaphore.NewWeighted(1),
	}
}

// Acquire blocks until the environment is free or ctx is done.
func (e *Environment) Acquire(ctx context.Context) error {
	return e.sem.Acquire(ctx, 1)
}

// Release frees the environment for the next probe.
func (e *Environment) Release() {
	e.sem.Release(1)
}

// SiteDir is where python packages go in an isolated environment.
func (e *Environment) SiteDir() string {
	return filepath.Join(e.Dir, siteDirName)
}

// WorkspaceAdapter hands out environments for packages under analysis.
type WorkspaceAdapter interface {
	// Shared returns the single environment backed by the project itself.
	Shared() *Environment
	// Isolated copies the project into a fresh environment for pkg.
	Isolated(pkg string) (*Environment, error)
	// Dispose releases an isolated environment. Shared environments are kept.
	Dispose(env *Environment)
}

// LocalWorkspaceAdapter creates isolated environments as temporary copies of
// the project directory.
type LocalWorkspaceAdapter struct {
	fs     ProjectFSAdapter
	root   string
	shared *Environment
	log    logrus.FieldLogger
}

// NewLocalWorkspaceAdapter constructs a LocalWorkspaceAdapter for the project at root.
func NewLocalWorkspaceAdapter(fs ProjectFSAdapter, root string, log logrus.FieldLogger) *LocalWorkspaceAdapter {
	return &LocalWorkspaceAdapter{
		fs:     fs,
		root:   root,
		shared: NewEnvironment("project", root, false),
		log:    log,
	}
}

// Shared returns the project environment.
func (w *LocalWorkspaceAdapter) Shared() *Environment {
	return w.shared
}

// Isolated copies the project into a temp dir dedicated to pkg.
func (w *LocalWorkspaceAdapter) Isolated(pkg string) (*Environment, error) {
	tmpDir, err := w.fs.CreateTempDir("dtm-env-*")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create temp dir")
	}

	if err := w.fs.CopyDir(w.root, tmpDir); err != nil {
		w.removeDir(tmpDir)

		return nil, errors.Wrap(err, "failed to copy project")
	}

	return NewEnvironment("isolated-"+sanitizeID(pkg), tmpDir, true), nil
}

// Dispose removes an isolated environment, logging but not failing on errors.
func (w *LocalWorkspaceAdapter) Dispose(env *Environment) {
	if env == nil || !env.Isolated {
		return
	}

	w.removeDir(env.Dir)
}

func (w *LocalWorkspaceAdapter) removeDir(dir string) {
	if err := w.fs.RemoveAll(dir); err != nil {
		w.log.WithError(err).WithField("dir", dir).Debug("failed to remove environment")
	}
}

func sanitizeID(pkg string) string {
	return strings.NewReplacer("/", "_", "@", "", " ", "_").Replace(pkg)
}
