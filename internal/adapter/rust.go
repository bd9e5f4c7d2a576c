package adapter

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	m "github.com/mouse-blink/dtm/internal/model"
)

const (
	cargoManifest = "Cargo.toml"
	cargoLock     = "Cargo.lock"
)

var (
	tomlHeaderPattern     = regexp.MustCompile(`^\s*\[\[?\s*([^\]]+?)\s*\]\]?\s*(#.*)?$`)
	tomlVersionPattern    = regexp.MustCompile(`(\bversion\s*=\s*)"[^"]*"`)
	cargoWorkspacePattern = regexp.MustCompile(`\bworkspace\s*=\s*true\b`)
)

// RustOracle pins crates in Cargo.toml and lets cargo re-resolve.
type RustOracle struct {
	baseOracle

	registry  RegistryClient
	cratesURL string
	fs        ProjectFSAdapter
	backup    *fileBackup
}

var (
	_ ConflictDiagnoser = (*RustOracle)(nil)
	_ Restorer          = (*RustOracle)(nil)
)

// NewRustOracle constructs a RustOracle. cratesURL is the crates.io API root.
func NewRustOracle(pkg string, env *Environment, runner CommandRunner, registry RegistryClient,
	fs ProjectFSAdapter, cratesURL string, log logrus.FieldLogger) *RustOracle {
	return &RustOracle{
		baseOracle: newBaseOracle(m.Rust, pkg, env, runner, log),
		registry:   registry,
		cratesURL:  strings.TrimRight(cratesURL, "/"),
		fs:         fs,
		backup:     newFileBackup(fs),
	}
}

type crateVersion struct {
	Num    string `json:"num"`
	Yanked bool   `json:"yanked"`
}

type crateVersions struct {
	Versions []crateVersion `json:"versions"`
}

// EnumerateVersions lists non-yanked versions from crates.io.
func (o *RustOracle) EnumerateVersions(ctx context.Context) (m.VersionList, error) {
	var body crateVersions

	endpoint := fmt.Sprintf("%s/api/v1/crates/%s/versions", o.cratesURL, url.PathEscape(o.pkg))
	if err := o.registry.GetJSON(ctx, endpoint, &body); err != nil {
		if errors.Is(err, ErrPackageNotFound) {
			return m.VersionList{}, nil
		}

		return nil, o.registryError(err)
	}

	raw := make([]string, 0, len(body.Versions))

	for _, v := range body.Versions {
		if !v.Yanked {
			raw = append(raw, v.Num)
		}
	}

	list, skipped := m.NewVersionList(raw, o.Comparator())
	if len(skipped) > 0 {
		o.log.WithField("skipped", skipped).Debug("ignoring versions that cannot be ordered")
	}

	return list, nil
}

// InstallVersion pins the crate to exactly v and re-resolves the lockfile.
func (o *RustOracle) InstallVersion(ctx context.Context, v m.Version) error {
	if err := o.pin(v); err != nil {
		return &m.InstallError{Package: o.pkg, Version: v, Err: err}
	}

	return o.install(ctx, v, o.updateSpec())
}

// RunTests runs command in the crate directory.
func (o *RustOracle) RunTests(ctx context.Context, command string) (m.TestRun, error) {
	return o.runTests(ctx, command, nil)
}

// DiagnoseConflicts re-pins v and parses the cargo resolver error.
func (o *RustOracle) DiagnoseConflicts(ctx context.Context, v m.Version) (m.ConflictReport, bool) {
	if err := o.pin(v); err != nil {
		o.log.WithError(err).Debug("re-pin for diagnosis failed")

		return nil, false
	}

	return o.diagnose(ctx, v, o.updateSpec())
}

// Restore puts Cargo.toml and Cargo.lock back the way they were found.
func (o *RustOracle) Restore(_ context.Context) error {
	return o.backup.Restore()
}

func (o *RustOracle) updateSpec() CommandSpec {
	return CommandSpec{Dir: o.dir(), Name: "cargo", Args: []string{"update", "-p", o.pkg}}
}

func (o *RustOracle) manifestPath() string {
	return o.fs.JoinPath(o.dir(), cargoManifest)
}

func (o *RustOracle) pin(v m.Version) error {
	manifest := o.manifestPath()
	if err := o.backup.Snapshot(manifest, o.fs.JoinPath(o.dir(), cargoLock)); err != nil {
		return err
	}

	content, err := o.fs.ReadFile(manifest)
	if err != nil {
		return errors.Wrap(err, "read Cargo.toml")
	}

	declared, err := cargoDeclares(content, o.pkg)
	if err != nil {
		return err
	}

	updated, err := pinCargoDependency(string(content), o.pkg, string(v), declared)
	if err != nil {
		return err
	}

	return o.fs.WriteFile(manifest, []byte(updated), 0o644)
}

// cargoDeclares reports whether name is declared in any dependency table of
// content.
func cargoDeclares(content []byte, name string) (bool, error) {
	doc, err := parseCargoManifest(content)
	if err != nil {
		return false, err
	}

	for _, table := range doc.tables() {
		if _, ok := table[name]; ok {
			return true, nil
		}
	}

	return false, nil
}

// cargoDependencyTable reports whether a table header names a dependency
// table.
func cargoDependencyTable(header string) bool {
	for _, table := range cargoDependencyTables {
		if header == table || strings.HasPrefix(header, "target.") && strings.HasSuffix(header, "."+table) {
			return true
		}
	}

	return false
}

// cargoCrateTable reports whether a table header is the dedicated table of
// crate name, as in [dev-dependencies.name].
func cargoCrateTable(header, name string) bool {
	for _, key := range []string{name, `"` + name + `"`, "'" + name + "'"} {
		if prefix, ok := strings.CutSuffix(header, "."+key); ok && cargoDependencyTable(prefix) {
			return true
		}
	}

	return false
}

type cargoInsertion struct {
	after int
	line  string
}

// pinCargoDependency rewrites every declaration of name to require exactly
// version. Plain, inline, dotted and dedicated-table declarations are
// recognised in [dependencies], [dev-dependencies], [build-dependencies]
// and their [target.<cfg>] variants. An undeclared crate is added to
// [dependencies].
func pinCargoDependency(content, name, version string, declared bool) (string, error) {
	requirement := fmt.Sprintf(`"=%s"`, version)
	if !declared {
		return addCargoDependency(content, name, requirement), nil
	}

	key := `"?` + regexp.QuoteMeta(name) + `"?`
	keyPattern := regexp.MustCompile(`^(\s*` + key + `\s*=\s*)(.*)$`)
	dottedPattern := regexp.MustCompile(`^(\s*` + key + `\s*\.\s*)([A-Za-z0-9_-]+)(\s*=\s*)(.*)$`)

	lines := strings.Split(content, "\n")
	pinned := 0
	crateHeader, lastDotted := -1, -1

	var (
		inserts                    []cargoInsertion
		inTable, inCrate           bool
		crateVersion, dottedPinned bool
	)

	// flush queues the version key for a dotted or dedicated declaration
	// that has none.
	flush := func() {
		if lastDotted >= 0 && !dottedPinned {
			inserts = append(inserts, cargoInsertion{after: lastDotted, line: name + ".version = " + requirement})
		}

		if crateHeader >= 0 && !crateVersion {
			inserts = append(inserts, cargoInsertion{after: crateHeader, line: "version = " + requirement})
		}

		crateHeader, lastDotted = -1, -1
		crateVersion, dottedPinned = false, false
	}

	for i, line := range lines {
		if header := tomlHeaderPattern.FindStringSubmatch(line); header != nil {
			flush()

			section := strings.TrimSpace(header[1])
			inTable = cargoDependencyTable(section)
			inCrate = cargoCrateTable(section, name)

			if inCrate {
				crateHeader = i
			}

			continue
		}

		switch {
		case inCrate:
			if tomlVersionPattern.MatchString(line) {
				lines[i] = tomlVersionPattern.ReplaceAllString(line, "${1}"+requirement)
				crateVersion = true
				pinned++
			}
		case inTable:
			if match := keyPattern.FindStringSubmatch(line); match != nil {
				value, ok := pinCargoValue(strings.TrimSpace(match[2]), requirement)
				if ok {
					lines[i] = match[1] + value
					pinned++
				}

				continue
			}

			if match := dottedPattern.FindStringSubmatch(line); match != nil {
				lastDotted = i

				if match[2] == "version" {
					lines[i] = match[1] + match[2] + match[3] + requirement
					dottedPinned = true
					pinned++
				}
			}
		}
	}

	flush()

	if pinned == 0 && len(inserts) == 0 {
		return "", errors.Errorf("cannot pin %s: no declaration with a version requirement", name)
	}

	sort.Slice(inserts, func(a, b int) bool { return inserts[a].after > inserts[b].after })

	for _, ins := range inserts {
		lines = append(lines[:ins.after+1], append([]string{ins.line}, lines[ins.after+1:]...)...)
	}

	updated := strings.Join(lines, "\n")
	if _, err := parseCargoManifest([]byte(updated)); err != nil {
		return "", errors.Wrapf(err, "pinning %s", name)
	}

	return updated, nil
}

// pinCargoValue rewrites the value of a `name = ...` declaration. Workspace
// inherited declarations cannot be pinned from a member manifest.
func pinCargoValue(value, requirement string) (string, bool) {
	if !strings.HasPrefix(value, "{") {
		return requirement, true
	}

	if tomlVersionPattern.MatchString(value) {
		return tomlVersionPattern.ReplaceAllString(value, "${1}"+requirement), true
	}

	if cargoWorkspacePattern.MatchString(value) {
		return value, false
	}

	inner := strings.TrimSpace(strings.TrimPrefix(value, "{"))
	if strings.HasPrefix(inner, "}") {
		return "{ version = " + requirement + " " + inner, true
	}

	return "{ version = " + requirement + ", " + inner, true
}

func addCargoDependency(content, name, requirement string) string {
	lines := strings.Split(content, "\n")
	entry := fmt.Sprintf("%s = %s", name, requirement)

	for i, line := range lines {
		if header := tomlHeaderPattern.FindStringSubmatch(line); header != nil && strings.TrimSpace(header[1]) == "dependencies" {
			lines = append(lines[:i+1], append([]string{entry}, lines[i+1:]...)...)

			return strings.Join(lines, "\n")
		}
	}

	return strings.TrimRight(content, "\n") + "\n\n[dependencies]\n" + entry + "\n"
}
