package adapter

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"golang.org/x/mod/modfile"

	m "github.com/mouse-blink/dtm/internal/model"
)

const (
	requirementsFile = "requirements.txt"
	pyprojectFile    = "pyproject.toml"
	setupFile        = "setup.py"
	packageJSONFile  = "package.json"
	goModFile        = "go.mod"
)

// requirementNamePattern captures the distribution name at the start of a
// PEP 508 requirement.
var requirementNamePattern = regexp.MustCompile(`^\s*([A-Za-z0-9][A-Za-z0-9._-]*)`)

// DetectEcosystem guesses the project ecosystem from marker files in dir,
// defaulting to python.
func DetectEcosystem(fs ProjectFSAdapter, dir string) m.Ecosystem {
	markers := []struct {
		files []string
		eco   m.Ecosystem
	}{
		{[]string{packageJSONFile}, m.JavaScript},
		{[]string{cargoManifest}, m.Rust},
		{[]string{goModFile}, m.Go},
		{[]string{requirementsFile, setupFile, pyprojectFile}, m.Python},
	}

	for _, marker := range markers {
		for _, name := range marker.files {
			if fs.Exists(fs.JoinPath(dir, name)) {
				return marker.eco
			}
		}
	}

	return m.Python
}

// DiscoverDependencies lists the direct dependencies the project in dir
// declares for eco, sorted and de-duplicated. Missing manifests yield an
// empty list.
func DiscoverDependencies(fs ProjectFSAdapter, dir string, eco m.Ecosystem) ([]string, error) {
	var (
		names []string
		err   error
	)

	switch eco {
	case m.Python:
		names, err = pythonDependencies(fs, dir)
	case m.JavaScript:
		names, err = jsDependencies(fs, dir)
	case m.Rust:
		names, err = rustDependencies(fs, dir)
	case m.Go:
		names, err = goDependencies(fs, dir)
	default:
		return nil, errors.Wrapf(m.ErrUnknownEcosystem, "%q", eco)
	}

	if err != nil {
		return nil, err
	}

	return uniqueSorted(names), nil
}

func readOptional(fs ProjectFSAdapter, path string) ([]byte, bool, error) {
	if !fs.Exists(path) {
		return nil, false, nil
	}

	content, err := fs.ReadFile(path)
	if err != nil {
		return nil, false, errors.Wrapf(err, "read %s", path)
	}

	return content, true, nil
}

func pythonDependencies(fs ProjectFSAdapter, dir string) ([]string, error) {
	var names []string

	content, ok, err := readOptional(fs, fs.JoinPath(dir, requirementsFile))
	if err != nil {
		return nil, err
	}

	if ok {
		names = append(names, parseRequirements(string(content))...)
	}

	content, ok, err = readOptional(fs, fs.JoinPath(dir, pyprojectFile))
	if err != nil {
		return nil, err
	}

	if ok {
		fromProject, err := parsePyproject(content)
		if err != nil {
			return nil, err
		}

		names = append(names, fromProject...)
	}

	return names, nil
}

// parseRequirements extracts package names from requirements.txt content,
// ignoring comments, options and direct references.
func parseRequirements(content string) []string {
	var names []string

	for _, line := range strings.Split(content, "\n") {
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}

		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "-") || strings.Contains(line, "://") {
			continue
		}

		if match := requirementNamePattern.FindStringSubmatch(line); match != nil {
			names = append(names, match[1])
		}
	}

	return names
}

type pyprojectDoc struct {
	Project struct {
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Dependencies map[string]any `toml:"dependencies"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

func parsePyproject(content []byte) ([]string, error) {
	var doc pyprojectDoc
	if err := toml.Unmarshal(content, &doc); err != nil {
		return nil, errors.Wrap(err, "parse pyproject.toml")
	}

	var names []string

	for _, req := range doc.Project.Dependencies {
		if match := requirementNamePattern.FindStringSubmatch(req); match != nil {
			names = append(names, match[1])
		}
	}

	for name := range doc.Tool.Poetry.Dependencies {
		if !strings.EqualFold(name, "python") {
			names = append(names, name)
		}
	}

	return names, nil
}

type packageJSONDoc struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

func jsDependencies(fs ProjectFSAdapter, dir string) ([]string, error) {
	content, ok, err := readOptional(fs, fs.JoinPath(dir, packageJSONFile))
	if err != nil || !ok {
		return nil, err
	}

	var doc packageJSONDoc
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, errors.Wrap(err, "parse package.json")
	}

	names := make([]string, 0, len(doc.Dependencies)+len(doc.DevDependencies))
	for name := range doc.Dependencies {
		names = append(names, name)
	}

	for name := range doc.DevDependencies {
		names = append(names, name)
	}

	return names, nil
}

// cargoDependencyTables are the tables that can declare a crate, both at the
// top level and under [target.<cfg>].
var cargoDependencyTables = []string{"dependencies", "dev-dependencies", "build-dependencies"}

type cargoTablesDoc struct {
	Dependencies      map[string]any `toml:"dependencies"`
	DevDependencies   map[string]any `toml:"dev-dependencies"`
	BuildDependencies map[string]any `toml:"build-dependencies"`
}

type cargoManifestDoc struct {
	Dependencies      map[string]any            `toml:"dependencies"`
	DevDependencies   map[string]any            `toml:"dev-dependencies"`
	BuildDependencies map[string]any            `toml:"build-dependencies"`
	Target            map[string]cargoTablesDoc `toml:"target"`
}

func parseCargoManifest(content []byte) (cargoManifestDoc, error) {
	var doc cargoManifestDoc
	if err := toml.Unmarshal(content, &doc); err != nil {
		return doc, errors.Wrap(err, "parse Cargo.toml")
	}

	return doc, nil
}

// tables returns every dependency table in the manifest, including
// platform-specific ones.
func (d cargoManifestDoc) tables() []map[string]any {
	out := []map[string]any{d.Dependencies, d.DevDependencies, d.BuildDependencies}
	for _, target := range d.Target {
		out = append(out, target.Dependencies, target.DevDependencies, target.BuildDependencies)
	}

	return out
}

func rustDependencies(fs ProjectFSAdapter, dir string) ([]string, error) {
	content, ok, err := readOptional(fs, fs.JoinPath(dir, cargoManifest))
	if err != nil || !ok {
		return nil, err
	}

	doc, err := parseCargoManifest(content)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, table := range doc.tables() {
		for name := range table {
			names = append(names, name)
		}
	}

	return names, nil
}

func goDependencies(fs ProjectFSAdapter, dir string) ([]string, error) {
	path := fs.JoinPath(dir, goModFile)

	content, ok, err := readOptional(fs, path)
	if err != nil || !ok {
		return nil, err
	}

	file, err := modfile.ParseLax(path, content, nil)
	if err != nil {
		return nil, errors.Wrap(err, "parse go.mod")
	}

	var names []string

	for _, req := range file.Require {
		if !req.Indirect {
			names = append(names, req.Mod.Path)
		}
	}

	return names, nil
}

func uniqueSorted(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))

	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}
		out = append(out, name)
	}

	sort.Strings(out)

	return out
}
