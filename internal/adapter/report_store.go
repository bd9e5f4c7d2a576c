package adapter

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Serialization formats understood by EncodeDocument and the report store.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnsupportedFormat is returned for formats other than json and yaml.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// ReportStore persists and retrieves result documents.
type ReportStore interface {
	SaveReport(path string, doc any) error
	LoadReport(path string, out any) error
}

// LocalReportStore writes documents to the local filesystem, choosing JSON
// or YAML by file extension.
type LocalReportStore struct {
	fs ProjectFSAdapter
}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore(fs ProjectFSAdapter) *LocalReportStore {
	return &LocalReportStore{fs: fs}
}

// FormatForPath returns yaml for .yaml and .yml files and json otherwise.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// EncodeDocument renders doc as indented JSON or YAML with a trailing newline.
func EncodeDocument(format string, doc any) ([]byte, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "encode json")
		}

		return append(out, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer

		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)

		if err := enc.Encode(doc); err != nil {
			return nil, errors.Wrap(err, "encode yaml")
		}

		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, "encode yaml")
		}

		return buf.Bytes(), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
}

// SaveReport writes doc to path.
func (rs *LocalReportStore) SaveReport(path string, doc any) error {
	content, err := EncodeDocument(FormatForPath(path), doc)
	if err != nil {
		return err
	}

	if err := rs.fs.WriteFile(path, content, 0o644); err != nil {
		return errors.Wrapf(err, "write report %s", path)
	}

	return nil
}

// LoadReport decodes the document at path into out.
func (rs *LocalReportStore) LoadReport(path string, out any) error {
	content, err := rs.fs.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read report %s", path)
	}

	if FormatForPath(path) == FormatYAML {
		err = yaml.Unmarshal(content, out)
	} else {
		err = json.Unmarshal(content, out)
	}

	return errors.Wrapf(err, "decode report %s", path)
}
