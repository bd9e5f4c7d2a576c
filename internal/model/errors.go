package model

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNoVersions indicates a registry returned no installable versions.
	ErrNoVersions = errors.New("no versions found")
	// ErrUnknownEcosystem indicates an ecosystem name nothing can handle.
	ErrUnknownEcosystem = errors.New("unknown ecosystem")
	// ErrProbeTimeout indicates an install or test command ran past its deadline.
	ErrProbeTimeout = errors.New("probe timed out")
	// ErrUnsorted indicates a version list that is not strictly ascending.
	ErrUnsorted = errors.New("version list is not strictly ascending")
)

// RegistryError reports that versions of a package could not be enumerated.
type RegistryError struct {
	Package   string
	Ecosystem Ecosystem
	Err       error
}

func (e *RegistryError) Error() string {
	return fmt.Sprintf("enumerate %s versions of %s: %v", e.Ecosystem, e.Package, e.Err)
}

func (e *RegistryError) Unwrap() error { return e.Err }

// Cause supports errors.Cause.
func (e *RegistryError) Cause() error { return e.Err }

// InstallError reports that a specific version could not be made active.
type InstallError struct {
	Package string
	Version Version
	Output  string
	Err     error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("install %s@%s: %v", e.Package, e.Version, e.Err)
}

func (e *InstallError) Unwrap() error { return e.Err }

// Cause supports errors.Cause.
func (e *InstallError) Cause() error { return e.Err }

// TestExecutionError reports that the test command could not be launched at
// all, as opposed to running and failing.
type TestExecutionError struct {
	Command string
	Err     error
}

func (e *TestExecutionError) Error() string {
	return fmt.Sprintf("launch test command %q: %v", e.Command, e.Err)
}

func (e *TestExecutionError) Unwrap() error { return e.Err }

// Cause supports errors.Cause.
func (e *TestExecutionError) Cause() error { return e.Err }

// DiagnosisError reports that install diagnostics held no recognizable
// conflict structure. It is never surfaced to users.
type DiagnosisError struct {
	Reason string
}

func (e *DiagnosisError) Error() string {
	return "conflict diagnosis: " + e.Reason
}
