// Package model defines the data structures shared by the bisection engine,
// the ecosystem adapters and the reporting layer.
package model

import (
	"strings"

	"github.com/pkg/errors"
)

// Ecosystem identifies a package registry and its tooling.
type Ecosystem string

const (
	// Python packages come from PyPI and are installed with pip.
	Python Ecosystem = "python"
	// JavaScript packages come from the npm registry.
	JavaScript Ecosystem = "js"
	// Rust crates come from crates.io and are resolved by cargo.
	Rust Ecosystem = "rust"
	// Go modules come from the module proxy.
	Go Ecosystem = "go"
)

var ecosystemAliases = map[string]Ecosystem{
	"python":     Python,
	"py":         Python,
	"pip":        Python,
	"js":         JavaScript,
	"javascript": JavaScript,
	"node":       JavaScript,
	"npm":        JavaScript,
	"rust":       Rust,
	"cargo":      Rust,
	"go":         Go,
	"golang":     Go,
}

// Ecosystems lists every supported ecosystem in a stable order.
func Ecosystems() []Ecosystem {
	return []Ecosystem{Python, JavaScript, Rust, Go}
}

// ParseEcosystem normalizes a user-supplied ecosystem name.
func ParseEcosystem(name string) (Ecosystem, error) {
	if eco, ok := ecosystemAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return eco, nil
	}

	return "", errors.Wrapf(ErrUnknownEcosystem, "%q", name)
}

func (e Ecosystem) String() string {
	return string(e)
}
