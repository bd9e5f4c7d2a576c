package model

import "sort"

// ConflictReport maps a clashing dependency to human readable descriptions
// such as "requests 2.0.0 requires urllib3<1.27, but 2.0.1 was resolved".
// A nil report means no structured diagnosis is available.
type ConflictReport map[string][]string

// Add records a clash for dep, ignoring exact duplicates.
func (r ConflictReport) Add(dep, description string) {
	for _, existing := range r[dep] {
		if existing == description {
			return
		}
	}

	r[dep] = append(r[dep], description)
}

// Empty reports whether the report holds no clashes.
func (r ConflictReport) Empty() bool {
	return len(r) == 0
}

// Dependencies returns the conflicting dependency names sorted alphabetically.
func (r ConflictReport) Dependencies() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
