package model

import (
	"sort"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
)

// Version is a registry-assigned version token. Ordering is not intrinsic to
// the token; it comes from the Comparator used to build a VersionList.
type Version string

func (v Version) String() string {
	return string(v)
}

// Ptr returns a pointer to a copy of v.
func (v Version) Ptr() *Version {
	return &v
}

// Comparator orders two versions. It returns a negative number when a
// precedes b, zero when they denote the same release and a positive number
// otherwise. It returns an error when either token cannot be ordered.
type Comparator func(a, b Version) (int, error)

// SemverComparator orders versions as semantic versions. Partial versions
// such as "2.1" are accepted and padded with zeros.
func SemverComparator(a, b Version) (int, error) {
	av, err := semver.NewVersion(string(a))
	if err != nil {
		return 0, errors.Wrapf(err, "parse version %q", a)
	}

	bv, err := semver.NewVersion(string(b))
	if err != nil {
		return 0, errors.Wrapf(err, "parse version %q", b)
	}

	return av.Compare(bv), nil
}

// VersionList is an ascending, duplicate-free sequence of versions.
type VersionList []Version

// NewVersionList orders raw version tokens with cmp, dropping duplicates and
// tokens cmp cannot order. Dropped tokens are returned so callers can log them.
func NewVersionList(raw []string, cmp Comparator) (VersionList, []string) {
	var skipped []string

	valid := make([]Version, 0, len(raw))

	for _, r := range raw {
		v := Version(r)
		if _, err := cmp(v, v); err != nil {
			skipped = append(skipped, r)
			continue
		}

		valid = append(valid, v)
	}

	sort.SliceStable(valid, func(i, j int) bool {
		c, _ := cmp(valid[i], valid[j])
		return c < 0
	})

	list := make(VersionList, 0, len(valid))

	for _, v := range valid {
		if len(list) > 0 {
			if c, _ := cmp(list[len(list)-1], v); c == 0 {
				skipped = append(skipped, string(v))
				continue
			}
		}

		list = append(list, v)
	}

	return list, skipped
}

// Validate reports ErrUnsorted when the list is not strictly ascending under cmp.
func (l VersionList) Validate(cmp Comparator) error {
	for i := 1; i < len(l); i++ {
		c, err := cmp(l[i-1], l[i])
		if err != nil {
			return err
		}

		if c >= 0 {
			return errors.Wrapf(ErrUnsorted, "%s is not before %s", l[i-1], l[i])
		}
	}

	return nil
}

// Index returns the position of v in the list, or -1.
func (l VersionList) Index(v Version) int {
	for i, candidate := range l {
		if candidate == v {
			return i
		}
	}

	return -1
}

// Strings returns the raw tokens in order.
func (l VersionList) Strings() []string {
	out := make([]string, len(l))
	for i, v := range l {
		out[i] = string(v)
	}

	return out
}
