package diagnose

import (
	"fmt"
	"regexp"

	m "github.com/mouse-blink/dtm/internal/model"
)

var (
	cargoSelect      = regexp.MustCompile("failed to select a version for `([^`\\s]+)`")
	cargoRequirement = regexp.MustCompile("failed to select a version for the requirement `([^`\\s]+) = \"([^\"]+)\"`")
	cargoRequiredBy  = regexp.MustCompile("required by package `([^`]+)`")
	cargoMeet        = regexp.MustCompile("versions that meet the requirements `([^`]+)`")
	cargoPrevious    = regexp.MustCompile("previously selected package `([^`]+)`")
	cargoNoPackage   = regexp.MustCompile("no matching package named `([^`]+)` found")
)

type cargoClash struct {
	dep         string
	requiredBy  string
	requirement string
}

func parseCargo(lines []string, report m.ConflictReport) {
	var current *cargoClash

	for _, line := range lines {
		if match := cargoRequirement.FindStringSubmatch(line); match != nil {
			current = nil
			report.Add(match[1], fmt.Sprintf("no available version satisfies %s %s", match[1], match[2]))

			continue
		}

		if match := cargoSelect.FindStringSubmatch(line); match != nil {
			current = &cargoClash{dep: match[1]}
			continue
		}

		if match := cargoNoPackage.FindStringSubmatch(line); match != nil {
			report.Add(match[1], fmt.Sprintf("no package named %s in the registry", match[1]))
			continue
		}

		if current == nil {
			continue
		}

		if match := cargoRequiredBy.FindStringSubmatch(line); match != nil && current.requiredBy == "" {
			current.requiredBy = match[1]
			continue
		}

		if match := cargoMeet.FindStringSubmatch(line); match != nil {
			current.requirement = match[1]
			continue
		}

		if match := cargoPrevious.FindStringSubmatch(line); match != nil {
			report.Add(current.dep, fmt.Sprintf("%s requires %s %s but resolved %s",
				orUnknown(current.requiredBy), current.dep, orUnknown(current.requirement), match[1]))

			current = nil
		}
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "(unknown)"
	}

	return s
}
