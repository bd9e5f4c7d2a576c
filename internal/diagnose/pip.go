package diagnose

import (
	"fmt"
	"regexp"
	"strings"

	m "github.com/mouse-blink/dtm/internal/model"
)

var (
	// requests 2.31.0 depends on urllib3<3 and >=1.21.1
	pipDependsOn = regexp.MustCompile(`^\s*(\S+) (\S+) depends on ([A-Za-z0-9_.\-]+)(\[[^\]]*\])?(.*)$`)
	// The user requested urllib3==2.0.0
	pipUserRequested = regexp.MustCompile(`^\s*The user requested ([A-Za-z0-9_.\-]+)(\[[^\]]*\])?(.*)$`)
	// requests 2.31.0 requires urllib3<3,>=1.21.1, but you have urllib3 0.9 which is incompatible.
	pipButYouHave = regexp.MustCompile(`(\S+) (\S+) (?:requires|has requirement) ([A-Za-z0-9_.\-]+)(\[[^\]]*\])?([^,]*(?:,[^,\s]+)*)?, but you(?:'ll)? have ([A-Za-z0-9_.\-]+) (\S+)`)
	// Could not find a version that satisfies the requirement foo==9.9 (from versions: ...)
	pipNoVersion = regexp.MustCompile(`Could not find a version that satisfies the requirement ([A-Za-z0-9_.\-]+)(\[[^\]]*\])?(\S*)`)
	// Package 'foo' requires a different Python: 3.7.0 not in '>=3.8'
	pipPython = regexp.MustCompile(`Package '([^']+)' requires a different Python: (\S+) not in '([^']+)'`)
)

func parsePip(lines []string, report m.ConflictReport) {
	requested := map[string]string{}

	for _, line := range lines {
		if match := pipUserRequested.FindStringSubmatch(line); match != nil {
			requested[normalizePyName(match[1])] = strings.TrimSpace(match[3])
		}
	}

	for _, line := range lines {
		if match := pipButYouHave.FindStringSubmatch(line); match != nil {
			dep := normalizePyName(match[3])
			report.Add(dep, fmt.Sprintf("%s %s requires %s%s but resolved %s",
				match[1], match[2], match[3], strings.TrimSpace(match[5]), match[7]))

			continue
		}

		if match := pipDependsOn.FindStringSubmatch(line); match != nil {
			dep := normalizePyName(match[3])
			spec := strings.TrimSpace(match[5])

			desc := fmt.Sprintf("%s %s requires %s %s", match[1], match[2], match[3], spec)
			if want, ok := requested[dep]; ok {
				desc += fmt.Sprintf(" but resolved %s%s", match[3], want)
			}

			report.Add(dep, strings.TrimSpace(desc))

			continue
		}

		if match := pipNoVersion.FindStringSubmatch(line); match != nil {
			report.Add(normalizePyName(match[1]), fmt.Sprintf("no available version satisfies %s%s", match[1], match[3]))

			continue
		}

		if match := pipPython.FindStringSubmatch(line); match != nil {
			report.Add("python", fmt.Sprintf("%s requires python %s but resolved %s", match[1], match[3], match[2]))
		}
	}
}

// normalizePyName applies the PEP 503 name normalization.
func normalizePyName(name string) string {
	name = strings.ToLower(name)

	return strings.NewReplacer("_", "-", ".", "-").Replace(name)
}
