package diagnose

import (
	"fmt"
	"regexp"
	"strings"

	m "github.com/mouse-blink/dtm/internal/model"
)

var (
	npmPrefix = regexp.MustCompile(`^npm (?:ERR!|error|WARN|warn)\s?`)
	// Found: react@17.0.2
	npmFound = regexp.MustCompile(`^Found: (@?[^@\s]+)@(\S+)`)
	// peer react@"^18.0.0" from react-dom@18.2.0
	npmWants = regexp.MustCompile(`^\s*(?:peer |peerOptional |dev |optional )?(@?[^@\s]+)@"([^"]+)" from (@?[^@\s]+)@(\S+)`)
	// react-dom@16.0.0 requires a peer of react@^16.0.0 but none is installed.
	npmPeerMissing = regexp.MustCompile(`(@?[^@\s]+)@(\S+) requires a peer of (@?[^@\s]+)@(\S+) but none (?:is|was) installed`)
	// No matching version found for left-pad@^9.0.0.
	npmNoMatch = regexp.MustCompile(`No matching version found for (@?[^@\s]+)@(\S+?)\.?$`)
)

func parseNpm(lines []string, report m.ConflictReport) {
	found := map[string]string{}
	resolving := false

	for _, raw := range lines {
		line := npmPrefix.ReplaceAllString(raw, "")

		if match := npmFound.FindStringSubmatch(line); match != nil {
			found[match[1]] = match[2]
			continue
		}

		if strings.HasPrefix(strings.TrimSpace(line), "Could not resolve dependency:") ||
			strings.HasPrefix(strings.TrimSpace(line), "Conflicting peer dependency:") {
			resolving = true
			continue
		}

		if match := npmPeerMissing.FindStringSubmatch(line); match != nil {
			report.Add(match[3], fmt.Sprintf("%s@%s requires %s@%s but none is installed",
				match[1], match[2], match[3], match[4]))

			continue
		}

		if match := npmNoMatch.FindStringSubmatch(line); match != nil {
			report.Add(match[1], fmt.Sprintf("no published version matches %s@%s", match[1], match[2]))
			continue
		}

		if !resolving {
			continue
		}

		if match := npmWants.FindStringSubmatch(line); match != nil {
			dep := match[1]
			desc := fmt.Sprintf("%s@%s requires %s@%s", match[3], match[4], dep, match[2])

			if have, ok := found[dep]; ok {
				desc += " but resolved " + have
			}

			report.Add(dep, desc)

			resolving = false
		}
	}
}
