package diagnose

import (
	"fmt"
	"regexp"
	"strings"

	m "github.com/mouse-blink/dtm/internal/model"
)

var (
	// go: example.com/a@v1.2.0 requires example.com/b@v2.0.0: invalid version
	goRequires = regexp.MustCompile(`(\S+)@(v\S+) requires\s+(\S+)@(v[^\s:]+)`)
	// go: example.com/a@v1.3.0 requires go >= 1.22 (running go 1.21.0; GOTOOLCHAIN=local)
	goToolchain = regexp.MustCompile(`(\S+)@(v\S+) requires go >= (\S+) \(running go (\S+?)[;)]`)
	// go: module example.com/b@v1.9.0 found, but does not contain package example.com/b/c
	goMissingPkg = regexp.MustCompile(`module (\S+)@(v\S+) found(?: \([^)]*\))?, but does not contain package (\S+)`)
)

func parseGo(lines []string, report m.ConflictReport) {
	// "requires" chains may wrap onto an indented continuation line.
	text := strings.Join(lines, "\n")
	text = strings.ReplaceAll(text, "requires\n\t", "requires ")

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimPrefix(strings.TrimSpace(line), "go: ")

		if match := goToolchain.FindStringSubmatch(line); match != nil {
			report.Add("go", fmt.Sprintf("%s@%s requires go >= %s but resolved %s", match[1], match[2], match[3], match[4]))
			continue
		}

		if match := goMissingPkg.FindStringSubmatch(line); match != nil {
			report.Add(match[1], fmt.Sprintf("%s@%s does not contain package %s", match[1], match[2], match[3]))
			continue
		}

		if match := goRequires.FindStringSubmatch(line); match != nil {
			desc := fmt.Sprintf("%s@%s requires %s@%s", match[1], match[2], match[3], match[4])
			if idx := strings.Index(line, match[4]+": "); idx >= 0 {
				desc += " (" + strings.TrimSpace(line[idx+len(match[4])+2:]) + ")"
			}

			report.Add(match[3], desc)
		}
	}
}
