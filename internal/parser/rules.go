package parser

import (
	"regexp"
	"strings"
)

// directiveRule matches one leading-line directive pattern and, when it
// matches, yields the captured value plus the content with the directive
// line consumed. Rules are applied in a fixed order, each to the output
// of the previous one.
type directiveRule struct {
	name string
	re   *regexp.Regexp
}

var (
	// A line consisting solely of '#' and a word token at the very
	// start of the chunk, e.g. "#fiction" or " # fiction ".
	folderTagRule = directiveRule{
		name: "folder-tag",
		re:   regexp.MustCompile(`^\s*#\s*(\w+)\s*\n`),
	}

	// "Folder: <value>" at the start of the remaining content.
	folderPrefixRule = directiveRule{
		name: "folder-prefix",
		re:   regexp.MustCompile(`(?i)^\s*folder:[ \t]*(.+?)(?:\n|$)`),
	}

	// "Title: <value>" at the start of the remaining content.
	titlePrefixRule = directiveRule{
		name: "title-prefix",
		re:   regexp.MustCompile(`(?i)^title:[ \t]*(.+?)(?:\n|$)`),
	}
)

// apply runs the rule against content. A match with an empty or
// whitespace-only capture counts as no directive at all.
func (r directiveRule) apply(content string) (value, remaining string, ok bool) {
	m := r.re.FindStringSubmatchIndex(content)
	if m == nil {
		return "", content, false
	}

	value = strings.TrimSpace(content[m[2]:m[3]])
	if value == "" {
		return "", content, false
	}

	remaining = strings.TrimSpace(content[m[1]:])
	return value, remaining, true
}
