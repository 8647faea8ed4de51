package geardocs

import (
	"regexp"
	"strings"
)

// SectionFilter removes unwanted sections from rendered markdown.
type SectionFilter interface {
	Filter(markdown string) string
}

// DefaultDeprecationMarkers are the patterns recognized as deprecation
// markers when no custom set is configured.
var DefaultDeprecationMarkers = []string{
	`(?i)deprecat`,
	`(?i)legacy`,
	`(?i)obsolete`,
}

// Ensure DeprecationFilter implements SectionFilter at compile time.
var _ SectionFilter = (*DeprecationFilter)(nil)

var (
	headingRe = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	// badgeRe matches a whole-line bold marker such as "**Deprecated**",
	// optionally blockquoted. Anything looser risks removing current
	// content, so only this exact shape is treated as a section badge.
	badgeRe = regexp.MustCompile(`^(?:>\s*)?\*\*([^*]+)\*\*:?\s*$`)
	// blankRunRe collapses the triple blank lines left by section removal.
	blankRunRe = regexp.MustCompile(`\n{3,}`)
)

// DeprecationFilter removes contiguous markdown sections flagged as
// deprecated. A section runs from a matching heading up to (but not
// including) the next heading of equal or higher level. A heading matches
// when its text contains a marker pattern, or when the first non-blank line
// under it is a whole-line bold badge whose text contains a marker.
//
// Filtering is linear, order-preserving, and idempotent. Text without
// markers passes through unchanged. This is a textual heuristic: missed
// deprecated content is acceptable, removing current content is not.
type DeprecationFilter struct {
	markers []*regexp.Regexp
}

// NewDeprecationFilter compiles the marker patterns. With no patterns the
// default marker set is used. Returns EINVALID for an uncompilable pattern.
func NewDeprecationFilter(patterns ...string) (*DeprecationFilter, error) {
	if len(patterns) == 0 {
		patterns = DefaultDeprecationMarkers
	}
	markers := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid deprecation marker pattern %q: %v", p, err)
		}
		markers = append(markers, re)
	}
	return &DeprecationFilter{markers: markers}, nil
}

// Filter returns the markdown with deprecated sections removed.
func (f *DeprecationFilter) Filter(markdown string) string {
	if markdown == "" {
		return markdown
	}

	lines := strings.Split(markdown, "\n")
	out := make([]string, 0, len(lines))

	inFence := false
	skipLevel := 0 // heading level of the section being removed, 0 when keeping
	removed := false

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if isFence(trimmed) {
			// Fences are tracked even inside skipped sections so a
			// #-prefixed code line cannot terminate the skip early.
			inFence = !inFence
			if skipLevel == 0 {
				out = append(out, line)
			}
			continue
		}

		if !inFence {
			if m := headingRe.FindStringSubmatch(line); m != nil {
				level := len(m[1])
				if skipLevel > 0 && level <= skipLevel {
					skipLevel = 0 // section ended
				}
				if skipLevel == 0 {
					if f.matches(m[2]) || f.badgeFollows(lines, i) {
						skipLevel = level
						removed = true
						continue
					}
					out = append(out, line)
				}
				continue
			}
		}

		if skipLevel == 0 {
			out = append(out, line)
		}
	}

	// Absent markers the text passes through untouched.
	if !removed {
		return markdown
	}

	result := strings.Join(out, "\n")
	result = blankRunRe.ReplaceAllString(result, "\n\n")
	return strings.TrimRight(result, "\n") + trailingNewlines(markdown)
}

// matches reports whether text contains any marker pattern.
func (f *DeprecationFilter) matches(text string) bool {
	for _, re := range f.markers {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// badgeFollows reports whether the first non-blank line after the heading
// at index i is a bold badge whose text matches a marker.
func (f *DeprecationFilter) badgeFollows(lines []string, i int) bool {
	for j := i + 1; j < len(lines); j++ {
		trimmed := strings.TrimSpace(lines[j])
		if trimmed == "" {
			continue
		}
		if m := badgeRe.FindStringSubmatch(trimmed); m != nil {
			return f.matches(m[1])
		}
		return false
	}
	return false
}

func isFence(trimmed string) bool {
	return strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
}

// trailingNewlines preserves the input's trailing newline, if any, so that
// filtering already-filtered text is a no-op byte for byte.
func trailingNewlines(s string) string {
	if strings.HasSuffix(s, "\n") {
		return "\n"
	}
	return ""
}
