package render

import (
	"regexp"
	"strings"

	"github.com/wzkariampuzha/geardocs"
	"gopkg.in/yaml.v3"
)

// Ensure MarkdownParser implements geardocs.Parser at compile time.
var _ geardocs.Parser = (*MarkdownParser)(nil)

var atxHeadingRe = regexp.MustCompile(`^(#{1,6})(\s+.*)$`)

// MarkdownParser treats the payload as already-markdown (fetched from a
// repository path) and passes it through with minimal normalization:
// YAML front-matter is stripped and heading levels are shifted so the
// topmost heading is an H1.
type MarkdownParser struct{}

// NewMarkdownParser creates a new MarkdownParser.
func NewMarkdownParser() *MarkdownParser {
	return &MarkdownParser{}
}

// Parse normalizes the markdown payload.
func (p *MarkdownParser) Parse(src *geardocs.SourceDescriptor, raw []byte, url string) (string, error) {
	text := string(raw)
	if strings.TrimSpace(text) == "" {
		return "", geardocs.Errorf(geardocs.EPARSE, "empty markdown payload from %s", url)
	}

	text = stripFrontMatter(text)
	text = normalizeHeadings(text)

	text = strings.TrimSpace(text)
	if text == "" {
		return "", geardocs.Errorf(geardocs.EPARSE, "markdown payload from %s contains only front-matter", url)
	}
	return text, nil
}

// stripFrontMatter removes a leading YAML front-matter block. The block is
// only stripped when it actually parses as a YAML mapping, so documents
// that merely open with a horizontal rule are left alone.
func stripFrontMatter(text string) string {
	rest, ok := strings.CutPrefix(text, "---\n")
	if !ok {
		return text
	}

	end := strings.Index(rest, "\n---")
	if end < 0 {
		return text
	}
	block := rest[:end]
	after := rest[end+len("\n---"):]
	if after != "" && !strings.HasPrefix(after, "\n") {
		return text
	}

	var meta map[string]any
	if err := yaml.Unmarshal([]byte(block), &meta); err != nil || len(meta) == 0 {
		return text
	}

	return strings.TrimPrefix(after, "\n")
}

// normalizeHeadings shifts ATX heading levels so the topmost heading in the
// document is an H1. Lines inside code fences are left untouched.
func normalizeHeadings(text string) string {
	lines := strings.Split(text, "\n")

	minLevel := 0
	inFence := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		if m := atxHeadingRe.FindStringSubmatch(line); m != nil {
			level := len(m[1])
			if minLevel == 0 || level < minLevel {
				minLevel = level
			}
		}
	}
	if minLevel <= 1 {
		return text
	}

	shift := minLevel - 1
	inFence = false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		if m := atxHeadingRe.FindStringSubmatch(line); m != nil {
			lines[i] = m[1][:len(m[1])-shift] + m[2]
		}
	}
	return strings.Join(lines, "\n")
}
