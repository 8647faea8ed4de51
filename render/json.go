package render

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/wzkariampuzha/geardocs"
)

// Ensure JSONParser implements geardocs.Parser at compile time.
var _ geardocs.Parser = (*JSONParser)(nil)

// JSONParser renders a JSON payload as markdown: a summary of the top-level
// structure (schema properties when present) followed by the pretty-printed
// document in a fenced code block.
type JSONParser struct{}

// NewJSONParser creates a new JSONParser.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse renders the JSON payload as markdown.
func (p *JSONParser) Parse(src *geardocs.SourceDescriptor, raw []byte, url string) (string, error) {
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return "", geardocs.Errorf(geardocs.EPARSE, "parsing JSON from %s: %v", url, err)
	}

	var b strings.Builder

	if obj, ok := data.(map[string]any); ok {
		if desc, ok := obj["description"].(string); ok && desc != "" {
			b.WriteString(desc + "\n\n")
		}
		if props, ok := obj["properties"].(map[string]any); ok {
			writeSchemaProperties(&b, obj, props)
		} else {
			writeTopLevelKeys(&b, obj)
		}
	}

	pretty, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", geardocs.Errorf(geardocs.EPARSE, "re-encoding JSON from %s: %v", url, err)
	}

	b.WriteString("## Full Document (JSON)\n\n")
	b.WriteString("```json\n")
	b.Write(pretty)
	b.WriteString("\n```")

	return b.String(), nil
}

// writeSchemaProperties renders a JSON-schema style properties map, one
// subsection per property with its description, type and required flag.
func writeSchemaProperties(b *strings.Builder, obj map[string]any, props map[string]any) {
	required := make(map[string]bool)
	if list, ok := obj["required"].([]any); ok {
		for _, item := range list {
			if name, ok := item.(string); ok {
				required[name] = true
			}
		}
	}

	b.WriteString("## Properties\n\n")
	for _, name := range sortedKeys(props) {
		fmt.Fprintf(b, "### `%s`\n", name)
		if def, ok := props[name].(map[string]any); ok {
			if desc, ok := def["description"].(string); ok && desc != "" {
				b.WriteString(desc + "\n")
			}
			if typ, ok := def["type"].(string); ok && typ != "" {
				fmt.Fprintf(b, "- **Type:** `%s`\n", typ)
			}
			if required[name] {
				b.WriteString("- **Required:** Yes\n")
			}
		}
		b.WriteString("\n")
	}
}

// writeTopLevelKeys renders a plain listing of the object's keys.
func writeTopLevelKeys(b *strings.Builder, obj map[string]any) {
	if len(obj) == 0 {
		return
	}
	b.WriteString("## Top-Level Keys\n\n")
	for _, name := range sortedKeys(obj) {
		fmt.Fprintf(b, "- `%s`\n", name)
	}
	b.WriteString("\n")
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
