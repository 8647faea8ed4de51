package render

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/wzkariampuzha/geardocs"
)

// Ensure XMLParser implements geardocs.Parser at compile time.
var _ geardocs.Parser = (*XMLParser)(nil)

// maxDictionaryEntries caps data-dictionary output. The DICOM dictionary
// runs to thousands of entries; the cap keeps the rendered document usable.
const maxDictionaryEntries = 100

// XMLParser extracts the data-dictionary and transfer-syntax subsets of a
// standards XML document and renders them as markdown. Extraction is a
// deliberate reduction: everything outside the configured scopes is
// discarded to bound output size.
type XMLParser struct{}

// NewXMLParser creates a new XMLParser.
func NewXMLParser() *XMLParser {
	return &XMLParser{}
}

// Parse renders the scoped element subsets of the XML payload as markdown.
// The scopes come from src.Sections; an empty list means every recognized
// scope. Returns EPARSE when the document is malformed beyond recovery or
// yields no elements in any scope.
func (p *XMLParser) Parse(src *geardocs.SourceDescriptor, raw []byte, url string) (string, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = true
	if err := doc.ReadFromBytes(raw); err != nil {
		return "", geardocs.Errorf(geardocs.EPARSE, "parsing XML from %s: %v", url, err)
	}

	root := doc.Root()
	if root == nil {
		return "", geardocs.Errorf(geardocs.EPARSE, "empty XML document from %s", url)
	}

	sections := src.Sections
	if len(sections) == 0 {
		sections = []string{geardocs.SectionDataDictionary, geardocs.SectionTransferSyntaxes}
	}

	var parts []string
	for _, section := range sections {
		switch section {
		case geardocs.SectionDataDictionary:
			if table := renderDataDictionary(root); table != "" {
				parts = append(parts, table)
			}
		case geardocs.SectionTransferSyntaxes:
			if list := renderTransferSyntaxes(root); list != "" {
				parts = append(parts, list)
			}
		}
	}

	if len(parts) == 0 {
		return "", geardocs.Errorf(geardocs.EPARSE, "no data-dictionary or transfer-syntax elements found in %s", url)
	}

	return strings.Join(parts, "\n\n"), nil
}

// renderDataDictionary renders data element definitions as a markdown
// table, capped at maxDictionaryEntries rows.
func renderDataDictionary(root *etree.Element) string {
	elements := collect(root, func(tag string) bool {
		return strings.Contains(tag, "DataElement") || strings.Contains(tag, "dataElement")
	})
	if len(elements) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("## Data Dictionary\n\n")
	b.WriteString("| Tag | Name | VR | Keyword |\n")
	b.WriteString("|-----|------|----|---------|\n")

	truncated := false
	if len(elements) > maxDictionaryEntries {
		elements = elements[:maxDictionaryEntries]
		truncated = true
	}

	for _, el := range elements {
		tag := attrOrChild(el, "tag")
		name := attrOrChild(el, "name")
		if name == "" {
			name = strings.TrimSpace(el.Text())
		}
		vr := attrOrChild(el, "vr")
		keyword := attrOrChild(el, "keyword")
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", cell(tag), cell(name), cell(vr), cell(keyword))
	}

	if truncated {
		fmt.Fprintf(&b, "\n*Dictionary truncated to the first %d entries.*\n", maxDictionaryEntries)
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderTransferSyntaxes renders transfer syntax definitions as a list.
func renderTransferSyntaxes(root *etree.Element) string {
	elements := collect(root, func(tag string) bool {
		return strings.Contains(tag, "TransferSyntax") || strings.Contains(tag, "transferSyntax")
	})
	if len(elements) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("## Transfer Syntaxes\n\n")
	for _, el := range elements {
		uid := attrOrChild(el, "uid")
		if uid == "" {
			uid = strings.TrimSpace(el.Text())
		}
		name := attrOrChild(el, "name")
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(&b, "- **%s**: `%s`\n", name, uid)
	}

	return strings.TrimRight(b.String(), "\n")
}

// collect walks the element tree and returns every element whose tag
// satisfies the predicate.
func collect(el *etree.Element, match func(tag string) bool) []*etree.Element {
	var found []*etree.Element
	if match(el.Tag) {
		found = append(found, el)
	}
	for _, child := range el.ChildElements() {
		found = append(found, collect(child, match)...)
	}
	return found
}

// attrOrChild reads a value from an attribute or, failing that, a child
// element of the same name. Standards documents use both spellings.
func attrOrChild(el *etree.Element, name string) string {
	if v := el.SelectAttrValue(name, ""); v != "" {
		return strings.TrimSpace(v)
	}
	if child := el.SelectElement(name); child != nil {
		return strings.TrimSpace(child.Text())
	}
	return ""
}

// cell escapes pipes so values cannot break markdown table structure.
func cell(s string) string {
	if s == "" {
		return "N/A"
	}
	return strings.ReplaceAll(s, "|", `\|`)
}
