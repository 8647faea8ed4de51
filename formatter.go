package geardocs

import (
	"fmt"
	"strings"
)

// FormatDocument renders a built document for delivery to a caller. The
// output carries a metadata header, a visible note listing failed URLs for
// partial documents, and a clear explanatory message (never raw error text)
// for failed ones.
func FormatDocument(src *SourceDescriptor, doc *NormalizedDocument) string {
	var b strings.Builder

	name := src.DisplayName
	if name == "" {
		name = src.ID
	}
	fmt.Fprintf(&b, "# %s\n\n", name)
	if src.Description != "" {
		fmt.Fprintf(&b, "*%s*\n\n", src.Description)
	}

	if doc.Status == StatusFailed {
		b.WriteString("Documentation for this source could not be fetched.\n\n")
		if doc.FailureReason != "" {
			fmt.Fprintf(&b, "Reason: %s\n\n", doc.FailureReason)
		}
		b.WriteString("The source may be temporarily unreachable. Try refreshing the documentation cache.\n")
		return b.String()
	}

	b.WriteString("## Metadata\n\n")
	fmt.Fprintf(&b, "- **Source URL(s):** %s\n", strings.Join(src.URLs, ", "))
	fmt.Fprintf(&b, "- **Built:** %s\n", doc.BuiltAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "- **Size:** %s\n", formatSize(len(doc.RenderedText)))

	if doc.Status == StatusPartial {
		b.WriteString("\n**Warning:** some URLs could not be retrieved; this document is incomplete.\n")
		for _, u := range doc.PartialFailures {
			fmt.Fprintf(&b, "- failed: %s\n", u)
		}
	}

	b.WriteString("\n---\n\n")
	b.WriteString(doc.RenderedText)
	return b.String()
}

// FormatSourceList renders a catalog listing with per-source status.
// Sources that have not been built yet are reported as pending.
func FormatSourceList(sources []*SourceDescriptor, docs map[string]*NormalizedDocument) string {
	var b strings.Builder
	b.WriteString("# Available Documentation Sources\n\n")

	if len(sources) == 0 {
		b.WriteString("*The catalog is empty.*\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Total sources: %d\n\n", len(sources))

	for _, src := range sources {
		name := src.DisplayName
		if name == "" {
			name = src.ID
		}
		fmt.Fprintf(&b, "## `%s`\n", src.ID)
		fmt.Fprintf(&b, "**%s**\n", name)
		if src.Description != "" {
			fmt.Fprintf(&b, "\n*%s*\n", src.Description)
		}
		fmt.Fprintf(&b, "\n- URLs: %d\n", len(src.URLs))

		doc, ok := docs[src.ID]
		switch {
		case !ok:
			b.WriteString("- Status: not built yet\n")
		case doc.Status == StatusFailed:
			b.WriteString("- Status: failed\n")
		case doc.Status == StatusPartial:
			fmt.Fprintf(&b, "- Status: partial (%d of %d URLs failed)\n", len(doc.PartialFailures), len(src.URLs))
			fmt.Fprintf(&b, "- Size: %s\n", formatSize(len(doc.RenderedText)))
		default:
			b.WriteString("- Status: cached\n")
			fmt.Fprintf(&b, "- Size: %s\n", formatSize(len(doc.RenderedText)))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func formatSize(n int) string {
	const (
		kb = 1024
		mb = kb * 1024
	)
	switch {
	case n >= mb:
		return fmt.Sprintf("%.1f MB", float64(n)/float64(mb))
	case n >= kb:
		return fmt.Sprintf("%.1f KB", float64(n)/float64(kb))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
