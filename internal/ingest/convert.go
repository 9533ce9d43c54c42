// Package ingest converts raw BattleScribe catalogue markup (.cat/.gst)
// into the namespace-free generic tree consumed by the transformation
// engine.
package ingest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"
)

// Parse reads one catalogue document and returns its generic tree form:
// attributes become string fields, repeated child elements become lists,
// and element text is stored under "_text". An element with neither
// attributes nor children collapses to its bare text.
//
// Namespace prefixes are dropped from element and attribute names;
// colliding local names across namespaces are last-write-wins.
func Parse(r io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read source document: %w", err)
	}

	// BattleScribe exports often carry a UTF-8 BOM.
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}

	root := firstElement(doc)
	if root == nil {
		return nil, fmt.Errorf("document has no root element")
	}

	converted := convertElement(root)
	m, ok := converted.(map[string]any)
	if !ok {
		// A root that collapsed to bare text has no structure to transform.
		return nil, fmt.Errorf("root element %q has no attributes or children", root.Data)
	}
	return m, nil
}

// ParseFile parses the catalogue file at path.
func ParseFile(path string) (map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}

func convertElement(n *xmlquery.Node) any {
	result := map[string]any{}

	for _, attr := range n.Attr {
		result[attr.Name.Local] = attr.Value
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.ElementNode {
			continue
		}
		key := child.Data
		value := convertElement(child)
		if existing, ok := result[key]; ok {
			// Second occurrence of the same element name: promote to list.
			if list, ok := existing.([]any); ok {
				result[key] = append(list, value)
			} else {
				result[key] = []any{existing, value}
			}
		} else {
			result[key] = value
		}
	}

	if text := elementText(n); text != "" {
		if len(result) == 0 {
			return text
		}
		result["_text"] = text
	}
	return result
}

// elementText concatenates the direct text children of an element,
// trimmed of surrounding whitespace.
func elementText(n *xmlquery.Node) string {
	var b strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.TextNode || child.Type == xmlquery.CharDataNode {
			b.WriteString(child.Data)
		}
	}
	return strings.TrimSpace(b.String())
}

func firstElement(doc *xmlquery.Node) *xmlquery.Node {
	for child := doc.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			return child
		}
	}
	return nil
}
