package cms

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
)

// Block-structured rich text: the CMS may deliver long-form content as an
// ordered list of typed nodes instead of raw HTML. BlocksToHTML flattens
// that document deterministically; unknown block types render as "" (content
// loss for unrecognized types is accepted, not an error).

type richTextNode struct {
	Type     string         `json:"type"`
	Level    int            `json:"level,omitempty"`
	Format   string         `json:"format,omitempty"`
	Text     string         `json:"text,omitempty"`
	Children []richTextNode `json:"children,omitempty"`
}

// BlocksToHTML converts a block document to an HTML string.
func BlocksToHTML(blocks []richTextNode) string {
	var sb strings.Builder
	for _, b := range blocks {
		sb.WriteString(blockHTML(b))
	}
	return sb.String()
}

func blockHTML(b richTextNode) string {
	switch b.Type {
	case "paragraph":
		return "<p>" + inlineText(b.Children) + "</p>"
	case "heading":
		level := b.Level
		if level < 1 || level > 6 {
			level = 1
		}
		return fmt.Sprintf("<h%d>%s</h%d>", level, inlineText(b.Children), level)
	case "list":
		tag := "ul"
		if b.Format == "ordered" {
			tag = "ol"
		}
		var sb strings.Builder
		sb.WriteString("<" + tag + ">")
		for _, item := range b.Children {
			sb.WriteString("<li>" + inlineText(item.Children) + "</li>")
		}
		sb.WriteString("</" + tag + ">")
		return sb.String()
	case "quote":
		return "<blockquote>" + inlineText(b.Children) + "</blockquote>"
	default:
		return ""
	}
}

// inlineText concatenates child text runs in document order.
func inlineText(children []richTextNode) string {
	var sb strings.Builder
	for _, child := range children {
		if child.Text != "" {
			sb.WriteString(html.EscapeString(child.Text))
		}
		if len(child.Children) > 0 {
			sb.WriteString(inlineText(child.Children))
		}
	}
	return sb.String()
}

// richTextField reads a content field that is either already an HTML string
// or a block document, and always returns HTML.
func richTextField(m map[string]interface{}, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case []interface{}:
		raw, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		var blocks []richTextNode
		if err := json.Unmarshal(raw, &blocks); err != nil {
			return ""
		}
		return BlocksToHTML(blocks)
	}
	return ""
}
