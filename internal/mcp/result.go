package mcp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bobmcallan/reddable-mcp/internal/client"
)

func textResult(segments ...string) *mcp.CallToolResult {
	content := make([]mcp.Content, 0, len(segments))
	for _, s := range segments {
		content = append(content, mcp.NewTextContent(s))
	}
	return &mcp.CallToolResult{Content: content}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(text)},
		IsError: true,
	}
}

// prettyJSON renders v with two-space indentation and without HTML escaping.
func prettyJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Sprintf("%v", v)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// shape turns an upstream result or error into exactly one envelope.
func shape(body any, err error, success func(any) *mcp.CallToolResult, failure func(error) string) *mcp.CallToolResult {
	if err != nil {
		return errorResult(failure(err))
	}
	return success(body)
}

func dump(body any) *mcp.CallToolResult {
	return textResult(prettyJSON(body))
}

func created(noun string) func(any) *mcp.CallToolResult {
	return func(body any) *mcp.CallToolResult {
		return textResult(fmt.Sprintf("Successfully created %s: %s", noun, prettyJSON(body)))
	}
}

func failedTo(phrase string) func(error) string {
	return func(err error) string {
		return fmt.Sprintf("Error %s: %v", phrase, err)
	}
}

func postOrNotFound(postID string) func(any) *mcp.CallToolResult {
	return func(body any) *mcp.CallToolResult {
		if isFalsy(body) {
			return errorResult(fmt.Sprintf("Post with ID %s not found", postID))
		}
		return dump(body)
	}
}

func adsFound(body any) *mcp.CallToolResult {
	return textResult(fmt.Sprintf("Found %d ads:\n\n%s", countItems(body), prettyJSON(body)))
}

func imageGenerated(style string) func(any) *mcp.CallToolResult {
	return func(body any) *mcp.CallToolResult {
		picked := map[string]any{}
		if m, ok := body.(map[string]any); ok {
			for _, key := range []string{"image_url", "upload_status"} {
				if v, ok := m[key]; ok {
					picked[key] = v
				}
			}
		}
		return textResult(
			fmt.Sprintf("Successfully generated image with %s style.", style),
			prettyJSON(picked),
		)
	}
}

func imageFailed(err error) string {
	if msg, ok := client.UpstreamMessage(err); ok {
		return "Error generating image: " + msg
	}
	return fmt.Sprintf("Error generating image: %v", err)
}

// countItems counts a top-level array, or the "data" array of an object.
func countItems(body any) int {
	switch v := body.(type) {
	case []any:
		return len(v)
	case map[string]any:
		if data, ok := v["data"].([]any); ok {
			return len(data)
		}
	}
	return 0
}

// isFalsy reports whether body is null, false, zero or the empty string.
func isFalsy(body any) bool {
	switch v := body.(type) {
	case nil:
		return true
	case bool:
		return !v
	case string:
		return v == ""
	case json.Number:
		f, err := v.Float64()
		return err == nil && f == 0
	case float64:
		return v == 0
	}
	return false
}
