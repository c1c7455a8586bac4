// resources.go exposes the embedded guide pages as MCP resources, so a
// client can load documentation into context without a tool call.
//
// URIs follow seek://guide/{topic}; seek://guide is the index page.

package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jpl-au/seek/guide"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ErrInvalidURI indicates a malformed resource URI.
var ErrInvalidURI = errors.New("invalid URI")

const guidePrefix = "seek://guide"

// registerResources adds the guide index and per-topic guide pages.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResource(
		mcp.NewResource(
			guidePrefix,
			"Guide",
			mcp.WithResourceDescription("seek usage guide"),
			mcp.WithMIMEType("text/markdown"),
		),
		h.readGuide,
	)

	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			guidePrefix+"/{topic}",
			"Guide Topic",
			mcp.WithTemplateDescription("Guide page for a command or tool"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		h.readGuide,
	)
}

// readGuide handles seek://guide and seek://guide/{topic} requests.
func (h *handlers) readGuide(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	topic, err := parseGuideURI(uri)
	if err != nil {
		return nil, err
	}

	content, err := guide.Get(topic)
	if err != nil {
		return nil, fmt.Errorf("guide %q: %w", topic, err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     content,
		},
	}, nil
}

// parseGuideURI extracts the topic from a guide URI. The index has no topic.
func parseGuideURI(uri string) (string, error) {
	rest, ok := strings.CutPrefix(uri, guidePrefix)
	if !ok || (rest != "" && !strings.HasPrefix(rest, "/")) {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	rest = strings.Trim(rest, "/")
	if strings.Contains(rest, "/") {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	return rest, nil
}
