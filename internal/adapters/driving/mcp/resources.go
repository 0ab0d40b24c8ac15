package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/verslag-digest/digest/internal/core/domain"
)

// uriScheme is the custom URI scheme for digest resources.
const uriScheme = "digest://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.inner.AddResource(&mcp.Resource{
		URI:         uriScheme + "meetings",
		Name:        "meetings",
		Description: "Every loaded meeting summary, newest first",
		MIMEType:    "application/json",
	}, s.handleMeetingsResource)

	s.inner.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "meetings/{id}",
		Name:        "meeting",
		Description: "Full projection of one meeting summary",
		MIMEType:    "application/json",
	}, s.handleMeetingResource)
}

// meetingInfo is one entry of the meetings listing.
type meetingInfo struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Date   string `json:"date"`
	Model  string `json:"model,omitempty"`
	Topics int    `json:"topics"`
	URI    string `json:"uri"`
}

// handleMeetingsResource lists the whole corpus regardless of filters.
func (s *Server) handleMeetingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	docs := s.ports.Corpus.Snapshot().Documents

	infos := make([]meetingInfo, len(docs))
	for i := range docs {
		infos[i] = meetingInfo{
			ID:     docs[i].ID,
			Title:  docs[i].Title,
			Date:   docs[i].Date.Format(time.DateOnly),
			Model:  docs[i].Model(),
			Topics: len(docs[i].Summary.Topics),
			URI:    meetingURI(docs[i].ID),
		}
	}

	return jsonResult(req.Params.URI, infos)
}

// handleMeetingResource returns the projection of a single meeting.
func (s *Server) handleMeetingResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractMeetingID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	doc, err := s.ports.Corpus.Project(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("projecting meeting: %w", err)
	}

	return jsonResult(req.Params.URI, doc)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func meetingURI(id string) string {
	return uriScheme + "meetings/" + id
}

// extractMeetingID extracts the id from a URI like digest://meetings/{id}.
func extractMeetingID(uri string) string {
	const prefix = uriScheme + "meetings/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
