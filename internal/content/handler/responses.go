package handler

import (
	"time"

	"bizform/internal/content"
)

// ItemResponse is the HTTP representation of one knowledge-base entry.
type ItemResponse struct {
	ID          string   `json:"id"`
	Kind        string   `json:"kind"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	Body        string   `json:"body,omitempty"`
	Tags        []string `json:"tags"`
	PublishedAt string   `json:"publishedAt"`
}

// ListResponse is the HTTP response for a kind listing. List entries carry
// summaries only; the body is served by the slug endpoint.
type ListResponse struct {
	Kind  string         `json:"kind"`
	Items []ItemResponse `json:"items"`
}

// OverviewResponse is the landing-page digest keyed by kind.
type OverviewResponse struct {
	Sections map[string][]ItemResponse `json:"sections"`
}

// FromItem converts an item with its full body.
func FromItem(item *content.Item) ItemResponse {
	resp := fromItemSummary(*item)
	resp.Body = item.Body
	return resp
}

// FromItems converts a listing, dropping bodies.
func FromItems(kind content.Kind, items []content.Item) ListResponse {
	resp := ListResponse{
		Kind:  kind.String(),
		Items: make([]ItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, fromItemSummary(item))
	}
	return resp
}

// FromOverview converts the digest, dropping bodies.
func FromOverview(overview *content.Overview) OverviewResponse {
	resp := OverviewResponse{Sections: make(map[string][]ItemResponse, len(overview.Sections))}
	for kind, items := range overview.Sections {
		section := make([]ItemResponse, 0, len(items))
		for _, item := range items {
			section = append(section, fromItemSummary(item))
		}
		resp.Sections[kind.String()] = section
	}
	return resp
}

func fromItemSummary(item content.Item) ItemResponse {
	tags := item.Tags
	if tags == nil {
		tags = []string{}
	}
	return ItemResponse{
		ID:          item.ID.String(),
		Kind:        item.Kind.String(),
		Slug:        item.Slug,
		Title:       item.Title,
		Summary:     item.Summary,
		Tags:        tags,
		PublishedAt: item.PublishedAt.Format(time.RFC3339),
	}
}
