package api

import (
	"context"
	"net/url"

	"admission-client/internal/models"
)

// ExploreAPI serves the bilingual video/blog feed shown outside the wizard.
type ExploreAPI struct {
	client *Client
}

func NewExploreAPI(client *Client) *ExploreAPI {
	return &ExploreAPI{client: client}
}

// ExploreFilter narrows the feed listing. Zero values mean no filter.
type ExploreFilter struct {
	Type     models.ExploreItemType
	Category string
}

// List fetches the feed, optionally filtered by type and category.
func (e *ExploreAPI) List(ctx context.Context, filter ExploreFilter) ([]models.ExploreItem, error) {
	query := url.Values{}
	if filter.Type != "" {
		query.Set("type", string(filter.Type))
	}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	var items []models.ExploreItem
	if err := e.client.getJSON(ctx, "/explore", query, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID fetches a single feed item.
func (e *ExploreAPI) GetByID(ctx context.Context, id string) (*models.ExploreItem, error) {
	var item models.ExploreItem
	if err := e.client.getJSON(ctx, "/explore/"+id, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
