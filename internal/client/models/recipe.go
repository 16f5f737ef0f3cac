package models

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/recipeshare/internal/common"
)

// Ingredients is an ordered ingredient list. The backend sends it as a JSON
// array, older payloads as one comma separated string; both decode to trimmed,
// non-empty items.
type Ingredients []string

func (in *Ingredients) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		*in = Ingredients{}
	case string:
		*in = common.SplitList(v)
	case []any:
		items := make([]string, 0, len(v))
		for _, it := range v {
			s, ok := it.(string)
			if !ok {
				return fmt.Errorf("ingredient must be a string, got %T", it)
			}
			if s = strings.TrimSpace(s); s != "" {
				items = append(items, s)
			}
		}
		*in = items
	default:
		return fmt.Errorf("unsupported ingredients value %T", raw)
	}
	return nil
}

// Recipe is the backend's recipe representation. The client only caches it.
type Recipe struct {
	ID            int64       `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Ingredients   Ingredients `json:"ingredients"`
	Instructions  string      `json:"instructions"`
	ImageFilename string      `json:"image_filename"`
	CreatorID     int64       `json:"creatorId"`
	CreatorEmail  string      `json:"creatorEmail"`
	Likes         int         `json:"likes"`
	CreatedAt     string      `json:"created_at,omitempty"`
}

// ImageURL returns the absolute URL of the recipe image served by the backend
// at baseURL, or a placeholder when the recipe has no image.
func (r Recipe) ImageURL(baseURL string) string {
	if r.ImageFilename == "" {
		return common.PlaceholderImageURL
	}
	return strings.TrimRight(baseURL, "/") + common.UploadsPath + url.PathEscape(r.ImageFilename)
}
