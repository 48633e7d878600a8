package models

// ExploreItemType distinguishes feed cards.
type ExploreItemType string

const (
	ExploreVideo ExploreItemType = "VIDEO"
	ExploreBlog  ExploreItemType = "BLOG"
)

// ExploreItem is one bilingual card in the explore feed. Malayalam fields
// fall back to English when empty.
type ExploreItem struct {
	ID        string          `json:"id"`
	Type      ExploreItemType `json:"type"`
	Category  string          `json:"category,omitempty"`
	TitleEn   string          `json:"titleEn"`
	TitleMl   string          `json:"titleMl,omitempty"`
	ContentEn string          `json:"contentEn,omitempty"`
	ContentMl string          `json:"contentMl,omitempty"`
	VideoURL  string          `json:"videoUrl,omitempty"`
}

// Title returns the localized title for the given language code.
func (e *ExploreItem) Title(lang string) string {
	if lang == "ml" && trimNonEmpty(e.TitleMl) {
		return e.TitleMl
	}
	return e.TitleEn
}

// Content returns the localized body for the given language code.
func (e *ExploreItem) Content(lang string) string {
	if lang == "ml" && trimNonEmpty(e.ContentMl) {
		return e.ContentMl
	}
	return e.ContentEn
}

func trimNonEmpty(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return true
		}
	}
	return false
}
