package domain

import (
	"strings"

	"github.com/narwhalmedia/tracker/pkg/specification"
)

// Category is a browse tab: All or one media type.
type Category string

// CategoryAll matches every item.
const CategoryAll Category = "All"

// Categories lists the browse tabs in display order.
var Categories = []Category{CategoryAll, Category(MediaTypeMovie), Category(MediaTypeBook), Category(MediaTypeGame)}

// ParseCategory accepts All or any media type; anything else is rejected.
func ParseCategory(s string) (Category, bool) {
	if s == "" || strings.EqualFold(s, string(CategoryAll)) {
		return CategoryAll, true
	}
	for _, t := range MediaTypes {
		if strings.EqualFold(s, string(t)) {
			return Category(t), true
		}
	}
	return "", false
}

// MatchesTitle is the case-insensitive substring test. An empty term matches.
func MatchesTitle(item MediaItem, searchTerm string) bool {
	if searchTerm == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Title), strings.ToLower(searchTerm))
}

// MatchesCategory reports whether item belongs to category.
func MatchesCategory(item MediaItem, category Category) bool {
	return category == CategoryAll || category == "" || string(item.Type) == string(category)
}

// TitleContains is the title predicate as a specification.
func TitleContains(searchTerm string) specification.Specification[MediaItem] {
	if searchTerm == "" {
		return specification.All[MediaItem]()
	}
	return specification.Func[MediaItem](func(item MediaItem) bool {
		return MatchesTitle(item, searchTerm)
	})
}

// InCategory is the category predicate as a specification.
func InCategory(category Category) specification.Specification[MediaItem] {
	if category == CategoryAll || category == "" {
		return specification.All[MediaItem]()
	}
	return specification.Func[MediaItem](func(item MediaItem) bool {
		return MatchesCategory(item, category)
	})
}

// Visible returns the items matching both the search term and the category,
// in input order. It never returns nil.
func Visible(items []MediaItem, searchTerm string, category Category) []MediaItem {
	return specification.Filter(items, specification.And(TitleContains(searchTerm), InCategory(category)))
}
