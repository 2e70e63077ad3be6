package nav

import (
	"strings"

	"atelier-cli/internal/model"
)

// KnownSlug reports whether slug matches one of the known categories.
func KnownSlug(categories []model.Category, slug string) bool {
	for _, c := range categories {
		if model.Slugify(c.Name) == slug {
			return true
		}
	}
	return false
}

// DeriveVisible computes the work subset for a category slug.
//
// "" and "all" select every work. A slug that matches no known category fails
// open to "all": locations can be hand-edited, and showing everything beats
// showing a silently empty gallery (pinned decision, see DESIGN.md). For a
// known slug, a work is included iff its resolved category name slugifies to
// that slug; works whose category cannot be resolved are excluded from every
// non-"all" filter.
func DeriveVisible(works []model.Work, categories []model.Category, slug string) []model.Work {
	slug = strings.TrimSpace(slug)
	if slug == "" || slug == AllSlug || !KnownSlug(categories, slug) {
		out := make([]model.Work, len(works))
		copy(out, works)
		return out
	}

	out := make([]model.Work, 0, len(works))
	for _, w := range works {
		name := model.ResolvedCategoryName(w, categories)
		if name == "" {
			continue
		}
		if model.Slugify(name) == slug {
			out = append(out, w)
		}
	}
	return out
}
