package model

// Work is a single portfolio entry served by the backend.
//
// The backend is not consistent about category shape: list responses embed a
// full {id,name} object, while create responses sometimes return only the flat
// categoryId. Both fields are kept and ResolvedCategoryName/NormalizeCategory
// handle either shape.
type Work struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	ImageURL   string    `json:"imageUrl"`
	CategoryID int64     `json:"categoryId,omitempty"`
	Category   *Category `json:"category,omitempty"`
}

// Category is a named grouping of works, used for filtering.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CategoryByID looks up a category in a known-category list.
func CategoryByID(categories []Category, id int64) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// ResolvedCategoryName returns the category name for a work, preferring the
// embedded category object and falling back to a lookup of the flat id against
// the known categories. Empty string means the category cannot be resolved;
// such works are excluded from every non-"all" filter.
func ResolvedCategoryName(w Work, categories []Category) string {
	if w.Category != nil {
		if w.Category.Name != "" {
			return w.Category.Name
		}
		if c, ok := CategoryByID(categories, w.Category.ID); ok {
			return c.Name
		}
	}
	if w.CategoryID != 0 {
		if c, ok := CategoryByID(categories, w.CategoryID); ok {
			return c.Name
		}
	}
	return ""
}

// NormalizeCategory guarantees w carries an embedded {id,name} category after a
// create, synthesizing it from the category the user selected when the server
// response omitted or truncated it.
func NormalizeCategory(w Work, selectedID int64, selectedName string, categories []Category) Work {
	if w.Category != nil && w.Category.ID != 0 && w.Category.Name != "" {
		return w
	}

	id := selectedID
	if w.Category != nil && w.Category.ID != 0 {
		id = w.Category.ID
	} else if w.CategoryID != 0 {
		id = w.CategoryID
	}

	name := ""
	if c, ok := CategoryByID(categories, id); ok {
		name = c.Name
	}
	if name == "" {
		name = selectedName
	}

	w.Category = &Category{ID: id, Name: name}
	w.CategoryID = id
	return w
}
