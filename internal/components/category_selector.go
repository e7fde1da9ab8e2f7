package components

import (
	"html/template"

	"walletview/internal/models"
	"walletview/internal/theme"
)

// CategorySelector renders the bound category as a tinted circular chip and a
// menu listing every category variant. Selecting an entry posts the new value
// to ChangeURL; the caller owns the value and re-renders with the selection.
type CategorySelector struct {
	Selected  models.Category
	ChangeURL string
}

// CategoryOption is one selectable entry in the menu.
type CategoryOption struct {
	Value   string
	Label   string
	Icon    string
	Color   theme.Color
	Checked bool
}

type categorySelectorView struct {
	Selected  CategoryOption
	Options   []CategoryOption
	ChangeURL string
}

// CategorySelector renders the selector. The menu contains exactly one entry
// per category variant with a checkmark on the currently bound one.
func (r *Renderer) CategorySelector(sel CategorySelector) (template.HTML, error) {
	view := categorySelectorView{
		Selected:  optionFor(sel.Selected, true),
		ChangeURL: sel.ChangeURL,
	}

	for _, cat := range models.AllCategories() {
		view.Options = append(view.Options, optionFor(cat, cat == sel.Selected))
	}

	return r.execute("category_selector", view)
}

func optionFor(cat models.Category, checked bool) CategoryOption {
	return CategoryOption{
		Value:   string(cat),
		Label:   cat.Label(),
		Icon:    cat.Icon(),
		Color:   cat.Color(),
		Checked: checked,
	}
}
