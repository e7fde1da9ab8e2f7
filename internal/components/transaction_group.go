package components

import (
	"bytes"
	"html/template"
)

// DividerHTML separates consecutive rows inside a group. A group with N rows
// renders exactly N-1 dividers: none leading, none trailing.
const DividerHTML = `<hr class="divider">`

// TransactionGroup is a titled, card-backed sequence of transaction rows.
// An empty Rows slice renders the title plus an empty card carrying the
// placeholder text.
type TransactionGroup struct {
	Title     string
	Rows      []TransactionRow
	EmptyText string
}

type transactionGroupView struct {
	Title string
	Card  template.HTML
}

// TransactionGroup renders the section title followed by a card containing
// the rows divided by full-bleed separators.
func (r *Renderer) TransactionGroup(group TransactionGroup) (template.HTML, error) {
	var content bytes.Buffer

	for i, row := range group.Rows {
		if i > 0 {
			content.WriteString(DividerHTML)
		}
		frag, err := r.TransactionRow(row)
		if err != nil {
			return "", err
		}
		content.WriteString(string(frag))
	}

	if len(group.Rows) == 0 {
		empty := group.EmptyText
		if empty == "" {
			empty = "No transactions yet"
		}
		content.WriteString(`<p class="tx-empty font-caption">` + template.HTMLEscapeString(empty) + `</p>`)
	}

	card, err := r.Card(Card{
		Padding:      8,
		CornerRadius: DefaultCardCornerRadius,
		Content:      template.HTML(content.String()),
	})
	if err != nil {
		return "", err
	}

	return r.execute("transaction_group", transactionGroupView{
		Title: group.Title,
		Card:  card,
	})
}
