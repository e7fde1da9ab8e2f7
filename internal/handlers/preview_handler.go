package handlers

import (
	"html/template"
	"net/http"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"walletview/internal/components"
	"walletview/internal/config"
	apperrors "walletview/internal/errors"
	"walletview/internal/models"
	"walletview/internal/services"
	"walletview/internal/theme"
)

// PreviewHandler renders each component in isolation with generated mock
// data. Fixed faker seed keeps the previews stable across reloads.
type PreviewHandler struct {
	renderer  *components.Renderer
	presenter services.PresenterServiceInterface
	ui        config.UIConfig
}

// NewPreviewHandler creates a new preview handler
func NewPreviewHandler(renderer *components.Renderer, presenter services.PresenterServiceInterface, ui config.UIConfig) *PreviewHandler {
	return &PreviewHandler{
		renderer:  renderer,
		presenter: presenter,
		ui:        ui,
	}
}

// RegisterRoutes wires the preview pages onto the router
func (h *PreviewHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/preview/:component", h.Preview)
}

type previewView struct {
	Component string
	Fragments []template.HTML
}

// Preview renders the named component's preview page.
func (h *PreviewHandler) Preview(c echo.Context) error {
	name := c.Param("component")

	var fragments []template.HTML
	var err error

	switch name {
	case "card":
		fragments, err = h.previewCard()
	case "tile":
		fragments, err = h.previewTile()
	case "selector":
		fragments, err = h.previewSelector()
	case "row":
		fragments, err = h.previewRow()
	case "group":
		fragments, err = h.previewGroup()
	default:
		return SendError(c, apperrors.ComponentUnknown, apperrors.WithDetails("component: "+name))
	}
	if err != nil {
		return SendSystemError(c, err)
	}

	page, err := h.renderer.Page("preview", previewView{
		Component: name,
		Fragments: fragments,
	})
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.HTML(http.StatusOK, string(page))
}

func (h *PreviewHandler) previewCard() ([]template.HTML, error) {
	static, err := h.renderer.Card(components.NewCard("<p>Static card content</p>"))
	if err != nil {
		return nil, err
	}
	tappable, err := h.renderer.Card(components.NewCard("<p>Tappable card content</p>").Tappable("/actions/send"))
	if err != nil {
		return nil, err
	}
	return []template.HTML{static, tappable}, nil
}

func (h *PreviewHandler) previewTile() ([]template.HTML, error) {
	tiles := []components.ActionTile{
		{Icon: "send", Label: "Send", Tint: theme.ColorAccent, IconColor: theme.ColorSurface, ActivateURL: "/actions/send"},
		{Icon: "request", Label: "Request", Tint: theme.ColorSuccess, IconColor: theme.ColorSurface, ActivateURL: "/actions/request"},
		{Icon: "scan", Label: "Scan", Tint: theme.ColorMuted, IconColor: theme.ColorSurface, ActivateURL: "/actions/scan", ReducedMotion: true},
	}

	fragments := make([]template.HTML, 0, len(tiles))
	for _, tile := range tiles {
		frag, err := h.renderer.ActionTile(tile)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, frag)
	}
	return fragments, nil
}

func (h *PreviewHandler) previewSelector() ([]template.HTML, error) {
	frag, err := h.renderer.CategorySelector(components.CategorySelector{
		Selected:  models.CategoryDining,
		ChangeURL: ChangeCategoryPath,
	})
	if err != nil {
		return nil, err
	}
	return []template.HTML{frag}, nil
}

func (h *PreviewHandler) previewRow() ([]template.HTML, error) {
	transactions := mockTransactions()

	fragments := make([]template.HTML, 0, len(transactions)+1)
	for _, tx := range transactions {
		frag, err := h.renderer.TransactionRow(h.presenter.Row(tx, transactionTapURL(tx.ID)))
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, frag)
	}

	// Inert variant: no tap URL supplied.
	inert, err := h.renderer.TransactionRow(h.presenter.Row(transactions[0], ""))
	if err != nil {
		return nil, err
	}
	return append(fragments, inert), nil
}

func (h *PreviewHandler) previewGroup() ([]template.HTML, error) {
	sections := h.presenter.Sections(mockTransactions(), transactionTapURL)

	fragments := make([]template.HTML, 0, len(sections)+1)
	for _, section := range sections {
		frag, err := h.renderer.TransactionGroup(section)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, frag)
	}

	empty, err := h.renderer.TransactionGroup(components.TransactionGroup{Title: "Empty section"})
	if err != nil {
		return nil, err
	}
	return append(fragments, empty), nil
}

// mockTransactions builds a small deterministic set covering both directions
// and every interesting status.
func mockTransactions() []models.Transaction {
	faker := gofakeit.New(7)
	now := time.Now()

	return []models.Transaction{
		{
			ID:       uuid.MustParse(faker.UUID()),
			Title:    "Whole Foods Market",
			Amount:   decimal.NewFromFloat(-84.20),
			Category: models.CategoryGroceries,
			Date:     now.Add(-1 * time.Hour),
			Status:   models.PaymentStatusCompleted,
		},
		{
			ID:       uuid.MustParse(faker.UUID()),
			Title:    "Payroll Deposit",
			Subtitle: faker.Company(),
			Amount:   decimal.NewFromFloat(5000.00),
			Category: models.CategoryIncome,
			Date:     now.Add(-5 * time.Hour),
			Status:   models.PaymentStatusCompleted,
		},
		{
			ID:        uuid.MustParse(faker.UUID()),
			Title:     "Netflix",
			Amount:    decimal.NewFromFloat(-15.99),
			Category:  models.CategoryEntertainment,
			Date:      now.Add(-26 * time.Hour),
			Recurring: true,
			Status:    models.PaymentStatusPending,
		},
	}
}
