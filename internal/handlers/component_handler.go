package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"walletview/internal/components"
	"walletview/internal/config"
	apperrors "walletview/internal/errors"
	"walletview/internal/feedback"
	"walletview/internal/models"
	"walletview/internal/repositories"
	"walletview/internal/services"
	"walletview/internal/theme"
	"walletview/internal/validation"
)

// Component endpoint paths.
const (
	FeedPath           = "/"
	ChangeCategoryPath = "/category"
)

// profileActions are the action tiles shown above the feed. The set is fixed;
// activating an unknown action is a client error.
var profileActions = map[string]struct {
	Icon  string
	Label string
}{
	"send":    {Icon: "send", Label: "Send"},
	"request": {Icon: "request", Label: "Request"},
	"scan":    {Icon: "scan", Label: "Scan"},
}

var profileActionOrder = []string{"send", "request", "scan"}

// ComponentHandler serves the activity feed page and the component endpoints
// its fragments post back to.
type ComponentHandler struct {
	repo      repositories.TransactionRepositoryInterface
	presenter services.PresenterServiceInterface
	renderer  *components.Renderer
	metrics   services.MetricsRecorderInterface
	ui        config.UIConfig
}

// NewComponentHandler creates a new component handler
func NewComponentHandler(
	repo repositories.TransactionRepositoryInterface,
	presenter services.PresenterServiceInterface,
	renderer *components.Renderer,
	metrics services.MetricsRecorderInterface,
	ui config.UIConfig,
) *ComponentHandler {
	return &ComponentHandler{
		repo:      repo,
		presenter: presenter,
		renderer:  renderer,
		metrics:   metrics,
		ui:        ui,
	}
}

// RegisterRoutes wires the component endpoints onto the router
func (h *ComponentHandler) RegisterRoutes(e *echo.Echo) {
	e.GET(FeedPath, h.Feed)
	e.POST(ChangeCategoryPath, h.ChangeCategory)
	e.POST("/transactions/:id/tap", h.TapTransaction)
	e.POST("/actions/:name", h.ActivateAction)
}

type feedView struct {
	Title         string
	Heading       string
	ReducedMotion bool
	Selector      template.HTML
	Tiles         []template.HTML
	Groups        []template.HTML
}

// Feed renders the full activity feed page: category selector, action tiles,
// and the transaction groups.
func (h *ComponentHandler) Feed(c echo.Context) error {
	start := time.Now()

	transactions, err := h.repo.ListRecent(h.ui.FeedLimit)
	if err != nil {
		return SendSystemError(c, err)
	}

	selected := models.CategoryOther
	if raw := c.QueryParam("category"); models.IsValidCategory(raw) {
		selected = models.Category(raw)
	}

	selector, err := h.renderer.CategorySelector(components.CategorySelector{
		Selected:  selected,
		ChangeURL: ChangeCategoryPath,
	})
	if err != nil {
		return SendSystemError(c, err)
	}

	tiles, err := h.renderTiles()
	if err != nil {
		return SendSystemError(c, err)
	}

	sections := h.presenter.Sections(transactions, transactionTapURL)
	groups := make([]template.HTML, 0, len(sections))
	for _, section := range sections {
		frag, err := h.renderer.TransactionGroup(section)
		if err != nil {
			return SendSystemError(c, err)
		}
		groups = append(groups, frag)
	}

	page, err := h.renderer.Page("feed", feedView{
		Title:         h.ui.AppName,
		Heading:       "Activity",
		ReducedMotion: h.ui.ReducedMotion,
		Selector:      selector,
		Tiles:         tiles,
		Groups:        groups,
	})
	if err != nil {
		return SendSystemError(c, err)
	}

	h.metrics.RecordRender("feed", time.Since(start))
	return c.HTML(http.StatusOK, string(page))
}

func (h *ComponentHandler) renderTiles() ([]template.HTML, error) {
	tiles := make([]template.HTML, 0, len(profileActionOrder))
	for _, name := range profileActionOrder {
		action := profileActions[name]
		frag, err := h.renderer.ActionTile(components.ActionTile{
			Icon:          action.Icon,
			Label:         action.Label,
			Tint:          theme.ColorAccent,
			IconColor:     theme.ColorSurface,
			ActivateURL:   "/actions/" + name,
			ReducedMotion: h.ui.ReducedMotion,
		})
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, frag)
	}
	return tiles, nil
}

func transactionTapURL(id uuid.UUID) string {
	return fmt.Sprintf("/transactions/%s/tap", id)
}

type changeCategoryRequest struct {
	Category string `form:"category" json:"category" validate:"required,category"`
}

// ChangeCategory handles a selection from the category menu: it re-renders
// the selector bound to the new value, fires the selection-changed trigger,
// and pulses a light haptic.
func (h *ComponentHandler) ChangeCategory(c echo.Context) error {
	var req changeCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("malformed request body"))
	}

	if fieldErrors := validation.GetValidator().ValidateStruct(req); fieldErrors != nil {
		if _, ok := fieldErrors["category"]; ok && req.Category != "" {
			return SendError(c, apperrors.CategoryInvalid, apperrors.WithDetails("category: "+req.Category))
		}
		traceID := getTraceID(c)
		return c.JSON(http.StatusBadRequest, apperrors.NewValidationError(fieldErrors, traceID))
	}

	fragment, err := h.renderer.CategorySelector(components.CategorySelector{
		Selected:  models.Category(req.Category),
		ChangeURL: ChangeCategoryPath,
	})
	if err != nil {
		return SendSystemError(c, err)
	}

	h.metrics.RecordActivation("category_selector", "changed")

	return feedback.New().
		Pulse(feedback.PulseLight).
		Trigger("category:changed", map[string]string{"category": req.Category}).
		HTML(fragment).
		Write(c)
}

// TapTransaction handles a tap on a feed row. The row's transaction identity
// travels to the client as a trigger event; the host page decides what to
// open.
func (h *ComponentHandler) TapTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apperrors.TransactionInvalidID)
	}

	transaction, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return SendError(c, apperrors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	h.metrics.RecordActivation("transaction_row", "tap")

	return feedback.New().
		Trigger("transaction:selected", map[string]string{
			"id":       transaction.ID.String(),
			"title":    transaction.Title,
			"amount":   transaction.Amount.StringFixed(2),
			"category": string(transaction.Category),
		}).
		Write(c)
}

// ActivateAction handles an action tile activation: medium haptic pulse, then
// the named activation event.
func (h *ComponentHandler) ActivateAction(c echo.Context) error {
	name := c.Param("name")
	if _, ok := profileActions[name]; !ok {
		return SendError(c, apperrors.ComponentUnknown, apperrors.WithDetails("action: "+name))
	}

	h.metrics.RecordActivation("action_tile", name)

	return feedback.New().
		Pulse(feedback.PulseMedium).
		Trigger("action:activated", map[string]string{"action": name}).
		Write(c)
}
