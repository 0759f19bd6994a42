package controller

import (
	"net/http"
	"strconv"

	domainErrors "dress-catalogue/internal/domain/errors"
	"dress-catalogue/internal/interfaces/presenter"
	"dress-catalogue/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ItemHandler struct {
	itemUsecase usecase.ItemUsecase
	presenter   *presenter.ItemPresenter
}

func NewItemHandler(itemUsecase usecase.ItemUsecase, presenter *presenter.ItemPresenter) *ItemHandler {
	return &ItemHandler{
		itemUsecase: itemUsecase,
		presenter:   presenter,
	}
}

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func (h *ItemHandler) GetItems(c echo.Context) error {
	items, err := h.itemUsecase.GetAllItems(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to retrieve items",
		})
	}

	return c.JSON(http.StatusOK, h.presenter.Views(items))
}

func (h *ItemHandler) GetItem(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid item ID",
		})
	}

	item, err := h.itemUsecase.GetItemByID(c.Request().Context(), id)
	if err != nil {
		if domainErrors.IsNotFoundError(err) {
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "item not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to retrieve item",
		})
	}

	return c.JSON(http.StatusOK, h.presenter.View(item))
}

// RegisterInterest handles the public "Interested" action.
// POST /items/:id/interest
func (h *ItemHandler) RegisterInterest(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid item ID",
		})
	}

	item, err := h.itemUsecase.RegisterInterest(c.Request().Context(), id)
	if err != nil {
		if domainErrors.IsNotFoundError(err) {
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "item not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to register interest",
		})
	}

	return c.JSON(http.StatusOK, h.presenter.View(item))
}

func (h *ItemHandler) CreateItem(c echo.Context) error {
	var input usecase.CreateItemInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request format",
		})
	}

	if validationErrors := validateCreateItemInput(input); len(validationErrors) > 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: validationErrors,
		})
	}

	item, err := h.itemUsecase.CreateItem(c.Request().Context(), input)
	if err != nil {
		if domainErrors.IsValidationError(err) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "validation failed",
				Details: []string{err.Error()},
			})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to create item",
		})
	}

	return c.JSON(http.StatusCreated, h.presenter.View(item))
}

// UpdateItem handles partial updates.
// PATCH /items/:id — name, image_url, price, discount_percent, sold.
func (h *ItemHandler) UpdateItem(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid item ID",
		})
	}

	var input usecase.UpdateItemInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request format",
		})
	}

	item, err := h.itemUsecase.UpdateItem(c.Request().Context(), id, input)
	if err != nil {
		if domainErrors.IsNotFoundError(err) {
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "item not found",
			})
		}
		if domainErrors.IsValidationError(err) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "validation failed",
				Details: []string{err.Error()},
			})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to update item",
		})
	}

	return c.JSON(http.StatusOK, h.presenter.View(item))
}

func (h *ItemHandler) DeleteItem(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid item ID",
		})
	}

	err = h.itemUsecase.DeleteItem(c.Request().Context(), id)
	if err != nil {
		if domainErrors.IsNotFoundError(err) {
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "item not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to delete item",
		})
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *ItemHandler) GetSummary(c echo.Context) error {
	summary, err := h.itemUsecase.GetCatalogueSummary(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to retrieve summary",
		})
	}

	return c.JSON(http.StatusOK, summary)
}

func itemID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func validateCreateItemInput(input usecase.CreateItemInput) []string {
	var errs []string

	if input.Name == "" {
		errs = append(errs, "name is required")
	}
	if input.ImageURL == "" {
		errs = append(errs, "image_url is required")
	}
	if input.Price.IsNegative() {
		errs = append(errs, "price must be 0 or greater")
	}
	if input.DiscountPercent < 0 || input.DiscountPercent > 100 {
		errs = append(errs, "discount_percent must be between 0 and 100")
	}

	return errs
}
