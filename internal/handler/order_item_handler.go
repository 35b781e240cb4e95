package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"shoporders/internal/service"
)

// OrderItemHandler handles order-item CRUD endpoints.
type OrderItemHandler struct {
	svc service.OrderItemService
}

// NewOrderItemHandler creates a new order-item handler.
func NewOrderItemHandler(svc service.OrderItemService) *OrderItemHandler {
	return &OrderItemHandler{svc: svc}
}

// CreateOrderItemRequest represents an order-item creation request.
type CreateOrderItemRequest struct {
	OrderID     uint            `json:"order_id" validate:"required"`
	ProductName string          `json:"product_name" validate:"required"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// CreateItem godoc
// @Summary Create order item
// @Tags order_items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateOrderItemRequest true "Order item payload"
// @Success 200 {object} model.OrderItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /order_items [post]
func (h *OrderItemHandler) CreateItem(c echo.Context) error {
	var req CreateOrderItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.svc.CreateItem(c.Request().Context(), req.OrderID, req.ProductName, req.Quantity, req.Price)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// ListItems godoc
// @Summary List order items, optionally filtered by order
// @Tags order_items
// @Produce json
// @Param order_id query int false "Filter by order ID"
// @Success 200 {array} model.OrderItem
// @Failure 500 {object} errors.ErrorResponse
// @Router /order_items [get]
func (h *OrderItemHandler) ListItems(c echo.Context) error {
	var orderID uint
	if raw := c.QueryParam("order_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid order_id")
		}
		orderID = uint(parsed)
	}

	items, err := h.svc.ListItems(c.Request().Context(), orderID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// GetItem godoc
// @Summary Get order item by id
// @Tags order_items
// @Produce json
// @Param id path int true "Order item ID"
// @Success 200 {object} model.OrderItem
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /order_items/{id} [get]
func (h *OrderItemHandler) GetItem(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	item, err := h.svc.GetItem(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// DeleteItem godoc
// @Summary Delete order item
// @Tags order_items
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order item ID"
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Success 200 {object} map[string]interface{}
// @Router /order_items/{id} [delete]
func (h *OrderItemHandler) DeleteItem(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	item, err := h.svc.DeleteItem(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "order item deleted",
		"item":    item,
	})
}
