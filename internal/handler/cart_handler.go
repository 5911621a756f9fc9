package handler

import (
	"errors"
	"net/http"

	"storefront-service/internal/cart"
	"storefront-service/internal/model"
	"storefront-service/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CartResponse is a cart with its derived totals
type CartResponse struct {
	ID         string           `json:"id"`
	Items      []model.CartItem `json:"items"`
	TotalCount int              `json:"totalCount"`
	TotalPrice int              `json:"totalPrice"`
}

// AddItemRequest is the body of POST /api/carts/:cartID/items
type AddItemRequest struct {
	ProductID string `json:"productId"`
}

// SetQuantityRequest is the body of PUT /api/carts/:cartID/items/:productID
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// AddItemResponse reports the touched line and the cart after the add
type AddItemResponse struct {
	cart.AddResult
	Cart CartResponse `json:"cart"`
}

func cartResponse(id string, s *cart.Store) CartResponse {
	items := s.Items()
	if items == nil {
		items = []model.CartItem{}
	}
	return CartResponse{ID: id, Items: items, TotalCount: s.TotalCount(), TotalPrice: s.TotalPrice()}
}

// lookupCart resolves :cartID. Ids are uuids handed out by CreateCart.
func (h *Handler) lookupCart(c echo.Context) (string, *cart.Store, error) {
	id := c.Param("cartID")
	if _, err := uuid.Parse(id); err != nil {
		logger.FromEcho(c).Warn("Invalid cart id", zap.String("cart_id", id))
		return "", nil, errorJSON(c, http.StatusBadRequest, "Invalid cart id")
	}
	return id, h.Carts.Get(requestContext(c), id), nil
}

// CreateCart handles POST /api/carts
func (h *Handler) CreateCart(c echo.Context) error {
	id, s := h.Carts.Create(requestContext(c))
	logger.FromEcho(c).Info("Cart created", zap.String("cart_id", id))
	return c.JSON(http.StatusCreated, cartResponse(id, s))
}

// GetCart handles GET /api/carts/:cartID
func (h *Handler) GetCart(c echo.Context) error {
	id, s, err := h.lookupCart(c)
	if s == nil {
		return err
	}
	return c.JSON(http.StatusOK, cartResponse(id, s))
}

// AddCartItem handles POST /api/carts/:cartID/items
func (h *Handler) AddCartItem(c echo.Context) error {
	log := logger.FromEcho(c)

	id, s, err := h.lookupCart(c)
	if s == nil {
		return err
	}

	var req AddItemRequest
	if err := c.Bind(&req); err != nil || req.ProductID == "" {
		log.Warn("Invalid add to cart request", zap.Error(err))
		return errorJSON(c, http.StatusBadRequest, "productId is required")
	}

	p, err := h.Catalog.Get(req.ProductID)
	if err != nil {
		return errorJSON(c, http.StatusNotFound, "Product not found")
	}

	res := s.AddToCart(requestContext(c), p)
	log.Info("Added to cart",
		zap.String("cart_id", id),
		zap.String("product_id", p.ID),
		zap.Int("quantity", res.Item.Quantity))

	return c.JSON(http.StatusOK, AddItemResponse{AddResult: res, Cart: cartResponse(id, s)})
}

// SetCartItemQuantity handles PUT /api/carts/:cartID/items/:productID
func (h *Handler) SetCartItemQuantity(c echo.Context) error {
	id, s, err := h.lookupCart(c)
	if s == nil {
		return err
	}

	var req SetQuantityRequest
	if err := c.Bind(&req); err != nil {
		logger.FromEcho(c).Warn("Invalid quantity request", zap.Error(err))
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	if _, err := s.SetQuantity(requestContext(c), c.Param("productID"), req.Quantity); err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			return errorJSON(c, http.StatusNotFound, "Item not in cart")
		}
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, cartResponse(id, s))
}

// RemoveCartItem handles DELETE /api/carts/:cartID/items/:productID.
// Removing an absent line succeeds and leaves the cart unchanged.
func (h *Handler) RemoveCartItem(c echo.Context) error {
	id, s, err := h.lookupCart(c)
	if s == nil {
		return err
	}
	s.Remove(requestContext(c), c.Param("productID"))
	return c.JSON(http.StatusOK, cartResponse(id, s))
}
