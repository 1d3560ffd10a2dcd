/*
Package order exposes the ordering workflow over HTTP.

Controllers only parse input and delegate; business errors flow back
through response.HandleAppError which classifies them and picks the
HTTP status.
*/
package order

import (
	"net/http"
	"strconv"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/api/ctxutil"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/api/response"
	orderapp "github.com/BoobaLeBricoleur/LaCantiniere-sub001/application/order"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/pkg/errors"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	orderService *orderapp.ApplicationService
}

func NewController(orderService *orderapp.ApplicationService) *Controller {
	return &Controller{
		orderService: orderService,
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	orderGroup := router.Group("/orders")
	{
		orderGroup.POST("", c.PlaceOrder)
		orderGroup.GET("/:id", c.GetOrder)
		orderGroup.PUT("/:id", c.UpdateOrder)
		orderGroup.PATCH("/:id/cancel", c.CancelOrder)
		orderGroup.PATCH("/:id/deliver", c.DeliverOrder)
		orderGroup.GET("/:id/price", c.ComputePrice)
		orderGroup.GET("/user/:userId", c.GetUserOrders)
		orderGroup.POST("/search", c.SearchOrders)
	}
}

// PlaceOrder places a new order.
// POST /api/v1/orders
func (c *Controller) PlaceOrder(ctx *gin.Context) {
	var req orderapp.PlaceOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	order, err := c.orderService.PlaceOrder(ctxutil.WithRequestID(ctx), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, order, "order placed successfully")
}

// GetOrder returns one order by ID.
// GET /api/v1/orders/:id
func (c *Controller) GetOrder(ctx *gin.Context) {
	orderID := ctx.Param("id")
	if orderID == "" {
		response.HandleError(ctx, errors.Parameter("order ID is required"), "order ID is required", http.StatusBadRequest)
		return
	}

	order, err := c.orderService.GetOrder(ctxutil.WithRequestID(ctx), orderID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, order, "order retrieved successfully")
}

// updateOrderBody is the body of an order update; the ID comes from the
// path.
type updateOrderBody struct {
	ConstraintID *int                       `json:"constraint_id"`
	Items        []orderapp.LineItemRequest `json:"items"`
}

// UpdateOrder replaces the line items of an order, re-running the
// availability and cutoff checks.
// PUT /api/v1/orders/:id
func (c *Controller) UpdateOrder(ctx *gin.Context) {
	orderID := ctx.Param("id")
	if orderID == "" {
		response.HandleError(ctx, errors.Parameter("order ID is required"), "order ID is required", http.StatusBadRequest)
		return
	}

	var body updateOrderBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	order, err := c.orderService.UpdateOrder(ctxutil.WithRequestID(ctx), orderapp.UpdateOrderRequest{
		OrderID:      orderID,
		ConstraintID: body.ConstraintID,
		Items:        body.Items,
	})
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, order, "order updated successfully")
}

// CancelOrder cancels a created order.
// PATCH /api/v1/orders/:id/cancel
func (c *Controller) CancelOrder(ctx *gin.Context) {
	orderID := ctx.Param("id")
	if orderID == "" {
		response.HandleError(ctx, errors.Parameter("order ID is required"), "order ID is required", http.StatusBadRequest)
		return
	}

	order, err := c.orderService.CancelOrder(ctxutil.WithRequestID(ctx), orderID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, order, "order canceled successfully")
}

type deliverOrderBody struct {
	ConstraintID *int `json:"constraint_id"`
}

// DeliverOrder marks an order delivered, pricing it at delivery time
// and debiting the owner's wallet in the same transaction.
// PATCH /api/v1/orders/:id/deliver
func (c *Controller) DeliverOrder(ctx *gin.Context) {
	orderID := ctx.Param("id")
	if orderID == "" {
		response.HandleError(ctx, errors.Parameter("order ID is required"), "order ID is required", http.StatusBadRequest)
		return
	}

	var body deliverOrderBody
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&body); err != nil {
			response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
			return
		}
	}

	order, err := c.orderService.DeliverAndPay(ctxutil.WithRequestID(ctx), orderapp.DeliverOrderRequest{
		OrderID:      orderID,
		ConstraintID: body.ConstraintID,
	})
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, order, "order delivered successfully")
}

// ComputePrice quotes an order without changing it.
// GET /api/v1/orders/:id/price?constraint_id=1
func (c *Controller) ComputePrice(ctx *gin.Context) {
	orderID := ctx.Param("id")
	if orderID == "" {
		response.HandleError(ctx, errors.Parameter("order ID is required"), "order ID is required", http.StatusBadRequest)
		return
	}

	var constraintID *int
	if raw := ctx.Query("constraint_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.HandleError(ctx, err, "constraint_id must be an integer", http.StatusBadRequest)
			return
		}
		constraintID = &id
	}

	quote, err := c.orderService.ComputePrice(ctxutil.WithRequestID(ctx), orderID, constraintID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, quote, "order priced successfully")
}

// GetUserOrders lists one user's orders, newest first.
// GET /api/v1/orders/user/:userId
func (c *Controller) GetUserOrders(ctx *gin.Context) {
	userID, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil {
		response.HandleError(ctx, err, "user ID must be an integer", http.StatusBadRequest)
		return
	}

	orders, err := c.orderService.GetUserOrders(ctxutil.WithRequestID(ctx), userID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, orders, "user orders retrieved successfully")
}

// SearchOrders filters orders by user, status and placement window.
// POST /api/v1/orders/search
func (c *Controller) SearchOrders(ctx *gin.Context) {
	var req orderapp.SearchOrdersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	orders, err := c.orderService.SearchOrders(ctxutil.WithRequestID(ctx), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, orders, "orders retrieved successfully")
}
