// Package user exposes registration, lookup and wallet credit over HTTP.
package user

import (
	"net/http"
	"strconv"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/api/ctxutil"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/api/response"
	userapp "github.com/BoobaLeBricoleur/LaCantiniere-sub001/application/user"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	userService *userapp.ApplicationService
}

func NewController(userService *userapp.ApplicationService) *Controller {
	return &Controller{
		userService: userService,
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	userGroup := router.Group("/users")
	{
		userGroup.POST("", c.Register)
		userGroup.GET("/:id", c.GetUser)
		userGroup.POST("/:id/credit", c.CreditWallet)
	}
}

// Register creates a user with an empty wallet.
// POST /api/v1/users
func (c *Controller) Register(ctx *gin.Context) {
	var req userapp.RegisterUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	user, err := c.userService.Register(ctxutil.WithRequestID(ctx), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, user, "user registered successfully")
}

// GetUser returns one user by ID.
// GET /api/v1/users/:id
func (c *Controller) GetUser(ctx *gin.Context) {
	userID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		response.HandleError(ctx, err, "user ID must be an integer", http.StatusBadRequest)
		return
	}

	user, err := c.userService.GetUser(ctxutil.WithRequestID(ctx), userID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, user, "user retrieved successfully")
}

type creditWalletBody struct {
	Amount string `json:"amount" binding:"required"`
}

// CreditWallet tops up the user's wallet.
// POST /api/v1/users/:id/credit
func (c *Controller) CreditWallet(ctx *gin.Context) {
	userID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		response.HandleError(ctx, err, "user ID must be an integer", http.StatusBadRequest)
		return
	}

	var body creditWalletBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	user, err := c.userService.Credit(ctxutil.WithRequestID(ctx), userapp.CreditWalletRequest{
		UserID: userID,
		Amount: body.Amount,
	})
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, user, "wallet credited successfully")
}
