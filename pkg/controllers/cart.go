package controllers

import (
	"net/http"

	"fakeshop-io/api/pkg/models"
	"fakeshop-io/api/pkg/services"
	"fakeshop-io/api/pkg/util"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService services.CartService
}

func InitCartController(cartService services.CartService) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

// UpsertCartItem handles add, increment and decrement in one endpoint.
func (cc *CartController) UpsertCartItem(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	userID, ok := ValidateAndGetUserID(c)
	if !ok {
		return
	}

	var req models.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	item, err := cc.cartService.UpsertCartItem(ctx, userID, req)
	if err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Cart updated", item)
}

func (cc *CartController) GetCart(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	userID, ok := ValidateAndGetUserID(c)
	if !ok {
		return
	}

	cart, err := cc.cartService.GetCart(ctx, userID)
	if err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "success", cart)
}

func (cc *CartController) RemoveCartItem(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	userID, ok := ValidateAndGetUserID(c)
	if !ok {
		return
	}

	productID, ok := ObjectIDParam(c, "productId")
	if !ok {
		return
	}

	cart, err := cc.cartService.RemoveCartItem(ctx, userID, productID)
	if err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Cart item removed successfully", cart)
}

func (cc *CartController) ClearCart(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	userID, ok := ValidateAndGetUserID(c)
	if !ok {
		return
	}

	if err := cc.cartService.ClearCart(ctx, userID); err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Cart cleared successfully", nil)
}
