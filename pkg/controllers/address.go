package controllers

import (
	"net/http"

	"fakeshop-io/api/pkg/models"
	"fakeshop-io/api/pkg/services"
	"fakeshop-io/api/pkg/util"

	"github.com/gin-gonic/gin"
)

type AddressController struct {
	addressService services.AddressService
}

func InitAddressController(addressService services.AddressService) *AddressController {
	return &AddressController{
		addressService: addressService,
	}
}

func (ac *AddressController) CreateAddress(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	userID, ok := ValidateAndGetUserID(c)
	if !ok {
		return
	}

	var req models.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	addressID, err := ac.addressService.CreateAddress(ctx, userID, req)
	if err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusCreated, "Address created successfully", addressID)
}

func (ac *AddressController) GetAddresses(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	userID, ok := ValidateAndGetUserID(c)
	if !ok {
		return
	}

	addresses, err := ac.addressService.GetAddresses(ctx, userID)
	if err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "success", addresses)
}

func (ac *AddressController) GetAddress(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	userID, ok := ValidateAndGetUserID(c)
	if !ok {
		return
	}

	addressID, ok := ObjectIDParam(c, "addressId")
	if !ok {
		return
	}

	address, err := ac.addressService.GetAddress(ctx, userID, addressID)
	if err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "success", address)
}

func (ac *AddressController) UpdateAddress(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	userID, ok := ValidateAndGetUserID(c)
	if !ok {
		return
	}

	addressID, ok := ObjectIDParam(c, "addressId")
	if !ok {
		return
	}

	var req models.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	if err := ac.addressService.UpdateAddress(ctx, userID, addressID, req); err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Address updated successfully", addressID)
}

func (ac *AddressController) ChangeDefaultAddress(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	userID, ok := ValidateAndGetUserID(c)
	if !ok {
		return
	}

	addressID, ok := ObjectIDParam(c, "addressId")
	if !ok {
		return
	}

	if err := ac.addressService.ChangeDefaultAddress(ctx, userID, addressID); err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Default address changed successfully", addressID)
}

func (ac *AddressController) DeleteAddress(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	userID, ok := ValidateAndGetUserID(c)
	if !ok {
		return
	}

	addressID, ok := ObjectIDParam(c, "addressId")
	if !ok {
		return
	}

	if err := ac.addressService.DeleteAddress(ctx, userID, addressID); err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Address deleted successfully", addressID)
}
