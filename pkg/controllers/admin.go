package controllers

import (
	"net/http"

	"fakeshop-io/api/internal/auth"
	"fakeshop-io/api/pkg/models"
	"fakeshop-io/api/pkg/services"
	"fakeshop-io/api/pkg/util"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	adminService services.AdminService
}

func InitAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

func (ac *AdminController) Register(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	var req models.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	adminID, err := ac.adminService.CreateAdmin(ctx, req)
	if err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusCreated, "Admin account created successfully", adminID)
}

func (ac *AdminController) Login(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	admin, err := ac.adminService.AuthenticateAdmin(ctx, req)
	if err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	accessToken, expiresAt, err := auth.GenerateJWT(admin.Id.Hex(), admin.Email, true)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	refreshToken, err := auth.GenerateRefreshJWT(admin.Id.Hex(), admin.Email, true)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}
	if err := ac.adminService.SaveRefreshToken(ctx, admin.Id, refreshToken); err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	setRefreshCookie(c, refreshToken)

	util.HandleSuccess(c, http.StatusOK, "Logged in successfully", models.AdminLoginResponse{
		Admin:       admin.View(),
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	})
}

func (ac *AdminController) Logout(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	refreshToken, _ := c.Cookie(refreshCookieName)
	if err := ac.adminService.Logout(ctx, refreshToken); err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	clearRefreshCookie(c)
	util.HandleSuccess(c, http.StatusOK, "Logged out successfully", nil)
}
