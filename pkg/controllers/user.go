package controllers

import (
	"net/http"

	"fakeshop-io/api/internal/auth"
	"fakeshop-io/api/pkg/models"
	"fakeshop-io/api/pkg/services"
	"fakeshop-io/api/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

const refreshCookieName = "refresh_token"

type UserController struct {
	userService services.UserService
}

func InitUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Register creates an account and triggers the verification passcode email.
func (uc *UserController) Register(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	userID, err := uc.userService.CreateUser(ctx, req)
	if err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusCreated, "Account created, check your email for the verification code", userID)
}

func (uc *UserController) VerifyOTP(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	var req models.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	if err := uc.userService.VerifyOTP(ctx, req); err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Account verified successfully", nil)
}

func (uc *UserController) ResendOTP(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	var req models.ResendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	if err := uc.userService.ResendOTP(ctx, req); err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Verification code resent", nil)
}

// Login exchanges credentials for an access token and sets the refresh
// token cookie.
func (uc *UserController) Login(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	user, err := uc.userService.AuthenticateUser(ctx, req)
	if err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	accessToken, expiresAt, err := auth.GenerateJWT(user.Id.Hex(), user.Email, user.IsAdmin)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	refreshToken, err := auth.GenerateRefreshJWT(user.Id.Hex(), user.Email, user.IsAdmin)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}
	if err := uc.userService.SaveRefreshToken(ctx, user.Id, refreshToken); err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	setRefreshCookie(c, refreshToken)

	util.HandleSuccess(c, http.StatusOK, "Logged in successfully", models.LoginResponse{
		User:        user.View(),
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	})
}

// RefreshSession redeems the refresh cookie for a fresh access token.
func (uc *UserController) RefreshSession(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	refreshToken, err := c.Cookie(refreshCookieName)
	if err != nil {
		util.HandleError(c, http.StatusUnauthorized, errors.New("no refresh token cookie"))
		return
	}

	user, err := uc.userService.RefreshSession(ctx, refreshToken)
	if err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	accessToken, expiresAt, err := auth.GenerateJWT(user.Id.Hex(), user.Email, user.IsAdmin)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Session refreshed", models.LoginResponse{
		User:        user.View(),
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	})
}

func (uc *UserController) Logout(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	refreshToken, _ := c.Cookie(refreshCookieName)
	if err := uc.userService.Logout(ctx, refreshToken); err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	clearRefreshCookie(c)
	util.HandleSuccess(c, http.StatusOK, "Logged out successfully", nil)
}

func (uc *UserController) GetProfile(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	userID, ok := ValidateAndGetUserID(c)
	if !ok {
		return
	}

	user, err := uc.userService.GetUserByID(ctx, userID)
	if err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "success", user.View())
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	userID, ok := ValidateAndGetUserID(c)
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	if err := uc.userService.UpdateUserProfile(ctx, userID, req); err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Profile updated successfully", userID)
}

func (uc *UserController) ChangePassword(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	userID, ok := ValidateAndGetUserID(c)
	if !ok {
		return
	}

	var req models.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	if err := uc.userService.ChangePassword(ctx, userID, req); err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Password changed successfully", nil)
}

// ForgotPassword always reports success so the endpoint does not reveal
// whether an email address has an account.
func (uc *UserController) ForgotPassword(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	if _, err := uc.userService.ForgotPassword(ctx, req.Email); err != nil {
		if !errors.Is(err, services.ErrUserNotFound) {
			util.HandleError(c, StatusForError(err), err)
			return
		}
	}

	util.HandleSuccess(c, http.StatusOK, "If the email is registered, a reset link has been sent", nil)
}

func (uc *UserController) ResetPassword(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	token := c.Param("token")

	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	if err := uc.userService.ResetPassword(ctx, token, req.Password); err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Password reset successfully", nil)
}

// ToggleWishlistItem adds or removes a product from the caller's wishlist.
func (uc *UserController) ToggleWishlistItem(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	userID, ok := ValidateAndGetUserID(c)
	if !ok {
		return
	}

	var req models.WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	productID, err := primitiveObjectID(req.ProductId)
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	inWishlist, err := uc.userService.ToggleWishlistItem(ctx, userID, productID)
	if err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	message := "Product removed from wishlist"
	if inWishlist {
		message = "Product added to wishlist"
	}
	util.HandleSuccess(c, http.StatusOK, message, gin.H{"isInWishlist": inWishlist})
}

func (uc *UserController) GetWishlist(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	userID, ok := ValidateAndGetUserID(c)
	if !ok {
		return
	}

	products, err := uc.userService.GetWishlist(ctx, userID)
	if err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "success", products)
}

// Admin-facing user management

func (uc *UserController) GetUsers(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	paginationArgs := GetPaginationArgs(c)
	users, count, err := uc.userService.GetUsers(ctx, paginationArgs)
	if err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccessMeta(c, http.StatusOK, "success", users, gin.H{
		"pagination": util.Pagination{
			Limit: paginationArgs.Limit,
			Skip:  paginationArgs.Skip,
			Count: count,
		},
	})
}

func (uc *UserController) GetUser(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	userID, ok := ObjectIDParam(c, "userId")
	if !ok {
		return
	}

	user, err := uc.userService.GetUserByID(ctx, userID)
	if err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "success", user.View())
}

func (uc *UserController) BlockUser(c *gin.Context) {
	uc.setBlocked(c, true, "User blocked successfully")
}

func (uc *UserController) UnblockUser(c *gin.Context) {
	uc.setBlocked(c, false, "User unblocked successfully")
}

func (uc *UserController) setBlocked(c *gin.Context, blocked bool, message string) {
	ctx, cancel := WithTimeout()
	defer cancel()

	userID, ok := ObjectIDParam(c, "userId")
	if !ok {
		return
	}

	if err := uc.userService.SetUserBlocked(ctx, userID, blocked); err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, message, userID)
}

func (uc *UserController) DeleteUser(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	userID, ok := ObjectIDParam(c, "userId")
	if !ok {
		return
	}

	if err := uc.userService.DeleteUser(ctx, userID); err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "User deleted successfully", userID)
}
