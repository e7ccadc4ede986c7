package controllers

import (
	"context"
	"net/http"
	"strconv"

	"fakeshop-io/api/internal/auth"
	"fakeshop-io/api/internal/common"
	"fakeshop-io/api/pkg/services"
	"fakeshop-io/api/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WithTimeout creates a context with the standard request timeout
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
}

// CurrentUserID resolves the authenticated user from the bearer token.
func CurrentUserID(c *gin.Context) (primitive.ObjectID, error) {
	claim, err := auth.InitJwtClaim(c)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return claim.GetUserObjectId()
}

// ValidateAndGetUserID resolves the caller and handles errors automatically
func ValidateAndGetUserID(c *gin.Context) (primitive.ObjectID, bool) {
	userID, err := CurrentUserID(c)
	if err != nil {
		util.HandleError(c, http.StatusUnauthorized, err)
		return primitive.NilObjectID, false
	}
	return userID, true
}

// ObjectIDParam parses a hex object id from the named path parameter.
func ObjectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, errors.Errorf("invalid %s", name))
		return primitive.NilObjectID, false
	}
	return id, true
}

func GetPaginationArgs(c *gin.Context) util.PaginationArgs {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(common.DEFAULT_PAGE_LIMIT)))
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	sort := c.DefaultQuery("sort", "created_at_asc")

	return util.PaginationArgs{
		Limit: limit,
		Skip:  skip,
		Sort:  sort,
	}
}

func primitiveObjectID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, errors.New("invalid product id")
	}
	return id, nil
}

// setRefreshCookie installs the http-only refresh token cookie matching the
// refresh token lifetime.
func setRefreshCookie(c *gin.Context, token string) {
	c.SetCookie(refreshCookieName, token, int(auth.RefreshTokenExpirationTime.Seconds()), "/", "", false, true)
}

func clearRefreshCookie(c *gin.Context) {
	c.SetCookie(refreshCookieName, "", -1, "/", "", false, true)
}

// StatusForError maps service sentinel errors onto HTTP status codes.
// Anything unrecognized is treated as an internal error.
func StatusForError(err error) int {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusUnprocessableEntity
	}

	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrAdminNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrCartNotFound),
		errors.Is(err, services.ErrCartItemNotFound),
		errors.Is(err, services.ErrAddressNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, services.ErrCartConflict):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidPassword),
		errors.Is(err, services.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrUserBlocked),
		errors.Is(err, services.ErrUserNotVerified):
		return http.StatusForbidden
	case errors.Is(err, services.ErrInvalidAction),
		errors.Is(err, services.ErrNegativeQuantity),
		errors.Is(err, services.ErrInvalidOTP),
		errors.Is(err, services.ErrInvalidProductID),
		errors.Is(err, services.ErrInvalidCategoryID),
		errors.Is(err, services.ErrCategoryNameRequired),
		errors.Is(err, services.ErrTreeTooDeep):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
