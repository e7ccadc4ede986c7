package services

import "github.com/pkg/errors"

// Sentinel errors shared across services. Controllers map these to HTTP
// status codes with errors.Is.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("email already registered")
	ErrUserBlocked       = errors.New("user is blocked")
	ErrUserNotVerified   = errors.New("user is not verified")
	ErrInvalidPassword   = errors.New("invalid credentials")
	ErrInvalidOTP        = errors.New("invalid or expired otp")
	ErrInvalidToken      = errors.New("invalid or expired token")
	ErrAdminNotFound     = errors.New("admin not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCartNotFound      = errors.New("cart not found")
	ErrCartItemNotFound  = errors.New("item not found in cart")
	ErrAddressNotFound   = errors.New("address not found")
	ErrInvalidProductID  = errors.New("invalid product id")
	ErrInvalidCategoryID = errors.New("invalid category id")

	ErrCategoryNameRequired = errors.New("category name is required")
	ErrInvalidAction        = errors.New("invalid cart action")
	ErrNegativeQuantity     = errors.New("quantity cannot go below zero")
	ErrCartConflict         = errors.New("cart was modified concurrently")
	ErrTreeTooDeep          = errors.New("category tree exceeds maximum depth")
)
