package services

import (
	"context"

	"fakeshop-io/api/pkg/models"
	"fakeshop-io/api/pkg/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryService defines the interface for category-related operations
type CategoryService interface {
	CreateCategoryTree(ctx context.Context, nodes []models.CategoryNode) ([]models.Category, error)
	GetCategories(ctx context.Context, pagination util.PaginationArgs) ([]models.Category, int64, error)
	GetCategory(ctx context.Context, categoryID primitive.ObjectID) (*models.Category, error)
	GetParentWithChildren(ctx context.Context, parentID primitive.ObjectID) (*models.ParentCategoryView, error)
	UpdateCategory(ctx context.Context, categoryID primitive.ObjectID, req models.UpdateCategoryRequest) error
	DeleteCategory(ctx context.Context, categoryID primitive.ObjectID) error
}

// ProductService defines the interface for catalog operations
type ProductService interface {
	CreateProduct(ctx context.Context, req models.CreateProductRequest) (primitive.ObjectID, error)
	GetProduct(ctx context.Context, productID primitive.ObjectID) (*models.Product, error)
	GetProducts(ctx context.Context, filter ProductFilter, pagination util.PaginationArgs) (*models.ProductPage, error)
	UpdateProduct(ctx context.Context, productID primitive.ObjectID, req models.UpdateProductRequest) error
	DeleteProduct(ctx context.Context, productID primitive.ObjectID) error

	UploadProductImage(ctx context.Context, productID primitive.ObjectID, file any) (string, error)
	DeleteProductImage(ctx context.Context, productID primitive.ObjectID, imageURL string) error

	GetFeaturedProducts(ctx context.Context, limit int) ([]models.Product, error)
	GetBestSellers(ctx context.Context, limit int) ([]models.Product, error)
	SearchProducts(ctx context.Context, query string, pagination util.PaginationArgs) ([]models.Product, int64, error)

	CreateCustomizedProduct(ctx context.Context, userID primitive.ObjectID, req models.CustomizedProductRequest) (primitive.ObjectID, error)
	GetCustomizedProducts(ctx context.Context, userID primitive.ObjectID) ([]models.CustomizedProduct, error)
}

// ProductFilter narrows catalog listings by category, brand and price range.
type ProductFilter struct {
	Category string
	Brand    string
	MinPrice float64
	MaxPrice float64
	Page     int
}

// CartService defines the interface for cart operations
type CartService interface {
	UpsertCartItem(ctx context.Context, userID primitive.ObjectID, req models.CartItemRequest) (*models.CartItemView, error)
	RemoveCartItem(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID) (*models.CartView, error)
	GetCart(ctx context.Context, userID primitive.ObjectID) (*models.CartView, error)
	ClearCart(ctx context.Context, userID primitive.ObjectID) error
}

// UserService defines the interface for user account operations
type UserService interface {
	CreateUser(ctx context.Context, req models.CreateUserRequest) (primitive.ObjectID, error)
	VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) error
	ResendOTP(ctx context.Context, req models.ResendOTPRequest) error
	AuthenticateUser(ctx context.Context, req models.LoginRequest) (*models.User, error)
	RefreshSession(ctx context.Context, refreshToken string) (*models.User, error)
	Logout(ctx context.Context, refreshToken string) error
	SaveRefreshToken(ctx context.Context, userID primitive.ObjectID, token string) error

	GetUserByID(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUsers(ctx context.Context, pagination util.PaginationArgs) ([]models.UserView, int64, error)
	UpdateUserProfile(ctx context.Context, userID primitive.ObjectID, req models.UpdateUserRequest) error
	SetUserBlocked(ctx context.Context, userID primitive.ObjectID, blocked bool) error
	DeleteUser(ctx context.Context, userID primitive.ObjectID) error

	ChangePassword(ctx context.Context, userID primitive.ObjectID, req models.UpdatePasswordRequest) error
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error

	ToggleWishlistItem(ctx context.Context, userID, productID primitive.ObjectID) (bool, error)
	GetWishlist(ctx context.Context, userID primitive.ObjectID) ([]models.Product, error)
}

// AdminService defines the interface for admin account operations
type AdminService interface {
	CreateAdmin(ctx context.Context, req models.CreateAdminRequest) (primitive.ObjectID, error)
	AuthenticateAdmin(ctx context.Context, req models.LoginRequest) (*models.Admin, error)
	SaveRefreshToken(ctx context.Context, adminID primitive.ObjectID, token string) error
	Logout(ctx context.Context, refreshToken string) error
	GetAdminByID(ctx context.Context, adminID primitive.ObjectID) (*models.Admin, error)
}

// AddressService defines the interface for user address operations
type AddressService interface {
	CreateAddress(ctx context.Context, userID primitive.ObjectID, req models.AddressRequest) (primitive.ObjectID, error)
	GetAddresses(ctx context.Context, userID primitive.ObjectID) ([]models.Address, error)
	GetAddress(ctx context.Context, userID, addressID primitive.ObjectID) (*models.Address, error)
	UpdateAddress(ctx context.Context, userID, addressID primitive.ObjectID, req models.UpdateAddressRequest) error
	ChangeDefaultAddress(ctx context.Context, userID, addressID primitive.ObjectID) error
	DeleteAddress(ctx context.Context, userID, addressID primitive.ObjectID) error
}

// EmailService defines the interface for transactional email operations
type EmailService interface {
	SendOTPEmail(email, firstName, otp string) error
	SendWelcomeEmail(email, firstName string) error
	SendPasswordResetEmail(email, firstName, link string) error
	SendPasswordResetSuccessfulEmail(email, firstName string) error
}
