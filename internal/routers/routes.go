package routers

import (
	"fakeshop-io/api/internal/container"
	"fakeshop-io/api/internal/middleware"
	"fakeshop-io/api/pkg/controllers"
	"fakeshop-io/api/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// InitRoute creates the Gin router wired to the service layer.
func InitRoute(db *mongo.Database, redisClient *redis.Client, mailer *util.Mailer) *gin.Engine {
	sc := container.NewServiceContainer(db, mailer)
	router := gin.Default()
	router.Use(middleware.CorsMiddleware())

	api := router.Group("/api", middleware.RateLimiter(redisClient))
	{
		api.GET("/ping", controllers.Ping)

		userRoutes(api, sc)
		categoryRoutes(api, sc)
		productRoutes(api, sc)
		cartRoutes(api, sc)
		addressRoutes(api, sc)
		adminRoutes(api, sc)
	}

	return router
}

func userRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	user := api.Group("/users")

	user.POST("/register", sc.UserController.Register)
	user.POST("/verify-otp", sc.UserController.VerifyOTP)
	user.POST("/resend-otp", sc.UserController.ResendOTP)
	user.POST("/login", sc.UserController.Login)
	user.PUT("/refresh-token", sc.UserController.RefreshSession)
	user.DELETE("/logout", sc.UserController.Logout)
	user.POST("/forgot-password", sc.UserController.ForgotPassword)
	user.PUT("/reset-password/:token", sc.UserController.ResetPassword)

	secured := user.Group("").Use(middleware.Auth())
	secured.GET("/profile", sc.UserController.GetProfile)
	secured.PUT("/profile", sc.UserController.UpdateProfile)
	secured.PUT("/change-password", sc.UserController.ChangePassword)

	secured.GET("/wishlist", sc.UserController.GetWishlist)
	secured.POST("/wishlist", sc.UserController.ToggleWishlistItem)
}

func categoryRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	category := api.Group("/categories")

	category.GET("", sc.CategoryController.GetAllCategories)
	category.GET("/parent/:parentId", sc.CategoryController.GetParentWithChildren)
	category.GET("/:categoryId", sc.CategoryController.GetCategory)

	admin := category.Group("").Use(middleware.Auth(), middleware.AdminOnly())
	admin.POST("", sc.CategoryController.CreateCategoryTree)
	admin.PUT("/:categoryId", sc.CategoryController.UpdateCategory)
	admin.DELETE("/:categoryId", sc.CategoryController.DeleteCategory)
}

func productRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	product := api.Group("/products")

	product.GET("", sc.ProductController.GetProducts)
	product.GET("/featured", sc.ProductController.GetFeaturedProducts)
	product.GET("/best-sellers", sc.ProductController.GetBestSellers)
	product.GET("/search", sc.ProductController.SearchProducts)
	product.GET("/:productId", sc.ProductController.GetProduct)

	secured := product.Group("").Use(middleware.Auth())
	secured.POST("/customized", sc.ProductController.CreateCustomizedProduct)
	secured.GET("/customized/mine", sc.ProductController.GetCustomizedProducts)

	admin := product.Group("").Use(middleware.Auth(), middleware.AdminOnly())
	admin.POST("", sc.ProductController.CreateProduct)
	admin.PUT("/:productId", sc.ProductController.UpdateProduct)
	admin.DELETE("/:productId", sc.ProductController.DeleteProduct)
	admin.POST("/:productId/images", sc.ProductController.UploadProductImage)
	admin.DELETE("/:productId/images", sc.ProductController.DeleteProductImage)
}

func cartRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	cart := api.Group("/cart").Use(middleware.Auth())

	cart.GET("", sc.CartController.GetCart)
	cart.POST("", sc.CartController.UpsertCartItem)
	cart.DELETE("/items/:productId", sc.CartController.RemoveCartItem)
	cart.DELETE("", sc.CartController.ClearCart)
}

func addressRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	address := api.Group("/addresses").Use(middleware.Auth())

	address.POST("", sc.AddressController.CreateAddress)
	address.GET("", sc.AddressController.GetAddresses)
	address.GET("/:addressId", sc.AddressController.GetAddress)
	address.PUT("/:addressId", sc.AddressController.UpdateAddress)
	address.PUT("/:addressId/default", sc.AddressController.ChangeDefaultAddress)
	address.DELETE("/:addressId", sc.AddressController.DeleteAddress)
}

func adminRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	admin := api.Group("/admin")

	admin.POST("/register", sc.AdminController.Register)
	admin.POST("/login", sc.AdminController.Login)
	admin.DELETE("/logout", sc.AdminController.Logout)

	secured := admin.Group("").Use(middleware.Auth(), middleware.AdminOnly())
	secured.GET("/users", sc.UserController.GetUsers)
	secured.GET("/users/:userId", sc.UserController.GetUser)
	secured.PUT("/users/:userId/block", sc.UserController.BlockUser)
	secured.PUT("/users/:userId/unblock", sc.UserController.UnblockUser)
	secured.DELETE("/users/:userId", sc.UserController.DeleteUser)
}
