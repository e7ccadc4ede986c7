package container

import (
	"fakeshop-io/api/pkg/controllers"
	"fakeshop-io/api/pkg/services"
	"fakeshop-io/api/pkg/util"

	"go.mongodb.org/mongo-driver/mongo"
)

type ServiceContainer struct {
	EmailService    services.EmailService
	UserService     services.UserService
	AdminService    services.AdminService
	CategoryService services.CategoryService
	ProductService  services.ProductService
	CartService     services.CartService
	AddressService  services.AddressService

	UserController     *controllers.UserController
	AdminController    *controllers.AdminController
	CategoryController *controllers.CategoryController
	ProductController  *controllers.ProductController
	CartController     *controllers.CartController
	AddressController  *controllers.AddressController
}

func NewServiceContainer(db *mongo.Database, mailer *util.Mailer) *ServiceContainer {
	emailService := services.NewEmailService(mailer)
	userService := services.NewUserService(db, emailService)
	adminService := services.NewAdminService(db)
	categoryService := services.NewCategoryService(db)
	productService := services.NewProductService(db)
	cartService := services.NewCartService(db)
	addressService := services.NewAddressService(db)

	return &ServiceContainer{
		EmailService:    emailService,
		UserService:     userService,
		AdminService:    adminService,
		CategoryService: categoryService,
		ProductService:  productService,
		CartService:     cartService,
		AddressService:  addressService,

		UserController:     controllers.InitUserController(userService),
		AdminController:    controllers.InitAdminController(adminService),
		CategoryController: controllers.InitCategoryController(categoryService),
		ProductController:  controllers.InitProductController(productService),
		CartController:     controllers.InitCartController(cartService),
		AddressController:  controllers.InitAddressController(addressService),
	}
}
