package controllers

import (
	"net/http"
	"strconv"

	"fakeshop-io/api/internal/common"
	"fakeshop-io/api/pkg/models"
	"fakeshop-io/api/pkg/services"
	"fakeshop-io/api/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type ProductController struct {
	productService services.ProductService
}

func InitProductController(productService services.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	productID, err := pc.productService.CreateProduct(ctx, req)
	if err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusCreated, "Product created successfully", productID)
}

func (pc *ProductController) GetProduct(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	productID, ok := ObjectIDParam(c, "productId")
	if !ok {
		return
	}

	product, err := pc.productService.GetProduct(ctx, productID)
	if err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "success", product)
}

// GetProducts lists the catalog with optional category, brand and price
// filters. Page numbering is one-based.
func (pc *ProductController) GetProducts(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(common.DEFAULT_PAGE_LIMIT)))
	if limit < 1 {
		limit = common.DEFAULT_PAGE_LIMIT
	}
	minPrice, _ := strconv.ParseFloat(c.DefaultQuery("minPrice", "0"), 64)
	maxPrice, _ := strconv.ParseFloat(c.DefaultQuery("maxPrice", "0"), 64)

	filter := services.ProductFilter{
		Category: c.Query("category"),
		Brand:    c.Query("brand"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Page:     page,
	}
	pagination := util.PaginationArgs{
		Limit: limit,
		Skip:  (page - 1) * limit,
		Sort:  c.DefaultQuery("sort", "created_at_desc"),
	}

	productPage, err := pc.productService.GetProducts(ctx, filter, pagination)
	if err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "success", productPage)
}

func (pc *ProductController) UpdateProduct(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	productID, ok := ObjectIDParam(c, "productId")
	if !ok {
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	if err := pc.productService.UpdateProduct(ctx, productID, req); err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Product updated successfully", productID)
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	productID, ok := ObjectIDParam(c, "productId")
	if !ok {
		return
	}

	if err := pc.productService.DeleteProduct(ctx, productID); err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Product deleted successfully", productID)
}

// UploadProductImage accepts a multipart image and hosts it for the product.
func (pc *ProductController) UploadProductImage(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	productID, ok := ObjectIDParam(c, "productId")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}
	defer file.Close()

	imageURL, err := pc.productService.UploadProductImage(ctx, productID, file)
	if err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Product image uploaded successfully", imageURL)
}

func (pc *ProductController) DeleteProductImage(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	productID, ok := ObjectIDParam(c, "productId")
	if !ok {
		return
	}

	imageURL := c.Query("url")
	if common.IsEmptyString(imageURL) {
		util.HandleError(c, http.StatusBadRequest, errors.New("image url is required"))
		return
	}

	if err := pc.productService.DeleteProductImage(ctx, productID, imageURL); err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Product image deleted successfully", productID)
}

func (pc *ProductController) GetFeaturedProducts(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(common.DEFAULT_PAGE_LIMIT)))
	products, err := pc.productService.GetFeaturedProducts(ctx, limit)
	if err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "success", products)
}

func (pc *ProductController) GetBestSellers(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(common.DEFAULT_PAGE_LIMIT)))
	products, err := pc.productService.GetBestSellers(ctx, limit)
	if err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "success", products)
}

func (pc *ProductController) SearchProducts(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	query := c.Query("q")
	if common.IsEmptyString(query) {
		util.HandleError(c, http.StatusBadRequest, errors.New("search query is required"))
		return
	}

	paginationArgs := GetPaginationArgs(c)
	products, count, err := pc.productService.SearchProducts(ctx, query, paginationArgs)
	if err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccessMeta(c, http.StatusOK, "success", products, gin.H{
		"pagination": util.Pagination{
			Limit: paginationArgs.Limit,
			Skip:  paginationArgs.Skip,
			Count: count,
		},
	})
}

func (pc *ProductController) CreateCustomizedProduct(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	userID, ok := ValidateAndGetUserID(c)
	if !ok {
		return
	}

	var req models.CustomizedProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	customizedID, err := pc.productService.CreateCustomizedProduct(ctx, userID, req)
	if err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusCreated, "Customized product created successfully", customizedID)
}

func (pc *ProductController) GetCustomizedProducts(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	userID, ok := ValidateAndGetUserID(c)
	if !ok {
		return
	}

	customized, err := pc.productService.GetCustomizedProducts(ctx, userID)
	if err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "success", customized)
}
