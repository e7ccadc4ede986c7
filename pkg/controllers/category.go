package controllers

import (
	"net/http"

	"fakeshop-io/api/pkg/models"
	"fakeshop-io/api/pkg/services"
	"fakeshop-io/api/pkg/util"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	categoryService services.CategoryService
}

func InitCategoryController(categoryService services.CategoryService) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

// CreateCategoryTree accepts a forest of category nodes and persists it.
// On a mid-tree failure the categories created so far are reported back.
func (cc *CategoryController) CreateCategoryTree(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	var nodes []models.CategoryNode
	if err := c.ShouldBindJSON(&nodes); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	created, err := cc.categoryService.CreateCategoryTree(ctx, nodes)
	if err != nil {
		status := StatusForError(err)
		if len(created) > 0 {
			util.HandleSuccessMeta(c, status, err.Error(), created, gin.H{"created": len(created)})
			return
		}
		util.HandleError(c, status, err)
		return
	}

	util.HandleSuccess(c, http.StatusCreated, "Categories created successfully", created)
}

func (cc *CategoryController) GetAllCategories(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	paginationArgs := GetPaginationArgs(c)
	categories, count, err := cc.categoryService.GetCategories(ctx, paginationArgs)
	if err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccessMeta(c, http.StatusOK, "success", categories, gin.H{
		"pagination": util.Pagination{
			Limit: paginationArgs.Limit,
			Skip:  paginationArgs.Skip,
			Count: count,
		},
	})
}

func (cc *CategoryController) GetCategory(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	categoryID, ok := ObjectIDParam(c, "categoryId")
	if !ok {
		return
	}

	category, err := cc.categoryService.GetCategory(ctx, categoryID)
	if err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "success", category)
}

// GetParentWithChildren returns the two levels below the given category.
func (cc *CategoryController) GetParentWithChildren(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	parentID, ok := ObjectIDParam(c, "parentId")
	if !ok {
		return
	}

	view, err := cc.categoryService.GetParentWithChildren(ctx, parentID)
	if err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "success", view)
}

func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	categoryID, ok := ObjectIDParam(c, "categoryId")
	if !ok {
		return
	}

	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	if err := cc.categoryService.UpdateCategory(ctx, categoryID, req); err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Category updated successfully", categoryID)
}

func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	categoryID, ok := ObjectIDParam(c, "categoryId")
	if !ok {
		return
	}

	if err := cc.categoryService.DeleteCategory(ctx, categoryID); err != nil {
		util.HandleError(c, StatusForError(err), err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Category deleted successfully", categoryID)
}
