package services

import (
	"testing"

	"fakeshop-io/api/internal/common"
	"fakeshop-io/api/pkg/models"
)

func nestedNodes(depth int) []models.CategoryNode {
	node := models.CategoryNode{Name: "leaf", Level: depth}
	for i := depth - 1; i >= 1; i-- {
		node = models.CategoryNode{Name: "branch", Level: i, Children: []models.CategoryNode{node}}
	}
	return []models.CategoryNode{node}
}

func TestValidateCategoryNodes(t *testing.T) {
	nodes := []models.CategoryNode{
		{
			Name:  "Clothing",
			Level: 1,
			Children: []models.CategoryNode{
				{Name: "Men", Level: 2},
				{Name: "Women", Level: 2, Children: []models.CategoryNode{
					{Name: "Dresses", Level: 3},
				}},
			},
		},
	}

	if err := validateCategoryNodes(nodes, 1); err != nil {
		t.Fatal(err)
	}
}

func TestValidateCategoryNodesRejectsEmptyName(t *testing.T) {
	nodes := []models.CategoryNode{
		{Name: "Clothing", Level: 1, Children: []models.CategoryNode{
			{Name: "   ", Level: 2},
		}},
	}

	if err := validateCategoryNodes(nodes, 1); err != ErrCategoryNameRequired {
		t.Fatalf("want ErrCategoryNameRequired, got %v", err)
	}
}

func TestValidateCategoryNodesDepthBound(t *testing.T) {
	if err := validateCategoryNodes(nestedNodes(common.MAX_CATEGORY_DEPTH), 1); err != nil {
		t.Fatalf("tree at the depth limit should pass, got %v", err)
	}

	if err := validateCategoryNodes(nestedNodes(common.MAX_CATEGORY_DEPTH+1), 1); err != ErrTreeTooDeep {
		t.Fatalf("want ErrTreeTooDeep, got %v", err)
	}
}

func TestCountCategoryNodes(t *testing.T) {
	nodes := []models.CategoryNode{
		{Name: "A", Children: []models.CategoryNode{
			{Name: "B"},
			{Name: "C", Children: []models.CategoryNode{{Name: "D"}}},
		}},
		{Name: "E"},
	}

	if got := countCategoryNodes(nodes); got != 5 {
		t.Fatalf("want 5, got %d", got)
	}
	if got := countCategoryNodes(nil); got != 0 {
		t.Fatalf("want 0 for empty forest, got %d", got)
	}
}
