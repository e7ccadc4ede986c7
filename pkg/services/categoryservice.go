package services

import (
	"context"
	"strings"
	"time"

	"fakeshop-io/api/internal/common"
	"fakeshop-io/api/pkg/models"
	"fakeshop-io/api/pkg/util"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CategoryServiceImpl implements the CategoryService interface
type CategoryServiceImpl struct {
	categoryCollection *mongo.Collection
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(db *mongo.Database) CategoryService {
	return &CategoryServiceImpl{
		categoryCollection: util.GetCollection(db, "Category"),
	}
}

// CreateCategoryTree persists a category forest in pre-order. Each node is
// inserted before its children so the parent id exists for the back-link.
// Inserts are sequential and not transactional: a mid-tree failure leaves
// the already inserted prefix in place.
func (cs *CategoryServiceImpl) CreateCategoryTree(ctx context.Context, nodes []models.CategoryNode) ([]models.Category, error) {
	if err := validateCategoryNodes(nodes, 1); err != nil {
		return nil, err
	}

	created := make([]models.Category, 0, countCategoryNodes(nodes))
	for _, node := range nodes {
		if err := cs.insertSubtree(ctx, node, nil, &created); err != nil {
			return created, err
		}
	}
	return created, nil
}

func (cs *CategoryServiceImpl) insertSubtree(ctx context.Context, node models.CategoryNode, parentID *primitive.ObjectID, created *[]models.Category) error {
	now := time.Now()

	category := models.Category{
		Id:             primitive.NewObjectID(),
		Name:           node.Name,
		Level:          node.Level,
		ParentCategory: parentID,
		CreatedAt:      now,
		ModifiedAt:     now,
	}

	if _, err := cs.categoryCollection.InsertOne(ctx, category); err != nil {
		return err
	}
	*created = append(*created, category)

	for _, child := range node.Children {
		if err := cs.insertSubtree(ctx, child, &category.Id, created); err != nil {
			return err
		}
	}
	return nil
}

// GetCategories returns a page of categories with the total count.
func (cs *CategoryServiceImpl) GetCategories(ctx context.Context, pagination util.PaginationArgs) ([]models.Category, int64, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetSkip(int64(pagination.Skip)).
		SetLimit(int64(pagination.Limit))

	cursor, err := cs.categoryCollection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	categories := make([]models.Category, 0)
	if err = cursor.All(ctx, &categories); err != nil {
		return nil, 0, err
	}

	count, err := cs.categoryCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	return categories, count, nil
}

func (cs *CategoryServiceImpl) GetCategory(ctx context.Context, categoryID primitive.ObjectID) (*models.Category, error) {
	var category models.Category
	err := cs.categoryCollection.FindOne(ctx, bson.M{"_id": categoryID}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// GetParentWithChildren returns the parent category, its direct children,
// and each child's own children in the level3 field. Expansion stops there
// regardless of how deep the stored tree goes.
func (cs *CategoryServiceImpl) GetParentWithChildren(ctx context.Context, parentID primitive.ObjectID) (*models.ParentCategoryView, error) {
	parent, err := cs.GetCategory(ctx, parentID)
	if err != nil {
		return nil, err
	}

	children, err := cs.findChildren(ctx, parent.Id)
	if err != nil {
		return nil, err
	}

	expanded := make([]models.CategoryWithLevel3, 0, len(children))
	for _, child := range children {
		level3, err := cs.findChildren(ctx, child.Id)
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, models.CategoryWithLevel3{Category: child, Level3: level3})
	}

	return &models.ParentCategoryView{
		ParentCategory:     *parent,
		ChildrenCategories: expanded,
	}, nil
}

func (cs *CategoryServiceImpl) findChildren(ctx context.Context, parentID primitive.ObjectID) ([]models.Category, error) {
	cursor, err := cs.categoryCollection.Find(ctx, bson.M{"parentCategory": parentID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	children := make([]models.Category, 0)
	if err = cursor.All(ctx, &children); err != nil {
		return nil, err
	}
	return children, nil
}

func (cs *CategoryServiceImpl) UpdateCategory(ctx context.Context, categoryID primitive.ObjectID, req models.UpdateCategoryRequest) error {
	set := bson.M{"modified_at": time.Now()}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Level != nil {
		set["level"] = *req.Level
	}

	result, err := cs.categoryCollection.UpdateOne(ctx, bson.M{"_id": categoryID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// DeleteCategory removes a single category. Children keep their parent
// reference and are pruned from parent views by the reader queries.
func (cs *CategoryServiceImpl) DeleteCategory(ctx context.Context, categoryID primitive.ObjectID) error {
	result, err := cs.categoryCollection.DeleteOne(ctx, bson.M{"_id": categoryID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// Helper functions

// validateCategoryNodes walks the forest before any insert happens so a
// malformed request never leaves a partial tree behind.
func validateCategoryNodes(nodes []models.CategoryNode, depth int) error {
	if len(nodes) == 0 {
		return nil
	}
	if depth > common.MAX_CATEGORY_DEPTH {
		return ErrTreeTooDeep
	}
	for _, node := range nodes {
		if common.IsEmptyString(strings.TrimSpace(node.Name)) {
			return ErrCategoryNameRequired
		}
		if err := validateCategoryNodes(node.Children, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func countCategoryNodes(nodes []models.CategoryNode) int {
	total := 0
	for _, node := range nodes {
		total += 1 + countCategoryNodes(node.Children)
	}
	return total
}
