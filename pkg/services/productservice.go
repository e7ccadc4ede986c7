package services

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fakeshop-io/api/internal/common"
	"fakeshop-io/api/pkg/models"
	"fakeshop-io/api/pkg/util"

	"github.com/gosimple/slug"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductServiceImpl implements the ProductService interface
type ProductServiceImpl struct {
	productCollection    *mongo.Collection
	categoryCollection   *mongo.Collection
	customizedCollection *mongo.Collection
}

// NewProductService creates a new instance of ProductService
func NewProductService(db *mongo.Database) ProductService {
	return &ProductServiceImpl{
		productCollection:    util.GetCollection(db, "Product"),
		categoryCollection:   util.GetCollection(db, "Category"),
		customizedCollection: util.GetCollection(db, "CustomizedProduct"),
	}
}

// CreateProduct inserts a catalog product. The slug is derived from the
// title and the discounted price is precomputed from the percentage.
func (ps *ProductServiceImpl) CreateProduct(ctx context.Context, req models.CreateProductRequest) (primitive.ObjectID, error) {
	now := time.Now()

	if err := common.Validate.Struct(&req); err != nil {
		return primitive.NilObjectID, err
	}

	var categoryID primitive.ObjectID
	if !common.IsEmptyString(req.Category) {
		id, err := primitive.ObjectIDFromHex(req.Category)
		if err != nil {
			return primitive.NilObjectID, ErrInvalidCategoryID
		}
		count, err := ps.categoryCollection.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return primitive.NilObjectID, err
		}
		if count == 0 {
			return primitive.NilObjectID, ErrCategoryNotFound
		}
		categoryID = id
	}

	product := models.Product{
		Id:                 primitive.NewObjectID(),
		Title:              req.Title,
		Slug:               slug.Make(req.Title),
		Description:        req.Description,
		Price:              req.Price,
		DiscountPercentage: req.DiscountPercentage,
		DiscountPrice:      computeDiscountPrice(req.Price, req.DiscountPercentage),
		Images:             req.Images,
		Category:           categoryID,
		Stock:              req.Stock,
		Brand:              req.Brand,
		IsFeatured:         req.IsFeatured,
		Available:          req.Available,
		CreatedAt:          now,
		ModifiedAt:         now,
	}

	res, err := ps.productCollection.InsertOne(ctx, product)
	if err != nil {
		return primitive.NilObjectID, err
	}

	if insertedID, ok := res.InsertedID.(primitive.ObjectID); ok {
		return insertedID, nil
	}
	return primitive.NilObjectID, errors.New("failed to get inserted ID")
}

func (ps *ProductServiceImpl) GetProduct(ctx context.Context, productID primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := ps.productCollection.FindOne(ctx, bson.M{"_id": productID}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// GetProducts returns a filtered, paginated catalog page with the category
// row expanded on every product.
func (ps *ProductServiceImpl) GetProducts(ctx context.Context, filter ProductFilter, pagination util.PaginationArgs) (*models.ProductPage, error) {
	query := bson.M{}
	if !common.IsEmptyString(filter.Category) {
		categoryID, err := primitive.ObjectIDFromHex(filter.Category)
		if err != nil {
			return nil, ErrInvalidCategoryID
		}
		query["category"] = categoryID
	}
	if !common.IsEmptyString(filter.Brand) {
		query["brand"] = filter.Brand
	}
	if filter.MinPrice > 0 || filter.MaxPrice > 0 {
		priceRange := bson.M{}
		if filter.MinPrice > 0 {
			priceRange["$gte"] = filter.MinPrice
		}
		if filter.MaxPrice > 0 {
			priceRange["$lte"] = filter.MaxPrice
		}
		query["price"] = priceRange
	}

	findOptions := options.Find().
		SetSort(util.GetProductSortBson(pagination.Sort)).
		SetSkip(int64(pagination.Skip)).
		SetLimit(int64(pagination.Limit))

	cursor, err := ps.productCollection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	count, err := ps.productCollection.CountDocuments(ctx, query)
	if err != nil {
		return nil, err
	}

	expanded := make([]models.ProductExpanded, 0, len(products))
	for _, product := range products {
		item := models.ProductExpanded{Product: product}
		if !product.Category.IsZero() {
			var category models.Category
			if err := ps.categoryCollection.FindOne(ctx, bson.M{"_id": product.Category}).Decode(&category); err == nil {
				item.Expanded = &category
			}
		}
		expanded = append(expanded, item)
	}

	totalPages := count / int64(pagination.Limit)
	if count%int64(pagination.Limit) != 0 {
		totalPages++
	}

	return &models.ProductPage{
		TotalProducts: count,
		Products:      expanded,
		TotalPages:    totalPages,
		CurrentPage:   filter.Page,
		DataOnPage:    len(expanded),
	}, nil
}

func (ps *ProductServiceImpl) UpdateProduct(ctx context.Context, productID primitive.ObjectID, req models.UpdateProductRequest) error {
	set := bson.M{"modified_at": time.Now()}
	if req.Title != nil {
		set["title"] = *req.Title
		set["slug"] = slug.Make(*req.Title)
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Price != nil {
		set["price"] = *req.Price
	}
	if req.Category != nil {
		categoryID, err := primitive.ObjectIDFromHex(*req.Category)
		if err != nil {
			return ErrInvalidCategoryID
		}
		set["category"] = categoryID
	}
	if req.Stock != nil {
		set["stock"] = *req.Stock
	}
	if req.DiscountPercentage != nil {
		set["discount_percentage"] = *req.DiscountPercentage
	}
	if req.Brand != nil {
		set["brand"] = *req.Brand
	}
	if req.Images != nil {
		set["images"] = req.Images
	}
	if req.IsFeatured != nil {
		set["is_featured"] = *req.IsFeatured
	}
	if req.Available != nil {
		set["available"] = *req.Available
	}

	// Keep the stored discount price in sync when price or percentage moved.
	if req.Price != nil || req.DiscountPercentage != nil {
		current, err := ps.GetProduct(ctx, productID)
		if err != nil {
			return err
		}
		price := current.Price
		if req.Price != nil {
			price = *req.Price
		}
		pct := current.DiscountPercentage
		if req.DiscountPercentage != nil {
			pct = *req.DiscountPercentage
		}
		set["discount_price"] = computeDiscountPrice(price, pct)
	}

	result, err := ps.productCollection.UpdateOne(ctx, bson.M{"_id": productID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (ps *ProductServiceImpl) DeleteProduct(ctx context.Context, productID primitive.ObjectID) error {
	result, err := ps.productCollection.DeleteOne(ctx, bson.M{"_id": productID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}

// UploadProductImage pushes the image to cloudinary and appends the hosted
// URL to the product's image list.
func (ps *ProductServiceImpl) UploadProductImage(ctx context.Context, productID primitive.ObjectID, file any) (string, error) {
	if _, err := ps.GetProduct(ctx, productID); err != nil {
		return "", err
	}

	uploadResult, err := util.FileUpload(file)
	if err != nil {
		return "", errors.Wrap(err, "image upload failed")
	}

	update := bson.M{
		"$push": bson.M{"images": uploadResult.SecureURL},
		"$set":  bson.M{"modified_at": time.Now()},
	}
	if _, err := ps.productCollection.UpdateOne(ctx, bson.M{"_id": productID}, update); err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}

// DeleteProductImage unlinks the URL from the product and removes the asset
// from cloudinary.
func (ps *ProductServiceImpl) DeleteProductImage(ctx context.Context, productID primitive.ObjectID, imageURL string) error {
	update := bson.M{
		"$pull": bson.M{"images": imageURL},
		"$set":  bson.M{"modified_at": time.Now()},
	}
	result, err := ps.productCollection.UpdateOne(ctx, bson.M{"_id": productID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrProductNotFound
	}

	if publicID := cloudinaryPublicID(imageURL); publicID != "" {
		if _, err := util.DestroyMedia(publicID); err != nil {
			util.LogError("destroying product image failed", err)
		}
	}
	return nil
}

func (ps *ProductServiceImpl) GetFeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	return ps.findProducts(ctx, bson.M{"is_featured": true, "available": true},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(int64(limit)))
}

// GetBestSellers returns available products ordered by units sold.
func (ps *ProductServiceImpl) GetBestSellers(ctx context.Context, limit int) ([]models.Product, error) {
	return ps.findProducts(ctx, bson.M{"available": true},
		options.Find().SetSort(bson.D{{Key: "sold", Value: -1}}).SetLimit(int64(limit)))
}

// SearchProducts matches the query against title and description without
// case sensitivity, returning matches with a shortened title window.
func (ps *ProductServiceImpl) SearchProducts(ctx context.Context, query string, pagination util.PaginationArgs) ([]models.Product, int64, error) {
	filter := bson.M{"$or": []bson.M{
		{"title": bson.M{"$regex": query, "$options": "i"}},
		{"description": bson.M{"$regex": query, "$options": "i"}},
	}}

	findOptions := options.Find().
		SetSkip(int64(pagination.Skip)).
		SetLimit(int64(pagination.Limit))

	products, err := ps.findProducts(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}

	for i := range products {
		products[i].Title = getShortTitle(products[i].Title, query)
	}

	count, err := ps.productCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return products, count, nil
}

// CreateCustomizedProduct stores a personalized variant of a catalog product.
func (ps *ProductServiceImpl) CreateCustomizedProduct(ctx context.Context, userID primitive.ObjectID, req models.CustomizedProductRequest) (primitive.ObjectID, error) {
	if err := common.Validate.Struct(&req); err != nil {
		return primitive.NilObjectID, err
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductId)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidProductID
	}
	if _, err := ps.GetProduct(ctx, productID); err != nil {
		return primitive.NilObjectID, err
	}

	customized := models.CustomizedProduct{
		Id:           primitive.NewObjectID(),
		UserId:       userID,
		ProductId:    productID,
		CustomImages: req.CustomImages,
		Size:         req.Size,
		Quantity:     req.Quantity,
		CreatedAt:    time.Now(),
	}

	res, err := ps.customizedCollection.InsertOne(ctx, customized)
	if err != nil {
		return primitive.NilObjectID, err
	}

	if insertedID, ok := res.InsertedID.(primitive.ObjectID); ok {
		return insertedID, nil
	}
	return primitive.NilObjectID, errors.New("failed to get inserted ID")
}

func (ps *ProductServiceImpl) GetCustomizedProducts(ctx context.Context, userID primitive.ObjectID) ([]models.CustomizedProduct, error) {
	cursor, err := ps.customizedCollection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	customized := make([]models.CustomizedProduct, 0)
	if err = cursor.All(ctx, &customized); err != nil {
		return nil, err
	}
	return customized, nil
}

// Helper methods

func (ps *ProductServiceImpl) findProducts(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Product, error) {
	cursor, err := ps.productCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Helper functions

// cloudinaryPublicID recovers the asset public id from a hosted image URL.
// The id is the path after the version segment, without the file extension.
func cloudinaryPublicID(imageURL string) string {
	u, err := url.Parse(imageURL)
	if err != nil {
		return ""
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, part := range parts {
		if len(part) < 2 || part[0] != 'v' {
			continue
		}
		if _, err := strconv.Atoi(part[1:]); err != nil {
			continue
		}
		if i+1 >= len(parts) {
			return ""
		}
		id := strings.Join(parts[i+1:], "/")
		if dot := strings.LastIndex(id, "."); dot > 0 {
			id = id[:dot]
		}
		return id
	}
	return ""
}

func computeDiscountPrice(price, percentage float64) float64 {
	if percentage <= 0 {
		return price
	}
	return price - price*percentage/100
}

// getShortTitle returns a window of the title around the first match of
// the query so search results stay compact. The full title is returned
// when it is short or the query does not appear in it.
func getShortTitle(title, query string) string {
	const window = 40

	if len(title) <= window {
		return title
	}

	idx := strings.Index(strings.ToLower(title), strings.ToLower(query))
	if idx < 0 {
		return title[:window] + "..."
	}

	start := idx - window/2
	if start < 0 {
		start = 0
	}
	end := start + window
	if end > len(title) {
		end = len(title)
		start = end - window
	}

	short := title[start:end]
	if start > 0 {
		short = "..." + short
	}
	if end < len(title) {
		short = short + "..."
	}
	return short
}
