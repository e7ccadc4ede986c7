package services

import (
	"context"

	"fakeshop-io/api/internal/common"
	"fakeshop-io/api/pkg/models"
	"fakeshop-io/api/pkg/util"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Cart actions accepted by UpsertCartItem for an existing line.
const (
	CartActionIncrement = "increment"
	CartActionDecrement = "decrement"
)

// CartServiceImpl implements the CartService interface
type CartServiceImpl struct {
	cartCollection    *mongo.Collection
	productCollection *mongo.Collection
	userCollection    *mongo.Collection
}

// NewCartService creates a new instance of CartService
func NewCartService(db *mongo.Database) CartService {
	return &CartServiceImpl{
		cartCollection:    util.GetCollection(db, "Cart"),
		productCollection: util.GetCollection(db, "Product"),
		userCollection:    util.GetCollection(db, "User"),
	}
}

// UpsertCartItem applies an increment or decrement action to the user's
// cart and recomputes the totals. A line that reaches zero quantity is
// removed from the cart.
func (cs *CartServiceImpl) UpsertCartItem(ctx context.Context, userID primitive.ObjectID, req models.CartItemRequest) (*models.CartItemView, error) {
	if err := common.Validate.Struct(&req); err != nil {
		return nil, err
	}

	if err := cs.resolveUser(ctx, userID); err != nil {
		return nil, err
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductId)
	if err != nil {
		return nil, ErrInvalidProductID
	}

	cart, err := cs.loadOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	hadLine := findCartLine(cart.Products, productID) >= 0

	// The product record is only required when appending a new line.
	// Mutating an existing line must keep working after the product is
	// deleted; the dangling line is pruned on the next read.
	var product *models.Product
	if !hadLine {
		product, err = cs.lookupProduct(ctx, productID)
		if err != nil {
			return nil, err
		}
	}

	lines, err := applyCartAction(cart.Products, productID, req.Quantity, req.Action)
	if err != nil {
		return nil, err
	}
	cart.Products = lines

	if !hadLine {
		cs.setInCartFlag(ctx, productID, true)
	} else if findCartLine(cart.Products, productID) < 0 {
		cs.setInCartFlag(ctx, productID, false)
	}

	products, err := cs.lookupProducts(ctx, cart.Products)
	if err != nil {
		return nil, err
	}
	prices := make(map[primitive.ObjectID]float64, len(products))
	for id, p := range products {
		prices[id] = effectiveUnitPrice(p)
	}
	cart.SubTotal = recomputeSubtotal(cart.Products, prices)
	cart.CartTotal = cart.SubTotal

	if err := cs.saveCart(ctx, cart); err != nil {
		return nil, err
	}

	if product == nil {
		if p, ok := products[productID]; ok {
			product = &p
		}
	}

	quantity := 0
	if idx := findCartLine(cart.Products, productID); idx >= 0 {
		quantity = cart.Products[idx].Quantity
	}

	return cartItemView(product, quantity, cart.SubTotal, cart.CartTotal), nil
}

// RemoveCartItem drops a product line from the cart regardless of quantity
// and returns the updated cart.
func (cs *CartServiceImpl) RemoveCartItem(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID) (*models.CartView, error) {
	if err := cs.resolveUser(ctx, userID); err != nil {
		return nil, err
	}

	cart, err := cs.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := findCartLine(cart.Products, productID)
	if idx < 0 {
		return nil, ErrCartItemNotFound
	}
	cart.Products = append(cart.Products[:idx], cart.Products[idx+1:]...)

	prices, err := cs.lookupPrices(ctx, cart.Products)
	if err != nil {
		return nil, err
	}
	cart.SubTotal = recomputeSubtotal(cart.Products, prices)
	cart.CartTotal = cart.SubTotal

	if err := cs.saveCart(ctx, cart); err != nil {
		return nil, err
	}
	cs.setInCartFlag(ctx, productID, false)

	return cs.GetCart(ctx, userID)
}

// GetCart returns the cart with each line expanded against the catalog.
// Lines whose product record no longer exists are pruned and the pruned
// cart is written back. Totals are always recomputed from current prices.
func (cs *CartServiceImpl) GetCart(ctx context.Context, userID primitive.ObjectID) (*models.CartView, error) {
	cart, err := cs.loadCart(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrCartNotFound) {
			return &models.CartView{Cart: []models.CartDetail{}}, nil
		}
		return nil, err
	}

	products, err := cs.lookupProducts(ctx, cart.Products)
	if err != nil {
		return nil, err
	}

	lines, changed := pruneCartLines(cart.Products, products)
	if changed {
		cart.Products = lines
		prices := make(map[primitive.ObjectID]float64, len(products))
		for id, p := range products {
			prices[id] = effectiveUnitPrice(p)
		}
		cart.SubTotal = recomputeSubtotal(cart.Products, prices)
		cart.CartTotal = cart.SubTotal
		if err := cs.saveCart(ctx, cart); err != nil {
			return nil, err
		}
	}

	return buildCartView(lines, products), nil
}

// ClearCart removes every line from the user's cart.
func (cs *CartServiceImpl) ClearCart(ctx context.Context, userID primitive.ObjectID) error {
	cart, err := cs.loadCart(ctx, userID)
	if err != nil {
		return err
	}

	for _, line := range cart.Products {
		cs.setInCartFlag(ctx, line.Product, false)
	}

	cart.Products = []models.CartLine{}
	cart.SubTotal = 0
	cart.CartTotal = 0
	return cs.saveCart(ctx, cart)
}

// Helper methods

// setInCartFlag maintains the denormalized catalog flag. Failures are
// logged, never surfaced: the cart document is the source of truth.
func (cs *CartServiceImpl) setInCartFlag(ctx context.Context, productID primitive.ObjectID, inCart bool) {
	update := bson.M{"$set": bson.M{"is_in_cart": inCart}}
	if _, err := cs.productCollection.UpdateOne(ctx, bson.M{"_id": productID}, update); err != nil {
		util.LogError("updating in-cart flag failed", err)
	}
}

func (cs *CartServiceImpl) resolveUser(ctx context.Context, userID primitive.ObjectID) error {
	count, err := cs.userCollection.CountDocuments(ctx, bson.M{"_id": userID})
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (cs *CartServiceImpl) lookupProduct(ctx context.Context, productID primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := cs.productCollection.FindOne(ctx, bson.M{"_id": productID}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (cs *CartServiceImpl) lookupProducts(ctx context.Context, lines []models.CartLine) (map[primitive.ObjectID]models.Product, error) {
	ids := make([]primitive.ObjectID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.Product)
	}

	products := make(map[primitive.ObjectID]models.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	cursor, err := cs.productCollection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var found []models.Product
	if err = cursor.All(ctx, &found); err != nil {
		return nil, err
	}
	for _, p := range found {
		products[p.Id] = p
	}
	return products, nil
}

func (cs *CartServiceImpl) lookupPrices(ctx context.Context, lines []models.CartLine) (map[primitive.ObjectID]float64, error) {
	products, err := cs.lookupProducts(ctx, lines)
	if err != nil {
		return nil, err
	}
	prices := make(map[primitive.ObjectID]float64, len(products))
	for id, p := range products {
		prices[id] = effectiveUnitPrice(p)
	}
	return prices, nil
}

func (cs *CartServiceImpl) loadCart(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := cs.cartCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return &cart, nil
}

func (cs *CartServiceImpl) loadOrCreateCart(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	cart, err := cs.loadCart(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, ErrCartNotFound) {
		return nil, err
	}

	fresh := models.Cart{
		Id:       primitive.NewObjectID(),
		UserId:   userID,
		Products: []models.CartLine{},
		Version:  1,
	}
	if _, err := cs.cartCollection.InsertOne(ctx, fresh); err != nil {
		// A concurrent request created the cart between our read and
		// this insert; the unique userId index reports it, so reload.
		if mongo.IsDuplicateKeyError(err) {
			return cs.loadCart(ctx, userID)
		}
		return nil, err
	}
	return &fresh, nil
}

// saveCart writes the cart back guarded by its version. A concurrent write
// between our read and this update leaves the matched count at zero.
func (cs *CartServiceImpl) saveCart(ctx context.Context, cart *models.Cart) error {
	filter := bson.M{"_id": cart.Id, "version": cart.Version}
	update := bson.M{
		"$set": bson.M{
			"products":  cart.Products,
			"subTotal":  cart.SubTotal,
			"cartTotal": cart.CartTotal,
		},
		"$inc": bson.M{"version": 1},
	}

	result, err := cs.cartCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrCartConflict
	}
	cart.Version++
	return nil
}

// Helper functions

// effectiveUnitPrice prefers the discounted price when one is set.
func effectiveUnitPrice(p models.Product) float64 {
	if p.DiscountPrice > 0 {
		return p.DiscountPrice
	}
	return p.Price
}

func findCartLine(lines []models.CartLine, productID primitive.ObjectID) int {
	for i, line := range lines {
		if line.Product == productID {
			return i
		}
	}
	return -1
}

// applyCartAction returns the cart lines after the requested mutation.
// When no line exists for the product a new one is appended with the
// requested quantity and the action flag is ignored. When a line exists
// the action must be increment or decrement; each steps by exactly one,
// a decrement that reaches zero removes the line, and a decrement at zero
// is rejected.
func applyCartAction(lines []models.CartLine, productID primitive.ObjectID, quantity int, action string) ([]models.CartLine, error) {
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	idx := findCartLine(lines, productID)
	out := make([]models.CartLine, len(lines))
	copy(out, lines)

	if idx < 0 {
		return append(out, models.CartLine{Product: productID, Quantity: quantity}), nil
	}

	switch action {
	case CartActionIncrement:
		out[idx].Quantity++
		return out, nil

	case CartActionDecrement:
		if out[idx].Quantity == 0 {
			return nil, ErrNegativeQuantity
		}
		out[idx].Quantity--
		if out[idx].Quantity == 0 {
			return append(out[:idx], out[idx+1:]...), nil
		}
		return out, nil

	default:
		return nil, ErrInvalidAction
	}
}

func recomputeSubtotal(lines []models.CartLine, prices map[primitive.ObjectID]float64) float64 {
	total := 0.0
	for _, line := range lines {
		total += prices[line.Product] * float64(line.Quantity)
	}
	return total
}

// pruneCartLines drops lines whose product record no longer resolves.
// Unavailable products stay in the cart; only dangling references go.
func pruneCartLines(lines []models.CartLine, products map[primitive.ObjectID]models.Product) ([]models.CartLine, bool) {
	kept := make([]models.CartLine, 0, len(lines))
	for _, line := range lines {
		if _, ok := products[line.Product]; ok {
			kept = append(kept, line)
		}
	}
	return kept, len(kept) != len(lines)
}

// buildCartView flattens cart lines against the current product records.
// Totals are recomputed from current prices so the response always agrees
// with the sum of its own line items, even after a price change.
func buildCartView(lines []models.CartLine, products map[primitive.ObjectID]models.Product) *models.CartView {
	details := make([]models.CartDetail, 0, len(lines))
	total := 0.0
	for _, line := range lines {
		p := products[line.Product]
		unit := effectiveUnitPrice(p)
		itemTotal := unit * float64(line.Quantity)
		total += itemTotal
		details = append(details, models.CartDetail{
			Product:     line.Product,
			Title:       p.Title,
			Price:       unit,
			Description: p.Description,
			Images:      p.Images,
			Category:    p.Category,
			Quantity:    line.Quantity,
			ItemTotal:   itemTotal,
		})
	}

	return &models.CartView{
		Cart:      details,
		SubTotal:  total,
		CartTotal: total,
	}
}

// cartItemView shapes the single-line response for an upsert. The product
// may be nil when mutating a line whose catalog record is already gone.
func cartItemView(product *models.Product, quantity int, subTotal, cartTotal float64) *models.CartItemView {
	view := &models.CartItemView{
		Quantity:  quantity,
		IsInCart:  quantity > 0,
		SubTotal:  subTotal,
		CartTotal: cartTotal,
	}
	if product != nil {
		view.Title = product.Title
		view.Price = effectiveUnitPrice(*product)
		view.Images = product.Images
	}
	return view
}
