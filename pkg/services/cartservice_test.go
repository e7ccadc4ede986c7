package services

import (
	"testing"

	"fakeshop-io/api/pkg/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestApplyCartActionAppendsNewLine(t *testing.T) {
	productID := primitive.NewObjectID()

	lines, err := applyCartAction(nil, productID, 3, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || lines[0].Quantity != 3 {
		t.Fatalf("want one line with quantity 3, got %+v", lines)
	}

	// the action flag is ignored when the product has no line yet
	other := primitive.NewObjectID()
	lines, err = applyCartAction(lines, other, 2, CartActionDecrement)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 || lines[1].Quantity != 2 {
		t.Fatalf("want appended line with quantity 2, got %+v", lines)
	}
}

func TestApplyCartActionIncrement(t *testing.T) {
	productID := primitive.NewObjectID()
	lines := []models.CartLine{{Product: productID, Quantity: 2}}

	// increment steps by one; the quantity field is not a step size
	lines, err := applyCartAction(lines, productID, 5, CartActionIncrement)
	if err != nil {
		t.Fatal(err)
	}
	if lines[0].Quantity != 3 {
		t.Fatalf("want quantity 3, got %d", lines[0].Quantity)
	}
}

func TestApplyCartActionDecrement(t *testing.T) {
	productID := primitive.NewObjectID()
	lines := []models.CartLine{{Product: productID, Quantity: 2}}

	lines, err := applyCartAction(lines, productID, 0, CartActionDecrement)
	if err != nil {
		t.Fatal(err)
	}
	if lines[0].Quantity != 1 {
		t.Fatalf("want quantity 1, got %d", lines[0].Quantity)
	}

	// reaching zero removes the line
	lines, err = applyCartAction(lines, productID, 0, CartActionDecrement)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 0 {
		t.Fatalf("want empty cart, got %+v", lines)
	}
}

func TestApplyCartActionDecrementAtZero(t *testing.T) {
	productID := primitive.NewObjectID()
	lines := []models.CartLine{{Product: productID, Quantity: 0}}

	if _, err := applyCartAction(lines, productID, 0, CartActionDecrement); err != ErrNegativeQuantity {
		t.Fatalf("want ErrNegativeQuantity, got %v", err)
	}
}

func TestApplyCartActionRejectsUnknownAction(t *testing.T) {
	productID := primitive.NewObjectID()
	lines := []models.CartLine{{Product: productID, Quantity: 1}}

	if _, err := applyCartAction(lines, productID, 1, "multiply"); err != ErrInvalidAction {
		t.Fatalf("want ErrInvalidAction, got %v", err)
	}
	// an existing line requires an explicit action
	if _, err := applyCartAction(lines, productID, 1, ""); err != ErrInvalidAction {
		t.Fatalf("want ErrInvalidAction for missing action, got %v", err)
	}
}

func TestApplyCartActionRejectsNegativeQuantity(t *testing.T) {
	if _, err := applyCartAction(nil, primitive.NewObjectID(), -1, ""); err != ErrNegativeQuantity {
		t.Fatalf("want ErrNegativeQuantity, got %v", err)
	}
}

func TestApplyCartActionDoesNotMutateInput(t *testing.T) {
	productID := primitive.NewObjectID()
	original := []models.CartLine{{Product: productID, Quantity: 2}}

	if _, err := applyCartAction(original, productID, 1, CartActionIncrement); err != nil {
		t.Fatal(err)
	}
	if original[0].Quantity != 2 {
		t.Fatalf("input slice was mutated: %+v", original)
	}
}

func TestRecomputeSubtotal(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	lines := []models.CartLine{
		{Product: a, Quantity: 2},
		{Product: b, Quantity: 1},
	}
	prices := map[primitive.ObjectID]float64{a: 10.5, b: 4}

	if got := recomputeSubtotal(lines, prices); got != 25 {
		t.Fatalf("want 25, got %v", got)
	}
	if got := recomputeSubtotal(nil, prices); got != 0 {
		t.Fatalf("want 0 for empty cart, got %v", got)
	}
}

func TestPruneCartLines(t *testing.T) {
	a, b, c := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()
	lines := []models.CartLine{
		{Product: a, Quantity: 1},
		{Product: b, Quantity: 2},
		{Product: c, Quantity: 3},
	}
	// b is out of stock but still resolves; only c's record is gone
	products := map[primitive.ObjectID]models.Product{
		a: {Id: a, Available: true},
		b: {Id: b, Available: false},
	}

	kept, changed := pruneCartLines(lines, products)
	if !changed {
		t.Fatal("expected pruning to report a change")
	}
	if len(kept) != 2 || kept[0].Product != a || kept[1].Product != b {
		t.Fatalf("want the two resolving lines, got %+v", kept)
	}

	kept, changed = pruneCartLines(kept, products)
	if changed {
		t.Fatal("pruning an already clean cart should not report a change")
	}
	if len(kept) != 2 {
		t.Fatalf("want two lines, got %+v", kept)
	}
}

func TestPruneCartLinesKeepsUnavailableProducts(t *testing.T) {
	a := primitive.NewObjectID()
	lines := []models.CartLine{{Product: a, Quantity: 1}}
	products := map[primitive.ObjectID]models.Product{a: {Id: a, Available: false}}

	kept, changed := pruneCartLines(lines, products)
	if changed || len(kept) != 1 {
		t.Fatalf("a resolving but unavailable product must stay in the cart, got %+v", kept)
	}
}

func TestBuildCartViewRecomputesTotals(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	lines := []models.CartLine{
		{Product: a, Quantity: 2},
		{Product: b, Quantity: 1},
	}
	products := map[primitive.ObjectID]models.Product{
		a: {Id: a, Title: "mug", Price: 10, DiscountPrice: 8},
		b: {Id: b, Title: "cap", Price: 5},
	}

	view := buildCartView(lines, products)
	if len(view.Cart) != 2 {
		t.Fatalf("want two items, got %+v", view.Cart)
	}
	if view.SubTotal != 21 || view.CartTotal != 21 {
		t.Fatalf("want totals 21 from current prices, got %v/%v", view.SubTotal, view.CartTotal)
	}

	sum := 0.0
	for _, item := range view.Cart {
		sum += item.ItemTotal
	}
	if sum != view.SubTotal {
		t.Fatalf("totals disagree with line items: %v vs %v", sum, view.SubTotal)
	}
}

func TestCartItemViewWithoutProductRecord(t *testing.T) {
	view := cartItemView(nil, 1, 15, 15)
	if view.Title != "" || view.Price != 0 {
		t.Fatalf("want empty product fields for a deleted product, got %+v", view)
	}
	if view.Quantity != 1 || !view.IsInCart || view.SubTotal != 15 {
		t.Fatalf("unexpected view: %+v", view)
	}

	p := models.Product{Title: "mug", Price: 10, DiscountPrice: 8, Images: []string{"a.jpg"}}
	view = cartItemView(&p, 2, 16, 16)
	if view.Title != "mug" || view.Price != 8 || len(view.Images) != 1 {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestEffectiveUnitPrice(t *testing.T) {
	full := models.Product{Price: 100}
	if got := effectiveUnitPrice(full); got != 100 {
		t.Fatalf("want 100, got %v", got)
	}

	discounted := models.Product{Price: 100, DiscountPrice: 80}
	if got := effectiveUnitPrice(discounted); got != 80 {
		t.Fatalf("want 80, got %v", got)
	}
}

func TestFindCartLine(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	lines := []models.CartLine{{Product: a, Quantity: 1}}

	if idx := findCartLine(lines, a); idx != 0 {
		t.Fatalf("want index 0, got %d", idx)
	}
	if idx := findCartLine(lines, b); idx != -1 {
		t.Fatalf("want -1 for missing line, got %d", idx)
	}
}
