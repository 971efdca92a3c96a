// Package seed loads the starter catalog of the Desi Beats Cafe into an
// empty store.
package seed

import (
	"context"
	"fmt"
	"log"

	"desi-beats/menu-svc/internal/domain"
	"desi-beats/menu-svc/internal/service"
)

type item struct {
	name, description string
	price             float64
	featured          bool
}

type category struct {
	name, slug, description string
	items                   []item
}

var catalog = []category{
	{"Breakfast", "breakfast", "Traditional Pakistani breakfast items", []item{
		{"Whole Wheat Paratha", "Healthy whole wheat paratha", 80, false},
		{"Allu Paratha", "Potato stuffed paratha", 150, false},
		{"Chicken Paratha", "Chicken stuffed paratha", 250, true},
		{"Omelette", "Classic omelette", 90, false},
	}},
	{"Halwa Puri Nashta", "halwa-puri", "Authentic halwa puri breakfast specials", []item{
		{"Puri", "Single puri", 70, false},
		{"Halwa 250g", "Sweet halwa 250g", 220, false},
		{"Chanay", "Chickpea curry", 300, false},
		{"Halwa Puri Nashta Deal", "2 Puri + Plate Aloo + Cup Halwa", 450, true},
	}},
	{"Main Course", "main-course", "Traditional curries and gravies", []item{
		{"Beef Nehari", "Slow-cooked beef curry", 700, true},
		{"Special Daal", "Mixed lentil curry", 350, false},
		{"Chicken Qorma", "Creamy chicken curry", 450, false},
		{"Chicken Haleem", "Slow-cooked chicken & lentils", 480, false},
	}},
	{"Karahi", "karahi", "Sizzling karahi specialties", []item{
		{"Chicken Karahi Half", "Half portion chicken karahi", 1150, true},
		{"Chicken Karahi Full", "Full portion chicken karahi", 2250, true},
		{"Desi Murgh Karahi Full", "Full portion desi chicken karahi", 3700, false},
		{"Mutton Karahi Full", "Full portion mutton karahi", 3800, false},
	}},
	{"Rice", "rice", "Fragrant rice dishes and biryani", []item{
		{"Daal Chawal", "Lentils with rice", 490, false},
		{"Chicken Pulao", "Chicken pulao rice", 480, false},
		{"Chicken Bariyani", "Spiced chicken biryani", 590, true},
	}},
	{"Fish", "fish", "Fresh fish preparations", []item{
		{"Fried Fish", "Crispy fried fish", 750, true},
	}},
	{"BBQ", "bbq", "Grilled and barbecue specialties", []item{
		{"Chicken Tikka (6pc)", "6 pieces chicken tikka", 590, false},
		{"Malai Boti (6pc)", "6 pieces malai boti", 620, true},
		{"Chicken Seekh Kabab", "Single chicken seekh kabab", 180, false},
		{"BBQ Platter", "Mixed BBQ platter", 2400, true},
	}},
	{"Burgers", "burgers", "Juicy burgers and sandwiches", []item{
		{"Zinger Burger", "Crispy chicken burger", 350, true},
		{"Beef Burger", "Juicy beef burger", 280, false},
	}},
	{"Shawarma", "shawarma", "Middle Eastern wraps", []item{
		{"Chicken Shawarma", "Chicken shawarma wrap", 280, true},
		{"Beef Shawarma", "Beef shawarma wrap", 300, false},
	}},
	{"Roll Paratha", "roll-paratha", "Rolled parathas with fillings", []item{
		{"Chicken Roll", "Chicken paratha roll", 280, true},
		{"Seekh Kabab Roll", "Seekh kabab roll", 250, false},
	}},
	{"Fried Chicken", "fried-chicken", "Crispy fried chicken", []item{
		{"Fried Chicken (2pc)", "2 pieces fried chicken", 380, true},
		{"Fried Chicken (4pc)", "4 pieces fried chicken", 750, false},
	}},
	{"Hot Wings", "hot-wings", "Spicy chicken wings", []item{
		{"Hot Wings (6pc)", "6 pieces hot wings", 390, true},
		{"Hot Wings (12pc)", "12 pieces hot wings", 750, false},
	}},
	{"Fries & Refreshments", "fries", "Sides and snacks", []item{
		{"French Fries", "Crispy french fries", 200, false},
		{"Masala Fries", "Spiced masala fries", 250, true},
	}},
	{"Salad", "salad", "Fresh salads", []item{
		{"Kachumber Salad", "Fresh mixed salad", 150, false},
		{"Raita", "Yogurt cucumber raita", 120, false},
	}},
	{"Tandoor", "tandoor", "Fresh tandoori breads", []item{
		{"Naan", "Plain naan", 50, false},
		{"Garlic Naan", "Garlic naan", 80, true},
		{"Roti", "Plain roti", 30, false},
	}},
	{"Drinks", "drinks", "Beverages and refreshments", []item{
		{"Pepsi 1.5L", "1.5L Pepsi bottle", 180, false},
		{"Fresh Lime", "Fresh lime juice", 150, true},
		{"Lassi", "Traditional yogurt drink", 180, true},
	}},
}

// Run inserts the starter catalog when the store holds no categories. It
// returns the number of categories written.
func Run(ctx context.Context, categories service.CategoryRepository, items service.MenuItemRepository) (int, error) {
	existing, err := categories.ListCategories(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	itemCount := 0
	for i, c := range catalog {
		cat := domain.Category{Name: c.name, Slug: c.slug, Description: c.description, Order: i + 1}
		if err := categories.CreateCategory(ctx, &cat); err != nil {
			return i, fmt.Errorf("seed category %s: %w", c.slug, err)
		}
		for j, it := range c.items {
			mi := domain.MenuItem{
				CategoryID:  cat.ID,
				Name:        it.name,
				Description: it.description,
				Price:       it.price,
				Available:   true,
				Featured:    it.featured,
				Order:       j + 1,
			}
			if err := items.CreateMenuItem(ctx, &mi); err != nil {
				return i, fmt.Errorf("seed menu item %s: %w", it.name, err)
			}
			itemCount++
		}
	}

	log.Printf("[menu-svc] seeded %d categories and %d menu items", len(catalog), itemCount)
	return len(catalog), nil
}
