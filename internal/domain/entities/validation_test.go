package entities

import (
	"errors"
	"testing"
)

func validProduct() Product {
	return Product{
		ProductName:      "LT-300 Vehicle Tracker",
		Category:         "vehicle",
		Subcategory:      "obd",
		ShortDescription: "Plug-and-play OBD tracker",
		Description:      "Real-time vehicle tracking with geofencing.",
		Price:            4990,
		OriginalPrice:    5990,
		StockQuantity:    25,
		Brand:            "Locotraq",
		Features:         []string{"Real-time tracking"},
		Specifications:   map[string]string{"battery": "120h"},
		Image:            "https://assets.example.com/lt-300.png",
	}
}

func fieldOf(t *testing.T, err error) string {
	t.Helper()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	return ve.Field
}

func TestProductValidate_Order(t *testing.T) {
	// Missing productName AND category must report productName first.
	p := validProduct()
	p.ProductName = ""
	p.Category = ""
	if got := fieldOf(t, p.Validate()); got != "productName" {
		t.Fatalf("expected productName reported first, got %s", got)
	}

	p = validProduct()
	p.Category = ""
	if got := fieldOf(t, p.Validate()); got != "category" {
		t.Fatalf("expected category, got %s", got)
	}

	p = validProduct()
	p.Price = 0
	if got := fieldOf(t, p.Validate()); got != "price" {
		t.Fatalf("expected price, got %s", got)
	}

	p = validProduct()
	p.StockQuantity = -1
	if got := fieldOf(t, p.Validate()); got != "stockQuantity" {
		t.Fatalf("expected stockQuantity, got %s", got)
	}

	p = validProduct()
	p.Features = nil
	if got := fieldOf(t, p.Validate()); got != "features" {
		t.Fatalf("expected features, got %s", got)
	}

	p = validProduct()
	p.Specifications = map[string]string{}
	if got := fieldOf(t, p.Validate()); got != "specifications" {
		t.Fatalf("expected specifications, got %s", got)
	}

	p = validProduct()
	p.Image = ""
	if got := fieldOf(t, p.Validate()); got != "image" {
		t.Fatalf("expected image, got %s", got)
	}

	if err := validProduct().Validate(); err != nil {
		t.Fatalf("expected valid product, got %v", err)
	}
}

func TestBlogValidate_Order(t *testing.T) {
	b := Blog{
		Title:           "Fleet tracking basics",
		Content:         "Long form content.",
		MetaDescription: "Intro to fleet tracking",
		Author:          Author{Name: "Ana"},
		Image:           "https://assets.example.com/cover.png",
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("expected valid blog, got %v", err)
	}

	b.Title = ""
	b.Content = ""
	if got := fieldOf(t, b.Validate()); got != "title" {
		t.Fatalf("expected title reported first, got %s", got)
	}

	b.Title = "back"
	if got := fieldOf(t, b.Validate()); got != "content" {
		t.Fatalf("expected content, got %s", got)
	}

	b.Content = "back"
	b.Author.Name = "  "
	if got := fieldOf(t, b.Validate()); got != "author.name" {
		t.Fatalf("expected author.name, got %s", got)
	}
}

func TestOrderStatus_NextCycle(t *testing.T) {
	cases := []struct {
		from OrderStatus
		want OrderStatus
	}{
		{OrderStatusPending, OrderStatusConfirmed},
		{OrderStatusConfirmed, OrderStatusProcessing},
		{OrderStatusProcessing, OrderStatusShipped},
		{OrderStatusShipped, OrderStatusDelivered},
		{OrderStatusDelivered, OrderStatusPending},
		{OrderStatus("weird"), OrderStatusPending},
	}
	for _, tc := range cases {
		if got := tc.from.Next(); got != tc.want {
			t.Errorf("%s.Next() = %s, want %s", tc.from, got, tc.want)
		}
	}
}
