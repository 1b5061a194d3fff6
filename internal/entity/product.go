package entity

import "time"

type Category string

const (
	CategoryCoffee    Category = "coffee"
	CategoryNonCoffee Category = "non-coffee"
	CategoryHeavyMeal Category = "heavy-meal"
	CategorySnack     Category = "snack"
)

// Categories lists the menu categories in display order.
var Categories = []Category{CategoryCoffee, CategoryNonCoffee, CategoryHeavyMeal, CategorySnack}

var categoryLabels = map[Category]string{
	CategoryCoffee:    "Coffee",
	CategoryNonCoffee: "Non-Coffee",
	CategoryHeavyMeal: "Meals",
	CategorySnack:     "Snacks",
}

// Label returns the display label, or the raw value for unknown categories.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Product is a menu entry owned by the catalog database. Price is in rupiah.
type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Category    Category  `json:"category"`
	Price       int64     `json:"price"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

/*
Schema MySQL for product table:
CREATE TABLE `products` (
  `id` int(11) NOT NULL AUTO_INCREMENT,
  `name` varchar(255) NOT NULL,
  `category` varchar(20) NOT NULL,
  `price` bigint NOT NULL,
  `description` text NULL,
  `image_url` varchar(512) NULL,
  `is_available` tinyint(1) NOT NULL DEFAULT 1,
  `created_at` datetime NOT NULL DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (`id`)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
*/
