package migrations

import (
	"database/sql"
	"fmt"
	"time"
)

var retryDelay = 1 * time.Second

// AutoMigrateProducts creates the products table if it does not exist.
func AutoMigrateProducts(retries int, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS products (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			category VARCHAR(20) NOT NULL,
			price BIGINT NOT NULL,
			description TEXT NULL,
			image_url VARCHAR(512) NULL,
			is_available TINYINT(1) NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_products_available (is_available, created_at)
		) DEFAULT CHARSET=utf8mb4;
	`
	_, err := db.Exec(query)
	if err != nil {
		// Retry creating the table
		for i := 0; i < retries; i++ {
			time.Sleep(retryDelay)
			_, err = db.Exec(query)
			if err == nil {
				break
			}
		}
	}
	if err != nil {
		return fmt.Errorf("migrate products table: %w", err)
	}
	return nil
}
