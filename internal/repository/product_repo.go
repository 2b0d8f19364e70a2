package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"inventory_app/internal/domain"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type postgresProductRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresProductRepository(db *sql.DB, logger *logrus.Logger) domain.ProductRepository {
	return &postgresProductRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresProductRepository) CreateProduct(product *domain.Product) (*domain.Product, error) {
	query := `
        INSERT INTO products (name, quantity, image, category_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id`
	err := r.db.QueryRow(query, product.Name, product.Quantity, nullString(product.Image), product.CategoryID).Scan(&product.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			r.log.Warnf("Attempted to create product with non-existent category ID: %d", product.CategoryID)
			return nil, fmt.Errorf("category with id %d: %w", product.CategoryID, domain.ErrNotFound)
		}
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23514" {
			r.log.Warnf("Check constraint violation for product '%s': %s", product.Name, pqErr.Message)
			return nil, fmt.Errorf("product data constraint violation: %w", domain.ErrValidation)
		}
		r.log.Errorf("Failed to create product '%s': %v", product.Name, err)
		return nil, fmt.Errorf("could not create product: %w", err)
	}
	r.log.Infof("Product created successfully with ID: %d, Name: %s", product.ID, product.Name)
	return product, nil
}

func (r *postgresProductRepository) GetProductByID(id int) (*domain.Product, error) {
	query := `
        SELECT id, name, quantity, image, category_id
        FROM products
        WHERE id = $1`
	product := &domain.Product{}
	var image sql.NullString

	err := r.db.QueryRow(query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Quantity,
		&image,
		&product.CategoryID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Product with ID %d not found", id)
			return nil, fmt.Errorf("product with id %d: %w", id, domain.ErrNotFound)
		}
		r.log.Errorf("Failed to get product by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get product by id: %w", err)
	}
	product.Image = fromNullString(image)

	r.log.Infof("Product retrieved successfully with ID: %d", id)
	return product, nil
}

func (r *postgresProductRepository) UpdateProduct(product *domain.Product) (*domain.Product, error) {
	query := `
        UPDATE products
        SET name = $1, quantity = $2, image = $3, category_id = $4
        WHERE id = $5`
	result, err := r.db.Exec(query, product.Name, product.Quantity, nullString(product.Image), product.CategoryID, product.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			r.log.Warnf("Attempted to move product ID %d to non-existent category ID: %d", product.ID, product.CategoryID)
			return nil, fmt.Errorf("category with id %d: %w", product.CategoryID, domain.ErrNotFound)
		}
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23514" {
			r.log.Warnf("Check constraint violation for product update ID %d: %s", product.ID, pqErr.Message)
			return nil, fmt.Errorf("product data constraint violation: %w", domain.ErrValidation)
		}
		r.log.Errorf("Failed to update product ID %d: %v", product.ID, err)
		return nil, fmt.Errorf("could not update product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after updating product ID %d: %v", product.ID, err)
		return nil, fmt.Errorf("could not confirm product update: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Product with ID %d not found for update", product.ID)
		return nil, fmt.Errorf("product with id %d: %w", product.ID, domain.ErrNotFound)
	}

	r.log.Infof("Product updated successfully with ID: %d", product.ID)
	return product, nil
}

func (r *postgresProductRepository) DeleteProduct(id int) error {
	query := `DELETE FROM products WHERE id = $1`
	result, err := r.db.Exec(query, id)
	if err != nil {
		r.log.Errorf("Failed to delete product ID %d: %v", id, err)
		return fmt.Errorf("could not delete product: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after deleting product ID %d: %v", id, err)
		return fmt.Errorf("could not confirm product deletion: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Attempted to delete non-existent product ID %d", id)
		return fmt.Errorf("product with id %d: %w", id, domain.ErrNotFound)
	}
	r.log.Infof("Product deleted successfully with ID: %d", id)
	return nil
}

func (r *postgresProductRepository) ListProductsByCategory(categoryID int) ([]domain.Product, error) {
	query := `
        SELECT id, name, quantity, image, category_id
        FROM products
        WHERE category_id = $1
        ORDER BY id ASC`
	rows, err := r.db.Query(query, categoryID)
	if err != nil {
		r.log.Errorf("Failed to list products for category %d: %v", categoryID, err)
		return nil, fmt.Errorf("could not list products by category: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var product domain.Product
		var image sql.NullString
		if err := rows.Scan(&product.ID, &product.Name, &product.Quantity, &image, &product.CategoryID); err != nil {
			r.log.Errorf("Failed to scan product row for category %d: %v", categoryID, err)
			return nil, fmt.Errorf("error scanning product data for category: %w", err)
		}
		product.Image = fromNullString(image)
		products = append(products, product)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during products by category list iteration: %v", err)
		return nil, fmt.Errorf("error iterating products by category: %w", err)
	}
	r.log.Infof("Retrieved %d products for category %d", len(products), categoryID)
	return products, nil
}
