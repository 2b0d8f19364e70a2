package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"inventory_app/internal/domain"

	"github.com/sirupsen/logrus"
)

type postgresCategoryRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresCategoryRepository(db *sql.DB, logger *logrus.Logger) domain.CategoryRepository {
	return &postgresCategoryRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresCategoryRepository) CreateCategory(category *domain.Category) (*domain.Category, error) {
	query := `INSERT INTO categories (name, image) VALUES ($1, $2) RETURNING id`
	err := r.db.QueryRow(query, category.Name, nullString(category.Image)).Scan(&category.ID)
	if err != nil {
		r.log.Errorf("Failed to create category '%s': %v", category.Name, err)
		return nil, fmt.Errorf("could not create category: %w", err)
	}
	r.log.Infof("Category created successfully with ID: %d, Name: %s", category.ID, category.Name)
	return category, nil
}

func (r *postgresCategoryRepository) GetCategoryByID(id int) (*domain.Category, error) {
	query := `SELECT id, name, image FROM categories WHERE id = $1`
	category := &domain.Category{}
	var image sql.NullString
	err := r.db.QueryRow(query, id).Scan(&category.ID, &category.Name, &image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Category with ID %d not found", id)
			return nil, fmt.Errorf("category with id %d: %w", id, domain.ErrNotFound)
		}
		r.log.Errorf("Failed to get category by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get category by id: %w", err)
	}
	category.Image = fromNullString(image)

	products, err := r.productsForCategory(id)
	if err != nil {
		return nil, err
	}
	category.Products = products

	r.log.Infof("Category retrieved successfully with ID: %d (%d products)", id, len(products))
	return category, nil
}

func (r *postgresCategoryRepository) UpdateCategory(category *domain.Category) (*domain.Category, error) {
	query := `UPDATE categories SET name = $1, image = $2 WHERE id = $3 RETURNING id`
	err := r.db.QueryRow(query, category.Name, nullString(category.Image), category.ID).Scan(&category.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Category with ID %d not found for update", category.ID)
			return nil, fmt.Errorf("category with id %d: %w", category.ID, domain.ErrNotFound)
		}
		r.log.Errorf("Failed to update category ID %d: %v", category.ID, err)
		return nil, fmt.Errorf("could not update category: %w", err)
	}
	r.log.Infof("Category updated successfully with ID: %d", category.ID)
	return category, nil
}

func (r *postgresCategoryRepository) ListCategories() ([]domain.Category, error) {
	query := `SELECT id, name, image FROM categories ORDER BY id ASC`
	rows, err := r.db.Query(query)
	if err != nil {
		r.log.Errorf("Failed to list categories: %v", err)
		return nil, fmt.Errorf("could not list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		var image sql.NullString
		if err := rows.Scan(&category.ID, &category.Name, &image); err != nil {
			r.log.Errorf("Failed to scan category row: %v", err)
			return nil, fmt.Errorf("error scanning category data: %w", err)
		}
		category.Image = fromNullString(image)
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during categories list iteration: %v", err)
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	r.log.Infof("Retrieved %d categories", len(categories))
	return categories, nil
}

func (r *postgresCategoryRepository) productsForCategory(categoryID int) ([]domain.Product, error) {
	query := `
        SELECT id, name, quantity, image, category_id
        FROM products
        WHERE category_id = $1
        ORDER BY id ASC`
	rows, err := r.db.Query(query, categoryID)
	if err != nil {
		r.log.Errorf("Failed to load products for category %d: %v", categoryID, err)
		return nil, fmt.Errorf("could not load products for category: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var product domain.Product
		var image sql.NullString
		if err := rows.Scan(&product.ID, &product.Name, &product.Quantity, &image, &product.CategoryID); err != nil {
			r.log.Errorf("Failed to scan product row for category %d: %v", categoryID, err)
			return nil, fmt.Errorf("error scanning product data: %w", err)
		}
		product.Image = fromNullString(image)
		products = append(products, product)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products for category: %w", err)
	}
	return products, nil
}
