package repository

import (
	"fmt"
	"sort"
	"sync"

	"inventory_app/internal/domain"
)

// MemoryRepository is a map-backed implementation of both repository
// contracts. It preserves insertion order (ascending ids, like the serial
// columns in Postgres) and is used by the test suites.
type MemoryRepository struct {
	mu             sync.Mutex
	categories     map[int]domain.Category
	products       map[int]domain.Product
	nextCategoryID int
	nextProductID  int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		categories:     make(map[int]domain.Category),
		products:       make(map[int]domain.Product),
		nextCategoryID: 1,
		nextProductID:  1,
	}
}

func (m *MemoryRepository) CreateCategory(category *domain.Category) (*domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	category.ID = m.nextCategoryID
	m.nextCategoryID++
	stored := *category
	stored.Products = nil
	m.categories[category.ID] = stored
	return category, nil
}

func (m *MemoryRepository) GetCategoryByID(id int) (*domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.categories[id]
	if !ok {
		return nil, fmt.Errorf("category with id %d: %w", id, domain.ErrNotFound)
	}
	category := stored
	category.Products = m.productsForCategoryLocked(id)
	return &category, nil
}

func (m *MemoryRepository) UpdateCategory(category *domain.Category) (*domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.categories[category.ID]; !ok {
		return nil, fmt.Errorf("category with id %d: %w", category.ID, domain.ErrNotFound)
	}
	stored := *category
	stored.Products = nil
	m.categories[category.ID] = stored
	return category, nil
}

func (m *MemoryRepository) ListCategories() ([]domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	categories := make([]domain.Category, 0, len(m.categories))
	for _, category := range m.categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (m *MemoryRepository) CreateProduct(product *domain.Product) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.categories[product.CategoryID]; !ok {
		return nil, fmt.Errorf("category with id %d: %w", product.CategoryID, domain.ErrNotFound)
	}
	product.ID = m.nextProductID
	m.nextProductID++
	m.products[product.ID] = *product
	return product, nil
}

func (m *MemoryRepository) GetProductByID(id int) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.products[id]
	if !ok {
		return nil, fmt.Errorf("product with id %d: %w", id, domain.ErrNotFound)
	}
	product := stored
	return &product, nil
}

func (m *MemoryRepository) UpdateProduct(product *domain.Product) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[product.ID]; !ok {
		return nil, fmt.Errorf("product with id %d: %w", product.ID, domain.ErrNotFound)
	}
	if _, ok := m.categories[product.CategoryID]; !ok {
		return nil, fmt.Errorf("category with id %d: %w", product.CategoryID, domain.ErrNotFound)
	}
	m.products[product.ID] = *product
	return product, nil
}

func (m *MemoryRepository) DeleteProduct(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[id]; !ok {
		return fmt.Errorf("product with id %d: %w", id, domain.ErrNotFound)
	}
	delete(m.products, id)
	return nil
}

func (m *MemoryRepository) ListProductsByCategory(categoryID int) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.productsForCategoryLocked(categoryID), nil
}

func (m *MemoryRepository) productsForCategoryLocked(categoryID int) []domain.Product {
	products := []domain.Product{}
	for _, product := range m.products {
		if product.CategoryID == categoryID {
			products = append(products, product)
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products
}
