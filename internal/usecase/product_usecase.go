package usecase

import (
	"fmt"

	"inventory_app/internal/domain"

	"github.com/sirupsen/logrus"
)

// Quantity adjustment actions accepted by AdjustQuantity.
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
)

type ProductUseCase interface {
	GetProductByID(id int) (*domain.Product, error)
	CreateProduct(categoryID int, name string, quantity int, image *domain.ImageUpload) (*domain.Product, error)
	AdjustQuantity(id int, action string, amount int) (*domain.Product, error)
	UpdateProduct(id int, name string, quantity, categoryID int, image *domain.ImageUpload) (*domain.Product, error)
	DeleteProduct(id int) (int, error)
}

type productUseCase struct {
	productRepo  domain.ProductRepository
	categoryRepo domain.CategoryRepository
	images       domain.ImageStore
	log          *logrus.Logger
}

func NewProductUseCase(pRepo domain.ProductRepository, cRepo domain.CategoryRepository, images domain.ImageStore, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		images:       images,
		log:          logger,
	}
}

func (uc *productUseCase) GetProductByID(id int) (*domain.Product, error) {
	product, err := uc.productRepo.GetProductByID(id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get product ID %d: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product retrieved successfully for ID %d", id)
	return product, nil
}

func (uc *productUseCase) CreateProduct(categoryID int, name string, quantity int, image *domain.ImageUpload) (*domain.Product, error) {
	if name == "" {
		uc.log.Warn("Use Case: Attempted to create product with empty name")
		return nil, fmt.Errorf("product name cannot be empty: %w", domain.ErrValidation)
	}
	if quantity < 0 {
		uc.log.Warnf("Use Case: Attempted to create product '%s' with negative quantity: %d", name, quantity)
		return nil, fmt.Errorf("product quantity cannot be negative: %w", domain.ErrValidation)
	}
	if _, err := uc.categoryRepo.GetCategoryByID(categoryID); err != nil {
		uc.log.Warnf("Use Case: Category ID %d not found during product creation: %v", categoryID, err)
		return nil, err
	}

	ref, err := storeImage(uc.images, image)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to store image for new product '%s': %v", name, err)
		return nil, err
	}

	product := &domain.Product{
		Name:       name,
		Quantity:   quantity,
		Image:      ref,
		CategoryID: categoryID,
	}
	createdProduct, err := uc.productRepo.CreateProduct(product)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create product '%s': %v", name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product '%s' created successfully with ID %d", createdProduct.Name, createdProduct.ID)
	return createdProduct, nil
}

// AdjustQuantity applies a stock movement. Removal clamps at zero instead of
// failing: removing more than is on hand leaves a quantity of exactly zero.
func (uc *productUseCase) AdjustQuantity(id int, action string, amount int) (*domain.Product, error) {
	if amount < 0 {
		uc.log.Warnf("Use Case: Attempted quantity adjustment for product ID %d with negative amount: %d", id, amount)
		return nil, fmt.Errorf("adjustment amount cannot be negative: %w", domain.ErrValidation)
	}

	product, err := uc.productRepo.GetProductByID(id)
	if err != nil {
		uc.log.Warnf("Use Case: Product ID %d not found for quantity adjustment: %v", id, err)
		return nil, err
	}

	switch action {
	case ActionAdd:
		product.Quantity += amount
	case ActionRemove:
		product.Quantity -= amount
		if product.Quantity < 0 {
			product.Quantity = 0
		}
	default:
		uc.log.Warnf("Use Case: Unknown quantity adjustment action %q for product ID %d", action, id)
		return nil, fmt.Errorf("unknown adjustment action %q: %w", action, domain.ErrValidation)
	}

	updatedProduct, err := uc.productRepo.UpdateProduct(product)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to persist quantity adjustment for product ID %d: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product ID %d quantity adjusted (%s %d) to %d", id, action, amount, updatedProduct.Quantity)
	return updatedProduct, nil
}

// UpdateProduct replaces all editable fields. The image reference is only
// replaced when a new file was uploaded; there is no way to clear it.
func (uc *productUseCase) UpdateProduct(id int, name string, quantity, categoryID int, image *domain.ImageUpload) (*domain.Product, error) {
	if name == "" {
		uc.log.Warnf("Use Case: Attempted update for product ID %d with empty name", id)
		return nil, fmt.Errorf("product name cannot be empty: %w", domain.ErrValidation)
	}
	if quantity < 0 {
		uc.log.Warnf("Use Case: Attempted update for product ID %d with negative quantity: %d", id, quantity)
		return nil, fmt.Errorf("product quantity cannot be negative: %w", domain.ErrValidation)
	}

	product, err := uc.productRepo.GetProductByID(id)
	if err != nil {
		uc.log.Warnf("Use Case: Product ID %d not found for update: %v", id, err)
		return nil, err
	}
	if _, err := uc.categoryRepo.GetCategoryByID(categoryID); err != nil {
		uc.log.Warnf("Use Case: Target category ID %d not found during product update: %v", categoryID, err)
		return nil, err
	}

	product.Name = name
	product.Quantity = quantity
	product.CategoryID = categoryID
	if image != nil {
		ref, err := storeImage(uc.images, image)
		if err != nil {
			uc.log.Errorf("Use Case: Failed to store replacement image for product ID %d: %v", id, err)
			return nil, err
		}
		product.Image = ref
	}

	updatedProduct, err := uc.productRepo.UpdateProduct(product)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to update product ID %d: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product updated successfully for ID %d", updatedProduct.ID)
	return updatedProduct, nil
}

// DeleteProduct removes the product and returns the id of the category it
// belonged to so the caller can redirect there. A second delete of the same
// id fails with not found.
func (uc *productUseCase) DeleteProduct(id int) (int, error) {
	product, err := uc.productRepo.GetProductByID(id)
	if err != nil {
		uc.log.Warnf("Use Case: Product ID %d not found for delete: %v", id, err)
		return 0, err
	}

	if err := uc.productRepo.DeleteProduct(id); err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete product ID %d: %v", id, err)
		return 0, err
	}

	uc.log.Infof("Use Case: Product deleted successfully for ID %d (category %d)", id, product.CategoryID)
	return product.CategoryID, nil
}
