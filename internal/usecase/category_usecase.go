package usecase

import (
	"fmt"

	"inventory_app/internal/domain"

	"github.com/sirupsen/logrus"
)

type CategoryUseCase interface {
	ListCategories() ([]domain.Category, error)
	GetCategoryByID(id int) (*domain.Category, error)
	CreateCategory(name string, image *domain.ImageUpload) (*domain.Category, error)
	UpdateCategory(id int, name string, image *domain.ImageUpload) (*domain.Category, error)
}

type categoryUseCase struct {
	categoryRepo domain.CategoryRepository
	images       domain.ImageStore
	log          *logrus.Logger
}

func NewCategoryUseCase(repo domain.CategoryRepository, images domain.ImageStore, logger *logrus.Logger) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: repo,
		images:       images,
		log:          logger,
	}
}

func (uc *categoryUseCase) ListCategories() ([]domain.Category, error) {
	categories, err := uc.categoryRepo.ListCategories()
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list categories: %v", err)
		return nil, fmt.Errorf("could not retrieve categories: %w", err)
	}

	uc.log.Infof("Use Case: Retrieved %d categories", len(categories))
	return categories, nil
}

func (uc *categoryUseCase) GetCategoryByID(id int) (*domain.Category, error) {
	category, err := uc.categoryRepo.GetCategoryByID(id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get category ID %d: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Category retrieved successfully for ID %d", id)
	return category, nil
}

func (uc *categoryUseCase) CreateCategory(name string, image *domain.ImageUpload) (*domain.Category, error) {
	if name == "" {
		uc.log.Warn("Use Case: Attempted to create category with empty name")
		return nil, fmt.Errorf("category name cannot be empty: %w", domain.ErrValidation)
	}

	ref, err := storeImage(uc.images, image)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to store image for new category '%s': %v", name, err)
		return nil, err
	}

	category := &domain.Category{Name: name, Image: ref}
	createdCategory, err := uc.categoryRepo.CreateCategory(category)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create category '%s': %v", name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Category '%s' created successfully with ID %d", createdCategory.Name, createdCategory.ID)
	return createdCategory, nil
}

// UpdateCategory replaces the name and, only when a new file was uploaded,
// the stored image reference.
func (uc *categoryUseCase) UpdateCategory(id int, name string, image *domain.ImageUpload) (*domain.Category, error) {
	if name == "" {
		uc.log.Warnf("Use Case: Attempted update for category ID %d with empty name", id)
		return nil, fmt.Errorf("category name cannot be empty: %w", domain.ErrValidation)
	}

	category, err := uc.categoryRepo.GetCategoryByID(id)
	if err != nil {
		uc.log.Warnf("Use Case: Category ID %d not found for update: %v", id, err)
		return nil, err
	}

	category.Name = name
	if image != nil {
		ref, err := storeImage(uc.images, image)
		if err != nil {
			uc.log.Errorf("Use Case: Failed to store replacement image for category ID %d: %v", id, err)
			return nil, err
		}
		category.Image = ref
	}

	updatedCategory, err := uc.categoryRepo.UpdateCategory(category)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to update category ID %d: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Category updated successfully for ID %d", updatedCategory.ID)
	return updatedCategory, nil
}

// storeImage is a no-op returning an empty reference when no file was
// uploaded.
func storeImage(images domain.ImageStore, image *domain.ImageUpload) (string, error) {
	if image == nil {
		return "", nil
	}
	return images.Store(image.Data, image.Name)
}
