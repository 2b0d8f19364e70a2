package delivery

import (
	"fmt"
	"net/http"

	"inventory_app/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	useCase usecase.CategoryUseCase
	log     *logrus.Logger
}

func NewCategoryHandler(uc usecase.CategoryUseCase, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *CategoryHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/", h.Index)
	router.GET("/category/:id", h.ViewCategory)
	router.GET("/add_category", h.AddCategoryForm)
	router.POST("/add_category", h.AddCategory)
	router.GET("/edit_category/:id", h.EditCategoryForm)
	router.POST("/edit_category/:id", h.EditCategory)
}

func (h *CategoryHandler) Index(c *gin.Context) {
	categories, err := h.useCase.ListCategories()
	if err != nil {
		h.log.Errorf("Failed to list categories: %v", err)
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{"Categories": categories})
}

func (h *CategoryHandler) ViewCategory(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		h.log.Warnf("Invalid category ID parameter: %s", c.Param("id"))
		renderError(c, err)
		return
	}

	category, err := h.useCase.GetCategoryByID(id)
	if err != nil {
		h.log.Warnf("Failed to get category by ID %d: %v", id, err)
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "category.html", gin.H{"Category": category})
}

func (h *CategoryHandler) AddCategoryForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add_category.html", nil)
}

func (h *CategoryHandler) AddCategory(c *gin.Context) {
	name := c.PostForm("name")
	image, err := formImage(c)
	if err != nil {
		h.log.Errorf("Failed to read image upload for new category: %v", err)
		renderError(c, err)
		return
	}

	category, err := h.useCase.CreateCategory(name, image)
	if err != nil {
		h.log.Errorf("Failed to create category '%s': %v", name, err)
		renderError(c, err)
		return
	}

	h.log.Infof("Category created successfully: ID %d, Name %s", category.ID, category.Name)
	c.Redirect(http.StatusFound, "/")
}

func (h *CategoryHandler) EditCategoryForm(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		renderError(c, err)
		return
	}

	category, err := h.useCase.GetCategoryByID(id)
	if err != nil {
		h.log.Warnf("Failed to get category ID %d for edit form: %v", id, err)
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "edit_category.html", gin.H{"Category": category})
}

func (h *CategoryHandler) EditCategory(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		renderError(c, err)
		return
	}

	name := c.PostForm("name")
	image, err := formImage(c)
	if err != nil {
		h.log.Errorf("Failed to read image upload for category ID %d: %v", id, err)
		renderError(c, err)
		return
	}

	category, err := h.useCase.UpdateCategory(id, name, image)
	if err != nil {
		h.log.Errorf("Failed to update category ID %d: %v", id, err)
		renderError(c, err)
		return
	}

	h.log.Infof("Category updated successfully: ID %d", category.ID)
	c.Redirect(http.StatusFound, fmt.Sprintf("/category/%d", category.ID))
}
