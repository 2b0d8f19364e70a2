package delivery

import (
	"fmt"
	"net/http"

	"inventory_app/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	useCase usecase.ProductUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/product/:id", h.ViewProduct)
	router.POST("/product/:id", h.AdjustQuantity)
	router.GET("/add_product/:category_id", h.AddProductForm)
	router.POST("/add_product/:category_id", h.AddProduct)
	// Destructive GET, kept for parity with the app this replaces.
	router.GET("/delete_product/:id", h.DeleteProduct)
	router.GET("/edit_product/:id", h.EditProductForm)
	router.POST("/edit_product/:id", h.EditProduct)
}

func (h *ProductHandler) ViewProduct(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		h.log.Warnf("Invalid product ID parameter: %s", c.Param("id"))
		renderError(c, err)
		return
	}

	product, err := h.useCase.GetProductByID(id)
	if err != nil {
		h.log.Warnf("Failed to get product by ID %d: %v", id, err)
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "product.html", gin.H{"Product": product})
}

func (h *ProductHandler) AdjustQuantity(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		renderError(c, err)
		return
	}

	action := c.PostForm("action")
	amount, err := formInt(c, "amount")
	if err != nil {
		h.log.Warnf("Invalid adjustment amount for product ID %d: %v", id, err)
		renderError(c, err)
		return
	}

	product, err := h.useCase.AdjustQuantity(id, action, amount)
	if err != nil {
		h.log.Warnf("Failed to adjust quantity for product ID %d: %v", id, err)
		renderError(c, err)
		return
	}

	h.log.Infof("Product ID %d quantity adjusted to %d", product.ID, product.Quantity)
	c.Redirect(http.StatusFound, fmt.Sprintf("/product/%d", product.ID))
}

func (h *ProductHandler) AddProductForm(c *gin.Context) {
	categoryID, err := pathID(c, "category_id")
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "add_product.html", gin.H{"CategoryID": categoryID})
}

func (h *ProductHandler) AddProduct(c *gin.Context) {
	categoryID, err := pathID(c, "category_id")
	if err != nil {
		renderError(c, err)
		return
	}

	name := c.PostForm("name")
	quantity, err := formInt(c, "quantity")
	if err != nil {
		h.log.Warnf("Invalid quantity for new product in category %d: %v", categoryID, err)
		renderError(c, err)
		return
	}
	image, err := formImage(c)
	if err != nil {
		h.log.Errorf("Failed to read image upload for new product: %v", err)
		renderError(c, err)
		return
	}

	product, err := h.useCase.CreateProduct(categoryID, name, quantity, image)
	if err != nil {
		h.log.Errorf("Failed to create product '%s' in category %d: %v", name, categoryID, err)
		renderError(c, err)
		return
	}

	h.log.Infof("Product created successfully: ID %d, Name %s", product.ID, product.Name)
	c.Redirect(http.StatusFound, fmt.Sprintf("/category/%d", categoryID))
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		renderError(c, err)
		return
	}

	categoryID, err := h.useCase.DeleteProduct(id)
	if err != nil {
		h.log.Warnf("Failed to delete product ID %d: %v", id, err)
		renderError(c, err)
		return
	}

	h.log.Infof("Product deleted successfully: ID %d", id)
	c.Redirect(http.StatusFound, fmt.Sprintf("/category/%d", categoryID))
}

func (h *ProductHandler) EditProductForm(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		renderError(c, err)
		return
	}

	product, err := h.useCase.GetProductByID(id)
	if err != nil {
		h.log.Warnf("Failed to get product ID %d for edit form: %v", id, err)
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "edit_product.html", gin.H{"Product": product})
}

func (h *ProductHandler) EditProduct(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		renderError(c, err)
		return
	}

	name := c.PostForm("name")
	quantity, err := formInt(c, "quantity")
	if err != nil {
		h.log.Warnf("Invalid quantity for product update ID %d: %v", id, err)
		renderError(c, err)
		return
	}
	categoryID, err := formInt(c, "category_id")
	if err != nil {
		h.log.Warnf("Invalid category_id for product update ID %d: %v", id, err)
		renderError(c, err)
		return
	}
	image, err := formImage(c)
	if err != nil {
		h.log.Errorf("Failed to read image upload for product ID %d: %v", id, err)
		renderError(c, err)
		return
	}

	product, err := h.useCase.UpdateProduct(id, name, quantity, categoryID, image)
	if err != nil {
		h.log.Errorf("Failed to update product ID %d: %v", id, err)
		renderError(c, err)
		return
	}

	h.log.Infof("Product updated successfully: ID %d", product.ID)
	c.Redirect(http.StatusFound, fmt.Sprintf("/product/%d", product.ID))
}
