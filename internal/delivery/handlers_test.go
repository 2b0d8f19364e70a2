package delivery_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"inventory_app/internal/delivery"
	"inventory_app/internal/repository"
	"inventory_app/internal/storage"
	"inventory_app/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	router     *gin.Engine
	repo       *repository.MemoryRepository
	categories usecase.CategoryUseCase
	products   usecase.ProductUseCase
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	repo := repository.NewMemoryRepository()
	images, err := storage.NewDiskStore(t.TempDir(), logger)
	require.NoError(t, err)

	categoryUseCase := usecase.NewCategoryUseCase(repo, images, logger)
	productUseCase := usecase.NewProductUseCase(repo, repo, images, logger)

	router := gin.New()
	router.SetHTMLTemplate(delivery.Templates())
	delivery.NewCategoryHandler(categoryUseCase, logger).RegisterRoutes(router)
	delivery.NewProductHandler(productUseCase, logger).RegisterRoutes(router)

	return &testApp{
		router:     router,
		repo:       repo,
		categories: categoryUseCase,
		products:   productUseCase,
	}
}

func (a *testApp) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	a.router.ServeHTTP(w, req)
	return w
}

// postMultipart submits fields plus an optional file under the "image" field.
func (a *testApp) postMultipart(t *testing.T, path string, fields map[string]string, filename string, file []byte) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("image", filename)
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	a.router.ServeHTTP(w, req)
	return w
}

func TestIndex(t *testing.T) {
	app := newTestApp(t)
	_, err := app.categories.CreateCategory("Beverages", nil)
	require.NoError(t, err)

	w := app.get("/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Beverages")
}

func TestViewCategory(t *testing.T) {
	t.Run("unknown id returns 404", func(t *testing.T) {
		app := newTestApp(t)

		w := app.get("/category/999")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id returns 400", func(t *testing.T) {
		app := newTestApp(t)

		w := app.get("/category/abc")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("renders category with its products", func(t *testing.T) {
		app := newTestApp(t)
		category, err := app.categories.CreateCategory("Beverages", nil)
		require.NoError(t, err)
		_, err = app.products.CreateProduct(category.ID, "Cola", 10, nil)
		require.NoError(t, err)

		w := app.get("/category/1")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Cola")
	})
}

func TestAddCategory(t *testing.T) {
	t.Run("post redirects to index", func(t *testing.T) {
		app := newTestApp(t)

		w := app.postForm("/add_category", url.Values{"name": {"Beverages"}})
		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))

		categories, err := app.repo.ListCategories()
		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.Equal(t, "Beverages", categories[0].Name)
	})

	t.Run("empty name returns 400", func(t *testing.T) {
		app := newTestApp(t)

		w := app.postForm("/add_category", url.Values{"name": {""}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("uploaded image is stored and referenced", func(t *testing.T) {
		app := newTestApp(t)

		w := app.postMultipart(t, "/add_category", map[string]string{"name": "Snacks"}, "snacks.png", []byte("png-bytes"))
		require.Equal(t, http.StatusFound, w.Code)

		categories, err := app.repo.ListCategories()
		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.Equal(t, "/uploads/snacks.png", categories[0].Image)
	})

	t.Run("get renders the empty form", func(t *testing.T) {
		app := newTestApp(t)

		w := app.get("/add_category")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "/add_category")
	})
}

func TestAddProduct(t *testing.T) {
	t.Run("post redirects to the category view", func(t *testing.T) {
		app := newTestApp(t)
		category, err := app.categories.CreateCategory("Beverages", nil)
		require.NoError(t, err)

		w := app.postForm("/add_product/1", url.Values{"name": {"Cola"}, "quantity": {"10"}})
		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/category/1", w.Header().Get("Location"))

		got, err := app.repo.GetCategoryByID(category.ID)
		require.NoError(t, err)
		require.Len(t, got.Products, 1)
		assert.Equal(t, 10, got.Products[0].Quantity)
	})

	t.Run("unknown category returns 404", func(t *testing.T) {
		app := newTestApp(t)

		w := app.postForm("/add_product/999", url.Values{"name": {"Cola"}, "quantity": {"10"}})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric quantity returns 400", func(t *testing.T) {
		app := newTestApp(t)
		_, err := app.categories.CreateCategory("Beverages", nil)
		require.NoError(t, err)

		w := app.postForm("/add_product/1", url.Values{"name": {"Cola"}, "quantity": {"ten"}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdjustQuantityEndpoint(t *testing.T) {
	seed := func(t *testing.T, app *testApp, quantity int) int {
		category, err := app.categories.CreateCategory("Beverages", nil)
		require.NoError(t, err)
		product, err := app.products.CreateProduct(category.ID, "Cola", quantity, nil)
		require.NoError(t, err)
		return product.ID
	}

	t.Run("remove clamps at zero and redirects back", func(t *testing.T) {
		app := newTestApp(t)
		id := seed(t, app, 10)

		w := app.postForm("/product/1", url.Values{"action": {"remove"}, "amount": {"15"}})
		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/product/1", w.Header().Get("Location"))

		product, err := app.repo.GetProductByID(id)
		require.NoError(t, err)
		assert.Equal(t, 0, product.Quantity)
	})

	t.Run("add increases the quantity", func(t *testing.T) {
		app := newTestApp(t)
		id := seed(t, app, 10)

		w := app.postForm("/product/1", url.Values{"action": {"add"}, "amount": {"5"}})
		require.Equal(t, http.StatusFound, w.Code)

		product, err := app.repo.GetProductByID(id)
		require.NoError(t, err)
		assert.Equal(t, 15, product.Quantity)
	})

	t.Run("non-numeric amount returns 400", func(t *testing.T) {
		app := newTestApp(t)
		seed(t, app, 10)

		w := app.postForm("/product/1", url.Values{"action": {"add"}, "amount": {"ten"}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown product returns 404", func(t *testing.T) {
		app := newTestApp(t)

		w := app.postForm("/product/999", url.Values{"action": {"add"}, "amount": {"1"}})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteProductEndpoint(t *testing.T) {
	app := newTestApp(t)
	category, err := app.categories.CreateCategory("Beverages", nil)
	require.NoError(t, err)
	product, err := app.products.CreateProduct(category.ID, "Cola", 10, nil)
	require.NoError(t, err)

	w := app.get("/delete_product/1")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/category/1", w.Header().Get("Location"))

	_, err = app.repo.GetProductByID(product.ID)
	require.Error(t, err)

	// Repeating the delete is a 404, not a silent no-op.
	w = app.get("/delete_product/1")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEditProductEndpoint(t *testing.T) {
	t.Run("edit without a new file keeps the image", func(t *testing.T) {
		app := newTestApp(t)
		category, err := app.categories.CreateCategory("Beverages", nil)
		require.NoError(t, err)
		product, err := app.products.CreateProduct(category.ID, "Cola", 10, nil)
		require.NoError(t, err)

		w := app.postMultipart(t, "/edit_product/1", map[string]string{
			"name": "Cola", "quantity": "10", "category_id": "1",
		}, "cola.png", []byte("png"))
		require.Equal(t, http.StatusFound, w.Code)

		w = app.postForm("/edit_product/1", url.Values{
			"name": {"Cola Zero"}, "quantity": {"3"}, "category_id": {"1"},
		})
		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/product/1", w.Header().Get("Location"))

		got, err := app.repo.GetProductByID(product.ID)
		require.NoError(t, err)
		assert.Equal(t, "Cola Zero", got.Name)
		assert.Equal(t, 3, got.Quantity)
		assert.Equal(t, "/uploads/cola.png", got.Image)
	})

	t.Run("edit form is pre-filled", func(t *testing.T) {
		app := newTestApp(t)
		category, err := app.categories.CreateCategory("Beverages", nil)
		require.NoError(t, err)
		_, err = app.products.CreateProduct(category.ID, "Cola", 10, nil)
		require.NoError(t, err)

		w := app.get("/edit_product/1")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `value="Cola"`)
	})
}

func TestEditCategoryEndpoint(t *testing.T) {
	app := newTestApp(t)
	_, err := app.categories.CreateCategory("Beverages", nil)
	require.NoError(t, err)

	w := app.postForm("/edit_category/1", url.Values{"name": {"Drinks"}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/category/1", w.Header().Get("Location"))

	got, err := app.repo.GetCategoryByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Drinks", got.Name)
}
