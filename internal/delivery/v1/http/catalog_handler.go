package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// listProducts
//
//	@Summary		Список товаров
//	@Description	Возвращает каталог в исходном порядке, с необязательными фильтрами
//	@Tags			catalog
//	@Produce		json
//	@Param			category	query		string	false	"Категория"
//	@Param			organic		query		bool	false	"Только органические"
//	@Param			in_stock	query		bool	false	"Наличие"
//	@Success		200			{object}	ProductListResponse
//	@Failure		400			{object}	ErrorResponse	"Некорректный фильтр"
//	@Router			/products [get]
func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.listProducts"

	var filter usecase.ProductFilter
	if category := r.URL.Query().Get("category"); category != "" {
		filter.Category = &category
	}

	organic, err := parseBoolQuery(r, "organic")
	if err != nil {
		handleError(w, h.logger, op, err)
		return
	}
	filter.Organic = organic

	inStock, err := parseBoolQuery(r, "in_stock")
	if err != nil {
		handleError(w, h.logger, op, err)
		return
	}
	filter.InStock = inStock

	products, err := h.catalogUsecase.ListProducts(r.Context(), filter)
	if err != nil {
		handleError(w, h.logger, op, err)
		return
	}

	res := ProductListResponse{Products: make([]ProductResponse, 0, len(products))}
	for _, p := range products {
		res.Products = append(res.Products, toProductResponse(p))
	}
	WriteSuccess(w, http.StatusOK, res)
}

// getProduct
//
//	@Summary		Товар
//	@Tags			catalog
//	@Produce		json
//	@Param			id	path		string	true	"ID товара"
//	@Success		200	{object}	ProductResponse
//	@Failure		400	{object}	ErrorResponse	"Некорректный ID"
//	@Failure		404	{object}	ErrorResponse	"Товар не найден"
//	@Router			/products/{id} [get]
func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.getProduct"

	product, err := h.catalogUsecase.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, h.logger, op, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// listCategories
//
//	@Summary	Категории каталога
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{object}	CategoryListResponse
//	@Router		/categories [get]
func (h *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.listCategories"

	categories, err := h.catalogUsecase.ListCategories(r.Context())
	if err != nil {
		handleError(w, h.logger, op, err)
		return
	}

	WriteSuccess(w, http.StatusOK, CategoryListResponse{Categories: categories})
}
