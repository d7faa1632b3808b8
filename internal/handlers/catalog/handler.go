package catalog

import (
	"net/http"
	"seatpos/infras/otel"
	"seatpos/internal/domains/catalog/model/dto"
	"seatpos/internal/domains/catalog/service"
	"seatpos/shared/constant"
	gDto "seatpos/shared/dto"
	"seatpos/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/catalog", func(r chi.Router) {
		r.Get("/categories", handler.GetCategories)
		r.Get("/categories/{id}", handler.GetCategory)
		r.Get("/categories/{id}/groups", handler.GetGroups)
		r.Get("/categories/{id}/products", handler.GetProductsByCategory)
		r.Get("/groups/{id}/products", handler.GetProductsByGroup)
		r.Get("/products/search", handler.Search)
		r.Get("/products/{id}", handler.GetProduct)
	})
}

// GetCategories lists the menu categories.
// @Summary Get categories
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Data[[]model.Category]
// @Failure 502 {object} response.Error
// @Router /v1/catalog/categories [get]
// @Security BearerAuth
func (handler *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategories")
	defer scope.End()

	categories, err := handler.service.GetCategories(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get categories")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, categories)
}

// GetCategory retrieves a category.
// @Summary Get a category by ID
// @Tags Catalog
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} response.Data[model.Category]
// @Failure 404 {object} response.Error
// @Router /v1/catalog/categories/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategory")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	category, err := handler.service.GetCategory(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("category", id).Msg("failed to get category")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, category)
}

// GetGroups lists the product groups of a category, one page at a time.
// @Summary Get product groups
// @Tags Catalog
// @Produce json
// @Param id path string true "Category ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[[]model.ProductGroup]
// @Failure 400 {object} response.Error
// @Router /v1/catalog/categories/{id}/groups [get]
// @Security BearerAuth
func (handler *Handler) GetGroups(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGroups")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	groups, err := handler.service.GetGroups(ctx, id, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("category", id).Msg("failed to get product groups")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, groups)
}

// GetProductsByCategory lists the products of a category.
// @Summary Get products of a category
// @Tags Catalog
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} response.Data[[]model.Product]
// @Router /v1/catalog/categories/{id}/products [get]
// @Security BearerAuth
func (handler *Handler) GetProductsByCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProductsByCategory")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	products, err := handler.service.GetProductsByCategory(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("category", id).Msg("failed to get products by category")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, products)
}

// GetProductsByGroup lists the products of a group.
// @Summary Get products of a group
// @Tags Catalog
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} response.Data[[]model.Product]
// @Router /v1/catalog/groups/{id}/products [get]
// @Security BearerAuth
func (handler *Handler) GetProductsByGroup(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProductsByGroup")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	products, err := handler.service.GetProductsByGroup(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("group", id).Msg("failed to get products by group")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, products)
}

// GetProduct retrieves a product with its options.
// @Summary Get a product by ID
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.Data[model.Product]
// @Failure 404 {object} response.Error
// @Router /v1/catalog/products/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProduct")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	product, err := handler.service.GetProduct(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("product", id).Msg("failed to get product")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, product)
}

// Search filters products by keyword, category, group, price and rental.
// @Summary Search products
// @Tags Catalog
// @Produce json
// @Param keyword query string false "Keyword"
// @Param category query string false "Category ID"
// @Param group query string false "Group ID"
// @Param minPrice query integer false "Lowest price"
// @Param maxPrice query integer false "Highest price"
// @Param rental query boolean false "Rented devices only"
// @Success 200 {object} response.Data[[]model.Product]
// @Failure 400 {object} response.Error
// @Router /v1/catalog/products/search [get]
// @Security BearerAuth
func (handler *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchProducts")
	defer scope.End()

	req := dto.SearchProductsRequest{}
	req.FromRequest(r)

	products, err := handler.service.Search(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("keyword", req.Keyword).Msg("failed to search products")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, products)
}
