package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"net/http"
	"net/url"
	"seatpos/infras/backend"
	"seatpos/internal/domains/catalog/model"
)

const (
	pathCategories         = "/api/employee/categories"
	pathCategory           = "/api/employee/categories/%s"
	pathGroupsByCategory   = "/api/public/product-groups/%s"
	pathProductsByGroup    = "/api/public/products/groups/%s"
	pathProductsByCategory = "/api/employee/product/category/%s"
	pathProduct            = "/api/employee/product/%s"
	pathSearch             = "/api/employee/product/search"
)

type Catalog interface {
	GetCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id string) (model.Category, error)
	GetGroups(ctx context.Context, categoryID string, params url.Values) ([]model.ProductGroup, error)
	GetProductsByGroup(ctx context.Context, groupID string) ([]model.Product, error)
	GetProductsByCategory(ctx context.Context, categoryID string) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (model.Product, error)
	Search(ctx context.Context, params url.Values) ([]model.Product, error)
}

type repositoryImpl struct {
	backend backend.Backend
}

func New(b backend.Backend) Catalog {
	return &repositoryImpl{
		backend: b,
	}
}

func (r *repositoryImpl) GetCategories(ctx context.Context) (res []model.Category, err error) {
	_, err = r.backend.Do(ctx, backend.Request{
		Operation: "list categories",
		Method:    http.MethodGet,
		Path:      pathCategories,
		Result:    &res,
		List:      true,
	})

	return res, err //nolint:wrapcheck
}

func (r *repositoryImpl) GetCategory(ctx context.Context, id string) (res model.Category, err error) {
	_, err = r.backend.Do(ctx, backend.Request{
		Operation: "get category",
		Method:    http.MethodGet,
		Path:      backend.Path(pathCategory, id),
		Result:    &res,
	})

	return res, err //nolint:wrapcheck
}

func (r *repositoryImpl) GetGroups(ctx context.Context, categoryID string, params url.Values) (res []model.ProductGroup, err error) {
	_, err = r.backend.Do(ctx, backend.Request{
		Operation: "list product groups",
		Method:    http.MethodGet,
		Path:      backend.Path(pathGroupsByCategory, categoryID),
		Query:     params,
		Result:    &res,
		List:      true,
	})

	return res, err //nolint:wrapcheck
}

func (r *repositoryImpl) GetProductsByGroup(ctx context.Context, groupID string) (res []model.Product, err error) {
	_, err = r.backend.Do(ctx, backend.Request{
		Operation: "list products by group",
		Method:    http.MethodGet,
		Path:      backend.Path(pathProductsByGroup, groupID),
		Result:    &res,
		List:      true,
	})

	return res, err //nolint:wrapcheck
}

func (r *repositoryImpl) GetProductsByCategory(ctx context.Context, categoryID string) (res []model.Product, err error) {
	_, err = r.backend.Do(ctx, backend.Request{
		Operation: "list products by category",
		Method:    http.MethodGet,
		Path:      backend.Path(pathProductsByCategory, categoryID),
		Result:    &res,
		List:      true,
	})

	return res, err //nolint:wrapcheck
}

func (r *repositoryImpl) GetProduct(ctx context.Context, id string) (res model.Product, err error) {
	_, err = r.backend.Do(ctx, backend.Request{
		Operation: "get product",
		Method:    http.MethodGet,
		Path:      backend.Path(pathProduct, id),
		Result:    &res,
	})

	return res, err //nolint:wrapcheck
}

func (r *repositoryImpl) Search(ctx context.Context, params url.Values) (res []model.Product, err error) {
	_, err = r.backend.Do(ctx, backend.Request{
		Operation: "search products",
		Method:    http.MethodGet,
		Path:      pathSearch,
		Query:     params,
		Result:    &res,
		List:      true,
	})

	return res, err //nolint:wrapcheck
}
