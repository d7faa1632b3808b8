package service

import (
	"context"
	"fmt"
	"seatpos/config"
	"seatpos/infras/otel"
	"seatpos/internal/domains/catalog/model"
	"seatpos/internal/domains/catalog/model/dto"
	"seatpos/internal/domains/catalog/repository"
	"seatpos/shared"
	"seatpos/shared/constant"
	gDto "seatpos/shared/dto"
	"seatpos/shared/failure"
	"seatpos/shared/query"
	"seatpos/shared/validator"

	"github.com/rs/zerolog/log"
)

type Catalog interface {
	GetCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id string) (model.Category, error)
	GetGroups(ctx context.Context, categoryID string, params gDto.QueryParams) ([]model.ProductGroup, error)
	GetProductsByGroup(ctx context.Context, groupID string) ([]model.Product, error)
	GetProductsByCategory(ctx context.Context, categoryID string) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (model.Product, error)
	Search(ctx context.Context, req dto.SearchProductsRequest) ([]model.Product, error)
}

type serviceImpl struct {
	repo   repository.Catalog
	cfg    *config.Config
	query  query.Client
	otel   otel.Otel
	policy query.Policy
}

func New(repo repository.Catalog, cfg *config.Config, q query.Client, otel otel.Otel) Catalog {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		query:  q,
		otel:   otel,
		policy: query.CatalogPolicy(cfg),
	}
}

func (s *serviceImpl) GetCategories(ctx context.Context) (res []model.Category, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCategories")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = query.Fetch(ctx, s.query, model.CacheKeyCategories, s.policy, s.repo.GetCategories)
	if err != nil {
		log.Error().Err(err).Msg("failed to get categories")

		return res, fmt.Errorf("failed to get categories: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetCategory(ctx context.Context, id string) (res model.Category, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCategory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = query.Fetch(ctx, s.query, shared.BuildCacheKey(model.CacheKeyCategory, id), s.policy, func(ctx context.Context) (model.Category, error) {
		return s.repo.GetCategory(ctx, id)
	})
	if err != nil {
		log.Error().Err(err).Str("category", id).Msg("failed to get category")

		return res, fmt.Errorf("failed to get category: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound("category not found") //nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) GetGroups(ctx context.Context, categoryID string, params gDto.QueryParams) (res []model.ProductGroup, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProductGroups")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&params); err != nil {
		return res, err //nolint:wrapcheck
	}

	values := params.Values()
	key := shared.BuildCacheKeyWithQuery(model.CacheKeyGroups, values, categoryID)

	res, err = query.Fetch(ctx, s.query, key, s.policy, func(ctx context.Context) ([]model.ProductGroup, error) {
		return s.repo.GetGroups(ctx, categoryID, values)
	})
	if err != nil {
		log.Error().Err(err).Str("category", categoryID).Msg("failed to get product groups")

		return res, fmt.Errorf("failed to get product groups: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetProductsByGroup(ctx context.Context, groupID string) (res []model.Product, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProductsByGroup")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = query.Fetch(ctx, s.query, shared.BuildCacheKey(model.CacheKeyProductsByGroup, groupID), s.policy, func(ctx context.Context) ([]model.Product, error) {
		return s.repo.GetProductsByGroup(ctx, groupID)
	})
	if err != nil {
		log.Error().Err(err).Str("group", groupID).Msg("failed to get products by group")

		return res, fmt.Errorf("failed to get products by group: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetProductsByCategory(ctx context.Context, categoryID string) (res []model.Product, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProductsByCategory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := shared.BuildCacheKey(model.CacheKeyProductByCategory, categoryID)

	res, err = query.Fetch(ctx, s.query, key, s.policy, func(ctx context.Context) ([]model.Product, error) {
		return s.repo.GetProductsByCategory(ctx, categoryID)
	})
	if err != nil {
		log.Error().Err(err).Str("category", categoryID).Msg("failed to get products by category")

		return res, fmt.Errorf("failed to get products by category: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetProduct(ctx context.Context, id string) (res model.Product, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProduct")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = query.Fetch(ctx, s.query, shared.BuildCacheKey(model.CacheKeyProduct, id), s.policy, func(ctx context.Context) (model.Product, error) {
		return s.repo.GetProduct(ctx, id)
	})
	if err != nil {
		log.Error().Err(err).Str("product", id).Msg("failed to get product")

		return res, fmt.Errorf("failed to get product: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound("product not found") //nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) Search(ctx context.Context, req dto.SearchProductsRequest) (res []model.Product, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SearchProducts")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	if req.MinPrice != nil && req.MaxPrice != nil && *req.MinPrice > *req.MaxPrice {
		return res, failure.BadRequestFromString("minPrice must be less than or equal to maxPrice") //nolint:wrapcheck
	}

	values := req.Values()

	res, err = query.Fetch(ctx, s.query, shared.BuildCacheKeyWithQuery(model.CacheKeySearch, values), query.DefaultPolicy(s.cfg), func(ctx context.Context) ([]model.Product, error) {
		return s.repo.Search(ctx, values)
	})
	if err != nil {
		log.Error().Err(err).Str("keyword", req.Keyword).Msg("failed to search products")

		return res, fmt.Errorf("failed to search products: %w", err)
	}

	return res, nil
}
