package server

import (
	"github.com/google/wire"

	"github.com/Archit-Suthar/stockvibe/app/display/internal/data"
	"github.com/Archit-Suthar/stockvibe/app/display/internal/service"
	"github.com/Archit-Suthar/stockvibe/app/display/internal/usecase"
)

// ProviderSet 是展示服务的依赖注入 Provider 集合
var ProviderSet = wire.NewSet(
	// Server providers
	NewHTTPServer,

	// Data providers
	data.NewData,
	data.NewStockRepo,
	data.NewCatalogRepo,

	// UseCase providers
	usecase.NewStockUseCase,
	usecase.NewCatalogUseCase,

	// Service providers
	service.NewStockService,
)
