//go:build wireinject
// +build wireinject

// wire依赖注入配置文件
// 修改后执行 `wire gen ./cmd/api` 重新生成 wire_gen.go

package main

import (
	"github.com/google/wire"

	"github.com/xiebiao/bookapi/internal/domain/book"
	"github.com/xiebiao/bookapi/internal/infrastructure/config"
	"github.com/xiebiao/bookapi/internal/infrastructure/persistence/orm"
	"github.com/xiebiao/bookapi/internal/interface/http/handler"
)

// infrastructureSet 配置、日志、数据库
var infrastructureSet = wire.NewSet(
	config.Load,
	provideLogger,
	provideDB,
)

// bookSet 仓储 ← 服务 ← 处理器
var bookSet = wire.NewSet(
	orm.NewBookRepository,
	book.NewService,
	handler.NewBookHandler,
)

// InitializeApp 初始化整个应用
// 返回的cleanup按相反顺序释放数据库连接和日志
func InitializeApp() (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		bookSet,
		provideGinEngine,
		newApp,
	)
	return nil, nil, nil
}
