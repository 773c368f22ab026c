package orm

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// seedBooks 示例数据
var seedBooks = []BookModel{
	{
		BookID:      1,
		Title:       "The Hobbit",
		Author:      "J. R. R. Tolkien",
		Description: "Someone finds a nice piece of jewellery while on holiday.",
	},
	{
		BookID:      2,
		Title:       "The Shop Before Life",
		Author:      "Neil Hughes",
		Description: "Before being born, each person must visit the magical Shop Before Life, where they choose what kind of person they will become down on Earth...",
	},
}

// Seed 写入示例数据，已存在的BookID跳过
func Seed(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	rows := make([]BookModel, len(seedBooks))
	copy(rows, seedBooks)

	result := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	if result.Error != nil {
		return fmt.Errorf("写入示例数据失败: %w", result.Error)
	}

	log.Info("示例数据写入完成", zap.Int64("inserted", result.RowsAffected))
	return nil
}
