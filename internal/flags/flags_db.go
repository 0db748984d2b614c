package flags

import (
	"gorm.io/gorm"

	"github.com/makeoo/recipe-api/internal/logger"
	"github.com/makeoo/recipe-api/internal/model"
)

// MigrateDB 建表
func MigrateDB(db *gorm.DB) error {
	if err := model.InitTables(db); err != nil {
		return err
	}
	logger.Info("数据库表初始化完成")
	return nil
}
