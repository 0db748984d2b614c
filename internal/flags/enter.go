package flags

import (
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/makeoo/recipe-api/internal/logger"
)

// NewFlags 解析命令行子命令，有子命令时执行完直接退出进程
func NewFlags(db *gorm.DB) {
	app := cli.NewApp()
	app.Name = "makeoo-api"
	app.Usage = "DIY教程分享平台后端"
	app.Commands = []*cli.Command{
		{
			Name:    "database",
			Aliases: []string{"db"},
			Usage:   "初始化数据库表",
			Action: func(c *cli.Context) error {
				return MigrateDB(db)
			},
		},
		{
			Name:    "seed",
			Aliases: []string{"s"},
			Usage:   "写入演示数据（会清空现有数据）",
			Action: func(c *cli.Context) error {
				return SeedDB(db)
			},
		},
	}

	if len(os.Args) > 1 {
		if err := app.Run(os.Args); err != nil {
			logger.Fatal("执行命令失败", zap.Error(err))
		}
		os.Exit(0)
	}
}
