package apiserver

import (
	"github.com/AndriiHamasa/lunchify/internal/apiserver/config"
	"github.com/AndriiHamasa/lunchify/internal/apiserver/options"
	"github.com/AndriiHamasa/lunchify/pkg/app"
	"github.com/maxiaolu1981/cretem/nexuscore/log"
)

const commandDesc = `lunchify API 服务器提供午餐投票后端：管理员录入餐厅并发布每日菜单，
雇员每天投一票，服务统计并给出当日获胜菜单。`

// NewApp 构建 lunchify-apiserver 命令行应用。
func NewApp(basename string) *app.App {
	opts := options.NewOptions()
	application := app.NewApp("lunchify api server",
		basename,
		app.WithOptions(opts),
		app.WithDescription(commandDesc),
		app.WithDefaultValidArgs(),
		app.WithRunFunc(run(opts)),
	)

	return application
}

func run(opts *options.Options) app.RunFunc {
	return func(basename string) error {
		log.Init(opts.Log)
		defer log.Flush()

		cfg, err := config.CreateConfigFromOptions(opts)
		if err != nil {
			return err
		}

		return Run(cfg)
	}
}
