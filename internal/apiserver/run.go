package apiserver

import (
	"github.com/AndriiHamasa/lunchify/internal/apiserver/config"
)

// Run 基于配置创建并启动 API 服务器，阻塞直到收到退出信号。
func Run(cfg *config.Config) error {
	server, err := createAPIServer(cfg)
	if err != nil {
		return err
	}

	return server.PrepareRun().Run()
}
