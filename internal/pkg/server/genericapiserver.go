package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/AndriiHamasa/lunchify/internal/pkg/middleware"
	"github.com/maxiaolu1981/cretem/nexuscore/component-base/core"
	"github.com/maxiaolu1981/cretem/nexuscore/component-base/version"
	"github.com/maxiaolu1981/cretem/nexuscore/log"
)

// GenericAPIServer 封装 gin 引擎和通用路由（健康检查、指标、pprof），
// 业务路由由调用方安装。
type GenericAPIServer struct {
	*gin.Engine

	middlewares         []string
	healthz             bool
	enableMetrics       bool
	enableProfiling     bool
	insecureServingInfo *InsecureServingInfo

	insecureServer *http.Server
}

func initGenericAPIServer(s *GenericAPIServer) {
	s.Setup()
	s.InstallMiddlewares()
	s.InstallAPIs()
}

// Setup 注册 gin 级别的调试钩子。
func (s *GenericAPIServer) Setup() {
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
		log.Debugf("%-6s %-s --> %s (%d handlers)", httpMethod, absolutePath, handlerName, nuHandlers)
	}
}

// InstallMiddlewares 安装通用中间件。
func (s *GenericAPIServer) InstallMiddlewares() {
	s.Use(gin.Recovery())
	s.Use(middleware.RequestID())
	s.Use(middleware.Context())
	s.Use(middleware.Cors())
}

// InstallAPIs 安装通用路由。
func (s *GenericAPIServer) InstallAPIs() {
	if s.healthz {
		s.GET("/healthz", func(c *gin.Context) {
			core.WriteResponse(c, nil, map[string]string{"status": "ok"})
		})
	}

	if s.enableMetrics {
		prometheus := ginprometheus.NewPrometheus("gin")
		prometheus.Use(s.Engine)
	}

	if s.enableProfiling {
		pprof.Register(s.Engine)
	}

	s.GET("/version", func(c *gin.Context) {
		core.WriteResponse(c, nil, version.Get())
	})
}

// Run 启动 HTTP 服务并阻塞，收到 SIGINT/SIGTERM 后优雅退出。
func (s *GenericAPIServer) Run() error {
	s.insecureServer = &http.Server{
		Addr:    s.insecureServingInfo.Address(),
		Handler: s,
	}

	var eg errgroup.Group

	eg.Go(func() error {
		log.Infof("start to listening on http address: %s", s.insecureServingInfo.Address())
		if err := s.insecureServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		log.Infof("server on %s stopped", s.insecureServingInfo.Address())

		return nil
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server ...")

	if err := s.Close(); err != nil {
		return err
	}

	return eg.Wait()
}

// Close 优雅关闭 HTTP 服务。
func (s *GenericAPIServer) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.insecureServer != nil {
		if err := s.insecureServer.Shutdown(ctx); err != nil {
			log.Warnf("shutdown insecure server failed: %v", err)

			return err
		}
	}

	return nil
}
