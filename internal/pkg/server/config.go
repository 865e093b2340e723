package server

import (
	"net"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// InsecureServingInfo 保存 HTTP 监听地址。
type InsecureServingInfo struct {
	BindAddress string
	BindPort    int
}

// Address 返回 host:port 形式的监听地址。
func (i *InsecureServingInfo) Address() string {
	return net.JoinHostPort(i.BindAddress, strconv.Itoa(i.BindPort))
}

// Config 是通用 API 服务器配置。
type Config struct {
	InsecureServingInfo *InsecureServingInfo
	Mode                string
	Middlewares         []string
	Healthz             bool
	EnableProfiling     bool
	EnableMetrics       bool
	CtxTimeout          time.Duration
}

// NewConfig 返回带默认值的 Config。
func NewConfig() *Config {
	return &Config{
		Mode:            gin.ReleaseMode,
		Healthz:         true,
		EnableProfiling: true,
		EnableMetrics:   true,
		Middlewares:     []string{},
		CtxTimeout:      10 * time.Second,
	}
}

// CompleteConfig 是补全后的 Config。
type CompleteConfig struct {
	*Config
}

// Complete 填充需要推导的字段。
func (c *Config) Complete() *CompleteConfig {
	return &CompleteConfig{c}
}

// New 基于配置生成 GenericAPIServer 实例。
func (c *CompleteConfig) New() (*GenericAPIServer, error) {
	gin.SetMode(c.Mode)

	s := &GenericAPIServer{
		Engine:              gin.New(),
		middlewares:         c.Middlewares,
		healthz:             c.Healthz,
		enableMetrics:       c.EnableMetrics,
		enableProfiling:     c.EnableProfiling,
		insecureServingInfo: c.InsecureServingInfo,
	}

	initGenericAPIServer(s)

	return s, nil
}
