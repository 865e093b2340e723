package options

import (
	"time"

	"github.com/AndriiHamasa/lunchify/internal/pkg/code"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
	"github.com/spf13/pflag"
)

// 计票口径。
const (
	TallyScopeAllTime = "all-time"
	TallyScopeDaily   = "daily"
)

// ServerRunOptions 定义通用运行参数。
type ServerRunOptions struct {
	Mode            string        `json:"mode"             mapstructure:"mode"`
	Healthz         bool          `json:"healthz"          mapstructure:"healthz"`
	Middlewares     []string      `json:"middlewares"      mapstructure:"middlewares"`
	EnableProfiling bool          `json:"enable-profiling" mapstructure:"enable-profiling"`
	EnableMetrics   bool          `json:"enable-metrics"   mapstructure:"enable-metrics"`
	CtxTimeout      time.Duration `json:"ctx-timeout"      mapstructure:"ctx-timeout"`
	// TallyScope 决定获胜菜单按历史累计票数还是按当日票数评出。
	TallyScope string `json:"tally-scope" mapstructure:"tally-scope"`
}

func NewServerRunOptions() *ServerRunOptions {
	return &ServerRunOptions{
		Mode:            "release",
		Healthz:         true,
		Middlewares:     []string{},
		EnableProfiling: true,
		EnableMetrics:   true,
		CtxTimeout:      10 * time.Second,
		TallyScope:      TallyScopeAllTime,
	}
}

func (s *ServerRunOptions) Validate() []error {
	var errs []error

	switch s.Mode {
	case "debug", "test", "release":
	default:
		errs = append(errs, errors.WithCode(code.ErrValidation, "invalid server mode %q", s.Mode))
	}
	switch s.TallyScope {
	case TallyScopeAllTime, TallyScopeDaily:
	default:
		errs = append(errs, errors.WithCode(code.ErrValidation,
			"invalid tally scope %q, must be %q or %q", s.TallyScope, TallyScopeAllTime, TallyScopeDaily))
	}
	if s.CtxTimeout <= 0 {
		errs = append(errs, errors.WithCode(code.ErrValidation, "ctx-timeout must be positive"))
	}

	return errs
}

func (s *ServerRunOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&s.Mode, "server.mode", s.Mode, ""+
		"Start the server in a specified server mode. Supported server mode: debug, test, release.")

	fs.BoolVar(&s.Healthz, "server.healthz", s.Healthz, ""+
		"Add self readiness check and install /healthz router.")

	fs.StringSliceVar(&s.Middlewares, "server.middlewares", s.Middlewares, ""+
		"List of allowed middlewares for server, comma separated. If this list is empty default middlewares will be used.")

	fs.BoolVar(&s.EnableProfiling, "server.enable-profiling", s.EnableProfiling, ""+
		"Enable profiling via web interface host:port/debug/pprof/.")

	fs.BoolVar(&s.EnableMetrics, "server.enable-metrics", s.EnableMetrics, ""+
		"Enables metrics on the apiserver at /metrics.")

	fs.DurationVar(&s.CtxTimeout, "server.ctx-timeout", s.CtxTimeout, ""+
		"Per-request handler timeout.")

	fs.StringVar(&s.TallyScope, "server.tally-scope", s.TallyScope, ""+
		"Scope used when picking the winning menu: all-time counts every vote a menu ever "+
		"received, daily counts only votes cast on the reporting day.")
}
