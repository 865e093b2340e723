package options

import (
	"github.com/spf13/pflag"
)

// FeatureOptions 功能开关。
type FeatureOptions struct {
	EnableProfiling bool `json:"profiling" mapstructure:"profiling"`
	EnableMetrics   bool `json:"enable-metrics" mapstructure:"enable-metrics"`
}

func NewFeatureOptions() *FeatureOptions {
	return &FeatureOptions{
		EnableMetrics:   true,
		EnableProfiling: true,
	}
}

func (o *FeatureOptions) Validate() []error {
	return []error{}
}

func (o *FeatureOptions) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&o.EnableProfiling, "feature.profiling", o.EnableProfiling, ""+
		"Enable profiling via web interface host:port/debug/pprof/.")

	fs.BoolVar(&o.EnableMetrics, "feature.enable-metrics", o.EnableMetrics, ""+
		"Enables metrics on the apiserver at /metrics.")
}
