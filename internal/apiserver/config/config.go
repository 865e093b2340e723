package config

import "github.com/AndriiHamasa/lunchify/internal/apiserver/options"

// Config 是 apiserver 的运行时配置。目前与完成校验后的 Options 等价，
// 单独一层是为了后续加入仅运行期派生的字段。
type Config struct {
	*options.Options
}

// CreateConfigFromOptions 基于命令行或配置文件给出的 Options 生成运行配置。
func CreateConfigFromOptions(opts *options.Options) (*Config, error) {
	return &Config{opts}, nil
}
