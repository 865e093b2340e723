package app

import (
	cliflag "github.com/maxiaolu1981/cretem/nexuscore/component-base/cli/flag"
)

// CliOptions 抽象命令行应用的配置参数集合。
type CliOptions interface {
	Flags() cliflag.NamedFlagSets
	Validate() []error
}

// CompleteableOptions 在校验前补全缺省值。
type CompleteableOptions interface {
	Complete() error
}

// PrintableOptions 可以把自身打印进启动日志。
type PrintableOptions interface {
	String() string
}
