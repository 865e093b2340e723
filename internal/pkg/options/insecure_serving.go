package options

import (
	"net"
	"strconv"

	"github.com/AndriiHamasa/lunchify/internal/pkg/code"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
	"github.com/spf13/pflag"
)

// InsecureServingOptions 定义 HTTP 监听地址。生产部署假定由前置代理做 TLS。
type InsecureServingOptions struct {
	BindAddress string `json:"bind-address" mapstructure:"bind-address"`
	BindPort    int    `json:"bind-port"    mapstructure:"bind-port"`
}

func NewInsecureServingOptions() *InsecureServingOptions {
	return &InsecureServingOptions{
		BindAddress: "127.0.0.1",
		BindPort:    8080,
	}
}

// Address 返回 host:port 形式的监听地址。
func (i *InsecureServingOptions) Address() string {
	return net.JoinHostPort(i.BindAddress, strconv.Itoa(i.BindPort))
}

func (i *InsecureServingOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&i.BindAddress, "insecure.bind-address", i.BindAddress, ""+
		"The IP address on which to serve the --insecure.bind-port "+
		"(set to 0.0.0.0 for all IPv4 interfaces and :: for all IPv6 interfaces).")

	fs.IntVar(&i.BindPort, "insecure.bind-port", i.BindPort, ""+
		"The port on which to serve unsecured, unauthenticated access. Set to 0 to disable.")
}

func (i *InsecureServingOptions) Validate() []error {
	var errs []error

	if i.BindAddress == "" {
		errs = append(errs, errors.WithCode(code.ErrValidation, "bind address must not be empty"))
	} else if net.ParseIP(i.BindAddress) == nil {
		errs = append(errs, errors.WithCode(code.ErrValidation, "invalid bind address %q", i.BindAddress))
	}
	if i.BindPort < 0 || i.BindPort > 65535 {
		errs = append(errs, errors.WithCode(code.ErrValidation, "bind port %d must be between 0 and 65535", i.BindPort))
	}

	return errs
}
