package options

import (
	"os"
	"time"

	"github.com/maxiaolu1981/cretem/nexuscore/component-base/validation/field"
	"github.com/spf13/pflag"
)

// JwtOptions 定义令牌校验参数。令牌由外部身份系统签发，本服务只验签，
// 因此这里没有登录、刷新相关的配置。
type JwtOptions struct {
	Realm   string        `json:"realm"   mapstructure:"realm"`
	Key     string        `json:"-"       mapstructure:"key"`
	Timeout time.Duration `json:"timeout" mapstructure:"timeout"`
}

func NewJwtOptions() *JwtOptions {
	return &JwtOptions{
		Realm:   "lunchify",
		Key:     "",
		Timeout: 24 * time.Hour,
	}
}

func (j *JwtOptions) Complete() error {
	if j.Realm == "" {
		j.Realm = "lunchify"
	}
	if j.Timeout == 0 {
		j.Timeout = 24 * time.Hour
	}
	if j.Key == "" {
		j.Key = os.Getenv("JWT_SECRET_KEY")
	}
	return nil
}

func (j *JwtOptions) Validate() []error {
	errs := field.ErrorList{}
	path := field.NewPath("jwt")

	if j.Realm == "" {
		errs = append(errs, field.Required(path.Child("realm"), "realm is required"))
	}
	if j.Key == "" {
		errs = append(errs, field.Required(path.Child("key"), "signing key is required (flag --jwt.key or env JWT_SECRET_KEY)"))
	} else if len(j.Key) < 6 || len(j.Key) > 64 {
		errs = append(errs, field.Invalid(path.Child("key"), "****", "key length must be between 6 and 64"))
	}
	if j.Timeout <= 0 {
		errs = append(errs, field.Invalid(path.Child("timeout"), j.Timeout, "timeout must be positive"))
	}

	agg := errs.ToAggregate()
	if agg == nil {
		return nil
	}
	return agg.Errors()
}

func (j *JwtOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&j.Realm, "jwt.realm", j.Realm, "Realm name to display to the user.")

	fs.StringVar(&j.Key, "jwt.key", j.Key, "Shared key used to verify JWT tokens issued by the identity provider.")

	fs.DurationVar(&j.Timeout, "jwt.timeout", j.Timeout, "Maximum accepted token age.")
}
