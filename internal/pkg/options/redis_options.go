package options

import (
	"net"
	"strconv"
	"time"

	"github.com/spf13/pflag"
)

// RedisOptions 定义菜单缓存使用的 Redis 连接参数。
// Host 为空表示不启用缓存。
type RedisOptions struct {
	Host     string        `json:"host"     mapstructure:"host"`
	Port     int           `json:"port"     mapstructure:"port"`
	Password string        `json:"-"        mapstructure:"password"`
	Database int           `json:"database" mapstructure:"database"`
	Timeout  time.Duration `json:"timeout"  mapstructure:"timeout"`
	CacheTTL time.Duration `json:"cache-ttl" mapstructure:"cache-ttl"`
}

func NewRedisOptions() *RedisOptions {
	return &RedisOptions{
		Host:     "",
		Port:     6379,
		Password: "",
		Database: 0,
		Timeout:  2 * time.Second,
		CacheTTL: 30 * time.Second,
	}
}

// Addr 返回 host:port 形式的连接地址。
func (o *RedisOptions) Addr() string {
	return net.JoinHostPort(o.Host, strconv.Itoa(o.Port))
}

func (o *RedisOptions) Validate() []error {
	var errs []error
	return errs
}

func (o *RedisOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Host, "redis.host", o.Host, ""+
		"Hostname of your Redis server. Leave empty to disable the menu cache.")

	fs.IntVar(&o.Port, "redis.port", o.Port, ""+
		"The port the Redis server is listening on.")

	fs.StringVar(&o.Password, "redis.password", o.Password, ""+
		"Optional auth password for the Redis db.")

	fs.IntVar(&o.Database, "redis.database", o.Database, ""+
		"By default, the database is 0. Setting the database is not supported with redis cluster.")

	fs.DurationVar(&o.Timeout, "redis.timeout", o.Timeout, ""+
		"Timeout (in seconds) when connecting to redis service.")

	fs.DurationVar(&o.CacheTTL, "redis.cache-ttl", o.CacheTTL, ""+
		"How long cached menu and tally responses stay valid.")
}
