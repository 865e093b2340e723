package v1

import (
	"time"

	"github.com/AndriiHamasa/lunchify/internal/apiserver/store"
	"github.com/AndriiHamasa/lunchify/internal/pkg/cache"
	"github.com/AndriiHamasa/lunchify/internal/pkg/event"
)

// Service 定义业务层入口，control 层通过它访问各业务能力。
type Service interface {
	Restaurants() RestaurantSrv
	Menus() MenuSrv
	Votes() VoteSrv
	Tally() TallySrv
}

type service struct {
	store    store.Factory
	cache    *cache.Cache
	producer event.Producer

	// nowFunc 注入时钟，测试里可以冻结"今天"。
	nowFunc func() time.Time

	// tallyDaily 为真时只统计当日选票，否则取菜单历史累计票数。
	tallyDaily bool
}

// Option 调整 service 的行为。
type Option func(*service)

// WithClock 替换取当前时间的函数。
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.nowFunc = now
	}
}

// WithDailyTally 把计票口径切到只统计当日选票。
func WithDailyTally() Option {
	return func(s *service) {
		s.tallyDaily = true
	}
}

// WithCache 启用只读接口缓存。
func WithCache(c *cache.Cache) Option {
	return func(s *service) {
		s.cache = c
	}
}

// WithProducer 设置投票事件生产者。
func WithProducer(p event.Producer) Option {
	return func(s *service) {
		s.producer = p
	}
}

// NewService returns Service interface.
func NewService(store store.Factory, opts ...Option) Service {
	s := &service{
		store:    store,
		producer: event.New(nil),
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *service) Restaurants() RestaurantSrv {
	return newRestaurants(s)
}

func (s *service) Menus() MenuSrv {
	return newMenus(s)
}

func (s *service) Votes() VoteSrv {
	return newVotes(s)
}

func (s *service) Tally() TallySrv {
	return newTally(s)
}
