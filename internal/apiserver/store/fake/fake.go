// Package fake 提供内存存储实现，复刻数据库的唯一性约束，供单元测试使用。
package fake

import (
	"sync"

	v1 "github.com/AndriiHamasa/lunchify/api/v1"
	"github.com/AndriiHamasa/lunchify/internal/apiserver/store"
)

type datastore struct {
	sync.RWMutex

	restaurants []*v1.Restaurant
	menus       []*v1.Menu
	dishes      []*v1.Dish
	votes       []*v1.Vote

	nextRestaurantID uint64
	nextMenuID       uint64
	nextDishID       uint64
	nextVoteID       uint64
}

// NewFakeStore 返回一个空的内存存储工厂。
func NewFakeStore() store.Factory {
	return &datastore{
		nextRestaurantID: 1,
		nextMenuID:       1,
		nextDishID:       1,
		nextVoteID:       1,
	}
}

func (ds *datastore) Restaurants() store.RestaurantStore {
	return &restaurants{ds}
}

func (ds *datastore) Menus() store.MenuStore {
	return &menus{ds}
}

func (ds *datastore) Votes() store.VoteStore {
	return &votes{ds}
}

func (ds *datastore) Close() error {
	return nil
}
