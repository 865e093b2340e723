package store

var client Factory

// Factory 是存储层工厂接口，屏蔽具体数据库实现。
type Factory interface {
	Restaurants() RestaurantStore
	Menus() MenuStore
	Votes() VoteStore
	Close() error
}

// Client 返回当前存储工厂。
func Client() Factory {
	return client
}

// SetClient 设置当前存储工厂。
func SetClient(factory Factory) {
	client = factory
}
