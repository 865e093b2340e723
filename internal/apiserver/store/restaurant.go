package store

import (
	"context"

	v1 "github.com/AndriiHamasa/lunchify/api/v1"
	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
)

// RestaurantStore 定义餐厅存储接口。
// 同名同地址的餐厅只允许存在一条记录，由唯一索引保证。
type RestaurantStore interface {
	Create(ctx context.Context, restaurant *v1.Restaurant, opts metav1.CreateOptions) error
	Update(ctx context.Context, restaurant *v1.Restaurant, opts metav1.UpdateOptions) error
	Get(ctx context.Context, id uint64, opts metav1.GetOptions) (*v1.Restaurant, error)
	List(ctx context.Context, opts metav1.ListOptions) (*v1.RestaurantList, error)
	Delete(ctx context.Context, id uint64, opts metav1.DeleteOptions) error
}
