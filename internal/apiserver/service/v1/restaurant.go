package v1

import (
	"context"

	v1 "github.com/AndriiHamasa/lunchify/api/v1"
	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
	"github.com/maxiaolu1981/cretem/nexuscore/log"
)

// RestaurantSrv 定义餐厅管理业务。
type RestaurantSrv interface {
	Create(ctx context.Context, restaurant *v1.Restaurant, opts metav1.CreateOptions) error
	Update(ctx context.Context, restaurant *v1.Restaurant, opts metav1.UpdateOptions) error
	Get(ctx context.Context, id uint64, opts metav1.GetOptions) (*v1.Restaurant, error)
	List(ctx context.Context, opts metav1.ListOptions) (*v1.RestaurantList, error)
	Delete(ctx context.Context, id uint64, opts metav1.DeleteOptions) error
}

type restaurantService struct {
	srv *service
}

var _ RestaurantSrv = &restaurantService{}

func newRestaurants(srv *service) *restaurantService {
	return &restaurantService{srv: srv}
}

func (r *restaurantService) Create(ctx context.Context, restaurant *v1.Restaurant, opts metav1.CreateOptions) error {
	if err := restaurant.Validate(); err != nil {
		return err
	}

	if err := r.srv.store.Restaurants().Create(ctx, restaurant, opts); err != nil {
		return err
	}
	log.Infow("restaurant created", "name", restaurant.Name, "location", restaurant.Location)

	return nil
}

func (r *restaurantService) Update(ctx context.Context, restaurant *v1.Restaurant, opts metav1.UpdateOptions) error {
	if err := restaurant.Validate(); err != nil {
		return err
	}

	// 先读出旧记录，确认存在且保留创建信息。
	current, err := r.srv.store.Restaurants().Get(ctx, restaurant.ID, metav1.GetOptions{})
	if err != nil {
		return err
	}
	current.Name = restaurant.Name
	current.Location = restaurant.Location

	if err := r.srv.store.Restaurants().Update(ctx, current, opts); err != nil {
		return err
	}
	*restaurant = *current
	log.Infow("restaurant updated", "id", restaurant.ID, "name", restaurant.Name, "location", restaurant.Location)
	// 获胜菜单的响应里带餐厅名，改名后不能再吐旧缓存。
	r.srv.invalidateMenuCaches(ctx)

	return nil
}

func (r *restaurantService) Get(ctx context.Context, id uint64, opts metav1.GetOptions) (*v1.Restaurant, error) {
	return r.srv.store.Restaurants().Get(ctx, id, opts)
}

func (r *restaurantService) List(ctx context.Context, opts metav1.ListOptions) (*v1.RestaurantList, error) {
	return r.srv.store.Restaurants().List(ctx, opts)
}

func (r *restaurantService) Delete(ctx context.Context, id uint64, opts metav1.DeleteOptions) error {
	if err := r.srv.store.Restaurants().Delete(ctx, id, opts); err != nil {
		return err
	}
	r.srv.invalidateMenuCaches(ctx)

	return nil
}
