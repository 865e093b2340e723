package v1

import (
	"context"
	"encoding/json"
	"time"

	v1 "github.com/AndriiHamasa/lunchify/api/v1"
	"github.com/AndriiHamasa/lunchify/internal/pkg/metrics"
	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
	"github.com/maxiaolu1981/cretem/nexuscore/log"
)

// MenuSrv 定义菜单发布与查询业务。
type MenuSrv interface {
	// Publish 为餐厅发布当天的菜单。一家餐厅每天只能发布一次，
	// 菜单和菜品整体成功或整体失败。
	Publish(ctx context.Context, req *v1.PublishMenuRequest, opts metav1.CreateOptions) (*v1.Menu, error)
	Current(ctx context.Context, opts metav1.ListOptions) (*v1.MenuList, error)
	Get(ctx context.Context, id uint64, opts metav1.GetOptions) (*v1.Menu, error)
	List(ctx context.Context, opts metav1.ListOptions) (*v1.MenuList, error)
	Delete(ctx context.Context, id uint64, opts metav1.DeleteOptions) error
}

type menuService struct {
	srv *service
}

var _ MenuSrv = &menuService{}

func newMenus(srv *service) *menuService {
	return &menuService{srv: srv}
}

func (m *menuService) Publish(ctx context.Context, req *v1.PublishMenuRequest, opts metav1.CreateOptions) (*v1.Menu, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	restaurant, err := m.srv.store.Restaurants().Get(ctx, req.RestaurantID, metav1.GetOptions{})
	if err != nil {
		return nil, err
	}

	menu := &v1.Menu{
		RestaurantID: restaurant.ID,
		Date:         v1.DateOf(m.srv.nowFunc()),
	}
	for _, spec := range req.Dishes {
		menu.Dishes = append(menu.Dishes, &v1.Dish{
			ObjectMeta:  metav1.ObjectMeta{Name: spec.Name},
			Description: spec.Description,
			Price:       spec.Price,
		})
	}

	if err := m.srv.store.Menus().Create(ctx, menu, opts); err != nil {
		return nil, err
	}

	metrics.MenusPublished.Inc()
	log.Infow("menu published",
		"restaurant", restaurant.Name,
		"date", menu.Date.Format("2006-01-02"),
		"dishes", len(menu.Dishes))
	m.srv.invalidateMenuCaches(ctx)

	return menu, nil
}

func (m *menuService) Current(ctx context.Context, opts metav1.ListOptions) (*v1.MenuList, error) {
	today := v1.DateOf(m.srv.nowFunc())
	key := currentMenusKey(today)

	if data, ok := m.srv.cacheGet(ctx, key); ok {
		cached := &v1.MenuList{}
		if err := json.Unmarshal(data, cached); err == nil {
			return cached, nil
		}
	}

	list, err := m.srv.store.Menus().ListByDate(ctx, today, opts)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(list); err == nil {
		m.srv.cacheSet(ctx, key, data)
	}

	return list, nil
}

func (m *menuService) Get(ctx context.Context, id uint64, opts metav1.GetOptions) (*v1.Menu, error) {
	return m.srv.store.Menus().Get(ctx, id, opts)
}

func (m *menuService) List(ctx context.Context, opts metav1.ListOptions) (*v1.MenuList, error) {
	return m.srv.store.Menus().List(ctx, opts)
}

func (m *menuService) Delete(ctx context.Context, id uint64, opts metav1.DeleteOptions) error {
	if err := m.srv.store.Menus().Delete(ctx, id, opts); err != nil {
		return err
	}
	log.Infow("menu deleted", "menu", id)
	m.srv.invalidateMenuCaches(ctx)

	return nil
}

func currentMenusKey(date time.Time) string {
	return "lunchify:menus:current:" + date.Format("2006-01-02")
}

func winnerKey(date time.Time) string {
	return "lunchify:winner:" + date.Format("2006-01-02")
}

// cacheGet / cacheSet 是缓存的空实现安全封装。
func (s *service) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}

	return s.cache.Get(ctx, key)
}

func (s *service) cacheSet(ctx context.Context, key string, value []byte) {
	if s.cache == nil {
		return
	}
	s.cache.Set(ctx, key, value)
}

// invalidateMenuCaches 清掉当天的菜单和计票缓存。写路径（发菜单、投票、删餐厅）
// 都要调用，保证读接口不吐过期数据。
func (s *service) invalidateMenuCaches(ctx context.Context) {
	if s.cache == nil {
		return
	}
	today := v1.DateOf(s.nowFunc())
	s.cache.Invalidate(ctx, currentMenusKey(today), winnerKey(today))
}
