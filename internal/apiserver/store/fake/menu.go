package fake

import (
	"context"
	"time"

	v1 "github.com/AndriiHamasa/lunchify/api/v1"
	"github.com/AndriiHamasa/lunchify/internal/pkg/code"
	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
)

type menus struct {
	ds *datastore
}

// Create 在同一把锁内完成全部唯一性检查和写入，任何一条菜品冲突都不落任何行。
func (m *menus) Create(ctx context.Context, menu *v1.Menu, opts metav1.CreateOptions) error {
	m.ds.Lock()
	defer m.ds.Unlock()

	date := v1.DateOf(menu.Date)
	for _, existing := range m.ds.menus {
		if existing.RestaurantID == menu.RestaurantID && existing.Date.Equal(date) {
			return errors.WithCode(code.ErrMenuAlreadyPublished,
				"restaurant %d already published a menu for %s",
				menu.RestaurantID, date.Format("2006-01-02"))
		}
	}
	for _, dish := range menu.Dishes {
		for _, existing := range m.ds.dishes {
			if existing.Name == dish.Name &&
				existing.Description == dish.Description &&
				existing.Price == dish.Price {
				return errors.WithCode(code.ErrDishConflict,
					"dish (%s, %s, %.2f) already exists", dish.Name, dish.Description, dish.Price)
			}
		}
	}
	seen := map[[2]string]float64{}
	for _, dish := range menu.Dishes {
		key := [2]string{dish.Name, dish.Description}
		if price, ok := seen[key]; ok && price == dish.Price {
			return errors.WithCode(code.ErrDishConflict,
				"dish (%s, %s, %.2f) duplicated in the same menu", dish.Name, dish.Description, dish.Price)
		}
		seen[key] = dish.Price
	}

	menu.ID = m.ds.nextMenuID
	m.ds.nextMenuID++
	menu.Date = date
	for _, dish := range menu.Dishes {
		dish.ID = m.ds.nextDishID
		m.ds.nextDishID++
		dish.MenuID = menu.ID
		m.ds.dishes = append(m.ds.dishes, dish)
	}
	m.ds.menus = append(m.ds.menus, menu)

	return nil
}

func (m *menus) Get(ctx context.Context, id uint64, opts metav1.GetOptions) (*v1.Menu, error) {
	m.ds.RLock()
	defer m.ds.RUnlock()

	return m.get(id)
}

func (m *menus) get(id uint64) (*v1.Menu, error) {
	for _, menu := range m.ds.menus {
		if menu.ID == id {
			withDishes := *menu
			withDishes.Dishes = m.dishesOf(id)

			return &withDishes, nil
		}
	}

	return nil, errors.WithCode(code.ErrMenuNotFound, "menu %d not found", id)
}

func (m *menus) dishesOf(menuID uint64) []*v1.Dish {
	var dishes []*v1.Dish
	for _, dish := range m.ds.dishes {
		if dish.MenuID == menuID {
			dishes = append(dishes, dish)
		}
	}

	return dishes
}

func (m *menus) ListByDate(ctx context.Context, date time.Time, opts metav1.ListOptions) (*v1.MenuList, error) {
	m.ds.RLock()
	defer m.ds.RUnlock()

	day := v1.DateOf(date)
	ret := &v1.MenuList{}
	for _, menu := range m.ds.menus {
		if menu.Date.Equal(day) {
			withDishes := *menu
			withDishes.Dishes = m.dishesOf(menu.ID)
			ret.Items = append(ret.Items, &withDishes)
		}
	}
	ret.TotalCount = int64(len(ret.Items))

	return ret, nil
}

func (m *menus) Delete(ctx context.Context, id uint64, opts metav1.DeleteOptions) error {
	m.ds.Lock()
	defer m.ds.Unlock()

	idx := -1
	for i, menu := range m.ds.menus {
		if menu.ID == id {
			idx = i

			break
		}
	}
	if idx < 0 {
		return errors.WithCode(code.ErrMenuNotFound, "menu %d not found", id)
	}

	keptDishes := m.ds.dishes[:0]
	for _, dish := range m.ds.dishes {
		if dish.MenuID != id {
			keptDishes = append(keptDishes, dish)
		}
	}
	m.ds.dishes = keptDishes

	keptVotes := m.ds.votes[:0]
	for _, vote := range m.ds.votes {
		if vote.MenuID != id {
			keptVotes = append(keptVotes, vote)
		}
	}
	m.ds.votes = keptVotes

	m.ds.menus = append(m.ds.menus[:idx], m.ds.menus[idx+1:]...)

	return nil
}

func (m *menus) List(ctx context.Context, opts metav1.ListOptions) (*v1.MenuList, error) {
	m.ds.RLock()
	defer m.ds.RUnlock()

	ret := &v1.MenuList{}
	for _, menu := range m.ds.menus {
		withDishes := *menu
		withDishes.Dishes = m.dishesOf(menu.ID)
		ret.Items = append(ret.Items, &withDishes)
	}
	ret.TotalCount = int64(len(ret.Items))

	return ret, nil
}
