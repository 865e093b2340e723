package v1

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/AndriiHamasa/lunchify/api/v1"
	"github.com/AndriiHamasa/lunchify/internal/apiserver/store"
	"github.com/AndriiHamasa/lunchify/internal/apiserver/store/fake"
	"github.com/AndriiHamasa/lunchify/internal/pkg/code"
	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
)

var testDay = time.Date(2025, 9, 1, 12, 30, 0, 0, time.UTC)

func newTestService(opts ...Option) Service {
	svc, _ := newTestServiceWithStore(opts...)

	return svc
}

func newTestServiceWithStore(opts ...Option) (Service, store.Factory) {
	factory := fake.NewFakeStore()
	opts = append([]Option{WithClock(func() time.Time { return testDay })}, opts...)

	return NewService(factory, opts...), factory
}

func seedRestaurant(t *testing.T, svc Service, name, location string) *v1.Restaurant {
	t.Helper()
	restaurant := &v1.Restaurant{
		ObjectMeta: metav1.ObjectMeta{Name: name},
		Location:   location,
	}
	require.NoError(t, svc.Restaurants().Create(context.Background(), restaurant, metav1.CreateOptions{}))

	return restaurant
}

func dishSpecs(names ...string) []v1.DishSpec {
	specs := make([]v1.DishSpec, 0, len(names))
	for i, name := range names {
		specs = append(specs, v1.DishSpec{
			Name:        name,
			Description: name + " with rice",
			Price:       float64(5 + i),
		})
	}

	return specs
}

func TestPublishMenu(t *testing.T) {
	svc := newTestService()
	restaurant := seedRestaurant(t, svc, "Mama Mia", "Main St 1")

	menu, err := svc.Menus().Publish(context.Background(), &v1.PublishMenuRequest{
		RestaurantID: restaurant.ID,
		Dishes:       dishSpecs("borscht", "pierogi"),
	}, metav1.CreateOptions{})
	require.NoError(t, err)

	assert.Equal(t, restaurant.ID, menu.RestaurantID)
	assert.Equal(t, v1.DateOf(testDay), menu.Date)
	assert.Len(t, menu.Dishes, 2)
	for _, dish := range menu.Dishes {
		assert.Equal(t, menu.ID, dish.MenuID)
	}
}

func TestPublishMenuTwiceSameDay(t *testing.T) {
	svc := newTestService()
	restaurant := seedRestaurant(t, svc, "Mama Mia", "Main St 1")

	_, err := svc.Menus().Publish(context.Background(), &v1.PublishMenuRequest{
		RestaurantID: restaurant.ID,
		Dishes:       dishSpecs("borscht"),
	}, metav1.CreateOptions{})
	require.NoError(t, err)

	_, err = svc.Menus().Publish(context.Background(), &v1.PublishMenuRequest{
		RestaurantID: restaurant.ID,
		Dishes:       dishSpecs("pierogi"),
	}, metav1.CreateOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, code.ErrMenuAlreadyPublished), "got %v", err)

	// 第一份菜单不受影响。
	current, err := svc.Menus().Current(context.Background(), metav1.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, current.Items, 1)
}

func TestPublishMenuUnknownRestaurant(t *testing.T) {
	svc := newTestService()

	_, err := svc.Menus().Publish(context.Background(), &v1.PublishMenuRequest{
		RestaurantID: 404,
		Dishes:       dishSpecs("borscht"),
	}, metav1.CreateOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, code.ErrRestaurantNotFound), "got %v", err)
}

func TestPublishMenuDishConflictLeavesNothing(t *testing.T) {
	svc := newTestService()
	first := seedRestaurant(t, svc, "Mama Mia", "Main St 1")
	second := seedRestaurant(t, svc, "Sakura", "Main St 2")

	_, err := svc.Menus().Publish(context.Background(), &v1.PublishMenuRequest{
		RestaurantID: first.ID,
		Dishes:       dishSpecs("borscht"),
	}, metav1.CreateOptions{})
	require.NoError(t, err)

	// 第二家菜单里混入一条与现有菜品完全相同的元组，整单必须失败。
	_, err = svc.Menus().Publish(context.Background(), &v1.PublishMenuRequest{
		RestaurantID: second.ID,
		Dishes: append(dishSpecs("ramen"), v1.DishSpec{
			Name:        "borscht",
			Description: "borscht with rice",
			Price:       5,
		}),
	}, metav1.CreateOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, code.ErrDishConflict), "got %v", err)

	current, err := svc.Menus().Current(context.Background(), metav1.ListOptions{})
	require.NoError(t, err)
	require.Len(t, current.Items, 1)
	assert.Equal(t, first.ID, current.Items[0].RestaurantID)
}

func TestPublishMenuValidation(t *testing.T) {
	svc := newTestService()
	restaurant := seedRestaurant(t, svc, "Mama Mia", "Main St 1")

	cases := []struct {
		name string
		req  *v1.PublishMenuRequest
	}{
		{"no dishes", &v1.PublishMenuRequest{RestaurantID: restaurant.ID}},
		{"negative price", &v1.PublishMenuRequest{
			RestaurantID: restaurant.ID,
			Dishes:       []v1.DishSpec{{Name: "borscht", Description: "soup", Price: -1}},
		}},
		{"unnamed dish", &v1.PublishMenuRequest{
			RestaurantID: restaurant.ID,
			Dishes:       []v1.DishSpec{{Description: "soup", Price: 3}},
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.Menus().Publish(context.Background(), c.req, metav1.CreateOptions{})
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, code.ErrValidation), "got %v", err)
		})
	}
}

func TestCurrentMenusOnlyToday(t *testing.T) {
	svc, factory := newTestServiceWithStore()
	restaurant := seedRestaurant(t, svc, "Mama Mia", "Main St 1")

	_, err := svc.Menus().Publish(context.Background(), &v1.PublishMenuRequest{
		RestaurantID: restaurant.ID,
		Dishes:       dishSpecs("borscht"),
	}, metav1.CreateOptions{})
	require.NoError(t, err)

	// 时钟拨到第二天，昨天的菜单不再出现在 current 里。
	tomorrow := testDay.Add(24 * time.Hour)
	later := NewService(factory, WithClock(func() time.Time { return tomorrow }))

	current, err := later.Menus().Current(context.Background(), metav1.ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, current.Items)
}

func TestRestaurantIdentityUnique(t *testing.T) {
	svc := newTestService()
	seedRestaurant(t, svc, "Mama Mia", "Main St 1")

	dup := &v1.Restaurant{
		ObjectMeta: metav1.ObjectMeta{Name: "Mama Mia"},
		Location:   "Main St 1",
	}
	err := svc.Restaurants().Create(context.Background(), dup, metav1.CreateOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, code.ErrRestaurantAlreadyExist), "got %v", err)

	// 同名不同地址是另一家店。
	other := &v1.Restaurant{
		ObjectMeta: metav1.ObjectMeta{Name: "Mama Mia"},
		Location:   "Main St 2",
	}
	assert.NoError(t, svc.Restaurants().Create(context.Background(), other, metav1.CreateOptions{}))
}

func TestUpdateRestaurant(t *testing.T) {
	svc := newTestService()
	restaurant := seedRestaurant(t, svc, "Mama Mia", "Main St 1")
	seedRestaurant(t, svc, "Sakura", "Main St 2")

	restaurant.Name = "Mama Mia Deluxe"
	require.NoError(t, svc.Restaurants().Update(context.Background(), restaurant, metav1.UpdateOptions{}))

	got, err := svc.Restaurants().Get(context.Background(), restaurant.ID, metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Mama Mia Deluxe", got.Name)

	// 改成另一家店的身份要被唯一性约束挡住。
	restaurant.Name = "Sakura"
	restaurant.Location = "Main St 2"
	err = svc.Restaurants().Update(context.Background(), restaurant, metav1.UpdateOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, code.ErrRestaurantAlreadyExist), "got %v", err)

	unknown := &v1.Restaurant{ObjectMeta: metav1.ObjectMeta{ID: 404, Name: "Ghost"}, Location: "Nowhere 1"}
	err = svc.Restaurants().Update(context.Background(), unknown, metav1.UpdateOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, code.ErrRestaurantNotFound), "got %v", err)
}

func TestDeleteMenuCascades(t *testing.T) {
	svc := newTestService()
	menu := publishTestMenu(t, svc, "Mama Mia", "mama borscht")

	_, err := svc.Votes().Cast(context.Background(), "emp-1",
		&v1.CastVoteRequest{MenuID: menu.ID}, metav1.CreateOptions{})
	require.NoError(t, err)

	require.NoError(t, svc.Menus().Delete(context.Background(), menu.ID, metav1.DeleteOptions{}))

	_, err = svc.Menus().Get(context.Background(), menu.ID, metav1.GetOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, code.ErrMenuNotFound), "got %v", err)

	today, err := svc.Votes().ListToday(context.Background(), metav1.ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, today.Items)

	err = svc.Menus().Delete(context.Background(), menu.ID, metav1.DeleteOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, code.ErrMenuNotFound), "got %v", err)
}

// 菜品元组按完整描述判重，只有前缀相同的长描述不算冲突。
func TestPublishMenuLongDescriptionsDistinct(t *testing.T) {
	svc := newTestService()
	restaurant := seedRestaurant(t, svc, "Mama Mia", "Main St 1")

	prefix := strings.Repeat("x", 200)
	menu, err := svc.Menus().Publish(context.Background(), &v1.PublishMenuRequest{
		RestaurantID: restaurant.ID,
		Dishes: []v1.DishSpec{
			{Name: "borscht", Description: prefix + " alpha", Price: 5},
			{Name: "borscht", Description: prefix + " beta", Price: 5},
		},
	}, metav1.CreateOptions{})
	require.NoError(t, err)
	assert.Len(t, menu.Dishes, 2)
}
