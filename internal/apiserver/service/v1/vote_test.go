package v1

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/AndriiHamasa/lunchify/api/v1"
	"github.com/AndriiHamasa/lunchify/internal/pkg/code"
	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
)

func publishTestMenu(t *testing.T, svc Service, restaurantName string, dishNames ...string) *v1.Menu {
	t.Helper()
	restaurant := seedRestaurant(t, svc, restaurantName, restaurantName+" St 1")
	menu, err := svc.Menus().Publish(context.Background(), &v1.PublishMenuRequest{
		RestaurantID: restaurant.ID,
		Dishes:       dishSpecs(dishNames...),
	}, metav1.CreateOptions{})
	require.NoError(t, err)

	return menu
}

func TestCastVote(t *testing.T) {
	svc := newTestService()
	menu := publishTestMenu(t, svc, "Mama Mia", "mama borscht")

	vote, err := svc.Votes().Cast(context.Background(), "emp-1",
		&v1.CastVoteRequest{MenuID: menu.ID}, metav1.CreateOptions{})
	require.NoError(t, err)

	assert.Equal(t, "emp-1", vote.EmployeeID)
	assert.Equal(t, menu.ID, vote.MenuID)
	assert.Equal(t, v1.DateOf(testDay), vote.VoteDate)
}

func TestCastVoteTwiceSameDay(t *testing.T) {
	svc := newTestService()
	first := publishTestMenu(t, svc, "Mama Mia", "mama borscht")
	second := publishTestMenu(t, svc, "Sakura", "sakura ramen")

	_, err := svc.Votes().Cast(context.Background(), "emp-1",
		&v1.CastVoteRequest{MenuID: first.ID}, metav1.CreateOptions{})
	require.NoError(t, err)

	// 换一个菜单也不行，额度是按人按天算的。
	_, err = svc.Votes().Cast(context.Background(), "emp-1",
		&v1.CastVoteRequest{MenuID: second.ID}, metav1.CreateOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, code.ErrAlreadyVoted), "got %v", err)

	today, err := svc.Votes().ListToday(context.Background(), metav1.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, today.Items, 1)
}

func TestCastVoteUnknownMenu(t *testing.T) {
	svc := newTestService()

	_, err := svc.Votes().Cast(context.Background(), "emp-1",
		&v1.CastVoteRequest{MenuID: 404}, metav1.CreateOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, code.ErrMenuNotFound), "got %v", err)
}

// 同一雇员并发提交多笔投票，只允许一笔成功。
func TestConcurrentVotesExactlyOneSucceeds(t *testing.T) {
	svc := newTestService()
	menu := publishTestMenu(t, svc, "Mama Mia", "mama borscht")

	const workers = 32
	var succeeded int64
	var conflicted int64
	var wg sync.WaitGroup

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.Votes().Cast(context.Background(), "emp-1",
				&v1.CastVoteRequest{MenuID: menu.ID}, metav1.CreateOptions{})
			switch {
			case err == nil:
				atomic.AddInt64(&succeeded, 1)
			case errors.IsCode(err, code.ErrAlreadyVoted):
				atomic.AddInt64(&conflicted, 1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), succeeded)
	assert.Equal(t, int64(workers-1), conflicted)

	today, err := svc.Votes().ListToday(context.Background(), metav1.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, today.Items, 1)
}
