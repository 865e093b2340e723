package v1

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/AndriiHamasa/lunchify/api/v1"
	"github.com/AndriiHamasa/lunchify/internal/pkg/code"
	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
)

func castVotes(t *testing.T, svc Service, menuID uint64, employees ...string) {
	t.Helper()
	for _, employee := range employees {
		_, err := svc.Votes().Cast(context.Background(), employee,
			&v1.CastVoteRequest{MenuID: menuID}, metav1.CreateOptions{})
		require.NoError(t, err)
	}
}

func employees(prefix string, n int) []string {
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, fmt.Sprintf("%s-%d", prefix, i))
	}

	return ids
}

func TestWinnerPicksHighestCount(t *testing.T) {
	svc := newTestService()
	menuA := publishTestMenu(t, svc, "Mama Mia", "mama borscht")
	menuB := publishTestMenu(t, svc, "Sakura", "sakura ramen", "sakura gyoza")
	menuC := publishTestMenu(t, svc, "Taqueria", "taco al pastor")

	castVotes(t, svc, menuA.ID, employees("a", 3)...)
	castVotes(t, svc, menuB.ID, employees("b", 5)...)
	castVotes(t, svc, menuC.ID, employees("c", 1)...)

	winner, err := svc.Tally().Winner(context.Background())
	require.NoError(t, err)

	assert.Equal(t, menuB.ID, winner.MenuID)
	assert.Equal(t, "Sakura", winner.RestaurantName)
	assert.Equal(t, int64(5), winner.Votes)
	assert.Len(t, winner.Dishes, 2)
}

// 并列时结果必须可复现：取菜单 ID 较小者。
func TestWinnerTieBreaksByMenuID(t *testing.T) {
	svc := newTestService()
	menuA := publishTestMenu(t, svc, "Mama Mia", "mama borscht")
	menuB := publishTestMenu(t, svc, "Sakura", "sakura ramen")
	require.Less(t, menuA.ID, menuB.ID)

	castVotes(t, svc, menuA.ID, employees("a", 2)...)
	castVotes(t, svc, menuB.ID, employees("b", 2)...)

	for i := 0; i < 5; i++ {
		winner, err := svc.Tally().Winner(context.Background())
		require.NoError(t, err)
		assert.Equal(t, menuA.ID, winner.MenuID)
		assert.Equal(t, int64(2), winner.Votes)
	}
}

func TestWinnerNoVotesYet(t *testing.T) {
	svc := newTestService()
	publishTestMenu(t, svc, "Mama Mia", "mama borscht")

	_, err := svc.Tally().Winner(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, code.ErrNoVotesYet), "got %v", err)
}

// 默认口径跨天累计：昨天的选票今天照样计入。
func TestWinnerAllTimeCountsEarlierVotes(t *testing.T) {
	svc, factory := newTestServiceWithStore()
	menu := publishTestMenu(t, svc, "Mama Mia", "mama borscht")
	castVotes(t, svc, menu.ID, employees("a", 3)...)

	nextDay := testDay.Add(24 * time.Hour)
	later := NewService(factory, WithClock(func() time.Time { return nextDay }))

	winner, err := later.Tally().Winner(context.Background())
	require.NoError(t, err)
	assert.Equal(t, menu.ID, winner.MenuID)
	assert.Equal(t, int64(3), winner.Votes)
	assert.Equal(t, "Mama Mia", winner.RestaurantName)
}

func TestWinnerDailyScopeIgnoresEarlierVotes(t *testing.T) {
	svc, factory := newTestServiceWithStore()
	menu := publishTestMenu(t, svc, "Mama Mia", "mama borscht")
	castVotes(t, svc, menu.ID, employees("a", 2)...)

	nextDay := testDay.Add(24 * time.Hour)
	later := NewService(factory,
		WithClock(func() time.Time { return nextDay }),
		WithDailyTally())

	_, err := later.Tally().Winner(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, code.ErrNoVotesYet), "got %v", err)
}

func TestWinnerDailyScopeSameDay(t *testing.T) {
	svc := newTestService(WithDailyTally())
	menu := publishTestMenu(t, svc, "Mama Mia", "mama borscht")
	castVotes(t, svc, menu.ID, employees("a", 4)...)

	winner, err := svc.Tally().Winner(context.Background())
	require.NoError(t, err)
	assert.Equal(t, menu.ID, winner.MenuID)
	assert.Equal(t, int64(4), winner.Votes)
}
