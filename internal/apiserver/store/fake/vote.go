package fake

import (
	"context"
	"time"

	v1 "github.com/AndriiHamasa/lunchify/api/v1"
	"github.com/AndriiHamasa/lunchify/internal/pkg/code"
	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
)

type votes struct {
	ds *datastore
}

func (v *votes) Create(ctx context.Context, vote *v1.Vote, opts metav1.CreateOptions) error {
	v.ds.Lock()
	defer v.ds.Unlock()

	day := v1.DateOf(vote.VoteDate)
	for _, existing := range v.ds.votes {
		if existing.EmployeeID == vote.EmployeeID && existing.VoteDate.Equal(day) {
			return errors.WithCode(code.ErrAlreadyVoted,
				"employee %s already voted on %s", vote.EmployeeID, day.Format("2006-01-02"))
		}
	}

	vote.ID = v.ds.nextVoteID
	v.ds.nextVoteID++
	vote.VoteDate = day
	v.ds.votes = append(v.ds.votes, vote)

	return nil
}

func (v *votes) ListByDate(ctx context.Context, date time.Time, opts metav1.ListOptions) (*v1.VoteList, error) {
	v.ds.RLock()
	defer v.ds.RUnlock()

	day := v1.DateOf(date)
	ret := &v1.VoteList{}
	for _, vote := range v.ds.votes {
		if vote.VoteDate.Equal(day) {
			ret.Items = append(ret.Items, vote)
		}
	}
	ret.TotalCount = int64(len(ret.Items))

	return ret, nil
}

func (v *votes) TopMenu(ctx context.Context, date time.Time, scopeDaily bool) (uint64, int64, error) {
	v.ds.RLock()
	defer v.ds.RUnlock()

	day := v1.DateOf(date)
	todayMenus := map[uint64]bool{}
	if scopeDaily {
		for _, menu := range v.ds.menus {
			if menu.Date.Equal(day) {
				todayMenus[menu.ID] = true
			}
		}
	}

	counts := map[uint64]int64{}
	for _, vote := range v.ds.votes {
		if scopeDaily && (!todayMenus[vote.MenuID] || !vote.VoteDate.Equal(day)) {
			continue
		}
		counts[vote.MenuID]++
	}

	var bestID uint64
	var bestCount int64
	for menuID, count := range counts {
		if count > bestCount || (count == bestCount && (bestID == 0 || menuID < bestID)) {
			bestID = menuID
			bestCount = count
		}
	}

	return bestID, bestCount, nil
}
