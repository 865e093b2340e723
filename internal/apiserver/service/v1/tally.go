package v1

import (
	"context"
	"encoding/json"

	v1 "github.com/AndriiHamasa/lunchify/api/v1"
	"github.com/AndriiHamasa/lunchify/internal/pkg/code"
	"github.com/AndriiHamasa/lunchify/internal/pkg/metrics"
	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
)

// TallySrv 定义计票业务。
type TallySrv interface {
	// Winner 返回得票最高的菜单，计票口径由 TallyScope 决定：默认跨全部
	// 历史累计，daily 只计当日。并列取菜单 ID 较小者；没有任何可计的
	// 选票时返回 ErrNoVotesYet。
	Winner(ctx context.Context) (*v1.TallyResult, error)
}

type tallyService struct {
	srv *service
}

var _ TallySrv = &tallyService{}

func newTally(srv *service) *tallyService {
	return &tallyService{srv: srv}
}

func (t *tallyService) Winner(ctx context.Context) (*v1.TallyResult, error) {
	today := v1.DateOf(t.srv.nowFunc())
	key := winnerKey(today)

	if data, ok := t.srv.cacheGet(ctx, key); ok {
		cached := &v1.TallyResult{}
		if err := json.Unmarshal(data, cached); err == nil {
			metrics.TallyRequests.WithLabelValues("cached").Inc()

			return cached, nil
		}
	}

	menuID, total, err := t.srv.store.Votes().TopMenu(ctx, today, t.srv.tallyDaily)
	if err != nil {
		metrics.TallyRequests.WithLabelValues("error").Inc()

		return nil, err
	}
	if menuID == 0 {
		metrics.TallyRequests.WithLabelValues("empty").Inc()

		return nil, errors.WithCode(code.ErrNoVotesYet, "no votes have been cast yet")
	}

	menu, err := t.srv.store.Menus().Get(ctx, menuID, metav1.GetOptions{})
	if err != nil {
		return nil, err
	}
	restaurant, err := t.srv.store.Restaurants().Get(ctx, menu.RestaurantID, metav1.GetOptions{})
	if err != nil {
		return nil, err
	}

	result := &v1.TallyResult{
		MenuID:         menu.ID,
		RestaurantName: restaurant.Name,
		Votes:          total,
		Dishes:         menu.Dishes,
	}

	if data, err := json.Marshal(result); err == nil {
		t.srv.cacheSet(ctx, key, data)
	}
	metrics.TallyRequests.WithLabelValues("ok").Inc()

	return result, nil
}
