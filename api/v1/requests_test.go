package v1

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AndriiHamasa/lunchify/internal/pkg/code"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
)

func TestDateOfNormalizesToUTCMidnight(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	moment := time.Date(2025, 9, 1, 1, 30, 0, 0, loc) // 2025-08-31 22:30 UTC

	day := DateOf(moment)

	assert.Equal(t, time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC), day)
	assert.Equal(t, day, DateOf(day))
}

func TestPublishMenuRequestValidate(t *testing.T) {
	valid := &PublishMenuRequest{
		RestaurantID: 1,
		Dishes:       []DishSpec{{Name: "borscht", Description: "beet soup", Price: 4.5}},
	}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name string
		req  *PublishMenuRequest
	}{
		{"missing restaurant", &PublishMenuRequest{
			Dishes: []DishSpec{{Name: "borscht", Description: "beet soup", Price: 4.5}},
		}},
		{"empty dishes", &PublishMenuRequest{RestaurantID: 1}},
		{"negative price", &PublishMenuRequest{
			RestaurantID: 1,
			Dishes:       []DishSpec{{Name: "borscht", Description: "beet soup", Price: -0.01}},
		}},
		{"missing description", &PublishMenuRequest{
			RestaurantID: 1,
			Dishes:       []DishSpec{{Name: "borscht", Price: 4.5}},
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			assert.Error(t, err)
			assert.True(t, errors.IsCode(err, code.ErrValidation), "got %v", err)
		})
	}
}

func TestCastVoteRequestValidate(t *testing.T) {
	assert.NoError(t, (&CastVoteRequest{MenuID: 7}).Validate())

	err := (&CastVoteRequest{}).Validate()
	assert.Error(t, err)
	assert.True(t, errors.IsCode(err, code.ErrValidation), "got %v", err)
}
