package movies_test

import (
	"context"
	"errors"
	"testing"

	"github.com/kasuboski/moviez/pkg/movies"
	"github.com/kasuboski/moviez/pkg/movies/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestLoadHome(t *testing.T) {
	ctx := context.Background()

	t.Run("loads every list", func(t *testing.T) {
		home := movies.LoadHome(ctx, movies.NewMock())
		assert.NotEmpty(t, home.Popular)
		assert.NotEmpty(t, home.TopRated)
		assert.NotEmpty(t, home.Upcoming)
	})

	t.Run("nil lists become empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		p := mocks.NewMockProvider(ctrl)
		p.EXPECT().Popular(gomock.Any()).Return([]movies.FilmSummary{{ID: 1}}, nil)
		p.EXPECT().TopRated(gomock.Any()).Return(nil, nil)
		p.EXPECT().Upcoming(gomock.Any()).Return(nil, nil)

		home := movies.LoadHome(ctx, p)
		assert.Len(t, home.Popular, 1)
		assert.NotNil(t, home.TopRated)
		assert.NotNil(t, home.Upcoming)
	})

	t.Run("any failure empties every list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		p := mocks.NewMockProvider(ctrl)
		p.EXPECT().Popular(gomock.Any()).Return([]movies.FilmSummary{{ID: 1}}, nil).AnyTimes()
		p.EXPECT().TopRated(gomock.Any()).Return(nil, errors.New("expected testing error")).AnyTimes()
		p.EXPECT().Upcoming(gomock.Any()).Return([]movies.FilmSummary{{ID: 3}}, nil).AnyTimes()

		home := movies.LoadHome(ctx, p)
		assert.Equal(t, movies.Home{
			Popular:  []movies.FilmSummary{},
			TopRated: []movies.FilmSummary{},
			Upcoming: []movies.FilmSummary{},
		}, home)
	})
}
