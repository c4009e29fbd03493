package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"intake_dossier/internal/domain/entities"
	"intake_dossier/internal/usecase/interfaces"
	mock_interfaces "intake_dossier/internal/usecase/interfaces/mocks"
	"intake_dossier/internal/usecase/records"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func themeRow() entities.Record {
	return entities.Record{
		"id":   "t1",
		"name": "Coastal",
		"colors": map[string]any{
			"primary": "#0A4D68",
			"brand":   map[string]any{"dark": "#05299E", "light_accent": "#88E1F2"},
		},
		"typography": map[string]any{
			"heading_family": "Playfair Display",
			"scale":          float64(1.25),
			"unset":          nil,
		},
		"is_active": true,
	}
}

func TestThemeCache_NeverRefetchesByDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_interfaces.NewMockIRecordStore(ctrl)
	store.EXPECT().
		Filter(gomock.Any(), entities.CollectionTheme, map[string]any{entities.FieldIsActive: true}, entities.SortSpec("-updated_date"), 1).
		Return([]entities.Record{themeRow()}, nil).
		Times(1)

	clock := newFakeClock()
	c := NewThemeCache(records.New(store).Theme, 0, nil).WithClock(clock.Now)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		theme, err := c.Theme(ctx)
		require.NoError(t, err)
		require.Equal(t, "Coastal", theme.Name)
		clock.Advance(24 * time.Hour)
	}
}

func TestThemeCache_TTLAndInvalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_interfaces.NewMockIRecordStore(ctrl)
	store.EXPECT().
		Filter(gomock.Any(), entities.CollectionTheme, gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]entities.Record{themeRow()}, nil).
		Times(3)

	clock := newFakeClock()
	c := NewThemeCache(records.New(store).Theme, time.Hour, nil).WithClock(clock.Now)
	ctx := context.Background()

	_, err := c.Theme(ctx)
	require.NoError(t, err)
	clock.Advance(30 * time.Minute)
	_, err = c.Theme(ctx)
	require.NoError(t, err)
	clock.Advance(30 * time.Minute)
	_, err = c.Theme(ctx)
	require.NoError(t, err)

	c.Invalidate()
	_, err = c.Theme(ctx)
	require.NoError(t, err)
}

func TestThemeCache_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("no active theme", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		store.EXPECT().Filter(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]entities.Record{}, nil)

		_, err := NewThemeCache(records.New(store).Theme, 0, nil).Theme(ctx)
		require.ErrorIs(t, err, ErrNoActiveTheme)
	})

	t.Run("stale theme survives failed reload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		gomock.InOrder(
			store.EXPECT().Filter(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return([]entities.Record{themeRow()}, nil),
			store.EXPECT().Filter(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, interfaces.NewStoreError(interfaces.ErrStoreUnavailable, entities.CollectionTheme, "filter", errors.New("down"))),
		)

		clock := newFakeClock()
		c := NewThemeCache(records.New(store).Theme, time.Minute, nil).WithClock(clock.Now)
		_, err := c.Theme(ctx)
		require.NoError(t, err)
		clock.Advance(time.Hour)
		theme, err := c.Theme(ctx)
		require.NoError(t, err)
		require.Equal(t, "t1", theme.ID)
	})
}

func TestThemeVariables(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIRecordStore(ctrl)
	store.EXPECT().Filter(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]entities.Record{themeRow()}, nil)

	vars, err := NewThemeCache(records.New(store).Theme, 0, nil).Variables(context.Background())
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"--color-primary":            "#0A4D68",
		"--color-brand-dark":         "#05299E",
		"--color-brand-light-accent": "#88E1F2",
		"--font-heading-family":      "Playfair Display",
		"--font-scale":               "1.25",
	}, vars)
}

func TestThemeCache_InvalidateDuringLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	started := make(chan struct{})
	release := make(chan struct{})
	renamed := themeRow()
	renamed["name"] = "Harbor"
	store := mock_interfaces.NewMockIRecordStore(ctrl)
	gomock.InOrder(
		store.EXPECT().
			Filter(gomock.Any(), entities.CollectionTheme, gomock.Any(), gomock.Any(), 1).
			DoAndReturn(func(context.Context, entities.CollectionName, map[string]any, entities.SortSpec, int) ([]entities.Record, error) {
				close(started)
				<-release
				return []entities.Record{themeRow()}, nil
			}),
		store.EXPECT().
			Filter(gomock.Any(), entities.CollectionTheme, gomock.Any(), gomock.Any(), 1).
			Return([]entities.Record{renamed}, nil),
	)

	c := NewThemeCache(records.New(store).Theme, 0, nil)
	ctx := context.Background()

	type result struct {
		theme entities.Theme
		err   error
	}
	first := make(chan result)
	go func() {
		theme, err := c.Theme(ctx)
		first <- result{theme, err}
	}()
	<-started
	c.Invalidate()
	close(release)
	got := <-first
	require.NoError(t, got.err)
	require.Equal(t, "Coastal", got.theme.Name)

	theme, err := c.Theme(ctx)
	require.NoError(t, err)
	require.Equal(t, "Harbor", theme.Name)
}
