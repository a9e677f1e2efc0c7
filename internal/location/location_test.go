package location

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/inspiration/internal/logging"
	"github.com/ytget/inspiration/internal/model"
)

type manual struct {
	c  model.Coordinates
	ok bool
}

func (m manual) GetManualLocation() (model.Coordinates, bool) { return m.c, m.ok }

func failing(err error) Locator {
	return LocatorFunc(func(context.Context) (model.Coordinates, error) {
		return model.Coordinates{}, err
	})
}

func TestStatic(t *testing.T) {
	want := model.Coordinates{Latitude: 37.57, Longitude: 126.98}

	got, err := NewStatic(manual{c: want, ok: true}).Locate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = NewStatic(manual{}).Locate(context.Background())
	assert.ErrorIs(t, err, ErrNoLocation)
}

func TestChain_FirstSuccessWins(t *testing.T) {
	want := model.Coordinates{Latitude: 1, Longitude: 2}
	called := false
	last := LocatorFunc(func(context.Context) (model.Coordinates, error) {
		called = true
		return model.Coordinates{}, nil
	})

	chain := NewChain(logging.Discard(), NewStatic(manual{}), Fixed(want), last)
	got, err := chain.Locate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.False(t, called)
}

func TestChain_AllFail(t *testing.T) {
	boom := errors.New("boom")
	chain := NewChain(logging.Discard(), failing(boom), NewStatic(manual{}))

	_, err := chain.Locate(context.Background())
	assert.ErrorIs(t, err, ErrNoLocation)
	assert.ErrorIs(t, err, boom)
}

func TestChain_Empty(t *testing.T) {
	_, err := NewChain(logging.Discard()).Locate(context.Background())
	assert.ErrorIs(t, err, ErrNoLocation)
}

func TestChain_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewChain(logging.Discard(), failing(errors.New("x")), Fixed(model.Coordinates{})).Locate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
