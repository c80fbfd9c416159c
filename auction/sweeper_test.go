package auction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"bidhouse/models"
)

func TestNewSweeper(t *testing.T) {
	_, repo := setupStore(t)
	service := newTestService(t, repo, newTestClock().Now)

	sweeper, err := NewSweeper(nil)
	assert.Error(t, err)
	assert.Nil(t, sweeper)

	sweeper, err = NewSweeper(service, WithSweeperInterval(0))
	assert.Error(t, err)
	assert.Nil(t, sweeper)

	sweeper, err = NewSweeper(service, WithSweeperInterval(time.Second), WithSweeperLogger(discardLogger()))
	assert.NoError(t, err)
	assert.NotNil(t, sweeper)
}

func TestSweeper_StartStop(t *testing.T) {
	_, repo := setupStore(t)
	clock := newTestClock()
	service := newTestService(t, repo, clock.Now)

	seller := createUser(t, repo, "seller@example.com")
	auction := createAuction(t, repo, seller, "1.00", testStart.Add(time.Minute))
	clock.Advance(time.Hour)

	t.Run("closes expired auctions", func(t *testing.T) {
		defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

		sweeper, err := NewSweeper(service,
			WithSweeperInterval(10*time.Millisecond),
			WithSweeperLogger(discardLogger()),
		)
		require.NoError(t, err)

		sweeper.Start()
		sweeper.Start() // Should be no-op
		assert.Eventually(t, func() bool {
			got, err := repo.GetAuction(context.Background(), auction.ID)
			return err == nil && got.Status == models.AuctionStatusClosed
		}, time.Second, 10*time.Millisecond)
		sweeper.Close()
		sweeper.Close() // Should be no-op
	})

	t.Run("close without start", func(t *testing.T) {
		defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

		sweeper, err := NewSweeper(service, WithSweeperLogger(discardLogger()))
		require.NoError(t, err)
		sweeper.Close()
	})
}

func TestSweeper_RunOnceWithLocker(t *testing.T) {
	_, repo := setupStore(t)
	clock := newTestClock()
	service := newTestService(t, repo, clock.Now)

	seller := createUser(t, repo, "seller@example.com")
	auction := createAuction(t, repo, seller, "1.00", testStart.Add(time.Minute))
	clock.Advance(time.Hour)

	t.Run("lock held by another instance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		locker := NewMockLocker(ctrl)
		locker.EXPECT().Lock(gomock.Any()).Return(nil, context.DeadlineExceeded)

		sweeper, err := NewSweeper(service, WithSweeperLocker(locker), WithSweeperLogger(discardLogger()))
		require.NoError(t, err)

		ids, err := sweeper.RunOnce(context.Background())
		assert.NoError(t, err)
		assert.Nil(t, ids)
	})

	t.Run("lock error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		locker := NewMockLocker(ctrl)
		locker.EXPECT().Lock(gomock.Any()).Return(nil, errors.New("redis down"))

		sweeper, err := NewSweeper(service, WithSweeperLocker(locker), WithSweeperLogger(discardLogger()))
		require.NoError(t, err)

		_, err = sweeper.RunOnce(context.Background())
		assert.EqualError(t, err, "redis down")
	})

	t.Run("lock acquired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		locker := NewMockLocker(ctrl)
		gomock.InOrder(
			locker.EXPECT().Lock(gomock.Any()).DoAndReturn(func(ctx context.Context) (context.Context, error) {
				return ctx, nil
			}),
			locker.EXPECT().Unlock().Return(true, nil),
		)

		sweeper, err := NewSweeper(service, WithSweeperLocker(locker), WithSweeperLogger(discardLogger()))
		require.NoError(t, err)

		ids, err := sweeper.RunOnce(context.Background())
		require.NoError(t, err)
		require.Len(t, ids, 1)
		assert.Equal(t, auction.ID, ids[0])
	})
}
