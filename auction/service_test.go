package auction

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bidhouse/models"
)

func TestNewService(t *testing.T) {
	_, repo := setupStore(t)

	tests := []struct {
		name    string
		repo    Repository
		opts    []ServiceOption
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid configuration",
			repo: repo,
		},
		{
			name:    "nil repository",
			repo:    nil,
			wantErr: true,
			errMsg:  "repository cannot be nil",
		},
		{
			name:    "zero attempts",
			repo:    repo,
			opts:    []ServiceOption{WithMaxBidAttempts(0)},
			wantErr: true,
			errMsg:  "max bid attempts",
		},
		{
			name:    "zero recent bids",
			repo:    repo,
			opts:    []ServiceOption{WithRecentBids(0)},
			wantErr: true,
			errMsg:  "recent bids",
		},
		{
			name:    "negative retry delay",
			repo:    repo,
			opts:    []ServiceOption{WithRetryBaseDelay(-time.Second)},
			wantErr: true,
			errMsg:  "retry base delay",
		},
		{
			name: "with custom options",
			repo: repo,
			opts: []ServiceOption{
				WithLogger(discardLogger()),
				WithClock(time.Now),
				WithMaxBidAttempts(1),
				WithRetryBaseDelay(0),
				WithRecentBids(20),
				WithPublisher(nil),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, err := NewService(tt.repo, tt.opts...)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, service)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, service)
		})
	}
}

func TestService_CreateAuction(t *testing.T) {
	ctx := context.Background()
	_, repo := setupStore(t)
	clock := newTestClock()
	service := newTestService(t, repo, clock.Now)
	seller := createUser(t, repo, "seller@example.com")

	valid := func(modify func(in *CreateAuctionInput)) CreateAuctionInput {
		in := CreateAuctionInput{
			Title:         "  Vintage camera  ",
			StartingPrice: dec("10.00"),
			EndTime:       testStart.Add(24 * time.Hour),
		}
		if modify != nil {
			modify(&in)
		}
		return in
	}

	tests := []struct {
		name    string
		caller  Identity
		input   CreateAuctionInput
		wantErr error
		reason  Reason
	}{
		{
			name:    "anonymous caller",
			caller:  Identity{},
			input:   valid(nil),
			wantErr: ErrUnauthenticated,
		},
		{
			name:    "blank title",
			caller:  seller,
			input:   valid(func(in *CreateAuctionInput) { in.Title = "   " }),
			wantErr: ErrValidation,
			reason:  ReasonInvalidTitle,
		},
		{
			name:    "title too long",
			caller:  seller,
			input:   valid(func(in *CreateAuctionInput) { in.Title = strings.Repeat("a", 256) }),
			wantErr: ErrValidation,
			reason:  ReasonInvalidTitle,
		},
		{
			name:    "zero starting price",
			caller:  seller,
			input:   valid(func(in *CreateAuctionInput) { in.StartingPrice = dec("0") }),
			wantErr: ErrValidation,
			reason:  ReasonInvalidPrice,
		},
		{
			name:    "starting price with three decimals",
			caller:  seller,
			input:   valid(func(in *CreateAuctionInput) { in.StartingPrice = dec("1.005") }),
			wantErr: ErrValidation,
			reason:  ReasonInvalidPrice,
		},
		{
			name:    "end time now",
			caller:  seller,
			input:   valid(func(in *CreateAuctionInput) { in.EndTime = testStart }),
			wantErr: ErrValidation,
			reason:  ReasonInvalidEndTime,
		},
		{
			name:    "end time in the past",
			caller:  seller,
			input:   valid(func(in *CreateAuctionInput) { in.EndTime = testStart.Add(-time.Hour) }),
			wantErr: ErrValidation,
			reason:  ReasonInvalidEndTime,
		},
		{
			name:    "image url without scheme",
			caller:  seller,
			input:   valid(func(in *CreateAuctionInput) { in.ImageURL = lo.ToPtr("example.com/a.png") }),
			wantErr: ErrValidation,
			reason:  ReasonInvalidImageURL,
		},
		{
			name:    "image url with javascript scheme",
			caller:  seller,
			input:   valid(func(in *CreateAuctionInput) { in.ImageURL = lo.ToPtr("javascript:alert(1)") }),
			wantErr: ErrValidation,
			reason:  ReasonInvalidImageURL,
		},
		{
			name:   "image url too long",
			caller: seller,
			input: valid(func(in *CreateAuctionInput) {
				in.ImageURL = lo.ToPtr("https://example.com/" + strings.Repeat("a", 500))
			}),
			wantErr: ErrValidation,
			reason:  ReasonInvalidImageURL,
		},
		{
			name:    "unknown seller",
			caller:  Identity{UserID: uuid.New()},
			input:   valid(nil),
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auction, err := service.CreateAuction(ctx, tt.caller, tt.input)
			assert.Nil(t, auction)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.reason != "" {
				assert.Equal(t, tt.reason, ReasonOf(err))
			}
		})
	}

	t.Run("valid auction", func(t *testing.T) {
		auction, err := service.CreateAuction(ctx, seller, valid(func(in *CreateAuctionInput) {
			in.Description = lo.ToPtr(`<p>Works great</p><script>alert("x")</script>`)
			in.ImageURL = lo.ToPtr(" https://cdn.example.com/camera.png ")
		}))
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, auction.ID)
		assert.Equal(t, "Vintage camera", auction.Title)
		assert.Equal(t, models.AuctionStatusActive, auction.Status)
		require.NotNil(t, auction.Description)
		assert.Equal(t, "<p>Works great</p>", *auction.Description)
		require.NotNil(t, auction.ImageURL)
		assert.Equal(t, "https://cdn.example.com/camera.png", *auction.ImageURL)

		stored, err := repo.GetAuction(ctx, auction.ID)
		require.NoError(t, err)
		assert.Equal(t, seller.UserID, stored.SellerID)
		assert.True(t, stored.StartingPrice.Equal(dec("10")))
		assert.False(t, stored.CurrentHighestBid.Valid)
	})

	t.Run("empty optional fields are stored as null", func(t *testing.T) {
		auction, err := service.CreateAuction(ctx, seller, valid(func(in *CreateAuctionInput) {
			in.Description = lo.ToPtr("  <script></script> ")
			in.ImageURL = lo.ToPtr("")
		}))
		require.NoError(t, err)

		stored, err := repo.GetAuction(ctx, auction.ID)
		require.NoError(t, err)
		assert.Nil(t, stored.Description)
		assert.Nil(t, stored.ImageURL)
	})
}

func TestService_EnsureUser(t *testing.T) {
	ctx := context.Background()
	_, repo := setupStore(t)
	service := newTestService(t, repo, newTestClock().Now)

	id := uuid.New()
	require.NoError(t, service.EnsureUser(ctx, Identity{UserID: id, Email: "new@example.com"}))
	require.NoError(t, service.EnsureUser(ctx, Identity{UserID: id, Email: "new@example.com"}))

	user, err := repo.GetUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)

	assert.ErrorIs(t, service.EnsureUser(ctx, Identity{}), ErrUnauthenticated)
	assert.ErrorIs(t, service.EnsureUser(ctx, Identity{UserID: uuid.New()}), ErrUnauthenticated)
}
