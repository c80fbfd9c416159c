package auction

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"bidhouse/models"
)

const (
	maxTitleLength    = 255
	maxImageURLLength = 500
)

// Identity 由外部驗證服務提供的呼叫者身份
// 所有會修改資料的操作都必須帶入，沒有預設身份
type Identity struct {
	UserID uuid.UUID
	Email  string
}

func (i Identity) Authenticated() bool {
	return i.UserID != uuid.Nil
}

func requireIdentity(caller Identity) error {
	if !caller.Authenticated() {
		return &Error{Kind: KindUnauthenticated, Message: "caller identity is required"}
	}
	return nil
}

type serviceOptions struct {
	logger         *slog.Logger
	publisher      EventPublisher
	clock          func() time.Time
	maxBidAttempts int
	retryBaseDelay time.Duration
	recentBids     int
}

type ServiceOption func(*serviceOptions)

// WithLogger 設置日誌記錄器
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(o *serviceOptions) {
		o.logger = logger
	}
}

// WithPublisher 設置事件發布者，nil 代表不發布
func WithPublisher(publisher EventPublisher) ServiceOption {
	return func(o *serviceOptions) {
		o.publisher = publisher
	}
}

// WithClock 設置時鐘，測試用
func WithClock(clock func() time.Time) ServiceOption {
	return func(o *serviceOptions) {
		o.clock = clock
	}
}

// WithMaxBidAttempts 設置出價遇到併發衝突時的最大嘗試次數(包含第一次)
func WithMaxBidAttempts(attempts int) ServiceOption {
	return func(o *serviceOptions) {
		o.maxBidAttempts = attempts
	}
}

// WithRetryBaseDelay 設置出價重試的指數退避起始間隔
func WithRetryBaseDelay(delay time.Duration) ServiceOption {
	return func(o *serviceOptions) {
		o.retryBaseDelay = delay
	}
}

// WithRecentBids 設置拍賣詳情回傳的最近出價筆數
func WithRecentBids(limit int) ServiceOption {
	return func(o *serviceOptions) {
		o.recentBids = limit
	}
}

// Service 拍賣的核心操作
// 本身不保存任何狀態，併發控制完全交給儲存層的交易與列鎖
type Service struct {
	repo     Repository
	logger   *slog.Logger
	sanitize *bluemonday.Policy
	options  serviceOptions
}

func NewService(repo Repository, opts ...ServiceOption) (*Service, error) {
	if repo == nil {
		return nil, errors.New("repository cannot be nil")
	}

	// 默認選項
	options := serviceOptions{
		logger:         slog.Default(),
		clock:          time.Now,
		maxBidAttempts: 5,
		retryBaseDelay: 10 * time.Millisecond,
		recentBids:     10,
	}

	// 應用自定義選項
	for _, opt := range opts {
		opt(&options)
	}

	if options.maxBidAttempts < 1 {
		return nil, errors.New("max bid attempts must be at least 1")
	}
	if options.recentBids < 1 {
		return nil, errors.New("recent bids limit must be at least 1")
	}
	if options.retryBaseDelay < 0 {
		return nil, errors.New("retry base delay cannot be negative")
	}

	return &Service{
		repo:     repo,
		logger:   options.logger.With(slog.String("caller", "AuctionService")),
		sanitize: bluemonday.UGCPolicy(),
		options:  options,
	}, nil
}

// now 所有時間都以 UTC 存放與比較
func (s *Service) now() time.Time {
	return s.options.clock().UTC()
}

func (s *Service) publish(event Event) {
	if s.options.publisher == nil {
		return
	}
	if err := s.options.publisher.Publish(event); err != nil {
		s.logger.Warn(
			"Fail to publish event",
			slog.String("type", string(event.Type)),
			slog.String("auctionID", event.AuctionID.String()),
			slog.Any("error", err),
		)
	}
}

// EnsureUser 第一次看到某個身份時建立對應的使用者
func (s *Service) EnsureUser(ctx context.Context, caller Identity) error {
	if err := requireIdentity(caller); err != nil {
		return err
	}
	email := strings.TrimSpace(caller.Email)
	if email == "" {
		return &Error{Kind: KindUnauthenticated, Message: "caller identity has no email"}
	}
	return s.repo.EnsureUser(ctx, &models.User{ID: caller.UserID, Email: email})
}

// CreateAuctionInput 建立拍賣需要的資料，選填欄位以 nil 表示
type CreateAuctionInput struct {
	Title         string
	Description   *string
	StartingPrice decimal.Decimal
	EndTime       time.Time
	ImageURL      *string
}

// CreateAuction 以呼叫者為賣家建立一筆 active 的拍賣
func (s *Service) CreateAuction(ctx context.Context, seller Identity, input CreateAuctionInput) (*models.Auction, error) {
	if err := requireIdentity(seller); err != nil {
		return nil, err
	}

	now := s.now()
	auction, err := s.buildAuction(seller.UserID, input, now)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateAuction(ctx, auction); err != nil {
		return nil, err
	}

	s.logger.Info(
		"Auction created",
		slog.String("auctionID", auction.ID.String()),
		slog.String("sellerID", auction.SellerID.String()),
		slog.Time("endTime", auction.EndTime),
	)
	return auction, nil
}

func (s *Service) buildAuction(sellerID uuid.UUID, input CreateAuctionInput, now time.Time) (*models.Auction, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, invalid(ReasonInvalidTitle, "title is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return nil, invalid(ReasonInvalidTitle, "title must not exceed %d characters", maxTitleLength)
	}

	if err := ValidateAmount(input.StartingPrice); err != nil {
		return nil, invalid(ReasonInvalidPrice, "starting price: %s", err.(*Error).Message)
	}

	endTime := input.EndTime.UTC()
	if !endTime.After(now) {
		return nil, invalid(ReasonInvalidEndTime, "end time must be in the future")
	}

	var imageURL *string
	if input.ImageURL != nil {
		if raw := strings.TrimSpace(*input.ImageURL); raw != "" {
			if err := validateImageURL(raw); err != nil {
				return nil, err
			}
			imageURL = lo.ToPtr(raw)
		}
	}

	var description *string
	if input.Description != nil {
		if text := strings.TrimSpace(s.sanitize.Sanitize(*input.Description)); text != "" {
			description = lo.ToPtr(text)
		}
	}

	return &models.Auction{
		SellerID:      sellerID,
		Title:         title,
		Description:   description,
		ImageURL:      imageURL,
		StartingPrice: input.StartingPrice,
		EndTime:       endTime,
		Status:        models.AuctionStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

func validateImageURL(raw string) error {
	if len(raw) > maxImageURLLength {
		return invalid(ReasonInvalidImageURL, "image url must not exceed %d characters", maxImageURLLength)
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return invalid(ReasonInvalidImageURL, "image url must be an absolute http(s) url")
	}
	return nil
}
