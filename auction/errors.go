package auction

import (
	"errors"
	"fmt"
)

// Kind 錯誤分類，呼叫端依此決定回應方式
type Kind string

const (
	KindNotFound         Kind = "not_found"
	KindValidation       Kind = "validation"
	KindStateConflict    Kind = "state_conflict"
	KindConflict         Kind = "conflict"
	KindUnauthenticated  Kind = "unauthenticated"
	KindStoreUnavailable Kind = "store_unavailable"
)

// Reason 細分的拒絕原因，主要給出價驗證使用
type Reason string

const (
	ReasonAuctionNotFound   Reason = "auction_not_found"
	ReasonAuctionNotActive  Reason = "auction_not_active"
	ReasonSelfBid           Reason = "self_bid"
	ReasonInvalidAmount     Reason = "invalid_amount"
	ReasonBidTooLow         Reason = "bid_too_low"
	ReasonInvalidTitle      Reason = "invalid_title"
	ReasonInvalidPrice      Reason = "invalid_starting_price"
	ReasonInvalidEndTime    Reason = "invalid_end_time"
	ReasonInvalidImageURL   Reason = "invalid_image_url"
	ReasonUserNotFound      Reason = "user_not_found"
	ReasonIdentityConflict  Reason = "identity_conflict"
	ReasonHighestBidChanged Reason = "highest_bid_changed"
)

// Error 核心邏輯回傳的錯誤
// Kind 一定有值；Reason 只在需要讓使用者看到具體原因時才設定
type Error struct {
	Kind    Kind
	Reason  Reason
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := string(e.Kind)
	if e.Reason != "" {
		msg += ": " + string(e.Reason)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is 讓 errors.Is 可以同時比對分類與原因
// target 有 Reason 時比對 Reason，否則只比對 Kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Reason != "" {
		return e.Reason == t.Reason
	}
	return e.Kind == t.Kind
}

// 分類 sentinel，用於 errors.Is(err, ErrStateConflict)
var (
	ErrNotFound         = &Error{Kind: KindNotFound}
	ErrValidation       = &Error{Kind: KindValidation}
	ErrStateConflict    = &Error{Kind: KindStateConflict}
	ErrConflict         = &Error{Kind: KindConflict}
	ErrUnauthenticated  = &Error{Kind: KindUnauthenticated}
	ErrStoreUnavailable = &Error{Kind: KindStoreUnavailable}
)

// 原因 sentinel，用於 errors.Is(err, ErrBidTooLow)
var (
	ErrAuctionNotFound  = &Error{Kind: KindNotFound, Reason: ReasonAuctionNotFound}
	ErrAuctionNotActive = &Error{Kind: KindStateConflict, Reason: ReasonAuctionNotActive}
	ErrSelfBid          = &Error{Kind: KindStateConflict, Reason: ReasonSelfBid}
	ErrInvalidAmount    = &Error{Kind: KindValidation, Reason: ReasonInvalidAmount}
	ErrBidTooLow        = &Error{Kind: KindStateConflict, Reason: ReasonBidTooLow}
)

func newError(kind Kind, reason Reason, format string, args ...any) *Error {
	return &Error{Kind: kind, Reason: reason, Message: fmt.Sprintf(format, args...)}
}

func notFound(reason Reason, format string, args ...any) *Error {
	return newError(KindNotFound, reason, format, args...)
}

func invalid(reason Reason, format string, args ...any) *Error {
	return newError(KindValidation, reason, format, args...)
}

func stateConflict(reason Reason, format string, args ...any) *Error {
	return newError(KindStateConflict, reason, format, args...)
}

func unavailable(op string, err error) *Error {
	return &Error{Kind: KindStoreUnavailable, Message: op, Err: err}
}

// KindOf 取得錯誤的分類，非本套件的錯誤一律視為儲存層異常
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStoreUnavailable
}

// ReasonOf 取得錯誤的細分原因，沒有時回傳空字串
func ReasonOf(err error) Reason {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason
	}
	return ""
}

// IsExpected 業務規則的拒絕屬於預期結果，不應以錯誤等級記錄
func IsExpected(err error) bool {
	switch KindOf(err) {
	case KindNotFound, KindValidation, KindStateConflict, KindUnauthenticated:
		return true
	}
	return false
}
