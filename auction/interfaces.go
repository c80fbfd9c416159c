//go:generate mockgen -package=auction -destination=mock.go -source=interfaces.go

package auction

import "context"

// EventPublisher 發布拍賣事件，實作不應阻塞呼叫端
type EventPublisher interface {
	Publish(event Event) error
}

// Locker 跨實例的互斥鎖，Lock 回傳的 context 會在鎖失效時取消
type Locker interface {
	Lock(ctx context.Context) (context.Context, error)
	Unlock() (bool, error)
}
