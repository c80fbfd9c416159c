package redis

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/vmihailenco/msgpack/v5"
)

// 串流訊息的欄位
const (
	FieldType = "type"
	FieldData = "data"
)

var (
	ErrPointerType = errors.New("pointer type is not allowed")
	ErrNoData      = errors.New("data field not found or invalid type")
)

// Typed 實作此介面的訊息會額外寫入 type 欄位，下游不需要解碼就能過濾
type Typed interface {
	MessageType() string
}

// EncodeMessage 以 msgpack 編碼訊息，串流的值是二進位安全的所以不另外做 base64
func EncodeMessage[T any](data T) (map[string]any, error) {
	if t := reflect.TypeOf(data); t == nil || t.Kind() == reflect.Ptr {
		return nil, ErrPointerType
	}

	payload, err := msgpack.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("msgpack marshal error: %w", err)
	}

	message := map[string]any{FieldData: string(payload)}
	if typed, ok := any(data).(Typed); ok {
		message[FieldType] = typed.MessageType()
	}
	return message, nil
}

// DecodeMessage 是 EncodeMessage 的反向操作
func DecodeMessage[T any](message map[string]any) (T, error) {
	var result T

	if t := reflect.TypeOf(result); t == nil || t.Kind() == reflect.Ptr {
		return result, ErrPointerType
	}

	payload, ok := message[FieldData].(string)
	if !ok {
		return result, ErrNoData
	}
	if err := msgpack.Unmarshal([]byte(payload), &result); err != nil {
		return result, fmt.Errorf("msgpack unmarshal error: %w", err)
	}
	return result, nil
}
