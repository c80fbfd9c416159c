package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 含時間與巢狀欄位的結構
type nestedMessage struct {
	Name      string         `msgpack:"name"`
	Tags      []string       `msgpack:"tags"`
	Attrs     map[string]int `msgpack:"attrs"`
	CreatedAt time.Time      `msgpack:"created_at"`
}

func TestEncodeMessage(t *testing.T) {
	t.Run("plain struct has no type field", func(t *testing.T) {
		message, err := EncodeMessage(TestMessage{ID: "1", Data: "hello"})
		require.NoError(t, err)
		assert.Contains(t, message, FieldData)
		assert.NotContains(t, message, FieldType)
	})

	t.Run("typed struct carries type field", func(t *testing.T) {
		message, err := EncodeMessage(typedMessage{Kind: "bid.placed", Value: 3})
		require.NoError(t, err)
		assert.Equal(t, "bid.placed", message[FieldType])
	})

	t.Run("pointer is rejected", func(t *testing.T) {
		_, err := EncodeMessage(&TestMessage{ID: "1"})
		assert.ErrorIs(t, err, ErrPointerType)
	})

	t.Run("nil interface is rejected", func(t *testing.T) {
		_, err := EncodeMessage[any](nil)
		assert.ErrorIs(t, err, ErrPointerType)
	})
}

func TestDecodeMessage(t *testing.T) {
	t.Run("nested struct", func(t *testing.T) {
		input := nestedMessage{
			Name:      "auction",
			Tags:      []string{"a", "b"},
			Attrs:     map[string]int{"x": 1},
			CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		}
		message, err := EncodeMessage(input)
		require.NoError(t, err)

		got, err := DecodeMessage[nestedMessage](message)
		require.NoError(t, err)
		assert.Equal(t, input.Name, got.Name)
		assert.Equal(t, input.Tags, got.Tags)
		assert.Equal(t, input.Attrs, got.Attrs)
		assert.True(t, input.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("missing data field", func(t *testing.T) {
		_, err := DecodeMessage[TestMessage](map[string]any{"other": "x"})
		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("data field with wrong type", func(t *testing.T) {
		_, err := DecodeMessage[TestMessage](map[string]any{FieldData: 42})
		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("corrupted payload", func(t *testing.T) {
		_, err := DecodeMessage[TestMessage](map[string]any{FieldData: "\xc1"})
		assert.Error(t, err)
	})

	t.Run("pointer target is rejected", func(t *testing.T) {
		_, err := DecodeMessage[*TestMessage](map[string]any{FieldData: ""})
		assert.ErrorIs(t, err, ErrPointerType)
	})
}
