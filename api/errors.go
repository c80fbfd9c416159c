package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"bidhouse/api/openapi"
	"bidhouse/auction"
)

// statusOf 把錯誤分類對應到 HTTP 狀態碼
func statusOf(kind auction.Kind) int {
	switch kind {
	case auction.KindNotFound:
		return http.StatusNotFound
	case auction.KindValidation:
		return http.StatusBadRequest
	case auction.KindStateConflict:
		return http.StatusUnprocessableEntity
	case auction.KindConflict:
		return http.StatusConflict
	case auction.KindUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusServiceUnavailable
	}
}

// rejection 記錄錯誤並產生回應內容
// 業務規則的拒絕只記 debug，其餘視為系統錯誤
func (impl *ServerImpl) rejection(op string, err error) (int, openapi.ErrorResponse) {
	kind := auction.KindOf(err)
	if auction.IsExpected(err) {
		impl.logger.Debug("Request rejected", slog.String("op", op), slog.String("kind", string(kind)), slog.Any("error", err))
	} else {
		impl.logger.Error("Request failed", slog.String("op", op), slog.String("kind", string(kind)), slog.Any("error", err))
	}

	reason := string(kind)
	if r := auction.ReasonOf(err); r != "" {
		reason = string(r)
	}
	response := openapi.ErrorResponse{Reason: lo.ToPtr(reason)}
	switch kind {
	case auction.KindStoreUnavailable:
		// 不把內部錯誤細節回給使用者
		response.Error = "Service temporarily unavailable"
	case auction.KindConflict:
		response.Error = "The auction is busy, please retry"
	default:
		response.Error = messageOf(err)
	}
	return statusOf(kind), response
}

func messageOf(err error) string {
	var e *auction.Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return err.Error()
}

func errorBody(message string, reason string) openapi.ErrorResponse {
	return openapi.ErrorResponse{Error: message, Reason: lo.ToPtr(reason)}
}

// handleRequestError 參數格式錯誤
func (impl *ServerImpl) handleRequestError(c *gin.Context, err error, status int) {
	impl.logger.Debug("Invalid request parameter", slog.String("path", c.FullPath()), slog.Any("error", err))
	c.JSON(status, errorBody("Invalid request parameter", string(auction.KindValidation)))
}

// renderUnwrittenErrors 補上產生的 handler 只設定狀態碼而沒有內容的回應
// 例如 request body 不是合法的 JSON
func (impl *ServerImpl) renderUnwrittenErrors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		status := c.Writer.Status()
		if status == http.StatusBadRequest {
			impl.logger.Debug("Invalid request body", slog.String("path", c.FullPath()), slog.Any("error", c.Errors.Last()))
			c.JSON(status, errorBody("Invalid request body", string(auction.KindValidation)))
			return
		}
		impl.logger.Error("Unhandled request error", slog.String("path", c.FullPath()), slog.Any("error", c.Errors.Last()))
		c.JSON(http.StatusInternalServerError, errorBody("Internal server error", "internal"))
	}
}
