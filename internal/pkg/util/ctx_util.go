package util

import (
	"context"

	"github.com/RoyceAzure/lab/stadiumorder/internal/constants"
	"github.com/RoyceAzure/lab/stadiumorder/internal/domain/model"
)

// GetIdentityFromContext 從請求上下文中取得使用者身份
// 未登入(訪客)時回傳nil
func GetIdentityFromContext(ctx context.Context) *model.Identity {
	var identity *model.Identity

	if v := ctx.Value(constants.IdentityPayloadKey); v != nil {
		identity = v.(*model.Identity)
	}

	return identity
}

// GetRequestIDFromContext 取得request id, 不存在時回傳unknown
func GetRequestIDFromContext(ctx context.Context) string {
	requestId := "unknown"
	if v := ctx.Value(constants.RequestIDKey); v != nil {
		requestId = v.(string)
	}
	return requestId
}
