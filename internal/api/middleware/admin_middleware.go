package middleware

import (
	"net/http"

	"github.com/RoyceAzure/lab/stadiumorder/internal/pkg/api"
	"github.com/RoyceAzure/lab/stadiumorder/internal/pkg/util"
)

// AdminMiddleware 管理操作需要身份帶有admin role claim
// 取代舊版用email字串判斷管理員的做法
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := util.GetIdentityFromContext(r.Context())
		if identity == nil || !identity.IsAdmin() {
			api.ErrorJSON(w, http.StatusForbidden, "admin role required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
