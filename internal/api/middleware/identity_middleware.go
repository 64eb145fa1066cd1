package middleware

import (
	"context"
	"net/http"

	"github.com/RoyceAzure/lab/stadiumorder/internal/constants"
	"github.com/RoyceAzure/lab/stadiumorder/internal/domain/model"
)

/*
IdentityMiddleware 讀取上游認證服務轉發的身份header
沒有header代表訪客, context內不放任何身份
身份驗證本身由上游負責, 這裡只承接結果
*/
func IdentityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(constants.IdentityHeaderUserID)
		if userID == "" {
			next.ServeHTTP(w, r)
			return
		}

		identity := &model.Identity{
			ID:        userID,
			Email:     r.Header.Get(constants.IdentityHeaderEmail),
			FirstName: r.Header.Get(constants.IdentityHeaderFirstName),
			LastName:  r.Header.Get(constants.IdentityHeaderLastName),
			Role:      r.Header.Get(constants.IdentityHeaderRole),
		}

		ctx := context.WithValue(r.Context(), constants.IdentityPayloadKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
