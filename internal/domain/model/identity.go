package model

import (
	"strings"

	"github.com/RoyceAzure/lab/stadiumorder/internal/constants"
)

// Identity 由上游認證服務轉發的使用者身份
// 不存在代表訪客結帳
type Identity struct {
	ID              string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageUrl string
	Role            string
}

// DisplayName 組合顯示名稱，訂單未填 guestName 時使用
func (i *Identity) DisplayName() string {
	name := strings.TrimSpace(strings.TrimSpace(i.FirstName) + " " + strings.TrimSpace(i.LastName))
	if name != "" {
		return name
	}
	return i.Email
}

func (i *Identity) IsAdmin() bool {
	return i.Role == constants.RoleAdmin
}
