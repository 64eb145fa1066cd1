package util

import (
	"crypto/rand"
)

// 取餐號碼字母表，32字元，排除易混淆的 0/O/1/I
// 32^6 約 10.7 億組合，以單一場館的訂單量來說碰撞機率可忽略
// 32 整除 256，取餘數不會產生偏差
const orderNumberAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const OrderNumberLength = 6

// NewOrderNumber 產生6碼大寫取餐號碼
func NewOrderNumber() string {
	buf := make([]byte, OrderNumberLength)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	for i, b := range buf {
		buf[i] = orderNumberAlphabet[int(b)%len(orderNumberAlphabet)]
	}
	return string(buf)
}
