package model

// Section 實體配送區域，例如 "Section A (Home)"
// IsDeliveryAvailable 關閉後不影響已成立且指向該區域的訂單
type Section struct {
	SectionID           uint   `gorm:"primaryKey" json:"section_id"`
	Name                string `gorm:"not null;type:varchar(100)" json:"name"`
	IsDeliveryAvailable bool   `gorm:"not null;default:true" json:"is_delivery_available"`
}
