package dto

// ProductDTO 金額欄位沿用小數2位字串
type ProductDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	ImageUrl    string `json:"imageUrl"`
	IsAvailable bool   `json:"isAvailable"`
}

type SectionDTO struct {
	ID                  uint   `json:"id"`
	Name                string `json:"name"`
	IsDeliveryAvailable bool   `json:"isDeliveryAvailable"`
}

// SectionUpdateDTO 指標區分「沒帶欄位」與「帶false」
type SectionUpdateDTO struct {
	IsDeliveryAvailable *bool `json:"isDeliveryAvailable"`
}
