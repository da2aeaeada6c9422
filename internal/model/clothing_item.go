package model

import "time"

// ClothingItem: серверная модель вещи гардероба (таблица clothes).
type ClothingItem struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	Name     string `gorm:"not null" json:"name"`
	Category string `gorm:"not null" json:"category"`

	// Необязательные атрибуты: nil в БД хранится как NULL, в JSON: null.
	Color    *string `json:"color"`
	Brand    *string `json:"brand"`
	Size     *string `json:"size"`
	Season   *string `json:"season"`
	ImageURL *string `gorm:"column:image_url" json:"image_url"` // непрозрачная строка, не скачивается
	Notes    *string `json:"notes"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName фиксирует имя таблицы.
func (ClothingItem) TableName() string { return "clothes" }

// ClothingItemInput: полный набор изменяемых полей. Используется и при создании,
// и при обновлении: отсутствующее поле означает явный NULL.
type ClothingItemInput struct {
	Name     *string
	Category *string
	Color    *string
	Brand    *string
	Size     *string
	Season   *string
	ImageURL *string
	Notes    *string
}

// Категории и сезоны, которые предлагает клиент. Сервер их не проверяет.
var (
	Categories = []string{"Tops", "Bottoms", "Dresses", "Outerwear", "Shoes", "Accessories"}
	Seasons    = []string{"Spring", "Summer", "Fall", "Winter", "All Season"}
)

// StrPtr возвращает указатель на копию строки.
func StrPtr(s string) *string { return &s }

// StrVal разыменовывает указатель, nil превращается в "".
func StrVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
