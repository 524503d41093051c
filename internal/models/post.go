// models содержит доменные сущности сервиса объявлений.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"encoding/json"
	"time"
)

// PostRow — «сырая» строка листинга в том виде, в каком её вернул GROUP BY-запрос.
//
// Особенности:
//   - nullable-колонки — указатели;
//   - агрегаты не нормализованы: ProductItemsJSON может быть NULL или содержать null-элементы,
//     массивы могут содержать NULL-элементы;
//   - поля полной формы в minimal-запросе не заполняются.
type PostRow struct {
	ID        int64
	Price     *float64
	Thumbnail *string
	PostTime  time.Time

	// Полная форма.
	UserName         *string
	UserID           *int64
	UserPhone        *string
	UserZalo         *string
	Content          *string
	UserAddress      *string
	Images           []*string
	CategoryName     *string
	SubcategoryNames []*string
	ProductItemsJSON json.RawMessage

	// Минимальная форма.
	ProductNames []*string
}

// ProductItem — товар внутри объявления.
type ProductItem struct {
	ID            int64    `json:"id"`
	Name          *string  `json:"name"`
	Price         *float64 `json:"price"`
	Description   *string  `json:"description"`
	SubcategoryID *int64   `json:"subcategory_id"`
}

// Post — собранная карточка объявления.
//
// Особенности:
//   - Items/Images/SubcategoryNames/ItemNames никогда не nil (пустые срезы);
//   - Full == false -> заполнены только ID/Price/Thumbnail/PostTime/ItemNames;
//   - Full == true -> ItemNames пуст, товары лежат в Items.
type Post struct {
	Full bool

	ID        int64
	Price     *float64
	Thumbnail string
	PostTime  time.Time

	UserName         *string
	UserID           *int64
	UserPhone        *string
	UserZalo         *string
	Content          *string
	UserAddress      *string
	Images           []string
	CategoryName     *string
	SubcategoryNames []string
	Items            []ProductItem

	ItemNames []string
}
