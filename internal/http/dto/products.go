// dto — JSON-представления ответов REST API.
package dto

import "time"

// PostFull — полная карточка объявления.
// Nullable-поля — указатели без omitempty: ключ присутствует всегда (значение может быть null).
type PostFull struct {
	ID               int64         `json:"id"`
	Price            *float64      `json:"price"`
	PostThumbnail    string        `json:"post_thumbnail"`
	PostTime         time.Time     `json:"post_time"`
	UserName         *string       `json:"user_name"`
	UserID           *int64        `json:"user_id"`
	UserPhone        *string       `json:"user_phone"`
	UserZalo         *string       `json:"user_zalo"`
	PostContent      *string       `json:"post_content"`
	UserAddress      *string       `json:"user_address"`
	PostImages       []string      `json:"post_images"`
	CategoryName     *string       `json:"category_name"`
	SubcategoryNames []string      `json:"subcategory_names"`
	ProductName      []ProductItem `json:"product_name"`
}

// ProductItem — товар внутри полной карточки.
type ProductItem struct {
	Name          *string  `json:"name"`
	Price         *float64 `json:"price"`
	Description   *string  `json:"description"`
	SubcategoryID *int64   `json:"subcategory_id"`
}

// PostMinimal — облегчённая карточка для ленты: товары — только имена.
type PostMinimal struct {
	ID            int64     `json:"id"`
	Price         *float64  `json:"price"`
	PostThumbnail string    `json:"post_thumbnail"`
	PostTime      time.Time `json:"post_time"`
	ProductName   []string  `json:"product_name"`
}
