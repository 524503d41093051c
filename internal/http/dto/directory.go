package dto

// Categories — заголовок раздела.
type Categories struct {
	CategoryName    string  `json:"category_name"`
	SubcategoryName *string `json:"subcategory_name"`
}

type Sport struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Area struct {
	ID       int64  `json:"id"`
	AreaName string `json:"area_name"`
}

type SubArea struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	AreaID   *int64  `json:"area_id"`
	AreaName *string `json:"area_name"`
	SportID  *int64  `json:"sport_id"`
}

type Store struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
	SubAreaID int64   `json:"sub_area_id"`
}

// ServiceContact — запись справочника охраны/медицины.
type ServiceContact struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	WardID   *int64  `json:"ward_id"`
	WardName *string `json:"ward_name"`
	AreaID   *int64  `json:"area_id"`
	AreaName *string `json:"area_name"`
}
