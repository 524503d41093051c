package models

// DefaultCategoryName — подпись, когда категория не указана или не найдена.
const DefaultCategoryName = "Tất cả danh mục"

// CategoryNames — заголовок раздела: имя категории и (опционально) подкатегории.
type CategoryNames struct {
	CategoryName    string
	SubcategoryName *string
}

// Sport — вид спорта.
type Sport struct {
	ID   int64
	Name string
}

// Area — район.
type Area struct {
	ID   int64
	Name string
}

// SubArea — подрайон (площадка) внутри района.
type SubArea struct {
	ID       int64
	Name     string
	AreaID   *int64
	AreaName *string
	SportID  *int64
}

// Store — магазин, привязанный к подрайону.
type Store struct {
	ID        int64
	Name      string
	Address   *string
	Phone     *string
	SubAreaID int64
}

// ServiceContact — запись справочника экстренных служб (охрана, медицина).
//
// Особенности:
//   - в выборке «по кварталу» гарантированно заполнены WardID/WardName;
//   - в выборке «по району» — AreaID/AreaName.
type ServiceContact struct {
	ID       int64
	Name     string
	Phone    *string
	Address  *string
	WardID   *int64
	WardName *string
	AreaID   *int64
	AreaName *string
}

// ServiceKind — тип справочника экстренных служб.
type ServiceKind string

const (
	ServiceSecurity ServiceKind = "security"
	ServiceMedical  ServiceKind = "medical"
)

// Grouping — по какому внешнему ключу фильтруется справочник.
type Grouping string

const (
	ByWard Grouping = "ward"
	ByArea Grouping = "area"
)
