package query

import "strings"

// Shape — набор полей ответа листинга.
type Shape int

const (
	// ShapeFull — полная карточка поста (пользователь, категория, подкатегории, товары-объекты).
	ShapeFull Shape = iota
	// ShapeMinimal — облегчённая карточка для ленты (без join'ов к user/category/subcategory).
	ShapeMinimal
)

// fieldsMinimal — значение параметра fields для облегчённой формы.
const fieldsMinimal = "minimal"

// ParseShape разбирает параметр fields. Всё, кроме "minimal", — полная форма.
func ParseShape(fields string) Shape {
	if strings.EqualFold(strings.TrimSpace(fields), fieldsMinimal) {
		return ShapeMinimal
	}

	return ShapeFull
}

func (s Shape) String() string {
	if s == ShapeMinimal {
		return "minimal"
	}

	return "full"
}

// column — колонка проекции.
// Неагрегированные колонки (Aggregate == false) автоматически попадают в GROUP BY.
type column struct {
	Expr      string
	Alias     string
	Aggregate bool
}

// shapeSpec — единый дескриптор формы: проекция и join'ы выбираются вместе,
// GROUP BY выводится из той же проекции.
type shapeSpec struct {
	columns []column
	joins   []string
}

const (
	joinUser           = `LEFT JOIN "user" u ON p.user_id = u.id`
	joinCategory       = `LEFT JOIN categories c ON p.category_id = c.id`
	joinPostSubcats    = `LEFT JOIN post_subcategories ps ON ps.post_id = p.post_id`
	joinSubcategories  = `LEFT JOIN subcategories s ON ps.subcategory_id = s.id`
	joinProductItems   = `LEFT JOIN post_product_items i ON i.post_id = p.post_id`
	itemsAggFull       = `jsonb_agg(DISTINCT jsonb_build_object('id', i.id, 'name', i.name, 'price', i.price, 'description', i.description, 'subcategory_id', i.subcategory_id)) FILTER (WHERE i.id IS NOT NULL)`
	itemsAggMinimal    = `array_agg(i.name ORDER BY i.id) FILTER (WHERE i.id IS NOT NULL)`
	subcategoryNameAgg = `array_agg(DISTINCT COALESCE(s.name, '')) FILTER (WHERE ps.post_id IS NOT NULL)`
)

var shapes = map[Shape]shapeSpec{
	ShapeFull: {
		columns: []column{
			{Expr: "p.post_id", Alias: "id"},
			{Expr: "p.minimum_price", Alias: "price"},
			{Expr: "p.post_thumbnail", Alias: "post_thumbnail"},
			{Expr: "p.post_time", Alias: "post_time"},
			{Expr: "u.name", Alias: "user_name"},
			{Expr: "p.user_id", Alias: "user_id"},
			{Expr: "u.phone", Alias: "user_phone"},
			{Expr: "u.zalo", Alias: "user_zalo"},
			{Expr: "p.post_content", Alias: "post_content"},
			{Expr: "u.address", Alias: "user_address"},
			{Expr: "p.post_images", Alias: "post_images"},
			{Expr: "c.name", Alias: "category_name"},
			{Expr: subcategoryNameAgg, Alias: "subcategory_names", Aggregate: true},
			{Expr: itemsAggFull, Alias: "product_name", Aggregate: true},
		},
		joins: []string{joinUser, joinCategory, joinPostSubcats, joinSubcategories, joinProductItems},
	},
	ShapeMinimal: {
		columns: []column{
			{Expr: "p.post_id", Alias: "id"},
			{Expr: "p.minimum_price", Alias: "price"},
			{Expr: "p.post_thumbnail", Alias: "post_thumbnail"},
			{Expr: "p.post_time", Alias: "post_time"},
			{Expr: itemsAggMinimal, Alias: "product_name", Aggregate: true},
		},
		joins: []string{joinProductItems},
	},
}

// groupBy возвращает неагрегированные выражения проекции в порядке их объявления.
func (s shapeSpec) groupBy() []string {
	out := make([]string, 0, len(s.columns))
	for _, c := range s.columns {
		if !c.Aggregate {
			out = append(out, c.Expr)
		}
	}

	return out
}

// projection собирает список SELECT.
func (s shapeSpec) projection() []string {
	out := make([]string, 0, len(s.columns))
	for _, c := range s.columns {
		out = append(out, c.Expr+" AS "+c.Alias)
	}

	return out
}

// Columns возвращает алиасы колонок формы в порядке проекции (порядок Scan).
func (s Shape) Columns() []string {
	spec := shapes[s]
	out := make([]string, 0, len(spec.columns))
	for _, c := range spec.columns {
		out = append(out, c.Alias)
	}

	return out
}
