// query собирает параметризованный SQL листинга постов из набора необязательных фильтров.
//
// Два шага:
//   - Compile превращает сырые параметры запроса в упорядоченный список предикатов
//     с позиционными плейсхолдерами ($1, $2, ...), параллельный список значений и форму ответа;
//   - Build подставляет предикаты в фиксированный шаблон SELECT ... GROUP BY ... ORDER BY ... LIMIT.
//
// Значения фильтров никогда не попадают в текст запроса — только в аргументы.
package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidArgument — некорректный параметр запроса.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidDate — date не в формате DD/MM/YYYY или несуществующая дата.
	ErrInvalidDate = fmt.Errorf("%w: date must be DD/MM/YYYY", ErrInvalidArgument)
	// ErrInvalidCursor — last_post_time не разбирается как RFC 3339 timestamp.
	ErrInvalidCursor = fmt.Errorf("%w: last_post_time must be an RFC 3339 timestamp", ErrInvalidArgument)
)

// DateLayout — формат параметра date.
const DateLayout = "02/01/2006"

// Params — сырые параметры листинга в том виде, в каком они пришли в URL.
type Params struct {
	Limit         string
	CategoryID    string
	SubcategoryID string
	Search        string
	Date          string
	LastPostTime  string
	PostID        string
	Fields        string
}

// Options — серверные настройки компиляции.
//
// Особенности:
//   - DefaultLimit применяется при отсутствующем/нечисловом/неположительном limit;
//   - MaxLimit <= 0 отключает верхнюю границу;
//   - Location == nil -> time.UTC.
type Options struct {
	DefaultLimit int
	MaxLimit     int
	Location     *time.Location
}

// Predicate — фрагмент условия WHERE, ссылающийся на позиционные плейсхолдеры.
type Predicate struct {
	SQL string
}

// Filter — результат компиляции.
type Filter struct {
	Predicates []Predicate
	// Args — значения в порядке плейсхолдеров: int, string или RFC 3339 строка для времени.
	Args   []any
	Limit  int
	Shape  Shape
	PostID string
}

// UseMinimalShape — true только для fields=minimal без post_id.
func (f *Filter) UseMinimalShape() bool {
	return f.Shape == ShapeMinimal && f.PostID == ""
}

// EffectiveShape — форма, которая реально применяется к запросу и ответу.
func (f *Filter) EffectiveShape() Shape {
	if f.UseMinimalShape() {
		return ShapeMinimal
	}

	return ShapeFull
}

// bind добавляет значение и возвращает его плейсхолдер.
func (f *Filter) bind(v any) string {
	f.Args = append(f.Args, v)
	return "$" + strconv.Itoa(len(f.Args))
}

func (f *Filter) where(format string, args ...any) {
	placeholders := make([]any, 0, len(args))
	for _, a := range args {
		placeholders = append(placeholders, f.bind(a))
	}

	f.Predicates = append(f.Predicates, Predicate{SQL: fmt.Sprintf(format, placeholders...)})
}

// Compile превращает параметры запроса в фильтр.
//
// Правила:
//   - post_id перекрывает все прочие фильтры: компилируется только условие по идентичности,
//     остальные параметры не разбираются и не валидируются;
//   - нечисловые, нулевые и отрицательные limit/category_id/subcategory_id считаются отсутствующими;
//   - битые date/last_post_time — ошибка (ErrInvalidDate/ErrInvalidCursor), а не молчаливый пропуск.
func Compile(p Params, opts Options) (*Filter, error) {
	const op = "query.Compile"

	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	f := &Filter{
		Limit:  normalizeLimit(p.Limit, opts),
		Shape:  ParseShape(p.Fields),
		PostID: strings.TrimSpace(p.PostID),
	}

	if f.PostID != "" {
		f.where("p.post_id::text = %s", f.PostID)
		return f, nil
	}

	if id, ok := positiveInt(p.CategoryID); ok {
		f.where("p.category_id = %s", id)
	}

	if id, ok := positiveInt(p.SubcategoryID); ok {
		f.where("i.subcategory_id = %s", id)
	}

	if term := strings.TrimSpace(p.Search); term != "" {
		f.where("i.name ILIKE %s", "%"+escapeLike(term)+"%")
	}

	if raw := strings.TrimSpace(p.Date); raw != "" {
		from, to, err := DayRange(raw, loc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		f.where("p.post_time >= %s::timestamptz", formatTime(from))
		f.where("p.post_time < %s::timestamptz", formatTime(to))
	}

	if raw := strings.TrimSpace(p.LastPostTime); raw != "" {
		cursor, err := ParseCursor(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		f.where("p.post_time < %s::timestamptz", formatTime(cursor))
	}

	return f, nil
}

// DayRange возвращает полуоткрытый интервал [полночь, следующая полночь) календарной даты
// DD/MM/YYYY в зоне loc. Длина суток берётся из календаря зоны, а не из фиксированного смещения.
func DayRange(raw string, loc *time.Location) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, strings.TrimSpace(raw), loc)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}

	return day, day.AddDate(0, 0, 1), nil
}

// ParseCursor разбирает last_post_time (RFC 3339, допускаются доли секунды).
func ParseCursor(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, ErrInvalidCursor
	}

	return t, nil
}

// FormatCursor — обратная к ParseCursor операция для выдачи клиенту.
func FormatCursor(t time.Time) string {
	return formatTime(t)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func normalizeLimit(raw string, opts Options) int {
	limit, ok := positiveInt(raw)
	if !ok {
		limit = opts.DefaultLimit
	}

	if limit <= 0 {
		limit = 1
	}

	if opts.MaxLimit > 0 && limit > opts.MaxLimit {
		limit = opts.MaxLimit
	}

	return limit
}

// positiveInt — строгий разбор; всё, что не является целым > 0, считается отсутствующим.
func positiveInt(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, false
	}

	return n, true
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike экранирует метасимволы LIKE: поиск — по подстроке, а не по шаблону.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
