package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/go-classifieds/internal/models"
)

// CategoryNames возвращает имена категории и подкатегории одним запросом.
// nil-идентификатор превращается в NULL, и соответствующий подзапрос возвращает NULL.
func (s *Storage) CategoryNames(ctx context.Context, categoryID, subcategoryID *int) (*string, *string, error) {
	const op = "storage.postgres.CategoryNames"

	qctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var categoryName, subcategoryName *string
	err := s.db.QueryRow(qctx, `
	SELECT
		(SELECT name FROM categories WHERE id = $1::int),
		(SELECT name FROM subcategories WHERE id = $2::int)
	`, categoryID, subcategoryID).Scan(&categoryName, &subcategoryName)
	if err != nil {
		return nil, nil, s.classify(op, err)
	}

	return categoryName, subcategoryName, nil
}

// Sports возвращает виды спорта по алфавиту.
func (s *Storage) Sports(ctx context.Context) ([]models.Sport, error) {
	const op = "storage.postgres.Sports"

	return collect(ctx, s, op, `
	SELECT id, name FROM sports ORDER BY name ASC, id ASC
	`, nil, func(row pgx.CollectableRow) (models.Sport, error) {
		var v models.Sport
		err := row.Scan(&v.ID, &v.Name)
		return v, err
	})
}

// Areas возвращает районы по алфавиту.
func (s *Storage) Areas(ctx context.Context) ([]models.Area, error) {
	const op = "storage.postgres.Areas"

	return collect(ctx, s, op, `
	SELECT id, area_name FROM areas ORDER BY area_name ASC, id ASC
	`, nil, func(row pgx.CollectableRow) (models.Area, error) {
		var v models.Area
		err := row.Scan(&v.ID, &v.Name)
		return v, err
	})
}

// SubAreasBySport возвращает подрайоны вида спорта по алфавиту.
func (s *Storage) SubAreasBySport(ctx context.Context, sportID int) ([]models.SubArea, error) {
	const op = "storage.postgres.SubAreasBySport"

	return collect(ctx, s, op, `
	SELECT sa.id, sa.name, sa.area_id, a.area_name, sa.sport_id
	FROM sub_areas sa
	LEFT JOIN areas a ON a.id = sa.area_id
	WHERE sa.sport_id = $1
	ORDER BY sa.name ASC, sa.id ASC
	`, []any{sportID}, scanSubArea)
}

// SubAreasByArea возвращает подрайоны района. Натуральная сортировка — на сервисном слое.
func (s *Storage) SubAreasByArea(ctx context.Context, areaID int) ([]models.SubArea, error) {
	const op = "storage.postgres.SubAreasByArea"

	return collect(ctx, s, op, `
	SELECT sa.id, sa.name, sa.area_id, a.area_name, sa.sport_id
	FROM sub_areas sa
	LEFT JOIN areas a ON a.id = sa.area_id
	WHERE sa.area_id = $1
	`, []any{areaID}, scanSubArea)
}

// StoresBySubArea возвращает магазины подрайона по алфавиту.
func (s *Storage) StoresBySubArea(ctx context.Context, subAreaID int) ([]models.Store, error) {
	const op = "storage.postgres.StoresBySubArea"

	return collect(ctx, s, op, `
	SELECT id, name, address, phone, sub_area_id
	FROM stores
	WHERE sub_area_id = $1
	ORDER BY name ASC, id ASC
	`, []any{subAreaID}, func(row pgx.CollectableRow) (models.Store, error) {
		var v models.Store
		err := row.Scan(&v.ID, &v.Name, &v.Address, &v.Phone, &v.SubAreaID)
		return v, err
	})
}

// serviceTables — таблицы справочников экстренных служб.
// Имена таблиц берутся только из этой карты, пользовательский ввод в текст запроса не попадает.
var serviceTables = map[models.ServiceKind]string{
	models.ServiceSecurity: "security_services",
	models.ServiceMedical:  "medical_facilities",
}

// ServiceContacts возвращает записи справочника с непустым внешним ключом группировки,
// упорядоченные по имени группы, затем по имени записи.
func (s *Storage) ServiceContacts(ctx context.Context, kind models.ServiceKind, by models.Grouping) ([]models.ServiceContact, error) {
	const op = "storage.postgres.ServiceContacts"

	table, ok := serviceTables[kind]
	if !ok {
		return nil, fmt.Errorf("%s: unknown service kind %q", op, kind)
	}

	var sql string
	switch by {
	case models.ByWard:
		sql = `
		SELECT t.id, t.name, t.phone, t.address, t.ward_id, w.name, t.area_id, a.area_name
		FROM ` + table + ` t
		JOIN wards w ON w.id = t.ward_id
		LEFT JOIN areas a ON a.id = t.area_id
		WHERE t.ward_id IS NOT NULL
		ORDER BY w.name ASC, t.name ASC, t.id ASC
		`
	case models.ByArea:
		sql = `
		SELECT t.id, t.name, t.phone, t.address, t.ward_id, w.name, t.area_id, a.area_name
		FROM ` + table + ` t
		JOIN areas a ON a.id = t.area_id
		LEFT JOIN wards w ON w.id = t.ward_id
		WHERE t.area_id IS NOT NULL
		ORDER BY a.area_name ASC, t.name ASC, t.id ASC
		`
	default:
		return nil, fmt.Errorf("%s: unknown grouping %q", op, by)
	}

	return collect(ctx, s, op, sql, nil, func(row pgx.CollectableRow) (models.ServiceContact, error) {
		var v models.ServiceContact
		err := row.Scan(&v.ID, &v.Name, &v.Phone, &v.Address, &v.WardID, &v.WardName, &v.AreaID, &v.AreaName)
		return v, err
	})
}

func scanSubArea(row pgx.CollectableRow) (models.SubArea, error) {
	var v models.SubArea
	err := row.Scan(&v.ID, &v.Name, &v.AreaID, &v.AreaName, &v.SportID)
	return v, err
}

// collect — общий путь для справочников: один запрос с таймаутом, сбор строк,
// классификация ошибок. Пустая выборка — пустой срез.
func collect[T any](ctx context.Context, s *Storage, op, sql string, args []any, fn pgx.RowToFunc[T]) ([]T, error) {
	qctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.db.Query(qctx, sql, args...)
	if err != nil {
		return nil, s.classify(op, err)
	}

	out, err := pgx.CollectRows(rows, fn)
	if err != nil {
		return nil, s.classify(op, err)
	}

	if out == nil {
		out = []T{}
	}

	return out, nil
}
