package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pribylovaa/go-classifieds/internal/models"
	logctx "github.com/pribylovaa/go-classifieds/internal/pkg/log"
)

// Categories возвращает заголовок раздела по необязательным category_id/subcategory_id.
// Ненайденная или не указанная категория -> models.DefaultCategoryName.
func (s *Service) Categories(ctx context.Context, rawCategoryID, rawSubcategoryID string) (*models.CategoryNames, error) {
	const op = "service.directory.Categories"

	lg := logctx.From(ctx)

	categoryID := optionalID(rawCategoryID)
	subcategoryID := optionalID(rawSubcategoryID)

	categoryName, subcategoryName, err := s.storage.CategoryNames(ctx, categoryID, subcategoryID)
	if err != nil {
		lg.Error("categories_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, mapStorageErr(op, err)
	}

	out := &models.CategoryNames{
		CategoryName:    models.DefaultCategoryName,
		SubcategoryName: subcategoryName,
	}
	if categoryName != nil {
		out.CategoryName = *categoryName
	}

	return out, nil
}

// Sports возвращает виды спорта.
func (s *Service) Sports(ctx context.Context) ([]models.Sport, error) {
	const op = "service.directory.Sports"

	out, err := s.storage.Sports(ctx)
	if err != nil {
		logStorageErr(ctx, op, err)
		return nil, mapStorageErr(op, err)
	}

	return out, nil
}

// Areas возвращает районы.
func (s *Service) Areas(ctx context.Context) ([]models.Area, error) {
	const op = "service.directory.Areas"

	out, err := s.storage.Areas(ctx)
	if err != nil {
		logStorageErr(ctx, op, err)
		return nil, mapStorageErr(op, err)
	}

	return out, nil
}

// SubAreasBySport возвращает подрайоны вида спорта. sportID обязателен.
func (s *Service) SubAreasBySport(ctx context.Context, rawSportID string) ([]models.SubArea, error) {
	const op = "service.directory.SubAreasBySport"

	id, err := requiredID(ctx, op, "sportId", rawSportID)
	if err != nil {
		return nil, err
	}

	out, err := s.storage.SubAreasBySport(ctx, id)
	if err != nil {
		logStorageErr(ctx, op, err)
		return nil, mapStorageErr(op, err)
	}

	return out, nil
}

// SubAreasByArea возвращает подрайоны района в натуральном порядке (см. sortSubAreas).
// areaID обязателен.
func (s *Service) SubAreasByArea(ctx context.Context, rawAreaID string) ([]models.SubArea, error) {
	const op = "service.directory.SubAreasByArea"

	id, err := requiredID(ctx, op, "areaId", rawAreaID)
	if err != nil {
		return nil, err
	}

	out, err := s.storage.SubAreasByArea(ctx, id)
	if err != nil {
		logStorageErr(ctx, op, err)
		return nil, mapStorageErr(op, err)
	}

	sortSubAreas(out)

	return out, nil
}

// StoresBySubArea возвращает магазины подрайона. subAreaID обязателен.
func (s *Service) StoresBySubArea(ctx context.Context, rawSubAreaID string) ([]models.Store, error) {
	const op = "service.directory.StoresBySubArea"

	id, err := requiredID(ctx, op, "subAreaId", rawSubAreaID)
	if err != nil {
		return nil, err
	}

	out, err := s.storage.StoresBySubArea(ctx, id)
	if err != nil {
		logStorageErr(ctx, op, err)
		return nil, mapStorageErr(op, err)
	}

	return out, nil
}

// ServiceContacts возвращает справочник охраны или медицины,
// ограниченный записями с заполненным ключом группировки.
func (s *Service) ServiceContacts(ctx context.Context, kind models.ServiceKind, by models.Grouping) ([]models.ServiceContact, error) {
	const op = "service.directory.ServiceContacts"

	out, err := s.storage.ServiceContacts(ctx, kind, by)
	if err != nil {
		logStorageErr(ctx, op, err)
		return nil, mapStorageErr(op, err)
	}

	return out, nil
}

func logStorageErr(ctx context.Context, op string, err error) {
	logctx.From(ctx).Error("directory_storage_error",
		slog.String("op", op),
		slog.String("err", err.Error()),
	)
}

// optionalID — нечисловые, нулевые и отрицательные значения считаются отсутствующими.
func optionalID(raw string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return nil
	}

	return &n
}

func requiredID(ctx context.Context, op, name, raw string) (int, error) {
	id := optionalID(raw)
	if id == nil {
		logctx.From(ctx).Warn("directory_invalid_argument",
			slog.String("op", op),
			slog.String("param", name),
			slog.String("value", raw),
		)

		return 0, fmt.Errorf("%s: %s: %w", op, name, ErrInvalidID)
	}

	return *id, nil
}

// subAreaSuffix — хвостовой числовой кортеж имени: "S1.10" -> 1.10.
var subAreaSuffix = regexp.MustCompile(`^[^0-9]*(\d+(?:\.\d+)*)$`)

// sortKey разбирает имя в числовой кортеж; ok == false -> имя не подходит под шаблон.
func sortKey(name string) ([]int, bool) {
	m := subAreaSuffix.FindStringSubmatch(strings.TrimSpace(name))
	if m == nil {
		return nil, false
	}

	parts := strings.Split(m[1], ".")
	key := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		key = append(key, n)
	}

	return key, true
}

// compareKeys сравнивает кортежи покомпонентно; префикс меньше продолжения.
func compareKeys(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}

	return len(a) - len(b)
}

// sortSubAreas — натуральный порядок:
// имена с числовым суффиксом по кортежу, затем не подходящие под шаблон; при равенстве — по имени и id.
func sortSubAreas(in []models.SubArea) {
	type keyed struct {
		key []int
		ok  bool
	}

	keys := make(map[int64]keyed, len(in))
	for _, sa := range in {
		k, ok := sortKey(sa.Name)
		keys[sa.ID] = keyed{key: k, ok: ok}
	}

	sort.SliceStable(in, func(i, j int) bool {
		ki, kj := keys[in[i].ID], keys[in[j].ID]
		if ki.ok != kj.ok {
			return ki.ok
		}
		if ki.ok {
			if c := compareKeys(ki.key, kj.key); c != 0 {
				return c < 0
			}
		}
		if in[i].Name != in[j].Name {
			return in[i].Name < in[j].Name
		}

		return in[i].ID < in[j].ID
	})
}
