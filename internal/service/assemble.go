package service

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/pribylovaa/go-classifieds/internal/models"
	"github.com/pribylovaa/go-classifieds/internal/query"
)

// assemble сворачивает «сырые» строки GROUP BY-запроса в карточки объявлений.
//
// Правила:
//   - порядок карточек — порядок строк;
//   - NULL-агрегаты и NULL-элементы внутри них схлопываются в пустые срезы;
//   - набор заполненных полей определяется только формой shape.
func assemble(rows []models.PostRow, shape query.Shape) ([]models.Post, error) {
	out := make([]models.Post, 0, len(rows))
	for i := range rows {
		var (
			p   models.Post
			err error
		)
		if shape == query.ShapeMinimal {
			p = assembleMinimal(&rows[i])
		} else {
			p, err = assembleFull(&rows[i])
			if err != nil {
				return nil, err
			}
		}

		out = append(out, p)
	}

	return out, nil
}

func assembleMinimal(r *models.PostRow) models.Post {
	return models.Post{
		ID:        r.ID,
		Price:     r.Price,
		Thumbnail: trimmed(r.Thumbnail),
		PostTime:  r.PostTime,
		ItemNames: compact(r.ProductNames),
	}
}

func assembleFull(r *models.PostRow) (models.Post, error) {
	items, err := decodeItems(r.ProductItemsJSON)
	if err != nil {
		return models.Post{}, fmt.Errorf("post %d: %w", r.ID, err)
	}

	return models.Post{
		Full:             true,
		ID:               r.ID,
		Price:            r.Price,
		Thumbnail:        trimmed(r.Thumbnail),
		PostTime:         r.PostTime,
		UserName:         r.UserName,
		UserID:           r.UserID,
		UserPhone:        r.UserPhone,
		UserZalo:         r.UserZalo,
		Content:          r.Content,
		UserAddress:      r.UserAddress,
		Images:           compact(r.Images),
		CategoryName:     r.CategoryName,
		SubcategoryNames: dedupNames(r.SubcategoryNames),
		Items:            items,
		ItemNames:        []string{},
	}, nil
}

// decodeItems разбирает jsonb-агрегат товаров.
// NULL-агрегат и null-элементы (left join без совпадений) дают пустой срез.
func decodeItems(raw json.RawMessage) ([]models.ProductItem, error) {
	out := []models.ProductItem{}
	if len(raw) == 0 || string(raw) == "null" {
		return out, nil
	}

	var parsed []*models.ProductItem
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode product items: %w", err)
	}

	for _, it := range parsed {
		if it != nil {
			out = append(out, *it)
		}
	}

	// jsonb_agg(DISTINCT ...) упорядочивает по jsonb, а не по id.
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// dedupNames убирает повторы с сохранением порядка первого появления; NULL -> "".
func dedupNames(in []*string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, p := range in {
		name := ""
		if p != nil {
			name = *p
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	return out
}

// compact отбрасывает NULL-элементы; nil -> пустой срез.
func compact(in []*string) []string {
	out := make([]string, 0, len(in))
	for _, p := range in {
		if p != nil {
			out = append(out, *p)
		}
	}

	return out
}

func trimmed(p *string) string {
	if p == nil {
		return ""
	}

	return strings.TrimSpace(*p)
}
