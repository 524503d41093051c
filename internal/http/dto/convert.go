package dto

import (
	"github.com/pribylovaa/go-classifieds/internal/models"
)

// PostsFrom конвертирует карточки в JSON-представление.
// Форма определяется полем Post.Full; в одном ответе формы не смешиваются,
// поэтому результат — []any из элементов одного типа.
func PostsFrom(posts []models.Post) []any {
	out := make([]any, 0, len(posts))
	for i := range posts {
		if posts[i].Full {
			out = append(out, PostFullFrom(&posts[i]))
		} else {
			out = append(out, PostMinimalFrom(&posts[i]))
		}
	}

	return out
}

func PostFullFrom(p *models.Post) PostFull {
	items := make([]ProductItem, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, ProductItem{
			Name:          it.Name,
			Price:         it.Price,
			Description:   it.Description,
			SubcategoryID: it.SubcategoryID,
		})
	}

	return PostFull{
		ID:               p.ID,
		Price:            p.Price,
		PostThumbnail:    p.Thumbnail,
		PostTime:         p.PostTime.UTC(),
		UserName:         p.UserName,
		UserID:           p.UserID,
		UserPhone:        p.UserPhone,
		UserZalo:         p.UserZalo,
		PostContent:      p.Content,
		UserAddress:      p.UserAddress,
		PostImages:       nonNil(p.Images),
		CategoryName:     p.CategoryName,
		SubcategoryNames: nonNil(p.SubcategoryNames),
		ProductName:      items,
	}
}

func PostMinimalFrom(p *models.Post) PostMinimal {
	return PostMinimal{
		ID:            p.ID,
		Price:         p.Price,
		PostThumbnail: p.Thumbnail,
		PostTime:      p.PostTime.UTC(),
		ProductName:   nonNil(p.ItemNames),
	}
}

func CategoriesFrom(c *models.CategoryNames) Categories {
	if c == nil {
		return Categories{CategoryName: models.DefaultCategoryName}
	}

	return Categories{
		CategoryName:    c.CategoryName,
		SubcategoryName: c.SubcategoryName,
	}
}

func SportsFrom(in []models.Sport) []Sport {
	out := make([]Sport, 0, len(in))
	for _, v := range in {
		out = append(out, Sport{ID: v.ID, Name: v.Name})
	}

	return out
}

func AreasFrom(in []models.Area) []Area {
	out := make([]Area, 0, len(in))
	for _, v := range in {
		out = append(out, Area{ID: v.ID, AreaName: v.Name})
	}

	return out
}

func SubAreasFrom(in []models.SubArea) []SubArea {
	out := make([]SubArea, 0, len(in))
	for _, v := range in {
		out = append(out, SubArea{
			ID:       v.ID,
			Name:     v.Name,
			AreaID:   v.AreaID,
			AreaName: v.AreaName,
			SportID:  v.SportID,
		})
	}

	return out
}

func StoresFrom(in []models.Store) []Store {
	out := make([]Store, 0, len(in))
	for _, v := range in {
		out = append(out, Store{
			ID:        v.ID,
			Name:      v.Name,
			Address:   v.Address,
			Phone:     v.Phone,
			SubAreaID: v.SubAreaID,
		})
	}

	return out
}

func ServiceContactsFrom(in []models.ServiceContact) []ServiceContact {
	out := make([]ServiceContact, 0, len(in))
	for _, v := range in {
		out = append(out, ServiceContact{
			ID:       v.ID,
			Name:     v.Name,
			Phone:    v.Phone,
			Address:  v.Address,
			WardID:   v.WardID,
			WardName: v.WardName,
			AreaID:   v.AreaID,
			AreaName: v.AreaName,
		})
	}

	return out
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}

	return in
}
