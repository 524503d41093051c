package postgres

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pribylovaa/go-classifieds/internal/models"
	logctx "github.com/pribylovaa/go-classifieds/internal/pkg/log"
	"github.com/pribylovaa/go-classifieds/internal/query"
)

// ListPosts выполняет запрос листинга одним statement'ом.
// Порядок строк — порядок БД (post_time DESC, post_id DESC).
func (s *Storage) ListPosts(ctx context.Context, f *query.Filter) ([]models.PostRow, error) {
	const op = "storage.postgres.ListPosts"

	sql, args := query.Build(f)
	minimal := f.EffectiveShape() == query.ShapeMinimal

	logctx.From(ctx).Debug("list_posts_query",
		slog.String("op", op),
		slog.String("sql", sql),
		slog.Any("args", args),
	)

	qctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.db.Query(qctx, sql, args...)
	if err != nil {
		return nil, s.classify(op, err)
	}
	defer rows.Close()

	out := make([]models.PostRow, 0, f.Limit)
	for rows.Next() {
		var (
			row     models.PostRow
			scanErr error
		)
		if minimal {
			row, scanErr = scanMinimal(rows)
		} else {
			row, scanErr = scanFull(rows)
		}
		if scanErr != nil {
			return nil, s.classify(op+": scan row", scanErr)
		}

		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, s.classify(op+": rows", err)
	}

	return out, nil
}

func scanFull(rows pgx.Rows) (models.PostRow, error) {
	var (
		row      models.PostRow
		images   []pgtype.Text
		subNames []pgtype.Text
		items    []byte
	)

	err := rows.Scan(
		&row.ID,
		&row.Price,
		&row.Thumbnail,
		&row.PostTime,
		&row.UserName,
		&row.UserID,
		&row.UserPhone,
		&row.UserZalo,
		&row.Content,
		&row.UserAddress,
		&images,
		&row.CategoryName,
		&subNames,
		&items,
	)
	if err != nil {
		return models.PostRow{}, err
	}

	row.PostTime = row.PostTime.UTC()
	row.Images = textPtrs(images)
	row.SubcategoryNames = textPtrs(subNames)
	row.ProductItemsJSON = items

	return row, nil
}

func scanMinimal(rows pgx.Rows) (models.PostRow, error) {
	var (
		row   models.PostRow
		names []pgtype.Text
	)

	err := rows.Scan(
		&row.ID,
		&row.Price,
		&row.Thumbnail,
		&row.PostTime,
		&names,
	)
	if err != nil {
		return models.PostRow{}, err
	}

	row.PostTime = row.PostTime.UTC()
	row.ProductNames = textPtrs(names)

	return row, nil
}

// textPtrs переводит массив pgtype.Text в []*string; NULL-элементы -> nil, NULL-массив -> nil.
func textPtrs(in []pgtype.Text) []*string {
	if in == nil {
		return nil
	}

	out := make([]*string, len(in))
	for i, t := range in {
		if t.Valid {
			v := t.String
			out[i] = &v
		}
	}

	return out
}
