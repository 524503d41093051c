package query

import (
	"strconv"
	"strings"
)

// Build собирает итоговый SQL листинга и аргументы.
//
// Шаблон:
//
//	SELECT <проекция формы>
//	FROM posts p <join'ы формы>
//	[WHERE <предикаты через AND>]
//	GROUP BY <неагрегированные колонки проекции>
//	ORDER BY p.post_time DESC, p.post_id DESC
//	LIMIT $N  -- всегда последний аргумент
//
// Исходный фильтр не изменяется: аргументы копируются.
func Build(f *Filter) (string, []any) {
	spec := shapes[f.EffectiveShape()]

	args := make([]any, 0, len(f.Args)+1)
	args = append(args, f.Args...)
	args = append(args, f.Limit)

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(spec.projection(), ", "))
	b.WriteString("\nFROM posts p")
	for _, j := range spec.joins {
		b.WriteString("\n")
		b.WriteString(j)
	}

	if len(f.Predicates) > 0 {
		conds := make([]string, 0, len(f.Predicates))
		for _, p := range f.Predicates {
			conds = append(conds, p.SQL)
		}
		b.WriteString("\nWHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}

	b.WriteString("\nGROUP BY ")
	b.WriteString(strings.Join(spec.groupBy(), ", "))
	b.WriteString("\nORDER BY p.post_time DESC, p.post_id DESC")
	b.WriteString("\nLIMIT $")
	b.WriteString(strconv.Itoa(len(args)))

	return b.String(), args
}
