package persistence

import (
	"strings"

	"gorm.io/gorm"

	"github.com/ivrelife/nexus/internal/domain/shared"
)

// applySort orders the query by the filter's OrderBy column if it is in the
// allowed set, falling back otherwise. Column names are never interpolated
// from client input without this check.
func applySort(query *gorm.DB, filter shared.Filter, allowed map[string]bool, fallback string) *gorm.DB {
	column := filter.OrderBy
	if column == "" || !allowed[column] {
		column = fallback
	}
	dir := "ASC"
	if strings.ToLower(filter.OrderDir) == "desc" {
		dir = "DESC"
	}
	return query.Order(column + " " + dir)
}

// applyPagination applies page/page-size offsets to the query
func applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	return query
}
