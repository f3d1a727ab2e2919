package shared

import (
	"errors"
	"fmt"
	"hotelbooking/shared/constant"
	"hotelbooking/shared/dto"
	"strings"

	"github.com/lib/pq"
)

const cacheKeySeparator = ":"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// BuildCacheKey joins a prefix and its parts into a namespaced cache key.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterContainsAny matches rows where any of the fields contains term, ignoring case.
func FilterContainsAny(term, table string, fields ...string) dto.FilterGroup {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorOr,
		Filters:  make([]any, 0, len(fields)),
	}

	for _, field := range fields {
		group.Filters = append(group.Filters, dto.Filter{
			ArgName:  fmt.Sprintf("search_%s", field),
			Field:    field,
			Value:    likeEscaper.Replace(term),
			Operator: dto.FilterOperatorLike,
			Table:    table,
		})
	}

	return group
}

// ConstraintViolation returns the name of the unique, foreign key or check
// constraint err violated.
func ConstraintViolation(err error) (string, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return constant.Empty, false
	}

	switch string(pqErr.Code) {
	case constant.PqErrorCodeUniqueViolation, constant.PqErrorCodeFkViolation, constant.PqErrorCodeCheckViolation:
		return pqErr.Constraint, true
	default:
		return constant.Empty, false
	}
}
