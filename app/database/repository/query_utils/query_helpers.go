package util

import (
	"context"
	"database/sql/driver"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/uptrace/bun"
)

func StructToQueries(input any, alias string) (conds []string, args []any, err error) {
	output := make(map[string]any)
	if err = mapstructure.Decode(input, &output); err != nil {
		return nil, nil, err
	}
	if alias != "" {
		alias += "."
	}

	for key, value := range output {
		// Valuer types like uuid.UUID are byte arrays but bind as a single
		// value, so only genuine collections expand to IN.
		v := reflect.ValueOf(value)
		_, isValuer := value.(driver.Valuer)
		if !isValuer && (v.Kind() == reflect.Array || v.Kind() == reflect.Slice) {
			conds = append(conds, alias+key+" IN (?)")
			args = append(args, bun.In(value))
		} else {
			conds = append(conds, alias+key+" = ?")
			args = append(args, value)
		}
	}

	return conds, args, nil
}

func StructToConditions(input any, alias string) (condition string, args []any, err error) {
	conds, args, err := StructToQueries(input, alias)
	if err != nil {
		return "", nil, err
	}

	if len(conds) == 0 {
		return "", nil, nil
	}
	return strings.Join(conds, " AND "), args, nil
}

// CheckExist reports whether a live row of E matches the filter struct.
// Soft-deleted rows never match.
func CheckExist[E any, F any](
	ctx context.Context,
	db bun.IDB,
	filter F,
) (bool, error) {
	condition, args, err := StructToConditions(filter, "")
	if err != nil {
		return false, err
	}

	return db.NewSelect().Model((*E)(nil)).Where(condition, args...).Exists(ctx)
}
