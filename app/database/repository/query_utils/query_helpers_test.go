package util_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	queryUtil "backend/school-platform/app/database/repository/query_utils"
)

type idFilter struct {
	ID uuid.UUID `mapstructure:"id"`
}

type codesFilter struct {
	Codes []string `mapstructure:"codes"`
}

func TestStructToConditionsBindsUUIDAsEquality(t *testing.T) {
	id := uuid.New()

	condition, args, err := queryUtil.StructToConditions(idFilter{ID: id}, "")
	require.NoError(t, err)
	assert.Equal(t, "id = ?", condition)
	require.Len(t, args, 1)
	assert.Equal(t, id, args[0])
}

func TestStructToConditionsAppliesAlias(t *testing.T) {
	condition, _, err := queryUtil.StructToConditions(idFilter{ID: uuid.New()}, "r")
	require.NoError(t, err)
	assert.Equal(t, "r.id = ?", condition)
}

func TestStructToConditionsExpandsSlices(t *testing.T) {
	condition, args, err := queryUtil.StructToConditions(codesFilter{Codes: []string{"11", "12"}}, "")
	require.NoError(t, err)
	assert.Equal(t, "codes IN (?)", condition)
	require.Len(t, args, 1)
}

func TestStructToConditionsEmptyFilter(t *testing.T) {
	condition, args, err := queryUtil.StructToConditions(struct{}{}, "")
	require.NoError(t, err)
	assert.Empty(t, condition)
	assert.Empty(t, args)
}
