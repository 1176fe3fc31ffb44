package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"accountease/internal/core/entity"
	"accountease/internal/core/id"
	"accountease/internal/core/types"
)

type mockRecord struct {
	entity.Record
	Name   string      `db:"name" json:"name"`
	Amount types.Money `db:"amount" json:"amount"`
	Secret string      `db:"-" json:"-"`
	NoTag  string
}

func TestExtractDBColumns_EmbeddedRecord(t *testing.T) {
	cols := ExtractDBColumns[mockRecord]()

	expected := []string{"id", "owner_id", "created_at", "updated_at", "name", "amount"}
	for _, col := range expected {
		assert.Contains(t, cols, col)
	}
	assert.NotContains(t, cols, "-")
	assert.NotContains(t, cols, "Secret")
	assert.NotContains(t, cols, "NoTag")
}

func TestStructToMap_EmbeddedRecord(t *testing.T) {
	now := time.Now().UTC()
	rec := mockRecord{
		Record: entity.Record{
			ID:        id.New(),
			OwnerID:   "owner-1",
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:   "Test Name",
		Amount: types.MustMoney("42.50"),
		Secret: "hidden",
	}

	m := StructToMap(rec)

	assert.Equal(t, rec.ID, m["id"])
	assert.Equal(t, "owner-1", m["owner_id"])
	assert.Equal(t, now, m["created_at"])
	assert.Equal(t, now, m["updated_at"])
	assert.Equal(t, "Test Name", m["name"])
	assert.Equal(t, rec.Amount, m["amount"])
	assert.NotContains(t, m, "-")
	assert.Len(t, m, 6)
}

func TestStructToMap_PointerInput(t *testing.T) {
	rec := &mockRecord{Name: "ptr"}

	m := StructToMap(rec)
	assert.Equal(t, "ptr", m["name"])
}

func TestStructToMap_NonStruct(t *testing.T) {
	assert.Nil(t, StructToMap("not a struct"))
}
