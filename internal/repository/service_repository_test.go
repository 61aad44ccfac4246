package repository

import (
	"testing"

	"home-services-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plumbing", "plumbing"},
		{"50%", `50\%`},
		{"deep_clean", `deep\_clean`},
		{`c:\temp`, `c:\\temp`},
		{`%_\`, `\%\_\\`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLike(tt.in))
		})
	}
}

func TestServiceRepository_FindAvailable(t *testing.T) {
	t.Run("search matches wildcards literally", func(t *testing.T) {
		db, rec := newDryRunDB(t)

		services, total, err := NewServiceRepository().FindAvailable(db, entity.ServiceFilter{
			Category: entity.CategoryCleaning,
			Search:   "  50%_off ",
			OrderBy:  []string{"-rating", "price_per_hour", "password"},
			Limit:    10,
			Offset:   20,
		})

		require.NoError(t, err)
		assert.Empty(t, services)
		assert.Zero(t, total)
		require.Len(t, rec.statements, 2)

		count := rec.statements[0]
		assert.Contains(t, count, "count(*)")
		assert.Contains(t, count, "services.is_available = true")
		assert.Contains(t, count, "services.category = 'cleaning'")
		assert.Contains(t, count, `(services.name ILIKE '%50\%\_off%' OR services.description ILIKE '%50\%\_off%'`)
		assert.NotContains(t, count, "ORDER BY")

		page := rec.statements[1]
		assert.Contains(t, page, `services.service_area ILIKE '%50\%\_off%'`)
		assert.Contains(t, page, "ORDER BY services.rating DESC,services.price_per_hour ASC,services.id ASC")
		assert.NotContains(t, page, "password")
		assert.Contains(t, page, "LIMIT 10 OFFSET 20")
	})

	t.Run("no search leaves the catalog unfiltered by text", func(t *testing.T) {
		db, rec := newDryRunDB(t)

		_, _, err := NewServiceRepository().FindAvailable(db, entity.ServiceFilter{Search: "   ", Limit: 10})

		require.NoError(t, err)
		assert.NotContains(t, rec.all(), "ILIKE")
		assert.Contains(t, rec.last(t), "ORDER BY services.id ASC")
	})
}

func TestServiceRepository_IncrementTotalBookings(t *testing.T) {
	db, rec := newDryRunDB(t)

	require.NoError(t, NewServiceRepository().IncrementTotalBookings(db, 7))

	sql := rec.last(t)
	assert.Contains(t, sql, `UPDATE "services" SET "total_bookings"=total_bookings + 1`)
	assert.Contains(t, sql, "id = 7")
	assert.NotContains(t, sql, "updated_at")
}

func TestServiceRepository_Update(t *testing.T) {
	db, rec := newDryRunDB(t)
	service := &entity.Service{ID: 7, Name: "Deep clean", Category: entity.CategoryCleaning}

	require.NoError(t, NewServiceRepository().Update(db, service))

	sql := rec.last(t)
	assert.Contains(t, sql, `UPDATE "services" SET`)
	assert.Contains(t, sql, `"name"='Deep clean'`)
	assert.NotContains(t, sql, `"rating"`)
	assert.NotContains(t, sql, `"total_bookings"`)
	assert.Contains(t, sql, `"id" = 7`)
}

func TestServiceRepository_GetStats(t *testing.T) {
	db, rec := newDryRunDB(t)

	_, err := NewServiceRepository().GetStats(db)

	assert.ErrorIs(t, err, gorm.ErrDryRunModeUnsupported)
	sql := rec.last(t)
	assert.Contains(t, sql, "COUNT(DISTINCT provider_id) AS total_providers")
	assert.Contains(t, sql, "COALESCE(AVG(price_per_hour), 0) AS average_price")
	assert.Contains(t, sql, "is_available = true")
}
