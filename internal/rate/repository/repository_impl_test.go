package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/incidentbilling/internal/rate/domain"
	"github.com/smallbiznis/incidentbilling/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&domain.Rate{}))
	return gdb
}

func seedRate(t *testing.T, gdb *gorm.DB, id, clientID, plan string) domain.Rate {
	t.Helper()
	rate := domain.Rate{
		ID:                    id,
		Plan:                  plan,
		ClientID:              clientID,
		FixedCost:             decimal.RequireFromString("5.00"),
		CostPerIncidentWeb:    decimal.RequireFromString("0.15"),
		CostPerIncidentMobile: decimal.RequireFromString("0.10"),
		CostPerIncidentEmail:  decimal.RequireFromString("0.08"),
	}
	require.NoError(t, gdb.Create(&rate).Error)
	return rate
}

func TestFindByClientAndPlan(t *testing.T) {
	gdb := newTestDB(t)
	repo := Provide(zap.NewNop())
	ctx := context.Background()

	seedRate(t, gdb, "rate-1", "client-1", "emprendedor")

	found, err := repo.FindByClientAndPlan(ctx, gdb, "client-1", "emprendedor")
	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, "rate-1", found.ID)
	assert.True(t, found.FixedCost.Equal(decimal.RequireFromString("5.00")))

	missing, err := repo.FindByClientAndPlan(ctx, gdb, "client-1", "empresario")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFindByClientAndPlanAmbiguousTreatedAsMissing(t *testing.T) {
	gdb := newTestDB(t)
	repo := Provide(zap.NewNop())
	ctx := context.Background()

	seedRate(t, gdb, "rate-1", "client-1", "emprendedor")
	seedRate(t, gdb, "rate-2", "client-1", "emprendedor")

	found, err := repo.FindByClientAndPlan(ctx, gdb, "client-1", "emprendedor")
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestFindByID(t *testing.T) {
	gdb := newTestDB(t)
	repo := Provide(zap.NewNop())
	ctx := context.Background()

	seedRate(t, gdb, "rate-1", "client-1", "emprendedor")

	found, err := repo.FindByID(ctx, gdb, "rate-1")
	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, "client-1", found.ClientID)

	missing, err := repo.FindByID(ctx, gdb, "no-such-rate")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDeleteAll(t *testing.T) {
	gdb := newTestDB(t)
	repo := Provide(zap.NewNop())
	ctx := context.Background()

	seedRate(t, gdb, "rate-1", "client-1", "emprendedor")
	seedRate(t, gdb, "rate-2", "client-2", "empresario")

	assert.NoError(t, repo.DeleteAll(ctx, gdb))

	var count int64
	require.NoError(t, gdb.Model(&domain.Rate{}).Count(&count).Error)
	assert.Zero(t, count)
}
