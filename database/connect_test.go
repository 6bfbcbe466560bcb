package database_test

import (
	"fmt"
	"testing"

	"coach_tracker/database"
	"coach_tracker/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestMigrateIdempotent(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, database.Migrate(db))

	dateIn, err := model.ParseDate("2025-01-10")
	require.NoError(t, err)
	coach := model.Coach{CoachNo: "C100", CoachType: "AC", DateIn: dateIn, CurrentShop: "Shop A"}
	require.NoError(t, db.Create(&coach).Error)

	// Second run must keep structure and rows.
	require.NoError(t, database.Migrate(db))

	assert.True(t, db.Migrator().HasTable(&model.Coach{}))
	assert.True(t, db.Migrator().HasTable(&model.Movement{}))

	var count int64
	require.NoError(t, db.Model(&model.Coach{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSeedDemoIdempotent(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, database.Migrate(db))

	database.SeedDemo(db)
	database.SeedDemo(db)

	var count int64
	require.NoError(t, db.Model(&model.Coach{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}
