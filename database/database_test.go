package database

import (
	"context"
	"testing"

	"github.com/mytheresa/go-inventory/config"
	"github.com/mytheresa/go-inventory/models"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestOpenRejectsEmptyURL(t *testing.T) {
	log, _ := test.NewNullLogger()
	_, err := Open(context.Background(), &config.Config{}, log)
	assert.EqualError(t, err, "database URL cannot be empty")
}

func TestMigrate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:migrate?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Migrate(db))

	assert.True(t, db.Migrator().HasTable("categories"))
	assert.True(t, db.Migrator().HasTable("product"))
	assert.True(t, db.Migrator().HasIndex(&models.Category{}, "Name"))
}

func TestNewGormLogger(t *testing.T) {
	log, _ := test.NewNullLogger()

	log.SetLevel(logrus.InfoLevel)
	assert.NotNil(t, newGormLogger(log))

	log.SetLevel(logrus.DebugLevel)
	assert.NotNil(t, newGormLogger(log))
}
