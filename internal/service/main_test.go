package service

import (
	"os"
	"strings"
	"testing"

	"lingua_tutor_backend/internal/config"
	"lingua_tutor_backend/pkg/database"
	applog "lingua_tutor_backend/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	applog.Log = zap.NewNop()
	os.Exit(m.Run())
}

// newTestDB 每个测试一个独立的内存库，表结构与生产迁移一致
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func testAdaptiveConfig() config.AdaptiveConfig {
	return config.AdaptiveConfig{
		InitialStrength:   0.5,
		BaseGain:          0.15,
		GainDecay:         0.5,
		Penalty:           0.15,
		GrowthBase:        1.5,
		GrowthStep:        0.2,
		GrowthMax:         2.7,
		MaxIntervalDays:   60,
		WeaknessThreshold: 0.4,
		Timezone:          "UTC",
	}
}
