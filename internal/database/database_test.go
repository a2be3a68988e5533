package database

import (
	"path/filepath"
	"testing"

	"github.com/GuangSTrip/BenchAnnotate/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name    string
		dbPath  string
		wantErr bool
	}{
		{
			name:    "in-memory database",
			dbPath:  ":memory:",
			wantErr: false,
		},
		{
			name:    "file database",
			dbPath:  filepath.Join(t.TempDir(), "test.db"),
			wantErr: false,
		},
		{
			name:    "file database in nested directory",
			dbPath:  filepath.Join(t.TempDir(), "data", "test.db"),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := Initialize(tt.dbPath, false)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, conn)
			assert.NoError(t, conn.HealthCheck())
			assert.NoError(t, conn.Close())
		})
	}
}

func TestHealthCheckAfterClose(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)

	require.NoError(t, conn.Close())
	assert.Error(t, conn.HealthCheck(), "HealthCheck should fail after database is closed")
}

func TestHealthCheckNilConnection(t *testing.T) {
	var conn *DB
	assert.Error(t, conn.HealthCheck())
}

func TestAutoMigrateVideoCatalog(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.AutoMigrate(&models.Video{}))

	var count int64
	err = conn.DB.Raw("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='videos'").Scan(&count).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestVideoCatalogOperations(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.AutoMigrate(&models.Video{}))

	t.Run("create video", func(t *testing.T) {
		video := models.Video{
			VideoID:   "XYZ123_d3adb33f",
			SourceURL: "https://example.com/watch?v=XYZ123",
			Title:     "A Fine Video",
			FilePath:  "/static/videos/XYZ123_d3adb33f.mp4",
		}

		err := conn.DB.Create(&video).Error
		assert.NoError(t, err)
		assert.NotZero(t, video.ID)
	})

	t.Run("find video by identity", func(t *testing.T) {
		var video models.Video
		err := conn.DB.First(&video, "video_id = ?", "XYZ123_d3adb33f").Error
		assert.NoError(t, err)
		assert.Equal(t, "A Fine Video", video.Title)
	})

	t.Run("duplicate identity is rejected", func(t *testing.T) {
		dup := models.Video{VideoID: "XYZ123_d3adb33f", Title: "Copy"}
		err := conn.DB.Create(&dup).Error
		assert.Error(t, err, "video_id carries a unique index")
	})
}
