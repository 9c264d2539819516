package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/d60-Lab/neon-blog/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// :memory: 每个连接是独立库，锁死单连接
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Post{}))
	return db
}

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func sampleInput() PostInput {
	return PostInput{
		Title:      "Hello Neon",
		Category:   "tips",
		Color:      "neon-cyan",
		Size:       "bento-medium",
		Excerpt:    "short teaser",
		Content:    "<p>hello world</p>",
		MediaFiles: []string{"uploads/images/a.png", "uploads/videos/b.mp4"},
	}
}

func TestCreateRoundTrip(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleInput())
	require.NoError(t, err)
	require.NotNil(t, created)
	require.NotZero(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "Hello Neon", got.Title)
	assert.Equal(t, "TIPS", got.Category) // 分类入库即大写
	assert.Equal(t, "neon-cyan", got.Color)
	assert.Equal(t, "bento-medium", got.Size)
	assert.Equal(t, "short teaser", got.Excerpt)
	assert.Equal(t, "<p>hello world</p>", got.Content)
	assert.Equal(t, "uploads/images/a.png,uploads/videos/b.mp4", got.MediaFiles)
	assert.Equal(t, []string{"uploads/images/a.png", "uploads/videos/b.mp4"}, got.MediaList())
	assert.Equal(t, "1 min read", got.ReadTime)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestGetByIDMissing(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))

	got, err := repo.GetByID(context.Background(), 12345)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListAllNewestFirst(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		in := sampleInput()
		in.Title = fmt.Sprintf("post %d", i)
		_, err := repo.Create(ctx, in)
		require.NoError(t, err)
	}

	posts, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 5)
	for i := 0; i < len(posts)-1; i++ {
		require.False(t, posts[i].CreatedAt.Before(posts[i+1].CreatedAt))
	}
	assert.Equal(t, "post 4", posts[0].Title)
	assert.Equal(t, "post 0", posts[4].Title)
}

func TestGetLatest(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))
	ctx := context.Background()

	latest, err := repo.GetLatest(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest, "empty store has no latest post")

	_, err = repo.Create(ctx, sampleInput())
	require.NoError(t, err)
	in := sampleInput()
	in.Title = "newer"
	_, err = repo.Create(ctx, in)
	require.NoError(t, err)

	latest, err = repo.GetLatest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "newer", latest.Title)
}

func TestUpdate(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleInput())
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond) // updated_at 必须前进

	in := sampleInput()
	in.Title = "Updated Title"
	in.Category = "design"
	in.Content = words(401)
	updated, err := repo.Update(ctx, created.ID, in)
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "Updated Title", updated.Title)
	assert.Equal(t, "DESIGN", updated.Category)
	assert.Equal(t, "2 min read", updated.ReadTime)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix(), "created_at never changes")
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdateMissingNoMutation(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleInput())
	require.NoError(t, err)

	got, err := repo.Update(ctx, created.ID+100, sampleInput())
	require.NoError(t, err)
	assert.Nil(t, got)

	// 其它行原样
	posts, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, created.Title, posts[0].Title)
}

func TestDeleteTrueExactlyOnce(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleInput())
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReadTime(t *testing.T) {
	cases := []struct {
		words int
		want  string
	}{
		{0, "1 min read"},
		{1, "1 min read"},
		{199, "1 min read"},
		{200, "1 min read"},
		{399, "1 min read"},
		{401, "2 min read"},
		{1000, "5 min read"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ReadTime(words(tc.words)), "words=%d", tc.words)
	}
}

func TestInitSeedsOnceAndIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Init(ctx))
	posts, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3, "demo posts seeded on empty table")

	// 重复 Init：迁移步骤与种子都不应再生效
	require.NoError(t, repo.Init(ctx))
	posts, err = repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 3)
}

func TestInitMigratesLegacySchema(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	// 缺 markdown_content / updated_at 的老库
	require.NoError(t, db.Exec(`CREATE TABLE posts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		category TEXT NOT NULL,
		color TEXT NOT NULL,
		size TEXT NOT NULL,
		excerpt TEXT DEFAULT '',
		content TEXT NOT NULL,
		media_files TEXT DEFAULT '',
		created_at DATETIME,
		read_time TEXT DEFAULT '1 min read'
	)`).Error)

	repo := NewPostRepository(db)
	require.NoError(t, repo.Init(context.Background()))

	m := db.Migrator()
	assert.True(t, m.HasColumn(&model.Post{}, "markdown_content"))
	assert.True(t, m.HasColumn(&model.Post{}, "updated_at"))
}
