package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"content-hub/internal/domain/entity"
	pg "content-hub/internal/infra/adapter/persistence/postgres"
	"content-hub/internal/repository"
)

func itemRow(it *entity.Item) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "description", "image_url",
		"category", "created_at", "updated_at",
	}).AddRow(
		it.ID, it.Title, it.Description, it.ImageURL,
		it.Category, it.CreatedAt, it.UpdatedAt,
	)
}

func strPtr(s string) *string { return &s }

func TestItemRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO items")).
		WithArgs("A", "B", "https://x.com/i.png", strPtr("Tech")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(7), now, now))

	repo := pg.NewItemRepo(db)
	item := &entity.Item{
		Title: "A", Description: "B",
		ImageURL: "https://x.com/i.png", Category: strPtr("Tech"),
	}
	if err := repo.Create(context.Background(), item); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if item.ID != 7 {
		t.Errorf("ID = %d, want 7", item.ID)
	}
	if !item.CreatedAt.Equal(now) || !item.UpdatedAt.Equal(now) {
		t.Errorf("timestamps = %v / %v, want %v", item.CreatedAt, item.UpdatedAt, now)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestItemRepo_Create_NullCategory(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO items")).
		WithArgs("A", "B", "https://x.com/i.png", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(8), now, now))

	repo := pg.NewItemRepo(db)
	item := &entity.Item{Title: "A", Description: "B", ImageURL: "https://x.com/i.png"}
	if err := repo.Create(context.Background(), item); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if item.Category != nil {
		t.Errorf("Category = %v, want nil", *item.Category)
	}
}

func TestItemRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC)
	want := &entity.Item{
		ID: 1, Title: "A", Description: "B",
		ImageURL: "https://x.com/i.png", Category: strPtr("Tech"),
		CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
		WithArgs(int64(1)).
		WillReturnRows(itemRow(want))

	repo := pg.NewItemRepo(db)
	got, err := repo.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestItemRepo_Get_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "description", "image_url",
			"category", "created_at", "updated_at",
		}))

	repo := pg.NewItemRepo(db)
	got, err := repo.Get(context.Background(), 99)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got != nil {
		t.Fatalf("Get = %+v, want nil for missing row", got)
	}
}

func TestItemRepo_List_WithFilters(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery("FROM items").
		WithArgs("Tech", "%go%", 20, 0).
		WillReturnRows(itemRow(&entity.Item{
			ID: 1, Title: "go item", Description: "d",
			ImageURL: "https://x.com/i.png", Category: strPtr("Tech"),
			CreatedAt: now, UpdatedAt: now,
		}))

	repo := pg.NewItemRepo(db)
	got, err := repo.List(context.Background(), repository.ItemFilters{
		Category: strPtr("Tech"),
		Search:   strPtr("go"),
	}, 0, 20)
	if err != nil || len(got) != 1 {
		t.Fatalf("List err=%v len=%d", err, len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestItemRepo_List_NoFilters(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM items").
		WithArgs(10, 5).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "description", "image_url",
			"category", "created_at", "updated_at",
		}))

	repo := pg.NewItemRepo(db)
	got, err := repo.List(context.Background(), repository.ItemFilters{}, 5, 10)
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if len(got) != 0 {
		t.Fatalf("List len=%d, want 0", len(got))
	}
}

func TestItemRepo_Count(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM items")).
		WithArgs("News").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(42)))

	repo := pg.NewItemRepo(db)
	got, err := repo.Count(context.Background(), repository.ItemFilters{Category: strPtr("News")})
	if err != nil {
		t.Fatalf("Count err=%v", err)
	}
	if got != 42 {
		t.Fatalf("Count = %d, want 42", got)
	}
}

func TestItemRepo_Update(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE items SET")).
		WithArgs("A2", "B2", "https://x.com/i2.png", nil, now, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewItemRepo(db)
	err := repo.Update(context.Background(), &entity.Item{
		ID: 1, Title: "A2", Description: "B2",
		ImageURL: "https://x.com/i2.png", UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
}

func TestItemRepo_Update_NoRows(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE items SET")).
		WithArgs("A", "B", "https://x.com/i.png", nil, now, int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewItemRepo(db)
	err := repo.Update(context.Background(), &entity.Item{
		ID: 9, Title: "A", Description: "B",
		ImageURL: "https://x.com/i.png", UpdatedAt: now,
	})
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("Update err=%v, want wrapped ErrNotFound", err)
	}
}

func TestItemRepo_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM items")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewItemRepo(db)
	if err := repo.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
}

func TestItemRepo_Delete_NoRows(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM items")).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewItemRepo(db)
	err := repo.Delete(context.Background(), 404)
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("Delete err=%v, want wrapped ErrNotFound", err)
	}
}
