package rpc_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"content-hub/internal/domain/entity"
	"content-hub/internal/repository"
)

var errForced = errors.New("pq: connection refused")

// In-memory ItemRepository shared across the handler tests.
type stubItemRepo struct {
	data   map[int64]*entity.Item
	nextID int64
	err    error // forced error for failure paths
}

func newItemStub() *stubItemRepo {
	return &stubItemRepo{data: map[int64]*entity.Item{}, nextID: 1}
}

func (s *stubItemRepo) match(it *entity.Item, filters repository.ItemFilters) bool {
	if filters.Category != nil && (it.Category == nil || *it.Category != *filters.Category) {
		return false
	}
	if filters.Search != nil {
		q := strings.ToLower(*filters.Search)
		if !strings.Contains(strings.ToLower(it.Title), q) &&
			!strings.Contains(strings.ToLower(it.Description), q) {
			return false
		}
	}
	return true
}

func (s *stubItemRepo) Create(_ context.Context, it *entity.Item) error {
	if s.err != nil {
		return s.err
	}
	it.ID = s.nextID
	s.nextID++
	now := time.Now().UTC()
	it.CreatedAt = now
	it.UpdatedAt = now
	s.data[it.ID] = it
	return nil
}

func (s *stubItemRepo) Get(_ context.Context, id int64) (*entity.Item, error) {
	return s.data[id], s.err
}

func (s *stubItemRepo) List(_ context.Context, filters repository.ItemFilters, offset, limit int) ([]*entity.Item, error) {
	if s.err != nil {
		return nil, s.err
	}
	var all []*entity.Item
	for _, v := range s.data {
		if s.match(v, filters) {
			all = append(all, v)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	if offset >= len(all) {
		return []*entity.Item{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (s *stubItemRepo) Count(_ context.Context, filters repository.ItemFilters) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	var n int64
	for _, v := range s.data {
		if s.match(v, filters) {
			n++
		}
	}
	return n, nil
}

func (s *stubItemRepo) Update(_ context.Context, it *entity.Item) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[it.ID]; !ok {
		return entity.ErrNotFound
	}
	s.data[it.ID] = it
	return nil
}

func (s *stubItemRepo) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[id]; !ok {
		return entity.ErrNotFound
	}
	delete(s.data, id)
	return nil
}

// In-memory ArticleRepository shared across the handler tests.
type stubArticleRepo struct {
	data   map[int64]*entity.Article
	nextID int64
	err    error
}

func newArticleStub() *stubArticleRepo {
	return &stubArticleRepo{data: map[int64]*entity.Article{}, nextID: 1}
}

func (s *stubArticleRepo) Create(_ context.Context, a *entity.Article) error {
	if s.err != nil {
		return s.err
	}
	a.ID = s.nextID
	s.nextID++
	a.CommentCount = 0
	a.CreatedAt = time.Now().UTC()
	s.data[a.ID] = a
	return nil
}

func (s *stubArticleRepo) List(_ context.Context) ([]*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Article
	for _, v := range s.data {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PublishTime.Equal(out[j].PublishTime) {
			return out[i].PublishTime.After(out[j].PublishTime)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func seedItem(s *stubItemRepo, title, desc string, category *string) *entity.Item {
	it := &entity.Item{Title: title, Description: desc, ImageURL: "https://example.com/i.png", Category: category}
	_ = s.Create(context.Background(), it)
	return it
}
