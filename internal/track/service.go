package track

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

var ErrNotFound = errors.New("not found")

type memoryStore struct {
	mu         sync.RWMutex
	classes    map[string]Class
	categories map[string]Category
	items      map[string]GradedItem
	sessions   []StudySession
	expenses   []Expense
	moods      []MoodEntry
	seq        atomic.Int64
}

// NewInMemoryStore backs tests and dev runs; the SQL store is the real one.
func NewInMemoryStore() Store {
	return &memoryStore{
		classes:    map[string]Class{},
		categories: map[string]Category{},
		items:      map[string]GradedItem{},
	}
}

func (m *memoryStore) nextID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, m.seq.Add(1))
}

func (m *memoryStore) PutClass(_ context.Context, c Class) (Class, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID == "" {
		c.ID = m.nextID("cls")
		c.CreatedAt = time.Now().Unix()
	}
	m.classes[c.ID] = c
	return c, nil
}

func (m *memoryStore) GetClass(_ context.Context, id string) (Class, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.classes[id]
	if !ok {
		return Class{}, ErrNotFound
	}
	return c, nil
}

func (m *memoryStore) ListClasses(_ context.Context, opts ListOpts) ([]Class, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Class, 0, len(m.classes))
	for _, c := range m.classes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return page(out, opts), nil
}

func (m *memoryStore) DeleteClass(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.classes[id]; !ok {
		return ErrNotFound
	}
	delete(m.classes, id)
	for cid, cat := range m.categories {
		if cat.ClassID == id {
			delete(m.categories, cid)
		}
	}
	for iid, it := range m.items {
		if it.ClassID == id {
			delete(m.items, iid)
		}
	}
	return nil
}

func (m *memoryStore) PutCategory(_ context.Context, c Category) (Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.classes[c.ClassID]; !ok {
		return Category{}, ErrNotFound
	}
	if c.ID == "" {
		c.ID = m.nextID("cat")
	}
	m.categories[c.ID] = c
	return c, nil
}

func (m *memoryStore) ListCategories(_ context.Context, classID string) ([]Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Category
	for _, c := range m.categories {
		if c.ClassID == classID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryStore) DeleteCategory(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[id]; !ok {
		return ErrNotFound
	}
	delete(m.categories, id)
	// items in the deleted category fall back to the flat path
	for iid, it := range m.items {
		if it.CategoryID == id {
			it.CategoryID = ""
			m.items[iid] = it
		}
	}
	return nil
}

func (m *memoryStore) PutItem(_ context.Context, it GradedItem) (GradedItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.classes[it.ClassID]; !ok {
		return GradedItem{}, ErrNotFound
	}
	if it.CategoryID != "" {
		if _, ok := m.categories[it.CategoryID]; !ok {
			return GradedItem{}, ErrNotFound
		}
	}
	if it.ID == "" {
		it.ID = m.nextID("itm")
	}
	m.items[it.ID] = it
	return it, nil
}

func (m *memoryStore) GetItem(_ context.Context, id string) (GradedItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	it, ok := m.items[id]
	if !ok {
		return GradedItem{}, ErrNotFound
	}
	return it, nil
}

func (m *memoryStore) ListItems(_ context.Context, classID string) ([]GradedItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []GradedItem
	for _, it := range m.items {
		if it.ClassID == classID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryStore) DeleteItem(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memoryStore) AddSession(_ context.Context, s StudySession) (StudySession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.ID == "" {
		s.ID = m.nextID("ses")
	}
	m.sessions = append(m.sessions, s)
	return s, nil
}

func (m *memoryStore) ListSessions(_ context.Context, opts ListOpts) ([]StudySession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return page(append([]StudySession(nil), m.sessions...), opts), nil
}

func (m *memoryStore) AddExpense(_ context.Context, e Expense) (Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e.ID == "" {
		e.ID = m.nextID("exp")
	}
	m.expenses = append(m.expenses, e)
	return e, nil
}

func (m *memoryStore) ListExpenses(_ context.Context, opts ListOpts) ([]Expense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return page(append([]Expense(nil), m.expenses...), opts), nil
}

func (m *memoryStore) AddMood(_ context.Context, mo MoodEntry) (MoodEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if mo.ID == "" {
		mo.ID = m.nextID("moo")
	}
	m.moods = append(m.moods, mo)
	return mo, nil
}

func (m *memoryStore) ListMoods(_ context.Context, opts ListOpts) ([]MoodEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return page(append([]MoodEntry(nil), m.moods...), opts), nil
}

func page[T any](in []T, opts ListOpts) []T {
	if opts.Offset > 0 {
		if opts.Offset >= len(in) {
			return []T{}
		}
		in = in[opts.Offset:]
	}
	if opts.Limit > 0 && opts.Limit < len(in) {
		in = in[:opts.Limit]
	}
	return in
}
