package track

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gradetrack/gradetrack/internal/journal"
)

type SQLStore struct {
	db      *sql.DB
	driver  string // "sqlite" or "postgres"
	journal *journal.Repo
}

func NewSQLStore(db *sql.DB, driver string, j *journal.Repo) *SQLStore {
	return &SQLStore{db: db, driver: driver, journal: j}
}

func newID(prefix string) string {
	return prefix + "-" + strconv.FormatInt(time.Now().UnixNano(), 10)
}

func (s *SQLStore) log(ctx context.Context, typ, key string) {
	if s.journal == nil {
		return
	}
	// journal failures never fail the write they describe
	_ = s.journal.Append(ctx, journal.Event{Type: typ, Key: key})
}

func (s *SQLStore) PutClass(ctx context.Context, c Class) (Class, error) {
	if c.ID == "" {
		c.ID = newID("cls")
		c.CreatedAt = time.Now().Unix()
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO classes (id,name,credits,threshold,gpa_points,created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name, credits=EXCLUDED.credits,
			threshold=EXCLUDED.threshold, gpa_points=EXCLUDED.gpa_points`,
		c.ID, c.Name, c.Credits, c.Threshold, nullFloat(c.GPAPoints), c.CreatedAt)
	if err != nil {
		return Class{}, err
	}
	s.log(ctx, "ClassSaved", c.ID)
	return c, nil
}

func (s *SQLStore) GetClass(ctx context.Context, id string) (Class, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,name,credits,threshold,gpa_points,created_at FROM classes WHERE id=$1`, id)
	return scanClass(row)
}

func (s *SQLStore) ListClasses(ctx context.Context, opts ListOpts) ([]Class, error) {
	limit, offset := pageArgs(opts)
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,name,credits,threshold,gpa_points,created_at FROM classes ORDER BY created_at, id LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Class
	for rows.Next() {
		c, err := scanClass(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *SQLStore) DeleteClass(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM classes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	s.log(ctx, "ClassDeleted", id)
	return nil
}

func (s *SQLStore) PutCategory(ctx context.Context, c Category) (Category, error) {
	if err := s.ensureClass(ctx, c.ClassID); err != nil {
		return Category{}, err
	}
	if c.ID == "" {
		c.ID = newID("cat")
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO categories (id,class_id,name,weight)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name, weight=EXCLUDED.weight`,
		c.ID, c.ClassID, c.Name, c.Weight)
	if err != nil {
		return Category{}, err
	}
	s.log(ctx, "CategorySaved", c.ID)
	return c, nil
}

func (s *SQLStore) ListCategories(ctx context.Context, classID string) ([]Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id,class_id,name,weight FROM categories WHERE class_id=$1 ORDER BY id`, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.ClassID, &c.Name, &c.Weight); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *SQLStore) DeleteCategory(ctx context.Context, id string) error {
	// items fall back to the flat path rather than disappearing
	if _, err := s.db.ExecContext(ctx, `UPDATE graded_items SET category_id='' WHERE category_id=$1`, id); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	s.log(ctx, "CategoryDeleted", id)
	return nil
}

func (s *SQLStore) PutItem(ctx context.Context, it GradedItem) (GradedItem, error) {
	if err := s.ensureClass(ctx, it.ClassID); err != nil {
		return GradedItem{}, err
	}
	if it.ID == "" {
		it.ID = newID("itm")
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO graded_items (id,class_id,category_id,name,weight,score,due_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (id) DO UPDATE SET category_id=EXCLUDED.category_id, name=EXCLUDED.name,
			weight=EXCLUDED.weight, score=EXCLUDED.score, due_at=EXCLUDED.due_at`,
		it.ID, it.ClassID, it.CategoryID, it.Name, it.Weight, nullFloat(it.Score), it.DueAt)
	if err != nil {
		return GradedItem{}, err
	}
	s.log(ctx, "ItemSaved", it.ID)
	return it, nil
}

func (s *SQLStore) GetItem(ctx context.Context, id string) (GradedItem, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,class_id,category_id,name,weight,score,due_at FROM graded_items WHERE id=$1`, id)
	return scanItem(row)
}

func (s *SQLStore) ListItems(ctx context.Context, classID string) ([]GradedItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,class_id,category_id,name,weight,score,due_at FROM graded_items WHERE class_id=$1 ORDER BY id`, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []GradedItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (s *SQLStore) DeleteItem(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM graded_items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	s.log(ctx, "ItemDeleted", id)
	return nil
}

func (s *SQLStore) AddSession(ctx context.Context, sess StudySession) (StudySession, error) {
	if sess.ID == "" {
		sess.ID = newID("ses")
	}
	if sess.StartedAt == 0 {
		sess.StartedAt = time.Now().Unix()
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO study_sessions (id,class_id,minutes,note,started_at)
		VALUES ($1,$2,$3,$4,$5)`,
		sess.ID, sess.ClassID, sess.Minutes, sess.Note, sess.StartedAt)
	if err != nil {
		return StudySession{}, err
	}
	s.log(ctx, "SessionLogged", sess.ID)
	return sess, nil
}

func (s *SQLStore) ListSessions(ctx context.Context, opts ListOpts) ([]StudySession, error) {
	limit, offset := pageArgs(opts)
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,class_id,minutes,note,started_at FROM study_sessions ORDER BY started_at DESC, id LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []StudySession
	for rows.Next() {
		var x StudySession
		if err := rows.Scan(&x.ID, &x.ClassID, &x.Minutes, &x.Note, &x.StartedAt); err != nil {
			return nil, err
		}
		out = append(out, x)
	}
	return out, rows.Err()
}

func (s *SQLStore) AddExpense(ctx context.Context, e Expense) (Expense, error) {
	if e.ID == "" {
		e.ID = newID("exp")
	}
	if e.SpentAt == 0 {
		e.SpentAt = time.Now().Unix()
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO expenses (id,amount,category,note,spent_at)
		VALUES ($1,$2,$3,$4,$5)`,
		e.ID, e.Amount, e.Category, e.Note, e.SpentAt)
	if err != nil {
		return Expense{}, err
	}
	s.log(ctx, "ExpenseLogged", e.ID)
	return e, nil
}

func (s *SQLStore) ListExpenses(ctx context.Context, opts ListOpts) ([]Expense, error) {
	limit, offset := pageArgs(opts)
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,amount,category,note,spent_at FROM expenses ORDER BY spent_at DESC, id LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Expense
	for rows.Next() {
		var x Expense
		if err := rows.Scan(&x.ID, &x.Amount, &x.Category, &x.Note, &x.SpentAt); err != nil {
			return nil, err
		}
		out = append(out, x)
	}
	return out, rows.Err()
}

func (s *SQLStore) AddMood(ctx context.Context, m MoodEntry) (MoodEntry, error) {
	if m.ID == "" {
		m.ID = newID("moo")
	}
	if m.RecordedAt == 0 {
		m.RecordedAt = time.Now().Unix()
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO moods (id,rating,note,recorded_at)
		VALUES ($1,$2,$3,$4)`,
		m.ID, m.Rating, m.Note, m.RecordedAt)
	if err != nil {
		return MoodEntry{}, err
	}
	s.log(ctx, "MoodLogged", m.ID)
	return m, nil
}

func (s *SQLStore) ListMoods(ctx context.Context, opts ListOpts) ([]MoodEntry, error) {
	limit, offset := pageArgs(opts)
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,rating,note,recorded_at FROM moods ORDER BY recorded_at DESC, id LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []MoodEntry
	for rows.Next() {
		var x MoodEntry
		if err := rows.Scan(&x.ID, &x.Rating, &x.Note, &x.RecordedAt); err != nil {
			return nil, err
		}
		out = append(out, x)
	}
	return out, rows.Err()
}

func (s *SQLStore) ensureClass(ctx context.Context, classID string) error {
	var one int
	if err := s.db.QueryRowContext(ctx, `SELECT 1 FROM classes WHERE id=$1`, classID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("class %q: %w", classID, ErrNotFound)
		}
		return err
	}
	return nil
}

type rowScanner interface{ Scan(dest ...any) error }

func scanClass(r rowScanner) (Class, error) {
	var c Class
	var gpa sql.NullFloat64
	if err := r.Scan(&c.ID, &c.Name, &c.Credits, &c.Threshold, &gpa, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Class{}, ErrNotFound
		}
		return Class{}, err
	}
	if gpa.Valid {
		c.GPAPoints = &gpa.Float64
	}
	return c, nil
}

func scanItem(r rowScanner) (GradedItem, error) {
	var it GradedItem
	var score sql.NullFloat64
	if err := r.Scan(&it.ID, &it.ClassID, &it.CategoryID, &it.Name, &it.Weight, &score, &it.DueAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GradedItem{}, ErrNotFound
		}
		return GradedItem{}, err
	}
	if score.Valid {
		it.Score = &score.Float64
	}
	return it, nil
}

func nullFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func pageArgs(opts ListOpts) (limit, offset int) {
	limit = opts.Limit
	if limit <= 0 {
		limit = 200
	}
	if opts.Offset > 0 {
		offset = opts.Offset
	}
	return limit, offset
}
