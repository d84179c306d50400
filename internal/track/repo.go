package track

import "context"

type ListOpts struct {
	Limit  int
	Offset int
}

// Store is the persistence surface for tracker records. The grade engine
// never touches it; handlers fetch a class's snapshot here and hand it to
// the pure aggregators.
type Store interface {
	PutClass(ctx context.Context, c Class) (Class, error)
	GetClass(ctx context.Context, id string) (Class, error)
	ListClasses(ctx context.Context, opts ListOpts) ([]Class, error)
	DeleteClass(ctx context.Context, id string) error

	PutCategory(ctx context.Context, c Category) (Category, error)
	ListCategories(ctx context.Context, classID string) ([]Category, error)
	DeleteCategory(ctx context.Context, id string) error

	PutItem(ctx context.Context, it GradedItem) (GradedItem, error)
	GetItem(ctx context.Context, id string) (GradedItem, error)
	ListItems(ctx context.Context, classID string) ([]GradedItem, error)
	DeleteItem(ctx context.Context, id string) error

	AddSession(ctx context.Context, s StudySession) (StudySession, error)
	ListSessions(ctx context.Context, opts ListOpts) ([]StudySession, error)

	AddExpense(ctx context.Context, e Expense) (Expense, error)
	ListExpenses(ctx context.Context, opts ListOpts) ([]Expense, error)

	AddMood(ctx context.Context, m MoodEntry) (MoodEntry, error)
	ListMoods(ctx context.Context, opts ListOpts) ([]MoodEntry, error)
}
