package memory

import (
	"context"
	"fmt"

	"villa_cms/internal/domain/models"
)

// crud implements repository.CRUD over a table. The context is accepted for
// interface parity only: nothing here blocks.
type crud[T any, P models.Patch[T], PT models.Record[T]] struct {
	t *table[T, PT]
}

func newCRUD[T any, P models.Patch[T], PT models.Record[T]](name string, compare func(a, b T) int) crud[T, P, PT] {
	return crud[T, P, PT]{t: newTable[T, PT](name, compare)}
}

func (c crud[T, P, PT]) List(_ context.Context) ([]T, error) {
	return c.t.list(nil), nil
}

func (c crud[T, P, PT]) GetByID(_ context.Context, id int64) (T, bool, error) {
	row, ok := c.t.get(id)
	return row, ok, nil
}

func (c crud[T, P, PT]) Create(_ context.Context, item T) (T, error) {
	row, err := c.t.insert(item)
	if err != nil {
		return row, fmt.Errorf("memory.%s.Create: %w", c.t.name, err)
	}

	return row, nil
}

func (c crud[T, P, PT]) Update(_ context.Context, id int64, patch P) (T, error) {
	row, err := c.t.update(id, models.Stamped[T](patch, c.t.now))
	if err != nil {
		return row, fmt.Errorf("memory.%s.Update: %w", c.t.name, err)
	}

	return row, nil
}

func (c crud[T, P, PT]) Delete(_ context.Context, id int64) (bool, error) {
	return c.t.remove(id), nil
}

func (c crud[T, P, PT]) DeleteAll(_ context.Context) (int, error) {
	return c.t.clear(), nil
}
