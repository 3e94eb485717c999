package memory

import (
	"slices"
	"sync"
	"time"

	"villa_cms/internal/domain/models"
	"villa_cms/internal/storage"
)

// table is one entity collection. A single RWMutex guards both the rows and
// the id counter, so readers never see a half-applied write and two creates
// never share an id. The counter only grows: deleted ids are never handed out again.
type table[T any, PT models.Record[T]] struct {
	mu      sync.RWMutex
	name    string
	rows    map[int64]T
	nextID  int64
	compare func(a, b T) int
	now     func() time.Time
}

func newTable[T any, PT models.Record[T]](name string, compare func(a, b T) int) *table[T, PT] {
	if compare == nil {
		compare = func(a, b T) int {
			ai, bi := PT(&a).GetID(), PT(&b).GetID()
			switch {
			case ai < bi:
				return -1
			case ai > bi:
				return 1
			}
			return 0
		}
	}

	return &table[T, PT]{
		name:    name,
		rows:    make(map[int64]T),
		compare: compare,
		now:     func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

func clone[T any, PT models.Record[T]](v T) T {
	return PT(&v).Clone()
}

func (t *table[T, PT]) list(match func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.rows))
	for _, row := range t.rows {
		if match == nil || match(row) {
			out = append(out, clone[T, PT](row))
		}
	}
	slices.SortFunc(out, t.compare)

	return out
}

func (t *table[T, PT]) get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}

	return clone[T, PT](row), true
}

func (t *table[T, PT]) find(match func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.findLocked(match)
}

func (t *table[T, PT]) findLocked(match func(T) bool) (T, bool) {
	for _, row := range t.rows {
		if match(row) {
			return clone[T, PT](row), true
		}
	}

	var zero T
	return zero, false
}

func (t *table[T, PT]) insert(item T) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.insertLocked(item)
}

// insertLocked validates before taking an id, so rejected input does not
// consume one.
func (t *table[T, PT]) insertLocked(item T) (T, error) {
	row := clone[T, PT](item)
	now := t.now()

	PT(&row).SetIdentity(0, now)
	if err := PT(&row).Validate(); err != nil {
		var zero T
		return zero, err
	}

	t.nextID++
	PT(&row).SetIdentity(t.nextID, now)
	t.rows[t.nextID] = row

	return clone[T, PT](row), nil
}

func (t *table[T, PT]) update(id int64, mutate func(*T) error) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.updateLocked(id, mutate)
}

func (t *table[T, PT]) updateLocked(id int64, mutate func(*T) error) (T, error) {
	var zero T

	next, err := t.stage(id, t.rows, mutate)
	if err != nil {
		return zero, err
	}
	t.rows[id] = next

	return clone[T, PT](next), nil
}

// stage computes the merged record without storing it. rows is consulted
// first so a batch can chain several patches to the same id.
func (t *table[T, PT]) stage(id int64, rows map[int64]T, mutate func(*T) error) (T, error) {
	var zero T

	cur, ok := rows[id]
	if !ok {
		cur, ok = t.rows[id]
	}
	if !ok {
		return zero, &storage.NotFoundError{Entity: t.name, ID: id}
	}

	next := clone[T, PT](cur)
	if err := mutate(&next); err != nil {
		return zero, err
	}
	if err := PT(&next).Validate(); err != nil {
		return zero, err
	}

	return next, nil
}

type change[T any] struct {
	id     int64
	mutate func(*T) error
}

// updateAll stages every change first and commits only if all of them
// succeeded. The write lock is held throughout, so no reader sees a partial batch.
func (t *table[T, PT]) updateAll(changes []change[T]) ([]T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	staged := make(map[int64]T, len(changes))
	order := make([]int64, 0, len(changes))
	for _, c := range changes {
		next, err := t.stage(c.id, staged, c.mutate)
		if err != nil {
			return nil, err
		}
		if _, seen := staged[c.id]; !seen {
			order = append(order, c.id)
		}
		staged[c.id] = next
	}

	out := make([]T, 0, len(order))
	for _, id := range order {
		t.rows[id] = staged[id]
		out = append(out, clone[T, PT](staged[id]))
	}

	return out, nil
}

func (t *table[T, PT]) remove(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)

	return true
}

func (t *table[T, PT]) clear() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := len(t.rows)
	t.rows = make(map[int64]T)

	return n
}
