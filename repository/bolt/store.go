package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/dailytasks/backend/domain"
)

var (
	tasksBucket = []byte("tasks")
	listsBucket = []byte("lists")
)

// Store persists the task and list collections in a local BoltDB file, the
// single-user equivalent of browser local storage. Records are JSON values
// keyed by collection position so a cursor walk restores insertion order.
type Store struct {
	db     *bolt.DB
	logger *zap.Logger
}

// Open initializes the BoltDB file and ensures both buckets exist.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(tasksBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(listsBucket)
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, logger: logger}, nil
}

// LoadTasks returns the stored task collection in persisted order. Records
// that fail to decode are logged and skipped so one corrupt entry cannot
// take the whole collection down.
func (s *Store) LoadTasks(ctx context.Context) ([]domain.Task, error) {
	if s == nil || s.db == nil {
		return nil, bolt.ErrDatabaseNotOpen
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var tasks []domain.Task
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(tasksBucket).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var task domain.Task
			if err := json.Unmarshal(v, &task); err != nil {
				s.logger.Warn("skipping unreadable task record", zap.ByteString("key", k), zap.Error(err))
				continue
			}
			tasks = append(tasks, task)
		}
		return nil
	})
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "load tasks", err)
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

// SaveTasks replaces the stored collection with tasks, preserving slice order.
func (s *Store) SaveTasks(ctx context.Context, tasks []domain.Task) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(tasksBucket); err != nil {
			return err
		}
		b, err := tx.CreateBucket(tasksBucket)
		if err != nil {
			return err
		}
		for i, task := range tasks {
			payload, err := json.Marshal(task)
			if err != nil {
				return err
			}
			if err := b.Put(positionKey(i, task.ID), payload); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "save tasks", err)
	}
	return nil
}

// LoadLists returns the stored lists, seeding and persisting the built-in
// defaults when the bucket is empty.
func (s *Store) LoadLists(ctx context.Context) ([]domain.TaskList, error) {
	if s == nil || s.db == nil {
		return nil, bolt.ErrDatabaseNotOpen
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var lists []domain.TaskList
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(listsBucket).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var list domain.TaskList
			if err := json.Unmarshal(v, &list); err != nil {
				s.logger.Warn("skipping unreadable list record", zap.ByteString("key", k), zap.Error(err))
				continue
			}
			lists = append(lists, list)
		}
		return nil
	})
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "load lists", err)
	}

	if len(lists) == 0 {
		lists = domain.DefaultLists()
		if err := s.SaveLists(ctx, lists); err != nil {
			return nil, err
		}
	}
	return lists, nil
}

// SaveLists replaces the stored lists with the provided slice.
func (s *Store) SaveLists(ctx context.Context, lists []domain.TaskList) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(listsBucket); err != nil {
			return err
		}
		b, err := tx.CreateBucket(listsBucket)
		if err != nil {
			return err
		}
		for i, list := range lists {
			payload, err := json.Marshal(list)
			if err != nil {
				return err
			}
			if err := b.Put(positionKey(i, list.ID), payload); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "save lists", err)
	}
	return nil
}

// Ping verifies the database file is still readable.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.View(func(tx *bolt.Tx) error { return nil })
}

// Counts returns the number of stored tasks and lists for monitoring.
func (s *Store) Counts() (tasks, lists int, err error) {
	if s == nil || s.db == nil {
		return 0, 0, bolt.ErrDatabaseNotOpen
	}
	err = s.db.View(func(tx *bolt.Tx) error {
		tasks = tx.Bucket(tasksBucket).Stats().KeyN
		lists = tx.Bucket(listsBucket).Stats().KeyN
		return nil
	})
	return tasks, lists, err
}

// Close closes the Bolt database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func positionKey(index int, id string) []byte {
	return []byte(fmt.Sprintf("%010d_%s", index, id))
}
