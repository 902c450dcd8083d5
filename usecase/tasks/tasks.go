package tasks

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dailytasks/backend/domain"
	"github.com/dailytasks/backend/internal/state"
	appLogger "github.com/dailytasks/backend/pkg/logger"
)

// CreateTaskInput carries the caller-supplied fields for a new task. ID,
// CreatedAt and Order are assigned here, never by the caller.
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    domain.Priority
	DueDate     *time.Time
	Tags        []string
	ListID      string
	Subtasks    []domain.Subtask
}

// UpdateTaskInput carries replacement values for an existing task. Identity
// fields (ID, CreatedAt, Order) and completion state are preserved; use
// Toggle for completion.
type UpdateTaskInput struct {
	Title       string
	Description string
	Priority    domain.Priority
	DueDate     *time.Time
	Tags        []string
	ListID      string
	Subtasks    []domain.Subtask
}

// CreateListInput is the validated list-creation request.
type CreateListInput struct {
	Name string
	Icon string
}

const (
	defaultListIcon  = "📝"
	defaultListColor = "#3b82f6"
)

// UseCase applies task and list mutations to the state container. It never
// derives or persists anything itself; persistence is the mirror service's
// concern and derivation the board usecase's.
type UseCase struct {
	container *state.Container
	logger    *zap.Logger
	now       func() time.Time
}

func New(container *state.Container, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		container: container,
		logger:    logger,
		now:       time.Now,
	}
}

// Create validates the input and appends a new task to the collection.
func (uc *UseCase) Create(ctx context.Context, in CreateTaskInput) (domain.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return domain.Task{}, domain.ErrEmptyTitle
	}

	task := domain.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: in.Description,
		Priority:    normalizePriority(in.Priority),
		DueDate:     in.DueDate,
		Tags:        in.Tags,
		ListID:      in.ListID,
		Subtasks:    in.Subtasks,
		CreatedAt:   uc.now(),
	}
	if task.ListID == "" {
		task.ListID = domain.DefaultListID
	} else if !uc.container.HasList(task.ListID) {
		return domain.Task{}, domain.ErrListNotFound
	}

	created := uc.container.AddTask(task)
	appLogger.WithRequestID(ctx, uc.logger).Info("task created",
		zap.String("task_id", created.ID), zap.String("list_id", created.ListID))
	return created, nil
}

// Update replaces the editable fields of an existing task.
func (uc *UseCase) Update(ctx context.Context, id string, in UpdateTaskInput) (domain.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return domain.Task{}, domain.ErrEmptyTitle
	}
	if in.ListID != "" && !uc.container.HasList(in.ListID) {
		return domain.Task{}, domain.ErrListNotFound
	}

	updated, err := uc.container.UpdateTask(id, func(task *domain.Task) {
		task.Title = title
		task.Description = in.Description
		task.Priority = normalizePriority(in.Priority)
		task.DueDate = in.DueDate
		task.Tags = in.Tags
		task.Subtasks = in.Subtasks
		if in.ListID != "" {
			task.ListID = in.ListID
		}
	})
	if err != nil {
		return domain.Task{}, err
	}
	appLogger.WithRequestID(ctx, uc.logger).Info("task updated", zap.String("task_id", id))
	return updated, nil
}

// Toggle flips completion, keeping the CompletedAt invariant: set exactly
// when the task becomes completed, cleared when it becomes active again.
func (uc *UseCase) Toggle(ctx context.Context, id string) (domain.Task, error) {
	completedAt := uc.now()
	toggled, err := uc.container.UpdateTask(id, func(task *domain.Task) {
		task.Completed = !task.Completed
		if task.Completed {
			task.CompletedAt = &completedAt
		} else {
			task.CompletedAt = nil
		}
	})
	if err != nil {
		return domain.Task{}, err
	}
	appLogger.WithRequestID(ctx, uc.logger).Info("task toggled",
		zap.String("task_id", id), zap.Bool("completed", toggled.Completed))
	return toggled, nil
}

// Delete removes a task from the collection.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	if err := uc.container.DeleteTask(id); err != nil {
		return err
	}
	appLogger.WithRequestID(ctx, uc.logger).Info("task deleted", zap.String("task_id", id))
	return nil
}

// CreateList validates and appends a new list.
func (uc *UseCase) CreateList(ctx context.Context, in CreateListInput) (domain.TaskList, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.TaskList{}, domain.ErrEmptyListName
	}
	icon := in.Icon
	if icon == "" {
		icon = defaultListIcon
	}

	list, err := uc.container.AddList(domain.TaskList{
		ID:    uuid.NewString(),
		Name:  name,
		Color: defaultListColor,
		Icon:  icon,
	})
	if err != nil {
		return domain.TaskList{}, err
	}
	appLogger.WithRequestID(ctx, uc.logger).Info("list created",
		zap.String("list_id", list.ID), zap.String("name", list.Name))
	return list, nil
}

// normalizePriority maps missing or unrecognized priorities to none so a bad
// enum value can never enter the collection through a mutation.
func normalizePriority(p domain.Priority) domain.Priority {
	if !p.Valid() {
		return domain.PriorityNone
	}
	return p
}
