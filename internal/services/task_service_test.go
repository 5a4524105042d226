package services

import (
	"testing"

	"github.com/atakanyildirim/taskdeck/internal/dto"
	"github.com/atakanyildirim/taskdeck/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestCreateTask(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateTaskRequest
		wantErr error
		check   func(t *testing.T, task *models.Task)
	}{
		{
			name: "defaults applied",
			req:  dto.CreateTaskRequest{Title: "Buy milk"},
			check: func(t *testing.T, task *models.Task) {
				require.Equal(t, "Buy milk", task.Title)
				require.Equal(t, models.StatusTodo, task.Status)
				require.Equal(t, models.PriorityMedium, task.Priority)
				require.Empty(t, task.Description)
				require.Nil(t, task.DueDate)
			},
		},
		{
			name: "fields trimmed",
			req:  dto.CreateTaskRequest{Title: "  Buy milk  ", Description: "  2 liters  "},
			check: func(t *testing.T, task *models.Task) {
				require.Equal(t, "Buy milk", task.Title)
				require.Equal(t, "2 liters", task.Description)
			},
		},
		{name: "empty title", req: dto.CreateTaskRequest{Title: ""}, wantErr: ErrTitleRequired},
		{name: "whitespace title", req: dto.CreateTaskRequest{Title: "   "}, wantErr: ErrTitleRequired},
		{name: "bad status", req: dto.CreateTaskRequest{Title: "x", Status: "Started"}, wantErr: ErrInvalidStatus},
		{name: "bad priority", req: dto.CreateTaskRequest{Title: "x", Priority: "Urgent"}, wantErr: ErrInvalidPriority},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc := NewTaskService(testDB(t))
			owner := uuid.New()

			task, err := svc.Create(owner, test.req)
			if test.wantErr != nil {
				require.ErrorIs(t, err, test.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, owner, task.UserID)
			test.check(t, task)
		})
	}
}

func TestListTasks_ScopedToOwner(t *testing.T) {
	svc := NewTaskService(testDB(t))
	alice := uuid.New()
	bob := uuid.New()

	created, err := svc.Create(alice, dto.CreateTaskRequest{Title: "Alice's task"})
	require.NoError(t, err)
	_, err = svc.Create(bob, dto.CreateTaskRequest{Title: "Bob's task"})
	require.NoError(t, err)

	aliceTasks, err := svc.List(alice, dto.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, aliceTasks, 1)
	require.Equal(t, created.ID, aliceTasks[0].ID)

	bobTasks, err := svc.List(bob, dto.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, bobTasks, 1)
	require.Equal(t, "Bob's task", bobTasks[0].Title)
}

func TestListTasks_Filters(t *testing.T) {
	svc := NewTaskService(testDB(t))
	owner := uuid.New()

	seed := []dto.CreateTaskRequest{
		{Title: "Ship release", Status: models.StatusDone, Priority: models.PriorityHigh},
		{Title: "Write docs", Status: models.StatusDone, Priority: models.PriorityLow},
		{Title: "Fix login bug", Status: models.StatusInProgress, Priority: models.PriorityHigh},
		{Title: "Plan sprint", Description: "release planning", Status: models.StatusTodo},
	}
	for _, req := range seed {
		_, err := svc.Create(owner, req)
		require.NoError(t, err)
	}

	t.Run("status and priority compose conjunctively", func(t *testing.T) {
		tasks, err := svc.List(owner, dto.TaskFilter{Status: models.StatusDone, Priority: models.PriorityHigh})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		require.Equal(t, "Ship release", tasks[0].Title)
	})

	t.Run("All disables a filter", func(t *testing.T) {
		tasks, err := svc.List(owner, dto.TaskFilter{Status: "All", Priority: "All"})
		require.NoError(t, err)
		require.Len(t, tasks, 4)
	})

	t.Run("search spans title and description", func(t *testing.T) {
		tasks, err := svc.List(owner, dto.TaskFilter{Search: "RELEASE"})
		require.NoError(t, err)
		require.Len(t, tasks, 2)
	})

	t.Run("search composes with status", func(t *testing.T) {
		tasks, err := svc.List(owner, dto.TaskFilter{Search: "release", Status: models.StatusTodo})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		require.Equal(t, "Plan sprint", tasks[0].Title)
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		tasks, err := svc.List(uuid.New(), dto.TaskFilter{})
		require.NoError(t, err)
		require.NotNil(t, tasks)
		require.Empty(t, tasks)
	})
}

func TestUpdateTask(t *testing.T) {
	svc := NewTaskService(testDB(t))
	owner := uuid.New()

	task, err := svc.Create(owner, dto.CreateTaskRequest{Title: "Buy milk"})
	require.NoError(t, err)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		updated, err := svc.Update(owner, task.ID, dto.UpdateTaskRequest{Status: strptr(models.StatusDone)})
		require.NoError(t, err)
		require.Equal(t, models.StatusDone, updated.Status)
		require.Equal(t, "Buy milk", updated.Title)
	})

	t.Run("title present but empty", func(t *testing.T) {
		_, err := svc.Update(owner, task.ID, dto.UpdateTaskRequest{Title: strptr("   ")})
		require.ErrorIs(t, err, ErrTitleRequired)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := svc.Update(owner, task.ID, dto.UpdateTaskRequest{Status: strptr("Blocked")})
		require.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("invalid priority", func(t *testing.T) {
		_, err := svc.Update(owner, task.ID, dto.UpdateTaskRequest{Priority: strptr("Critical")})
		require.ErrorIs(t, err, ErrInvalidPriority)
	})
}

func TestOwnershipCheck_HidesForeignTasks(t *testing.T) {
	svc := NewTaskService(testDB(t))
	alice := uuid.New()
	bob := uuid.New()

	task, err := svc.Create(alice, dto.CreateTaskRequest{Title: "Alice's task"})
	require.NoError(t, err)

	t.Run("foreign update reads as not found", func(t *testing.T) {
		_, err := svc.Update(bob, task.ID, dto.UpdateTaskRequest{Status: strptr(models.StatusDone)})
		require.ErrorIs(t, err, ErrTaskNotFound)
	})

	t.Run("foreign delete reads as not found", func(t *testing.T) {
		err := svc.Delete(bob, task.ID)
		require.ErrorIs(t, err, ErrTaskNotFound)
	})

	t.Run("missing id reads the same", func(t *testing.T) {
		err := svc.Delete(alice, uuid.New())
		require.ErrorIs(t, err, ErrTaskNotFound)
	})

	t.Run("owner still sees the task", func(t *testing.T) {
		tasks, err := svc.List(alice, dto.TaskFilter{})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
	})
}

func TestDeleteTask(t *testing.T) {
	svc := NewTaskService(testDB(t))
	owner := uuid.New()

	task, err := svc.Create(owner, dto.CreateTaskRequest{Title: "Buy milk"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(owner, task.ID))

	tasks, err := svc.List(owner, dto.TaskFilter{})
	require.NoError(t, err)
	require.Empty(t, tasks)

	err = svc.Delete(owner, task.ID)
	require.ErrorIs(t, err, ErrTaskNotFound)
}
