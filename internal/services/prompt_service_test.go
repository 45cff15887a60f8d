package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"bullprompt-backend/internal/database"
	"bullprompt-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var baseTime = time.UnixMilli(1700000000000)

// flakyBackend fails reads or writes on demand.
type flakyBackend struct {
	*database.MemoryBackend
	failGet bool
	failSet bool
	sets    int
}

func (f *flakyBackend) Get(ctx context.Context, keys ...string) (map[string][]byte, error) {
	if f.failGet {
		return nil, errors.New("backend unavailable")
	}
	return f.MemoryBackend.Get(ctx, keys...)
}

func (f *flakyBackend) Set(ctx context.Context, items map[string][]byte) error {
	f.sets++
	if f.failSet {
		return errors.New("quota exceeded")
	}
	return f.MemoryBackend.Set(ctx, items)
}

func setupTestService(t *testing.T) (*PromptService, *flakyBackend) {
	t.Helper()
	backend := &flakyBackend{MemoryBackend: database.NewMemoryBackend()}
	clock := baseTime
	svc := NewPromptService(backend,
		WithLogger(zap.NewNop()),
		WithClock(func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		}),
	)
	return svc, backend
}

func storedRaw(t *testing.T, b *flakyBackend) string {
	t.Helper()
	values, err := b.MemoryBackend.Get(context.Background(), DefaultStorageKey)
	require.NoError(t, err)
	return string(values[DefaultStorageKey])
}

func validInput() models.PromptInput {
	return models.PromptInput{Name: "Greeting", Text: "Hello there", Tags: []string{"intro", "demo"}}
}

func TestCreatePrompt(t *testing.T) {
	svc, backend := setupTestService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, models.PromptInput{
		Name: "  My <Greeting> 1 ",
		Text: " Hello <b>there</b> ",
		Tags: []string{" intro ", "<demo>"},
	})
	require.NoError(t, err)

	assert.Equal(t, "mygreeting1_1700000001000", p.ID)
	assert.Equal(t, "My Greeting 1", p.Name)
	assert.Equal(t, "Hello bthere/b", p.Text)
	assert.Equal(t, []string{"intro", "demo"}, p.Tags)
	assert.True(t, baseTime.Add(time.Second).Equal(p.Timestamp.Time))
	assert.Equal(t, 1, backend.sets)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, *p, list[0])
}

func TestCreatePromptAppendsInOrder(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		in := validInput()
		in.Name = name
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "first", list[0].Name)
	assert.Equal(t, "second", list[1].Name)
	assert.Equal(t, "third", list[2].Name)
}

func TestCreatePromptValidation(t *testing.T) {
	cases := []struct {
		name string
		in   models.PromptInput
		want string
	}{
		{"empty name", models.PromptInput{Name: "   ", Text: "t", Tags: []string{"a"}}, "name required"},
		{"bracket-only name", models.PromptInput{Name: "<>", Text: "t", Tags: []string{"a"}}, "name required"},
		{"empty text", models.PromptInput{Name: "n", Text: "\n\t", Tags: []string{"a"}}, "text required"},
		{"name checked before text", models.PromptInput{Text: "", Tags: nil}, "name required"},
		{"nil tags", models.PromptInput{Name: "n", Text: "t"}, "tag count out of range"},
		{"zero tags", models.PromptInput{Name: "n", Text: "t", Tags: []string{}}, "tag count out of range"},
		{"six tags", models.PromptInput{Name: "n", Text: "t", Tags: []string{"1", "2", "3", "4", "5", "6"}}, "tag count out of range"},
		{"only blank tags", models.PromptInput{Name: "n", Text: "t", Tags: []string{" ", "<>"}}, "tag count out of range"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, backend := setupTestService(t)

			_, err := svc.Create(context.Background(), tc.in)
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.want, ve.Message)
			assert.Equal(t, 0, backend.sets)
			assert.Empty(t, storedRaw(t, backend))
		})
	}
}

func TestCreatePromptDropsBlankTags(t *testing.T) {
	svc, _ := setupTestService(t)

	p, err := svc.Create(context.Background(), models.PromptInput{
		Name: "n", Text: "t", Tags: []string{"work", " ", "work", "<>", "home"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"work", "work", "home"}, p.Tags)
}

func TestCreatePromptFiveTags(t *testing.T) {
	svc, _ := setupTestService(t)

	p, err := svc.Create(context.Background(), models.PromptInput{
		Name: "n", Text: "t", Tags: []string{"1", "2", "3", "4", "5"},
	})
	require.NoError(t, err)
	assert.Len(t, p.Tags, 5)
}

func TestCreatePromptUniqueIDs(t *testing.T) {
	backend := database.NewMemoryBackend()
	frozen := func() time.Time { return baseTime }
	svc := NewPromptService(backend, WithClock(frozen), WithLogger(zap.NewNop()))
	ctx := context.Background()

	a, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	b, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	c, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	assert.Equal(t, "greeting_1700000000000", a.ID)
	assert.Equal(t, "greeting_1700000000001", b.ID)
	assert.Equal(t, "greeting_1700000000002", c.ID)
}

func TestUpdatePrompt(t *testing.T) {
	svc, backend := setupTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	other, err := svc.Create(ctx, models.PromptInput{Name: "Other", Text: "x", Tags: []string{"y"}})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, models.PromptInput{
		Name: "Greeting v2", Text: "Hi <i>", Tags: []string{"intro"},
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Greeting v2", updated.Name)
	assert.Equal(t, "Hi i", updated.Text)
	assert.Equal(t, []string{"intro"}, updated.Tags)
	assert.True(t, updated.Timestamp.After(created.Timestamp.Time))
	assert.Equal(t, 3, backend.sets)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, *updated, list[0])
	assert.Equal(t, *other, list[1])
}

func TestUpdatePromptNotFound(t *testing.T) {
	svc, backend := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	before := storedRaw(t, backend)

	_, err = svc.Update(ctx, "missing_1", validInput())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, before, storedRaw(t, backend))
	assert.Equal(t, 1, backend.sets)
}

func TestUpdatePromptValidatesBeforeLookup(t *testing.T) {
	svc, backend := setupTestService(t)

	_, err := svc.Update(context.Background(), "missing_1", models.PromptInput{Name: "n", Text: "t"})
	assert.True(t, IsValidation(err))
	assert.Equal(t, 0, backend.sets)
}

func TestDeletePrompt(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	b, err := svc.Create(ctx, models.PromptInput{Name: "Other", Text: "x", Tags: []string{"y"}})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, a.ID))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)
}

func TestDeletePromptNotFound(t *testing.T) {
	svc, backend := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	before := storedRaw(t, backend)

	err = svc.Delete(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, before, storedRaw(t, backend))
	assert.Equal(t, 1, backend.sets)
}

func TestGetPrompt(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = svc.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListEmptyCollection(t *testing.T) {
	svc, _ := setupTestService(t)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestListNormalizesStoredTimestamps(t *testing.T) {
	svc, backend := setupTestService(t)
	ctx := context.Background()

	require.NoError(t, backend.MemoryBackend.Set(ctx, map[string][]byte{DefaultStorageKey: []byte(`[
		{"id":"a_1","name":"a","prompt":"x","tags":["t"],"timestamp":"2023-11-14T22:13:20.000Z"},
		{"id":"b_2","name":"b","prompt":"y","tags":["t"],"timestamp":1700000000000},
		{"id":"c_3","name":"c","prompt":"z"}
	]`)}))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.True(t, baseTime.Equal(list[0].Timestamp.Time))
	assert.True(t, baseTime.Equal(list[1].Timestamp.Time))
	assert.True(t, list[2].Timestamp.IsZero())
	assert.Equal(t, []string{}, list[2].Tags)
}

func TestListToleratesUnreadableTimestamps(t *testing.T) {
	svc, backend := setupTestService(t)
	ctx := context.Background()

	require.NoError(t, backend.MemoryBackend.Set(ctx, map[string][]byte{DefaultStorageKey: []byte(`[
		{"id":"a_1","name":"a","prompt":"x","tags":["t"],"timestamp":"2024-01-15"},
		{"id":"b_2","name":"b","prompt":"y","tags":["t"],"timestamp":"Mon Jan 15 2024 10:00:00 GMT+0000"},
		{"id":"c_3","name":"c","prompt":"z","tags":["t"],"timestamp":{}}
	]`)}))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.True(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC).Equal(list[0].Timestamp.Time))
	assert.True(t, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC).Equal(list[1].Timestamp.Time))
	assert.True(t, list[2].Timestamp.IsZero())

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	list, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, created.ID, list[3].ID)
	assert.NotContains(t, storedRaw(t, backend), "GMT")
}

func TestStorageErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("read failure", func(t *testing.T) {
		svc, backend := setupTestService(t)
		backend.failGet = true

		_, err := svc.List(ctx)
		assert.True(t, IsStorage(err))

		_, err = svc.Create(ctx, validInput())
		assert.True(t, IsStorage(err))
		assert.Equal(t, 0, backend.sets)

		_, err = svc.Update(ctx, "a_1", validInput())
		assert.True(t, IsStorage(err))

		assert.True(t, IsStorage(svc.Delete(ctx, "a_1")))
	})

	t.Run("write failure", func(t *testing.T) {
		svc, backend := setupTestService(t)
		backend.failSet = true

		_, err := svc.Create(ctx, validInput())
		var se *StorageError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "write", se.Op)
		assert.EqualError(t, errors.Unwrap(err), "quota exceeded")
	})

	t.Run("corrupt collection", func(t *testing.T) {
		svc, backend := setupTestService(t)
		require.NoError(t, backend.MemoryBackend.Set(ctx, map[string][]byte{DefaultStorageKey: []byte(`{"not":"an array"}`)}))

		_, err := svc.List(ctx)
		var se *StorageError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "decode", se.Op)
	})
}

func TestCustomStorageKey(t *testing.T) {
	backend := database.NewMemoryBackend()
	svc := NewPromptService(backend, WithStorageKey("library"), WithLogger(zap.NewNop()))
	ctx := context.Background()

	_, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	values, err := backend.Get(ctx, "library", DefaultStorageKey)
	require.NoError(t, err)
	assert.Contains(t, values, "library")
	assert.NotContains(t, values, DefaultStorageKey)
}

// Mirrors the full lifecycle of a single prompt as the popup drives it.
func TestPromptLifecycle(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, models.PromptInput{
		Name: "Greeting", Text: "Hello <b>there</b>", Tags: []string{"intro", "demo"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello bthere/b", created.Text)
	assert.NotEmpty(t, created.ID)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	_, err = svc.Update(ctx, created.ID, models.PromptInput{
		Name: "Greeting", Text: "Hello <b>there</b>", Tags: []string{"intro"},
	})
	require.NoError(t, err)

	list, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []string{"intro"}, list[0].Tags)

	require.NoError(t, svc.Delete(ctx, created.ID))
	list, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
