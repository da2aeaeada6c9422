package service

import (
	"Wardrobe/internal/events"
	"Wardrobe/internal/model"
	"Wardrobe/internal/repo"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) Create(ctx context.Context, in model.ClothingItemInput) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockItemRepo) FindAll(ctx context.Context, f *repo.Filter) ([]model.ClothingItem, error) {
	args := m.Called(ctx, f)
	if v, ok := args.Get(0).([]model.ClothingItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) FindByID(ctx context.Context, id int64) (*model.ClothingItem, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.ClothingItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) Update(ctx context.Context, id int64, in model.ClothingItemInput) error {
	return m.Called(ctx, id, in).Error(0)
}
func (m *mockItemRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.ClothingItemRepository = (*mockItemRepo)(nil)

type fakePublisher struct {
	events []events.ItemEvent
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, ev events.ItemEvent) error {
	p.events = append(p.events, ev)
	return p.err
}

func newSvc(t *testing.T) (*ClothingItemService, *mockItemRepo, *fakePublisher) {
	t.Helper()
	r := &mockItemRepo{}
	p := &fakePublisher{}
	return NewClothingItemService(r, p, zap.NewNop().Sugar()), r, p
}

func TestCreate_ValidationDoesNotTouchStore(t *testing.T) {
	s, r, p := newSvc(t)
	ctx := context.Background()

	cases := []model.ClothingItemInput{
		{},
		{Name: model.StrPtr("Shirt")},
		{Category: model.StrPtr("Tops")},
		{Name: model.StrPtr(""), Category: model.StrPtr("Tops")},
		{Name: model.StrPtr("Shirt"), Category: model.StrPtr("")},
	}
	for _, in := range cases {
		id, err := s.Create(ctx, in)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Zero(t, id)
	}
	r.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Empty(t, p.events)
}

func TestCreate_WhitespaceNameIsAccepted(t *testing.T) {
	s, r, _ := newSvc(t)
	in := model.ClothingItemInput{Name: model.StrPtr(" "), Category: model.StrPtr("Tops")}
	r.On("Create", mock.Anything, in).Return(int64(3), nil).Once()

	id, err := s.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
	r.AssertExpectations(t)
}

func TestCreate_PublishesEvent(t *testing.T) {
	s, r, p := newSvc(t)
	in := model.ClothingItemInput{Name: model.StrPtr("Blue Jeans"), Category: model.StrPtr("Bottoms"), Season: model.StrPtr("Fall")}
	r.On("Create", mock.Anything, in).Return(int64(7), nil).Once()

	id, err := s.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	if assert.Len(t, p.events, 1) {
		assert.Equal(t, events.ItemCreated, p.events[0].Type)
		assert.Equal(t, int64(7), p.events[0].ID)
	}
	r.AssertExpectations(t)
}

func TestCreate_StorageErrorPropagates(t *testing.T) {
	s, r, p := newSvc(t)
	boom := &repo.StorageError{Op: "insert", Err: errors.New("database is locked")}
	r.On("Create", mock.Anything, mock.Anything).Return(int64(0), boom).Once()

	_, err := s.Create(context.Background(), model.ClothingItemInput{Name: model.StrPtr("a"), Category: model.StrPtr("b")})
	var se *repo.StorageError
	assert.ErrorAs(t, err, &se)
	assert.Empty(t, p.events, "no event without a committed change")
}

func TestUpdate_DoesNotValidate(t *testing.T) {
	s, r, p := newSvc(t)
	in := model.ClothingItemInput{Name: model.StrPtr(""), Category: model.StrPtr("")}
	r.On("Update", mock.Anything, int64(5), in).Return(nil).Once()

	require.NoError(t, s.Update(context.Background(), 5, in))
	if assert.Len(t, p.events, 1) {
		assert.Equal(t, events.ItemUpdated, p.events[0].Type)
	}
	r.AssertExpectations(t)
}

func TestUpdate_NotFound(t *testing.T) {
	s, r, p := newSvc(t)
	r.On("Update", mock.Anything, int64(9), mock.Anything).Return(repo.ErrNotFound).Once()

	err := s.Update(context.Background(), 9, model.ClothingItemInput{})
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.Empty(t, p.events)
}

func TestGet(t *testing.T) {
	s, r, _ := newSvc(t)
	r.On("FindByID", mock.Anything, int64(1)).Return(&model.ClothingItem{ID: 1, Name: "Tee"}, nil).Once()
	r.On("FindByID", mock.Anything, int64(2)).Return(nil, repo.ErrNotFound).Once()

	it, err := s.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Tee", it.Name)

	_, err = s.Get(context.Background(), 2)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestList_NilBecomesEmpty(t *testing.T) {
	s, r, _ := newSvc(t)
	r.On("FindAll", mock.Anything, mock.MatchedBy(func(f *repo.Filter) bool { return f.Empty() })).
		Return(nil, nil).Once()

	items, err := s.List(context.Background(), "", "")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestList_BuildsConjunctiveFilter(t *testing.T) {
	s, r, _ := newSvc(t)
	r.On("FindAll", mock.Anything, mock.MatchedBy(func(f *repo.Filter) bool {
		c := f.Conditions()
		return len(c) == 1 && c[0].Column == repo.ColumnSeason && c[0].Value == "Winter"
	})).Return([]model.ClothingItem{{ID: 1}}, nil).Once()

	items, err := s.List(context.Background(), "", "Winter")
	require.NoError(t, err)
	assert.Len(t, items, 1)
	r.AssertExpectations(t)
}

func TestDelete(t *testing.T) {
	s, r, p := newSvc(t)
	r.On("Delete", mock.Anything, int64(4)).Return(nil).Once()
	r.On("Delete", mock.Anything, int64(4)).Return(repo.ErrNotFound).Once()

	require.NoError(t, s.Delete(context.Background(), 4))
	assert.ErrorIs(t, s.Delete(context.Background(), 4), ErrItemNotFound)
	if assert.Len(t, p.events, 1) {
		assert.Equal(t, events.ItemDeleted, p.events[0].Type)
		assert.Equal(t, int64(4), p.events[0].ID)
	}
}

func TestPublishFailureIsNotAnError(t *testing.T) {
	s, r, p := newSvc(t)
	p.err = errors.New("broker down")
	r.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

	assert.NoError(t, s.Delete(context.Background(), 1))
}

func TestNilPublisher(t *testing.T) {
	r := &mockItemRepo{}
	s := NewClothingItemService(r, nil, nil)
	r.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

	assert.NoError(t, s.Delete(context.Background(), 1))
}
