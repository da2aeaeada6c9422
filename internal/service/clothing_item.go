package service

import (
	"Wardrobe/internal/events"
	"Wardrobe/internal/model"
	"Wardrobe/internal/repo"
	"context"
	"errors"

	"go.uber.org/zap"
)

var (
	// ErrValidation: при создании не передано имя или категория.
	ErrValidation = errors.New("name and category are required")
	// ErrItemNotFound: вещи с таким id нет.
	ErrItemNotFound = errors.New("item not found")
)

// ClothingItemService инкапсулирует бизнес-логику каталога вещей.
// Состояния между запросами не хранит: всё читается из репозитория.
type ClothingItemService struct {
	repo      repo.ClothingItemRepository
	publisher events.Publisher
	logger    *zap.SugaredLogger
}

// NewClothingItemService создаёт сервис. publisher может быть nil: тогда события не публикуются.
func NewClothingItemService(r repo.ClothingItemRepository, publisher events.Publisher, logger *zap.SugaredLogger) *ClothingItemService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ClothingItemService{repo: r, publisher: publisher, logger: logger}
}

// List возвращает вещи с необязательными фильтрами по категории и сезону.
// Пустой результат: пустой срез, не nil.
func (s *ClothingItemService) List(ctx context.Context, category, season string) ([]model.ClothingItem, error) {
	items, err := s.repo.FindAll(ctx, repo.ByCategoryAndSeason(category, season))
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.ClothingItem{}
	}
	return items, nil
}

// Get возвращает вещь по id.
func (s *ClothingItemService) Get(ctx context.Context, id int64) (*model.ClothingItem, error) {
	it, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}

// Create проверяет обязательные поля и сохраняет вещь.
func (s *ClothingItemService) Create(ctx context.Context, in model.ClothingItemInput) (int64, error) {
	if model.StrVal(in.Name) == "" || model.StrVal(in.Category) == "" {
		return 0, ErrValidation
	}
	id, err := s.repo.Create(ctx, in)
	if err != nil {
		return 0, err
	}
	s.publish(ctx, events.ItemCreated, id)
	return id, nil
}

// Update перезаписывает все поля вещи.
// Имя и категорию здесь не проверяем, в отличие от Create: пустая строка сохранится как есть,
// а отсутствующее поле упрётся в NOT NULL и вернётся ошибкой хранилища.
func (s *ClothingItemService) Update(ctx context.Context, id int64, in model.ClothingItemInput) error {
	err := s.repo.Update(ctx, id, in)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrItemNotFound
	}
	if err != nil {
		return err
	}
	s.publish(ctx, events.ItemUpdated, id)
	return nil
}

// Delete удаляет вещь.
func (s *ClothingItemService) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrItemNotFound
	}
	if err != nil {
		return err
	}
	s.publish(ctx, events.ItemDeleted, id)
	return nil
}

// publish отправляет событие об изменении. Изменение уже зафиксировано в БД,
// поэтому ошибка публикации только логируется.
func (s *ClothingItemService) publish(ctx context.Context, typ events.Type, id int64) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events.NewItemEvent(typ, id)); err != nil {
		s.logger.Warnw("publish item event failed", "type", typ, "id", id, "error", err)
	}
}
