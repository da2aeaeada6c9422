package repo

import (
	"Wardrobe/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// ClothingItemRepository: контракт хранилища вещей для слоя сервиса.
type ClothingItemRepository interface {
	// Create сохраняет новую запись и возвращает присвоенный id.
	Create(ctx context.Context, in model.ClothingItemInput) (int64, error)

	// FindAll возвращает записи, подходящие под фильтр, от новых к старым.
	FindAll(ctx context.Context, f *Filter) ([]model.ClothingItem, error)

	// FindByID возвращает запись или ErrNotFound.
	FindByID(ctx context.Context, id int64) (*model.ClothingItem, error)

	// Update перезаписывает все изменяемые поля и updated_at. ErrNotFound, если записи нет.
	Update(ctx context.Context, id int64, in model.ClothingItemInput) error

	// Delete удаляет запись. ErrNotFound, если записи нет.
	Delete(ctx context.Context, id int64) error
}

type clothingItemRepo struct {
	db *gorm.DB
}

// NewClothingItemRepository создаёт gorm-реализацию хранилища.
func NewClothingItemRepository(db *gorm.DB) ClothingItemRepository {
	return &clothingItemRepo{db: db}
}

func (r *clothingItemRepo) Create(ctx context.Context, in model.ClothingItemInput) (int64, error) {
	it := &model.ClothingItem{
		Name:     model.StrVal(in.Name),
		Category: model.StrVal(in.Category),
		Color:    in.Color,
		Brand:    in.Brand,
		Size:     in.Size,
		Season:   in.Season,
		ImageURL: in.ImageURL,
		Notes:    in.Notes,
	}
	if err := r.db.WithContext(ctx).Create(it).Error; err != nil {
		return 0, storageErr("insert", err)
	}
	return it.ID, nil
}

func (r *clothingItemRepo) FindAll(ctx context.Context, f *Filter) ([]model.ClothingItem, error) {
	var items []model.ClothingItem
	q := f.Apply(r.db.WithContext(ctx).Model(&model.ClothingItem{}))
	// при равном created_at первой идёт более поздняя вставка
	if err := q.Order("created_at DESC").Order("id DESC").Find(&items).Error; err != nil {
		return nil, storageErr("find all", err)
	}
	if items == nil {
		items = []model.ClothingItem{}
	}
	return items, nil
}

func (r *clothingItemRepo) FindByID(ctx context.Context, id int64) (*model.ClothingItem, error) {
	var it model.ClothingItem
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&it).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storageErr("find by id", err)
	}
	return &it, nil
}

func (r *clothingItemRepo) Update(ctx context.Context, id int64, in model.ClothingItemInput) error {
	// map, а не struct: gorm пропускает нулевые поля структуры, а здесь nil должен стать NULL
	updates := map[string]any{
		"name":       in.Name,
		"category":   in.Category,
		"color":      in.Color,
		"brand":      in.Brand,
		"size":       in.Size,
		"season":     in.Season,
		"image_url":  in.ImageURL,
		"notes":      in.Notes,
		"updated_at": r.now(),
	}
	tx := r.db.WithContext(ctx).Model(&model.ClothingItem{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return storageErr("update", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *clothingItemRepo) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ClothingItem{})
	if tx.Error != nil {
		return storageErr("delete", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *clothingItemRepo) now() time.Time {
	if r.db.Config != nil && r.db.NowFunc != nil {
		return r.db.NowFunc()
	}
	return time.Now().UTC()
}
