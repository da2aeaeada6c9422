package repo

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Колонки, по которым разрешена фильтрация списка.
const (
	ColumnCategory = "category"
	ColumnSeason   = "season"
)

// Condition: одно условие равенства column = value.
type Condition struct {
	Column string
	Value  string
}

// Filter: упорядоченный набор условий, объединяемых через AND.
// Пустое значение условие не добавляет, поэтому пустой Filter ничего не ограничивает.
type Filter struct {
	conds []Condition
}

// NewFilter создаёт пустой фильтр.
func NewFilter() *Filter { return &Filter{} }

// Eq добавляет условие column = value, если value не пустое.
func (f *Filter) Eq(column, value string) *Filter {
	if value == "" {
		return f
	}
	f.conds = append(f.conds, Condition{Column: column, Value: value})
	return f
}

// Conditions возвращает копию условий в порядке добавления.
func (f *Filter) Conditions() []Condition {
	if f == nil {
		return nil
	}
	out := make([]Condition, len(f.conds))
	copy(out, f.conds)
	return out
}

// Empty: нет ни одного условия.
func (f *Filter) Empty() bool { return f == nil || len(f.conds) == 0 }

// Apply компилирует условия в один WHERE (точное, регистрозависимое равенство).
func (f *Filter) Apply(db *gorm.DB) *gorm.DB {
	if f.Empty() {
		return db
	}
	exprs := make([]clause.Expression, 0, len(f.conds))
	for _, c := range f.conds {
		exprs = append(exprs, clause.Eq{Column: clause.Column{Name: c.Column}, Value: c.Value})
	}
	return db.Clauses(clause.Where{Exprs: exprs})
}

// ByCategoryAndSeason: фильтр списка вещей по двум необязательным параметрам.
func ByCategoryAndSeason(category, season string) *Filter {
	return NewFilter().Eq(ColumnCategory, category).Eq(ColumnSeason, season)
}
