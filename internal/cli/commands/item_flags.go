package commands

import (
	"Wardrobe/internal/cli/api"
	"Wardrobe/internal/model"
	"flag"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// itemFlags: общие флаги add/edit.
type itemFlags struct {
	fs     *flag.FlagSet
	values map[string]*string
}

var itemFieldNames = []string{"name", "category", "color", "brand", "size", "season", "image-url", "notes"}

func newItemFlags(cmd string) *itemFlags {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &itemFlags{fs: fs, values: map[string]*string{}}
	for _, n := range itemFieldNames {
		f.values[n] = fs.String(n, "", n)
	}
	return f
}

// set возвращает имена флагов, явно указанных пользователем.
func (f *itemFlags) set() map[string]bool {
	out := map[string]bool{}
	f.fs.Visit(func(fl *flag.Flag) { out[fl.Name] = true })
	return out
}

// apply переносит указанные флаги в payload. Пустое значение у необязательного поля очищает его.
func (f *itemFlags) apply(p *api.ItemPayload) {
	set := f.set()
	field := func(name string) **string {
		switch name {
		case "name":
			return &p.Name
		case "category":
			return &p.Category
		case "color":
			return &p.Color
		case "brand":
			return &p.Brand
		case "size":
			return &p.Size
		case "season":
			return &p.Season
		case "image-url":
			return &p.ImageURL
		default:
			return &p.Notes
		}
	}
	for _, n := range itemFieldNames {
		if !set[n] {
			continue
		}
		v := *f.values[n]
		if v == "" && n != "name" && n != "category" {
			*field(n) = nil
			continue
		}
		*field(n) = model.StrPtr(v)
	}
}

// checkVocabulary проверяет категорию и сезон по словарю клиента.
func checkVocabulary(p api.ItemPayload) error {
	if p.Category != nil && *p.Category != "" && !slices.Contains(model.Categories, *p.Category) {
		return fmt.Errorf("unknown category %q (one of: %s)", *p.Category, strings.Join(model.Categories, ", "))
	}
	if p.Season != nil && *p.Season != "" && !slices.Contains(model.Seasons, *p.Season) {
		return fmt.Errorf("unknown season %q (one of: %s)", *p.Season, strings.Join(model.Seasons, ", "))
	}
	return nil
}

func parseIDArg(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrUsage
	}
	return id, nil
}

func printItem(w io.Writer, it *model.ClothingItem) {
	fmt.Fprintf(w, "id:        %d\n", it.ID)
	fmt.Fprintf(w, "name:      %s\n", it.Name)
	fmt.Fprintf(w, "category:  %s\n", it.Category)
	fmt.Fprintf(w, "color:     %s\n", model.StrVal(it.Color))
	fmt.Fprintf(w, "brand:     %s\n", model.StrVal(it.Brand))
	fmt.Fprintf(w, "size:      %s\n", model.StrVal(it.Size))
	fmt.Fprintf(w, "season:    %s\n", model.StrVal(it.Season))
	fmt.Fprintf(w, "image:     %s\n", model.StrVal(it.ImageURL))
	fmt.Fprintf(w, "notes:     %s\n", model.StrVal(it.Notes))
	fmt.Fprintf(w, "created:   %s\n", it.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "updated:   %s\n", it.UpdatedAt.Format("2006-01-02 15:04:05"))
}
