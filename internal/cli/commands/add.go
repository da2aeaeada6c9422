package commands

import (
	"Wardrobe/internal/cli/api"
	"Wardrobe/internal/config"
	"context"
	"fmt"
)

type addCmd struct{}

func (addCmd) Name() string {
	return "add"
}

func (addCmd) Description() string {
	return "Добавить вещь (имя и категория обязательны)"
}

func (addCmd) Usage() string {
	return "add -name <N> -category <C> [-color|-brand|-size|-season|-image-url|-notes <V>]"
}

func (addCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	f := newItemFlags("add")
	if err := f.fs.Parse(args); err != nil || f.fs.NArg() != 0 {
		return ErrUsage
	}
	var p api.ItemPayload
	f.apply(&p)
	if p.Name == nil || *p.Name == "" || p.Category == nil || *p.Category == "" {
		return ErrUsage
	}
	if err := checkVocabulary(p); err != nil {
		return err
	}

	id, err := api.NewClient(cfg.ServerURL).Create(ctx, p)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Created:")
	fmt.Fprintf(Out, "  id:       %d\n", id)
	fmt.Fprintf(Out, "  name:     %s\n", *p.Name)
	fmt.Fprintf(Out, "  category: %s\n", *p.Category)
	return nil
}

func init() { RegisterCmd(addCmd{}) }
