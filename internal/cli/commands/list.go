package commands

import (
	"Wardrobe/internal/cli/api"
	"Wardrobe/internal/config"
	"Wardrobe/internal/model"
	"context"
	"flag"
	"fmt"
	"io"
)

type listCmd struct{}

func (listCmd) Name() string {
	return "list"
}

func (listCmd) Description() string {
	return "Список вещей, новые сверху"
}

func (listCmd) Usage() string {
	return "list [-category <C>] [-season <S>]"
}

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	category := fs.String("category", "", "category")
	season := fs.String("season", "", "season")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	items, err := api.NewClient(cfg.ServerURL).List(ctx, *category, *season)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(Out, "No items")
		return nil
	}
	fmt.Fprintf(Out, "%-6s %-24s %-12s %-12s %s\n", "ID", "NAME", "CATEGORY", "SEASON", "COLOR")
	for _, it := range items {
		fmt.Fprintf(Out, "%-6d %-24s %-12s %-12s %s\n",
			it.ID, it.Name, it.Category, model.StrVal(it.Season), model.StrVal(it.Color))
	}
	return nil
}

func init() { RegisterCmd(listCmd{}) }
