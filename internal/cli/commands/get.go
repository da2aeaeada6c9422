package commands

import (
	"Wardrobe/internal/cli/api"
	"Wardrobe/internal/config"
	"context"
)

type getCmd struct{}

func (getCmd) Name() string {
	return "get"
}

func (getCmd) Description() string {
	return "Показать вещь по id"
}

func (getCmd) Usage() string {
	return "get <id>"
}

func (getCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseIDArg(args[0])
	if err != nil {
		return err
	}
	it, err := api.NewClient(cfg.ServerURL).Get(ctx, id)
	if err != nil {
		return err
	}
	printItem(Out, it)
	return nil
}

func init() { RegisterCmd(getCmd{}) }
