package commands

import (
	"Wardrobe/internal/cli/api"
	"Wardrobe/internal/config"
	"context"
	"fmt"
)

type deleteCmd struct{}

func (deleteCmd) Name() string {
	return "delete"
}

func (deleteCmd) Description() string {
	return "Удалить вещь"
}

func (deleteCmd) Usage() string {
	return "delete <id>"
}

func (deleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseIDArg(args[0])
	if err != nil {
		return err
	}
	msg, err := api.NewClient(cfg.ServerURL).Delete(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, msg)
	return nil
}

func init() { RegisterCmd(deleteCmd{}) }
