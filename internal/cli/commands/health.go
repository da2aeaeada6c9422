package commands

import (
	"Wardrobe/internal/cli/api"
	"Wardrobe/internal/config"
	"context"
	"fmt"
)

type healthCmd struct{}

func (healthCmd) Name() string {
	return "health"
}

func (healthCmd) Description() string {
	return "Проверить доступность сервера"
}

func (healthCmd) Usage() string {
	return "health"
}

func (healthCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	h, err := api.NewClient(cfg.ServerURL).Health(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "%s: %s\n", h.Status, h.Message)
	return nil
}

func init() { RegisterCmd(healthCmd{}) }
