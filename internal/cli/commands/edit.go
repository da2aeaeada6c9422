package commands

import (
	"Wardrobe/internal/cli/api"
	"Wardrobe/internal/config"
	"context"
	"fmt"
)

type editCmd struct{}

func (editCmd) Name() string {
	return "edit"
}

func (editCmd) Description() string {
	return "Изменить вещь: текущие значения + указанные флаги (пустое значение очищает поле)"
}

func (editCmd) Usage() string {
	return "edit <id> [-name|-category|-color|-brand|-size|-season|-image-url|-notes <V>]"
}

// Run читает вещь и отправляет её целиком: сервер перезаписывает все поля.
func (editCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	id, err := parseIDArg(args[0])
	if err != nil {
		return err
	}
	f := newItemFlags("edit")
	if err := f.fs.Parse(args[1:]); err != nil || f.fs.NArg() != 0 {
		return ErrUsage
	}
	if len(f.set()) == 0 {
		return ErrUsage
	}
	// словарь проверяем только для переданных флагов: сервер категории не ограничивает
	var changed api.ItemPayload
	f.apply(&changed)
	if err := checkVocabulary(changed); err != nil {
		return err
	}

	c := api.NewClient(cfg.ServerURL)
	cur, err := c.Get(ctx, id)
	if err != nil {
		return err
	}
	p := api.PayloadFromItem(*cur)
	f.apply(&p)
	if *p.Name == "" || *p.Category == "" {
		return fmt.Errorf("name and category must not be empty")
	}

	msg, err := c.Update(ctx, id, p)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, msg)
	return nil
}

func init() { RegisterCmd(editCmd{}) }
