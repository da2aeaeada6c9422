package commands

import (
	"Wardrobe/internal/cli/api"
	"Wardrobe/internal/config"
	"context"
	"errors"
	"fmt"
	"strings"
)

// Коды завершения клиента.
const (
	ExitOK       = 0
	ExitError    = 1
	ExitUsage    = 2
	ExitNotFound = 3
)

// Dispatch выполняет команду из args (args[0] это имя команды, дальше её аргументы)
// и возвращает код завершения процесса.
// Флаги после имени команды принадлежат команде: -h там разбирает сама команда.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}

	name := strings.ToLower(args[0])
	switch name {
	case "-h", "-help", "--help":
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitOK
	case "help": // wardrobe help [command]
		return help(args[1:])
	}

	c, ok := Get(name)
	if !ok {
		unknown(name)
		return ExitUsage
	}
	return report(c, c.Run(ctx, cfg, args[1:]))
}

func help(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitOK
	}
	c, ok := Get(args[0])
	if !ok {
		unknown(args[0])
		return ExitUsage
	}
	fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
	return ExitOK
}

func unknown(name string) {
	fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
	fmt.Fprint(Out, FormatGlobalUsage())
}

// report печатает результат команды и подбирает код завершения.
func report(c Command, err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return ExitUsage
	case errors.Is(err, api.ErrNotFound):
		fmt.Fprintln(Out, "Item not found")
		return ExitNotFound
	default:
		fmt.Fprintf(Out, "%s error: %v\n", c.Name(), err)
		return ExitError
	}
}
