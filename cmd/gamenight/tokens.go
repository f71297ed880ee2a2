package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gravina/gamenight/internal/adapters/tokens"
	service "github.com/gravina/gamenight/internal/app"
)

func cmdTokens(ctx context.Context, svc *service.Service, args []string) int {
	if len(args) == 0 {
		os.Stderr.WriteString("usage: gamenight tokens <add|list|remove> [names or tokens...]\n")
		return 1
	}
	switch args[0] {
	case "add":
		return cmdTokensAdd(ctx, svc, args[1:])
	case "list":
		return cmdTokensList(ctx, svc)
	case "remove":
		return cmdTokensRemove(ctx, svc, args[1:])
	default:
		os.Stderr.WriteString("unknown tokens command: " + args[0] + "\n")
		return 1
	}
}

func cmdTokensAdd(ctx context.Context, svc *service.Service, names []string) int {
	if len(names) == 0 {
		os.Stderr.WriteString("usage: gamenight tokens add <name> [name...]\n")
		return 1
	}
	created, existing, err := svc.AddTokens(ctx, names)
	if err != nil {
		if errors.Is(err, tokens.ErrNoTokens) {
			os.Stderr.WriteString("All provided names already have tokens.\n")
			printTokenMap(existing)
			return 0
		}
		os.Stderr.WriteString("tokens add failed: " + err.Error() + "\n")
		return 1
	}
	if len(created) > 0 {
		fmt.Println("Created:")
		printTokenMap(created)
	}
	if len(existing) > 0 {
		fmt.Println("Already present:")
		printTokenMap(existing)
	}
	return 0
}

func cmdTokensList(ctx context.Context, svc *service.Service) int {
	all, err := svc.ListTokens(ctx)
	if err != nil {
		os.Stderr.WriteString("tokens list failed: " + err.Error() + "\n")
		return 1
	}
	if len(all) == 0 {
		fmt.Println("No guest tokens issued.")
		return 0
	}
	printTokenMap(all)
	return 0
}

func cmdTokensRemove(ctx context.Context, svc *service.Service, values []string) int {
	if len(values) == 0 {
		os.Stderr.WriteString("usage: gamenight tokens remove <token> [token...]\n")
		return 1
	}
	removed, missing, err := svc.RemoveTokens(ctx, values)
	if err != nil {
		if errors.Is(err, tokens.ErrNoTokens) {
			fmt.Println("Not found: " + strings.Join(missing, ", "))
			return 0
		}
		os.Stderr.WriteString("tokens remove failed: " + err.Error() + "\n")
		return 1
	}
	if len(removed) > 0 {
		fmt.Println("Removed:")
		printTokenMap(removed)
	}
	if len(missing) > 0 {
		fmt.Println("Not found: " + strings.Join(missing, ", "))
	}
	return 0
}

func printTokenMap(m map[string]string) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %s\n", name, m[name])
	}
}
