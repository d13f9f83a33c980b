package cli

import (
	"context"
	"fmt"

	"github.com/Tharun-raj-u/speakout/internal/client/models"
	"github.com/Tharun-raj-u/speakout/internal/client/services"
	"github.com/Tharun-raj-u/speakout/internal/client/session"
)

// mineView lists the caller's own suggestions with their status history.
// Editing and deleting are offered only while a suggestion is still OPEN.
func (a *App) mineView(ctx context.Context) session.Route {
	owned := services.NewOwnedStore(a.client)

	if err := owned.Load(ctx); err != nil {
		if next, redirected := a.redirectOnAuthError(ctx, err); redirected {
			return next
		}
		a.printError(err)
	}
	a.printOwned(owned.Items())

	for {
		fmt.Fprint(a.out, "my-suggestions> ")
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return ""
		}
		cmd, arg := splitCommand(line)

		switch cmd {
		case "help":
			fmt.Fprintln(a.out, "Available commands: edit <n>, delete <n>, refresh, back, logout, exit")

		case "refresh":
			if err := owned.Load(ctx); err != nil {
				a.printError(err)
				continue
			}
			a.printOwned(owned.Items())

		case "edit":
			i, ok := parseIndex(arg, len(owned.Items()))
			if !ok {
				fmt.Fprintln(a.out, "Usage: edit <n>")
				continue
			}
			a.editOwned(ctx, owned, owned.Items()[i].ID)
			a.printOwned(owned.Items())

		case "delete":
			i, ok := parseIndex(arg, len(owned.Items()))
			if !ok {
				fmt.Fprintln(a.out, "Usage: delete <n>")
				continue
			}
			if err := owned.Delete(ctx, owned.Items()[i].ID); err != nil {
				if next, redirected := a.redirectOnAuthError(ctx, err); redirected {
					return next
				}
				a.printError(err)
				continue
			}
			fmt.Fprintln(a.out, "Suggestion deleted successfully.")
			a.printOwned(owned.Items())

		case "back":
			return session.RouteUser
		case "logout":
			return a.logout(ctx)
		case "exit", "quit":
			return ""
		case "":
			continue
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

// editOwned prompts for replacement title/description and applies the edit.
// The server's returned record replaces the local copy.
func (a *App) editOwned(ctx context.Context, owned *services.OwnedStore, id int64) {
	title, err := getSimpleText(a.reader, "New title", a.out)
	if err != nil {
		return
	}
	description, err := getSimpleText(a.reader, "New description", a.out)
	if err != nil {
		return
	}

	if err := owned.UpdateOwned(ctx, id, title, description); err != nil {
		a.printError(err)
		return
	}
	fmt.Fprintln(a.out, "Suggestion updated successfully.")
}

func (a *App) printOwned(items []models.Suggestion) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "You haven't added any suggestions yet.")
		return
	}
	for i := range items {
		a.printSuggestion(i+1, &items[i])
		if len(items[i].StatusHistory) > 0 {
			fmt.Fprintln(a.out, "    Status history:")
			a.printHistory(items[i].StatusHistory)
		}
	}
}
