package cli

import (
	"context"
	"fmt"

	"github.com/Tharun-raj-u/speakout/internal/client/models"
	"github.com/Tharun-raj-u/speakout/internal/client/services"
	"github.com/Tharun-raj-u/speakout/internal/client/session"
)

// deletedView shows the soft-deleted collection with its audit trail and
// offers the irreversible clear-all.
func (a *App) deletedView(ctx context.Context) session.Route {
	confirm := func(prompt string) bool {
		return GetConfirm(a.reader, prompt, a.out)
	}
	moderation := services.NewModerationController(a.client, nil, confirm)

	if err := moderation.LoadDeleted(ctx); err != nil {
		if next, redirected := a.redirectOnAuthError(ctx, err); redirected {
			return next
		}
		a.printError(err)
	}
	a.printDeleted(moderation.Deleted())

	for {
		fmt.Fprint(a.out, "deleted> ")
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return ""
		}

		switch command(line) {
		case "help":
			fmt.Fprintln(a.out, "Available commands: clearall, refresh, back, logout, exit")

		case "refresh":
			if err := moderation.LoadDeleted(ctx); err != nil {
				a.printError(err)
				continue
			}
			a.printDeleted(moderation.Deleted())

		case "clearall":
			if err := moderation.HardDeleteAll(ctx); err != nil {
				if next, redirected := a.redirectOnAuthError(ctx, err); redirected {
					return next
				}
				a.printError(err)
				continue
			}
			a.printDeleted(moderation.Deleted())

		case "back":
			return session.RouteAdmin
		case "logout":
			return a.logout(ctx)
		case "exit", "quit":
			return ""
		case "":
			continue
		default:
			fmt.Fprintln(a.out, "Unknown command:", command(line))
		}
	}
}

func (a *App) printDeleted(items []models.DeletedSuggestion) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No deleted suggestions found. All clear!")
		return
	}
	for i := range items {
		item := &items[i]
		fmt.Fprintf(a.out, "%2d. #%d [%s] %s\n", i+1, item.ID, item.Status, item.Title)
		fmt.Fprintf(a.out, "    %s\n", item.Description)
		fmt.Fprintf(a.out, "    by %s | votes %d | created %s | deleted %s\n",
			item.Submitter(), item.VoteCount, formatDate(item.CreatedAt), formatDate(item.DeletedAt))
		if len(item.StatusHistory) > 0 {
			fmt.Fprintln(a.out, "    Status history:")
			a.printHistory(item.StatusHistory)
		}
		if len(item.Votes) > 0 {
			fmt.Fprintf(a.out, "    Votes (%d):\n", len(item.Votes))
			for _, vote := range item.Votes {
				fmt.Fprintf(a.out, "      %s | %s\n", vote.DeviceIdentifier, formatDate(vote.CreatedAt))
			}
		}
	}
}
