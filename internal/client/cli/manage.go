package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tharun-raj-u/speakout/internal/client/models"
	"github.com/Tharun-raj-u/speakout/internal/client/services"
	"github.com/Tharun-raj-u/speakout/internal/client/session"
)

// manageView is the admin moderation view: a filterable, paginated list
// with status changes and soft deletes.
func (a *App) manageView(ctx context.Context) session.Route {
	store := services.NewSuggestionStore(a.client, adminPageSize)
	confirm := func(prompt string) bool {
		return GetConfirm(a.reader, prompt, a.out)
	}
	moderation := services.NewModerationController(a.client, store, confirm)
	defer store.Reset()

	if err := store.Load(ctx, 0, ""); err != nil {
		if next, redirected := a.redirectOnAuthError(ctx, err); redirected {
			return next
		}
		a.printError(err)
	}
	a.printManagePage(store.View())

	for {
		fmt.Fprint(a.out, "manage> ")
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return ""
		}
		cmd, arg := splitCommand(line)

		switch cmd {
		case "help":
			fmt.Fprintln(a.out, "Available commands: filter <status|all>, next, prev, page <n>, status <n>, delete <n>, refresh, back, logout, exit")
			fmt.Fprintln(a.out, "Statuses:", statusList())

		case "filter":
			filter, ok := parseFilter(arg)
			if !ok {
				fmt.Fprintln(a.out, "Usage: filter <status|all>. Statuses:", statusList())
				continue
			}
			if err := store.SetFilter(ctx, filter); err != nil {
				a.printError(err)
				continue
			}
			a.printManagePage(store.View())

		case "next", "prev", "refresh":
			nav := store.Reload
			switch cmd {
			case "next":
				nav = store.Next
			case "prev":
				nav = store.Prev
			}
			if err := nav(ctx); err != nil {
				a.printError(err)
				continue
			}
			a.printManagePage(store.View())

		case "page":
			view := store.View()
			n, ok := parseIndex(arg, view.TotalPages)
			if !ok {
				fmt.Fprintln(a.out, "Usage: page <n>")
				continue
			}
			if err := store.Load(ctx, n, view.Filter); err != nil {
				a.printError(err)
				continue
			}
			a.printManagePage(store.View())

		case "status":
			view := store.View()
			i, ok := parseIndex(arg, len(view.Items))
			if !ok {
				fmt.Fprintln(a.out, "Usage: status <n>")
				continue
			}
			if next, redirected := a.changeStatus(ctx, moderation, view.Items[i].ID); redirected {
				return next
			}
			a.printManagePage(store.View())

		case "delete":
			view := store.View()
			i, ok := parseIndex(arg, len(view.Items))
			if !ok {
				fmt.Fprintln(a.out, "Usage: delete <n>")
				continue
			}
			if err := moderation.SoftDelete(ctx, view.Items[i].ID); err != nil {
				if next, redirected := a.redirectOnAuthError(ctx, err); redirected {
					return next
				}
				a.printError(err)
				continue
			}
			a.printManagePage(store.View())

		case "back":
			return session.RouteAdmin
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

// changeStatus prompts for the new status and an optional reason, then
// applies the change. Selecting nothing fails validation before any call
// goes out.
func (a *App) changeStatus(ctx context.Context, moderation *services.ModerationController, id int64) (session.Route, bool) {
	raw, err := getSimpleText(a.reader, "New status ("+statusList()+")", a.out)
	if err != nil {
		return "", false
	}
	reason, err := getSimpleText(a.reader, "Reason (optional)", a.out)
	if err != nil {
		return "", false
	}

	if err := moderation.ChangeStatus(ctx, id, models.Status(strings.ToUpper(raw)), reason); err != nil {
		if next, redirected := a.redirectOnAuthError(ctx, err); redirected {
			return next, true
		}
		a.printError(err)
		return "", false
	}
	fmt.Fprintln(a.out, "Status updated.")
	return "", false
}

func (a *App) printManagePage(view services.PageView) {
	if view.Filter != "" {
		fmt.Fprintf(a.out, "Filter: %s\n", view.Filter)
	}
	if len(view.Items) == 0 {
		fmt.Fprintln(a.out, "No suggestions found.")
	}
	for i := range view.Items {
		a.printSuggestion(i+1, &view.Items[i])
	}
	a.printPageFooter(view)
}

// parseFilter maps a filter argument onto a status, with "all" (or "")
// clearing the filter.
func parseFilter(arg string) (models.Status, bool) {
	raw := strings.ToUpper(strings.TrimSpace(arg))
	if raw == "" || raw == "ALL" {
		return "", true
	}
	status, err := models.ParseStatus(raw)
	if err != nil {
		return "", false
	}
	return status, true
}

func statusList() string {
	names := make([]string, 0, len(models.AllStatuses))
	for _, s := range models.AllStatuses {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
