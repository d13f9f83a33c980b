package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tharun-raj-u/speakout/internal/client/api"
	"github.com/Tharun-raj-u/speakout/internal/client/services"
	"github.com/Tharun-raj-u/speakout/internal/client/session"
)

// browseView is the employee dashboard: every suggestion, paginated, with
// vote toggling. Admins reach it too.
func (a *App) browseView(ctx context.Context, sess *session.Session) session.Route {
	store := services.NewSuggestionStore(a.client, userPageSize)
	votes := services.NewVoteCoordinator(a.client, a.device, store)
	defer store.Reset()

	if err := store.Load(ctx, 0, ""); err != nil {
		if next, redirected := a.redirectOnAuthError(ctx, err); redirected {
			return next
		}
		a.printError(err)
	}
	a.printBrowsePage(store.View())

	isUser := sess != nil && sess.Role == session.RoleUser
	isAdmin := sess != nil && sess.Role == session.RoleAdmin

	for {
		fmt.Fprint(a.out, "suggestions> ")
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return ""
		}
		cmd, arg := splitCommand(line)

		switch cmd {
		case "help":
			switch {
			case isUser:
				fmt.Fprintln(a.out, "Available commands: next, prev, page <n>, vote <n>, refresh, submit, mine, logout, exit")
			case isAdmin:
				fmt.Fprintln(a.out, "Available commands: next, prev, page <n>, vote <n>, refresh, admin, logout, exit")
			default:
				fmt.Fprintln(a.out, "Available commands: next, prev, page <n>, vote <n>, refresh, logout, exit")
			}

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
			a.printBrowsePage(store.View())

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
			a.printBrowsePage(store.View())

		case "vote":
			view := store.View()
			i, ok := parseIndex(arg, len(view.Items))
			if !ok {
				fmt.Fprintln(a.out, "Usage: vote <n>, where n is the number of a suggestion on this page")
				continue
			}
			if err := votes.Toggle(ctx, view.Items[i].ID); err != nil {
				if next, redirected := a.redirectOnAuthError(ctx, err); redirected {
					return next
				}
				a.printError(err)
				continue
			}
			a.printBrowsePage(store.View())

		case "submit":
			if isUser {
				return session.RouteSubmit
			}
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		case "mine":
			if isUser {
				return session.RouteMine
			}
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		case "admin":
			if isAdmin {
				return session.RouteAdmin
			}
			fmt.Fprintln(a.out, "Unknown command:", cmd)

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

func (a *App) printBrowsePage(view services.PageView) {
	if len(view.Items) == 0 {
		fmt.Fprintln(a.out, "No suggestions yet. Be the first to share your idea!")
	}
	for i := range view.Items {
		a.printSuggestion(i+1, &view.Items[i])
	}
	a.printPageFooter(view)
}

// redirectOnAuthError maps an unauthorized response onto the session-expiry
// policy: clear state and land on the login view, never an inline error.
func (a *App) redirectOnAuthError(ctx context.Context, err error) (session.Route, bool) {
	if errors.Is(err, api.ErrUnauthorized) {
		_ = a.guard.Logout(ctx)
		fmt.Fprintln(a.out, "Your session has expired, please log in again.")
		return session.RouteEntry, true
	}
	return "", false
}
