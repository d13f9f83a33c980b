package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tharun-raj-u/speakout/internal/client/services"
	"github.com/Tharun-raj-u/speakout/internal/client/session"
)

// submitView runs the suggestion form once and returns to the employee
// dashboard, mirroring the web client's redirect after submission.
func (a *App) submitView(ctx context.Context) session.Route {
	fmt.Fprintln(a.out, "Submit a suggestion")

	owned := services.NewOwnedStore(a.client)

	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return session.RouteUser
	}
	description, err := getSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return session.RouteUser
	}
	anonymousAnswer, err := getSimpleText(a.reader, "Submit anonymously? [y/N]", a.out)
	if err != nil {
		return session.RouteUser
	}
	anonymous := strings.EqualFold(anonymousAnswer, "y") || strings.EqualFold(anonymousAnswer, "yes")

	if err := owned.Submit(ctx, title, description, anonymous); err != nil {
		if next, redirected := a.redirectOnAuthError(ctx, err); redirected {
			return next
		}
		a.printError(err)
		return session.RouteUser
	}

	fmt.Fprintln(a.out, "Suggestion submitted successfully!")
	return session.RouteUser
}
