package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tharun-raj-u/speakout/internal/client/api"
	"github.com/Tharun-raj-u/speakout/internal/client/session"
)

// registerView runs the employee registration form once and returns to the
// admin dashboard.
func (a *App) registerView(ctx context.Context) session.Route {
	fmt.Fprintln(a.out, "Employee registration")

	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return session.RouteAdmin
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return session.RouteAdmin
	}
	password, err := getPassword(a.out)
	if err != nil {
		return session.RouteAdmin
	}
	defer wipe(password)

	department, err := getSimpleText(a.reader, "Department", a.out)
	if err != nil {
		return session.RouteAdmin
	}
	position, err := getSimpleText(a.reader, "Position", a.out)
	if err != nil {
		return session.RouteAdmin
	}
	role, err := getSimpleText(a.reader, "Role [USER/ADMIN]", a.out)
	if err != nil {
		return session.RouteAdmin
	}

	req := api.RegisterRequest{
		Name:       name,
		Email:      email,
		Password:   string(password),
		Department: department,
		Position:   position,
		Role:       strings.ToUpper(strings.TrimSpace(role)),
	}

	if err := a.auth.RegisterEmployee(ctx, req); err != nil {
		if next, redirected := a.redirectOnAuthError(ctx, err); redirected {
			return next
		}
		a.printError(err)
		return session.RouteAdmin
	}

	fmt.Fprintln(a.out, "Employee created successfully!")
	return session.RouteAdmin
}
