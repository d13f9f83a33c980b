package cli

import (
	"context"
	"fmt"

	"github.com/Tharun-raj-u/speakout/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// loginView is the unauthenticated entry point. A successful login
// redirects by role, exactly like the entry route does for an already
// authenticated session.
func (a *App) loginView(ctx context.Context) session.Route {
	fmt.Fprintln(a.out, "SpeakOut: log in (type 'login', or 'exit' to quit)")

	for {
		fmt.Fprint(a.out, "speakout> ")
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return ""
		}

		switch command(line) {
		case "login":
			role, ok := a.doLogin(ctx)
			if !ok {
				continue
			}
			if role == session.RoleAdmin {
				return session.RouteAdmin
			}
			return session.RouteUser
		case "help":
			fmt.Fprintln(a.out, "Available commands: login, exit")
		case "exit", "quit":
			return ""
		case "":
			continue
		default:
			fmt.Fprintln(a.out, "Unknown command. Available commands: login, exit")
		}
	}
}

// doLogin prompts for credentials and authenticates. The password is wiped
// before returning. Failures render inline and keep the user on the login
// view.
func (a *App) doLogin(ctx context.Context) (session.Role, bool) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return "", false
	}

	password, err := getPassword(a.out)
	if err != nil {
		return "", false
	}
	defer wipe(password)

	role, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		a.log.Warn(ctx, "login failed", "error", err)
		a.printError(err)
		return "", false
	}

	fmt.Fprintln(a.out, "Login successful.")
	return role, true
}

// wipe zeroes a sensitive byte slice after use.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
