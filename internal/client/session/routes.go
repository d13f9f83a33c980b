package session

// Route identifies one navigable view of the client. The paths mirror the
// web client this tool replaces.
type Route string

const (
	RouteEntry    Route = "/"
	RouteUser     Route = "/user"
	RouteSubmit   Route = "/suggestions"
	RouteMine     Route = "/my-suggestions"
	RouteAdmin    Route = "/admin"
	RouteRegister Route = "/admin/register"
	RouteManage   Route = "/admin/suggestions"
	RouteDeleted  Route = "/admin/deleted-suggestions"
)

// Decision is the outcome of a route admission check.
type Decision int

const (
	// Allow renders the requested view.
	Allow Decision = iota
	// ToLogin redirects to the unauthenticated entry point.
	ToLogin
	// ToUserHome redirects an authenticated USER to their dashboard.
	ToUserHome
	// ToAdminHome redirects an authenticated ADMIN to their dashboard.
	ToAdminHome
	// NotFound renders the catch-all view regardless of auth.
	NotFound
)

// Admit applies the per-route admission policy for a resolved session
// (a nil session means unauthenticated).
func Admit(route Route, sess *Session) Decision {
	authenticated := sess.Authenticated()
	var role Role
	if sess != nil {
		role = sess.Role
	}

	switch route {
	case RouteEntry:
		if !authenticated {
			return Allow
		}
		if role == RoleAdmin {
			return ToAdminHome
		}
		return ToUserHome

	case RouteUser:
		// TODO: && binds tighter than ||, so the ADMIN branch bypasses the
		// authenticated check. Kept as-is until the intended semantics are
		// confirmed.
		if authenticated && role == RoleUser || role == RoleAdmin {
			return Allow
		}
		return ToLogin

	case RouteSubmit, RouteMine:
		if authenticated && role == RoleUser {
			return Allow
		}
		return ToLogin

	case RouteAdmin, RouteRegister, RouteManage, RouteDeleted:
		if authenticated && role == RoleAdmin {
			return Allow
		}
		return ToLogin

	default:
		return NotFound
	}
}
