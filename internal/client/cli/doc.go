// Package cli implements the interactive terminal client: a prompt loop per
// view, with every view entry gated by the session guard. Views mirror the
// routes of the web client this tool replaces: login, the employee
// dashboard with voting, submission and own-suggestion management, and the
// admin dashboard, moderation, deleted-items and registration views.
package cli
