package cli

import (
	"context"
	"fmt"

	"github.com/Tharun-raj-u/speakout/internal/client/services"
	"github.com/Tharun-raj-u/speakout/internal/client/session"
)

// adminDashboardView renders the aggregate snapshot: KPIs, the stacked
// suggestion breakdown, status-change bars and the admin activity ranking.
// Everything is recomputed from a fresh snapshot on each render.
func (a *App) adminDashboardView(ctx context.Context) session.Route {
	a.renderDashboard(ctx)

	for {
		fmt.Fprint(a.out, "admin> ")
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return ""
		}

		switch command(line) {
		case "help":
			fmt.Fprintln(a.out, "Available commands: manage, deleted, register, browse, refresh, logout, exit")
		case "refresh":
			a.renderDashboard(ctx)
		case "manage":
			return session.RouteManage
		case "deleted":
			return session.RouteDeleted
		case "register":
			return session.RouteRegister
		case "browse":
			return session.RouteUser
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

func (a *App) renderDashboard(ctx context.Context) {
	snap, err := a.client.Dashboard(ctx)
	if err != nil {
		a.printError(err)
		return
	}

	fmt.Fprintln(a.out, "== Admin Dashboard ==")
	for _, kpi := range services.KPIs(snap) {
		fmt.Fprintf(a.out, "%-22s %s\n", kpi.Label, kpi.Value)
	}

	fmt.Fprintln(a.out, "\nSuggestion breakdown:")
	for _, part := range services.Breakdown(snap) {
		fmt.Fprintf(a.out, "%-14s %s %3.0f%% (%d)\n", part.Label, bar(part.Share), part.Share*100, part.Value)
	}

	fmt.Fprintf(a.out, "\nLast 7 days: %d suggestions, %d votes, %d status changes\n",
		snap.RecentSuggestions7Days, snap.RecentVotes7Days, snap.RecentStatusChanges7Days)

	if bars := services.StatusChangeBars(snap); len(bars) > 0 {
		fmt.Fprintln(a.out, "\nStatus change statistics:")
		for _, entry := range bars {
			fmt.Fprintf(a.out, "%-14s %s %d\n", entry.Key, bar(entry.Ratio), entry.Count)
		}
	}

	if ranking := services.AdminActivityRanking(snap); len(ranking) > 0 {
		fmt.Fprintln(a.out, "\nAdmin activity:")
		for i, pair := range ranking {
			fmt.Fprintf(a.out, "%2d. %-20s %d\n", i+1, pair.Key, pair.Count)
		}
	}
}
