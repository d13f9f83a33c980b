package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Tharun-raj-u/speakout/internal/client/api"
	"github.com/Tharun-raj-u/speakout/internal/client/models"
	"github.com/Tharun-raj-u/speakout/internal/client/services"
)

const barWidth = 30

func formatDate(t time.Time) string {
	return t.Format("Mon, Jan 2 2006 15:04")
}

// printSuggestion renders one suggestion as a numbered card line. n is the
// 1-based position on the current page.
func (a *App) printSuggestion(n int, s *models.Suggestion) {
	fmt.Fprintf(a.out, "%2d. [%s] %s\n", n, s.Status, s.Title)
	fmt.Fprintf(a.out, "    %s\n", s.Description)
	fmt.Fprintf(a.out, "    by %s | votes %d | %s\n", s.Submitter(), s.VoteCount, formatDate(s.CreatedAt))
}

// printHistory renders a suggestion's status timeline in stored order.
func (a *App) printHistory(entries []models.StatusHistoryEntry) {
	for _, h := range entries {
		from := string(h.PreviousStatus)
		if from == "" {
			from = "Initial"
		}
		line := fmt.Sprintf("    %s -> %s by %s", from, h.NewStatus, h.ChangedBy)
		if h.ChangeReason != "" {
			line += " (" + h.ChangeReason + ")"
		}
		fmt.Fprintf(a.out, "%s | %s\n", line, formatDate(h.CreatedAt))
	}
}

// printPageFooter renders the "Page X of Y" line for a page view.
func (a *App) printPageFooter(view services.PageView) {
	total := view.TotalPages
	if total < 1 {
		total = 1
	}
	fmt.Fprintf(a.out, "Page %d of %d\n", view.PageIndex+1, total)
}

// bar renders a horizontal bar proportional to ratio in [0, 1].
func bar(ratio float64) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	n := int(ratio * barWidth)
	return strings.Repeat("#", n) + strings.Repeat(".", barWidth-n)
}

// printError surfaces an operation failure inline. Validation problems and
// refused requests render as plain messages; everything else keeps its
// wrapped detail.
func (a *App) printError(err error) {
	var validation *services.ValidationError
	var request *api.RequestError
	var toggle *services.ToggleError

	switch {
	case errors.As(err, &validation):
		fmt.Fprintf(a.out, "Invalid input: %s.\n", validation.Error())
	case errors.As(err, &request):
		fmt.Fprintf(a.out, "The server refused the request: %s.\n", request.Error())
	case errors.As(err, &toggle):
		fmt.Fprintf(a.out, "Vote failed: %s.\n", toggle.Error())
	case errors.Is(err, api.ErrUnavailable):
		fmt.Fprintln(a.out, "Server not reachable.")
	default:
		fmt.Fprintf(a.out, "Error: %v\n", err)
	}
}
