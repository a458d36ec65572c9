package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

type caseRow struct {
	ID      string
	Name    string
	Client  string
	Type    string
	State   string
	Status  string
	Updated string
}

// activeCases is the static dataset backing the dashboard. Live case data
// comes from a separate case service that is not part of the auth flows.
var activeCases = []caseRow{
	{"001-Johnson", "Johnson v. State Farm", "Sarah Johnson", "Motor Vehicle", "Texas", "In Progress", "2025-10-20"},
	{"002-Martinez", "Martinez v. Allstate", "Carlos Martinez", "Motor Vehicle", "Texas", "Draft Ready", "2025-10-19"},
	{"003-Williams", "Williams v. Progressive", "Emily Williams", "Motor Vehicle", "Texas", "Awaiting Client", "2025-10-18"},
}

var statusColors = map[string]*color.Color{
	"In Progress":     color.New(color.FgYellow),
	"Draft Ready":     color.New(color.FgGreen),
	"Awaiting Client": color.New(color.FgCyan),
}

// filterCases narrows rows by a case-insensitive substring query over the
// ID, case name and client name, and by an exact status.
func filterCases(rows []caseRow, query, status string) []caseRow {
	q := strings.ToLower(query)
	out := make([]caseRow, 0, len(rows))
	for _, r := range rows {
		if status != "" && !strings.EqualFold(r.Status, status) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(r.ID), q) &&
			!strings.Contains(strings.ToLower(r.Name), q) &&
			!strings.Contains(strings.ToLower(r.Client), q) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// parseCaseArgs interprets the arguments of the cases command:
// "cases -status <status words>" filters by status, anything else is a
// search query.
func parseCaseArgs(args []string) (query, status string) {
	if len(args) == 0 {
		return "", ""
	}
	if args[0] == "-status" {
		return "", strings.Join(args[1:], " ")
	}
	return strings.Join(args, " "), ""
}

// Dashboard renders the cases dashboard. Only available while
// authenticated.
func (a *App) Dashboard(args []string) {
	if !a.isAuthenticated() {
		a.msg = "Please sign in first."
		return
	}
	a.msg = ""
	query, status := parseCaseArgs(args)
	a.renderDashboard(a.out, query, status)
}

func (a *App) renderDashboard(w io.Writer, query, status string) {
	bold := color.New(color.Bold)

	fmt.Fprintln(w, bold.Sprint("Cases Dashboard"))
	fmt.Fprintln(w, "Manage and track all your demand letter cases")
	if a.user != nil {
		fmt.Fprintf(w, "Signed in as %s\n", a.user.FullName())
	}
	fmt.Fprintln(w)

	rows := filterCases(activeCases, query, status)
	if len(rows) == 0 {
		fmt.Fprintln(w, "No cases match.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "REQUISITION ID\tCASE NAME\tCLIENT NAME\tCASE TYPE\tSTATE\tSTATUS\tLAST UPDATED")
	for _, r := range rows {
		st := r.Status
		if c, ok := statusColors[r.Status]; ok {
			st = c.Sprint(r.Status)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Name, r.Client, r.Type, r.State, st, r.Updated)
	}
	tw.Flush()
}
