package cli

import (
	"context"
	"fmt"
)

// requisitionID derives the auto-generated requisition identifier shown in
// the form. The numeric prefix is assigned server-side when a requisition
// is eventually submitted; until then it renders as a placeholder.
func requisitionID(clientName string) string {
	if clientName == "" {
		clientName = "ClientName"
	}
	return "XXX-" + clientName
}

// CreateRequisition runs the create-requisition overlay. It renders above
// the dashboard, collects the draft fields, and is dismissed without
// persisting anything: there is no submit call, the send action is not
// wired to a backend yet.
func (a *App) CreateRequisition(ctx context.Context) error {
	if !a.isAuthenticated() {
		a.msg = "Please sign in first."
		return nil
	}
	a.msg = ""
	a.view = viewCreate
	defer func() { a.view = viewDashboard }()

	fmt.Fprintln(a.out, "Create New Requisition")
	fmt.Fprintln(a.out, "Start a new demand workflow by creating a case and sending an intake form to your client")
	fmt.Fprintln(a.out, "(leave Case Name empty or type 'cancel' to dismiss)")

	caseName, err := getSimpleText(a.reader, "Case Name", a.out)
	if err != nil {
		return err
	}
	if caseName == "" || caseName == "cancel" {
		return nil
	}
	clientName, err := getSimpleText(a.reader, "Client Name", a.out)
	if err != nil {
		return err
	}
	clientEmail, err := getSimpleText(a.reader, "Client Email", a.out)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Case Name:    %s\n", caseName)
	fmt.Fprintf(a.out, "Client Name:  %s\n", clientName)
	fmt.Fprintf(a.out, "Client Email: %s (a secure intake form link would be sent here)\n", clientEmail)
	fmt.Fprintf(a.out, "Requisition ID (Auto-Generated): %s\n", requisitionID(clientName))
	a.msg = "Requisition drafts cannot be sent yet; nothing was saved."
	return nil
}
