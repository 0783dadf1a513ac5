package cli

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/eventplanner/internal/client/client"
	"github.com/dmitrijs2005/eventplanner/internal/common"
	pb "github.com/dmitrijs2005/eventplanner/internal/proto"
)

var errNotLoggedIn = errors.New("please log in first")

func (a *App) readCredentials() (string, []byte, error) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	return email, password, nil
}

func (a *App) Register(ctx context.Context) error {
	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.api.Register(ctx, email, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Registered. You can log in now.")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	resp, err := a.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.email = resp.Email
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	err := a.api.Logout(ctx)
	a.email = ""
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Session(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	resp, err := a.api.Session(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s (id %s)\n", resp.Email, resp.UserID)
	return nil
}

func (a *App) List(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	events, err := a.api.ListEvents(ctx)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		fmt.Fprintln(a.out, "No events yet. Use 'add' to create one.")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTITLE\tBUDGET\tATTENDEES")
	for _, e := range events {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", e.ID, e.Date, e.Title, formatCents(e.BudgetCents), e.AttendeeCount)
	}
	return w.Flush()
}

func (a *App) Add(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	req := &pb.CreateEventRequest{}
	var err error

	if req.Title, err = GetSimpleText(a.reader, "Title", a.out); err != nil {
		return err
	}
	if req.Date, err = GetSimpleText(a.reader, "Date (YYYY-MM-DD)", a.out); err != nil {
		return err
	}

	budget, err := GetSimpleText(a.reader, "Budget (e.g. 1500.00)", a.out)
	if err != nil {
		return err
	}
	if req.BudgetCents, err = parseCents(budget); err != nil {
		return err
	}

	if req.Description, err = GetSimpleText(a.reader, "Description (optional)", a.out); err != nil {
		return err
	}

	attendees, err := GetSimpleText(a.reader, "Number of attendees", a.out)
	if err != nil {
		return err
	}
	if req.AttendeeCount, err = strconv.Atoi(attendees); err != nil {
		return fmt.Errorf("attendees must be a whole number")
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	e, err := a.api.CreateEvent(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Event created, id %s\n", e.ID)
	return nil
}

func (a *App) Show(ctx context.Context, id string) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	e, err := a.api.GetEvent(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "ID:          %s\n", e.ID)
	fmt.Fprintf(a.out, "Title:       %s\n", e.Title)
	fmt.Fprintf(a.out, "Date:        %s\n", e.Date)
	fmt.Fprintf(a.out, "Budget:      %s\n", formatCents(e.BudgetCents))
	fmt.Fprintf(a.out, "Attendees:   %d\n", e.AttendeeCount)
	if e.Description != "" {
		fmt.Fprintf(a.out, "Description: %s\n", e.Description)
	}
	return nil
}

func (a *App) printError(err error) {
	var verr *common.ValidationError
	switch {
	case errors.As(err, &verr):
		fmt.Fprintln(a.out, "Please fix the following:")
		for _, f := range verr.Fields {
			fmt.Fprintf(a.out, "  %s: %s\n", f.Field, f.Message)
		}
	case errors.Is(err, client.ErrUnauthorized):
		a.email = ""
		fmt.Fprintln(a.out, "Your session is not valid, please log in again")
	default:
		fmt.Fprintln(a.out, "Error:", err)
	}
}

// parseCents turns "1500", "1500.5" or "1500.50" into cents.
func parseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("budget must be a number")
	}
	return int64(math.Round(f * 100)), nil
}

func formatCents(c int64) string {
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}
