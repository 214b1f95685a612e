package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/ratemystore/internal/client/models"
)

// storeValue exists to satisfy the collection; store cards themselves are
// never sorted, only the rating rows inside each card.
func storeValue(s models.Store, key string) any {
	return nil
}

// ratingValue feeds the sort engine for the per-store rating tables.
func ratingValue(r models.Rating, key string) any {
	switch key {
	case "userName":
		return r.UserName
	case "userEmail":
		return r.UserEmail
	case "rating":
		return r.Rating
	default:
		return nil
	}
}

// Stores loads and renders the owner dashboard: one card per store with
// its average rating and an independently sortable rating table.
func (a *App) Stores(ctx context.Context) error {
	if !a.requireRole(models.RoleOwner) {
		return nil
	}

	if err := a.stores.Load(ctx); err != nil {
		a.reportFetchError(err, "store ratings")
	}
	a.renderStores()
	return nil
}

// Dashboard fetches and renders the admin summary counters. On failure the
// counters fall back to zero rather than crashing the screen.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.requireRole(models.RoleAdmin) {
		return nil
	}

	summary, err := a.api.AdminDashboard(ctx)
	if err != nil {
		a.reportFetchError(err, "dashboard summary")
	}
	renderDashboard(a.out, summary)
	return nil
}

// UpdatePassword prompts for the old and new password and submits the
// change. The server message is surfaced either way.
func (a *App) UpdatePassword(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first.")
		return nil
	}

	oldPassword, err := getPassword("Enter old password", a.out)
	if err != nil {
		return err
	}
	newPassword, err := getPassword("Enter new password", a.out)
	if err != nil {
		return err
	}

	msg, err := a.session.UpdatePassword(ctx, oldPassword, newPassword)
	if err != nil {
		fmt.Fprintln(a.out, apiMessage(err, "Error updating password"))
		return err
	}
	fmt.Fprintln(a.out, msg)
	return nil
}
