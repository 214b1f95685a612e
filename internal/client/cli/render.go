package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/ratemystore/internal/client/models"
	"github.com/dmitrijs2005/ratemystore/internal/client/view"
)

// sortMarker decorates a column header with the group's sort direction.
func sortMarker(e *view.Engine, group, key string) string {
	st, ok := e.State(group)
	if !ok || st.Key != key {
		return ""
	}
	if st.Direction == view.Descending {
		return " (desc)"
	}
	return " (asc)"
}

func (a *App) renderUsers() {
	rows := a.users.Rows(usersGroup)
	if len(rows) == 0 {
		fmt.Fprintln(a.out, "No users found")
		return
	}

	e := a.users.Sorts()
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "#\tName%s\tEmail%s\tAddress%s\tRole%s\n",
		sortMarker(e, usersGroup, "name"),
		sortMarker(e, usersGroup, "email"),
		sortMarker(e, usersGroup, "address"),
		sortMarker(e, usersGroup, "role"),
	)
	for i, u := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i+1, u.Name, u.Email, u.Address, u.Role)
	}
	tw.Flush()
}

func (a *App) renderStores() {
	stores := a.stores.Rows("")
	if len(stores) == 0 {
		fmt.Fprintln(a.out, "You haven't added any stores yet.")
		return
	}

	e := a.stores.Sorts()
	for _, store := range stores {
		fmt.Fprintf(a.out, "%s [%s]  avg %s\n", store.Name, store.ID, store.AverageDisplay())

		if len(store.Ratings) == 0 {
			fmt.Fprintln(a.out, "  No ratings yet for this store.")
			continue
		}

		tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "  User Name%s\tEmail%s\tRating%s\n",
			sortMarker(e, store.ID, "userName"),
			sortMarker(e, store.ID, "userEmail"),
			sortMarker(e, store.ID, "rating"),
		)
		for _, r := range view.Apply(e, store.ID, store.Ratings, ratingValue) {
			fmt.Fprintf(tw, "  %s\t%s\t%d\n", r.UserName, r.UserEmail, r.Rating)
		}
		tw.Flush()
	}
}

func renderDashboard(w io.Writer, s models.DashboardSummary) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Total Users\t%d\n", s.Users.Total)
	fmt.Fprintf(tw, "Total Stores\t%d\n", s.Stores)
	fmt.Fprintf(tw, "Total Ratings\t%d\n", s.Ratings.Total)
	tw.Flush()
}

func renderUserDetails(w io.Writer, u models.User) {
	fmt.Fprintf(w, "Name:    %s\n", u.Name)
	fmt.Fprintf(w, "Email:   %s\n", u.Email)
	fmt.Fprintf(w, "Address: %s\n", u.Address)
	fmt.Fprintf(w, "Role:    %s\n", u.Role)
	if u.Role == models.RoleOwner && u.Rating != nil {
		fmt.Fprintf(w, "Average Rating: %.2f\n", *u.Rating)
	}
}
