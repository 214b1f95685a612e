package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/ratemystore/internal/client/client"
	"github.com/dmitrijs2005/ratemystore/internal/client/models"
	"github.com/dmitrijs2005/ratemystore/internal/common"
)

var userSortKeys = map[string]struct{}{
	"name": {}, "email": {}, "address": {}, "role": {},
}

// userValue feeds the sort engine for the admin user table.
func userValue(u models.User, key string) any {
	switch key {
	case "name":
		return u.Name
	case "email":
		return u.Email
	case "address":
		return u.Address
	case "role":
		return string(u.Role)
	default:
		return nil
	}
}

func (a *App) requireRole(role models.Role) bool {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first.")
		return false
	}
	if a.role() != role {
		fmt.Fprintf(a.out, "This screen is available to %s accounts only.\n", role)
		return false
	}
	return true
}

// reportFetchError prints a fetch failure. Expired tokens are only
// discovered here, when a protected call is rejected.
func (a *App) reportFetchError(err error, what string) {
	if errors.Is(err, common.ErrorUnauthorized) {
		fmt.Fprintln(a.out, "Session expired or unauthorized, please login again.")
		return
	}
	fmt.Fprintf(a.out, "Failed to fetch %s.\n", what)
}

// Users loads and renders the admin user directory with the current
// filters and sort state.
func (a *App) Users(ctx context.Context) error {
	if !a.requireRole(models.RoleAdmin) {
		return nil
	}

	if err := a.users.Load(ctx); err != nil {
		a.reportFetchError(err, "users")
	}
	a.renderUsers()
	return nil
}

// Filter updates the user directory filters and re-fetches. Arguments are
// either "clear" or field=value pairs for name, email, address and role.
func (a *App) Filter(ctx context.Context, args []string) error {
	if !a.requireRole(models.RoleAdmin) {
		return nil
	}

	filters := a.users.Filters()
	if len(args) == 1 && args[0] == "clear" {
		filters.Clear()
	} else if len(args) > 0 {
		for _, arg := range args {
			name, value, ok := strings.Cut(arg, "=")
			if !ok {
				fmt.Fprintln(a.out, "Usage: filter clear | filter field=value ... (fields: name, email, address, role)")
				return nil
			}
			filters.Set(name, value)
		}
	}

	if err := a.users.Load(ctx); err != nil {
		a.reportFetchError(err, "users")
	}
	a.renderUsers()
	return nil
}

// Sort toggles a sort column. The admin user table takes a single key;
// the owner dashboard scopes the toggle to one store card. Sorting is
// purely client-side, so no re-fetch happens.
func (a *App) Sort(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first.")
		return nil
	}

	switch a.role() {
	case models.RoleAdmin:
		if len(args) != 1 {
			fmt.Fprintln(a.out, "Usage: sort <name|email|address|role>")
			return nil
		}
		key := args[0]
		if _, ok := userSortKeys[key]; !ok {
			fmt.Fprintln(a.out, "Usage: sort <name|email|address|role>")
			return nil
		}
		a.users.Toggle(usersGroup, key)
		a.renderUsers()

	case models.RoleOwner:
		if len(args) != 2 {
			fmt.Fprintln(a.out, "Usage: sort <storeId> <userName|userEmail|rating>")
			return nil
		}
		a.stores.Sorts().Toggle(args[0], args[1])
		a.renderStores()

	case models.RoleUser:
		fmt.Fprintln(a.out, "Nothing to sort here.")
	}
	return nil
}

// AddUser collects the new-user form, validates it locally, creates the
// account via the admin endpoint, and refreshes the directory. Validation
// failures block submission with no network call.
func (a *App) AddUser(ctx context.Context) error {
	if !a.requireRole(models.RoleAdmin) {
		return nil
	}

	form, role, err := a.promptAccountForm()
	if err != nil {
		return err
	}
	if !a.reportValidation(a.vld.Validate(form)) {
		return nil
	}

	err = a.api.CreateUser(ctx, client.SignupRequest{
		Name:     form.Name,
		Email:    form.Email,
		Address:  form.Address,
		Password: form.Password,
		Role:     role,
	})
	if err != nil {
		fmt.Fprintln(a.out, apiMessage(err, "Failed to add user"))
		return err
	}

	fmt.Fprintln(a.out, "User added successfully!")
	if err := a.users.Load(ctx); err != nil {
		a.reportFetchError(err, "users")
	}
	a.renderUsers()
	return nil
}

// UserDetails fetches and renders a single account, including the derived
// rating for store owners.
func (a *App) UserDetails(ctx context.Context, id string) error {
	if !a.requireRole(models.RoleAdmin) {
		return nil
	}

	user, err := a.api.GetUser(ctx, id)
	if err != nil {
		a.reportFetchError(err, "user details")
		return err
	}
	renderUserDetails(a.out, user)
	return nil
}
