package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/ratemystore/internal/client/client"
	"github.com/dmitrijs2005/ratemystore/internal/client/models"
	"github.com/dmitrijs2005/ratemystore/internal/client/validation"
	"github.com/dmitrijs2005/ratemystore/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. On success it reports
// the role-specific landing screen; a rejected exchange surfaces the
// server's message.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	landing, err := a.session.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, err.Error())
		} else {
			fmt.Fprintln(a.out, "Login failed:", err.Error())
		}
		return err
	}

	user, _ := a.session.CurrentUser()
	fmt.Fprintf(a.out, "Logged in as %s (%s), landing: %s\n", user.Name, user.Role, landing)
	return nil
}

// Logout clears the session and returns the user to the login screen.
// It succeeds without any network call.
func (a *App) Logout(ctx context.Context) error {
	if _, err := a.session.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Logout:", err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Whoami prints the current identity.
func (a *App) Whoami(ctx context.Context) error {
	user, ok := a.session.CurrentUser()
	if !ok {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s> role=%s\n", user.Name, user.Email, user.Role)
	return nil
}

// Signup prompts for the account-creation form, validates it locally, and
// creates the account. Validation failures block submission; nothing is
// sent to the network.
func (a *App) Signup(ctx context.Context) error {
	form, role, err := a.promptAccountForm()
	if err != nil {
		return err
	}
	if !a.reportValidation(a.vld.Validate(form)) {
		return nil
	}

	err = a.api.Signup(ctx, client.SignupRequest{
		Name:     form.Name,
		Email:    form.Email,
		Address:  form.Address,
		Password: form.Password,
		Role:     role,
	})
	if err != nil {
		fmt.Fprintln(a.out, apiMessage(err, "Signup failed"))
		return err
	}

	fmt.Fprintln(a.out, "Signup successful! Please login.")
	return nil
}

// promptAccountForm collects the shared signup/add-user fields. The role
// defaults to USER when the prompt is left empty.
func (a *App) promptAccountForm() (validation.AccountForm, models.Role, error) {
	var form validation.AccountForm
	var err error

	if form.Name, err = getSimpleText(a.reader, "Full name", a.out); err != nil {
		return form, "", err
	}
	if form.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return form, "", err
	}
	if form.Address, err = getSimpleText(a.reader, "Address", a.out); err != nil {
		return form, "", err
	}
	if form.Password, err = getPassword("Password", a.out); err != nil {
		return form, "", err
	}

	raw, err := getSimpleText(a.reader, "Role (USER/OWNER/ADMIN, default USER)", a.out)
	if err != nil {
		return form, "", err
	}
	if raw == "" {
		return form, models.RoleUser, nil
	}
	role, err := models.ParseRole(raw)
	if err != nil {
		fmt.Fprintln(a.out, "Unknown role, using USER.")
		role = models.RoleUser
	}
	return form, role, nil
}

// reportValidation prints per-field errors and reports whether the form
// may be submitted.
func (a *App) reportValidation(errs map[string]string) bool {
	if len(errs) == 0 {
		return true
	}
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		fmt.Fprintf(a.out, "%s: %s\n", f, errs[f])
	}
	return false
}

// apiMessage extracts the backend's {message} from err, falling back to
// the given default.
func apiMessage(err error, fallback string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
