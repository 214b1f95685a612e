package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/ratemystore/internal/client/models"
)

type fakeExec struct {
	loggedIn bool
	userRole models.Role

	calls []string
	arg   string
}

func (f *fakeExec) isLoggedIn() bool  { return f.loggedIn }
func (f *fakeExec) role() models.Role { return f.userRole }
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Signup(ctx context.Context) error {
	f.calls = append(f.calls, "signup")
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Whoami(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) UpdatePassword(ctx context.Context) error {
	f.calls = append(f.calls, "passwd")
	return nil
}
func (f *fakeExec) Dashboard(ctx context.Context) error {
	f.calls = append(f.calls, "dashboard")
	return nil
}
func (f *fakeExec) Users(ctx context.Context) error {
	f.calls = append(f.calls, "users")
	return nil
}
func (f *fakeExec) Filter(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "filter "+strings.Join(args, " "))
	return nil
}
func (f *fakeExec) Sort(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "sort "+strings.Join(args, " "))
	return nil
}
func (f *fakeExec) AddUser(ctx context.Context) error {
	f.calls = append(f.calls, "adduser")
	return nil
}
func (f *fakeExec) UserDetails(ctx context.Context, id string) error {
	f.calls = append(f.calls, "user")
	f.arg = id
	return nil
}
func (f *fakeExec) Stores(ctx context.Context) error {
	f.calls = append(f.calls, "stores")
	return nil
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	orig := printlnFn
	printlnFn = func(...any) {}
	t.Cleanup(func() { printlnFn = orig })

	input := strings.Join([]string{
		"help",
		"login",
		"dashboard",
		"users",
		"filter role=owner",
		"sort name",
		"user 42",
		"adduser",
		"stores",
		"whoami",
		"passwd",
		"foobar",
		"logout",
		"exit",
	}, "\n")

	f := &fakeExec{userRole: models.RoleAdmin}
	runREPL(context.Background(), f, func() string { return "" }, bufio.NewScanner(strings.NewReader(input)))

	require.Equal(t, []string{
		"login", "dashboard", "users", "filter role=owner", "sort name",
		"user", "adduser", "stores", "whoami", "passwd", "logout",
	}, f.calls)
	require.Equal(t, "42", f.arg)
}

func TestRunREPL_UserWithoutArgPrintsUsage(t *testing.T) {
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) {
		for _, a := range args {
			if s, ok := a.(string); ok {
				lines = append(lines, s)
			}
		}
	}
	t.Cleanup(func() { printlnFn = orig })

	f := &fakeExec{loggedIn: true, userRole: models.RoleAdmin}
	runREPL(context.Background(), f, func() string { return "" },
		bufio.NewScanner(strings.NewReader("user\nexit\n")))

	require.Contains(t, lines, "Usage: user <id>")
	require.NotContains(t, f.calls, "user")
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	orig := printlnFn
	printlnFn = func(...any) {}
	t.Cleanup(func() { printlnFn = orig })

	f := &fakeExec{}
	runREPL(context.Background(), f, func() string { return "" },
		bufio.NewScanner(strings.NewReader("whoami\n")))

	require.Equal(t, []string{"whoami"}, f.calls)
}

func TestPrintHelp_RoleScoped(t *testing.T) {
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) {
		for _, a := range args {
			if s, ok := a.(string); ok {
				lines = append(lines, s)
			}
		}
	}
	t.Cleanup(func() { printlnFn = orig })

	printHelp(&fakeExec{})
	printHelp(&fakeExec{loggedIn: true, userRole: models.RoleAdmin})
	printHelp(&fakeExec{loggedIn: true, userRole: models.RoleOwner})
	printHelp(&fakeExec{loggedIn: true, userRole: models.RoleUser})

	require.Len(t, lines, 4)
	require.Contains(t, lines[0], "login, signup")
	require.Contains(t, lines[1], "dashboard")
	require.Contains(t, lines[2], "stores")
	require.NotContains(t, lines[3], "dashboard")
}
