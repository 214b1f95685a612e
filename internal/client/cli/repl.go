package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/ratemystore/internal/client/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(args ...any) { fmt.Println(args...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	role() models.Role
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	UpdatePassword(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Users(ctx context.Context) error
	Filter(ctx context.Context, args []string) error
	Sort(ctx context.Context, args []string) error
	AddUser(ctx context.Context) error
	UserDetails(ctx context.Context, id string) error
	Stores(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the RateMyStore CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands are role-scoped: the admin screens (dashboard, users, adduser,
// user, filter) and the owner screen (stores) check the session role inside
// their handlers; sort is shared by the admin and owner tables.
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("rms> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printHelp(a)

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "passwd":
			_ = a.UpdatePassword(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "u", "users":
			_ = a.Users(ctx)

		case "adduser":
			_ = a.AddUser(ctx)

		case "user":
			if len(args) == 0 {
				printlnFn("Usage: user <id>")
				continue
			}
			_ = a.UserDetails(ctx, args[0])

		case "filter":
			_ = a.Filter(ctx, args)

		case "sort":
			_ = a.Sort(ctx, args)

		case "s", "stores":
			_ = a.Stores(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(a execIface) {
	if !a.isLoggedIn() {
		printlnFn("Available commands: login, signup, exit")
		return
	}

	switch a.role() {
	case models.RoleAdmin:
		printlnFn("Available commands: dashboard, users, user <id>, adduser, filter [clear|field=value ...], sort <key>, whoami, passwd, logout, exit")
	case models.RoleOwner:
		printlnFn("Available commands: stores, sort <storeId> <key>, whoami, passwd, logout, exit")
	case models.RoleUser:
		printlnFn("Available commands: whoami, passwd, logout, exit")
	}
}
