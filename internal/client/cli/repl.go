package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight
// stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	ShowCustomers(ctx context.Context) error
	GoToPage(ctx context.Context, args []string) error
	NextPage(ctx context.Context) error
	PrevPage(ctx context.Context) error
	SetPageSize(ctx context.Context, args []string) error
	AddCustomer(ctx context.Context) error
	EditCustomer(ctx context.Context, args []string) error
	DeleteCustomer(ctx context.Context, args []string) error
	Refresh(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the custdesk CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           - show available commands
//	  - signup         - create an account
//	  - login          - authenticate
//	  - exit | quit    - leave the program
//
//	Logged in:
//	  - help           - show available commands
//	  - list           - show the customer table
//	  - page <n>       - jump to page n
//	  - next | prev    - step one page
//	  - size <n>       - change the page size (resets to page 1)
//	  - add            - create a customer
//	  - edit <id>      - edit a customer on the current page
//	  - delete <id>    - delete a customer
//	  - refresh        - refetch the current page
//	  - logout         - log out
//	  - exit | quit    - leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, w io.Writer) {
	for {
		fmt.Fprintf(w, "custdesk %s> ", statusFn())
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
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: (l)ist, page <n>, next, prev, size <n>, add, edit <id>, delete <id>, refresh, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: signup, login, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "l", "list":
			_ = a.ShowCustomers(ctx)

		case "page":
			_ = a.GoToPage(ctx, args)

		case "next":
			_ = a.NextPage(ctx)

		case "prev":
			_ = a.PrevPage(ctx)

		case "size":
			_ = a.SetPageSize(ctx, args)

		case "add":
			_ = a.AddCustomer(ctx)

		case "edit":
			_ = a.EditCustomer(ctx, args)

		case "delete":
			_ = a.DeleteCustomer(ctx, args)

		case "refresh":
			_ = a.Refresh(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
