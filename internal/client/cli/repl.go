package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	List(ctx context.Context) error
	Saved(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Like(ctx context.Context, id string) error
	Save(ctx context.Context, id string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	HTML(ctx context.Context, path string) error
	Export(ctx context.Context, path string, saved bool) error
}

const (
	helpLoggedOut = "Available commands: (l)ist, show <id>, status, html <path>, export <path>, register, login, exit"
	helpLoggedIn  = "Available commands: (l)ist, saved, show <id>, like <id>, save <id>, add, edit <id>, delete <id>, " +
		"status, html <path>, export <path> [saved], logout, exit"
)

// runREPL starts a simple read–eval–print loop for the recipeshare CLI.
//
// It reads a line from the provided reader, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on EOF or when the user types "exit" or
// "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Everyone:
//	  - help               show available commands
//	  - list | l           list all recipes
//	  - show <id>          show a recipe with ingredients and instructions
//	  - status             ask the server who is logged in
//	  - html <path>        write the current list as an HTML fragment
//	  - export <path>      write the list to .xlsx or .csv
//	  - register | login   authenticate
//	  - exit | quit        leave the program
//
//	Logged in:
//	  - saved              list saved recipes
//	  - like <id>          like / unlike a recipe
//	  - save <id>          save / unsave a recipe
//	  - add                add a recipe
//	  - edit <id>          edit an own recipe
//	  - delete <id>        delete an own recipe (asks for confirmation)
//	  - export <path> saved
//	  - logout             log out
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("rs> %s > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "status":
			_ = a.Status(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "saved":
			_ = a.Saved(ctx)

		case "add":
			_ = a.Add(ctx)

		case "show", "like", "save", "edit", "delete", "html":
			if len(args) == 0 {
				printlnFn(usage(cmd))
				continue
			}
			switch cmd {
			case "show":
				_ = a.Show(ctx, args[0])
			case "like":
				_ = a.Like(ctx, args[0])
			case "save":
				_ = a.Save(ctx, args[0])
			case "edit":
				_ = a.Edit(ctx, args[0])
			case "delete":
				_ = a.Delete(ctx, args[0])
			case "html":
				_ = a.HTML(ctx, args[0])
			}

		case "export":
			if len(args) == 0 {
				printlnFn(usage(cmd))
				continue
			}
			_ = a.Export(ctx, args[0], len(args) > 1 && args[1] == "saved")

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			// last line had no trailing newline
			return
		}
	}
}

func usage(cmd string) string {
	switch cmd {
	case "html":
		return "Usage: html <path>"
	case "export":
		return "Usage: export <path.xlsx|path.csv> [saved]"
	default:
		return fmt.Sprintf("Usage: %s <id>", cmd)
	}
}

// getStatus renders the prompt status: "(<email> <mode>)".
func (a *App) getStatus() string {
	s := ""
	if u, ok := a.store.CurrentUser(); ok {
		s = u.Email + " "
	}
	if m := a.Mode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
