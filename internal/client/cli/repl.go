package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface shared by the REPL and one-shot
// subcommands. App satisfies it; tests use a stub.
type execIface interface {
	isUnlocked() bool
	Register(ctx context.Context, args []string) error
	RequestLink(ctx context.Context, args []string) error
	VerifyLink(ctx context.Context, args []string) error
	CodeLogin(ctx context.Context, args []string) error
	Unlock(ctx context.Context) error
	ChangePassphrase(ctx context.Context) error
	AddNote(ctx context.Context, args []string) error
	List(ctx context.Context) error
	Status(ctx context.Context) error
	Logout(ctx context.Context) error
}

// dispatch runs cmd and reports whether it was recognised.
func dispatch(ctx context.Context, a execIface, cmd string, args []string) (bool, error) {
	switch cmd {
	case "register":
		return true, a.Register(ctx, args)
	case "link-request":
		return true, a.RequestLink(ctx, args)
	case "link-verify":
		return true, a.VerifyLink(ctx, args)
	case "code-login":
		return true, a.CodeLogin(ctx, args)
	case "unlock":
		return true, a.Unlock(ctx)
	case "change-passphrase":
		return true, a.ChangePassphrase(ctx)
	case "note-add", "addnote":
		return true, a.AddNote(ctx, args)
	case "note-list", "l", "list":
		return true, a.List(ctx)
	case "status":
		return true, a.Status(ctx)
	case "logout":
		return true, a.Logout(ctx)
	default:
		return false, nil
	}
}

// runREPL reads commands from scanner until EOF or "exit"/"quit". Errors
// are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("notevault %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isUnlocked() {
				printlnFn("Available commands: note-add, note-list, change-passphrase, status, logout, exit")
			} else {
				printlnFn("Available commands: register, link-request, link-verify, code-login, unlock, status, exit")
			}
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		ok, err := dispatch(ctx, a, cmd, args)
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
