package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"syscall"

	"golang.org/x/term"

	"gamenight-admin/internal/auth"
)

func main() {
	var password string

	switch {
	case len(os.Args) > 1:
		password = os.Args[1]
	case term.IsTerminal(syscall.Stdin):
		p, err := promptPassword()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		password = p
	default:
		fmt.Println("Usage: hashpw <password>")
		os.Exit(1)
	}

	if err := printHash(os.Stdout, password); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printHash writes the operator-facing hash line for password.
func printHash(out io.Writer, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Bcrypt hash for '%s': %s\n", password, hash)
	return nil
}

// promptPassword reads the password twice without echo and requires both
// entries to match.
func promptPassword() (string, error) {
	fmt.Print("Password: ")
	password, err := term.ReadPassword(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}

	fmt.Print("Confirm Password: ")
	confirm, err := term.ReadPassword(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}

	if !bytes.Equal(password, confirm) {
		return "", fmt.Errorf("passwords do not match")
	}

	return string(password), nil
}
