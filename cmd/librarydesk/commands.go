package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/aiswo/librarydesk/library"
	"github.com/aiswo/librarydesk/library/shared/core"
	"github.com/aiswo/librarydesk/library/shared/shell"
)

var errRefused = errors.New("operation refused")

type environment struct {
	storeConfig library.StoreConfig
	options     []library.Option
	stdout      io.Writer
	stderr      io.Writer
	now         func() time.Time
}

type command func(ctx context.Context, env environment, args []string) error

var commands = map[string]command{
	"issue":       issueCommand,
	"return":      returnCommand,
	"outstanding": outstandingCommand,
	"register":    registerCommand,
	"users":       usersCommand,
}

func newFlagSet(name string, env environment) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(env.stderr)

	return fs
}

func parseFlags(fs *flag.FlagSet, args []string, required map[string]*string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	for name, value := range required {
		if *value == "" {
			_, _ = fmt.Fprintf(fs.Output(), "flag -%s is required\n", name)
			fs.Usage()

			return fmt.Errorf("%w: missing -%s", errUsage, name)
		}
	}

	return nil
}

func parseDateFlag(fs *flag.FlagSet, name, value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}

	date, err := shell.ParseDate(value)
	if err != nil {
		_, _ = fmt.Fprintf(fs.Output(), "flag -%s: %v\n", name, err)
		return time.Time{}, fmt.Errorf("%w: %w", errUsage, err)
	}

	return date, nil
}

// outcome turns a store result into the command's error: the storage report wins over a refusal.
func outcome(ok bool, err error, refusal string) error {
	if err != nil {
		return err
	}

	if !ok {
		return fmt.Errorf("%w: %s", errRefused, refusal)
	}

	return nil
}

func issueCommand(ctx context.Context, env environment, args []string) error {
	fs := newFlagSet("issue", env)
	bookID := fs.String("id", "", "book id")
	title := fs.String("title", "", "book title")
	issuedTo := fs.String("to", "", "name of the borrower")
	date := fs.String("date", "", "issue date (YYYY-MM-DD), defaults to today")

	if err := parseFlags(fs, args, map[string]*string{"id": bookID, "title": title, "to": issuedTo}); err != nil {
		return err
	}

	issueDate, err := parseDateFlag(fs, "date", *date, env.now())
	if err != nil {
		return err
	}

	store, err := library.NewLedgerStore(env.storeConfig, env.options...)
	if err != nil {
		return err
	}

	ok, err := store.IssueBook(ctx, *bookID, *title, *issuedTo, issueDate)
	if err = outcome(ok, err, core.ErrBookIDAlreadyExists.Error()); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(env.stdout, "issued %s to %s\n", *bookID, *issuedTo)

	return nil
}

func returnCommand(ctx context.Context, env environment, args []string) error {
	fs := newFlagSet("return", env)
	bookID := fs.String("id", "", "book id")
	date := fs.String("date", "", "return date (YYYY-MM-DD), defaults to today")

	if err := parseFlags(fs, args, map[string]*string{"id": bookID}); err != nil {
		return err
	}

	returnDate, err := parseDateFlag(fs, "date", *date, env.now())
	if err != nil {
		return err
	}

	store, err := library.NewLedgerStore(env.storeConfig, env.options...)
	if err != nil {
		return err
	}

	ok, err := store.ReturnBook(ctx, *bookID, returnDate)
	if err = outcome(ok, err, "book was never issued or was already returned"); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(env.stdout, "returned %s\n", *bookID)

	return nil
}

func outstandingCommand(ctx context.Context, env environment, args []string) error {
	fs := newFlagSet("outstanding", env)
	if err := parseFlags(fs, args, nil); err != nil {
		return err
	}

	store, err := library.NewLedgerStore(env.storeConfig, env.options...)
	if err != nil {
		return err
	}

	books, loadErr := store.ListOutstanding(ctx)

	tw := tabwriter.NewWriter(env.stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "BOOK ID\tTITLE\tISSUED TO\tISSUE DATE")

	for _, book := range books {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", book.BookID, book.Title, book.IssuedTo, shell.FormatDate(book.IssueDate))
	}

	if err = tw.Flush(); err != nil {
		return err
	}

	return loadErr
}

func registerCommand(ctx context.Context, env environment, args []string) error {
	fs := newFlagSet("register", env)
	fullName := fs.String("name", "", "full name")
	class := fs.String("class", "", "class")
	dob := fs.String("dob", "", "date of birth (YYYY-MM-DD)")
	address := fs.String("address", "", "address")
	phone := fs.String("phone", "", "phone number")
	email := fs.String("email", "", "email address")

	if err := parseFlags(fs, args, map[string]*string{"name": fullName, "dob": dob}); err != nil {
		return err
	}

	dateOfBirth, err := parseDateFlag(fs, "dob", *dob, time.Time{})
	if err != nil {
		return err
	}

	store, err := library.NewRegistryStore(env.storeConfig, env.options...)
	if err != nil {
		return err
	}

	registration := core.BuildUserRegistration(*fullName, *class, dateOfBirth, *address, *phone, *email)

	ok, err := store.RegisterUser(ctx, registration)
	if err = outcome(ok, err, "registration was not saved"); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(env.stdout, "registered %s\n", *fullName)

	return nil
}

func usersCommand(ctx context.Context, env environment, args []string) error {
	fs := newFlagSet("users", env)
	if err := parseFlags(fs, args, nil); err != nil {
		return err
	}

	store, err := library.NewRegistryStore(env.storeConfig, env.options...)
	if err != nil {
		return err
	}

	users, loadErr := store.ListUsers(ctx)

	tw := tabwriter.NewWriter(env.stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "FULL NAME\tCLASS\tDATE OF BIRTH\tADDRESS\tPHONE\tEMAIL")

	for _, user := range users {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			user.FullName, user.Class, shell.FormatDate(user.DateOfBirth), user.Address, user.PhoneNumber, user.Email)
	}

	if err = tw.Flush(); err != nil {
		return err
	}

	return loadErr
}
