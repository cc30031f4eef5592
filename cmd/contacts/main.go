package main

import (
	"bytes"
	"contact-lab/contact"
	"contact-lab/domain"
	"contact-lab/errors"
	"contact-lab/internal"
	"contact-lab/repositories"
	"contact-lab/services"
	"contact-lab/storage"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/Netflix/go-env"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// Exit codes to provide meaningful status to the calling shell.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "contacts: %v\n", err)
	}
	os.Exit(code)
}

// run imports contact rows into a fresh in-memory store and prints the result.
// Rejected rows are reported and skipped; any rejection turns the exit code to exitRuntime.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	backend, err := config.StorageBackend()
	if err != nil {
		return exitConfig, err
	}

	flags := flag.NewFlagSet("contacts", flag.ContinueOnError)
	flags.SetOutput(stderr)
	file := flags.String("file", "", "CSV file to import (stdin when empty)")
	firstName := flags.String("first", config.DefaultFirstName, "first name for single column rows")
	lastName := flags.String("last", config.DefaultLastName, "last name for single column rows")
	if err := flags.Parse(args); err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Storage
	repository, closeRepository, err := buildRepository(ctx, backend, logger)
	if err != nil {
		return exitRuntime, err
	}
	defer closeRepository()

	manager := services.NewContactManager(repository, logger, config.StrictPhone)

	// 3. Input
	data, err := readInput(*file, stdin)
	if err != nil {
		return exitRuntime, err
	}
	rows, err := contact.ReadRows(bytes.NewReader(data), contact.Row{FirstName: *firstName, LastName: *lastName})
	if err != nil {
		return exitRuntime, err
	}

	// 4. Import, one row at a time
	rejected := 0
	for _, row := range rows {
		if err := manager.AddContact(row.FirstName, row.LastName, row.PhoneNumber); err != nil {
			rejected++
			fmt.Fprintln(stderr, color.Red.Sprintf("line %d rejected: %v", row.Line, err))
		}
	}

	contacts, err := manager.GetAllContacts()
	if err != nil {
		return exitRuntime, fmt.Errorf("listing contacts failed: %w", err)
	}
	renderContacts(stdout, contacts)
	logger.Info("Import finished", "backend", backend, "stored", len(contacts), "rejected", rejected)

	if rejected > 0 {
		return exitRuntime, fmt.Errorf("%w: %d of %d", errors.ErrRejectedRows, rejected, len(rows))
	}
	return exitOK, nil
}

func buildRepository(ctx context.Context, backend string, logger *slog.Logger) (repositories.IContactRepository, func(), error) {
	if backend == internal.StorageMemory {
		return repositories.NewMemoryContactRepository(), func() {}, nil
	}

	db, err := storage.OpenInMemory(ctx, logger)
	if err != nil {
		return nil, nil, err
	}
	repository, err := repositories.NewBadgerContactRepository(db, logger)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return repository, func() {
		// The sequence must be released before the database is closed.
		_ = repository.Close()
		_ = db.Close()
	}, nil
}

// readInput loads the whole source and refuses anything that is not text.
func readInput(path string, stdin io.Reader) ([]byte, error) {
	var data []byte
	var err error
	if path == "" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading input failed: %w", err)
	}
	if len(data) == 0 {
		return data, nil
	}

	mime := mimetype.Detect(data)
	for m := mime; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return data, nil
		}
	}
	return nil, fmt.Errorf("%w: detected %s", errors.ErrBinaryInput, mime.String())
}

func renderContacts(w io.Writer, contacts []domain.Contact) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "First name", "Last name", "Phone number"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.AppendBulk(lo.Map(contacts, func(c domain.Contact, i int) []string {
		return []string{strconv.Itoa(i + 1), c.FirstName, c.LastName, c.PhoneNumber}
	}))
	table.Render()
}
