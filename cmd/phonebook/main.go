package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/smileynet/phonebook"
	"github.com/smileynet/phonebook/internal/config"
	"github.com/smileynet/phonebook/internal/contact"
	"github.com/smileynet/phonebook/internal/dashboard"
	"github.com/smileynet/phonebook/internal/display"
	"github.com/smileynet/phonebook/internal/logging"
	"github.com/smileynet/phonebook/internal/shell"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Globals holds flags shared by every command.
type Globals struct {
	Config   string `help:"Extra config file, applied after user and project config." type:"path"`
	Plain    bool   `help:"Force plain text output even if stdout is a TTY."`
	LogLevel string `help:"Override log level (debug, info, warn, error)." name:"log-level"`
}

// CLI is the top-level command structure for phonebook.
type CLI struct {
	Globals

	Version kong.VersionFlag `help:"Show version." short:"V"`
	Demo    DemoCmd          `cmd:"" help:"Run the built-in demonstration."`
	List    ListCmd          `cmd:"" help:"Print the configured contacts."`
	Shell   ShellCmd         `cmd:"" help:"Edit an in-memory address book interactively."`
	Browse  BrowseCmd        `cmd:"" help:"Browse contacts in a terminal UI."`
	Sample  SampleCmd        `cmd:"" name:"sample-config" help:"Print an example config file."`
}

// loadConfig loads layered config from user, project and flag paths with
// env and flag overrides, then validates it.
func loadConfig(g *Globals) (*config.Config, error) {
	paths := []string{
		os.ExpandEnv("$HOME/.config/phonebook/config.yaml"),
		".phonebook.yaml",
	}
	if g.Config != "" {
		paths = append(paths, g.Config)
	}
	cfg, err := config.LoadLayered(paths...)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if g.Plain {
		cfg.Display.Plain = true
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// demoBook returns the two-contact book the demonstration starts from.
func demoBook() (*contact.AddressBook, error) {
	book := contact.NewAddressBook()

	john := contact.NewRecord("John")
	if err := john.AddPhone("1234567890"); err != nil {
		return nil, err
	}
	if err := john.AddPhone("5555555555"); err != nil {
		return nil, err
	}
	book.AddRecord(john)

	jane := contact.NewRecord("Jane")
	if err := jane.AddPhone("9876543210"); err != nil {
		return nil, err
	}
	book.AddRecord(jane)

	return book, nil
}

// DemoCmd runs the scripted add/edit/find/delete walkthrough.
type DemoCmd struct{}

// Run executes the demo command. Config only affects rendering; the demo
// never uses the configured contacts.
func (d *DemoCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	out := display.NewPrinter(display.Options{Writer: os.Stdout, ForcePlain: cfg.Display.Plain})
	return d.run(out)
}

// run performs the walkthrough against out, enabling testable wiring.
func (d *DemoCmd) run(out display.Printer) error {
	book, err := demoBook()
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	out.Records(book.Records())

	john, ok := book.Find("John")
	if !ok {
		return fmt.Errorf("demo: %s", contact.NotFoundMessage("John"))
	}
	if _, err := john.EditPhone("1234567890", "1112223333"); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	out.Record(john)

	found, err := john.FindPhone("5555555555")
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	out.Result(found)

	out.Result(book.Delete("Jane"))
	return nil
}

// ListCmd prints the contacts seeded from config.
type ListCmd struct{}

// Run executes the list command.
func (l *ListCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	out := display.NewPrinter(display.Options{Writer: os.Stdout, ForcePlain: cfg.Display.Plain})
	return l.run(cfg, out)
}

// run prints the seeded book, enabling testable wiring.
func (l *ListCmd) run(cfg *config.Config, out display.Printer) error {
	book, err := cfg.Book()
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	out.Records(book.Records())
	return nil
}

// ShellCmd runs the interactive command loop.
type ShellCmd struct {
	Empty bool `help:"Start with an empty book instead of the configured contacts."`
}

// Run executes the shell command on stdin/stdout.
func (s *ShellCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	log, err := logging.New(os.Stderr, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	interactive := display.IsTTY(os.Stdin) && display.IsTTY(os.Stdout)
	return s.run(ctx, os.Stdin, os.Stdout, cfg, interactive, log)
}

// run builds the session and drives it, enabling testable wiring.
func (s *ShellCmd) run(ctx context.Context, in io.Reader, w io.Writer, cfg *config.Config, interactive bool, log *zap.SugaredLogger) error {
	book := contact.NewAddressBook()
	if !s.Empty {
		var err error
		if book, err = cfg.Book(); err != nil {
			return fmt.Errorf("shell: %w", err)
		}
	}

	out := display.NewPrinter(display.Options{Writer: w, ForcePlain: cfg.Display.Plain})
	opts := []shell.Option{shell.WithLogger(log)}
	if interactive {
		out.Message("Welcome to the phonebook shell. Type help for commands.")
		opts = append(opts, shell.WithPrompt(cfg.Shell.Prompt, w))
	}
	log.Debugw("Starting shell", "contacts", book.Len(), "interactive", interactive)

	if err := shell.New(book, out, opts...).Run(ctx, in); err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	return nil
}

// BrowseCmd opens the dashboard TUI.
type BrowseCmd struct {
	Demo bool `help:"Browse the demonstration contacts instead of the configured ones."`
}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// Run builds the book and launches the dashboard TUI.
func (b *BrowseCmd) Run(g *Globals) error {
	if !display.IsTTY(os.Stdout) {
		return fmt.Errorf("browse: requires a terminal (TTY)")
	}
	cfg, err := loadConfig(g)
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	book, err := b.book(cfg)
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	prog := tea.NewProgram(dashboard.NewModel(book), tea.WithAltScreen())
	return b.run(true, prog)
}

// book returns the address book to browse.
func (b *BrowseCmd) book(cfg *config.Config) (*contact.AddressBook, error) {
	if b.Demo {
		return demoBook()
	}
	return cfg.Book()
}

// run executes the tea program, enabling testable wiring.
func (b *BrowseCmd) run(isTTY bool, prog teaRunner) error {
	if !isTTY {
		return fmt.Errorf("browse: requires a terminal (TTY)")
	}
	_, err := prog.Run()
	return err
}

// SampleCmd prints the embedded example config.
type SampleCmd struct{}

// Run executes the sample-config command.
func (c *SampleCmd) Run() error {
	return c.run(os.Stdout)
}

func (c *SampleCmd) run(w io.Writer) error {
	if _, err := w.Write(phonebook.ExampleConfig); err != nil {
		return fmt.Errorf("sample-config: %w", err)
	}
	return nil
}

const (
	exitSuccess = 0
	exitInput   = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
// Bad phones in config are setup errors, not input errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	if errors.Is(err, config.ErrInvalid) {
		return exitSetup
	}
	if errors.Is(err, contact.ErrInvalidPhone) {
		return exitInput
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("phonebook"),
		kong.Description("An in-memory contact directory."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run(&cli.Globals)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
