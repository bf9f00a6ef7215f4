// Package shell runs an interactive command loop over an in-memory
// address book.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/kballard/go-shellquote"
	"go.uber.org/zap"

	"github.com/smileynet/phonebook/internal/contact"
	"github.com/smileynet/phonebook/internal/display"
)

// ErrSyntax wraps tokenizing and command parsing failures.
var ErrSyntax = errors.New("shell: syntax error")

// Session holds the state of one shell run. It is not safe for concurrent use.
type Session struct {
	book   *contact.AddressBook
	out    display.Printer
	log    *zap.SugaredLogger
	prompt string
	w      io.Writer
	done   bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for command tracing.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Session) { s.log = l }
}

// WithPrompt sets the prompt written to w before each line.
// An empty prompt disables prompting.
func WithPrompt(prompt string, w io.Writer) Option {
	return func(s *Session) {
		s.prompt = prompt
		s.w = w
	}
}

// New creates a Session operating on book and reporting through out.
func New(book *contact.AddressBook, out display.Printer, opts ...Option) *Session {
	s := &Session{
		book: book,
		out:  out,
		log:  zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Done reports whether the session ended through an exit command or
// cancellation.
func (s *Session) Done() bool {
	return s.done
}

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// Run reads commands from r until EOF, an exit command, or ctx is cancelled.
// Command errors are printed and do not stop the loop. Cancellation ends the
// session like an exit command. Lines are read on a separate goroutine, which
// stays blocked on r after cancellation until r returns.
func (s *Session) Run(ctx context.Context, r io.Reader) error {
	lines := make(chan string)
	errc := make(chan error, 1)
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-stop:
				return
			}
		}
		errc <- sc.Err()
	}()

	for {
		if ctx.Err() != nil {
			return s.interrupted(ctx)
		}
		s.showPrompt()

		var line string
		select {
		case <-ctx.Done():
			return s.interrupted(ctx)
		case l, ok := <-lines:
			if !ok {
				if err := <-errc; err != nil {
					return fmt.Errorf("shell: reading input: %w", err)
				}
				return nil
			}
			line = l
		}

		if err := s.Execute(line); err != nil {
			s.out.Error(err)
		}
		if s.done {
			s.out.Message("Good bye!")
			return nil
		}
	}
}

func (s *Session) interrupted(ctx context.Context) error {
	s.log.Debugw("Session interrupted", "cause", ctx.Err())
	s.done = true
	s.out.Message("Good bye!")
	return nil
}

// Execute parses and runs a single command line. Blank lines are ignored.
func (s *Session) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	args, err := shellquote.Split(line)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	parser, err := kong.New(&grammar{},
		kong.Name("phonebook"),
		kong.NoDefaultHelp(),
		kong.Writers(io.Discard, io.Discard),
	)
	if err != nil {
		return fmt.Errorf("shell: building parser: %w", err)
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		s.log.Debugw("Rejected command", "line", line, "error", err)
		return fmt.Errorf("%w: %v (try: help)", ErrSyntax, err)
	}

	s.log.Debugw("Dispatching command", "command", kctx.Command(), "arg_count", len(args))
	if err := kctx.Run(s); err != nil {
		s.log.Debugw("Command failed", "command", kctx.Command(), "error", err)
		return err
	}
	return nil
}

// record finds name in the book, printing the not-found message on a miss.
func (s *Session) record(name string) (*contact.Record, bool) {
	r, ok := s.book.Find(name)
	if !ok {
		s.out.Result(contact.Result{Message: contact.NotFoundMessage(name)})
	}
	return r, ok
}

func (s *Session) showPrompt() {
	if s.prompt == "" || s.w == nil {
		return
	}
	_, _ = fmt.Fprint(s.w, s.prompt)
}
