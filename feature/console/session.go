package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"inventory-tracker/core/inventory"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const menu = `Choose an operation:
1. Add Item
2. Remove Item
3. Display Item by ID
4. Get Items by Category
5. Merge Inventories
6. Get Top K Items
7. Display Inventory
8. Exit
9. Show Statistics
0. Check Restocking
`

// errExit ends the session loop without an error.
var errExit = errors.New("exit")

// Options wires a Session to the store it drives.
type Options struct {
	// Store is the inventory the session operates on.
	Store *inventory.Store
	// Notes must be registered as a notifier on Store; the session prints
	// and clears it after every command.
	Notes *inventory.Recorder
	// NewStore builds the empty source inventory for "merge new".
	NewStore func() *inventory.Store
	// Metrics is read by the statistics command. Nil disables it.
	Metrics prometheus.Gatherer
	// Logger receives operational logs. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Session is one interactive conversation over a line-oriented reader.
type Session struct {
	opts   Options
	lines  <-chan string
	done   chan struct{}
	out    io.Writer
	logger *zap.Logger
}

// NewSession creates a session reading from in and writing to out.
func NewSession(opts Options, in io.Reader, out io.Writer) *Session {
	l := opts.Logger
	if l == nil {
		l = zap.NewNop()
	}

	lines := make(chan string)
	done := make(chan struct{})
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()

	return &Session{opts: opts, lines: lines, done: done, out: out, logger: l}
}

// Run serves commands until the user exits, input ends or ctx is cancelled.
// A session can only be run once.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("Session started")
	defer s.logger.Info("Session ended")
	defer close(s.done)

	for {
		fmt.Fprint(s.out, menu)
		choice, err := s.prompt(ctx, "Enter choice: ")
		if err != nil {
			return ignoreEOF(err)
		}

		err = s.dispatch(ctx, strings.TrimSpace(choice))
		s.flushNotifications()
		switch {
		case errors.Is(err, errExit):
			fmt.Fprintln(s.out, "Exiting.")
			return nil
		case errors.Is(err, io.EOF), ctx.Err() != nil:
			return ignoreEOF(err)
		case err != nil:
			fmt.Fprintf(s.out, "Invalid input: %v\n", err)
			s.logger.Debug("Command rejected", zap.String("choice", choice), zap.Error(err))
		}
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// prompt writes label and waits for the next input line.
func (s *Session) prompt(ctx context.Context, label string) (string, error) {
	fmt.Fprint(s.out, label)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}

func (s *Session) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case "1":
		return s.addItem(ctx)
	case "2":
		return s.removeItem(ctx)
	case "3":
		return s.showItem(ctx)
	case "4":
		return s.listCategory(ctx)
	case "5":
		return s.merge(ctx)
	case "6":
		return s.topK(ctx)
	case "7":
		s.display()
		return nil
	case "8":
		return errExit
	case "9":
		return s.stats()
	case "0":
		return s.checkRestock(ctx)
	default:
		fmt.Fprintln(s.out, "Invalid choice.")
		return nil
	}
}

func (s *Session) flushNotifications() {
	if s.opts.Notes == nil {
		return
	}
	for _, n := range s.opts.Notes.Drain() {
		fmt.Fprintf(s.out, "Restock Notification: %s\n", n)
	}
}

func (s *Session) categoriesLine() string {
	return "[" + strings.Join(s.opts.Store.Categories().List(), ", ") + "]"
}
