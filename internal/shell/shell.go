// Package shell implements a line-oriented command interpreter over an
// in-memory address book.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/mesh-intelligence/addressbook/internal/logging"
	"github.com/mesh-intelligence/addressbook/pkg/types"
)

// ErrUsage is returned when a command gets the wrong number of arguments.
var ErrUsage = errors.New("usage")

// Replies printed after successful commands.
const (
	replyAdded   = "Contact added."
	replyUpdated = "Contact updated."
	replyRemoved = "Phone removed."
	replyDeleted = "Contact deleted."
	replyEmpty   = "No contacts saved."
	replyInvalid = "Invalid command."
	replyGoodbye = "Good bye!"
)

const helpText = `Commands:
  add <name> <phone>           add a phone, creating the contact if needed
  change <name> <old> <new>    replace a phone
  phone <name>                 show a contact
  find <name> <phone>          look up one phone of a contact
  remove <name> <phone>        remove a phone from a contact
  delete <name>                delete a contact
  all                          show every contact
  help                         show this help
  exit | close                 leave the shell`

// Options configures a Shell.
type Options struct {
	Prompt      string       // Written before each line when Interactive is set.
	Interactive bool         // Whether to write the prompt.
	Logger      *slog.Logger // Receives debug logs for each mutation; nil discards.
}

// Shell executes commands against a single AddressBook.
type Shell struct {
	book *types.AddressBook
	opts Options
	log  *slog.Logger
}

// New returns a Shell operating on book.
func New(book *types.AddressBook, opts Options) *Shell {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	return &Shell{book: book, opts: opts, log: log}
}

// IsTerminal reports whether r is a terminal. Only *os.File values can be.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Run reads commands from in until EOF or an exit command and writes replies
// to out. Command errors are written as "Error: ..." and do not stop the loop.
// Only read errors are returned.
func (s *Shell) Run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		if s.opts.Interactive {
			fmt.Fprint(out, s.opts.Prompt)
		}
		if !scanner.Scan() {
			break
		}

		reply, quit, err := s.Execute(scanner.Text())
		switch {
		case err != nil:
			fmt.Fprintln(out, "Error:", err)
		case reply != "":
			fmt.Fprintln(out, reply)
		}
		if quit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// Execute runs a single command line. It returns the reply to print and
// whether the shell should stop. Blank lines yield an empty reply.
func (s *Shell) Execute(line string) (reply string, quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "add":
		reply, err = s.add(args)
	case "change":
		reply, err = s.change(args)
	case "phone":
		reply, err = s.phone(args)
	case "find":
		reply, err = s.find(args)
	case "remove":
		reply, err = s.remove(args)
	case "delete":
		reply, err = s.deleteRecord(args)
	case "all":
		reply, err = s.all(args)
	case "help":
		reply = helpText
	case "exit", "close":
		return replyGoodbye, true, nil
	default:
		reply = replyInvalid
	}
	return reply, false, err
}

func usage(form string) error {
	return fmt.Errorf("%w: %s", ErrUsage, form)
}

// record returns the record stored under name or a not-found error.
func (s *Shell) record(name string) (*types.Record, error) {
	rec, ok := s.book.Find(name)
	if !ok {
		return nil, &types.NotFoundError{Kind: types.KindRecord, Value: name}
	}
	return rec, nil
}

func (s *Shell) add(args []string) (string, error) {
	if len(args) != 2 {
		return "", usage("add <name> <phone>")
	}
	name, phone := args[0], args[1]

	rec, ok := s.book.Find(name)
	reply := replyUpdated
	if !ok {
		var err error
		if rec, err = types.NewRecord(name); err != nil {
			return "", err
		}
		reply = replyAdded
	}
	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	if !ok {
		s.book.AddRecord(rec)
		s.log.Debug("record added", "name", name, "id", rec.ID())
	}
	s.log.Debug("phone added", "name", name, "phone", phone)
	return reply, nil
}

func (s *Shell) change(args []string) (string, error) {
	if len(args) != 3 {
		return "", usage("change <name> <old> <new>")
	}
	rec, err := s.record(args[0])
	if err != nil {
		return "", err
	}
	if err := rec.EditPhone(args[1], args[2]); err != nil {
		return "", err
	}
	s.log.Debug("phone edited", "name", args[0], "old", args[1], "new", args[2])
	return replyUpdated, nil
}

func (s *Shell) phone(args []string) (string, error) {
	if len(args) != 1 {
		return "", usage("phone <name>")
	}
	rec, err := s.record(args[0])
	if err != nil {
		return "", err
	}
	return rec.String(), nil
}

func (s *Shell) find(args []string) (string, error) {
	if len(args) != 2 {
		return "", usage("find <name> <phone>")
	}
	rec, err := s.record(args[0])
	if err != nil {
		return "", err
	}
	p, ok := rec.FindPhone(args[1])
	if !ok {
		return "", &types.NotFoundError{Kind: types.KindPhone, Value: args[1]}
	}
	return fmt.Sprintf("%s: %s", rec.Name(), p), nil
}

func (s *Shell) remove(args []string) (string, error) {
	if len(args) != 2 {
		return "", usage("remove <name> <phone>")
	}
	rec, err := s.record(args[0])
	if err != nil {
		return "", err
	}
	if err := rec.RemovePhone(args[1]); err != nil {
		return "", err
	}
	s.log.Debug("phone removed", "name", args[0], "phone", args[1])
	return replyRemoved, nil
}

func (s *Shell) deleteRecord(args []string) (string, error) {
	if len(args) != 1 {
		return "", usage("delete <name>")
	}
	if err := s.book.Delete(args[0]); err != nil {
		return "", err
	}
	s.log.Debug("record deleted", "name", args[0])
	return replyDeleted, nil
}

func (s *Shell) all(args []string) (string, error) {
	if len(args) != 0 {
		return "", usage("all")
	}
	if s.book.Len() == 0 {
		return replyEmpty, nil
	}
	return s.book.String(), nil
}
