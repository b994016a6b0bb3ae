package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/homier/chainmap"
)

const prompt = "> "

// REPL runs line commands against a string map.
type REPL struct {
	m      *chainmap.Map[string]
	out    io.Writer
	logger *zap.Logger
}

func New(m *chainmap.Map[string], out io.Writer, logger *zap.Logger) *REPL {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &REPL{m: m, out: out, logger: logger}
}

// Run reads commands from in until EOF or an exit command.
func (r *REPL) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(r.out, prompt)

		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			break
		}

		if quit := r.Exec(scanner.Text()); quit {
			break
		}
	}

	return scanner.Err()
}

// Exec runs a single command line. Returns true when the session should end.
func (r *REPL) Exec(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}

	command := strings.ToLower(parts[0])
	args := parts[1:]

	r.logger.Debug("exec", zap.String("command", command), zap.Int("args", len(args)))

	switch command {
	case "set":
		key, value := setArgs(line)
		if value == "" {
			r.println("Usage: SET key value")
			return false
		}

		if err := r.m.Set(key, value); err != nil {
			r.printf("Error: %v\n", err)
			return false
		}

		r.println("OK")

	case "get":
		if !r.arity(args, 1, "GET key") {
			return false
		}

		if v, ok := r.m.Get(args[0]); ok {
			r.println(v)
		} else {
			r.println("(nil)")
		}

	case "has":
		if !r.arity(args, 1, "HAS key") {
			return false
		}

		r.println(r.m.Has(args[0]))

	case "del", "delete", "remove":
		if !r.arity(args, 1, "DEL key") {
			return false
		}

		r.println(r.m.Remove(args[0]))

	case "len", "size":
		r.println(r.m.Len())

	case "keys":
		r.list(r.m.Keys())

	case "values":
		r.list(r.m.Values())

	case "entries":
		entries := r.m.Entries()
		if len(entries) == 0 {
			r.println("(empty)")
		}

		for _, e := range entries {
			r.printf("%s = %s\n", e.Key, e.Value)
		}

	case "clear":
		r.m.Clear()
		r.println("OK")

	case "stats":
		s := r.m.Stats()
		r.printf("size=%d capacity=%d load=%.4f resizes=%d used_buckets=%d longest_chain=%d\n",
			s.Size, s.Capacity, s.LoadFactor, s.Resizes, s.UsedBuckets, s.LongestChain)

	case "help":
		r.printHelp()

	case "exit", "quit":
		return true

	default:
		r.println("Unknown command. Type 'help' for available commands.")
	}

	return false
}

// setArgs returns the key and the raw remainder of a SET line, so inner
// whitespace in the value is kept as typed.
func setArgs(line string) (key, value string) {
	_, rest := cutField(line)
	key, rest = cutField(rest)

	return key, strings.TrimLeftFunc(rest, unicode.IsSpace)
}

func cutField(s string) (field, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}

	return s[:i], s[i:]
}

func (r *REPL) arity(args []string, n int, usage string) bool {
	if len(args) != n {
		r.println("Usage: " + usage)
		return false
	}

	return true
}

func (r *REPL) list(items []string) {
	if len(items) == 0 {
		r.println("(empty)")
		return
	}

	for _, item := range items {
		r.println(item)
	}
}

func (r *REPL) println(v any) {
	fmt.Fprintln(r.out, v)
}

func (r *REPL) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *REPL) printHelp() {
	r.println(`Available commands:
  SET key value   - Store a key-value pair
  GET key         - Retrieve a value by key
  HAS key         - Check whether a key is present
  DEL key         - Remove a key-value pair
  LEN             - Show the number of entries
  KEYS            - List all keys
  VALUES          - List all values
  ENTRIES         - List all key-value pairs
  CLEAR           - Remove every entry
  STATS           - Show table statistics
  HELP            - Show this help
  EXIT/QUIT       - Exit the program`)
}
