// Package script replays a list of operations, read from a YAML file, against a dlist.List.
package script

import (
	"errors"
	"fmt"
	"io"

	"github.com/bradenaw/juniper/xslices"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/bradenaw/dlist"
	"github.com/bradenaw/dlist/internal/mlog"
)

var ErrUnknownOp = errors.New("unknown op")

// Script is the file format read by Load.
//
//	log:
//	  level: debug
//	stop_on_error: true
//	ops:
//	  - {op: insert_at_end, value: a}
//	  - {op: insert_at_position, value: b, pos: 1}
//	  - {op: print}
type Script struct {
	Log mlog.LogConfig `yaml:"log"`

	// StopOnError aborts the run at the first failing op. Otherwise failures are logged and
	// counted and the run continues.
	StopOnError bool `yaml:"stop_on_error"`

	Ops []Op `yaml:"ops"`
}

type Op struct {
	// Op is one of insert_at_beginning, insert_at_end, insert_at_position, delete_first,
	// delete_last, delete, get, set, len, clear, print.
	Op    string `yaml:"op"`
	Value string `yaml:"value"`
	Pos   int    `yaml:"pos"`
}

func (op Op) String() string {
	switch op.Op {
	case "insert_at_beginning", "insert_at_end":
		return fmt.Sprintf("%s(%q)", op.Op, op.Value)
	case "insert_at_position", "set":
		return fmt.Sprintf("%s(%q, %d)", op.Op, op.Value, op.Pos)
	case "delete", "get":
		return fmt.Sprintf("%s(%d)", op.Op, op.Pos)
	default:
		return op.Op + "()"
	}
}

// Load reads a Script from path. If path is empty, looks for script.{yaml,json,toml,...} in the
// working directory.
func Load(path string) (*Script, error) {
	v := viper.New()
	if len(path) > 0 {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("script")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read script file: %w", err)
	}

	s := new(Script)
	if err := v.Unmarshal(s, decoderOpt); err != nil {
		return nil, fmt.Errorf("failed to parse script file %s: %w", v.ConfigFileUsed(), err)
	}
	return s, nil
}

func decoderOpt(cfg *mapstructure.DecoderConfig) {
	cfg.ErrorUnused = true
	cfg.TagName = "yaml"
	cfg.WeaklyTypedInput = true
}

// Summary counts the ops a Run went through.
type Summary struct {
	Applied int
	Failed  int
}

// Runner applies ops to a list, writing the output of print, get, and len ops to out.
type Runner struct {
	l           *dlist.List[string]
	out         io.Writer
	logger      *zap.Logger
	stopOnError bool
}

func NewRunner(l *dlist.List[string], out io.Writer, logger *zap.Logger, stopOnError bool) *Runner {
	if logger == nil {
		logger = mlog.Nop()
	}
	return &Runner{
		l:           l,
		out:         out,
		logger:      logger,
		stopOnError: stopOnError,
	}
}

// Run applies ops in order. It only returns an error if the runner stops on errors.
func (r *Runner) Run(ops []Op) (Summary, error) {
	r.logger.Debug(
		"running script",
		zap.Int("len", r.l.Len()),
		zap.Strings("ops", xslices.Map(ops, func(op Op) string { return op.Op })),
	)

	var sum Summary
	for i, op := range ops {
		if err := r.Step(op); err != nil {
			sum.Failed++
			r.logger.Warn("op failed", zap.Int("step", i), zap.Stringer("op", op), zap.Error(err))
			if r.stopOnError {
				return sum, fmt.Errorf("step %d, %v: %w", i, op, err)
			}
			continue
		}
		sum.Applied++
		r.logger.Debug("op applied", zap.Int("step", i), zap.Stringer("op", op), zap.Int("len", r.l.Len()))
	}
	return sum, nil
}

// Step applies a single op. Out-of-range positions for get, set, and delete are rejected before
// reaching the list, with an error matching dlist.ErrIndexOutOfBounds.
func (r *Runner) Step(op Op) error {
	switch op.Op {
	case "insert_at_beginning":
		r.l.InsertAtBeginning(op.Value)
	case "insert_at_end":
		r.l.InsertAtEnd(op.Value)
	case "insert_at_position":
		return r.l.InsertAtPosition(op.Value, op.Pos)
	case "delete_first":
		if _, ok := r.l.DeleteFirst(); !ok {
			r.logger.Debug("delete_first on empty list")
		}
	case "delete_last":
		if _, ok := r.l.DeleteLast(); !ok {
			r.logger.Debug("delete_last on empty list")
		}
	case "delete":
		if err := r.checkIndex("delete", op.Pos); err != nil {
			return err
		}
		v := r.l.Delete(op.Pos)
		r.logger.Debug("deleted", zap.Int("pos", op.Pos), zap.String("value", v))
	case "get":
		if err := r.checkIndex("get", op.Pos); err != nil {
			return err
		}
		return r.printf("%d: %s\n", op.Pos, r.l.Get(op.Pos))
	case "set":
		if err := r.checkIndex("set", op.Pos); err != nil {
			return err
		}
		*r.l.GetMut(op.Pos) = op.Value
	case "len":
		return r.printf("len: %d\n", r.l.Len())
	case "clear":
		r.l.Clear()
	case "print":
		return r.printf("%s\n", r.l)
	default:
		return fmt.Errorf("%w %q", ErrUnknownOp, op.Op)
	}
	return nil
}

func (r *Runner) checkIndex(op string, pos int) error {
	if pos < 0 || pos >= r.l.Len() {
		return &dlist.IndexError{Op: op, Pos: pos, Len: r.l.Len()}
	}
	return nil
}

func (r *Runner) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(r.out, format, args...)
	return err
}

// Snapshot is the YAML form of a list's contents.
type Snapshot struct {
	Length int      `yaml:"length"`
	Values []string `yaml:"values"`
}

// WriteSnapshot writes the contents of l to w as YAML.
func WriteSnapshot(w io.Writer, l *dlist.List[string]) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Snapshot{Length: l.Len(), Values: l.Values()}); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return enc.Close()
}
