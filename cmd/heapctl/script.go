package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/joshuapare/heapkit/heap/alloc"
	"github.com/joshuapare/heapkit/pkg/heap"
)

// Script verbs.
const (
	opAlloc = "alloc"
	opFree  = "free"
	opReset = "reset"
	opInit  = "init"
	opDump  = "dump"
)

var errScriptSyntax = errors.New("syntax error")

// scriptOp is one parsed script line.
type scriptOp struct {
	line int
	verb string
	name string
	size int
	mode alloc.Mode
}

func (op scriptOp) String() string {
	switch op.verb {
	case opAlloc:
		return fmt.Sprintf("alloc %s %d", op.name, op.size)
	case opFree:
		return "free " + op.name
	case opInit:
		return "init " + op.mode.String()
	default:
		return op.verb
	}
}

// parseScript reads one operation per line. Blank lines and lines starting
// with '#' are skipped; trailing "# ..." comments are stripped.
func parseScript(r io.Reader) ([]scriptOp, error) {
	var ops []scriptOp
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text, _, _ := strings.Cut(sc.Text(), "#")
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		op, err := parseOp(lineNo, fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		ops = append(ops, op)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return ops, nil
}

func parseOp(lineNo int, fields []string) (scriptOp, error) {
	op := scriptOp{line: lineNo, verb: strings.ToLower(fields[0])}
	args := fields[1:]

	arity := map[string]int{opAlloc: 2, opFree: 1, opReset: 0, opInit: 1, opDump: 0}
	want, ok := arity[op.verb]
	if !ok {
		return op, fmt.Errorf("%w: unknown operation %q", errScriptSyntax, fields[0])
	}
	if len(args) != want {
		return op, fmt.Errorf("%w: %s takes %d argument(s), got %d", errScriptSyntax, op.verb, want, len(args))
	}

	switch op.verb {
	case opAlloc:
		size, err := strconv.Atoi(args[1])
		if err != nil {
			return op, fmt.Errorf("%w: bad size %q", errScriptSyntax, args[1])
		}
		op.name, op.size = args[0], size
	case opFree:
		op.name = args[0]
	case opInit:
		mode, err := alloc.ParseMode(args[0])
		if err != nil {
			return op, err
		}
		op.mode = mode
	}
	return op, nil
}

// scriptRunner executes parsed operations against a session, binding
// names to live pointers.
type scriptRunner struct {
	h     *heap.Heap
	names map[string]heap.Ptr
	dump  func(label string) error
}

func newScriptRunner(h *heap.Heap, dump func(label string) error) *scriptRunner {
	if dump == nil {
		dump = func(string) error { return nil }
	}
	return &scriptRunner{h: h, names: make(map[string]heap.Ptr), dump: dump}
}

func (r *scriptRunner) run(ops []scriptOp) error {
	for _, op := range ops {
		if err := r.exec(op); err != nil {
			return fmt.Errorf("line %d: %s: %w", op.line, op, err)
		}
		printVerbose("%4d  %s\n", op.line, op)
	}
	return nil
}

func (r *scriptRunner) exec(op scriptOp) error {
	switch op.verb {
	case opAlloc:
		p, err := r.h.Alloc(op.size)
		if err != nil {
			return err
		}
		r.names[op.name] = p
	case opFree:
		p, ok := r.names[op.name]
		if !ok {
			return fmt.Errorf("unknown name %q", op.name)
		}
		if err := r.h.Free(p); err != nil {
			return err
		}
	case opReset:
		clear(r.names)
		return r.h.Reset()
	case opInit:
		clear(r.names)
		return r.h.Init(op.mode)
	case opDump:
		return r.dump(fmt.Sprintf("line %d", op.line))
	}
	return nil
}
