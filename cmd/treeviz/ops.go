package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/csePriyanshu/tree-visualizer/container/tree"
	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// ErrInvalidOp is returned when an operation cannot be parsed
var ErrInvalidOp = errors.New("invalid operation")

type opCode int

const (
	opInsert opCode = iota
	opDelete
	opRemove
	opTraverse
	opPrint
	opVerify
)

var opNames = map[string]opCode{
	"insert":   opInsert,
	"delete":   opDelete,
	"remove":   opRemove,
	"traverse": opTraverse,
	"print":    opPrint,
	"verify":   opVerify,
}

// op is a single step applied to a tree by the run command. Steps are
// written as name:argument, for example insert:5 or traverse:inorder
type op struct {
	code  opCode
	value int
	order tree.Order
}

func parseOp(s string) (op, error) {
	name, arg, hasArg := strings.Cut(s, ":")
	code, ok := opNames[strings.ToLower(name)]
	if !ok {
		return op{}, errors.Wrapf(ErrInvalidOp, "%q", s)
	}

	switch code {
	case opInsert, opDelete, opRemove:
		if !hasArg {
			return op{}, errors.Wrapf(ErrInvalidOp, "%q expects a value", s)
		}
		v, err := tree.ParseValue(arg)
		if err != nil {
			return op{}, err
		}
		return op{code: code, value: v}, nil

	case opTraverse:
		if !hasArg {
			return op{}, errors.Wrapf(ErrInvalidOp, "%q expects an order", s)
		}
		order, err := tree.ParseOrder(arg)
		if err != nil {
			return op{}, err
		}
		return op{code: code, order: order}, nil

	default:
		if hasArg {
			return op{}, errors.Wrapf(ErrInvalidOp, "%q takes no argument", s)
		}
		return op{code: code}, nil
	}
}

func parseOps(args []string) ([]op, error) {
	ops := make([]op, 0, len(args))
	for _, arg := range args {
		o, err := parseOp(arg)
		if err != nil {
			return nil, err
		}
		ops = append(ops, o)
	}
	return ops, nil
}

var (
	changedColor   = color.New(color.FgGreen)
	unchangedColor = color.New(color.FgYellow)
	failedColor    = color.New(color.FgRed)
	valuesColor    = color.New(color.FgCyan)
)

// apply runs the operations in order. It stops at the first
// operation that fails
func apply(w io.Writer, t *tree.Tree, ops []op) error {
	for _, o := range ops {
		if err := o.apply(w, t); err != nil {
			return err
		}
	}
	return nil
}

func (o op) apply(w io.Writer, t *tree.Tree) error {
	switch o.code {
	case opInsert:
		report(w, "insert", o.value, t.Insert(o.value), t)

	case opDelete:
		report(w, "delete", o.value, t.Delete(o.value), t)

	case opRemove:
		if err := t.Remove(o.value); err != nil {
			failedColor.Fprintf(w, "remove %d: %s\n", o.value, err)
			return err
		}
		report(w, "remove", o.value, true, t)

	case opTraverse:
		values := t.Values(o.order)
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = fmt.Sprint(v)
		}
		fmt.Fprintf(w, "%s: ", o.order)
		valuesColor.Fprintf(w, "[%s]\n", strings.Join(parts, " "))

	case opPrint:
		if t.Empty() {
			fmt.Fprintln(w, "(empty)")
			return nil
		}
		return t.Print(w)

	case opVerify:
		if err := t.Verify(); err != nil {
			failedColor.Fprintf(w, "verify: %s\n", err)
			return err
		}
		changedColor.Fprintf(w, "verify: ok\n")
	}

	return nil
}

func report(w io.Writer, name string, v int, changed bool, t *tree.Tree) {
	c := changedColor
	if !changed {
		c = unchangedColor
	}
	c.Fprintf(w, "%s %d: changed=%t len=%d height=%d\n", name, v, changed, t.Len(), t.Height())
}
