package printer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/lueurxax/linked-list/internal/singlell"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatDot  Format = "dot"
)

var ErrUnknownFormat = errors.New("unknown output format")

type Printer interface {
	// Print writes the list head to tail and returns how many values were written.
	Print(w io.Writer, list singlell.SingleLL[int64]) (int, error)
}

type textPrinter struct{}

func (textPrinter) Print(w io.Writer, list singlell.SingleLL[int64]) (int, error) {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 20) //nolint:gomnd

	count := 0
	it := list.Iter()
	for value, ok := it.Next(); ok; value, ok = it.Next() {
		buf = buf[:0]
		if count > 0 {
			buf = append(buf, ' ')
		}

		buf = strconv.AppendInt(buf, value, 10)
		if _, err := bw.Write(buf); err != nil {
			return count, err
		}

		count++
	}

	return count, bw.Flush()
}

type jsonPrinter struct{}

func (jsonPrinter) Print(w io.Writer, list singlell.SingleLL[int64]) (int, error) {
	values := list.Values()

	data, err := jsoniter.Marshal(values)
	if err != nil {
		return 0, err
	}

	if _, err = w.Write(data); err != nil {
		return 0, err
	}

	return len(values), nil
}

// dotPrinter renders the chain as a Graphviz digraph: head -> n0 -> ... -> nil.
type dotPrinter struct{}

func (dotPrinter) Print(w io.Writer, list singlell.SingleLL[int64]) (int, error) {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "digraph list {")
	fmt.Fprintln(bw, "\trankdir=LR;")
	fmt.Fprintln(bw, "\tnode [shape=box];")
	fmt.Fprintln(bw, "\thead [shape=plaintext];")
	fmt.Fprintln(bw, "\tnil [shape=point];")

	count := 0
	previous := "head"
	it := list.Iter()
	for value, ok := it.Next(); ok; value, ok = it.Next() {
		name := "n" + strconv.Itoa(count)
		fmt.Fprintf(bw, "\t%s [label=\"%d\"];\n", name, value)

		label := "next"
		if count == 0 {
			label = ""
		}

		fmt.Fprintf(bw, "\t%s -> %s [label=%q];\n", previous, name, label)

		previous = name
		count++
	}

	label := "next"
	if count == 0 {
		label = ""
	}

	fmt.Fprintf(bw, "\t%s -> nil [label=%q];\n", previous, label)
	fmt.Fprint(bw, "}")

	return count, bw.Flush()
}

func New(format Format) (Printer, error) {
	switch format {
	case FormatText:
		return textPrinter{}, nil
	case FormatJSON:
		return jsonPrinter{}, nil
	case FormatDot:
		return dotPrinter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
