package listbuilder

import (
	"fmt"
	"io"

	"github.com/lueurxax/linked-list/internal/log"
	"github.com/lueurxax/linked-list/internal/singlell"
)

const (
	countPrompt = "Enter count: "
	dataPrompt  = "Enter data: "
)

type Builder interface {
	Build() (singlell.SingleLL[int64], error)
}

type builder struct {
	reader  intReader
	prompts io.Writer
	metrics metrics

	log log.Logger
}

// Build reads the count and then count values, prepending each one.
// A count of zero or less yields an empty list.
func (b *builder) Build() (singlell.SingleLL[int64], error) {
	if err := b.prompt(countPrompt); err != nil {
		return nil, err
	}

	count, err := b.reader.ReadInt()
	if err != nil {
		return nil, fmt.Errorf("read count: %w", err)
	}

	b.log.WithField("count", count).Debug("count read")

	list := singlell.New[int64]()
	for i := int64(0); i < count; i++ {
		if err = b.prompt(dataPrompt); err != nil {
			return nil, err
		}

		value, err := b.reader.ReadInt()
		if err != nil {
			return nil, fmt.Errorf("read value %d of %d: %w", i+1, count, err)
		}

		list.Push(value)
		b.metrics.NodeInserted()
		b.log.Debugf("node %d inserted: %d", i+1, value)
	}

	b.metrics.ListBuilt(list.Len())
	b.log.WithField("length", list.Len()).Debug("list built")

	return list, nil
}

func (b *builder) prompt(text string) error {
	if _, err := io.WriteString(b.prompts, text); err != nil {
		return fmt.Errorf("write prompt: %w", err)
	}

	return nil
}

// NewBuilder returns a Builder that writes prompts to prompts before each read.
// Pass io.Discard to build silently.
func NewBuilder(reader intReader, prompts io.Writer, metrics metrics, logger log.Logger) Builder {
	return &builder{reader: reader, prompts: prompts, metrics: metrics, log: logger}
}
