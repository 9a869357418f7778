package app

import (
	"fmt"
	"io"

	"github.com/lueurxax/linked-list/internal/intreader"
	"github.com/lueurxax/linked-list/internal/listbuilder"
	"github.com/lueurxax/linked-list/internal/log"
	"github.com/lueurxax/linked-list/internal/metrics"
	"github.com/lueurxax/linked-list/internal/printer"
)

const pkgKey = "pkg"

type App interface {
	// Run builds the list from in and prints it to out. Prompts, when
	// enabled, go to out ahead of each read.
	Run(in io.Reader, out io.Writer) error
}

type app struct {
	printer     printer.Printer
	metrics     metrics.Metrics
	showPrompts bool

	log log.Logger
}

func (a *app) Run(in io.Reader, out io.Writer) error {
	prompts := io.Discard
	if a.showPrompts {
		prompts = out
	}

	list, err := listbuilder.NewBuilder(
		intreader.New(in),
		prompts,
		a.metrics,
		a.log.WithField(pkgKey, "listbuilder"),
	).Build()
	if err != nil {
		return fmt.Errorf("build list: %w", err)
	}

	printed, err := a.printer.Print(out, list)
	a.metrics.ValuesPrinted(printed)
	if err != nil {
		return fmt.Errorf("print list: %w", err)
	}

	a.log.WithField("values", printed).Info("list printed")

	return nil
}

func NewApp(printer printer.Printer, metrics metrics.Metrics, showPrompts bool, logger log.Logger) App {
	return &app{printer: printer, metrics: metrics, showPrompts: showPrompts, log: logger}
}
