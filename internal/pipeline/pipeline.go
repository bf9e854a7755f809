// Package pipeline wires the line reconstruction stages together:
// classify/clean -> join -> parse -> name repair -> tail stitch.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kaiyo-foods/receiptlines/constants"
	"github.com/kaiyo-foods/receiptlines/internal/alias"
	"github.com/kaiyo-foods/receiptlines/internal/entity"
	"github.com/kaiyo-foods/receiptlines/internal/lineclean"
	"github.com/kaiyo-foods/receiptlines/internal/normalize"
	"github.com/kaiyo-foods/receiptlines/internal/parse"
	"github.com/kaiyo-foods/receiptlines/internal/rules"
	"github.com/kaiyo-foods/receiptlines/internal/stitch"
)

// Pipeline processes one receipt at a time. All fields are read-only after
// construction, so a single Pipeline may serve concurrent callers; per-run
// state lives on the stack of Run.
type Pipeline struct {
	Logger  *slog.Logger
	Aliases *alias.Table
	Rules   *rules.Registry
	Parser  parse.LineParser
}

func New(logger *slog.Logger, aliases *alias.Table, reg *rules.Registry, parser parse.LineParser) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if reg == nil {
		reg = rules.DefaultRegistry()
	}
	if parser == nil {
		parser = parse.NewItemLineParser()
	}
	return &Pipeline{Logger: logger, Aliases: aliases, Rules: reg, Parser: parser}
}

// Result is the per-receipt output: the reconstructed line sequence and the
// repaired item records, in document order.
type Result struct {
	ReceiptID    uuid.UUID
	Vendor       constants.Vendor
	CleanedLines []string
	Items        []*entity.ItemRecord
}

// Run reconstructs and repairs one receipt. A failure affects only this
// receipt; batch callers loop and collect.
func (p *Pipeline) Run(ctx context.Context, rec entity.Receipt) (Result, error) {
	id := rec.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	p.Logger.Info("pipeline.start",
		"receipt_id", id, "vendor", rec.Vendor, "raw_lines", len(rec.Lines),
	)

	cleaner := lineclean.NewCleaner(p.Rules.ForVendor(rec.Vendor))
	cleaned := cleaner.CleanLines(rec.Lines)

	items := make([]*entity.ItemRecord, 0, len(cleaned))
	for _, line := range cleaned {
		it, ok := p.Parser.ParseLine(line)
		if !ok {
			p.Logger.Debug("pipeline.line.unparsed", "receipt_id", id, "line", line)
			continue
		}
		p.repairNames(it)
		items = append(items, it)
	}

	items = stitch.StitchTails(items, rec.Vendor)

	p.Logger.Info("pipeline.ok",
		"receipt_id", id, "vendor", rec.Vendor,
		"cleaned_lines", len(cleaned), "items", len(items),
	)
	return Result{
		ReceiptID:    id,
		Vendor:       rec.Vendor,
		CleanedLines: cleaned,
		Items:        items,
	}, nil
}

// repairNames resolves aliases over the best raw name and sets the
// canonical (whitespace-folded, CJK kept) form.
func (p *Pipeline) repairNames(it *entity.ItemRecord) {
	raw := it.DisplayName
	if raw == "" {
		raw = it.ProductName
	}
	it.RawName = raw
	it.CanonicalName = normalize.FoldWhitespace(p.Aliases.Resolve(raw))
}
