package dedup

import (
	"context"

	"github.com/google/uuid"

	"github.com/daydreamers/ops-backend/internal/entity"
)

// RefLister enumerates external order references for a platform so a batch
// sweep can revisit each one. Implemented by the transaction repository.
type RefLister interface {
	ListOrderRefs(ctx context.Context, platform string) ([]string, error)
}

// SweepSummary is the structured result of a whole-platform pass. A single
// bad record errors its own entry, never the batch.
type SweepSummary struct {
	Processed int
	Collapsed int
	Deleted   int
	Errored   int
}

// Sweep runs MergeDuplicates over every known order reference on a platform.
func (e *Engine) Sweep(ctx context.Context, lister RefLister, platform string) (SweepSummary, error) {
	refs, err := lister.ListOrderRefs(ctx, platform)
	if err != nil {
		return SweepSummary{}, err
	}
	var sum SweepSummary
	for _, ref := range refs {
		_, s, err := e.MergeDuplicates(ctx, ref, platform)
		sum.Processed++
		if err != nil {
			sum.Errored++
			e.logger.Error("dedupe.sweep.entry_failed", "order_id", ref, "platform", platform, "error", err)
			continue
		}
		if s.Deleted > 0 {
			sum.Collapsed++
			sum.Deleted += s.Deleted
		}
	}
	e.logger.Info("dedupe.sweep.done",
		"platform", platform,
		"processed", sum.Processed, "collapsed", sum.Collapsed,
		"deleted", sum.Deleted, "errored", sum.Errored,
	)
	return sum, nil
}

// MergeManualDuplicates applies the date+amount heuristic for manual-source
// rows, which carry no external order id. Two legitimate same-day same-amount
// purchases will conflate under this rule; the books have always behaved this
// way and operator review covers the residue.
func (e *Engine) MergeManualDuplicates(ctx context.Context, tx *entity.Transaction) (*entity.Transaction, Summary, error) {
	matches, err := e.store.FindManualByDateAmount(ctx, tx)
	if err != nil {
		return nil, Summary{}, err
	}
	sum := Summary{Matched: len(matches)}
	if len(matches) <= 1 {
		if len(matches) == 1 {
			return matches[0], sum, nil
		}
		return tx, sum, nil
	}

	survivor, rest := SelectSurvivor(matches)
	sum.Merged = MergeInto(survivor, rest)
	if err := e.store.Update(ctx, survivor); err != nil {
		return nil, sum, err
	}
	ids := make([]uuid.UUID, 0, len(rest))
	for _, dup := range rest {
		ids = append(ids, dup.ID)
	}
	if sum.Deleted, err = e.store.DeleteByIDs(ctx, ids); err != nil {
		return nil, sum, err
	}
	e.logger.Info("dedupe.manual.ok",
		"date", tx.Date, "amount", tx.Amount,
		"matched", sum.Matched, "deleted", sum.Deleted,
	)
	return survivor, sum, nil
}
