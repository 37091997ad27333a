package service

import (
	"github.com/reshetovitsme/group-guard-bot/internal/modules/lock/domain"
	"github.com/samber/lo"
)

// Evaluate decides what happens to a message. Exempt senders are always
// allowed. Otherwise every content kind of the message is mapped to its
// category and the message is deleted if any of them is locked.
func Evaluate(event domain.ContentEvent, cfg domain.LockConfig, exempt bool) domain.Verdict {
	if exempt {
		return domain.Verdict{Disposition: domain.DispositionAllow}
	}

	matched := lo.Uniq(lo.FilterMap(event.Kinds, func(kind domain.ContentKind, _ int) (domain.Category, bool) {
		cat, ok := domain.CategoryFor(kind)
		return cat, ok && cfg.IsLocked(cat)
	}))
	if len(matched) == 0 {
		return domain.Verdict{Disposition: domain.DispositionAllow}
	}
	return domain.Verdict{Disposition: domain.DispositionDelete, Matched: matched}
}

// Guarded reports the categories that could affect the event at all, locked
// or not. An event with none of them never needs a permission lookup.
func Guarded(event domain.ContentEvent) []domain.Category {
	return lo.Uniq(lo.FilterMap(event.Kinds, func(kind domain.ContentKind, _ int) (domain.Category, bool) {
		return domain.CategoryFor(kind)
	}))
}
