package blocks

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

/*
	Block ordering engine
	---------------------
	- Owns create / update-content / reorder / delete for a page's blocks.
	- Content is replaced wholesale on update; callers merge beforehand.
	- Reorder is all-or-nothing: the submitted id set must exactly match the
	  page's current blocks, and each id's new sort index is its position in
	  the submitted sequence.
	- Delete never renumbers; gaps are fine, only relative order matters and
	  the next reorder renumbers fully.
	- Reads are NOT sorted here as a side channel. Consumers must order by
	  sort index themselves (the query layer does `Order("sort_index ASC")`).

	IMPORTANT: pass db in, do NOT import linkpage-app/database here (avoids
	import cycle and keeps the engine testable).
*/

// Create validates the type and the declared-minimum content shape, then
// inserts the block at the caller-supplied sort index (typically the current
// block count of the page).
func Create(db *gorm.DB, pageID, blockType string, content json.RawMessage, sortIndex int) (*Block, error) {
	if !KnownType(blockType) {
		return nil, validationErrorf("unknown block type %q", blockType)
	}
	if err := ValidateContent(blockType, content); err != nil {
		return nil, err
	}
	if sortIndex < 0 {
		return nil, validationErrorf("order must be non-negative")
	}
	if len(content) == 0 {
		content = json.RawMessage(`{}`)
	}

	b := Block{
		PageID:    pageID,
		Type:      blockType,
		Content:   content,
		SortIndex: sortIndex,
	}
	if err := db.Create(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateContent replaces the block's content wholesale after revalidating it
// against the block's type. Order is untouched.
func UpdateContent(db *gorm.DB, blockID string, content json.RawMessage) (*Block, error) {
	var b Block
	if err := db.First(&b, "id = ?", blockID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := ValidateContent(b.Type, content); err != nil {
		return nil, err
	}

	if err := db.Model(&Block{}).
		Where("id = ?", blockID).
		Update("content", content).Error; err != nil {
		return nil, err
	}

	b.Content = content
	return &b, nil
}

// Reorder assigns each block the sort index of its position in orderedIDs.
// The id set must exactly match the page's current blocks; on any mismatch
// nothing is written and the prior order stands. Two concurrent reorders
// resolve last-write-wins; callers refetch after a failure.
func Reorder(db *gorm.DB, pageID string, orderedIDs []string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var currentIDs []string
		if err := tx.Model(&Block{}).
			Where("page_id = ?", pageID).
			Pluck("id", &currentIDs).Error; err != nil {
			return err
		}

		plan, err := reorderPlan(currentIDs, orderedIDs)
		if err != nil {
			return err
		}

		for _, a := range plan {
			if err := tx.Model(&Block{}).
				Where("id = ? AND page_id = ?", a.ID, pageID).
				Update("sort_index", a.SortIndex).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// orderAssignment pairs a block id with the sort index a reorder gives it.
type orderAssignment struct {
	ID        string
	SortIndex int
}

// reorderPlan validates proposed against the page's current id set and
// returns each id's new sort index: its position in the submitted sequence.
// A mismatch yields no plan at all, so nothing is ever partially applied.
func reorderPlan(currentIDs, proposed []string) ([]orderAssignment, error) {
	if err := checkReorderSet(currentIDs, proposed); err != nil {
		return nil, err
	}
	plan := make([]orderAssignment, len(proposed))
	for i, id := range proposed {
		plan[i] = orderAssignment{ID: id, SortIndex: i}
	}
	return plan, nil
}

// Delete removes the block. Remaining blocks keep their sort indexes.
func Delete(db *gorm.DB, blockID string) error {
	res := db.Delete(&Block{}, "id = ?", blockID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// checkReorderSet verifies that proposed is a permutation of current.
// Partial reorders would silently desync the order integers, so the whole
// final ordering is required.
func checkReorderSet(current, proposed []string) error {
	if len(proposed) != len(current) {
		return validationErrorf("reorder must include all %d blocks of the page, got %d", len(current), len(proposed))
	}

	seen := make(map[string]bool, len(current))
	for _, id := range current {
		seen[id] = true
	}
	dup := make(map[string]bool, len(proposed))
	for _, id := range proposed {
		if !seen[id] {
			return validationErrorf("block %s does not belong to the page", id)
		}
		if dup[id] {
			return validationErrorf("block %s appears twice in the ordering", id)
		}
		dup[id] = true
	}
	return nil
}
