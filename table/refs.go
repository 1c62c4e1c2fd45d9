package table

import (
	"encoding/json"

	"github.com/waifairer/iceberg/pkg/errors"
)

// MainBranch is the distinguished branch tracking current-snapshot-id
const MainBranch = "main"

// RefType distinguishes branch references from tag references
type RefType string

const (
	BranchRef RefType = "branch"
	TagRef    RefType = "tag"
)

// SnapshotRef is a named pointer to a snapshot id
type SnapshotRef struct {
	SnapshotID int64   `json:"snapshot-id"`
	Type       RefType `json:"type"`
}

func (r *SnapshotRef) UnmarshalJSON(b []byte) error {
	type rawRef SnapshotRef
	var raw rawRef
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.Type != BranchRef && raw.Type != TagRef {
		return errors.Newf(MalformedDocument, "invalid snapshot ref type %q", raw.Type).
			AddContext("field", "refs")
	}
	*r = SnapshotRef(raw)
	return nil
}

// newMainRef builds the implicit main-branch reference for a current snapshot
func newMainRef(snapshotID int64) SnapshotRef {
	return SnapshotRef{SnapshotID: snapshotID, Type: BranchRef}
}
