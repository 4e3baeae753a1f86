package beans

import (
	"time"

	"github.com/bft-labs/redmine/pkg/codec"
)

// Issue is a Redmine issue. Related records are kept as ids.
type Issue struct {
	ID           int       `json:"id"`
	ProjectID    int       `json:"project_id"`
	TrackerID    int       `json:"tracker_id,omitempty"`
	StatusID     int       `json:"status_id,omitempty"`
	PriorityID   int       `json:"priority_id,omitempty"`
	AssignedToID int       `json:"assigned_to_id,omitempty"`
	Subject      string    `json:"subject"`
	Description  string    `json:"description,omitempty"`
	DoneRatio    int       `json:"done_ratio"`
	CreatedOn    time.Time `json:"created_on"`
	UpdatedOn    time.Time `json:"updated_on"`
}

func (i Issue) GetID() int { return i.ID }

// WriteIssue emits the writable issue fields using Redmine's *_id form.
func WriteIssue(w *codec.FieldWriter, i Issue) error {
	w.IntIfSet("id", i.ID)
	w.IntIfSet("project_id", i.ProjectID)
	w.IntIfSet("tracker_id", i.TrackerID)
	w.IntIfSet("status_id", i.StatusID)
	w.IntIfSet("priority_id", i.PriorityID)
	w.IntIfSet("assigned_to_id", i.AssignedToID)
	w.String("subject", i.Subject)
	w.StringIfSet("description", i.Description)
	w.Int("done_ratio", i.DoneRatio)
	return nil
}

// ParseIssue reads an issue object. Related records arrive as nested
// references, e.g. "project": {"id": 1, "name": "Demo"}.
func ParseIssue(obj codec.Object) (Issue, error) {
	var i Issue
	var err error

	if i.ID, err = obj.Int("id"); err != nil {
		return Issue{}, err
	}
	if i.Subject, err = obj.String("subject"); err != nil {
		return Issue{}, err
	}
	refs := []struct {
		key string
		dst *int
	}{
		{"project", &i.ProjectID},
		{"tracker", &i.TrackerID},
		{"status", &i.StatusID},
		{"priority", &i.PriorityID},
		{"assigned_to", &i.AssignedToID},
	}
	for _, ref := range refs {
		if *ref.dst, err = obj.RefID(ref.key); err != nil {
			return Issue{}, err
		}
	}
	if i.Description, err = obj.StringOrEmpty("description"); err != nil {
		return Issue{}, err
	}
	if i.DoneRatio, err = obj.IntOrZero("done_ratio"); err != nil {
		return Issue{}, err
	}
	if i.CreatedOn, err = obj.TimeOrZero("created_on"); err != nil {
		return Issue{}, err
	}
	if i.UpdatedOn, err = obj.TimeOrZero("updated_on"); err != nil {
		return Issue{}, err
	}
	return i, nil
}
