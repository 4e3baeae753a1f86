package beans

import (
	"time"

	"github.com/bft-labs/redmine/pkg/codec"
)

// Project is a Redmine project.
type Project struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Identifier  string    `json:"identifier"`
	Description string    `json:"description,omitempty"`
	Homepage    string    `json:"homepage,omitempty"`
	ParentID    int       `json:"parent_id,omitempty"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}

func (p Project) GetID() int { return p.ID }

// WriteProject emits the fields a client may set. Timestamps are managed by
// the server and never written; id is written only once assigned.
func WriteProject(w *codec.FieldWriter, p Project) error {
	w.IntIfSet("id", p.ID)
	w.String("name", p.Name)
	w.StringIfSet("identifier", p.Identifier)
	w.StringIfSet("description", p.Description)
	w.StringIfSet("homepage", p.Homepage)
	w.IntIfSet("parent_id", p.ParentID)
	return nil
}

// ParseProject reads a project object. id and name are required.
func ParseProject(obj codec.Object) (Project, error) {
	var p Project
	var err error

	if p.ID, err = obj.Int("id"); err != nil {
		return Project{}, err
	}
	if p.Name, err = obj.String("name"); err != nil {
		return Project{}, err
	}
	if p.Identifier, err = obj.StringOrEmpty("identifier"); err != nil {
		return Project{}, err
	}
	if p.Description, err = obj.StringOrEmpty("description"); err != nil {
		return Project{}, err
	}
	if p.Homepage, err = obj.StringOrEmpty("homepage"); err != nil {
		return Project{}, err
	}
	if p.ParentID, err = obj.RefID("parent"); err != nil {
		return Project{}, err
	}
	if p.CreatedOn, err = obj.TimeOrZero("created_on"); err != nil {
		return Project{}, err
	}
	if p.UpdatedOn, err = obj.TimeOrZero("updated_on"); err != nil {
		return Project{}, err
	}
	return p, nil
}
