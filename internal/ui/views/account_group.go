package views

import (
	"vault/internal/models"
	"vault/internal/services"
)

type accountGroupForm struct {
	svc     services.AccountGroupServicer
	current *models.AccountGroup
	fields  []Field
}

// newAccountGroupForm builds the group dialog. The parent selector offers
// every group except the edited one and its subgroups, plus <Empty> for a
// root group.
func newAccountGroupForm(svc services.AccountGroupServicer, current *models.AccountGroup) (*accountGroupForm, error) {
	f := &accountGroupForm{svc: svc, current: current}

	var g models.AccountGroup
	if current != nil {
		g = *current
		f.fields = append(f.fields, idField(g.ID))
	}
	var parentID uint
	if g.ParentID != nil {
		parentID = *g.ParentID
	}
	parent, err := selectField("parent", "Parent", func() ([]services.Choice, error) {
		return svc.ParentChoices(g.ID)
	}, true, parentID)
	if err != nil {
		return nil, err
	}
	f.fields = append(f.fields,
		parent,
		textField("name", "Name", g.Name),
		textField("description", "Description", g.Description),
	)
	return f, nil
}

func (f *accountGroupForm) Title() string {
	if f.current != nil {
		return "Edit Account Group"
	}
	return "New Account Group"
}

func (f *accountGroupForm) Fields() []Field { return f.fields }

func (f *accountGroupForm) Accept(v Values) error {
	in := services.AccountGroupInput{
		Name:        v.Text("name"),
		Description: v.Text("description"),
	}
	if id, ok := v.Key("parent"); ok {
		in.ParentID = &id
	}
	if f.current == nil {
		_, err := f.svc.CreateAccountGroup(in)
		return err
	}
	_, err := f.svc.UpdateAccountGroup(f.current.ID, in)
	return err
}
