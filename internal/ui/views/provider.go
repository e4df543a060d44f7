package views

import (
	"vault/internal/models"
	"vault/internal/services"
	"vault/internal/ui/widgets"
)

type providerList struct {
	svc services.ProviderServicer
}

// NewProviderList lists providers ordered by name.
func NewProviderList(svc services.ProviderServicer) ListStrategy {
	return &providerList{svc: svc}
}

func (l *providerList) Title() string { return "Providers" }

func (l *providerList) Columns() []widgets.Column {
	return []widgets.Column{
		{Key: "id", Type: widgets.Int, Align: widgets.AlignRight, Width: 6},
		{Key: "name", Align: widgets.AlignLeft, Width: 30, SortAsc: widgets.Asc},
		{Key: "description", Align: widgets.AlignLeft, Width: 40, Stretch: true},
	}
}

func (l *providerList) Rows() ([]widgets.Row, error) {
	providers, err := l.svc.ListProviders()
	if err != nil {
		return nil, err
	}
	rows := make([]widgets.Row, len(providers))
	for i, p := range providers {
		rows[i] = widgets.Row{Values: map[string]string{
			"id":          formatID(p.ID),
			"name":        p.Name,
			"description": p.Description,
		}}
	}
	return rows, nil
}

func (l *providerList) NewForm() (FormStrategy, error) {
	return &providerForm{svc: l.svc}, nil
}

func (l *providerList) EditForm(id uint) (FormStrategy, error) {
	p, err := l.svc.GetProviderByID(id)
	if err != nil {
		return nil, err
	}
	return &providerForm{svc: l.svc, current: p}, nil
}

func (l *providerList) Delete(ids []uint) (int64, error) {
	return l.svc.DeleteProviders(ids)
}

type providerForm struct {
	svc     services.ProviderServicer
	current *models.Provider
}

func (f *providerForm) Title() string {
	if f.current != nil {
		return "Edit Provider"
	}
	return "New Provider"
}

func (f *providerForm) Fields() []Field {
	var p models.Provider
	var fields []Field
	if f.current != nil {
		p = *f.current
		fields = append(fields, idField(p.ID))
	}
	return append(fields,
		textField("name", "Name", p.Name),
		textField("description", "Description", p.Description),
	)
}

func (f *providerForm) Accept(v Values) error {
	in := services.ProviderInput{
		Name:        v.Text("name"),
		Description: v.Text("description"),
	}
	if f.current == nil {
		_, err := f.svc.CreateProvider(in)
		return err
	}
	_, err := f.svc.UpdateProvider(f.current.ID, in)
	return err
}
