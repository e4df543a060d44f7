package views

import (
	"vault/internal/models"
	"vault/internal/services"
	"vault/internal/ui/widgets"
)

type accountTypeList struct {
	svc services.AccountTypeServicer
}

// NewAccountTypeList lists account types ordered by name.
func NewAccountTypeList(svc services.AccountTypeServicer) ListStrategy {
	return &accountTypeList{svc: svc}
}

func (l *accountTypeList) Title() string { return "Account Types" }

func (l *accountTypeList) Columns() []widgets.Column {
	return []widgets.Column{
		{Key: "id", Type: widgets.Int, Align: widgets.AlignRight, Width: 6},
		{Key: "name", Align: widgets.AlignLeft, Width: 30, SortAsc: widgets.Asc, Stretch: true},
		{Key: "normal_side", Align: widgets.AlignCenter, Width: 12},
	}
}

func (l *accountTypeList) Rows() ([]widgets.Row, error) {
	types, err := l.svc.ListAccountTypes()
	if err != nil {
		return nil, err
	}
	rows := make([]widgets.Row, len(types))
	for i, t := range types {
		rows[i] = widgets.Row{Values: map[string]string{
			"id":          formatID(t.ID),
			"name":        t.Name,
			"normal_side": string(t.NormalSide),
		}}
	}
	return rows, nil
}

func (l *accountTypeList) NewForm() (FormStrategy, error) {
	return &accountTypeForm{svc: l.svc}, nil
}

func (l *accountTypeList) EditForm(id uint) (FormStrategy, error) {
	t, err := l.svc.GetAccountTypeByID(id)
	if err != nil {
		return nil, err
	}
	return &accountTypeForm{svc: l.svc, current: t}, nil
}

func (l *accountTypeList) Delete(ids []uint) (int64, error) {
	return l.svc.DeleteAccountTypes(ids)
}

type accountTypeForm struct {
	svc     services.AccountTypeServicer
	current *models.AccountType
}

func (f *accountTypeForm) Title() string {
	if f.current != nil {
		return "Edit Account Type"
	}
	return "New Account Type"
}

// sideOptions offers both normal sides. The keys only tell them apart.
func sideOptions() ([]widgets.Option, error) {
	return []widgets.Option{
		{Key: 1, Label: string(models.NormalSideDebit)},
		{Key: 2, Label: string(models.NormalSideCredit)},
	}, nil
}

func (f *accountTypeForm) Fields() []Field {
	side, _ := widgets.NewSelector(sideOptions, false)

	var t models.AccountType
	var fields []Field
	if f.current != nil {
		t = *f.current
		fields = append(fields, idField(t.ID))
		side.SetLabel(string(t.NormalSide))
	}
	return append(fields,
		textField("name", "Name", t.Name),
		Field{Key: "normal_side", Label: "Normal Side", Select: side},
	)
}

func (f *accountTypeForm) Accept(v Values) error {
	in := services.AccountTypeInput{
		Name:       v.Text("name"),
		NormalSide: models.NormalSide(v.Label("normal_side")),
	}
	if f.current == nil {
		_, err := f.svc.CreateAccountType(in)
		return err
	}
	_, err := f.svc.UpdateAccountType(f.current.ID, in)
	return err
}
