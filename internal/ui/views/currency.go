package views

import (
	"vault/internal/models"
	"vault/internal/services"
	"vault/internal/ui/widgets"
)

type currencyList struct {
	svc services.CurrencyServicer
}

// NewCurrencyList lists currencies ordered by code.
func NewCurrencyList(svc services.CurrencyServicer) ListStrategy {
	return &currencyList{svc: svc}
}

func (l *currencyList) Title() string { return "Currencies" }

func (l *currencyList) Columns() []widgets.Column {
	return []widgets.Column{
		{Key: "id", Type: widgets.Int, Align: widgets.AlignRight, Width: 6},
		{Key: "code", Align: widgets.AlignCenter, Width: 6, SortAsc: widgets.Asc},
		{Key: "description", Align: widgets.AlignLeft, Width: 40, Stretch: true},
	}
}

func (l *currencyList) Rows() ([]widgets.Row, error) {
	currencies, err := l.svc.ListCurrencies()
	if err != nil {
		return nil, err
	}
	rows := make([]widgets.Row, len(currencies))
	for i, c := range currencies {
		rows[i] = widgets.Row{Values: map[string]string{
			"id":          formatID(c.ID),
			"code":        c.Code,
			"description": c.Description,
		}}
	}
	return rows, nil
}

func (l *currencyList) NewForm() (FormStrategy, error) {
	return &currencyForm{svc: l.svc}, nil
}

func (l *currencyList) EditForm(id uint) (FormStrategy, error) {
	c, err := l.svc.GetCurrencyByID(id)
	if err != nil {
		return nil, err
	}
	return &currencyForm{svc: l.svc, current: c}, nil
}

func (l *currencyList) Delete(ids []uint) (int64, error) {
	return l.svc.DeleteCurrencies(ids)
}

type currencyForm struct {
	svc     services.CurrencyServicer
	current *models.Currency
}

func (f *currencyForm) Title() string {
	if f.current != nil {
		return "Edit Currency"
	}
	return "New Currency"
}

func (f *currencyForm) Fields() []Field {
	if f.current == nil {
		return []Field{
			textField("code", "Code", ""),
			textField("description", "Description", ""),
		}
	}
	return []Field{
		idField(f.current.ID),
		textField("code", "Code", f.current.Code),
		textField("description", "Description", f.current.Description),
	}
}

func (f *currencyForm) Accept(v Values) error {
	in := services.CurrencyInput{
		Code:        v.Text("code"),
		Description: v.Text("description"),
	}
	if f.current == nil {
		_, err := f.svc.CreateCurrency(in)
		return err
	}
	_, err := f.svc.UpdateCurrency(f.current.ID, in)
	return err
}
