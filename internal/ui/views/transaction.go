package views

import (
	"time"

	"vault/internal/models"
	"vault/internal/services"
	"vault/internal/ui/widgets"
)

const (
	arrowUp   = "▲"
	arrowDown = "▼"
)

type transactionList struct {
	s *Services
}

// NewTransactionList lists transactions, newest first.
func NewTransactionList(s *Services) ListStrategy {
	return &transactionList{s: s}
}

func (l *transactionList) Title() string { return "Transactions" }

func (l *transactionList) Columns() []widgets.Column {
	cols := []widgets.Column{
		{Key: "id", Type: widgets.Int, Align: widgets.AlignRight, Width: 6},
		{Key: "timestamp", Align: widgets.AlignLeft, Width: 19, SortAsc: widgets.Desc},
		{Key: "description", Align: widgets.AlignLeft, Width: 30, Stretch: true},
		{Key: "installments", Title: "Cuotas", Align: widgets.AlignCenter, Width: 7},
	}
	for _, side := range []string{"debit", "credit"} {
		cols = append(cols,
			widgets.Column{Key: side + "_account", Align: widgets.AlignLeft, Width: 30},
			widgets.Column{Key: side + "_currency", Title: "Code", Align: widgets.AlignCenter, Width: 6},
			widgets.Column{Key: side + "_amount", Title: "Amount", Type: widgets.Decimal, Align: widgets.AlignRight, Width: 14},
		)
	}
	return cols
}

func (l *transactionList) Rows() ([]widgets.Row, error) {
	txns, err := l.s.Transactions.ListTransactions()
	if err != nil {
		return nil, err
	}
	forest, err := l.s.AccountGroups.Chart()
	if err != nil {
		return nil, err
	}

	currency := func(id uint) string {
		a, _ := forest.Account(id)
		return a.Currency.Code
	}
	rows := make([]widgets.Row, len(txns))
	for i, t := range txns {
		rows[i] = widgets.Row{Values: map[string]string{
			"id":              formatID(t.ID),
			"timestamp":       formatLocal(t.Timestamp, l.s.Location),
			"description":     t.Description,
			"installments":    formatInstallments(t.InstallmentNumber, t.InstallmentTotal),
			"debit_account":   forest.AccountAlias(t.DebitAccountID),
			"debit_currency":  currency(t.DebitAccountID),
			"debit_amount":    formatAmount(t.DebitAmount),
			"credit_account":  forest.AccountAlias(t.CreditAccountID),
			"credit_currency": currency(t.CreditAccountID),
			"credit_amount":   formatAmount(t.CreditAmount),
		}}
	}
	return rows, nil
}

func (l *transactionList) NewForm() (FormStrategy, error) {
	return newTransactionForm(l.s, nil)
}

func (l *transactionList) EditForm(id uint) (FormStrategy, error) {
	t, err := l.s.Transactions.GetTransactionByID(id)
	if err != nil {
		return nil, err
	}
	return newTransactionForm(l.s, t)
}

func (l *transactionList) Delete(ids []uint) (int64, error) {
	return l.s.Transactions.DeleteTransactions(ids)
}

type transactionForm struct {
	s       *Services
	current *models.Transaction
	fields  []Field

	debitAmount  *widgets.DecimalEntry
	creditAmount *widgets.DecimalEntry
}

func newTransactionForm(s *Services, current *models.Transaction) (*transactionForm, error) {
	f := &transactionForm{
		s:            s,
		current:      current,
		debitAmount:  widgets.NewDecimalEntry(""),
		creditAmount: widgets.NewDecimalEntry(""),
	}

	t := models.Transaction{Timestamp: time.Now().UTC(), InstallmentNumber: 1, InstallmentTotal: 1}
	if current != nil {
		t = *current
		f.debitAmount.SetDecimal(t.DebitAmount)
		f.creditAmount.SetDecimal(t.CreditAmount)
		f.fields = append(f.fields, idField(t.ID))
	}

	debit, err := f.accountField("debit_account", "Debit Account", models.NormalSideDebit, t.DebitAccountID)
	if err != nil {
		return nil, err
	}
	credit, err := f.accountField("credit_account", "Credit Account", models.NormalSideCredit, t.CreditAccountID)
	if err != nil {
		return nil, err
	}

	one, most := 1, 99
	f.fields = append(f.fields,
		datetimeField("timestamp", "Timestamp", s.Location, &t.Timestamp),
		textField("description", "Description", t.Description),
		Field{Key: "installment_number", Label: "Installment", Entry: widgets.NewIntEntry(formatInt(int64(t.InstallmentNumber)), &one, &most, 2)},
		Field{Key: "installment_total", Label: "Of", Entry: widgets.NewIntEntry(formatInt(int64(t.InstallmentTotal)), &one, &most, 2)},
		textField("debit_reference", "Debit Reference", t.DebitReference),
		debit,
		Field{Key: "debit_amount", Label: "Debit Amount", Entry: f.debitAmount},
		textField("credit_reference", "Credit Reference", t.CreditReference),
		credit,
		Field{Key: "credit_amount", Label: "Credit Amount", Entry: f.creditAmount},
	)
	if current != nil {
		f.fields = append(f.fields, Field{Key: "is_reconciled", Label: "Reconciled", Entry: widgets.NewCheckEntry(t.IsReconciled)})
	}
	for _, fl := range f.fields {
		if e, ok := fl.Entry.(*widgets.IntEntry); ok {
			e.Blur()
		}
	}
	return f, nil
}

// accountField builds an account selector whose hint shows the account's
// currency and whether posting on side raises or lowers its balance.
func (f *transactionForm) accountField(key, label string, side models.NormalSide, selected uint) (Field, error) {
	field, err := selectField(key, label, f.s.Accounts.AccountChoices, false, selected)
	if err != nil {
		return Field{}, err
	}
	field.Hint = selectedHint(field.Select, func(id uint) (string, error) {
		a, err := f.s.Accounts.GetAccountByID(id)
		if err != nil {
			return "", err
		}
		return a.Currency.Code + " " + changeArrow(a.AccountType, side), nil
	})
	return field, nil
}

// changeArrow tells whether posting on side increases an account of type t.
func changeArrow(t models.AccountType, side models.NormalSide) string {
	if t.Increases(side) {
		return arrowUp
	}
	return arrowDown
}

func (f *transactionForm) Title() string {
	if f.current != nil {
		return "Edit Transaction"
	}
	return "New Transaction"
}

func (f *transactionForm) Fields() []Field { return f.fields }

// FieldChanged copies an edited amount to the other leg.
func (f *transactionForm) FieldChanged(key string, _ Values) {
	switch key {
	case "debit_amount":
		f.creditAmount.SetText(f.debitAmount.Text())
	case "credit_amount":
		f.debitAmount.SetText(f.creditAmount.Text())
	}
}

func (f *transactionForm) Accept(v Values) error {
	ts, err := requiredTime(v, "timestamp", "Timestamp")
	if err != nil {
		return err
	}
	number, ok := v.Int("installment_number")
	if !ok {
		return invalid("Installment Number")
	}
	total, ok := v.Int("installment_total")
	if !ok {
		return invalid("Installment Total")
	}
	debitID, err := requiredKey(v, "debit_account", "Debit Account")
	if err != nil {
		return err
	}
	creditID, err := requiredKey(v, "credit_account", "Credit Account")
	if err != nil {
		return err
	}
	debit, err := requiredDecimal(v, "debit_amount", "Debit Amount")
	if err != nil {
		return err
	}
	credit, err := requiredDecimal(v, "credit_amount", "Credit Amount")
	if err != nil {
		return err
	}

	in := services.TransactionInput{
		Timestamp:         ts,
		Description:       v.Text("description"),
		InstallmentNumber: number,
		InstallmentTotal:  total,
		DebitReference:    v.Text("debit_reference"),
		DebitAccountID:    debitID,
		DebitAmount:       debit,
		CreditReference:   v.Text("credit_reference"),
		CreditAccountID:   creditID,
		CreditAmount:      credit,
		IsReconciled:      v.Bool("is_reconciled"),
	}
	if f.current == nil {
		_, err = f.s.Transactions.CreateTransaction(in)
		return err
	}
	_, err = f.s.Transactions.UpdateTransaction(f.current.ID, in)
	return err
}

