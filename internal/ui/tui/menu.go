package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"vault/internal/logger"
	"vault/internal/ui/views"
)

// MenuItem is an entry of the menu bar or of one of its dropdowns. An item
// with Items opens a submenu; an item without Run only logs its selection.
type MenuItem struct {
	Label string
	Items []MenuItem
	Run   func(m *Model) tea.Cmd
}

func stub(label string) MenuItem {
	return MenuItem{Label: label}
}

func table(label string, build func(s *views.Services) views.ListStrategy) MenuItem {
	return MenuItem{Label: label, Run: func(m *Model) tea.Cmd {
		m.openTable(build(m.svc))
		return nil
	}}
}

func (m *Model) menuBar() []MenuItem {
	return []MenuItem{
		{Label: "File", Items: []MenuItem{
			{Label: "Import", Items: []MenuItem{
				stub("Import Santander CreditCard Summary"),
				stub("Import Santander Account Summary"),
			}},
			{Label: "Export", Items: []MenuItem{
				stub("Export Transactions"),
			}},
			{Label: "Quit", Run: func(m *Model) tea.Cmd {
				m.closeAll()
				return tea.Quit
			}},
		}},
		{Label: "Edit", Items: []MenuItem{
			stub("Preferences"),
		}},
		{Label: "Actions", Items: []MenuItem{
			stub("Add Account"),
			stub("Scheduled Transactions"),
		}},
		{Label: "Tables", Items: []MenuItem{
			table("Chart of Accounts", func(s *views.Services) views.ListStrategy { return views.NewChartOfAccounts(s) }),
			table("Account Types", func(s *views.Services) views.ListStrategy { return views.NewAccountTypeList(s.AccountTypes) }),
			table("Providers", func(s *views.Services) views.ListStrategy { return views.NewProviderList(s.Providers) }),
			table("Currencies", func(s *views.Services) views.ListStrategy { return views.NewCurrencyList(s.Currencies) }),
			table("Account Overdrafts", views.NewOverdraftList),
			table("Transactions", views.NewTransactionList),
			stub("Credit Cards"),
			stub("Credit Card Summaries"),
		}},
		{Label: "Reports", Items: []MenuItem{
			{Label: "Financial Statements", Items: []MenuItem{
				stub("Balance Sheet"),
				stub("Income Statement"),
				stub("Cash Flow"),
				stub("Net Worth"),
			}},
			{Label: "Investments", Items: []MenuItem{
				stub("Investment Performance"),
			}},
			{Label: "Forecast", Items: []MenuItem{
				stub("Inflation"),
				stub("Budgets"),
			}},
		}},
		{Label: "Investments", Items: []MenuItem{
			stub("Cryptocurrencies"),
			stub("Fixed Term Deposits"),
			stub("Stocks"),
			stub("Bonds"),
			stub("Mutual Funds"),
			stub("ETFs"),
		}},
		{Label: "Tools", Items: []MenuItem{
			stub("Budgets"),
			stub("Currency Exchange"),
			stub("Loan Calculator"),
		}},
		{Label: "About", Run: func(m *Model) tea.Cmd {
			m.openAbout()
			return nil
		}},
	}
}

// menuLevel returns the items shown at level of the open menu path. Level 0
// is the bar itself.
func (m *Model) menuLevel(level int) []MenuItem {
	items := m.menu
	for i := 0; i < level; i++ {
		items = items[m.path[i]].Items
	}
	return items
}

// currentItem is the highlighted item of the deepest open level, or the bar
// entry itself when it has no dropdown.
func (m *Model) currentItem() MenuItem {
	level := len(m.path) - 1
	items := m.menuLevel(level)
	if len(items) == 0 {
		return m.menu[m.path[0]]
	}
	return items[m.path[level]]
}

func (m *Model) openMenu() {
	m.path = []int{0, 0}
}

func (m *Model) closeMenu() {
	m.path = nil
}

func (m *Model) switchTop(delta int) {
	n := len(m.menu)
	m.path = []int{((m.path[0]+delta)%n + n) % n, 0}
}

func (m *Model) menuKey(key string) tea.Cmd {
	level := len(m.path) - 1
	items := m.menuLevel(level)

	switch key {
	case "esc":
		if len(m.path) > 2 {
			m.path = m.path[:len(m.path)-1]
		} else {
			m.closeMenu()
		}
	case "left":
		if len(m.path) > 2 {
			m.path = m.path[:len(m.path)-1]
		} else {
			m.switchTop(-1)
		}
	case "right":
		if item := m.currentItem(); len(items) > 0 && len(item.Items) > 0 {
			m.path = append(m.path, 0)
		} else {
			m.switchTop(1)
		}
	case "up", "k":
		if n := len(items); n > 0 {
			m.path[level] = (m.path[level] - 1 + n) % n
		}
	case "down", "j":
		if n := len(items); n > 0 {
			m.path[level] = (m.path[level] + 1) % n
		}
	case "enter":
		item := m.currentItem()
		if len(items) > 0 && len(item.Items) > 0 {
			m.path = append(m.path, 0)
			return nil
		}
		m.closeMenu()
		return m.activate(item)
	}
	return nil
}

func (m *Model) activate(item MenuItem) tea.Cmd {
	if item.Run == nil {
		logger.Get().Debugf("Selected Menu %s", item.Label)
		return nil
	}
	return item.Run(m)
}
