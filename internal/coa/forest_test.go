package coa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vault/internal/models"
)

func ptr(id uint) *uint { return &id }

func group(id uint, name string, parent *uint) models.AccountGroup {
	g := models.AccountGroup{Name: name, ParentID: parent}
	g.ID = id
	return g
}

func account(id uint, name string, groupID uint) models.Account {
	a := models.Account{Name: name, AccountGroupID: groupID}
	a.ID = id
	return a
}

// sample:
//
//	Assets(1)
//	  Cash(2)
//	    Pocket(5)
//	  bank(3)
//	liabilities(4)
func sample() *Forest {
	return NewForest(
		[]models.AccountGroup{
			group(4, "liabilities", nil),
			group(2, "Cash", ptr(1)),
			group(1, "Assets", nil),
			group(3, "bank", ptr(1)),
			group(5, "Pocket", ptr(2)),
		},
		[]models.Account{
			account(10, "wallet", 2),
			account(11, "Drawer", 2),
			account(12, "Savings", 1),
			account(13, "checking", 1),
			account(14, "Visa", 4),
		},
	)
}

func TestAlias(t *testing.T) {
	f := NewForest([]models.AccountGroup{group(1, "Assets", nil), group(2, "Cash", ptr(1))}, nil)
	assert.Equal(t, "Assets", f.Alias(1))
	assert.Equal(t, "Assets>Cash", f.Alias(2))
	assert.Equal(t, "", f.Alias(99))
}

func TestAccountAlias(t *testing.T) {
	f := sample()
	assert.Equal(t, "Assets>Cash>wallet", f.AccountAlias(10))
	assert.Equal(t, "liabilities>Visa", f.AccountAlias(14))

	orphan := NewForest(nil, []models.Account{account(1, "Loose", 42)})
	assert.Equal(t, "Loose", orphan.AccountAlias(1))
}

func TestDescendants(t *testing.T) {
	f := sample()
	assert.ElementsMatch(t, []uint{2, 3, 5}, f.Descendants(1))
	assert.ElementsMatch(t, []uint{5}, f.Descendants(2))
	assert.Empty(t, f.Descendants(5))
	assert.Nil(t, f.Descendants(99))
}

func TestParentCandidatesExcludeSelfAndDescendants(t *testing.T) {
	f := sample()

	for _, id := range []uint{1, 2, 3, 4, 5} {
		excluded := map[uint]bool{id: true}
		for _, d := range f.Descendants(id) {
			excluded[d] = true
		}
		for _, c := range f.ParentCandidates(id) {
			assert.Falsef(t, excluded[c.ID], "group %d offered %d (%s) as parent", id, c.ID, c.Alias)
		}
		assert.Len(t, f.ParentCandidates(id), 5-len(excluded))
	}

	got := f.ParentCandidates(2)
	require.Len(t, got, 3)
	assert.Equal(t, []Labeled{{1, "Assets"}, {3, "Assets>bank"}, {4, "liabilities"}}, got)
}

func TestAccountAliasesSorted(t *testing.T) {
	f := sample()
	var aliases []string
	for _, l := range f.AccountAliases() {
		aliases = append(aliases, l.Alias)
	}
	assert.Equal(t, []string{
		"Assets>Cash>Drawer",
		"Assets>Cash>wallet",
		"Assets>checking",
		"Assets>Savings",
		"liabilities>Visa",
	}, aliases)
}

func render(nodes []*Node) []string {
	var out []string
	Walk(nodes, func(n *Node) {
		out = append(out, strings.Repeat("  ", n.Depth)+string(n.Kind)+":"+n.Name())
	})
	return out
}

func TestTreeAccountsBeforeSubgroups(t *testing.T) {
	assert.Equal(t, []string{
		"G:Assets",
		"  A:checking",
		"  A:Savings",
		"  G:bank",
		"  G:Cash",
		"    A:Drawer",
		"    A:wallet",
		"    G:Pocket",
		"G:liabilities",
		"  A:Visa",
	}, render(sample().Tree()))
}

func TestTreeOrderingHoldsAtEveryDepth(t *testing.T) {
	// Deep forest with mixed-case names inserted in reverse.
	var groups []models.AccountGroup
	var accounts []models.Account
	names := []string{"delta", "Charlie", "bravo", "Alpha"}
	id := uint(1)
	var parent *uint
	for depth := 0; depth < 4; depth++ {
		var first uint
		for _, n := range names {
			g := group(id, n+strings.Repeat("x", depth), parent)
			groups = append(groups, g)
			accounts = append(accounts, account(1000+id, strings.ToUpper(n[:1])+"acct", id), account(2000+id, "acct"+n, id))
			if first == 0 {
				first = id
			}
			id++
		}
		parent = ptr(first)
	}

	var check func(nodes []*Node)
	check = func(nodes []*Node) {
		seenGroup := false
		prev := map[NodeKind]string{}
		for _, n := range nodes {
			if n.Kind == KindGroup {
				seenGroup = true
			} else {
				require.False(t, seenGroup, "account %s listed after a subgroup", n.Name())
			}
			name := strings.ToLower(n.Name())
			require.LessOrEqual(t, prev[n.Kind], name)
			prev[n.Kind] = name
			check(n.Children)
		}
	}
	tree := NewForest(groups, accounts).Tree()
	require.NotEmpty(t, tree)
	check(tree)
}

func TestTreeSurvivesStoredCycle(t *testing.T) {
	f := NewForest([]models.AccountGroup{
		group(1, "A", ptr(2)),
		group(2, "B", ptr(1)),
		group(3, "Root", nil),
	}, nil)

	assert.Equal(t, []string{"G:Root", "G:A", "  G:B"}, render(f.Tree()))
	assert.Equal(t, "B>A", f.Alias(1))
	assert.ElementsMatch(t, []uint{2}, f.Descendants(1))
}
