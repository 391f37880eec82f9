package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func testPackages() []OutdatedPackage {
	return []OutdatedPackage{
		{Name: "requests", Current: "2.28.0", Latest: "2.31.0"},
		{Name: "flask", Current: "2.3.0", Latest: "3.0.0"},
		{Name: "click", Current: "8.0.0", Latest: "8.1.7"},
	}
}

func TestPackageListModel_AllMarkedByDefault(t *testing.T) {
	m := NewPackageListModel(testPackages())

	next, _ := m.Update(keyMsg("enter"))
	chosen := next.(PackageListModel).Chosen()

	if len(chosen) != 3 {
		t.Errorf("expected all 3 packages chosen, got %d", len(chosen))
	}
}

func TestPackageListModel_ToggleAndConfirm(t *testing.T) {
	m := NewPackageListModel(testPackages())

	// Unmark the first package, then confirm.
	next, _ := m.Update(keyMsg(" "))
	next, _ = next.(PackageListModel).Update(keyMsg("enter"))
	chosen := next.(PackageListModel).Chosen()

	if len(chosen) != 2 {
		t.Fatalf("expected 2 packages chosen, got %d", len(chosen))
	}
	for _, p := range chosen {
		if p.Name == "requests" {
			t.Error("unmarked package should not be chosen")
		}
	}
}

func TestPackageListModel_QuitDiscardsSelection(t *testing.T) {
	m := NewPackageListModel(testPackages())

	next, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if chosen := next.(PackageListModel).Chosen(); chosen != nil {
		t.Errorf("quit should discard selection, got %d packages", len(chosen))
	}
}

func TestPackageListModel_ToggleAll(t *testing.T) {
	m := NewPackageListModel(testPackages())

	// "a" with everything marked clears the selection.
	next, _ := m.Update(keyMsg("a"))
	next, _ = next.(PackageListModel).Update(keyMsg("enter"))
	if chosen := next.(PackageListModel).Chosen(); chosen != nil {
		t.Errorf("expected empty selection after toggle-all, got %d", len(chosen))
	}

	// A second "a" marks everything again.
	m = NewPackageListModel(testPackages())
	next, _ = m.Update(keyMsg("a"))
	next, _ = next.(PackageListModel).Update(keyMsg("a"))
	next, _ = next.(PackageListModel).Update(keyMsg("enter"))
	if chosen := next.(PackageListModel).Chosen(); len(chosen) != 3 {
		t.Errorf("expected all packages chosen after double toggle, got %d", len(chosen))
	}
}

func TestPackageListModel_CursorBounds(t *testing.T) {
	m := NewPackageListModel(testPackages())

	next, _ := m.Update(keyMsg("k"))
	if next.(PackageListModel).Cursor != 0 {
		t.Error("cursor should not move above the first entry")
	}

	model := next.(PackageListModel)
	for i := 0; i < 10; i++ {
		n, _ := model.Update(keyMsg("j"))
		model = n.(PackageListModel)
	}
	if model.Cursor != 2 {
		t.Errorf("cursor = %d, want clamped at 2", model.Cursor)
	}
}
