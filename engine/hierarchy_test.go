package engine

import (
	"testing"
)

func TestHierarchySetParent(t *testing.T) {
	h := NewHierarchyStore()

	h.SetParent(2, 1)
	h.SetParent(3, 1)

	if p, ok := h.Parent(2); !ok || p != 1 {
		t.Errorf("Parent(2) = %d,%v, want 1,true", p, ok)
	}
	kids := h.Children(1)
	if len(kids) != 2 || kids[0] != 2 || kids[1] != 3 {
		t.Errorf("Children(1) = %v, want [2 3] in attach order", kids)
	}
	if h.IsRoot(2) {
		t.Error("attached child reported as root")
	}
	if !h.IsRoot(1) {
		t.Error("parent without parent should be root")
	}
}

func TestHierarchyReparent(t *testing.T) {
	h := NewHierarchyStore()
	h.SetParent(3, 1)
	h.SetParent(3, 2)

	if p, _ := h.Parent(3); p != 2 {
		t.Errorf("Parent(3) = %d after reparent, want 2", p)
	}
	if kids := h.Children(1); len(kids) != 0 {
		t.Errorf("old parent still lists child: %v", kids)
	}
}

func TestHierarchySelfParentIgnored(t *testing.T) {
	h := NewHierarchyStore()
	h.SetParent(1, 1)
	if !h.IsRoot(1) {
		t.Error("self-parenting should be ignored")
	}
}

func TestHierarchyDetachOrphansChildren(t *testing.T) {
	h := NewHierarchyStore()
	h.SetParent(2, 1)
	h.SetParent(3, 2)
	h.SetParent(4, 2)

	h.Detach(2)

	if !h.IsRoot(3) || !h.IsRoot(4) {
		t.Error("children of detached node should become roots")
	}
	if kids := h.Children(1); len(kids) != 0 {
		t.Errorf("detached node still attached: %v", kids)
	}
	if h.HasChildren(2) {
		t.Error("detached node kept its child list")
	}
}
