package inspection

import "testing"

func TestBuildMenuTree(t *testing.T) {
	tree, err := buildMenuTree()
	if err != nil {
		t.Fatalf("buildMenuTree: %v", err)
	}

	if tree.RootID() != nodeMainMenu {
		t.Errorf("root = %q, want %q", tree.RootID(), nodeMainMenu)
	}

	leaves := map[string]string{
		leafElectricRough:  "Electrical - Rough",
		leafElectricFinish: "Electrical - Finish",
		leafPlumbing:       "Plumbing",
		leafFraming:        "Framing",
	}
	for id, wantType := range leaves {
		node, ok := tree.Resolve(id)
		if !ok {
			t.Errorf("leaf %q missing from tree", id)
			continue
		}
		if !node.IsLeaf() {
			t.Errorf("node %q is not a leaf", id)
			continue
		}
		if node.Leaf.InspectionType != wantType {
			t.Errorf("leaf %q inspection type = %q, want %q", id, node.Leaf.InspectionType, wantType)
		}
		if node.Leaf.Instructions == "" {
			t.Errorf("leaf %q has no checklist instructions", id)
		}
	}

	for _, action := range []string{actionPending, actionCompleted} {
		if !tree.IsAction(action) {
			t.Errorf("action %q not registered", action)
		}
	}

	// Промежуточные экраны кликабельны из главного меню
	root, _ := tree.Resolve(nodeMainMenu)
	if len(root.Buttons) == 0 {
		t.Fatal("main menu has no buttons")
	}
	for _, btn := range root.Buttons {
		if _, ok := tree.Resolve(btn.Target); !ok && !tree.IsAction(btn.Target) {
			t.Errorf("main menu button %q targets nothing", btn.Target)
		}
	}
}
