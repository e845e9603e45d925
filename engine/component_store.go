package engine

import (
	"github.com/lixenwraith/flexui/component"
	"github.com/lixenwraith/flexui/core"
)

// ComponentStore provides cached pointers to typed component stores
// Initialized once per system to eliminate runtime lookups
type ComponentStore struct {
	// Layout input
	Style       *Store[component.StyleComponent]
	ContentSize *Store[component.ContentSizeComponent]
	Text        *Store[component.TextComponent]

	// Layout output
	Node *Store[component.NodeComponent]
	Clip *Store[component.ClipComponent]

	// Stacking
	ZIndex *Store[component.ZIndexComponent]

	// Interaction
	FocusPolicy    *Store[component.FocusPolicyComponent]
	Interaction    *Store[component.InteractionComponent]
	RelativeCursor *Store[component.RelativeCursorComponent]

	// Paint
	Outline *Store[component.OutlineComponent]
	Visual  *Store[component.VisualComponent]

	// Viewport routing
	TargetViewport   *Store[component.TargetViewportComponent]
	ResolvedViewport *Store[component.ResolvedViewportComponent]
}

// newComponentStore builds the full store set for a fresh world
func newComponentStore() ComponentStore {
	return ComponentStore{
		Style:       NewStore[component.StyleComponent](),
		ContentSize: NewStore[component.ContentSizeComponent](),
		Text:        NewStore[component.TextComponent](),

		Node: NewStore[component.NodeComponent](),
		Clip: NewStore[component.ClipComponent](),

		ZIndex: NewStore[component.ZIndexComponent](),

		FocusPolicy:    NewStore[component.FocusPolicyComponent](),
		Interaction:    NewStore[component.InteractionComponent](),
		RelativeCursor: NewStore[component.RelativeCursorComponent](),

		Outline: NewStore[component.OutlineComponent](),
		Visual:  NewStore[component.VisualComponent](),

		TargetViewport:   NewStore[component.TargetViewportComponent](),
		ResolvedViewport: NewStore[component.ResolvedViewportComponent](),
	}
}

// remover is the store operation needed for entity teardown
type remover interface {
	Remove(e core.Entity)
	RemoveBatch(entities []core.Entity)
	Clear()
}

// all returns every store for whole-entity operations
func (c *ComponentStore) all() []remover {
	return []remover{
		c.Style, c.ContentSize, c.Text,
		c.Node, c.Clip,
		c.ZIndex,
		c.FocusPolicy, c.Interaction, c.RelativeCursor,
		c.Outline, c.Visual,
		c.TargetViewport, c.ResolvedViewport,
	}
}
