package renderer

import (
	"sort"

	"github.com/Faultbox/meshgrid/internal/scatter"
	"github.com/Faultbox/meshgrid/pkg/math"
)

// drawItem is the renderer's copy of an instance.
type drawItem struct {
	id       int
	geometry scatter.Geometry
	position math.Vec3
	rotation math.Quat
}

// instanceTable keeps draw items in ID order.
type instanceTable struct {
	items []drawItem
	byID  map[int]int
}

func newInstanceTable() *instanceTable {
	return &instanceTable{byID: make(map[int]int)}
}

// add inserts inst, replacing an item with the same ID.
func (t *instanceTable) add(inst scatter.Instance) {
	it := drawItem{
		id:       inst.ID,
		geometry: inst.Geometry,
		position: inst.Position,
		rotation: inst.Rotation,
	}
	if i, ok := t.byID[inst.ID]; ok {
		t.items[i] = it
		return
	}

	pos := sort.Search(len(t.items), func(i int) bool { return t.items[i].id > inst.ID })
	t.items = append(t.items, drawItem{})
	copy(t.items[pos+1:], t.items[pos:])
	t.items[pos] = it
	for i := pos; i < len(t.items); i++ {
		t.byID[t.items[i].id] = i
	}
}

// orient sets the rotation of id. Unknown IDs are ignored.
func (t *instanceTable) orient(id int, q math.Quat) bool {
	i, ok := t.byID[id]
	if !ok {
		return false
	}
	t.items[i].rotation = q
	return true
}

func (t *instanceTable) each(fn func(*drawItem)) {
	for i := range t.items {
		fn(&t.items[i])
	}
}

func (t *instanceTable) len() int {
	return len(t.items)
}
