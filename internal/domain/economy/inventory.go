package economy

const (
	DefaultInventorySlots = 12
	MaxStackSize          = 64
)

// Slot holds a stack of one resource. An empty slot has ResourceID == ""
// and Quantity == 0; a slot is cleared back to empty when its quantity
// reaches zero.
type Slot struct {
	ResourceID string `json:"resource_id,omitempty"`
	Quantity   int    `json:"quantity,omitempty"`
}

func (s Slot) Empty() bool {
	return s.ResourceID == "" || s.Quantity <= 0
}

type Inventory struct {
	Slots []Slot `json:"slots"`
}

func NewInventory(slots int) Inventory {
	if slots <= 0 {
		slots = DefaultInventorySlots
	}
	return Inventory{Slots: make([]Slot, slots)}
}

// Add deposits one unit of id: first into a slot already stacking id with
// spare capacity, else into the first empty slot. Returns false when the
// inventory is full.
func (inv *Inventory) Add(id string) bool {
	for i := range inv.Slots {
		s := inv.Slots[i]
		if !s.Empty() && s.ResourceID == id && s.Quantity < MaxStackSize {
			inv.Slots[i].Quantity++
			return true
		}
	}
	for i := range inv.Slots {
		if inv.Slots[i].Empty() {
			inv.Slots[i] = Slot{ResourceID: id, Quantity: 1}
			return true
		}
	}
	return false
}

// Remove takes one unit of id from the first slot holding it, clearing the
// slot when it empties out.
func (inv *Inventory) Remove(id string) bool {
	for i := range inv.Slots {
		s := inv.Slots[i]
		if s.Empty() || s.ResourceID != id {
			continue
		}
		inv.Slots[i].Quantity--
		if inv.Slots[i].Quantity <= 0 {
			inv.Slots[i] = Slot{}
		}
		return true
	}
	return false
}

func (inv Inventory) Count(id string) int {
	total := 0
	for _, s := range inv.Slots {
		if !s.Empty() && s.ResourceID == id {
			total += s.Quantity
		}
	}
	return total
}

// FirstConsumable returns the id of the first held resource that is
// consumable with a positive health gain.
func (inv Inventory) FirstConsumable(catalog Catalog) (string, bool) {
	for _, s := range inv.Slots {
		if s.Empty() {
			continue
		}
		if r, ok := catalog.Get(s.ResourceID); ok && r.Consumable && r.HealthGain > 0 {
			return s.ResourceID, true
		}
	}
	return "", false
}
