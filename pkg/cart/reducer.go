package cart

type ActionKind int

const (
	ActionAdd ActionKind = iota
	ActionReplace
	ActionSetQuantity
	ActionRemove
	ActionClear
	ActionDeduct
)

type Action struct {
	Kind     ActionKind
	Item     LineItem
	ItemID   string
	Quantity int
	// Expect is the restaurant an ActionReplace was confirmed against.
	Expect string
	// Lines are the quantities ActionDeduct takes out.
	Lines []LineItem
}

// Reduce returns the next line item set. It never mutates items.
// ActionAdd assumes the restaurant check already happened.
func Reduce(items []LineItem, a Action) []LineItem {
	switch a.Kind {
	case ActionAdd:
		next := clone(items)
		for i := range next {
			if next[i].ID == a.Item.ID {
				next[i].Quantity++
				return next
			}
		}
		line := a.Item
		line.Quantity = 1
		return append(next, line)

	case ActionReplace:
		line := a.Item
		line.Quantity = 1
		return []LineItem{line}

	case ActionSetQuantity:
		if a.Quantity <= 0 {
			return Reduce(items, Action{Kind: ActionRemove, ItemID: a.ItemID})
		}
		next := clone(items)
		for i := range next {
			if next[i].ID == a.ItemID {
				next[i].Quantity = a.Quantity
			}
		}
		return next

	case ActionRemove:
		next := make([]LineItem, 0, len(items))
		for _, it := range items {
			if it.ID != a.ItemID {
				next = append(next, it)
			}
		}
		return next

	case ActionClear:
		return []LineItem{}

	case ActionDeduct:
		taken := map[string]int{}
		for _, l := range a.Lines {
			taken[l.ID] += l.Quantity
		}
		next := make([]LineItem, 0, len(items))
		for _, it := range items {
			it.Quantity -= taken[it.ID]
			if it.Quantity > 0 {
				next = append(next, it)
			}
		}
		return next
	}
	return clone(items)
}

type Summary struct {
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Total       int64 `json:"total"`
	ItemCount   int   `json:"itemCount"`
}

// Summarize derives the totals of a line item set.
func Summarize(items []LineItem) Summary {
	var s Summary
	for _, it := range items {
		s.Subtotal += it.UnitPrice * int64(it.Quantity)
		s.ItemCount += it.Quantity
	}
	if len(items) > 0 {
		s.DeliveryFee = items[0].Restaurant.DeliveryFee
	}
	s.Total = s.Subtotal + s.DeliveryFee
	return s
}
