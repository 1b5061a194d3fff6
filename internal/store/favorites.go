package store

// Favorites is a set of product ids. Listing order is the order ids were added.
type Favorites struct {
	ids      []string
	onChange ChangeFunc[[]string]
}

func NewFavorites(ids []string, onChange ChangeFunc[[]string]) *Favorites {
	f := &Favorites{onChange: onChange}
	for _, id := range ids {
		if !f.IsFavorite(id) {
			f.ids = append(f.ids, id)
		}
	}
	return f
}

func (f *Favorites) IDs() []string {
	out := make([]string, len(f.ids))
	copy(out, f.ids)
	return out
}

// Toggle adds productID if absent and removes it if present.
func (f *Favorites) Toggle(productID string) []string {
	for i, id := range f.ids {
		if id == productID {
			f.ids = append(f.ids[:i], f.ids[i+1:]...)
			return f.commit()
		}
	}
	f.ids = append(f.ids, productID)
	return f.commit()
}

func (f *Favorites) IsFavorite(productID string) bool {
	for _, id := range f.ids {
		if id == productID {
			return true
		}
	}
	return false
}

func (f *Favorites) Clear() []string {
	f.ids = nil
	return f.commit()
}

func (f *Favorites) commit() []string {
	state := f.IDs()
	if f.onChange != nil {
		f.onChange(state)
	}
	return state
}
