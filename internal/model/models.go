package model

// All lists every table in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&ProfileLink{},
		&Note{},
		&Like{},
		&SavedNote{},
		&View{},
		&Comment{},
	}
}
