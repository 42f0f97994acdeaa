package model

// All lists every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Post{},
		&Comment{},
		&Like{},
		&SavedPost{},
		&UserRelationship{},
		&Story{},
	}
}
