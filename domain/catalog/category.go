package catalog

// Category classifies a meal. Stored as a small integer; unknown wire
// codes decode to CategoryUnknown rather than failing the row.
type Category uint8

const (
	CategoryUnknown Category = iota
	CategoryStarter
	CategoryMainDish
	CategorySideDish
	CategoryDessert
	CategoryDrink
	CategorySandwich
)

var categoryNames = map[Category]string{
	CategoryUnknown:  "UNKNOWN",
	CategoryStarter:  "STARTER",
	CategoryMainDish: "MAIN_DISH",
	CategorySideDish: "SIDE_DISH",
	CategoryDessert:  "DESSERT",
	CategoryDrink:    "DRINK",
	CategorySandwich: "SANDWICH",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[CategoryUnknown]
}

// Wire returns the small-integer persistence code.
func (c Category) Wire() int { return int(c) }

// CategoryFromWire decodes a persisted code, defaulting to
// CategoryUnknown for codes this version does not know.
func CategoryFromWire(code int) Category {
	c := Category(code)
	if _, ok := categoryNames[c]; !ok {
		return CategoryUnknown
	}
	return c
}
