package catalog

import "shopassist/internal/model"

// DemoSource is the name reported by an index built from DemoTable
const DemoSource = "demo"

// DemoTable returns the built-in catalog used when no real source is reachable.
// It resolves the same roles a full catalog would.
func DemoTable() *model.Table {
	return &model.Table{
		Columns: []string{"Item Purchased", "Category", "Color", "Price USD", "Location", "Brand"},
		Records: [][]string{
			{"Blue Jeans", "Bottoms", "Blue", "49.99", "Vancouver", "DenimCo"},
			{"Black Sneakers", "Shoes", "Black", "69.99", "Toronto", "RunFast"},
			{"White T-Shirt", "Tops", "White", "19.99", "Kamloops", "CottonClub"},
			{"Red Dress", "Dresses", "Red", "89.99", "Calgary", "Elegance"},
			{"Green Hoodie", "Outerwear", "Green", "59.99", "Vancouver", "WarmWear"},
			{"Yellow Scarf", "Accessories", "Yellow", "14.99", "Kamloops", "Silky"},
		},
	}
}

// NewDemoIndex builds a degraded index over DemoTable
func NewDemoIndex() *Index {
	return NewIndex(DemoTable(), DemoSource, true)
}
