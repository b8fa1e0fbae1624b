package catalog

// Collection is the document collection products live in.
const Collection = "products"

// DefaultStock is applied when a create request does not specify stock.
const DefaultStock = 100

// Product is both the wire shape and the stored document shape. The id is a
// business identifier generated at creation; the store's internal _id never
// leaves the adapter.
type Product struct {
	ID          string  `json:"id" bson:"id"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description" bson:"description"`
	Price       float64 `json:"price" bson:"price"`
	ImageURL    string  `json:"image_url" bson:"image_url"`
	Category    string  `json:"category" bson:"category"`
	Stock       int     `json:"stock" bson:"stock"`
}
