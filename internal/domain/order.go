package domain

// Order references products by id. References are resolved into embedded
// product documents only on reads, never persisted embedded.
type Order struct {
	ID       string   `json:"_id" bson:"_id"`
	Username string   `json:"username" bson:"username" validate:"required"`
	Products []string `json:"products" bson:"products" validate:"required,min=1,dive,required"`
	Status   Status   `json:"status" bson:"status" validate:"required,oneof=CREATED PENDING COMPLETED"`
}

// ResolvedOrder is the read-side view of an order: product references swapped
// for the referenced documents. A reference whose product has since been
// deleted is omitted from Products.
type ResolvedOrder struct {
	ID       string    `json:"_id"`
	Username string    `json:"username"`
	Products []Product `json:"products"`
	Status   Status    `json:"status"`
}

// OrderPatch is the merge-patch shape for order edits.
type OrderPatch struct {
	Username Field[string]   `json:"username"`
	Products Field[[]string] `json:"products"`
	Status   Field[Status]   `json:"status"`
}

func (p OrderPatch) ApplyTo(order *Order) {
	p.Username.Apply(&order.Username)
	p.Products.Apply(&order.Products)
	p.Status.Apply(&order.Status)
}
