package orders

type Order struct {
	UserID uint32
	Amount float64
	Status string
}

// ValidatedOrder pairs an order with its user after every check passed. Both
// pointers refer into the registry and the caller's order slice; they are
// only valid while those are.
type ValidatedOrder struct {
	User  *User
	Order *Order
}
