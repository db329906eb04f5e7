package repository

// Subscription is a live query handle. Callers own the handle and must call
// Unsubscribe when the listening screen goes away; nothing cleans these up
// implicitly.
type Subscription interface {
	Unsubscribe()
}
