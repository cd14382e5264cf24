package table

//go:generate mockgen -source=observer.go -destination=mock/mock.go -package=mock_table

// Observer is told about every action the table applies, in the order they
// were applied. It is called without the table lock held, so it may read from
// the table, but it must not dispatch: deliveries are serialized and a
// dispatch from inside OnUpdate deadlocks.
type Observer interface {
	OnUpdate(snapshot Snapshot)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(Snapshot)

// OnUpdate implements Observer
func (f ObserverFunc) OnUpdate(snapshot Snapshot) {
	f(snapshot)
}

type nopObserver struct{}

func (nopObserver) OnUpdate(Snapshot) {}
