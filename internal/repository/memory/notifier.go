package memory

// ChangeNotifier is told after every successful mutation so the new state
// can be persisted.
type ChangeNotifier interface {
	MarkDirty()
}

type noopNotifier struct{}

func (noopNotifier) MarkDirty() {}

func notifierOrNoop(n ChangeNotifier) ChangeNotifier {
	if n == nil {
		return noopNotifier{}
	}
	return n
}
