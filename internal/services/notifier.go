package services

// ChangeNotifier is told after every successful write so live subscribers
// can be re-sent the full collection contents. The live hub implements it.
type ChangeNotifier interface {
	CollectionChanged(collection string)
}

// noopNotifier stands in when no hub is wired (tests, one-off scripts)
type noopNotifier struct{}

func (noopNotifier) CollectionChanged(string) {}

func orNoop(n ChangeNotifier) ChangeNotifier {
	if n == nil {
		return noopNotifier{}
	}
	return n
}
