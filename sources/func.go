package sources

import "github.com/grindlemire/go-realm"

// Func turns fn into a feed. fn reports whether it has a reading; readings
// are delivered as UserEvent[U].
func Func[U any](fn func() (U, bool, error)) realm.Poller {
	return realm.PollerFunc(func() (realm.Event, error) {
		v, ok, err := fn()
		if err != nil || !ok {
			return nil, err
		}
		return realm.UserEvent[U]{Payload: v}, nil
	})
}
