// Package shared provides Error, a cheap-to-copy handle to one erased failure.
//
// An Error can be copied freely, sent over channels, registered with many
// callbacks and read from many goroutines at once, even when the error it
// wraps cannot be copied itself. Every copy points at the same immutable
// *failure.Error, so all copies report the same text, cause, backtrace and
// downcast result, and copies of one origin compare equal with ==.
//
//	err := shared.New(conn.Close())
//	for _, ch := range subscribers {
//		ch <- err // each subscriber gets a duplicate, not a deep copy
//	}
//
//	if pe, ok := shared.Downcast[*fs.PathError](err); ok {
//		log.Println(pe.Path)
//	}
//
// The payload is released by the garbage collector once the last copy is
// unreachable; there is no Close.
package shared
