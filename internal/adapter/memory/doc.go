// Package memory provides the process-local session store.
//
// Each session owns a bounded ring buffer of rendered rows guarded by its own
// mutex; sessions live in a sync.Map so unrelated sessions never share a lock.
// Nothing is persisted and sessions never expire on their own.
package memory
