// Package actionlog provides the journal of dispatched actions, for all customers or for one.
//
// Unlike the other queries it does not read the aggregate state. It queries the action journal,
// decodes each journaled action, and renders a one-line description of it.
package actionlog
