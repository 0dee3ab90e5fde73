// Package activecontracts lists every contract that has been created and not canceled, in creation order.
package activecontracts
