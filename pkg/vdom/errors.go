package vdom

import "fmt"

// ReconciliationError reports a patch whose target key the tree cannot
// satisfy: a referenced key that does not exist, or an AddNode key that
// already does. The failing patch has no effect; patches applied before it
// remain.
type ReconciliationError struct {
	Op  Op
	Key Key
	msg string
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Op, e.Key, e.msg)
}

func missingKey(op Op, key Key) *ReconciliationError {
	return &ReconciliationError{Op: op, Key: key, msg: "no node with that key"}
}

func duplicateKey(op Op, key Key) *ReconciliationError {
	return &ReconciliationError{Op: op, Key: key, msg: "key already present"}
}
