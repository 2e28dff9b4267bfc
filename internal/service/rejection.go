package service

import (
	"errors"
	"fmt"
)

// RejectionKind classifies why a request was refused. Kinds are part of the
// API surface; callers receive the kind and message and nothing else.
type RejectionKind string

const (
	// KindUnauthenticated covers absent, invalid and inactive actors, and
	// actors with no organization.
	KindUnauthenticated RejectionKind = "UNAUTHENTICATED"
	// KindNotFound covers both genuinely missing entities and entities owned
	// by another tenant. Collapsing the two keeps cross-tenant existence
	// unobservable.
	KindNotFound         RejectionKind = "NOT_FOUND"
	KindInvalidFormat    RejectionKind = "INVALID_FORMAT"
	KindInvalidEnum      RejectionKind = "INVALID_ENUM"
	KindAssigneeNotFound RejectionKind = "ASSIGNEE_NOT_FOUND"
	KindEmptyContent     RejectionKind = "EMPTY_CONTENT"
)

// Rejection is a typed refusal. It short-circuits the resolver before any
// write happens, so a rejected mutation never leaves partial state.
type Rejection struct {
	Message string
	Kind    RejectionKind
}

func (r *Rejection) Error() string {
	return r.Message
}

func reject(kind RejectionKind, format string, args ...any) *Rejection {
	return &Rejection{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func rejectUnauthenticated() *Rejection {
	return reject(KindUnauthenticated, "authentication required")
}

func rejectNotFound(entity string) *Rejection {
	return reject(KindNotFound, "%s not found", entity)
}

// AsRejection unwraps err into a Rejection when it is one.
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}
