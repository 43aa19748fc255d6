// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/wecom-callback/models"
)

// nopHandler receives every event nobody registered for.
var nopHandler EventHandler = EventHandlerFunc(func(context.Context, *models.CallbackEvent) error {
	return nil
})

// Registry maps event kinds to handlers. It is populated during start-up
// and read concurrently afterwards; Register must not be called once the
// server is serving.
type Registry struct {
	handlers map[models.EventKind]EventHandler
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[models.EventKind]EventHandler)}
}

// Register binds h to kind, replacing any previous handler. A nil handler
// removes the binding.
func (r *Registry) Register(kind models.EventKind, h EventHandler) *Registry {
	if h == nil {
		delete(r.handlers, kind)
		return r
	}
	r.handlers[kind] = h
	return r
}

// RegisterFunc is Register for plain functions.
func (r *Registry) RegisterFunc(kind models.EventKind, f func(ctx context.Context, event *models.CallbackEvent) error) *Registry {
	return r.Register(kind, EventHandlerFunc(f))
}

// Lookup returns the handler for kind. Only the kinds listed in the switch
// resolve to a registered handler; anything else gets a no-op handler.
func (r *Registry) Lookup(kind models.EventKind) EventHandler {
	switch kind {
	case models.EventKindExternalContactAdd,
		models.EventKindExternalContactAddHalf,
		models.EventKindExternalContactEdit,
		models.EventKindExternalContactDelete,
		models.EventKindExternalContactDelFollowUser,
		models.EventKindMessage:
		if h, ok := r.handlers[kind]; ok {
			return h
		}
		return nopHandler
	case models.EventKindUnrecognized:
		return nopHandler
	}
	return nopHandler
}

// Has reports whether a handler is registered for kind.
func (r *Registry) Has(kind models.EventKind) bool {
	_, ok := r.handlers[kind]
	return ok
}
