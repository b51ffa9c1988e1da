// Package domain contains the core domain entities of the landing page service.
// These types are free of infrastructure concerns so they can be shared between
// the transport layer, the contact service and the notifiers.
package domain
