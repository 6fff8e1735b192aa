// Package sources provides custom data feeds for the realm scheduler. Each
// feed is a Poller that wraps its readings in a realm.UserEvent, so
// components receive them through OnUser or OnPayload subscriptions.
package sources
