// Package notification models the user-visible events recorded as a side effect
// of delivery transitions. Notifications are append-only per recipient and carry
// no business logic.
package notification
