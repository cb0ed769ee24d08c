// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Evidence is the predicate function for evidence builders.
type Evidence func(*sql.Selector)

// FileReservation is the predicate function for filereservation builders.
type FileReservation func(*sql.Selector)

// Lease is the predicate function for lease builders.
type Lease func(*sql.Selector)

// MailMessage is the predicate function for mailmessage builders.
type MailMessage func(*sql.Selector)

// ReservationConflict is the predicate function for reservationconflict builders.
type ReservationConflict func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)
