package events

import (
	"errors"
	"strings"
)

// EventType es la categoría del evento médico. Enumeración cerrada:
// cualquier valor desconocido se rechaza en el borde HTTP.
type EventType string

const (
	EventTypeConsultation EventType = "consulta"
	EventTypeVaccination  EventType = "vacinacao"
	EventTypeExam         EventType = "exame"
	EventTypeSurgery      EventType = "cirurgia"
	EventTypeMedication   EventType = "medicamento"
	EventTypeOther        EventType = "outro"
)

// EventStatus es el estado del evento en la agenda.
type EventStatus string

const (
	EventStatusScheduled EventStatus = "agendado"
	EventStatusDone      EventStatus = "realizado"
	EventStatusCancelled EventStatus = "cancelado"
)

var ErrUnknownEnum = errors.New("unknown enum value")

// ParseEventType valida contra la enumeración cerrada.
func ParseEventType(s string) (EventType, error) {
	t := EventType(strings.TrimSpace(s))
	switch t {
	case EventTypeConsultation, EventTypeVaccination, EventTypeExam,
		EventTypeSurgery, EventTypeMedication, EventTypeOther:
		return t, nil
	}
	return "", ErrUnknownEnum
}

// ParseEventStatus valida contra la enumeración cerrada.
func ParseEventStatus(s string) (EventStatus, error) {
	st := EventStatus(strings.TrimSpace(s))
	switch st {
	case EventStatusScheduled, EventStatusDone, EventStatusCancelled:
		return st, nil
	}
	return "", ErrUnknownEnum
}
