package model

import (
	"fmt"
	"strings"
)

// EventKind is the closed set of ledger event types.
type EventKind int

// Event kinds. KindUnknown covers blank or unrecognized workbook labels.
const (
	KindUnknown EventKind = iota
	KindPurchaseOrder
	KindInvoice
	KindWorkingTime
	KindPurchase
	KindTravelAndLogistics
	KindDeferment
	KindFinancialRecord
	KindClosure
)

// Kinds returns every known kind in display order.
func Kinds() []EventKind {
	return []EventKind{
		KindPurchaseOrder,
		KindInvoice,
		KindWorkingTime,
		KindPurchase,
		KindTravelAndLogistics,
		KindDeferment,
		KindFinancialRecord,
		KindClosure,
	}
}

// String returns the canonical code used in serialized events and filters.
func (k EventKind) String() string {
	switch k {
	case KindPurchaseOrder:
		return "PurchaseOrder"
	case KindInvoice:
		return "Invoice"
	case KindWorkingTime:
		return "WorkingTime"
	case KindPurchase:
		return "Purchase"
	case KindTravelAndLogistics:
		return "TravelAndLogistics"
	case KindDeferment:
		return "Deferment"
	case KindFinancialRecord:
		return "FinancialRecord"
	case KindClosure:
		return "Closure"
	case KindUnknown:
		return "Unknown"
	}
	return "Unknown"
}

// Label returns the label the kind carries in source workbooks.
func (k EventKind) Label() string {
	switch k {
	case KindPurchaseOrder:
		return "PO"
	case KindInvoice:
		return "Invoice"
	case KindWorkingTime:
		return "Working Time"
	case KindPurchase:
		return "Purchase"
	case KindTravelAndLogistics:
		return "T&L"
	case KindDeferment:
		return "Deferment"
	case KindFinancialRecord:
		return "Financial Record"
	case KindClosure:
		return "Closure"
	case KindUnknown:
		return ""
	}
	return ""
}

// Known reports whether k takes part in aggregation.
func (k EventKind) Known() bool {
	return k != KindUnknown
}

// MarshalText implements encoding.TextMarshaler.
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *EventKind) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" || s == "Unknown" {
		*k = KindUnknown
		return nil
	}
	for _, candidate := range Kinds() {
		if candidate.String() == s {
			*k = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown event kind %q", s)
}

var kindAliases = map[string]EventKind{
	"po":                   KindPurchaseOrder,
	"purchase order":       KindPurchaseOrder,
	"purchaseorder":        KindPurchaseOrder,
	"invoice":              KindInvoice,
	"working time":         KindWorkingTime,
	"workingtime":          KindWorkingTime,
	"purchase":             KindPurchase,
	"t&l":                  KindTravelAndLogistics,
	"travel & logistics":   KindTravelAndLogistics,
	"travel and logistics": KindTravelAndLogistics,
	"travelandlogistics":   KindTravelAndLogistics,
	"deferment":            KindDeferment,
	"financial record":     KindFinancialRecord,
	"financialrecord":      KindFinancialRecord,
	"closure":              KindClosure,
}

// ParseEventKind maps a workbook label onto a kind. Matching ignores case and
// surrounding whitespace; anything unrecognized yields KindUnknown.
func ParseEventKind(label string) EventKind {
	key := strings.ToLower(strings.Join(strings.Fields(label), " "))
	if kind, ok := kindAliases[key]; ok {
		return kind
	}
	return KindUnknown
}

// KindFromCode resolves a canonical code as produced by String. It accepts
// workbook labels as well so filters can be typed either way.
func KindFromCode(code string) (EventKind, error) {
	var kind EventKind
	if err := kind.UnmarshalText([]byte(code)); err == nil {
		return kind, nil
	}
	if kind = ParseEventKind(code); kind.Known() {
		return kind, nil
	}
	return KindUnknown, fmt.Errorf("unknown event kind %q", code)
}
