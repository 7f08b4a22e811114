// Package memory holds an in-memory sink with the same insert-or-skip
// semantics as the database-backed one. Used by tests and as a DB-free
// dry-run mode.
package memory

import (
	"context"

	"finlytics/internal/models"
)

type Sink struct {
	Customers   map[string]models.Customer
	Merchants   map[string]models.Merchant
	Payments    map[string]models.Payment
	Settlements map[string]models.Settlement
}

func NewSink() *Sink {
	return &Sink{
		Customers:   make(map[string]models.Customer),
		Merchants:   make(map[string]models.Merchant),
		Payments:    make(map[string]models.Payment),
		Settlements: make(map[string]models.Settlement),
	}
}

func (s *Sink) LoadCustomers(_ context.Context, batch []models.Customer) error {
	for _, c := range batch {
		if _, ok := s.Customers[c.CustomerID]; !ok {
			s.Customers[c.CustomerID] = c
		}
	}
	return nil
}

func (s *Sink) LoadMerchants(_ context.Context, batch []models.Merchant) error {
	for _, m := range batch {
		if _, ok := s.Merchants[m.MerchantID]; !ok {
			s.Merchants[m.MerchantID] = m
		}
	}
	return nil
}

func (s *Sink) LoadPayments(_ context.Context, batch []models.Payment) error {
	for _, p := range batch {
		if _, ok := s.Payments[p.PaymentID]; !ok {
			s.Payments[p.PaymentID] = p
		}
	}
	return nil
}

func (s *Sink) LoadSettlements(_ context.Context, batch []models.Settlement) error {
	for _, st := range batch {
		if _, ok := s.Settlements[st.SettlementID]; !ok {
			s.Settlements[st.SettlementID] = st
		}
	}
	return nil
}
